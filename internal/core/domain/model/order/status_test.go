package order_test

import (
	"fmt"
	"testing"

	"shop/internal/core/domain/model/order"
	"shop/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Constants(t *testing.T) {
	t.Run("should have correct enum values", func(t *testing.T) {
		assert.Equal(t, 0, int(order.Unknown))
		assert.Equal(t, 1, int(order.Pending))
		assert.Equal(t, 2, int(order.Shipped))
		assert.Equal(t, 3, int(order.Delivered))
		assert.Equal(t, 4, int(order.Cancelled))
	})
}

func TestStatus_Validate(t *testing.T) {
	t.Run("should validate valid statuses", func(t *testing.T) {
		validStatuses := []order.Status{
			order.Pending,
			order.Shipped,
			order.Delivered,
			order.Cancelled,
		}

		for _, status := range validStatuses {
			t.Run(fmt.Sprintf("should validate %s status", status.String()), func(t *testing.T) {
				require.NoError(t, status.Validate())
			})
		}
	})

	t.Run("should reject Unknown status", func(t *testing.T) {
		err := order.Unknown.Validate()

		require.Error(t, err)
		assert.IsType(t, &errs.ValueIsInvalidError{}, err)
		assert.Contains(t, err.Error(), "0 is not a valid status")
	})

	t.Run("should reject invalid status values", func(t *testing.T) {
		for _, status := range []order.Status{order.Status(-1), order.Status(5), order.Status(100)} {
			err := status.Validate()

			require.Error(t, err)
			assert.Contains(t, err.Error(), fmt.Sprintf("%d is not a valid status", int(status)))
		}
	})
}

func TestStatus_String(t *testing.T) {
	t.Run("should return wire strings for valid statuses", func(t *testing.T) {
		testCases := []struct {
			status   order.Status
			expected string
		}{
			{order.Pending, "pending"},
			{order.Shipped, "shipped"},
			{order.Delivered, "delivered"},
			{order.Cancelled, "cancelled"},
		}

		for _, tc := range testCases {
			assert.Equal(t, tc.expected, tc.status.String())
		}
	})

	t.Run("should return unknown for invalid values", func(t *testing.T) {
		assert.Equal(t, "unknown", order.Unknown.String())
		assert.Equal(t, "unknown", order.Status(42).String())
	})
}

func TestStatusFromString(t *testing.T) {
	t.Run("should parse the closed wire set", func(t *testing.T) {
		testCases := []struct {
			input    string
			expected order.Status
		}{
			{"pending", order.Pending},
			{"shipped", order.Shipped},
			{"delivered", order.Delivered},
			{"cancelled", order.Cancelled},
		}

		for _, tc := range testCases {
			status, err := order.StatusFromString(tc.input)

			require.NoError(t, err)
			assert.Equal(t, tc.expected, status)
		}
	})

	t.Run("should reject anything outside the closed set", func(t *testing.T) {
		inputs := []string{
			"",
			"Pending",
			"SHIPPED",
			"canceled",
			"delivered ",
			"refunded",
		}

		for _, input := range inputs {
			status, err := order.StatusFromString(input)

			require.Error(t, err, "input %q should be rejected", input)
			require.ErrorIs(t, err, errs.ErrValueIsInvalid)
			assert.Equal(t, order.Unknown, status)
		}
	})
}

func TestStatus_IsTerminal(t *testing.T) {
	assert.False(t, order.Pending.IsTerminal())
	assert.False(t, order.Shipped.IsTerminal())
	assert.True(t, order.Delivered.IsTerminal())
	assert.True(t, order.Cancelled.IsTerminal())
}

func TestStatus_TransitionTo(t *testing.T) {
	t.Run("should allow lifecycle transitions", func(t *testing.T) {
		allowed := []struct {
			from order.Status
			to   order.Status
		}{
			{order.Pending, order.Shipped},
			{order.Pending, order.Cancelled},
			{order.Shipped, order.Delivered},
			{order.Shipped, order.Cancelled},
		}

		for _, tc := range allowed {
			t.Run(fmt.Sprintf("%s to %s", tc.from, tc.to), func(t *testing.T) {
				next, err := tc.from.TransitionTo(tc.to)

				require.NoError(t, err)
				assert.Equal(t, tc.to, next)
			})
		}
	})

	t.Run("should reject every transition out of terminal statuses", func(t *testing.T) {
		targets := []order.Status{order.Pending, order.Shipped, order.Delivered, order.Cancelled}

		for _, from := range []order.Status{order.Delivered, order.Cancelled} {
			for _, to := range targets {
				t.Run(fmt.Sprintf("%s to %s", from, to), func(t *testing.T) {
					next, err := from.TransitionTo(to)

					require.Error(t, err)
					require.ErrorIs(t, err, errs.ErrInvalidTransition)
					assert.Equal(t, order.Unknown, next)
				})
			}
		}
	})

	t.Run("should reject skipping shipped", func(t *testing.T) {
		_, err := order.Pending.TransitionTo(order.Delivered)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrInvalidTransition)
	})

	t.Run("should reject moving back to pending", func(t *testing.T) {
		_, err := order.Shipped.TransitionTo(order.Pending)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrInvalidTransition)
	})

	t.Run("should reject unrecognized target statuses", func(t *testing.T) {
		_, err := order.Pending.TransitionTo(order.Unknown)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestActorFromString(t *testing.T) {
	t.Run("should parse recognized actors", func(t *testing.T) {
		actor, err := order.ActorFromString("admin")
		require.NoError(t, err)
		assert.Equal(t, order.ActorAdmin, actor)

		actor, err = order.ActorFromString("customer")
		require.NoError(t, err)
		assert.Equal(t, order.ActorCustomer, actor)
	})

	t.Run("should reject unrecognized actors", func(t *testing.T) {
		for _, input := range []string{"", "Admin", "system"} {
			_, err := order.ActorFromString(input)

			require.Error(t, err)
			require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		}
	})
}
