package errs_test

import (
	"context"
	"errors"
	"testing"

	"shop/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectNotFoundError(t *testing.T) {
	t.Run("NewObjectNotFoundError", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("customerId", "123")

		assert.Equal(t, "customerId", err.ParamName)
		assert.Equal(t, "123", err.ID)
		require.NoError(t, err.Cause)
		assert.Equal(t, "object not found: 123", err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("NewObjectNotFoundErrorWithCause", func(t *testing.T) {
		cause := errors.New("database connection failed")
		err := errs.NewObjectNotFoundErrorWithCause("customerId", "123", cause)

		assert.Equal(t, "customerId", err.ParamName)
		assert.Equal(t, "123", err.ID)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"object not found: param is: customerId, ID is: 123 (cause: database connection failed)",
			err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("Error with different ID types", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("orderNumber", 456)
		assert.Equal(t, "object not found: %!s(int=456)", err.Error())
	})
}

func TestValueIsInvalidError(t *testing.T) {
	t.Run("NewValueIsInvalidError", func(t *testing.T) {
		err := errs.NewValueIsInvalidError("status")

		assert.Equal(t, "status", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is invalid: status", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})

	t.Run("NewValueIsInvalidErrorWithCause", func(t *testing.T) {
		cause := errors.New("unrecognized value")
		err := errs.NewValueIsInvalidErrorWithCause("status", cause)

		assert.Equal(t, "status", err.ParamName)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is invalid: status (cause: unrecognized value)", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})
}

func TestValueIsOutOfRangeError(t *testing.T) {
	t.Run("NewValueIsOutOfRangeError", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("discountPercent", 150, 0, 100)

		assert.Equal(t, "discountPercent", err.ParamName)
		assert.Equal(t, 150, err.Value)
		assert.Equal(t, 0, err.Min)
		assert.Equal(t, 100, err.Max)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is invalid: 150 is discountPercent, min value is 0, max value is 100", err.Error())
		assert.Equal(t, errs.ErrValueIsOutOfRange, err.Unwrap())
	})

	t.Run("NewValueIsOutOfRangeErrorWithCause", func(t *testing.T) {
		cause := errors.New("validation failed")
		err := errs.NewValueIsOutOfRangeErrorWithCause("quantity", -5, 1, 100, cause)

		assert.Equal(t, "quantity", err.ParamName)
		assert.Equal(t, -5, err.Value)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"value is invalid: -5 is quantity, min value is 1, max value is 100 (cause: validation failed)",
			err.Error())
		assert.Equal(t, errs.ErrValueIsOutOfRange, err.Unwrap())
	})

	t.Run("sanitize function with newlines", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("text", "hello\nworld", 0, 10)
		assert.Contains(t, err.Error(), "hello world")
		assert.NotContains(t, err.Error(), "\n")
	})
}

func TestValueIsRequiredError(t *testing.T) {
	t.Run("NewValueIsRequiredError", func(t *testing.T) {
		err := errs.NewValueIsRequiredError("deliveryAddress")

		assert.Equal(t, "deliveryAddress", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is required: deliveryAddress", err.Error())
		assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())
	})

	t.Run("NewValueIsRequiredErrorWithCause", func(t *testing.T) {
		cause := errors.New("missing required field")
		err := errs.NewValueIsRequiredErrorWithCause("deliveryAddress", cause)

		assert.Equal(t, "deliveryAddress", err.ParamName)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is required: deliveryAddress (cause: missing required field)", err.Error())
		assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())
	})
}

func TestInvalidTransitionError(t *testing.T) {
	t.Run("NewInvalidTransitionError", func(t *testing.T) {
		err := errs.NewInvalidTransitionError("delivered", "cancelled")

		assert.Equal(t, "delivered", err.From)
		assert.Equal(t, "cancelled", err.To)
		require.NoError(t, err.Cause)
		assert.Equal(t, "invalid transition: from is: delivered, to is: cancelled", err.Error())
		assert.Equal(t, errs.ErrInvalidTransition, err.Unwrap())
	})

	t.Run("NewInvalidTransitionErrorWithCause", func(t *testing.T) {
		cause := errors.New("order is in a terminal state")
		err := errs.NewInvalidTransitionErrorWithCause("cancelled", "shipped", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"invalid transition: from is: cancelled, to is: shipped (cause: order is in a terminal state)",
			err.Error())
	})
}

func TestStorageUnavailableError(t *testing.T) {
	t.Run("NewStorageUnavailableError", func(t *testing.T) {
		err := errs.NewStorageUnavailableError("allocate order number")

		assert.Equal(t, "allocate order number", err.Op)
		require.NoError(t, err.Cause)
		assert.Equal(t, "storage unavailable: allocate order number", err.Error())
	})

	t.Run("NewStorageUnavailableErrorWithCause", func(t *testing.T) {
		cause := errors.New("connection refused")
		err := errs.NewStorageUnavailableErrorWithCause("create order", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "storage unavailable: create order (cause: connection refused)", err.Error())
	})

	t.Run("deadline expiry stays matchable through the chain", func(t *testing.T) {
		err := errs.NewStorageUnavailableErrorWithCause("create order", context.DeadlineExceeded)

		require.ErrorIs(t, err, errs.ErrStorageUnavailable)
		require.ErrorIs(t, err, context.DeadlineExceeded)
	})
}

func TestSentinelErrors(t *testing.T) {
	t.Run("sentinel errors are defined", func(t *testing.T) {
		require.Error(t, errs.ErrObjectNotFound)
		require.Error(t, errs.ErrValueIsInvalid)
		require.Error(t, errs.ErrValueIsOutOfRange)
		require.Error(t, errs.ErrValueIsRequired)
		require.Error(t, errs.ErrInvalidTransition)
		require.Error(t, errs.ErrStorageUnavailable)
	})

	t.Run("error messages match expectations", func(t *testing.T) {
		assert.Equal(t, "object not found", errs.ErrObjectNotFound.Error())
		assert.Equal(t, "value is invalid", errs.ErrValueIsInvalid.Error())
		assert.Equal(t, "value is out of range", errs.ErrValueIsOutOfRange.Error())
		assert.Equal(t, "value is required", errs.ErrValueIsRequired.Error())
		assert.Equal(t, "invalid transition", errs.ErrInvalidTransition.Error())
		assert.Equal(t, "storage unavailable", errs.ErrStorageUnavailable.Error())
	})
}

func TestErrorsCanBeUnwrapped(t *testing.T) {
	t.Run("errors.Is works with custom errors", func(t *testing.T) {
		objectNotFoundErr := errs.NewObjectNotFoundError("customerId", "123")
		require.ErrorIs(t, objectNotFoundErr, errs.ErrObjectNotFound)

		valueInvalidErr := errs.NewValueIsInvalidError("status")
		require.ErrorIs(t, valueInvalidErr, errs.ErrValueIsInvalid)

		valueOutOfRangeErr := errs.NewValueIsOutOfRangeError("discountPercent", 150, 0, 100)
		require.ErrorIs(t, valueOutOfRangeErr, errs.ErrValueIsOutOfRange)

		valueRequiredErr := errs.NewValueIsRequiredError("deliveryAddress")
		require.ErrorIs(t, valueRequiredErr, errs.ErrValueIsRequired)

		invalidTransitionErr := errs.NewInvalidTransitionError("delivered", "pending")
		require.ErrorIs(t, invalidTransitionErr, errs.ErrInvalidTransition)

		storageErr := errs.NewStorageUnavailableError("sequence increment")
		require.ErrorIs(t, storageErr, errs.ErrStorageUnavailable)
	})
}
