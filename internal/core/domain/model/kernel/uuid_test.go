package kernel_test

import (
	"testing"

	"shop/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUUID(t *testing.T) {
	t.Run("should create a new UUID", func(t *testing.T) {
		id := kernel.NewUUID()

		assert.NotEmpty(t, id.String())
		assert.NoError(t, id.Validate())
		assert.NotEqual(t, "00000000-0000-0000-0000-000000000000", id.String())
	})

	t.Run("should create unique UUIDs", func(t *testing.T) {
		id1 := kernel.NewUUID()
		id2 := kernel.NewUUID()

		assert.NotEqual(t, id1.String(), id2.String())
		assert.False(t, id1.IsEqual(id2))
	})
}

func TestUUIDFromString(t *testing.T) {
	validUUID := "550e8400-e29b-41d4-a716-446655440000"

	t.Run("should create UUID from valid string", func(t *testing.T) {
		id, err := kernel.UUIDFromString(validUUID)

		require.NoError(t, err)
		assert.Equal(t, validUUID, id.String())
		assert.NoError(t, id.Validate())
	})

	t.Run("should accept UUID with braces", func(t *testing.T) {
		id, err := kernel.UUIDFromString("{550e8400-e29b-41d4-a716-446655440000}")

		require.NoError(t, err)
		assert.Equal(t, validUUID, id.String())
	})

	t.Run("should return error for invalid UUID format", func(t *testing.T) {
		testCases := []string{
			"",
			"not-a-uuid",
			"550e8400-e29b-41d4-a716",
			"550e8400-e29b-41d4-a716-446655440000-extra",
			"zzze8400-e29b-41d4-a716-446655440000",
		}

		for _, input := range testCases {
			_, err := kernel.UUIDFromString(input)

			require.Error(t, err)
			assert.Contains(t, err.Error(), "invalid UUID format")
		}
	})
}

func TestUUIDFromBytes(t *testing.T) {
	t.Run("should create UUID from valid bytes", func(t *testing.T) {
		source := uuid.New()

		id, err := kernel.UUIDFromBytes(source[:])

		require.NoError(t, err)
		assert.Equal(t, source.String(), id.String())
	})

	t.Run("should reject wrong-length byte slices", func(t *testing.T) {
		_, err := kernel.UUIDFromBytes([]byte{0x01, 0x02, 0x03})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid UUID format")
	})

	t.Run("should reject nil UUID bytes", func(t *testing.T) {
		var zero [16]byte

		_, err := kernel.UUIDFromBytes(zero[:])

		require.Error(t, err)
	})
}

func TestUUID_Validate(t *testing.T) {
	t.Run("constructed UUID is valid", func(t *testing.T) {
		id := kernel.NewUUID()
		require.NoError(t, id.Validate())
	})

	t.Run("zero value UUID is invalid", func(t *testing.T) {
		var id kernel.UUID

		err := id.Validate()

		require.Error(t, err)
		assert.Equal(t, kernel.ErrUUIDIsNotConstructed, err)
	})
}

func TestUUID_IsEqual(t *testing.T) {
	id1 := kernel.NewUUID()
	id2 := id1
	id3 := kernel.NewUUID()

	assert.True(t, id1.IsEqual(id2))
	assert.False(t, id1.IsEqual(id3))
}
