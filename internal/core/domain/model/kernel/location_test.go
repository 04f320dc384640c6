package kernel_test

import (
	"testing"

	"pharmacy/internal/core/domain/model/kernel"
	"pharmacy/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLocation(t *testing.T) {
	t.Run("should create a valid location", func(t *testing.T) {
		loc, err := kernel.NewLocation(52.52, 13.405)

		require.NoError(t, err)
		assert.InDelta(t, 52.52, loc.Latitude(), 0.0001)
		assert.InDelta(t, 13.405, loc.Longitude(), 0.0001)
		assert.NoError(t, loc.Validate())
	})

	t.Run("should accept boundary coordinates", func(t *testing.T) {
		_, err := kernel.NewLocation(kernel.LocationMinLatitude, kernel.LocationMaxLongitude)

		require.NoError(t, err)
	})

	t.Run("should reject latitude out of range", func(t *testing.T) {
		_, err := kernel.NewLocation(91, 0)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("should reject longitude out of range", func(t *testing.T) {
		_, err := kernel.NewLocation(0, -180.5)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})
}

func TestLocation_IsEqual(t *testing.T) {
	loc1, _ := kernel.NewLocation(10, 20)
	loc2, _ := kernel.NewLocation(10, 20)
	loc3, _ := kernel.NewLocation(10, 21)

	assert.True(t, loc1.IsEqual(loc2))
	assert.False(t, loc1.IsEqual(loc3))
}

func TestLocation_Validate(t *testing.T) {
	t.Run("zero value fails validation", func(t *testing.T) {
		var loc kernel.Location

		err := loc.Validate()

		require.Error(t, err)
		assert.Equal(t, kernel.ErrLocationIsNotConstructed, err)
	})
}
