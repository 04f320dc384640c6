package product_test

import (
	"testing"

	"pharmacy/internal/core/domain/model/kernel"
	"pharmacy/internal/core/domain/model/product"
	"pharmacy/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestProduct(t *testing.T, stock int) *product.Product {
	t.Helper()
	p, err := product.NewProduct(kernel.NewUUID(), "Ibuprofen 400mg", 599, stock)
	require.NoError(t, err)
	return p
}

func TestNewProduct(t *testing.T) {
	t.Run("creates product with zero reservations", func(t *testing.T) {
		p := newTestProduct(t, 10)

		assert.Equal(t, 10, p.Stock())
		assert.Equal(t, 0, p.ReservedStock())
		assert.Equal(t, 10, p.AvailableStock())
		assert.NoError(t, p.Validate())
	})

	t.Run("rejects invalid inputs", func(t *testing.T) {
		_, err := product.NewProduct(kernel.UUID{}, "", -1, -5)

		require.Error(t, err)
	})
}

func TestRestoreProduct(t *testing.T) {
	t.Run("restores reservation counter", func(t *testing.T) {
		p, err := product.RestoreProduct(kernel.NewUUID(), "Aspirin", 300, 8, 3)

		require.NoError(t, err)
		assert.Equal(t, 3, p.ReservedStock())
		assert.Equal(t, 5, p.AvailableStock())
	})

	t.Run("rejects reservation above stock", func(t *testing.T) {
		_, err := product.RestoreProduct(kernel.NewUUID(), "Aspirin", 300, 8, 9)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("rejects negative reservation", func(t *testing.T) {
		_, err := product.RestoreProduct(kernel.NewUUID(), "Aspirin", 300, 8, -1)

		require.Error(t, err)
	})
}

func TestProduct_Reserve(t *testing.T) {
	t.Run("reserves available units", func(t *testing.T) {
		p := newTestProduct(t, 10)

		require.NoError(t, p.Reserve(4))

		assert.Equal(t, 4, p.ReservedStock())
		assert.Equal(t, 6, p.AvailableStock())
	})

	t.Run("denies reservation beyond availability", func(t *testing.T) {
		p := newTestProduct(t, 10)
		require.NoError(t, p.Reserve(8))

		err := p.Reserve(3)

		require.ErrorIs(t, err, errs.ErrInsufficientStock)
		var stockErr *errs.InsufficientStockError
		require.ErrorAs(t, err, &stockErr)
		assert.Equal(t, 3, stockErr.Requested)
		assert.Equal(t, 2, stockErr.Available)
		assert.Equal(t, 8, p.ReservedStock())
	})

	t.Run("rejects non-positive quantity", func(t *testing.T) {
		p := newTestProduct(t, 10)

		require.ErrorIs(t, p.Reserve(0), errs.ErrValueIsInvalid)
		require.ErrorIs(t, p.Reserve(-2), errs.ErrValueIsInvalid)
	})

	t.Run("invariant holds across operation sequences", func(t *testing.T) {
		p := newTestProduct(t, 5)

		_ = p.Reserve(3)
		_, _ = p.Release(1)
		_ = p.Reserve(2)
		_ = p.Commit(2)
		_, _ = p.Release(4)

		assert.GreaterOrEqual(t, p.Stock(), p.ReservedStock())
		assert.GreaterOrEqual(t, p.ReservedStock(), 0)
	})
}

func TestProduct_Release(t *testing.T) {
	t.Run("returns earmarked units", func(t *testing.T) {
		p := newTestProduct(t, 10)
		require.NoError(t, p.Reserve(5))

		floored, err := p.Release(5)

		require.NoError(t, err)
		assert.False(t, floored)
		assert.Equal(t, 0, p.ReservedStock())
	})

	t.Run("double release floors at zero and reports anomaly", func(t *testing.T) {
		p := newTestProduct(t, 10)
		require.NoError(t, p.Reserve(2))
		_, err := p.Release(2)
		require.NoError(t, err)

		floored, err := p.Release(2)

		require.NoError(t, err)
		assert.True(t, floored)
		assert.Equal(t, 0, p.ReservedStock())
	})
}

func TestProduct_Commit(t *testing.T) {
	t.Run("decrements stock and reservation together", func(t *testing.T) {
		p := newTestProduct(t, 10)
		require.NoError(t, p.Reserve(4))

		require.NoError(t, p.Commit(4))

		assert.Equal(t, 6, p.Stock())
		assert.Equal(t, 0, p.ReservedStock())
	})

	t.Run("floors both counters at zero", func(t *testing.T) {
		p := newTestProduct(t, 3)
		require.NoError(t, p.Reserve(1))

		require.NoError(t, p.Commit(5))

		assert.Equal(t, 0, p.Stock())
		assert.Equal(t, 0, p.ReservedStock())
	})
}

func TestProduct_Validate(t *testing.T) {
	t.Run("zero value fails validation", func(t *testing.T) {
		var p product.Product

		assert.ErrorIs(t, p.Validate(), product.ErrProductIsNotConstructed)
	})

	t.Run("nil product fails validation", func(t *testing.T) {
		var p *product.Product

		assert.ErrorIs(t, p.Validate(), product.ErrProductIsNotConstructed)
	})
}
