// Tests for the product catalog repository: validation, partial updates,
// cascade deletion, filtered listing, and the stock floor.
package sqlite

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Rudraksh121a/Storix/pkg/types"
)

func TestProductAddValidation(t *testing.T) {
	s := setupStore(t)

	tests := []struct {
		name    string
		product types.Product
		wantErr error
	}{
		{
			name:    "empty title",
			product: types.Product{Title: "", Price: dec(t, "10")},
			wantErr: types.ErrEmptyTitle,
		},
		{
			name:    "negative price",
			product: types.Product{Title: "Bread Pack", Price: dec(t, "-1")},
			wantErr: types.ErrNegativePrice,
		},
		{
			name:    "negative quantity",
			product: types.Product{Title: "Bread Pack", Price: dec(t, "30"), Quantity: -1},
			wantErr: types.ErrNegativeQuantity,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := s.Products().Add(tt.product)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.ErrorIs(t, err, types.ErrValidation)
		})
	}
}

func TestProductAddAssignsSequentialIDs(t *testing.T) {
	s := setupStore(t)

	first, err := s.Products().Add(types.Product{Title: "Milk 1L", Price: dec(t, "45")})
	require.NoError(t, err)
	second, err := s.Products().Add(types.Product{Title: "Bread Pack", Price: dec(t, "30")})
	require.NoError(t, err)

	assert.Greater(t, second, first)
}

func TestProductGetNotFound(t *testing.T) {
	s := setupStore(t)

	_, err := s.Products().Get(999)
	assert.ErrorIs(t, err, types.ErrNotFound)
}

func TestProductUpdatePartial(t *testing.T) {
	s := setupStore(t)

	id, err := s.Products().Add(types.Product{
		Title: "Milk 1L", Price: dec(t, "45"), Image: "milk.png", Quantity: 10,
	})
	require.NoError(t, err)

	newPrice := dec(t, "50")
	require.NoError(t, s.Products().Update(id, types.ProductUpdate{Price: &newPrice}))

	p, err := s.Products().Get(id)
	require.NoError(t, err)
	assert.True(t, p.Price.Equal(newPrice))
	// Untouched fields keep their values.
	assert.Equal(t, "Milk 1L", p.Title)
	assert.Equal(t, "milk.png", p.Image)
	assert.Equal(t, int64(10), p.Quantity)
}

func TestProductUpdateErrors(t *testing.T) {
	s := setupStore(t)

	id, err := s.Products().Add(types.Product{Title: "Milk 1L", Price: dec(t, "45")})
	require.NoError(t, err)

	title := "Milk 2L"
	assert.ErrorIs(t, s.Products().Update(999, types.ProductUpdate{Title: &title}), types.ErrNotFound)

	empty := ""
	assert.ErrorIs(t, s.Products().Update(id, types.ProductUpdate{Title: &empty}), types.ErrEmptyTitle)

	neg := dec(t, "-5")
	assert.ErrorIs(t, s.Products().Update(id, types.ProductUpdate{Price: &neg}), types.ErrNegativePrice)

	// No fields at all still reports a missing row.
	assert.ErrorIs(t, s.Products().Update(999, types.ProductUpdate{}), types.ErrNotFound)
	assert.NoError(t, s.Products().Update(id, types.ProductUpdate{}))
}

func TestProductDeleteCascades(t *testing.T) {
	s := setupStore(t)

	id, err := s.Products().Add(types.Product{Title: "Milk 1L", Price: dec(t, "45"), Quantity: 10})
	require.NoError(t, err)
	require.NoError(t, s.Cart().AddOrIncrement(id, 2))
	require.NoError(t, s.Sales().Record(id, 1, dec(t, "45")))

	require.NoError(t, s.Products().Delete(id))

	_, err = s.Products().Get(id)
	assert.ErrorIs(t, err, types.ErrNotFound)

	entries, err := s.Cart().List()
	require.NoError(t, err)
	assert.Empty(t, entries, "cart lines referencing the product must be gone")

	records, err := s.Sales().List(types.SalesFilter{ProductID: id})
	require.NoError(t, err)
	assert.Empty(t, records, "ledger rows referencing the product must be gone")
}

func TestProductDeleteNotFound(t *testing.T) {
	s := setupStore(t)
	assert.ErrorIs(t, s.Products().Delete(42), types.ErrNotFound)
}

func TestProductListFilterAndSort(t *testing.T) {
	s := setupStore(t)

	for _, p := range []types.Product{
		{Title: "Milk 1L", Price: dec(t, "45")},
		{Title: "Bread Pack", Price: dec(t, "30")},
		{Title: "Peanut Butter", Price: dec(t, "250")},
		{Title: "Tea Pack", Price: dec(t, "120")},
	} {
		_, err := s.Products().Add(p)
		require.NoError(t, err)
	}

	t.Run("case-insensitive substring", func(t *testing.T) {
		got, err := s.Products().List(types.ProductFilter{TitleContains: "pAcK"})
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, "Bread Pack", got[0].Title)
		assert.Equal(t, "Tea Pack", got[1].Title)
	})

	t.Run("price ascending", func(t *testing.T) {
		got, err := s.Products().List(types.ProductFilter{Sort: types.SortPriceAsc})
		require.NoError(t, err)
		require.Len(t, got, 4)
		assert.Equal(t, "Bread Pack", got[0].Title)
		assert.Equal(t, "Peanut Butter", got[3].Title)
	})

	t.Run("price descending", func(t *testing.T) {
		got, err := s.Products().List(types.ProductFilter{Sort: types.SortPriceDesc})
		require.NoError(t, err)
		require.Len(t, got, 4)
		assert.Equal(t, "Peanut Butter", got[0].Title)
		assert.Equal(t, "Bread Pack", got[3].Title)
	})

	t.Run("unfiltered keeps insertion order", func(t *testing.T) {
		got, err := s.Products().List(types.ProductFilter{})
		require.NoError(t, err)
		require.Len(t, got, 4)
		assert.Equal(t, "Milk 1L", got[0].Title)
		assert.Equal(t, "Tea Pack", got[3].Title)
	})
}

func TestDecrementStock(t *testing.T) {
	s := setupStore(t)

	id, err := s.Products().Add(types.Product{Title: "Milk 1L", Price: dec(t, "45"), Quantity: 10})
	require.NoError(t, err)

	require.NoError(t, s.Products().DecrementStock(id, 3))

	p, err := s.Products().Get(id)
	require.NoError(t, err)
	assert.Equal(t, int64(7), p.Quantity)
}

func TestDecrementStockFloor(t *testing.T) {
	s := setupStore(t)

	id, err := s.Products().Add(types.Product{Title: "Milk 1L", Price: dec(t, "45"), Quantity: 2})
	require.NoError(t, err)

	err = s.Products().DecrementStock(id, 3)
	assert.ErrorIs(t, err, types.ErrInsufficientStock)

	p, err := s.Products().Get(id)
	require.NoError(t, err)
	assert.Equal(t, int64(2), p.Quantity, "failed decrement must leave stock unchanged")
}

func TestDecrementStockNotFound(t *testing.T) {
	s := setupStore(t)
	assert.ErrorIs(t, s.Products().DecrementStock(7, 1), types.ErrNotFound)
}
