package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/laptopfinder/backend/internal/domain"
)

func TestNewStore(t *testing.T) {
	store := NewStore(SampleProducts())

	assert.Equal(t, 10, store.Len())
	assert.Equal(t, "1", store.All()[0].ID)
	assert.Equal(t, "10", store.All()[9].ID)
}

func TestNewStore_DuplicateIDKeepsFirst(t *testing.T) {
	store := NewStore([]domain.Product{
		{ID: "a", Brand: "Dell", Name: "first"},
		{ID: "b", Brand: "HP", Name: "other"},
		{ID: "a", Brand: "Dell", Name: "second"},
	})

	require.Equal(t, 2, store.Len())
	p, ok := store.GetByID("a")
	require.True(t, ok)
	assert.Equal(t, "first", p.Name)
}

func TestGetByID(t *testing.T) {
	store := NewStore(SampleProducts())

	p, ok := store.GetByID("7")
	require.True(t, ok)
	assert.Equal(t, "MSI", p.Brand)

	_, ok = store.GetByID("missing")
	assert.False(t, ok)
}

func TestBrands(t *testing.T) {
	store := NewStore(SampleProducts())

	brands := store.Brands()
	assert.Len(t, brands, 10)
	assert.Equal(t, "Acer", brands[0])
	assert.IsIncreasing(t, brands)
}

func TestBrands_EmptyCatalog(t *testing.T) {
	store := NewStore(nil)
	assert.Empty(t, store.Brands())
	assert.Empty(t, store.All())
}

func TestFilterByBrand(t *testing.T) {
	store := NewStore(SampleProducts())

	t.Run("case-insensitive brand", func(t *testing.T) {
		got := store.FilterByBrand("dell", 0)
		require.Len(t, got, 1)
		assert.Equal(t, "XPS 13", got[0].Name)
	})

	t.Run("limit applies", func(t *testing.T) {
		got := store.FilterByBrand("", 3)
		require.Len(t, got, 3)
		assert.Equal(t, []string{"1", "2", "3"}, []string{got[0].ID, got[1].ID, got[2].ID})
	})

	t.Run("unknown brand", func(t *testing.T) {
		assert.Empty(t, store.FilterByBrand("commodore", 10))
	})
}
