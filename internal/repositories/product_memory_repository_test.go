package repositories_test

import (
	"testing"

	"renewkart/internal/repositories"
	"renewkart/internal/seed"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seededProductRepo(t *testing.T) *repositories.MemoryProductRepository {
	t.Helper()
	repo := repositories.NewMemoryProductRepository()
	for _, product := range seed.Products() {
		p := product
		require.NoError(t, repo.Create(&p))
	}
	return repo
}

func TestMemoryProductRepository_SequentialIDs(t *testing.T) {
	repo := seededProductRepo(t)

	products, err := repo.List(repositories.ProductFilter{})
	assert.NoError(t, err)
	require.Len(t, products, 6)
	for i, p := range products {
		assert.Equal(t, i+1, p.ID)
	}
}

func TestMemoryProductRepository_ListUnfiltered(t *testing.T) {
	repo := seededProductRepo(t)

	products, err := repo.List(repositories.ProductFilter{})
	assert.NoError(t, err)
	assert.Len(t, products, 6)
}

func TestMemoryProductRepository_FilterCategory(t *testing.T) {
	repo := seededProductRepo(t)

	phones, err := repo.List(repositories.ProductFilter{Category: "Phones"})
	assert.NoError(t, err)
	require.Len(t, phones, 3)
	for _, p := range phones {
		assert.Equal(t, "Phones", p.Category)
	}

	// "All" means no category constraint.
	all, err := repo.List(repositories.ProductFilter{Category: "All"})
	assert.NoError(t, err)
	assert.Len(t, all, 6)
}

func TestMemoryProductRepository_FilterPriceBounds(t *testing.T) {
	repo := seededProductRepo(t)

	cheap, err := repo.List(repositories.ProductFilter{MaxPrice: 30000})
	assert.NoError(t, err)
	require.Len(t, cheap, 2)
	for _, p := range cheap {
		assert.LessOrEqual(t, p.Price, 30000)
	}

	// Bounds are inclusive.
	exact, err := repo.List(repositories.ProductFilter{MinPrice: 45999, MaxPrice: 45999})
	assert.NoError(t, err)
	require.Len(t, exact, 1)
	assert.Equal(t, "iPhone 13 Pro (Refurbished)", exact[0].Name)
}

func TestMemoryProductRepository_FilterSearch(t *testing.T) {
	repo := seededProductRepo(t)

	// Search matches name or brand, case-insensitively.
	apple, err := repo.List(repositories.ProductFilter{Search: "aPpLe"})
	assert.NoError(t, err)
	assert.Len(t, apple, 2)

	macbook, err := repo.List(repositories.ProductFilter{Search: "macbook"})
	assert.NoError(t, err)
	require.Len(t, macbook, 1)
	assert.Equal(t, "MacBook Air M1", macbook[0].Name)

	none, err := repo.List(repositories.ProductFilter{Search: "toaster"})
	assert.NoError(t, err)
	assert.Empty(t, none)
}

func TestMemoryProductRepository_FilterCombined(t *testing.T) {
	repo := seededProductRepo(t)

	// All provided predicates must hold together.
	results, err := repo.List(repositories.ProductFilter{
		Category:  "Phones",
		Condition: "Good",
		MaxPrice:  30000,
	})
	assert.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "OnePlus 9 Pro", results[0].Name)
}

func TestMemoryProductRepository_FilterCondition(t *testing.T) {
	repo := seededProductRepo(t)

	fair, err := repo.List(repositories.ProductFilter{Condition: "Fair"})
	assert.NoError(t, err)
	require.Len(t, fair, 1)
	assert.Equal(t, "Dell XPS 13", fair[0].Name)
}

func TestMemoryProductRepository_GetByID(t *testing.T) {
	repo := seededProductRepo(t)

	product, err := repo.GetByID(1)
	assert.NoError(t, err)
	assert.Equal(t, "iPhone 13 Pro (Refurbished)", product.Name)

	missing, err := repo.GetByID(999)
	assert.Nil(t, missing)
	assert.ErrorIs(t, err, repositories.ErrNotFound)
}
