package repositories

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/onsal/elektronik-storefront/app/models"
)

func insertWashingMachine(slug string) *models.InsertProduct {
	return &models.InsertProduct{
		Name:             "Arçelik 9103 D Çamaşır Makinesi",
		Slug:             slug,
		Description:      "10 kg kapasiteli, A enerji sınıfı çamaşır makinesi.",
		ShortDescription: "10 kg çamaşır makinesi",
		Specs:            map[string]string{"Kapasite": "10 kg"},
		CategoryID:       5,
		ImageURL:         "/uploads/arcelik-9103.jpg",
		Brand:            "Arçelik",
		Price:            decimal.RequireFromString("100.00"),
	}
}

func TestProductRepository_CreateDefaults(t *testing.T) {
	repo := NewProductRepository()
	ctx := context.Background()

	data := insertWashingMachine("arcelik-9103-d")
	data.Specs = nil
	data.ImageURLs = nil

	product, err := repo.Create(ctx, data)
	require.NoError(t, err)

	assert.Equal(t, 1, product.ID)
	assert.NotNil(t, product.Specs)
	assert.Empty(t, product.Specs)
	assert.NotNil(t, product.ImageURLs)
	assert.Empty(t, product.ImageURLs)
	assert.Equal(t, models.DefaultDiscountLabelColor, product.DiscountLabelColor)
	assert.False(t, product.Featured)
	assert.Nil(t, product.DiscountedPrice)
	assert.True(t, product.Price.Equal(decimal.RequireFromString("100.00")))
}

func TestProductRepository_IDsStrictlyIncreaseAndAreNeverReused(t *testing.T) {
	repo := NewProductRepository()
	ctx := context.Background()

	first, err := repo.Create(ctx, insertWashingMachine("p-1"))
	require.NoError(t, err)
	second, err := repo.Create(ctx, insertWashingMachine("p-2"))
	require.NoError(t, err)
	assert.Equal(t, 1, first.ID)
	assert.Equal(t, 2, second.ID)

	require.NoError(t, repo.Delete(ctx, second.ID))

	third, err := repo.Create(ctx, insertWashingMachine("p-3"))
	require.NoError(t, err)
	assert.Equal(t, 3, third.ID, "ids are not reused after a delete")
}

func TestProductRepository_UpdatePatchesOnlySuppliedFields(t *testing.T) {
	repo := NewProductRepository()
	ctx := context.Background()

	created, err := repo.Create(ctx, insertWashingMachine("arcelik-9103-d"))
	require.NoError(t, err)

	newName := "Arçelik 9103 DS Çamaşır Makinesi"
	updated, err := repo.Update(ctx, created.ID, &models.ProductPatch{Name: &newName})
	require.NoError(t, err)

	assert.Equal(t, newName, updated.Name)
	assert.Equal(t, created.Slug, updated.Slug)
	assert.Equal(t, created.Brand, updated.Brand)
	assert.Equal(t, created.CategoryID, updated.CategoryID)
	assert.True(t, created.Price.Equal(updated.Price))
	assert.Equal(t, created.Featured, updated.Featured)
}

func TestProductRepository_UpdateUnknownIDFailsWithoutMutation(t *testing.T) {
	repo := NewProductRepository()
	ctx := context.Background()

	created, err := repo.Create(ctx, insertWashingMachine("arcelik-9103-d"))
	require.NoError(t, err)

	name := "değişmemeli"
	_, err = repo.Update(ctx, 999, &models.ProductPatch{Name: &name})
	require.ErrorIs(t, err, ErrNotFound)

	all, err := repo.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, created.Name, all[0].Name)
}

func TestProductRepository_FeaturedFlow(t *testing.T) {
	repo := NewProductRepository()
	ctx := context.Background()

	data := insertWashingMachine("arcelik-9103-d")
	discounted := decimal.RequireFromString("80.00")
	data.DiscountedPrice = &discounted

	created, err := repo.Create(ctx, data)
	require.NoError(t, err)

	featured, err := repo.GetFeatured(ctx)
	require.NoError(t, err)
	assert.Empty(t, featured, "featured defaults to false")

	on := true
	_, err = repo.Update(ctx, created.ID, &models.ProductPatch{Featured: &on})
	require.NoError(t, err)

	featured, err = repo.GetFeatured(ctx)
	require.NoError(t, err)
	require.Len(t, featured, 1)
	assert.Equal(t, created.ID, featured[0].ID)
	require.NotNil(t, featured[0].DiscountedPrice)
	assert.True(t, featured[0].DiscountedPrice.Equal(discounted))
}

func TestProductRepository_GetByCategoryMatchesExactly(t *testing.T) {
	repo := NewProductRepository()
	ctx := context.Background()

	inCategory := insertWashingMachine("p-1")
	inCategory.CategoryID = 5
	other := insertWashingMachine("p-2")
	other.CategoryID = 1 // parent of category 5; must not match

	_, err := repo.Create(ctx, inCategory)
	require.NoError(t, err)
	_, err = repo.Create(ctx, other)
	require.NoError(t, err)

	products, err := repo.GetByCategory(ctx, 5)
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "p-1", products[0].Slug)
}

func TestProductRepository_GetBySlug(t *testing.T) {
	repo := NewProductRepository()
	ctx := context.Background()

	_, err := repo.Create(ctx, insertWashingMachine("arcelik-9103-d"))
	require.NoError(t, err)

	product, err := repo.GetBySlug(ctx, "arcelik-9103-d")
	require.NoError(t, err)
	require.NotNil(t, product)
	assert.Equal(t, 1, product.ID)

	missing, err := repo.GetBySlug(ctx, "olmayan-urun")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestProductRepository_Delete(t *testing.T) {
	repo := NewProductRepository()
	ctx := context.Background()

	created, err := repo.Create(ctx, insertWashingMachine("arcelik-9103-d"))
	require.NoError(t, err)

	require.NoError(t, repo.Delete(ctx, created.ID))

	all, err := repo.GetAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)

	err = repo.Delete(ctx, created.ID)
	require.ErrorIs(t, err, ErrNotFound)
}
