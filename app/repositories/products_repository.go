package repositories

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/onsal/elektronik-storefront/app/models"
)

type ProductRepositoryImpl interface {
	GetAll(ctx context.Context) ([]models.Product, error)
	GetByID(ctx context.Context, id int) (*models.Product, error)
	GetBySlug(ctx context.Context, slug string) (*models.Product, error)
	GetByCategory(ctx context.Context, categoryID int) ([]models.Product, error)
	GetFeatured(ctx context.Context) ([]models.Product, error)
	Create(ctx context.Context, data *models.InsertProduct) (*models.Product, error)
	Update(ctx context.Context, id int, patch *models.ProductPatch) (*models.Product, error)
	Delete(ctx context.Context, id int) error
}

type productRepository struct {
	mu       sync.RWMutex
	products map[int]models.Product
	nextID   int
}

func NewProductRepository() ProductRepositoryImpl {
	return &productRepository{
		products: make(map[int]models.Product),
		nextID:   1,
	}
}

func (r *productRepository) GetAll(ctx context.Context) ([]models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.sortedLocked(), nil
}

func (r *productRepository) GetByID(ctx context.Context, id int) (*models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	product, ok := r.products[id]
	if !ok {
		return nil, nil
	}
	return &product, nil
}

func (r *productRepository) GetBySlug(ctx context.Context, slug string) (*models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, product := range r.sortedLocked() {
		if product.Slug == slug {
			return &product, nil
		}
	}
	return nil, nil
}

// GetByCategory matches categoryId exactly; it does not recurse into
// subcategories.
func (r *productRepository) GetByCategory(ctx context.Context, categoryID int) ([]models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	products := []models.Product{}
	for _, product := range r.sortedLocked() {
		if product.CategoryID == categoryID {
			products = append(products, product)
		}
	}
	return products, nil
}

func (r *productRepository) GetFeatured(ctx context.Context) ([]models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	products := []models.Product{}
	for _, product := range r.sortedLocked() {
		if product.Featured {
			products = append(products, product)
		}
	}
	return products, nil
}

func (r *productRepository) Create(ctx context.Context, data *models.InsertProduct) (*models.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	specs := data.Specs
	if specs == nil {
		specs = map[string]string{}
	}
	imageURLs := data.ImageURLs
	if imageURLs == nil {
		imageURLs = []string{}
	}
	discountLabelColor := data.DiscountLabelColor
	if discountLabelColor == "" {
		discountLabelColor = models.DefaultDiscountLabelColor
	}

	product := models.Product{
		ID:                      r.nextID,
		Name:                    data.Name,
		Slug:                    data.Slug,
		Description:             data.Description,
		ShortDescription:        data.ShortDescription,
		Specs:                   specs,
		CategoryID:              data.CategoryID,
		ImageURL:                data.ImageURL,
		ImageURLs:               imageURLs,
		SourceURL:               data.SourceURL,
		Brand:                   data.Brand,
		BrandLogoURL:            data.BrandLogoURL,
		AuthorizedDealerLogoURL: data.AuthorizedDealerLogoURL,
		WarrantyPeriod:          data.WarrantyPeriod,
		TechnicalServiceLogoURL: data.TechnicalServiceLogoURL,
		AuthorizedDealerURL:     data.AuthorizedDealerURL,
		TechnicalServiceURL:     data.TechnicalServiceURL,
		DiscountLabelColor:      discountLabelColor,
		Price:                   data.Price,
		DiscountedPrice:         data.DiscountedPrice,
		Featured:                data.Featured,
		SeoTitle:                data.SeoTitle,
		SeoDescription:          data.SeoDescription,
	}
	r.nextID++
	r.products[product.ID] = product
	return &product, nil
}

func (r *productRepository) Update(ctx context.Context, id int, patch *models.ProductPatch) (*models.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	product, ok := r.products[id]
	if !ok {
		return nil, fmt.Errorf("update product %d: %w", id, ErrNotFound)
	}
	patch.Apply(&product)
	r.products[id] = product
	return &product, nil
}

func (r *productRepository) Delete(ctx context.Context, id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.products[id]; !ok {
		return fmt.Errorf("delete product %d: %w", id, ErrNotFound)
	}
	delete(r.products, id)
	return nil
}

// sortedLocked returns products in insertion order (ascending id). Caller
// holds at least a read lock.
func (r *productRepository) sortedLocked() []models.Product {
	ids := make([]int, 0, len(r.products))
	for id := range r.products {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	products := make([]models.Product, 0, len(ids))
	for _, id := range ids {
		products = append(products, r.products[id])
	}
	return products
}
