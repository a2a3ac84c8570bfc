package repositories

import (
	"context"
	"sort"
	"sync"

	"github.com/onsal/elektronik-storefront/app/models"
)

type CategoryRepositoryImpl interface {
	GetAll(ctx context.Context) ([]models.Category, error)
	GetByID(ctx context.Context, id int) (*models.Category, error)
	GetBySlug(ctx context.Context, slug string) (*models.Category, error)
	GetSubCategories(ctx context.Context, parentID int) ([]models.Category, error)
	Create(ctx context.Context, data *models.InsertCategory) (*models.Category, error)
}

type categoryRepository struct {
	mu         sync.RWMutex
	categories map[int]models.Category
	nextID     int
}

// NewCategoryRepository builds the in-memory category collection and seeds
// the fixed default hierarchy. Ids are assigned from a monotonic counter and
// never reused.
func NewCategoryRepository() CategoryRepositoryImpl {
	r := &categoryRepository{
		categories: make(map[int]models.Category),
		nextID:     1,
	}
	r.seedDefaults()
	return r
}

func (r *categoryRepository) GetAll(ctx context.Context) ([]models.Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.sortedLocked(), nil
}

func (r *categoryRepository) GetByID(ctx context.Context, id int) (*models.Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	category, ok := r.categories[id]
	if !ok {
		return nil, nil
	}
	return &category, nil
}

func (r *categoryRepository) GetBySlug(ctx context.Context, slug string) (*models.Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, category := range r.sortedLocked() {
		if category.Slug == slug {
			return &category, nil
		}
	}
	return nil, nil
}

func (r *categoryRepository) GetSubCategories(ctx context.Context, parentID int) ([]models.Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	subs := []models.Category{}
	for _, category := range r.sortedLocked() {
		if category.ParentID != nil && *category.ParentID == parentID {
			subs = append(subs, category)
		}
	}
	return subs, nil
}

func (r *categoryRepository) Create(ctx context.Context, data *models.InsertCategory) (*models.Category, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	category := models.Category{
		ID:          r.nextID,
		Name:        data.Name,
		Slug:        data.Slug,
		ParentID:    data.ParentID,
		MenuOrder:   data.MenuOrder,
		Description: data.Description,
		ImageURL:    data.ImageURL,
	}
	r.nextID++
	r.categories[category.ID] = category
	return &category, nil
}

// sortedLocked returns the categories in insertion order. Ids are monotonic
// and never reused, so ascending id order is insertion order. Caller holds
// at least a read lock.
func (r *categoryRepository) sortedLocked() []models.Category {
	ids := make([]int, 0, len(r.categories))
	for id := range r.categories {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	categories := make([]models.Category, 0, len(ids))
	for _, id := range ids {
		categories = append(categories, r.categories[id])
	}
	return categories
}

// seedDefaults reproduces the fixed launch hierarchy: four top level
// categories plus five children under Beyaz Eşya. Runs exactly once, at
// construction.
func (r *categoryRepository) seedDefaults() {
	ctx := context.Background()

	beyazEsya, _ := r.Create(ctx, &models.InsertCategory{
		Name:        "Beyaz Eşya",
		Slug:        "beyaz-esya",
		MenuOrder:   1,
		Description: "En kaliteli beyaz eşya markaları ve modelleri uygun fiyatlarla sizleri bekliyor.",
	})
	r.Create(ctx, &models.InsertCategory{
		Name:        "Televizyon",
		Slug:        "televizyon",
		MenuOrder:   2,
		Description: "En son teknoloji televizyonlar ve akıllı TV sistemleri burada.",
	})
	r.Create(ctx, &models.InsertCategory{
		Name:        "Küçük Ev Aletleri",
		Slug:        "kucuk-ev-aletleri",
		MenuOrder:   3,
		Description: "Mutfaktan banyoya, pratik ve kaliteli küçük ev aletleri.",
	})
	r.Create(ctx, &models.InsertCategory{
		Name:        "Kişisel Bakım",
		Slug:        "kisisel-bakim",
		MenuOrder:   4,
		Description: "Kişisel bakım ve güzellik için ihtiyacınız olan tüm ürünler.",
	})

	r.Create(ctx, &models.InsertCategory{
		Name:        "Çamaşır Makineleri",
		Slug:        "camasir-makineleri",
		MenuOrder:   1,
		ParentID:    &beyazEsya.ID,
		Description: "Enerji tasarruflu ve akıllı çamaşır makineleri.",
	})
	r.Create(ctx, &models.InsertCategory{
		Name:        "Bulaşık Makineleri",
		Slug:        "bulasik-makineleri",
		MenuOrder:   2,
		ParentID:    &beyazEsya.ID,
		Description: "Çeşitli özelliklere sahip bulaşık makineleri.",
	})
	r.Create(ctx, &models.InsertCategory{
		Name:        "Kurutma Makineleri",
		Slug:        "kurutma-makineleri",
		MenuOrder:   3,
		ParentID:    &beyazEsya.ID,
		Description: "Giysilerinizi hızlı ve etkili bir şekilde kurutun.",
	})
	r.Create(ctx, &models.InsertCategory{
		Name:        "Buzdolabı",
		Slug:        "buzdolabi",
		MenuOrder:   4,
		ParentID:    &beyazEsya.ID,
		Description: "Geniş iç hacimli ve enerji verimli buzdolapları.",
	})
	r.Create(ctx, &models.InsertCategory{
		Name:        "Kurutmalı Çamaşır Makineleri",
		Slug:        "kurutmali-camasir-makineleri",
		MenuOrder:   5,
		ParentID:    &beyazEsya.ID,
		Description: "Zamandan tasarruf sağlayan kurutmalı çamaşır makineleri.",
	})
}
