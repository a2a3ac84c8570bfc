package repositories

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/onsal/elektronik-storefront/app/models"
)

type BannerRepositoryImpl interface {
	GetAll(ctx context.Context) ([]models.Banner, error)
	GetActive(ctx context.Context) ([]models.Banner, error)
	Create(ctx context.Context, data *models.InsertBanner) (*models.Banner, error)
	UpdateOrder(ctx context.Context, id int, order int) (*models.Banner, error)
	ToggleActive(ctx context.Context, id int) (*models.Banner, error)
}

type bannerRepository struct {
	mu      sync.RWMutex
	banners map[int]models.Banner
	nextID  int
}

func NewBannerRepository() BannerRepositoryImpl {
	return &bannerRepository{
		banners: make(map[int]models.Banner),
		nextID:  1,
	}
}

// GetAll returns every banner sorted ascending by display order. Equal orders
// keep their creation sequence.
func (r *bannerRepository) GetAll(ctx context.Context) ([]models.Banner, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.sortedLocked(), nil
}

func (r *bannerRepository) GetActive(ctx context.Context) ([]models.Banner, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	active := []models.Banner{}
	for _, banner := range r.sortedLocked() {
		if banner.Active {
			active = append(active, banner)
		}
	}
	return active, nil
}

func (r *bannerRepository) Create(ctx context.Context, data *models.InsertBanner) (*models.Banner, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	active := true
	if data.Active != nil {
		active = *data.Active
	}

	banner := models.Banner{
		ID:          r.nextID,
		Title:       data.Title,
		Description: data.Description,
		ImageURL:    data.ImageURL,
		Order:       data.Order,
		Active:      active,
		CategoryID:  data.CategoryID,
	}
	r.nextID++
	r.banners[banner.ID] = banner
	return &banner, nil
}

func (r *bannerRepository) UpdateOrder(ctx context.Context, id int, order int) (*models.Banner, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	banner, ok := r.banners[id]
	if !ok {
		return nil, fmt.Errorf("update banner order %d: %w", id, ErrNotFound)
	}
	banner.Order = order
	r.banners[id] = banner
	return &banner, nil
}

func (r *bannerRepository) ToggleActive(ctx context.Context, id int) (*models.Banner, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	banner, ok := r.banners[id]
	if !ok {
		return nil, fmt.Errorf("toggle banner %d: %w", id, ErrNotFound)
	}
	banner.Active = !banner.Active
	r.banners[id] = banner
	return &banner, nil
}

func (r *bannerRepository) sortedLocked() []models.Banner {
	ids := make([]int, 0, len(r.banners))
	for id := range r.banners {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	banners := make([]models.Banner, 0, len(ids))
	for _, id := range ids {
		banners = append(banners, r.banners[id])
	}
	sort.SliceStable(banners, func(i, j int) bool {
		return banners[i].Order < banners[j].Order
	})
	return banners
}
