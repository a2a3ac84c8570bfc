package repositories

import (
	"context"
	"sync"

	"github.com/onsal/elektronik-storefront/app/models"
)

const themeSettingsID = 1

type ThemeRepositoryImpl interface {
	Get(ctx context.Context) (*models.ThemeSettings, error)
	Update(ctx context.Context, data *models.InsertThemeSettings) (*models.ThemeSettings, error)
}

type themeRepository struct {
	mu    sync.RWMutex
	theme *models.ThemeSettings
}

func NewThemeRepository() ThemeRepositoryImpl {
	return &themeRepository{}
}

// Get returns nil until a theme has been saved; the route layer serves the
// schema defaults in that case.
func (r *themeRepository) Get(ctx context.Context) (*models.ThemeSettings, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.theme == nil {
		return nil, nil
	}
	theme := *r.theme
	return &theme, nil
}

func (r *themeRepository) Update(ctx context.Context, data *models.InsertThemeSettings) (*models.ThemeSettings, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	theme := models.ThemeSettings{
		ID:            themeSettingsID,
		PrimaryColor:  data.PrimaryColor,
		FontFamily:    data.FontFamily,
		MenuTextColor: data.MenuTextColor,
		MenuBgColor:   data.MenuBgColor,
		MenuOpacity:   data.MenuOpacity,
		BorderRadius:  data.BorderRadius,
		Appearance:    data.Appearance,
	}
	r.theme = &theme
	return &theme, nil
}
