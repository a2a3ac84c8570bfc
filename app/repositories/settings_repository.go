package repositories

import (
	"context"
	"sync"

	"github.com/onsal/elektronik-storefront/app/models"
)

// siteSettingsID pins the singleton record; updates always replace it
// wholesale under this id.
const siteSettingsID = 1

type SettingsRepositoryImpl interface {
	Get(ctx context.Context) (*models.SiteSettings, error)
	Update(ctx context.Context, data *models.InsertSiteSettings) (*models.SiteSettings, error)
}

type settingsRepository struct {
	mu       sync.RWMutex
	settings *models.SiteSettings
}

func NewSettingsRepository() SettingsRepositoryImpl {
	return &settingsRepository{}
}

// Get returns nil when the site has never been configured. The route layer
// substitutes the documented defaults in that case.
func (r *settingsRepository) Get(ctx context.Context) (*models.SiteSettings, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.settings == nil {
		return nil, nil
	}
	settings := *r.settings
	return &settings, nil
}

func (r *settingsRepository) Update(ctx context.Context, data *models.InsertSiteSettings) (*models.SiteSettings, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	settings := models.SiteSettings{
		ID:                  siteSettingsID,
		Logo:                data.Logo,
		Favicon:             data.Favicon,
		CompanyName:         data.CompanyName,
		Address:             data.Address,
		Phone:               data.Phone,
		Email:               data.Email,
		Whatsapp:            data.Whatsapp,
		WhatsappButtonText:  data.WhatsappButtonText,
		CallButtonText:      data.CallButtonText,
		InstagramButtonText: data.InstagramButtonText,
		MapsEmbed:           data.MapsEmbed,
		Facebook:            data.Facebook,
		Twitter:             data.Twitter,
		Instagram:           data.Instagram,
		Linkedin:            data.Linkedin,
		AboutUs:             data.AboutUs,
		MetaTitle:           data.MetaTitle,
		MetaDescription:     data.MetaDescription,
	}
	if settings.WhatsappButtonText == "" {
		settings.WhatsappButtonText = "Bilgi Al"
	}
	if settings.CallButtonText == "" {
		settings.CallButtonText = "Ara"
	}
	if settings.InstagramButtonText == "" {
		settings.InstagramButtonText = "Takip Et"
	}

	r.settings = &settings
	return &settings, nil
}
