package repositories

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/onsal/elektronik-storefront/app/models"
)

func insertSiteSettings() *models.InsertSiteSettings {
	return &models.InsertSiteSettings{
		Logo:            "/logo.svg",
		Favicon:         "/favicon.svg",
		CompanyName:     "Önsal Elektronik",
		Address:         "İstanbul, Türkiye",
		Phone:           "+90 (212) 123 45 67",
		Email:           "info@onsalelektronik.com",
		AboutUs:         "Hakkımızda metni",
		MetaTitle:       "Önsal Elektronik",
		MetaDescription: "Beyaz eşya ve elektronik",
	}
}

func TestSettingsRepository_GetReturnsNilWhenUnset(t *testing.T) {
	repo := NewSettingsRepository()

	settings, err := repo.Get(context.Background())
	require.NoError(t, err)
	assert.Nil(t, settings)
}

func TestSettingsRepository_UpdateReplacesSingleton(t *testing.T) {
	repo := NewSettingsRepository()
	ctx := context.Background()

	whatsapp := "+90 555 111 22 33"
	first := insertSiteSettings()
	first.Whatsapp = &whatsapp

	saved, err := repo.Update(ctx, first)
	require.NoError(t, err)
	assert.Equal(t, 1, saved.ID)
	require.NotNil(t, saved.Whatsapp)

	// Wholesale replace: the second update carries no whatsapp and the
	// stored record must not keep the old one.
	second := insertSiteSettings()
	second.CompanyName = "Önsal Elektronik A.Ş."
	replaced, err := repo.Update(ctx, second)
	require.NoError(t, err)
	assert.Equal(t, 1, replaced.ID)
	assert.Equal(t, "Önsal Elektronik A.Ş.", replaced.CompanyName)
	assert.Nil(t, replaced.Whatsapp)

	got, err := repo.Get(ctx)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, *replaced, *got)
}

func TestSettingsRepository_ButtonTextDefaults(t *testing.T) {
	repo := NewSettingsRepository()

	saved, err := repo.Update(context.Background(), insertSiteSettings())
	require.NoError(t, err)
	assert.Equal(t, "Bilgi Al", saved.WhatsappButtonText)
	assert.Equal(t, "Ara", saved.CallButtonText)
	assert.Equal(t, "Takip Et", saved.InstagramButtonText)
}

func TestThemeRepository_Singleton(t *testing.T) {
	repo := NewThemeRepository()
	ctx := context.Background()

	theme, err := repo.Get(ctx)
	require.NoError(t, err)
	assert.Nil(t, theme)

	saved, err := repo.Update(ctx, &models.InsertThemeSettings{
		PrimaryColor:  "#FF3B30",
		FontFamily:    "Inter",
		MenuTextColor: "#FFFFFF",
		MenuBgColor:   "#111111",
		MenuOpacity:   "0.9",
		BorderRadius:  "0.75rem",
		Appearance:    "dark",
	})
	require.NoError(t, err)
	assert.Equal(t, 1, saved.ID)
	assert.Equal(t, "#FF3B30", saved.PrimaryColor)

	got, err := repo.Get(ctx)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, *saved, *got)
}
