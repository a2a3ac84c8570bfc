package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/unrolled/render"

	"github.com/onsal/elektronik-storefront/app/helpers"
	"github.com/onsal/elektronik-storefront/app/models"
	"github.com/onsal/elektronik-storefront/app/repositories"
)

type SettingsHandler struct {
	render       *render.Render
	validator    *validator.Validate
	settingsRepo repositories.SettingsRepositoryImpl
}

func NewSettingsHandler(
	render *render.Render,
	validator *validator.Validate,
	settingsRepo repositories.SettingsRepositoryImpl,
) *SettingsHandler {
	return &SettingsHandler{
		render:       render,
		validator:    validator,
		settingsRepo: settingsRepo,
	}
}

// Get serves GET /api/settings. Before the site has ever been configured it
// returns the hardcoded defaults so the storefront never has to special-case
// an unset state.
func (h *SettingsHandler) Get(w http.ResponseWriter, r *http.Request) {
	settings, err := h.settingsRepo.Get(r.Context())
	if err != nil {
		log.Printf("Get: site ayarları alınamadı: %v", err)
		h.render.JSON(w, http.StatusInternalServerError, map[string]string{"error": "Ayarlar alınamadı"})
		return
	}
	if settings == nil {
		h.render.JSON(w, http.StatusOK, models.DefaultSiteSettings())
		return
	}
	h.render.JSON(w, http.StatusOK, settings)
}

// Update serves POST /api/settings, replacing the singleton wholesale.
func (h *SettingsHandler) Update(w http.ResponseWriter, r *http.Request) {
	var payload models.InsertSiteSettings
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		h.render.JSON(w, http.StatusBadRequest, map[string]string{"error": "Geçersiz istek gövdesi."})
		return
	}

	if err := h.validator.Struct(&payload); err != nil {
		h.render.JSON(w, http.StatusBadRequest, map[string]interface{}{
			"error": helpers.FormatValidationErrors(err.(validator.ValidationErrors)),
		})
		return
	}

	settings, err := h.settingsRepo.Update(r.Context(), &payload)
	if err != nil {
		log.Printf("Update: site ayarları kaydedilemedi: %v", err)
		h.render.JSON(w, http.StatusInternalServerError, map[string]string{"error": "Ayarlar kaydedilemedi"})
		return
	}
	h.render.JSON(w, http.StatusOK, settings)
}
