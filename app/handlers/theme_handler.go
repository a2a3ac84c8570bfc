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

type ThemeHandler struct {
	render    *render.Render
	validator *validator.Validate
	themeRepo repositories.ThemeRepositoryImpl
}

func NewThemeHandler(
	render *render.Render,
	validator *validator.Validate,
	themeRepo repositories.ThemeRepositoryImpl,
) *ThemeHandler {
	return &ThemeHandler{
		render:    render,
		validator: validator,
		themeRepo: themeRepo,
	}
}

// Get serves GET /api/theme, falling back to the schema defaults until an
// admin saves a theme.
func (h *ThemeHandler) Get(w http.ResponseWriter, r *http.Request) {
	theme, err := h.themeRepo.Get(r.Context())
	if err != nil {
		log.Printf("Get: tema ayarları alınamadı: %v", err)
		h.render.JSON(w, http.StatusInternalServerError, map[string]string{"error": "Tema alınamadı"})
		return
	}
	if theme == nil {
		h.render.JSON(w, http.StatusOK, models.DefaultThemeSettings())
		return
	}
	h.render.JSON(w, http.StatusOK, theme)
}

// Update serves POST /api/theme.
func (h *ThemeHandler) Update(w http.ResponseWriter, r *http.Request) {
	var payload models.InsertThemeSettings
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

	theme, err := h.themeRepo.Update(r.Context(), &payload)
	if err != nil {
		log.Printf("Update: tema ayarları kaydedilemedi: %v", err)
		h.render.JSON(w, http.StatusInternalServerError, map[string]string{"error": "Tema kaydedilemedi"})
		return
	}
	h.render.JSON(w, http.StatusOK, theme)
}
