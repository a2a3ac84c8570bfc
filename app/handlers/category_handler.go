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

type CategoryHandler struct {
	render       *render.Render
	validator    *validator.Validate
	categoryRepo repositories.CategoryRepositoryImpl
}

func NewCategoryHandler(
	render *render.Render,
	validator *validator.Validate,
	categoryRepo repositories.CategoryRepositoryImpl,
) *CategoryHandler {
	return &CategoryHandler{
		render:       render,
		validator:    validator,
		categoryRepo: categoryRepo,
	}
}

// List serves GET /api/categories. With ?slug= it returns the single
// matching category or 404.
func (h *CategoryHandler) List(w http.ResponseWriter, r *http.Request) {
	slug := r.URL.Query().Get("slug")

	if slug != "" {
		category, err := h.categoryRepo.GetBySlug(r.Context(), slug)
		if err != nil {
			log.Printf("List: kategori sorgusu başarısız (slug=%s): %v", slug, err)
			h.render.JSON(w, http.StatusInternalServerError, map[string]string{"error": "Kategori sorgulanamadı"})
			return
		}
		if category == nil {
			h.render.JSON(w, http.StatusNotFound, map[string]string{"error": "Kategori bulunamadı"})
			return
		}
		h.render.JSON(w, http.StatusOK, category)
		return
	}

	categories, err := h.categoryRepo.GetAll(r.Context())
	if err != nil {
		log.Printf("List: kategoriler alınamadı: %v", err)
		h.render.JSON(w, http.StatusInternalServerError, map[string]string{"error": "Kategoriler alınamadı"})
		return
	}
	h.render.JSON(w, http.StatusOK, categories)
}

// Create serves POST /api/categories.
func (h *CategoryHandler) Create(w http.ResponseWriter, r *http.Request) {
	var payload models.InsertCategory
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

	category, err := h.categoryRepo.Create(r.Context(), &payload)
	if err != nil {
		log.Printf("Create: kategori oluşturulamadı: %v", err)
		h.render.JSON(w, http.StatusInternalServerError, map[string]string{"error": "Kategori oluşturulamadı"})
		return
	}
	h.render.JSON(w, http.StatusOK, category)
}
