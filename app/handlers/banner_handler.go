package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	"github.com/unrolled/render"

	"github.com/onsal/elektronik-storefront/app/helpers"
	"github.com/onsal/elektronik-storefront/app/models"
	"github.com/onsal/elektronik-storefront/app/repositories"
)

type BannerHandler struct {
	render     *render.Render
	validator  *validator.Validate
	bannerRepo repositories.BannerRepositoryImpl
}

func NewBannerHandler(
	render *render.Render,
	validator *validator.Validate,
	bannerRepo repositories.BannerRepositoryImpl,
) *BannerHandler {
	return &BannerHandler{
		render:     render,
		validator:  validator,
		bannerRepo: bannerRepo,
	}
}

// List serves GET /api/banners, always sorted by display order.
func (h *BannerHandler) List(w http.ResponseWriter, r *http.Request) {
	banners, err := h.bannerRepo.GetAll(r.Context())
	if err != nil {
		log.Printf("List: bannerlar alınamadı: %v", err)
		h.render.JSON(w, http.StatusInternalServerError, map[string]string{"error": "Bannerlar alınamadı"})
		return
	}
	h.render.JSON(w, http.StatusOK, banners)
}

// Active serves GET /api/banners/active.
func (h *BannerHandler) Active(w http.ResponseWriter, r *http.Request) {
	banners, err := h.bannerRepo.GetActive(r.Context())
	if err != nil {
		log.Printf("Active: aktif bannerlar alınamadı: %v", err)
		h.render.JSON(w, http.StatusInternalServerError, map[string]string{"error": "Bannerlar alınamadı"})
		return
	}
	h.render.JSON(w, http.StatusOK, banners)
}

// Create serves POST /api/banners.
func (h *BannerHandler) Create(w http.ResponseWriter, r *http.Request) {
	var payload models.InsertBanner
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

	banner, err := h.bannerRepo.Create(r.Context(), &payload)
	if err != nil {
		log.Printf("Create: banner oluşturulamadı: %v", err)
		h.render.JSON(w, http.StatusInternalServerError, map[string]string{"error": "Banner oluşturulamadı"})
		return
	}
	h.render.JSON(w, http.StatusOK, banner)
}

// UpdateOrder serves PATCH /api/banners/{id}/order.
func (h *BannerHandler) UpdateOrder(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		h.render.JSON(w, http.StatusBadRequest, map[string]string{"error": "Geçersiz banner numarası."})
		return
	}

	var payload struct {
		Order *int `json:"order"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil || payload.Order == nil {
		h.render.JSON(w, http.StatusBadRequest, map[string]string{"error": "order alanı zorunludur."})
		return
	}

	banner, err := h.bannerRepo.UpdateOrder(r.Context(), id, *payload.Order)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			h.render.JSON(w, http.StatusNotFound, map[string]string{"error": "Banner bulunamadı"})
			return
		}
		log.Printf("UpdateOrder: banner sırası güncellenemedi (id=%d): %v", id, err)
		h.render.JSON(w, http.StatusInternalServerError, map[string]string{"error": "Banner güncellenemedi"})
		return
	}
	h.render.JSON(w, http.StatusOK, banner)
}

// Toggle serves PATCH /api/banners/{id}/toggle, flipping the active flag.
func (h *BannerHandler) Toggle(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		h.render.JSON(w, http.StatusBadRequest, map[string]string{"error": "Geçersiz banner numarası."})
		return
	}

	banner, err := h.bannerRepo.ToggleActive(r.Context(), id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			h.render.JSON(w, http.StatusNotFound, map[string]string{"error": "Banner bulunamadı"})
			return
		}
		log.Printf("Toggle: banner durumu değiştirilemedi (id=%d): %v", id, err)
		h.render.JSON(w, http.StatusInternalServerError, map[string]string{"error": "Banner güncellenemedi"})
		return
	}
	h.render.JSON(w, http.StatusOK, banner)
}
