package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"
	"github.com/unrolled/render"

	"github.com/onsal/elektronik-storefront/app/helpers"
	"github.com/onsal/elektronik-storefront/app/models"
	"github.com/onsal/elektronik-storefront/app/repositories"
	"github.com/onsal/elektronik-storefront/app/utils/calc"
	"github.com/onsal/elektronik-storefront/app/utils/format"
	"github.com/onsal/elektronik-storefront/app/utils/seo"
)

type ProductHandler struct {
	render      *render.Render
	validator   *validator.Validate
	productRepo repositories.ProductRepositoryImpl
}

func NewProductHandler(
	render *render.Render,
	validator *validator.Validate,
	productRepo repositories.ProductRepositoryImpl,
) *ProductHandler {
	return &ProductHandler{
		render:      render,
		validator:   validator,
		productRepo: productRepo,
	}
}

// productDetail is the slug-lookup response shape. The decorated product
// pages read prices as JSON numbers, so the decimal fields are coerced here
// and only here; list responses keep the decimal-string representation.
type productDetail struct {
	models.Product
	Price                  float64  `json:"price"`
	DiscountedPrice        *float64 `json:"discountedPrice"`
	DisplayPrice           string   `json:"displayPrice"`
	DisplayDiscountedPrice *string  `json:"displayDiscountedPrice"`
	DiscountPercent        int      `json:"discountPercent"`
}

func newProductDetail(product models.Product) productDetail {
	detail := productDetail{
		Product:      product,
		Price:        product.Price.InexactFloat64(),
		DisplayPrice: format.Lira(product.Price),
	}
	if detail.Specs == nil {
		detail.Specs = map[string]string{}
	}
	if detail.ImageURLs == nil {
		detail.ImageURLs = []string{}
	}
	if product.DiscountedPrice != nil {
		discounted := product.DiscountedPrice.InexactFloat64()
		detail.DiscountedPrice = &discounted
		display := format.Lira(*product.DiscountedPrice)
		detail.DisplayDiscountedPrice = &display
		detail.DiscountPercent = calc.DiscountPercent(product.Price, *product.DiscountedPrice)
	}
	return detail
}

// List serves GET /api/products. ?slug= looks a single product up by its
// decorated public slug, ?categoryId= filters, otherwise all products.
func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	slug := r.URL.Query().Get("slug")
	categoryID := r.URL.Query().Get("categoryId")

	if slug != "" {
		product, err := h.productRepo.GetBySlug(r.Context(), seo.Strip(slug))
		if err != nil {
			log.Printf("List: ürün sorgusu başarısız (slug=%s): %v", slug, err)
			h.render.JSON(w, http.StatusInternalServerError, map[string]string{"error": "Ürün sorgulanamadı"})
			return
		}
		if product == nil {
			h.render.JSON(w, http.StatusNotFound, map[string]string{"error": "Ürün bulunamadı"})
			return
		}
		h.render.JSON(w, http.StatusOK, newProductDetail(*product))
		return
	}

	if categoryID != "" {
		id, err := strconv.Atoi(categoryID)
		if err != nil {
			h.render.JSON(w, http.StatusBadRequest, map[string]string{"error": "Geçersiz kategori numarası."})
			return
		}
		products, err := h.productRepo.GetByCategory(r.Context(), id)
		if err != nil {
			log.Printf("List: kategori ürünleri alınamadı (categoryId=%d): %v", id, err)
			h.render.JSON(w, http.StatusInternalServerError, map[string]string{"error": "Ürünler alınamadı"})
			return
		}
		h.render.JSON(w, http.StatusOK, products)
		return
	}

	products, err := h.productRepo.GetAll(r.Context())
	if err != nil {
		log.Printf("List: ürünler alınamadı: %v", err)
		h.render.JSON(w, http.StatusInternalServerError, map[string]string{"error": "Ürünler alınamadı"})
		return
	}
	h.render.JSON(w, http.StatusOK, products)
}

// Featured serves GET /api/products/featured.
func (h *ProductHandler) Featured(w http.ResponseWriter, r *http.Request) {
	products, err := h.productRepo.GetFeatured(r.Context())
	if err != nil {
		log.Printf("Featured: öne çıkan ürünler alınamadı: %v", err)
		h.render.JSON(w, http.StatusInternalServerError, map[string]string{"error": "Ürünler alınamadı"})
		return
	}
	h.render.JSON(w, http.StatusOK, products)
}

// Create serves POST /api/products.
func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	var payload models.InsertProduct
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		h.render.JSON(w, http.StatusBadRequest, map[string]string{"error": "Geçersiz istek gövdesi."})
		return
	}

	fieldErrors := map[string]string{}
	if err := h.validator.Struct(&payload); err != nil {
		fieldErrors = helpers.FormatValidationErrors(err.(validator.ValidationErrors))
	}
	if priceErrors := checkPrices(payload.Price, payload.DiscountedPrice); len(priceErrors) > 0 {
		for field, msg := range priceErrors {
			fieldErrors[field] = msg
		}
	}
	if len(fieldErrors) > 0 {
		h.render.JSON(w, http.StatusBadRequest, map[string]interface{}{"error": fieldErrors})
		return
	}

	product, err := h.productRepo.Create(r.Context(), &payload)
	if err != nil {
		log.Printf("Create: ürün oluşturulamadı: %v", err)
		h.render.JSON(w, http.StatusInternalServerError, map[string]string{"error": "Ürün oluşturulamadı"})
		return
	}
	h.render.JSON(w, http.StatusOK, product)
}

// Update serves PATCH /api/products/{id}. Only supplied fields change.
func (h *ProductHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		h.render.JSON(w, http.StatusBadRequest, map[string]string{"error": "Geçersiz ürün numarası."})
		return
	}

	var patch models.ProductPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		h.render.JSON(w, http.StatusBadRequest, map[string]string{"error": "Geçersiz istek gövdesi."})
		return
	}

	if patch.Price != nil || patch.DiscountedPrice != nil {
		existing, err := h.productRepo.GetByID(r.Context(), id)
		if err == nil && existing != nil {
			price := existing.Price
			if patch.Price != nil {
				price = *patch.Price
			}
			discounted := existing.DiscountedPrice
			if patch.DiscountedPrice != nil {
				discounted = patch.DiscountedPrice
			}
			if priceErrors := checkPrices(price, discounted); len(priceErrors) > 0 {
				h.render.JSON(w, http.StatusBadRequest, map[string]interface{}{"error": priceErrors})
				return
			}
		}
	}

	product, err := h.productRepo.Update(r.Context(), id, &patch)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			h.render.JSON(w, http.StatusNotFound, map[string]string{"error": "Ürün bulunamadı"})
			return
		}
		log.Printf("Update: ürün güncellenemedi (id=%d): %v", id, err)
		h.render.JSON(w, http.StatusInternalServerError, map[string]string{"error": "Ürün güncellenemedi"})
		return
	}
	h.render.JSON(w, http.StatusOK, product)
}

// Delete serves DELETE /api/products/{id}.
func (h *ProductHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		h.render.JSON(w, http.StatusBadRequest, map[string]string{"error": "Geçersiz ürün numarası."})
		return
	}

	if err := h.productRepo.Delete(r.Context(), id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			h.render.JSON(w, http.StatusNotFound, map[string]string{"error": "Ürün bulunamadı"})
			return
		}
		log.Printf("Delete: ürün silinemedi (id=%d): %v", id, err)
		h.render.JSON(w, http.StatusInternalServerError, map[string]string{"error": "Ürün silinemedi"})
		return
	}
	h.render.JSON(w, http.StatusOK, map[string]bool{"success": true})
}

// checkPrices enforces the two rules schema tags cannot express: price is
// never negative and a discounted price never exceeds the list price.
func checkPrices(price decimal.Decimal, discounted *decimal.Decimal) map[string]string {
	fieldErrors := map[string]string{}
	if price.IsNegative() {
		fieldErrors["price"] = "Fiyat negatif olamaz."
	}
	if discounted != nil {
		if discounted.IsNegative() {
			fieldErrors["discountedPrice"] = "İndirimli fiyat negatif olamaz."
		} else if discounted.GreaterThan(price) {
			fieldErrors["discountedPrice"] = "İndirimli fiyat normal fiyattan büyük olamaz."
		}
	}
	return fieldErrors
}
