package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/unrolled/render"
	"golang.org/x/crypto/bcrypt"

	"github.com/onsal/elektronik-storefront/app/helpers"
	"github.com/onsal/elektronik-storefront/app/utils/sessions"
)

// AuthHandler signs the single admin user in and out. The credentials come
// from the environment; nothing gates the admin mutation routes on this
// session, the admin SPA only uses it to decide whether to show the login
// screen.
type AuthHandler struct {
	render            *render.Render
	validator         *validator.Validate
	sessions          sessions.SessionStore
	adminUsername     string
	adminPasswordHash string
}

func NewAuthHandler(
	render *render.Render,
	validator *validator.Validate,
	sessionStore sessions.SessionStore,
	adminUsername string,
	adminPasswordHash string,
) *AuthHandler {
	return &AuthHandler{
		render:            render,
		validator:         validator,
		sessions:          sessionStore,
		adminUsername:     adminUsername,
		adminPasswordHash: adminPasswordHash,
	}
}

type loginForm struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required,min=8"`
}

// Login serves POST /api/auth/login.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var form loginForm
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		h.render.JSON(w, http.StatusBadRequest, map[string]string{"error": "Geçersiz istek gövdesi."})
		return
	}

	if err := h.validator.Struct(&form); err != nil {
		h.render.JSON(w, http.StatusBadRequest, map[string]interface{}{
			"error": helpers.FormatValidationErrors(err.(validator.ValidationErrors)),
		})
		return
	}

	if h.adminUsername == "" || h.adminPasswordHash == "" {
		log.Println("Login: ADMIN_USERNAME/ADMIN_PASSWORD_HASH tanımlı değil")
		h.render.JSON(w, http.StatusUnauthorized, map[string]string{"error": "Kullanıcı adı veya şifre hatalı"})
		return
	}

	if form.Username != h.adminUsername ||
		bcrypt.CompareHashAndPassword([]byte(h.adminPasswordHash), []byte(form.Password)) != nil {
		h.render.JSON(w, http.StatusUnauthorized, map[string]string{"error": "Kullanıcı adı veya şifre hatalı"})
		return
	}

	if err := h.sessions.SetAdminUser(w, r, form.Username); err != nil {
		log.Printf("Login: oturum kaydedilemedi: %v", err)
		h.render.JSON(w, http.StatusInternalServerError, map[string]string{"error": "Oturum açılamadı"})
		return
	}
	h.render.JSON(w, http.StatusOK, map[string]bool{"success": true})
}

// Logout serves POST /api/auth/logout.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.sessions.Clear(w, r); err != nil {
		log.Printf("Logout: oturum kapatılamadı: %v", err)
	}
	h.render.JSON(w, http.StatusOK, map[string]bool{"success": true})
}

// Me serves GET /api/auth/me so the admin SPA can restore its state.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	username := h.sessions.GetAdminUser(r)
	if username == "" {
		h.render.JSON(w, http.StatusUnauthorized, map[string]string{"error": "Oturum bulunamadı"})
		return
	}
	h.render.JSON(w, http.StatusOK, map[string]string{"username": username})
}
