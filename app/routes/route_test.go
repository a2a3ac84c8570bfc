package routes

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/onsal/elektronik-storefront/app/configs"
	"github.com/onsal/elektronik-storefront/app/utils/sessions"
)

const testAdminPassword = "cok-gizli-sifre"

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(testAdminPassword), bcrypt.MinCost)
	require.NoError(t, err)

	env := configs.ENV{
		Port:              ":0",
		UploadDir:         t.TempDir(),
		DistDir:           t.TempDir(),
		AdminUsername:     "admin",
		AdminPasswordHash: string(hash),
	}

	sessionStore := sessions.NewCookieSessionStore(
		[]byte("test-auth-key-0123456789abcdef-0123456789abcdef"),
		[]byte("test-enc-key-16b"),
	)

	return NewRouter(env, NewRepos(), sessionStore)
}

func doJSON(t *testing.T, router http.Handler, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(encoded)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	return recorder
}

func decodeMap(t *testing.T, recorder *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &decoded))
	return decoded
}

func decodeList(t *testing.T, recorder *httptest.ResponseRecorder) []map[string]interface{} {
	t.Helper()

	var decoded []map[string]interface{}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &decoded))
	return decoded
}

func validProductPayload(slug string) map[string]interface{} {
	return map[string]interface{}{
		"name":             "Arçelik 9103 D Çamaşır Makinesi",
		"slug":             slug,
		"description":      "10 kg kapasiteli, A enerji sınıfı çamaşır makinesi.",
		"shortDescription": "10 kg çamaşır makinesi",
		"specs":            map[string]string{"Kapasite": "10 kg"},
		"categoryId":       5,
		"imageUrl":         "/uploads/arcelik-9103.jpg",
		"brand":            "Arçelik",
		"price":            "100.00",
	}
}

func TestCategories(t *testing.T) {
	router := newTestRouter(t)

	t.Run("list includes seeded defaults", func(t *testing.T) {
		recorder := doJSON(t, router, "GET", "/api/categories", nil)
		require.Equal(t, http.StatusOK, recorder.Code)
		categories := decodeList(t, recorder)
		assert.Len(t, categories, 9)
		assert.Equal(t, "beyaz-esya", categories[0]["slug"])
	})

	t.Run("slug lookup misses before create", func(t *testing.T) {
		recorder := doJSON(t, router, "GET", "/api/categories?slug=tv", nil)
		require.Equal(t, http.StatusNotFound, recorder.Code)
		assert.Equal(t, "Kategori bulunamadı", decodeMap(t, recorder)["error"])
	})

	t.Run("create then fetch by slug", func(t *testing.T) {
		recorder := doJSON(t, router, "POST", "/api/categories", map[string]interface{}{
			"name":      "TV",
			"slug":      "tv",
			"menuOrder": 1,
		})
		require.Equal(t, http.StatusOK, recorder.Code)
		created := decodeMap(t, recorder)
		assert.Equal(t, float64(10), created["id"], "next sequential id after the seeded defaults")

		recorder = doJSON(t, router, "GET", "/api/categories?slug=tv", nil)
		require.Equal(t, http.StatusOK, recorder.Code)
		assert.Equal(t, "TV", decodeMap(t, recorder)["name"])
	})

	t.Run("validation errors reach the client", func(t *testing.T) {
		recorder := doJSON(t, router, "POST", "/api/categories", map[string]interface{}{})
		require.Equal(t, http.StatusBadRequest, recorder.Code)
		fieldErrors, ok := decodeMap(t, recorder)["error"].(map[string]interface{})
		require.True(t, ok)
		assert.Contains(t, fieldErrors, "name")
		assert.Contains(t, fieldErrors, "slug")
	})
}

func TestProducts(t *testing.T) {
	router := newTestRouter(t)

	t.Run("create keeps decimal string prices in list responses", func(t *testing.T) {
		recorder := doJSON(t, router, "POST", "/api/products", validProductPayload("arcelik-9103-d"))
		require.Equal(t, http.StatusOK, recorder.Code)
		created := decodeMap(t, recorder)
		assert.Equal(t, float64(1), created["id"])
		assert.Equal(t, "100.00", created["price"])
		assert.Equal(t, "#dc2626", created["discountLabelColor"])

		recorder = doJSON(t, router, "GET", "/api/products", nil)
		require.Equal(t, http.StatusOK, recorder.Code)
		products := decodeList(t, recorder)
		require.Len(t, products, 1)
		assert.Equal(t, "100.00", products[0]["price"])
	})

	t.Run("decorated slug lookup coerces prices to numbers", func(t *testing.T) {
		payload := validProductPayload("vestel-65u9631")
		payload["discountedPrice"] = "80.00"
		recorder := doJSON(t, router, "POST", "/api/products", payload)
		require.Equal(t, http.StatusOK, recorder.Code)

		decorated := "onsal-elektronik-en-ucuz-en-kaliteli-www-onsalelektronik-com-vestel-65u9631"
		recorder = doJSON(t, router, "GET", "/api/products?slug="+decorated, nil)
		require.Equal(t, http.StatusOK, recorder.Code)
		detail := decodeMap(t, recorder)
		assert.Equal(t, float64(100), detail["price"])
		assert.Equal(t, float64(80), detail["discountedPrice"])
		assert.Equal(t, float64(20), detail["discountPercent"])
		assert.Equal(t, "100,00 ₺", detail["displayPrice"])
		assert.Equal(t, "vestel-65u9631", detail["slug"])
	})

	t.Run("unknown slug is a 404", func(t *testing.T) {
		recorder := doJSON(t, router, "GET", "/api/products?slug=olmayan-urun", nil)
		require.Equal(t, http.StatusNotFound, recorder.Code)
		assert.Equal(t, "Ürün bulunamadı", decodeMap(t, recorder)["error"])
	})

	t.Run("category filter", func(t *testing.T) {
		recorder := doJSON(t, router, "GET", "/api/products?categoryId=5", nil)
		require.Equal(t, http.StatusOK, recorder.Code)
		assert.Len(t, decodeList(t, recorder), 2)

		recorder = doJSON(t, router, "GET", "/api/products?categoryId=1", nil)
		require.Equal(t, http.StatusOK, recorder.Code)
		assert.Empty(t, decodeList(t, recorder))
	})

	t.Run("featured flow", func(t *testing.T) {
		recorder := doJSON(t, router, "GET", "/api/products/featured", nil)
		require.Equal(t, http.StatusOK, recorder.Code)
		assert.Empty(t, decodeList(t, recorder), "featured defaults to false")

		recorder = doJSON(t, router, "PATCH", "/api/products/1", map[string]interface{}{"featured": true})
		require.Equal(t, http.StatusOK, recorder.Code)

		recorder = doJSON(t, router, "GET", "/api/products/featured", nil)
		require.Equal(t, http.StatusOK, recorder.Code)
		featured := decodeList(t, recorder)
		require.Len(t, featured, 1)
		assert.Equal(t, float64(1), featured[0]["id"])
		assert.Equal(t, "arcelik-9103-d", featured[0]["slug"], "other fields untouched by the patch")
	})

	t.Run("patch unknown id is a 404", func(t *testing.T) {
		recorder := doJSON(t, router, "PATCH", "/api/products/999", map[string]interface{}{"featured": true})
		require.Equal(t, http.StatusNotFound, recorder.Code)
	})

	t.Run("discounted price above price is rejected", func(t *testing.T) {
		payload := validProductPayload("pahali-indirim")
		payload["discountedPrice"] = "150.00"
		recorder := doJSON(t, router, "POST", "/api/products", payload)
		require.Equal(t, http.StatusBadRequest, recorder.Code)
		fieldErrors, ok := decodeMap(t, recorder)["error"].(map[string]interface{})
		require.True(t, ok)
		assert.Contains(t, fieldErrors, "discountedPrice")
	})

	t.Run("delete", func(t *testing.T) {
		recorder := doJSON(t, router, "DELETE", "/api/products/2", nil)
		require.Equal(t, http.StatusOK, recorder.Code)

		recorder = doJSON(t, router, "DELETE", "/api/products/2", nil)
		require.Equal(t, http.StatusNotFound, recorder.Code)

		recorder = doJSON(t, router, "GET", "/api/products", nil)
		require.Equal(t, http.StatusOK, recorder.Code)
		assert.Len(t, decodeList(t, recorder), 1)
	})
}

func TestBanners(t *testing.T) {
	router := newTestRouter(t)

	banner := func(title string, order int) map[string]interface{} {
		return map[string]interface{}{
			"title":       title,
			"description": "Kampanya",
			"imageUrl":    "/uploads/" + title + ".jpg",
			"order":       order,
		}
	}

	// Created as 3, 1, 2; listings must come back 1, 2, 3.
	for _, payload := range []map[string]interface{}{banner("c", 3), banner("a", 1), banner("b", 2)} {
		recorder := doJSON(t, router, "POST", "/api/banners", payload)
		require.Equal(t, http.StatusOK, recorder.Code)
	}

	t.Run("list sorted by order", func(t *testing.T) {
		recorder := doJSON(t, router, "GET", "/api/banners", nil)
		require.Equal(t, http.StatusOK, recorder.Code)
		banners := decodeList(t, recorder)
		require.Len(t, banners, 3)
		assert.Equal(t, "a", banners[0]["title"])
		assert.Equal(t, "b", banners[1]["title"])
		assert.Equal(t, "c", banners[2]["title"])
	})

	t.Run("order patch reorders listings", func(t *testing.T) {
		recorder := doJSON(t, router, "PATCH", "/api/banners/2/order", map[string]interface{}{"order": 9})
		require.Equal(t, http.StatusOK, recorder.Code)

		recorder = doJSON(t, router, "GET", "/api/banners", nil)
		banners := decodeList(t, recorder)
		require.Len(t, banners, 3)
		assert.Equal(t, "b", banners[0]["title"])
		assert.Equal(t, "c", banners[1]["title"])
		assert.Equal(t, "a", banners[2]["title"])
	})

	t.Run("order patch requires the field", func(t *testing.T) {
		recorder := doJSON(t, router, "PATCH", "/api/banners/2/order", map[string]interface{}{})
		require.Equal(t, http.StatusBadRequest, recorder.Code)
	})

	t.Run("toggle and active subset", func(t *testing.T) {
		recorder := doJSON(t, router, "PATCH", "/api/banners/1/toggle", nil)
		require.Equal(t, http.StatusOK, recorder.Code)
		assert.Equal(t, false, decodeMap(t, recorder)["active"])

		recorder = doJSON(t, router, "GET", "/api/banners/active", nil)
		require.Equal(t, http.StatusOK, recorder.Code)
		active := decodeList(t, recorder)
		require.Len(t, active, 2)
		assert.Equal(t, "b", active[0]["title"])
		assert.Equal(t, "a", active[1]["title"])

		recorder = doJSON(t, router, "PATCH", "/api/banners/1/toggle", nil)
		require.Equal(t, http.StatusOK, recorder.Code)
		assert.Equal(t, true, decodeMap(t, recorder)["active"])
	})

	t.Run("toggle unknown id is a 404", func(t *testing.T) {
		recorder := doJSON(t, router, "PATCH", "/api/banners/999/toggle", nil)
		require.Equal(t, http.StatusNotFound, recorder.Code)
	})
}

func TestSettings(t *testing.T) {
	router := newTestRouter(t)

	t.Run("defaults before first save", func(t *testing.T) {
		recorder := doJSON(t, router, "GET", "/api/settings", nil)
		require.Equal(t, http.StatusOK, recorder.Code)
		settings := decodeMap(t, recorder)
		assert.Equal(t, "Elektronik & Beyaz Eşya", settings["companyName"])
		assert.Equal(t, "Bilgi Al", settings["whatsappButtonText"])
		assert.NotContains(t, settings, "id")
	})

	t.Run("save replaces wholesale", func(t *testing.T) {
		recorder := doJSON(t, router, "POST", "/api/settings", map[string]interface{}{
			"logo":            "/logo.svg",
			"favicon":         "/favicon.svg",
			"companyName":     "Önsal Elektronik",
			"address":         "İstanbul, Türkiye",
			"phone":           "+90 (212) 123 45 67",
			"email":           "info@onsalelektronik.com",
			"aboutUs":         "Hakkımızda",
			"metaTitle":       "Önsal Elektronik",
			"metaDescription": "Beyaz eşya ve elektronik",
		})
		require.Equal(t, http.StatusOK, recorder.Code)

		recorder = doJSON(t, router, "GET", "/api/settings", nil)
		require.Equal(t, http.StatusOK, recorder.Code)
		settings := decodeMap(t, recorder)
		assert.Equal(t, "Önsal Elektronik", settings["companyName"])
		assert.Equal(t, float64(1), settings["id"])
	})

	t.Run("invalid email is rejected", func(t *testing.T) {
		recorder := doJSON(t, router, "POST", "/api/settings", map[string]interface{}{
			"logo":            "/logo.svg",
			"favicon":         "/favicon.svg",
			"companyName":     "Önsal Elektronik",
			"address":         "İstanbul",
			"phone":           "x",
			"email":           "gecersiz",
			"aboutUs":         "x",
			"metaTitle":       "x",
			"metaDescription": "x",
		})
		require.Equal(t, http.StatusBadRequest, recorder.Code)
		fieldErrors, ok := decodeMap(t, recorder)["error"].(map[string]interface{})
		require.True(t, ok)
		assert.Contains(t, fieldErrors, "email")
	})
}

func TestTheme(t *testing.T) {
	router := newTestRouter(t)

	t.Run("defaults before first save", func(t *testing.T) {
		recorder := doJSON(t, router, "GET", "/api/theme", nil)
		require.Equal(t, http.StatusOK, recorder.Code)
		theme := decodeMap(t, recorder)
		assert.Equal(t, "#007AFF", theme["primaryColor"])
		assert.Equal(t, "system", theme["appearance"])
	})

	t.Run("invalid appearance is rejected", func(t *testing.T) {
		recorder := doJSON(t, router, "POST", "/api/theme", map[string]interface{}{
			"primaryColor":  "#FF3B30",
			"fontFamily":    "Inter",
			"menuTextColor": "#FFFFFF",
			"menuBgColor":   "#111111",
			"menuOpacity":   "0.9",
			"borderRadius":  "0.75rem",
			"appearance":    "neon",
		})
		require.Equal(t, http.StatusBadRequest, recorder.Code)
		fieldErrors, ok := decodeMap(t, recorder)["error"].(map[string]interface{})
		require.True(t, ok)
		assert.Contains(t, fieldErrors, "appearance")
	})

	t.Run("save and read back", func(t *testing.T) {
		recorder := doJSON(t, router, "POST", "/api/theme", map[string]interface{}{
			"primaryColor":  "#FF3B30",
			"fontFamily":    "Inter",
			"menuTextColor": "#FFFFFF",
			"menuBgColor":   "#111111",
			"menuOpacity":   "0.9",
			"borderRadius":  "0.75rem",
			"appearance":    "dark",
		})
		require.Equal(t, http.StatusOK, recorder.Code)

		recorder = doJSON(t, router, "GET", "/api/theme", nil)
		require.Equal(t, http.StatusOK, recorder.Code)
		theme := decodeMap(t, recorder)
		assert.Equal(t, "#FF3B30", theme["primaryColor"])
		assert.Equal(t, "dark", theme["appearance"])
	})
}

func TestAuth(t *testing.T) {
	router := newTestRouter(t)

	t.Run("wrong password", func(t *testing.T) {
		recorder := doJSON(t, router, "POST", "/api/auth/login", map[string]interface{}{
			"username": "admin",
			"password": "yanlis-sifre",
		})
		require.Equal(t, http.StatusUnauthorized, recorder.Code)
		assert.Equal(t, "Kullanıcı adı veya şifre hatalı", decodeMap(t, recorder)["error"])
	})

	t.Run("short password fails validation", func(t *testing.T) {
		recorder := doJSON(t, router, "POST", "/api/auth/login", map[string]interface{}{
			"username": "admin",
			"password": "kisa",
		})
		require.Equal(t, http.StatusBadRequest, recorder.Code)
	})

	t.Run("successful login sets the session cookie", func(t *testing.T) {
		recorder := doJSON(t, router, "POST", "/api/auth/login", map[string]interface{}{
			"username": "admin",
			"password": testAdminPassword,
		})
		require.Equal(t, http.StatusOK, recorder.Code)
		cookies := recorder.Result().Cookies()
		require.NotEmpty(t, cookies)

		req := httptest.NewRequest("GET", "/api/auth/me", nil)
		for _, cookie := range cookies {
			req.AddCookie(cookie)
		}
		meRecorder := httptest.NewRecorder()
		router.ServeHTTP(meRecorder, req)
		require.Equal(t, http.StatusOK, meRecorder.Code)
		assert.Equal(t, "admin", decodeMap(t, meRecorder)["username"])
	})

	t.Run("me without a session", func(t *testing.T) {
		recorder := doJSON(t, router, "GET", "/api/auth/me", nil)
		require.Equal(t, http.StatusUnauthorized, recorder.Code)
	})
}

func TestUpload(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte(testAdminPassword), bcrypt.MinCost)
	require.NoError(t, err)

	uploadDir := t.TempDir()
	env := configs.ENV{
		Port:              ":0",
		UploadDir:         uploadDir,
		DistDir:           t.TempDir(),
		AdminUsername:     "admin",
		AdminPasswordHash: string(hash),
	}
	router := NewRouter(env, NewRepos(), sessions.NewCookieSessionStore([]byte("test-auth-key")))

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile("file", "urun.jpg")
	require.NoError(t, err)
	_, err = part.Write([]byte("fake image bytes"))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest("POST", "/api/upload", &body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	require.Equal(t, http.StatusOK, recorder.Code)
	url, ok := decodeMap(t, recorder)["url"].(string)
	require.True(t, ok)
	require.True(t, strings.HasPrefix(url, "/uploads/"))
	assert.True(t, strings.HasSuffix(url, ".jpg"))

	saved, err := os.ReadFile(filepath.Join(uploadDir, strings.TrimPrefix(url, "/uploads/")))
	require.NoError(t, err)
	assert.Equal(t, "fake image bytes", string(saved))
}
