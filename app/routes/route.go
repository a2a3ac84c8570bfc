package routes

import (
	"net/http"
	"strings"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
	"github.com/unrolled/render"

	"github.com/onsal/elektronik-storefront/app/configs"
	"github.com/onsal/elektronik-storefront/app/handlers"
	"github.com/onsal/elektronik-storefront/app/helpers"
	"github.com/onsal/elektronik-storefront/app/middlewares"
	"github.com/onsal/elektronik-storefront/app/repositories"
	"github.com/onsal/elektronik-storefront/app/utils/sessions"
)

// Repos bundles the catalog collections so the router receives one explicit
// store instance instead of reaching for process globals. Tests build a fresh
// set per case.
type Repos struct {
	Categories repositories.CategoryRepositoryImpl
	Products   repositories.ProductRepositoryImpl
	Banners    repositories.BannerRepositoryImpl
	Settings   repositories.SettingsRepositoryImpl
	Theme      repositories.ThemeRepositoryImpl
}

// NewRepos builds the full in-memory catalog store, category defaults seeded.
func NewRepos() *Repos {
	return &Repos{
		Categories: repositories.NewCategoryRepository(),
		Products:   repositories.NewProductRepository(),
		Banners:    repositories.NewBannerRepository(),
		Settings:   repositories.NewSettingsRepository(),
		Theme:      repositories.NewThemeRepository(),
	}
}

func NewRouter(env configs.ENV, repos *Repos, sessionStore sessions.SessionStore) http.Handler {
	renderer := render.New()
	validate := helpers.NewValidator()

	categoryHandler := handlers.NewCategoryHandler(renderer, validate, repos.Categories)
	productHandler := handlers.NewProductHandler(renderer, validate, repos.Products)
	bannerHandler := handlers.NewBannerHandler(renderer, validate, repos.Banners)
	settingsHandler := handlers.NewSettingsHandler(renderer, validate, repos.Settings)
	themeHandler := handlers.NewThemeHandler(renderer, validate, repos.Theme)
	uploadHandler := handlers.NewUploadHandler(renderer, env.UploadDir)
	authHandler := handlers.NewAuthHandler(renderer, validate, sessionStore, env.AdminUsername, env.AdminPasswordHash)

	router := mux.NewRouter()
	api := router.PathPrefix("/api").Subrouter()

	api.HandleFunc("/categories", categoryHandler.List).Methods("GET")
	api.HandleFunc("/categories", categoryHandler.Create).Methods("POST")

	api.HandleFunc("/products/featured", productHandler.Featured).Methods("GET")
	api.HandleFunc("/products", productHandler.List).Methods("GET")
	api.HandleFunc("/products", productHandler.Create).Methods("POST")
	api.HandleFunc("/products/{id}", productHandler.Update).Methods("PATCH")
	api.HandleFunc("/products/{id}", productHandler.Delete).Methods("DELETE")

	api.HandleFunc("/banners/active", bannerHandler.Active).Methods("GET")
	api.HandleFunc("/banners", bannerHandler.List).Methods("GET")
	api.HandleFunc("/banners", bannerHandler.Create).Methods("POST")
	api.HandleFunc("/banners/{id}/order", bannerHandler.UpdateOrder).Methods("PATCH")
	api.HandleFunc("/banners/{id}/toggle", bannerHandler.Toggle).Methods("PATCH")

	api.HandleFunc("/settings", settingsHandler.Get).Methods("GET")
	api.HandleFunc("/settings", settingsHandler.Update).Methods("POST")

	api.HandleFunc("/theme", themeHandler.Get).Methods("GET")
	api.HandleFunc("/theme", themeHandler.Update).Methods("POST")

	api.HandleFunc("/upload", uploadHandler.Upload).Methods("POST")

	api.HandleFunc("/auth/login", authHandler.Login).Methods("POST")
	api.HandleFunc("/auth/logout", authHandler.Logout).Methods("POST")
	api.HandleFunc("/auth/me", authHandler.Me).Methods("GET")

	router.PathPrefix("/uploads/").Handler(
		http.StripPrefix("/uploads/", http.FileServer(http.Dir(env.UploadDir))),
	).Methods("GET")

	router.PathPrefix("/").Handler(handlers.NewSPAHandler(env.DistDir)).Methods("GET")

	corsMiddleware := cors.New(cors.Options{
		AllowedOrigins:   corsOrigins(env),
		AllowedMethods:   []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type"},
		AllowCredentials: true,
	})

	return middlewares.RequestLoggingMiddleware(corsMiddleware.Handler(router))
}

func corsOrigins(env configs.ENV) []string {
	if env.CorsOrigins == "" {
		return []string{"*"}
	}
	origins := strings.Split(env.CorsOrigins, ",")
	for i := range origins {
		origins[i] = strings.TrimSpace(origins[i])
	}
	return origins
}
