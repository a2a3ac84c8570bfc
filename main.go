package main

import (
	"context"
	"log"
	"net/http"
	"os"

	"github.com/onsal/elektronik-storefront/app/cmd"
	"github.com/onsal/elektronik-storefront/app/configs"
	"github.com/onsal/elektronik-storefront/app/db/seeders"
	"github.com/onsal/elektronik-storefront/app/routes"
	"github.com/onsal/elektronik-storefront/app/utils/sessions"
)

func main() {

	env := configs.LoadEnv()
	if len(os.Args) > 1 {
		cmd.RunCli()
		return
	}

	keys, err := configs.LoadSessionKeys(env)
	if err != nil {
		log.Fatal("Failed to load session keys:", err)
	}
	sessionStore := sessions.NewCookieSessionStore(keys.AuthKey, keys.EncKey)

	repos := routes.NewRepos()
	log.Println("✅ Catalog store initialized, default categories seeded.")

	if env.SeedDemo == "true" {
		if err := seeders.SeedDemo(context.Background(), repos.Categories, repos.Products, repos.Banners); err != nil {
			log.Printf("Demo seed failed: %v", err)
		} else {
			log.Println("✅ Demo catalog seeded.")
		}
	}

	router := routes.NewRouter(env, repos, sessionStore)

	server := http.Server{
		Addr:    env.Port,
		Handler: router,
	}

	log.Printf("🚀 Server starting on %s", server.Addr)
	if err := server.ListenAndServe(); err != nil {
		log.Println("failed to connecting to the server")
	}

}
