package configs

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type ENV struct {
	Port              string
	AppEnv            string
	UploadDir         string
	DistDir           string
	AdminUsername     string
	AdminPasswordHash string
	AppAuthKey        string
	AppEncKey         string
	CorsOrigins       string
	SeedDemo          string
}

func LoadEnv() ENV {

	if err := godotenv.Load(".env"); err != nil {
		log.Println("Warning: No .env file found ")
	}

	env := ENV{
		Port:              os.Getenv("APP_PORT"),
		AppEnv:            os.Getenv("APP_ENV"),
		UploadDir:         os.Getenv("UPLOAD_DIR"),
		DistDir:           os.Getenv("DIST_DIR"),
		AdminUsername:     os.Getenv("ADMIN_USERNAME"),
		AdminPasswordHash: os.Getenv("ADMIN_PASSWORD_HASH"),
		AppAuthKey:        os.Getenv("APP_AUTH_KEY"),
		AppEncKey:         os.Getenv("APP_ENC_KEY"),
		CorsOrigins:       os.Getenv("CORS_ORIGINS"),
		SeedDemo:          os.Getenv("SEED_DEMO"),
	}

	if env.Port == "" {
		env.Port = ":5000"
	} else if env.Port[0] != ':' {
		env.Port = ":" + env.Port
	}
	if env.UploadDir == "" {
		env.UploadDir = "uploads"
	}
	if env.DistDir == "" {
		env.DistDir = "dist"
	}

	return env
}
