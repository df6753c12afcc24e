package config

import (
	"log"
	"os"
)

type Config struct {
	Port           string
	DatabaseURL    string
	JWTSecret      string
	LegacyDataPath string
	UploadDir      string
	CORSOrigin     string
}

// Load reads configuration from the environment. JWT_SECRET is required;
// everything else has a development default.
func Load() Config {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		log.Fatal("JWT_SECRET is not set in the environment")
	}

	return Config{
		Port:           getenv("PORT", "8080"),
		DatabaseURL:    getenv("DATABASE_URL", "host=localhost user=postgres password=postgres dbname=jobboard port=5432 sslmode=disable"),
		JWTSecret:      secret,
		LegacyDataPath: getenv("LEGACY_DATA_PATH", "data.json"),
		UploadDir:      getenv("UPLOAD_DIR", "uploads"),
		CORSOrigin:     getenv("CORS_ORIGIN", ""),
	}
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
