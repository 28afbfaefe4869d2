package config

import (
	"log"
	"os"

	"stridewear/internal/domain"
)

type Config struct {
	Port          string
	MongoURI      string
	MongoDB       string
	AdminUsername string
	AdminPassword string
	LogFile       string

	// DefaultSettings is what GET /api/settings returns while the
	// singleton document has never been written.
	DefaultSettings domain.Settings
}

func Load() Config {
	port := os.Getenv("PORT")
	if port == "" {
		port = "5000"
	}
	uri := os.Getenv("MONGO_URI")
	if uri == "" {
		uri = "mongodb://localhost:27017"
	}
	dbName := os.Getenv("MONGO_DB")
	if dbName == "" {
		dbName = "stridewear"
	}
	adminUser := os.Getenv("ADMIN_USERNAME")
	if adminUser == "" {
		adminUser = "admin"
	}
	adminPass := os.Getenv("ADMIN_PASSWORD")
	if adminPass == "" {
		adminPass = "changeme"
	}
	logFile := os.Getenv("LOG_FILE") // empty: stdout only

	cfg := Config{
		Port:            port,
		MongoURI:        uri,
		MongoDB:         dbName,
		AdminUsername:   adminUser,
		AdminPassword:   adminPass,
		LogFile:         logFile,
		DefaultSettings: domain.DefaultSettings(),
	}
	log.Printf("[config] PORT=%s MONGO_DB=%s LOG_FILE=%s", cfg.Port, cfg.MongoDB, cfg.LogFile)
	return cfg
}
