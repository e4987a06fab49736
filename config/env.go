package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cast"

	"medivance-backend/auth"
)

// Mode penyimpanan data.
const (
	StoreMemory = "memory"
	StoreMongo  = "mongo"
)

// AppConfig menampung semua variabel konfigurasi aplikasi.
type AppConfig struct {
	Port          string
	Env           string
	StoreMode     string
	MongoMode     string
	MongoURI      string
	MongoDatabase string

	PasetoSecretKey   []byte
	AdminUsername     string
	AdminPasswordHash []byte

	CloudinaryURL   string
	SheetsWebAppURL string
	SheetsToken     string

	SMTPHost     string
	SMTPPort     int
	SMTPUsername string
	SMTPPassword string
	MailFrom     string

	CompanyName      string
	CarouselInterval time.Duration
	CORSOrigins      []string
	LogFile          string
}

// IsProduction melaporkan apakah aplikasi berjalan di mode production.
func (c *AppConfig) IsProduction() bool {
	return c.Env == "production"
}

// Load memuat konfigurasi dari file .env atau environment variables.
func Load() *AppConfig {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}
	cfg, err := load()
	if err != nil {
		log.Fatal(err)
	}
	return cfg
}

func load() (*AppConfig, error) {
	cfg := &AppConfig{
		Port:            getEnv("PORT", "5000"),
		Env:             getEnv("ENVIRONMENT", "development"),
		StoreMode:       getEnv("STORE_MODE", StoreMemory),
		MongoMode:       getEnv("MONGO_MODE", "local"),
		MongoDatabase:   getEnv("MONGO_DATABASE", "medivance"),
		AdminUsername:   getEnv("ADMIN_USERNAME", "admin"),
		CloudinaryURL:   getEnv("CLOUDINARY_URL", ""),
		SheetsWebAppURL: getEnv("SHEETS_WEBAPP_URL", ""),
		SheetsToken:     getEnv("SHEETS_TOKEN", ""),
		SMTPHost:        getEnv("SMTP_HOST", ""),
		SMTPUsername:    getEnv("SMTP_USERNAME", ""),
		SMTPPassword:    getEnv("SMTP_PASSWORD", ""),
		MailFrom:        getEnv("MAIL_FROM", "medinfo@medivance.com"),
		CompanyName:     getEnv("COMPANY_NAME", "Medivance Healthcare Ltd."),
		LogFile:         getEnv("LOG_FILE", ""),
	}

	if cfg.StoreMode != StoreMemory && cfg.StoreMode != StoreMongo {
		return nil, fmt.Errorf("STORE_MODE must be %q or %q, got %q", StoreMemory, StoreMongo, cfg.StoreMode)
	}

	// Atur URI MongoDB berdasarkan mode
	if cfg.MongoMode == "atlas" {
		cfg.MongoURI = getEnv("MONGO_URI_ATLAS", "")
		if cfg.MongoURI == "" && cfg.StoreMode == StoreMongo {
			return nil, errors.New("MONGO_MODE 'atlas' but MONGO_URI_ATLAS is not set")
		}
	} else {
		cfg.MongoURI = getEnv("MONGO_URI_LOCAL", "mongodb://localhost:27017/medivance")
	}

	// Atur Kunci Paseto
	key := getEnv("PASETO_SECRET_KEY", "")
	if len(key) != 32 {
		return nil, errors.New("PASETO_SECRET_KEY must be 32 characters long!")
	}
	cfg.PasetoSecretKey = []byte(key)

	hash, err := adminPasswordHash(cfg.IsProduction())
	if err != nil {
		return nil, err
	}
	cfg.AdminPasswordHash = hash

	port, err := cast.ToIntE(getEnv("SMTP_PORT", "587"))
	if err != nil {
		return nil, fmt.Errorf("invalid SMTP_PORT: %w", err)
	}
	cfg.SMTPPort = port

	interval, err := cast.ToDurationE(getEnv("CAROUSEL_INTERVAL", "3s"))
	if err != nil || interval <= 0 {
		return nil, fmt.Errorf("CAROUSEL_INTERVAL must be a positive duration such as 3s")
	}
	cfg.CarouselInterval = interval

	cfg.CORSOrigins = splitList(getEnv("CORS_ORIGINS", "http://localhost:3000,http://127.0.0.1:3000,http://localhost:5173"))
	return cfg, nil
}

// adminPasswordHash memakai ADMIN_PASSWORD_HASH, atau meng-hash ADMIN_PASSWORD. Di luar production,
// password demo dipakai jika keduanya kosong.
func adminPasswordHash(production bool) ([]byte, error) {
	if hash := getEnv("ADMIN_PASSWORD_HASH", ""); hash != "" {
		return []byte(hash), nil
	}
	password := getEnv("ADMIN_PASSWORD", "")
	if password == "" {
		if production {
			return nil, errors.New("ADMIN_PASSWORD_HASH or ADMIN_PASSWORD must be set in production")
		}
		log.Println("ADMIN_PASSWORD not set, using the demo password")
		password = "admin123"
	}
	return auth.HashPassword(password)
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
