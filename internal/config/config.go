// backend-go/internal/config/config.go
package config

import (
	"sync"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Server  ServerConfig
	Sheets  SheetsConfig
	Auth    AuthConfig
	Cache   CacheConfig
	Storage StorageConfig
}

type ServerConfig struct {
	Port           string
	Mode           string
	ReadTimeout    int
	WriteTimeout   int
	AllowedOrigins []string
}

type SheetsConfig struct {
	SpreadsheetID   string
	SheetName       string
	BundleSheetName string
	CredentialsJSON string
}

type AuthConfig struct {
	AdminUser string
	AdminPass string
}

type CacheConfig struct {
	Enabled             bool
	RedisURL            string
	RedisHost           string
	RedisPort           string
	RedisPassword       string
	RedisDB             int
	InventoryTTLSeconds int
}

type StorageConfig struct {
	Enabled       bool
	Endpoint      string
	AccessKey     string
	SecretKey     string
	Bucket        string
	Region        string
	UseSSL        bool
	PublicBaseURL string
}

var (
	once     sync.Once
	instance *Config
)

func Load() *Config {
	once.Do(func() {
		// Load .env file if it exists
		_ = godotenv.Load()

		// Set default values
		viper.SetDefault("SERVER_PORT", "8080")
		viper.SetDefault("SERVER_MODE", "debug")
		viper.SetDefault("SERVER_READ_TIMEOUT", 15)
		viper.SetDefault("SERVER_WRITE_TIMEOUT", 30)
		viper.SetDefault("SERVER_ALLOWED_ORIGINS", []string{"*"})
		viper.SetDefault("SHEET_NAME", "WebsiteItems")
		viper.SetDefault("BUNDLE_SHEET_NAME", "Bundles")
		viper.SetDefault("CACHE_ENABLED", false)
		viper.SetDefault("REDIS_URL", "")
		viper.SetDefault("REDIS_HOST", "127.0.0.1")
		viper.SetDefault("REDIS_PORT", "6379")
		viper.SetDefault("REDIS_PASSWORD", "")
		viper.SetDefault("REDIS_DB", 0)
		viper.SetDefault("CACHE_INVENTORY_TTL_SECONDS", 60)
		viper.SetDefault("STORAGE_ENABLED", false)
		viper.SetDefault("STORAGE_REGION", "us-east-1")
		viper.SetDefault("STORAGE_USE_SSL", true)

		// Read from environment variables
		viper.AutomaticEnv()

		instance = &Config{
			Server: ServerConfig{
				Port:           viper.GetString("SERVER_PORT"),
				Mode:           viper.GetString("SERVER_MODE"),
				ReadTimeout:    viper.GetInt("SERVER_READ_TIMEOUT"),
				WriteTimeout:   viper.GetInt("SERVER_WRITE_TIMEOUT"),
				AllowedOrigins: viper.GetStringSlice("SERVER_ALLOWED_ORIGINS"),
			},
			Sheets: SheetsConfig{
				SpreadsheetID:   viper.GetString("SPREADSHEET_ID"),
				SheetName:       viper.GetString("SHEET_NAME"),
				BundleSheetName: viper.GetString("BUNDLE_SHEET_NAME"),
				CredentialsJSON: viper.GetString("GOOGLE_SHEETS_CREDENTIALS_JSON"),
			},
			Auth: AuthConfig{
				AdminUser: viper.GetString("ADMIN_USER"),
				AdminPass: viper.GetString("ADMIN_PASS"),
			},
			Cache: CacheConfig{
				Enabled:             viper.GetBool("CACHE_ENABLED"),
				RedisURL:            viper.GetString("REDIS_URL"),
				RedisHost:           viper.GetString("REDIS_HOST"),
				RedisPort:           viper.GetString("REDIS_PORT"),
				RedisPassword:       viper.GetString("REDIS_PASSWORD"),
				RedisDB:             viper.GetInt("REDIS_DB"),
				InventoryTTLSeconds: viper.GetInt("CACHE_INVENTORY_TTL_SECONDS"),
			},
			Storage: StorageConfig{
				Enabled:       viper.GetBool("STORAGE_ENABLED"),
				Endpoint:      viper.GetString("STORAGE_ENDPOINT"),
				AccessKey:     viper.GetString("STORAGE_ACCESS_KEY"),
				SecretKey:     viper.GetString("STORAGE_SECRET_KEY"),
				Bucket:        viper.GetString("STORAGE_BUCKET"),
				Region:        viper.GetString("STORAGE_REGION"),
				UseSSL:        viper.GetBool("STORAGE_USE_SSL"),
				PublicBaseURL: viper.GetString("STORAGE_PUBLIC_BASE_URL"),
			},
		}
	})

	return instance
}
