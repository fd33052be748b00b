package config

import (
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App       AppConfig
	Backend   BackendConfig
	Session   SessionConfig
	Dealer    DealerConfig
	Printer   PrinterConfig
	Sandbox   SandboxConfig
	CORS      CORSConfig
	RateLimit RateLimitConfig
	Log       LogConfig
}

type AppConfig struct {
	Name string
	Env  string
}

type BackendConfig struct {
	// BaseURL includes the deployment's API prefix.
	BaseURL string
	Timeout time.Duration
}

type SessionConfig struct {
	// Path of the file-backed session store (as360_token / as360_tenant).
	Path string
}

type DealerConfig struct {
	Name    string
	Address string
	Phone   string
	GSTIN   string
}

type PrinterConfig struct {
	Type    string // usb, network, none
	USBPath string
	Address string
}

type SandboxConfig struct {
	Port      string
	DBPath    string
	JWTSecret string
}

type CORSConfig struct {
	AllowedOrigins []string
	AllowedMethods []string
	AllowedHeaders []string
}

type RateLimitConfig struct {
	Requests int
	Duration int
}

type LogConfig struct {
	Level  string
	Format string
}

func Load() *Config {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		log.Printf("Warning: .env file not found, using environment variables: %v", err)
	}

	// Set defaults
	viper.SetDefault("APP_NAME", "as360-pos")
	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("BACKEND_BASE_URL", "http://localhost:8360/api/v1")
	viper.SetDefault("BACKEND_TIMEOUT_SECONDS", 10)
	viper.SetDefault("SESSION_PATH", defaultSessionPath())
	viper.SetDefault("DEALER_NAME", "AutoServe 360 Motors")
	viper.SetDefault("DEALER_ADDRESS", "")
	viper.SetDefault("DEALER_PHONE", "")
	viper.SetDefault("DEALER_GSTIN", "")
	viper.SetDefault("PRINTER_TYPE", "none")
	viper.SetDefault("PRINTER_USB_PATH", "/dev/usb/lp0")
	viper.SetDefault("PRINTER_ADDRESS", "")
	viper.SetDefault("SANDBOX_PORT", "8360")
	viper.SetDefault("SANDBOX_DB_PATH", "as360-sandbox.db")
	viper.SetDefault("SANDBOX_JWT_SECRET", "sandbox-secret-not-for-production")
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
	viper.SetDefault("CORS_ALLOWED_METHODS", []string{"GET", "POST", "DELETE", "OPTIONS"})
	viper.SetDefault("CORS_ALLOWED_HEADERS", []string{"Authorization", "Content-Type", "X-Tenant-ID"})
	viper.SetDefault("RATE_LIMIT_REQUESTS", 100)
	viper.SetDefault("RATE_LIMIT_DURATION", 60)
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("LOG_FORMAT", "console")

	return &Config{
		App: AppConfig{
			Name: viper.GetString("APP_NAME"),
			Env:  viper.GetString("APP_ENV"),
		},
		Backend: BackendConfig{
			BaseURL: viper.GetString("BACKEND_BASE_URL"),
			Timeout: time.Duration(viper.GetInt("BACKEND_TIMEOUT_SECONDS")) * time.Second,
		},
		Session: SessionConfig{
			Path: viper.GetString("SESSION_PATH"),
		},
		Dealer: DealerConfig{
			Name:    viper.GetString("DEALER_NAME"),
			Address: viper.GetString("DEALER_ADDRESS"),
			Phone:   viper.GetString("DEALER_PHONE"),
			GSTIN:   viper.GetString("DEALER_GSTIN"),
		},
		Printer: PrinterConfig{
			Type:    viper.GetString("PRINTER_TYPE"),
			USBPath: viper.GetString("PRINTER_USB_PATH"),
			Address: viper.GetString("PRINTER_ADDRESS"),
		},
		Sandbox: SandboxConfig{
			Port:      viper.GetString("SANDBOX_PORT"),
			DBPath:    viper.GetString("SANDBOX_DB_PATH"),
			JWTSecret: viper.GetString("SANDBOX_JWT_SECRET"),
		},
		CORS: CORSConfig{
			AllowedOrigins: viper.GetStringSlice("CORS_ALLOWED_ORIGINS"),
			AllowedMethods: viper.GetStringSlice("CORS_ALLOWED_METHODS"),
			AllowedHeaders: viper.GetStringSlice("CORS_ALLOWED_HEADERS"),
		},
		RateLimit: RateLimitConfig{
			Requests: viper.GetInt("RATE_LIMIT_REQUESTS"),
			Duration: viper.GetInt("RATE_LIMIT_DURATION"),
		},
		Log: LogConfig{
			Level:  viper.GetString("LOG_LEVEL"),
			Format: viper.GetString("LOG_FORMAT"),
		},
	}
}

func defaultSessionPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".as360/session.json"
	}
	return filepath.Join(home, ".as360", "session.json")
}
