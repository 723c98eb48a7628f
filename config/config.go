package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env"
	"github.com/joho/godotenv"
)

// Configuration holds everything the server needs to run, loaded from
// config/env/<GO_ENV>.env plus the process environment.
type Configuration struct {
	Address               string `env:"ADDRESS" envDefault:":8080"`
	MongoDB_ConnectionURI string `env:"MONGODB_CONNECTION_URI,required"`
	MongoDB_DBName        string `env:"MONGODB_DBNAME" envDefault:"saborea"`
	JwtSecret             string `env:"JWT_SECRET,required"`
	SessionCookieName     string `env:"SESSION_COOKIE_NAME" envDefault:"saborea_session"`
	SessionTTLHours       int    `env:"SESSION_TTL_HOURS" envDefault:"72"`
	CORS_Origins          string `env:"CORS_ORIGINS" envDefault:"*"`
	CORS_AllowCredentials bool   `env:"CORS_ALLOW_CREDENTIALS" envDefault:"true"`
	RateLimit_Max         int    `env:"RATE_LIMIT_MAX" envDefault:"100"`
	RateLimit_Window      int    `env:"RATE_LIMIT_WINDOW" envDefault:"60"`
	RateLimit_Enabled     bool   `env:"RATE_LIMIT_ENABLED" envDefault:"true"`

	// Seed data for the first boot. The default admin is only created when
	// the admins collection is empty.
	DefaultAdminEmail    string `env:"DEFAULT_ADMIN_EMAIL" envDefault:"admin@saborea.local"`
	DefaultAdminPassword string `env:"DEFAULT_ADMIN_PASSWORD" envDefault:"cambiame123"`

	// Alert thresholds (minutes) for the back-office order board.
	AlertPaymentWaitingMinutes int `env:"ALERT_PAYMENT_WAITING_MINUTES" envDefault:"10"`
	AlertCookingDelayMinutes   int `env:"ALERT_COOKING_DELAY_MINUTES" envDefault:"30"`
	AlertIssueUrgentMinutes    int `env:"ALERT_ISSUE_URGENT_MINUTES" envDefault:"30"`

	// WhatsApp business number used for outbound wa.me deep links.
	WhatsAppBusinessPhone string `env:"WHATSAPP_BUSINESS_PHONE" envDefault:""`

	// Frontend URL allowed to call the API with credentials.
	FrontendURL string `env:"FRONTEND_URL" envDefault:"http://localhost:3000"`
}

// getEnvPath resolves the env file for the current GO_ENV by walking up from
// the working directory until a config/env folder is found. Running from
// cmd/server, the repo root or a test package all end up at the same file.
func getEnvPath() string {
	goEnv := os.Getenv("GO_ENV")
	if goEnv == "" {
		goEnv = "development"
	}

	currentDir, err := os.Getwd()
	if err != nil {
		fmt.Printf("cannot resolve working directory: %v\n", err)
		return ""
	}

	for {
		envPath := filepath.Join(currentDir, "config", "env", goEnv+".env")
		if _, err := os.Stat(envPath); err == nil {
			return envPath
		}
		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			break
		}
		currentDir = parentDir
	}

	return ""
}

// NewConfig loads the env file (when present) and parses the configuration
// from the environment. Missing required variables fail loudly here, before
// anything else starts.
func NewConfig() (*Configuration, error) {
	if envPath := getEnvPath(); envPath != "" {
		if err := godotenv.Load(envPath); err != nil {
			return nil, fmt.Errorf("failed to load env file %s: %w", envPath, err)
		}
	}

	cfg := &Configuration{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse configuration: %w", err)
	}

	return cfg, nil
}
