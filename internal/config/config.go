package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App          App          `mapstructure:",squash"`
	Server       Server       `mapstructure:",squash"`
	Database     Database     `mapstructure:",squash"`
	Auth         Auth         `mapstructure:",squash"`
	Credentials  Credentials  `mapstructure:",squash"`
	LLM          LLM          `mapstructure:",squash"`
	AWS          AWS          `mapstructure:",squash"`
	Azure        Azure        `mapstructure:",squash"`
	GCP          GCP          `mapstructure:",squash"`
	ResourceSync ResourceSync `mapstructure:",squash"`
	CostSync     CostSync     `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host           string   `mapstructure:"host"`
	Port           string   `mapstructure:"port"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
	RateLimit      float64  `mapstructure:"rate_limit"`
	RateLimitBurst int      `mapstructure:"rate_limit_burst"`
}

type Database struct {
	DSN             string        `mapstructure:"-"`
	Driver          string        `mapstructure:"database_driver"`
	Password        string        `mapstructure:"database_password"`
	URL             string        `mapstructure:"database_url"`
	User            string        `mapstructure:"database_user"`
	MaxOpenConns    int           `mapstructure:"database_max_open_conns"`
	MaxIdleConns    int           `mapstructure:"database_max_idle_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"database_conn_max_lifetime"`
}

type Auth struct {
	Secret string `mapstructure:"auth_secret"`
}

type Credentials struct {
	// SealingKey is a hex encoded 32 byte key.
	SealingKey string `mapstructure:"credentials_sealing_key"`
}

type LLM struct {
	BaseURL   string        `mapstructure:"llm_base_url"`
	APIKey    string        `mapstructure:"llm_api_key"`
	Model     string        `mapstructure:"llm_model"`
	Version   string        `mapstructure:"llm_api_version"`
	MaxTokens int           `mapstructure:"llm_max_tokens"`
	Timeout   time.Duration `mapstructure:"llm_timeout"`
}

type AWS struct {
	DefaultRegion      string `mapstructure:"aws_default_region"`
	CostExplorerRegion string `mapstructure:"aws_cost_explorer_region"`
}

type Azure struct {
	LoginURL      string        `mapstructure:"azure_login_url"`
	ManagementURL string        `mapstructure:"azure_management_url"`
	Timeout       time.Duration `mapstructure:"azure_timeout"`
}

type GCP struct {
	TokenURL    string        `mapstructure:"gcp_token_url"`
	ComputeURL  string        `mapstructure:"gcp_compute_url"`
	SQLAdminURL string        `mapstructure:"gcp_sqladmin_url"`
	StorageURL  string        `mapstructure:"gcp_storage_url"`
	BigQueryURL string        `mapstructure:"gcp_bigquery_url"`
	Timeout     time.Duration `mapstructure:"gcp_timeout"`
}

type ResourceSync struct {
	CronSchedule      string `mapstructure:"resource_sync_cron"`
	MaxConcurrentJobs int    `mapstructure:"resource_sync_max_concurrent_jobs"`
	Enabled           bool   `mapstructure:"resource_sync_enabled"`
}

type CostSync struct {
	CronSchedule      string `mapstructure:"cost_sync_cron"`
	MaxConcurrentJobs int    `mapstructure:"cost_sync_max_concurrent_jobs"`
	LookbackDays      int    `mapstructure:"cost_sync_lookback_days"`
	Enabled           bool   `mapstructure:"cost_sync_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)
	viper.SetDefault("ALLOWED_ORIGINS", "http://localhost:3000,http://localhost:5173")
	viper.SetDefault("RATE_LIMIT", 2)
	viper.SetDefault("RATE_LIMIT_BURST", 5)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/cloudcost?sslmode=disable")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")
	viper.SetDefault("DATABASE_MAX_OPEN_CONNS", 10)
	viper.SetDefault("DATABASE_MAX_IDLE_CONNS", 5)
	viper.SetDefault("DATABASE_CONN_MAX_LIFETIME", "30m")

	viper.SetDefault("AUTH_SECRET", "your_secret_key")
	viper.SetDefault("CREDENTIALS_SEALING_KEY", "")

	viper.SetDefault("LLM_BASE_URL", "https://api.anthropic.com")
	viper.SetDefault("LLM_API_KEY", "")
	viper.SetDefault("LLM_MODEL", "claude-3-5-haiku-latest")
	viper.SetDefault("LLM_API_VERSION", "2023-06-01")
	viper.SetDefault("LLM_MAX_TOKENS", 2048)
	viper.SetDefault("LLM_TIMEOUT", "60s")

	viper.SetDefault("AWS_DEFAULT_REGION", "us-east-1")
	viper.SetDefault("AWS_COST_EXPLORER_REGION", "us-east-1")

	viper.SetDefault("AZURE_LOGIN_URL", "https://login.microsoftonline.com")
	viper.SetDefault("AZURE_MANAGEMENT_URL", "https://management.azure.com")
	viper.SetDefault("AZURE_TIMEOUT", "30s")

	viper.SetDefault("GCP_TOKEN_URL", "https://oauth2.googleapis.com/token")
	viper.SetDefault("GCP_COMPUTE_URL", "https://compute.googleapis.com/compute/v1")
	viper.SetDefault("GCP_SQLADMIN_URL", "https://sqladmin.googleapis.com/v1")
	viper.SetDefault("GCP_STORAGE_URL", "https://storage.googleapis.com/storage/v1")
	viper.SetDefault("GCP_BIGQUERY_URL", "https://bigquery.googleapis.com/bigquery/v2")
	viper.SetDefault("GCP_TIMEOUT", "30s")

	viper.SetDefault("RESOURCE_SYNC_CRON", "0 2 * * *")
	viper.SetDefault("RESOURCE_SYNC_MAX_CONCURRENT_JOBS", 3)
	viper.SetDefault("RESOURCE_SYNC_ENABLED", false)

	viper.SetDefault("COST_SYNC_CRON", "0 3 * * *")
	viper.SetDefault("COST_SYNC_MAX_CONCURRENT_JOBS", 3)
	viper.SetDefault("COST_SYNC_LOOKBACK_DAYS", 30)
	viper.SetDefault("COST_SYNC_ENABLED", false)

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Using variables loaded by godotenv (viper could not read .env): ", err)
	} else {
		logrus.Info(".env read by viper")
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
}

func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Could not get the working directory: ", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Info(".env loaded from: ", location)
			return
		}
	}

	logrus.Warn("No .env file found in the known locations")
}
