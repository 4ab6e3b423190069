// Package config loads service settings from an optional YAML or TOML file
// and the process environment. Environment variables win over the file.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

const (
	StorageMemory   = "memory"
	StorageSQLite   = "sqlite"
	StorageDynamoDB = "dynamodb"
	StorageRedis    = "redis"
	StoragePostgres = "postgres"
)

type Config struct {
	Server       ServerConfig    `yaml:"server" toml:"server"`
	Storage      StorageConfig   `yaml:"storage" toml:"storage"`
	Assistant    AssistantConfig `yaml:"assistant" toml:"assistant"`
	Payments     PaymentsConfig  `yaml:"payments" toml:"payments"`
	Company      CompanyConfig   `yaml:"company" toml:"company"`
	Log          LogConfig       `yaml:"log" toml:"log"`
	SeedDemoData bool            `yaml:"seed_demo_data" toml:"seed_demo_data"`
}

type ServerConfig struct {
	Port    int    `yaml:"port" toml:"port"`
	GinMode string `yaml:"gin_mode" toml:"gin_mode"`
}

type StorageConfig struct {
	Driver         string `yaml:"driver" toml:"driver"`
	KeyPrefix      string `yaml:"key_prefix" toml:"key_prefix"`
	SQLitePath     string `yaml:"sqlite_path" toml:"sqlite_path"`
	DynamoTable    string `yaml:"dynamodb_table" toml:"dynamodb_table"`
	DynamoEndpoint string `yaml:"dynamodb_endpoint" toml:"dynamodb_endpoint"`
	AWSRegion      string `yaml:"aws_region" toml:"aws_region"`
	RedisAddr      string `yaml:"redis_addr" toml:"redis_addr"`
	RedisPassword  string `yaml:"redis_password" toml:"redis_password"`
	RedisDB        int    `yaml:"redis_db" toml:"redis_db"`
	PostgresDSN    string `yaml:"postgres_dsn" toml:"postgres_dsn"`
}

type AssistantConfig struct {
	APIKey         string `yaml:"api_key" toml:"api_key"`
	Model          string `yaml:"model" toml:"model"`
	BaseURL        string `yaml:"base_url" toml:"base_url"`
	TimeoutSeconds int    `yaml:"timeout_seconds" toml:"timeout_seconds"`
}

type PaymentsConfig struct {
	AccessToken string `yaml:"access_token" toml:"access_token"`
	Mock        bool   `yaml:"mock" toml:"mock"`
	Currency    string `yaml:"currency" toml:"currency"`
}

// CompanyConfig is the letterhead printed on reports.
type CompanyConfig struct {
	Name         string `yaml:"name" toml:"name"`
	Tagline      string `yaml:"tagline" toml:"tagline"`
	Address      string `yaml:"address" toml:"address"`
	Phone        string `yaml:"phone" toml:"phone"`
	ValidityDays int    `yaml:"validity_days" toml:"validity_days"`
}

type LogConfig struct {
	Level  string `yaml:"level" toml:"level"`
	Format string `yaml:"format" toml:"format"`
}

// Default returns the settings used when nothing is configured.
func Default() Config {
	return Config{
		Server: ServerConfig{Port: 8080, GinMode: "release"},
		Storage: StorageConfig{
			Driver:      StorageSQLite,
			SQLitePath:  filepath.Join("data", "mixto.db"),
			DynamoTable: "mixto_documents",
			AWSRegion:   "us-east-1",
			RedisAddr:   "localhost:6379",
		},
		Assistant: AssistantConfig{
			Model:          "gemini-2.5-flash",
			BaseURL:        "https://generativelanguage.googleapis.com/v1beta",
			TimeoutSeconds: 30,
		},
		Payments: PaymentsConfig{Currency: "BRL"},
		Company: CompanyConfig{
			Name:         "Mixto de Tudo Serviços",
			Tagline:      "Construindo e reformando seus sonhos",
			Address:      "Av Carlos Drummond de Andrade, 160 - Japiim",
			Phone:        "(92) 98809-1790",
			ValidityDays: 15,
		},
		Log:          LogConfig{Level: "info", Format: "json"},
		SeedDemoData: true,
	}
}

// Load reads path (when not empty) over the defaults, then applies the
// environment. The file format is chosen by extension.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("reading config: %w", err)
		}
		switch strings.ToLower(filepath.Ext(path)) {
		case ".toml":
			if err := toml.Unmarshal(data, &cfg); err != nil {
				return cfg, fmt.Errorf("parsing config: %w", err)
			}
		case ".yaml", ".yml":
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return cfg, fmt.Errorf("parsing config: %w", err)
			}
		default:
			return cfg, fmt.Errorf("unsupported config format %q", filepath.Ext(path))
		}
	}

	overrideFromEnv(&cfg)

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// FromEnv loads the file named by CONFIG_FILE, if any.
func FromEnv() (Config, error) {
	return Load(os.Getenv("CONFIG_FILE"))
}

func (c Config) Validate() error {
	switch c.Storage.Driver {
	case StorageMemory, StorageSQLite, StorageDynamoDB, StorageRedis, StoragePostgres:
	default:
		return fmt.Errorf("unknown storage driver %q", c.Storage.Driver)
	}
	if c.Storage.Driver == StoragePostgres && c.Storage.PostgresDSN == "" {
		return fmt.Errorf("storage driver postgres requires DATABASE_URL")
	}
	if c.Server.Port <= 0 {
		return fmt.Errorf("invalid server port %d", c.Server.Port)
	}
	return nil
}

func overrideFromEnv(cfg *Config) {
	setInt(&cfg.Server.Port, "PORT")
	setString(&cfg.Server.GinMode, "GIN_MODE")

	setString(&cfg.Storage.Driver, "STORAGE_DRIVER")
	cfg.Storage.Driver = strings.ToLower(strings.TrimSpace(cfg.Storage.Driver))
	setString(&cfg.Storage.KeyPrefix, "STORAGE_KEY_PREFIX")
	setString(&cfg.Storage.SQLitePath, "SQLITE_PATH")
	setString(&cfg.Storage.DynamoTable, "DYNAMODB_TABLE")
	setString(&cfg.Storage.DynamoEndpoint, "DYNAMODB_ENDPOINT")
	setString(&cfg.Storage.AWSRegion, "AWS_REGION")
	setString(&cfg.Storage.RedisAddr, "REDIS_ADDR")
	setString(&cfg.Storage.RedisPassword, "REDIS_PASSWORD")
	setInt(&cfg.Storage.RedisDB, "REDIS_DB")
	setString(&cfg.Storage.PostgresDSN, "DATABASE_URL")

	setString(&cfg.Assistant.APIKey, "API_KEY")
	setString(&cfg.Assistant.APIKey, "GEMINI_API_KEY")
	setString(&cfg.Assistant.APIKey, "ASSISTANT_API_KEY")
	setString(&cfg.Assistant.Model, "ASSISTANT_MODEL")
	setString(&cfg.Assistant.BaseURL, "ASSISTANT_BASE_URL")
	setInt(&cfg.Assistant.TimeoutSeconds, "ASSISTANT_TIMEOUT_SECONDS")

	setString(&cfg.Payments.AccessToken, "MERCADOPAGO_ACCESS_TOKEN")
	setBool(&cfg.Payments.Mock, "MERCADOPAGO_MOCK")
	setBool(&cfg.Payments.Mock, "PAYMENT_GATEWAY_MOCK")
	setString(&cfg.Payments.Currency, "PAYMENT_CURRENCY")

	setString(&cfg.Company.Name, "COMPANY_NAME")
	setString(&cfg.Company.Tagline, "COMPANY_TAGLINE")
	setString(&cfg.Company.Address, "COMPANY_ADDRESS")
	setString(&cfg.Company.Phone, "COMPANY_PHONE")
	setInt(&cfg.Company.ValidityDays, "BUDGET_VALIDITY_DAYS")

	setString(&cfg.Log.Level, "LOG_LEVEL")
	setString(&cfg.Log.Format, "LOG_FORMAT")
	setBool(&cfg.SeedDemoData, "SEED_DEMO_DATA")
}

func setString(dst *string, key string) {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		*dst = v
	}
}

func setInt(dst *int, key string) {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			*dst = n
		}
	}
}

func setBool(dst *bool, key string) {
	switch strings.ToLower(strings.TrimSpace(os.Getenv(key))) {
	case "1", "true", "yes", "on", "mock":
		*dst = true
	case "0", "false", "no", "off":
		*dst = false
	}
}
