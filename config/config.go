package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	Environment EnvironmentConfig

	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	Firestore FirestoreConfig
	Identity  IdentityConfig
	RateLimit RateLimitConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type FirestoreConfig struct {
	ProjectID       string
	DatabaseID      string
	CredentialsFile string
	BaseURL         string
}

type IdentityConfig struct {
	ProjectID       string
	CredentialsFile string
	BaseURL         string
}

type RateLimitConfig struct {
	PerMin int
}

// Load loads configuration using Viper.
// Config file name: config.yaml — searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	cfg.Firestore.ProjectID = viper.GetString("firestore.project_id")
	cfg.Firestore.DatabaseID = viper.GetString("firestore.database_id")
	cfg.Firestore.CredentialsFile = viper.GetString("firestore.credentials_file")
	cfg.Firestore.BaseURL = viper.GetString("firestore.base_url")

	cfg.Identity.ProjectID = viper.GetString("identity.project_id")
	cfg.Identity.CredentialsFile = viper.GetString("identity.credentials_file")
	cfg.Identity.BaseURL = viper.GetString("identity.base_url")
	if cfg.Identity.ProjectID == "" {
		cfg.Identity.ProjectID = cfg.Firestore.ProjectID
	}
	if cfg.Identity.CredentialsFile == "" {
		cfg.Identity.CredentialsFile = cfg.Firestore.CredentialsFile
	}

	cfg.RateLimit.PerMin = viper.GetInt("rate_limit.per_min")

	if cfg.Firestore.ProjectID == "" {
		return nil, fmt.Errorf("firestore.project_id is required (or set FIRESTORE_PROJECT_ID)")
	}

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)
	viper.SetDefault("firestore.database_id", "(default)")
	viper.SetDefault("rate_limit.per_min", 60)
}
