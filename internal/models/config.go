package models

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

type SanityConfig struct {
	ProjectID  string `mapstructure:"project_id"`
	Dataset    string `mapstructure:"dataset"`
	APIVersion string `mapstructure:"api_version"`
	UseCDN     bool   `mapstructure:"use_cdn"`
	Token      string `mapstructure:"token"`
}

type DatabaseConfig struct {
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	DBName   string `mapstructure:"dbname"`
	SSLMode  string `mapstructure:"sslmode"`
}

type CacheConfig struct {
	Enabled      bool          `mapstructure:"enabled"`
	RedisAddress string        `mapstructure:"redis_address"`
	RedisDB      int           `mapstructure:"redis_db"`
	TTL          time.Duration `mapstructure:"ttl"`
}

type SeedConfig struct {
	Branches   int    `mapstructure:"branches"`
	Categories int    `mapstructure:"categories"`
	Items      int    `mapstructure:"items"`
	OutputFile string `mapstructure:"output_file"`
}

type Config struct {
	HTTPPort      string         `mapstructure:"http_port"`
	CORSOrigins   string         `mapstructure:"cors_origins"`
	ContentSource string         `mapstructure:"content_source"` // "sanity" or "postgres"
	LogLevel      string         `mapstructure:"log_level"`
	Sanity        SanityConfig   `mapstructure:"sanity"`
	Database      DatabaseConfig `mapstructure:"database"`
	Cache         CacheConfig    `mapstructure:"cache"`
	Seed          SeedConfig     `mapstructure:"seed"`
}

// LoadConfig initializes and reads the configuration using Viper
func LoadConfig(cfgFile string) (*Config, error) {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		// Default config location
		viper.AddConfigPath("examples")
		viper.SetConfigName("config")
		viper.SetConfigType("json")
	}

	viper.AutomaticEnv() // Read in environment variables that match

	viper.SetDefault("http_port", "8080")
	viper.SetDefault("cors_origins", "http://localhost:3000")
	viper.SetDefault("content_source", "sanity")
	viper.SetDefault("log_level", "info")
	viper.SetDefault("sanity.api_version", "2024-01-01")
	viper.SetDefault("sanity.use_cdn", true)
	viper.SetDefault("cache.ttl", time.Minute)
	viper.SetDefault("seed.branches", 2)
	viper.SetDefault("seed.categories", 8)
	viper.SetDefault("seed.items", 60)
	viper.SetDefault("seed.output_file", "seed.ndjson")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %w", err)
	}

	return &config, nil
}

func (c *DatabaseConfig) ConnString() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode,
	)
}
