// Package config holds the application configuration.
package config

import (
	"os"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Config holds the application configuration.
type Config struct {
	Specs    SpecsConfig    `yaml:"specs"`
	Cache    CacheConfig    `yaml:"cache"`
	TechDocs TechDocsConfig `yaml:"techdocs"`
	Server   ServerConfig   `yaml:"server"`
	Replace  ReplaceConfig  `yaml:"replace"`
}

// SpecsConfig locates the two OpenAPI documents.
type SpecsConfig struct {
	Legacy string `yaml:"legacy"` // Path to the legacy spec
	New    string `yaml:"new"`    // Path to the new TechDocs spec
}

// CacheConfig locates the baked spec cache.
type CacheConfig struct {
	Path string `yaml:"path"`
}

// TechDocsConfig controls how TechDocs URLs are built.
type TechDocsConfig struct {
	BaseURL string `yaml:"baseUrl"`
}

// ServerConfig holds serve-mode settings.
type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

// ReplaceConfig holds batch replacement settings.
type ReplaceConfig struct {
	Workers int `yaml:"workers"` // Max concurrent files; 0 means GOMAXPROCS
}

// Default returns the configuration defaults.
func Default() *Config {
	return &Config{
		Specs: SpecsConfig{
			Legacy: "openapi-legacy.yaml",
			New:    "openapi.yaml",
		},
		Cache: CacheConfig{
			Path: "specdata.json",
		},
		TechDocs: TechDocsConfig{
			BaseURL: "https://techdocs.akamai.com/linode-api/reference/",
		},
		Server: ServerConfig{
			Host: "0.0.0.0",
			Port: 8080,
		},
	}
}

// Load reads a YAML config file, filling unset fields from the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// SetDefaults registers the configuration defaults on viper. Called once at
// CLI startup before the config file and environment are read in.
func SetDefaults() {
	defaults := Default()

	viper.SetDefault("specs.legacy", defaults.Specs.Legacy)
	viper.SetDefault("specs.new", defaults.Specs.New)
	viper.SetDefault("cache.path", defaults.Cache.Path)
	viper.SetDefault("techdocs.baseUrl", defaults.TechDocs.BaseURL)
	viper.SetDefault("server.host", defaults.Server.Host)
	viper.SetDefault("server.port", defaults.Server.Port)
	viper.SetDefault("replace.workers", defaults.Replace.Workers)
}

// FromViper materializes the configuration from viper, after defaults,
// config file and environment overrides have been applied.
func FromViper() *Config {
	return &Config{
		Specs: SpecsConfig{
			Legacy: viper.GetString("specs.legacy"),
			New:    viper.GetString("specs.new"),
		},
		Cache: CacheConfig{
			Path: viper.GetString("cache.path"),
		},
		TechDocs: TechDocsConfig{
			BaseURL: viper.GetString("techdocs.baseUrl"),
		},
		Server: ServerConfig{
			Host: viper.GetString("server.host"),
			Port: viper.GetInt("server.port"),
		},
		Replace: ReplaceConfig{
			Workers: viper.GetInt("replace.workers"),
		},
	}
}
