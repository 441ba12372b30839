package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"jspark.dev/internal/models"
)

// Config holds all application configuration
type Config struct {
	Addr       string `mapstructure:"addr"`
	SiteTitle  string `mapstructure:"siteTitle"`
	ContentDir string `mapstructure:"contentDir"`
	DataPath   string `mapstructure:"dataPath"`
	OutputDir  string `mapstructure:"outputDir"`
}

// Load resolves configuration from config.yaml, environment
// variables (SITE_ prefix), and defaults, in that order of
// precedence. cfgFile overrides the search path when non-empty.
func Load(cfgFile string) (*Config, error) {
	v := viper.New()

	v.SetDefault("addr", ":8080")
	v.SetDefault("siteTitle", "jspark.dev")
	v.SetDefault("contentDir", "content")
	v.SetDefault("dataPath", "data")
	v.SetDefault("outputDir", "public")

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}

	v.SetEnvPrefix("SITE")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// No config file is fine; defaults and env cover everything.
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}
	return &cfg, nil
}

// LoadProjects reads the projects.json fixture. The registry is
// compiled into the deployment artifact, so a malformed fixture is a
// startup failure, not a runtime one.
func LoadProjects(dataPath string) *models.ProjectList {
	path := filepath.Join(dataPath, "projects.json")
	data, err := os.ReadFile(path)
	if err != nil {
		panic("Failed to load projects.json: " + err.Error())
	}

	var projects models.ProjectList
	if err := json.Unmarshal(data, &projects); err != nil {
		panic("Failed to parse projects.json: " + err.Error())
	}

	return &projects
}
