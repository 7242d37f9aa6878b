package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/ale-ignas/linkboard/internal/dataset"
	"github.com/ale-ignas/linkboard/internal/models"
	"github.com/ale-ignas/linkboard/internal/presenter"
)

// AppConfig represents the application configuration
type AppConfig struct {
	Source  string        `yaml:"source"`
	Proxy   string        `yaml:"proxy"`
	Server  ServerConfig  `yaml:"server"`
	Display DisplayConfig `yaml:"display"`
}

type ServerConfig struct {
	Addr     string `yaml:"addr"`
	Username string `yaml:"username"` // Prefer WEB_USERNAME env var
	Password string `yaml:"password"` // Prefer WEB_PASSWORD env var
}

type DisplayConfig struct {
	Variant        string       `yaml:"variant"`
	DefaultSort    string       `yaml:"default_sort"`
	ResourceFilter string       `yaml:"resource_filter"` // auto, on or off
	Labels         LabelsConfig `yaml:"labels"`
}

// LabelsConfig overrides individual page texts; empty values keep the defaults
type LabelsConfig struct {
	Title         string `yaml:"title"`
	NoEntries     string `yaml:"no_entries"`
	AllCategories string `yaml:"all_categories"`
	AllResources  string `yaml:"all_resources"`
	SortNewest    string `yaml:"sort_newest"`
	SortOldest    string `yaml:"sort_oldest"`
	Apply         string `yaml:"apply"`
}

// DefaultConfigFile is looked up when no config path is given
const DefaultConfigFile = "linkboard.yaml"

// LoadConfig loads the configuration from path, or from the first config
// file found when path is empty. A missing file yields the defaults.
func LoadConfig(path string) (*AppConfig, error) {
	if path == "" {
		path = findConfigPath()
	}

	cfg := GetDefaultConfig()

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		// defaults
	case err != nil:
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	}

	cfg.applyEnv()
	return cfg, nil
}

func findConfigPath() string {
	paths := []string{
		DefaultConfigFile,
		"config/" + DefaultConfigFile,
		"/etc/linkboard/" + DefaultConfigFile,
	}

	for _, p := range paths {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}

	return DefaultConfigFile
}

// GetDefaultConfig returns the built-in configuration
func GetDefaultConfig() *AppConfig {
	return &AppConfig{
		Source: dataset.DefaultSource,
		Server: ServerConfig{
			Addr: ":8080",
		},
		Display: DisplayConfig{
			Variant:        string(presenter.VariantSelect),
			DefaultSort:    string(models.SortDesc),
			ResourceFilter: "auto",
		},
	}
}

func (c *AppConfig) applyEnv() {
	c.Source = getEnvOrDefault("LINKBOARD_SOURCE", c.Source)
	c.Server.Addr = getEnvOrDefault("SERVER_ADDR", c.Server.Addr)
	c.Server.Username = getEnvOrDefault("WEB_USERNAME", c.Server.Username)
	c.Server.Password = getEnvOrDefault("WEB_PASSWORD", c.Server.Password)
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

// PresenterOptions converts the display settings for the given variant.
// An empty variant uses the configured one.
func (c *AppConfig) PresenterOptions(variant presenter.Variant) presenter.Options {
	if variant == "" {
		variant = c.Variant()
	}

	direction, ok := models.ParseSortDirection(c.Display.DefaultSort)
	if !ok {
		direction = models.SortDesc
	}

	var resourceFilter bool
	switch strings.ToLower(c.Display.ResourceFilter) {
	case "on", "true", "yes":
		resourceFilter = true
	case "off", "false", "no":
		resourceFilter = false
	default:
		resourceFilter = variant == presenter.VariantSelect
	}

	return presenter.Options{
		Variant:          variant,
		ResourceFilter:   resourceFilter,
		DefaultDirection: direction,
		Labels:           c.Display.Labels.merge(presenter.DefaultLabels()),
	}
}

// Variant returns the configured page variant, defaulting to dropdowns
func (c *AppConfig) Variant() presenter.Variant {
	if v, ok := presenter.ParseVariant(strings.ToLower(c.Display.Variant)); ok {
		return v
	}
	return presenter.VariantSelect
}

func (l LabelsConfig) merge(labels presenter.Labels) presenter.Labels {
	set := func(dst *string, v string) {
		if v != "" {
			*dst = v
		}
	}
	set(&labels.Title, l.Title)
	set(&labels.NoEntries, l.NoEntries)
	set(&labels.AllCategories, l.AllCategories)
	set(&labels.AllResources, l.AllResources)
	set(&labels.SortNewest, l.SortNewest)
	set(&labels.SortOldest, l.SortOldest)
	set(&labels.Apply, l.Apply)
	return labels
}
