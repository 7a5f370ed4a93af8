// Package config loads htmldeck settings from YAML files.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tsawler/htmldeck/internal/yamlutil"
	"github.com/tsawler/htmldeck/layout"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrInvalidValue    = errors.New("invalid config value")
)

// DefaultName is the config name looked up when none is given.
const DefaultName = "htmldeck"

// MaxSubtitleLength bounds the title slide subtitle.
const MaxSubtitleLength = 500

// Config holds all settings for a conversion.
type Config struct {
	Input         string       `yaml:"input"`         // Slide document (default: index.html)
	Output        string       `yaml:"output"`        // Presentation path (empty = input name with .pptx)
	Images        string       `yaml:"images"`        // Chart image directory (default: images)
	Workers       int          `yaml:"workers"`       // Slides laid out at once (0 = GOMAXPROCS)
	MaxImageWidth int          `yaml:"maxImageWidth"` // Pixels; wider images are scaled down (0 = keep)
	Subtitle      string       `yaml:"subtitle"`      // Title slide fallback subtitle (empty = built-in)
	BestMarker    string       `yaml:"bestMarker"`    // Text marking a best-result table row
	Limits        LimitsConfig `yaml:"limits"`
}

// LimitsConfig caps the blocks placed per slide. Zero keeps the default.
type LimitsConfig struct {
	Stats               int `yaml:"stats"`
	StatColumns         int `yaml:"statColumns"`
	AlgorithmCards      int `yaml:"algorithmCards"`
	AlgorithmColumns    int `yaml:"algorithmColumns"`
	FeatureBars         int `yaml:"featureBars"`
	Bullets             int `yaml:"bullets"`
	TableRows           int `yaml:"tableRows"`
	Tables              int `yaml:"tables"`
	HighlightBoxes      int `yaml:"highlightBoxes"`
	TitleHighlightBoxes int `yaml:"titleHighlightBoxes"`
}

// Layout converts the limits to layout.Limits, filling in defaults.
func (l LimitsConfig) Layout() layout.Limits {
	return layout.Limits{
		Stats:               l.Stats,
		StatColumns:         l.StatColumns,
		AlgorithmCards:      l.AlgorithmCards,
		AlgorithmColumns:    l.AlgorithmColumns,
		FeatureBars:         l.FeatureBars,
		Bullets:             l.Bullets,
		TableRows:           l.TableRows,
		Tables:              l.Tables,
		HighlightBoxes:      l.HighlightBoxes,
		TitleHighlightBoxes: l.TitleHighlightBoxes,
	}.WithDefaults()
}

// DefaultConfig returns the settings used when no file is found.
func DefaultConfig() *Config {
	return &Config{
		Input:  "index.html",
		Images: "images",
	}
}

// Validate checks that numeric settings are not negative and text fields
// fit their limits.
func (c *Config) Validate() error {
	for _, f := range []struct {
		name  string
		value int
	}{
		{"workers", c.Workers},
		{"maxImageWidth", c.MaxImageWidth},
		{"limits.stats", c.Limits.Stats},
		{"limits.statColumns", c.Limits.StatColumns},
		{"limits.algorithmCards", c.Limits.AlgorithmCards},
		{"limits.algorithmColumns", c.Limits.AlgorithmColumns},
		{"limits.featureBars", c.Limits.FeatureBars},
		{"limits.bullets", c.Limits.Bullets},
		{"limits.tableRows", c.Limits.TableRows},
		{"limits.tables", c.Limits.Tables},
		{"limits.highlightBoxes", c.Limits.HighlightBoxes},
		{"limits.titleHighlightBoxes", c.Limits.TitleHighlightBoxes},
	} {
		if f.value < 0 {
			return fmt.Errorf("%w: %s is %d, must not be negative", ErrInvalidValue, f.name, f.value)
		}
	}
	if len(c.Subtitle) > MaxSubtitleLength {
		return fmt.Errorf("%w: subtitle (%d chars, max %d)", ErrInvalidValue, len(c.Subtitle), MaxSubtitleLength)
	}
	return nil
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator or a YAML extension, it's treated
// as a file path. Otherwise it's a config name searched in the current
// directory and then the user config directory. Fields missing from the
// file keep their DefaultConfig values.
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	var configPath string
	var err error

	if isFilePath(nameOrPath) {
		configPath = nameOrPath
	} else {
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yamlutil.UnmarshalStrict(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrConfigParse, configPath, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", configPath, err)
	}

	return cfg, nil
}

// isFilePath returns true if the string looks like a file path.
func isFilePath(s string) bool {
	if strings.ContainsAny(s, "/\\") {
		return true
	}
	ext := strings.ToLower(filepath.Ext(s))
	return ext == ".yaml" || ext == ".yml"
}

// resolveConfigPath searches for a config file by name in standard locations.
// Tries extensions in order: .yaml, .yml
// Tries locations in order: current directory, <user config dir>/htmldeck/
func resolveConfigPath(name string) (string, error) {
	extensions := []string{".yaml", ".yml"}
	triedPaths := make([]string, 0, len(extensions)*2)

	for _, ext := range extensions {
		localPath := name + ext
		if fileExists(localPath) {
			return localPath, nil
		}
		triedPaths = append(triedPaths, localPath)
	}

	userConfigDir, err := os.UserConfigDir()
	if err == nil {
		for _, ext := range extensions {
			userPath := filepath.Join(userConfigDir, "htmldeck", name+ext)
			if fileExists(userPath) {
				return userPath, nil
			}
			triedPaths = append(triedPaths, userPath)
		}
	}

	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(triedPaths, ", "))
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}
