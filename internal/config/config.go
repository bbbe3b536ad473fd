package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Document struct {
		Font      string `yaml:"font"`
		SizePt    int    `yaml:"size_pt"`
		OutputDir string `yaml:"output_dir"`
	} `yaml:"document"`
}

// Load reads the optional YAML config file and applies environment
// overrides. A missing file yields the defaults rather than an error.
func Load(path string) (*Config, error) {
	// 1. Load .env if exists
	_ = godotenv.Load()

	cfg := &Config{}
	cfg.Document.Font = "Times New Roman"
	cfg.Document.SizePt = 12

	// 2. Load YAML config
	file, err := os.ReadFile(path)
	if err == nil {
		if err := yaml.Unmarshal(file, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	} else if !errors.Is(err, os.ErrNotExist) {
		return nil, err
	}

	// 3. Override with environment variables if present
	if font := os.Getenv("APAFMT_FONT"); font != "" {
		cfg.Document.Font = font
	}
	if v := os.Getenv("APAFMT_SIZE_PT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.Document.SizePt = n
		}
	}
	if dir := os.Getenv("APAFMT_OUTPUT_DIR"); dir != "" {
		cfg.Document.OutputDir = dir
	}

	return cfg, nil
}
