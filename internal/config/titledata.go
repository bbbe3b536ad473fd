package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bytedance/sonic"
	"gopkg.in/yaml.v3"

	"apafmt/internal/style"
)

// LoadTitleData reads title-page fields from a YAML or JSON file,
// chosen by extension. Field presence is not validated here; the
// assembler rejects a missing title before rendering.
func LoadTitleData(path string) (style.TitleData, error) {
	var td style.TitleData

	data, err := os.ReadFile(path)
	if err != nil {
		return td, fmt.Errorf("failed to read title data %s: %w", path, err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		if err := sonic.Unmarshal(data, &td); err != nil {
			return td, fmt.Errorf("failed to parse title data %s: %w", path, err)
		}
	default:
		if err := yaml.Unmarshal(data, &td); err != nil {
			return td, fmt.Errorf("failed to parse title data %s: %w", path, err)
		}
	}

	return td, nil
}
