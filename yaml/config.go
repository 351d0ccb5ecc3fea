// Package yaml loads the user configuration file.
package yaml

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/mwalczak/linktray"
)

// LoadConfig reads the YAML config at path, falling back to
// ~/.linktray/config.yaml when path is empty, and applies environment
// overrides (LINKTRAY_BROWSER, LINKTRAY_DATA). A missing file is not an
// error; the zero config is returned.
func LoadConfig(path string) (*linktray.Config, error) {
	if path == "" {
		if home, err := os.UserHomeDir(); err == nil {
			path = filepath.Join(home, ".linktray", "config.yaml")
		}
	}

	cfg := &linktray.Config{}
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, linktray.Errorf(linktray.EINVALID, "invalid config file %s: %v", path, err)
			}
		case !os.IsNotExist(err):
			return nil, err
		}
	}

	if v := os.Getenv("LINKTRAY_BROWSER"); v != "" {
		cfg.ControlURL = v
	}
	if v := os.Getenv("LINKTRAY_DATA"); v != "" {
		cfg.DataDir = v
	}

	return cfg, nil
}
