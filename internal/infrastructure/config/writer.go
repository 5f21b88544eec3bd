package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// EncodeTOML renders cfg as TOML with fields in definition order.
func EncodeTOML(cfg *Config) ([]byte, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config is nil")
	}

	var buf bytes.Buffer
	enc := toml.NewEncoder(&buf)
	enc.SetIndentTables(true)

	if err := enc.Encode(cfg); err != nil {
		return nil, fmt.Errorf("failed to encode config: %w", err)
	}
	return buf.Bytes(), nil
}

// WriteConfigOrdered writes the configuration to path, creating parent
// directories as needed.
func WriteConfigOrdered(cfg *Config, path string) error {
	data, err := EncodeTOML(cfg)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), dirPerm); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := os.WriteFile(path, data, filePerm); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// WriteDefaultConfig writes the default configuration to path unless a
// file already exists there. It reports whether a file was written.
func WriteDefaultConfig(path string, overwrite bool) (bool, error) {
	if !overwrite {
		if _, err := os.Stat(path); err == nil {
			return false, nil
		}
	}
	if err := WriteConfigOrdered(DefaultConfig(), path); err != nil {
		return false, err
	}
	return true, nil
}
