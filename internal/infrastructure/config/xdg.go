package config

import (
	"os"
	"path/filepath"
)

const (
	appName        = "tabring"
	configFileName = "config.toml"
	schemaFileName = "config.schema.json"

	dirPerm  = 0o755
	filePerm = 0o644
)

// GetConfigDir returns $XDG_CONFIG_HOME/tabring (default: ~/.config/tabring).
func GetConfigDir() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName), nil
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".config", appName), nil
}

// GetConfigFile returns the path to the main configuration file.
func GetConfigFile() (string, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, configFileName), nil
}

// GetStateDir returns $XDG_STATE_HOME/tabring (default: ~/.local/state/tabring).
func GetStateDir() (string, error) {
	if stateHome := os.Getenv("XDG_STATE_HOME"); stateHome != "" {
		return filepath.Join(stateHome, appName), nil
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".local", "state", appName), nil
}

// GetLogFile returns the default log file used when stderr is unavailable.
func GetLogFile() (string, error) {
	stateDir, err := GetStateDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(stateDir, "logs", appName+".log"), nil
}
