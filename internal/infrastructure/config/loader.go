package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"sync"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Manager handles configuration loading, watching, and reloading.
type Manager struct {
	config    *Config
	viper     *viper.Viper
	mu        sync.RWMutex
	callbacks []func(*Config)
	watching  bool
}

// NewManager creates a manager that looks for config.toml in the XDG
// config directory and then in the working directory.
func NewManager() (*Manager, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return nil, fmt.Errorf("failed to determine config directory: %w\nCheck XDG_CONFIG_HOME environment variable or HOME directory", err)
	}
	return newManager(func(v *viper.Viper) {
		v.SetConfigName("config") // Name without extension
		v.AddConfigPath(configDir)
		v.AddConfigPath(".")
	})
}

// NewManagerForFile creates a manager bound to an explicit config file.
func NewManagerForFile(path string) (*Manager, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("config file path is empty")
	}
	return newManager(func(v *viper.Viper) {
		v.SetConfigFile(path)
	})
}

func newManager(locate func(*viper.Viper)) (*Manager, error) {
	v := viper.New()
	v.SetConfigType("toml")
	locate(v)

	// TABRING_REGISTRY_MAX_TABS, TABRING_LOGGING_LEVEL, ...
	v.SetEnvPrefix("TABRING")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Short aliases matching the logging package.
	if err := v.BindEnv("logging.level", "TABRING_LOG_LEVEL"); err != nil {
		return nil, fmt.Errorf("failed to bind TABRING_LOG_LEVEL: %w", err)
	}
	if err := v.BindEnv("logging.format", "TABRING_LOG_FORMAT"); err != nil {
		return nil, fmt.Errorf("failed to bind TABRING_LOG_FORMAT: %w", err)
	}
	if err := v.BindEnv("logging.file", "TABRING_LOG_FILE"); err != nil {
		return nil, fmt.Errorf("failed to bind TABRING_LOG_FILE: %w", err)
	}

	return &Manager{
		viper:     v,
		callbacks: make([]func(*Config), 0),
	}, nil
}

// BindFlag lets a command-line flag override key when the flag is set.
func (m *Manager) BindFlag(key string, flag *pflag.Flag) error {
	if flag == nil {
		return nil
	}
	if err := m.viper.BindPFlag(key, flag); err != nil {
		return fmt.Errorf("failed to bind flag --%s to %s: %w", flag.Name, key, err)
	}
	return nil
}

// Load loads the configuration from defaults, file, environment and flags.
// A missing config file is not an error.
func (m *Manager) Load() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.setDefaults()

	if err := m.readConfigFile(); err != nil {
		return err
	}

	config, err := m.unmarshalConfig()
	if err != nil {
		return err
	}
	normalizeConfig(config)

	if err := validateConfig(config); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	m.config = config
	return nil
}

func (m *Manager) readConfigFile() error {
	err := m.viper.ReadInConfig()
	if err == nil {
		return nil
	}

	var notFound viper.ConfigFileNotFoundError
	if errors.As(err, &notFound) || errors.Is(err, fs.ErrNotExist) {
		return nil
	}

	configFile := m.viper.ConfigFileUsed()
	if configFile == "" {
		configFile, _ = GetConfigFile()
	}
	return fmt.Errorf("failed to read config file at %s: %w\nCheck the file format (must be valid TOML) and permissions", configFile, err)
}

func (m *Manager) unmarshalConfig() (*Config, error) {
	config := &Config{}
	if err := m.viper.Unmarshal(config); err != nil {
		return nil, fmt.Errorf(
			"failed to parse config file at %s: %w\nCheck for syntax errors, invalid values, or type mismatches",
			m.viper.ConfigFileUsed(),
			err,
		)
	}
	return config, nil
}

func normalizeConfig(config *Config) {
	config.Logging.Level = strings.ToLower(strings.TrimSpace(config.Logging.Level))
	if config.Logging.Level == "" {
		config.Logging.Level = defaultLogLevel
	}

	config.Logging.Format = strings.ToLower(strings.TrimSpace(config.Logging.Format))
	switch config.Logging.Format {
	case "", "text":
		config.Logging.Format = defaultLogFormat
	}

	config.Logging.File = strings.TrimSpace(config.Logging.File)
}

// Get returns a copy of the current configuration.
func (m *Manager) Get() *Config {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.config == nil {
		return DefaultConfig()
	}
	configCopy := *m.config
	return &configCopy
}

// GetConfigFile returns the path of the config file that was read, or
// the path that would be used when none exists yet.
func (m *Manager) GetConfigFile() string {
	if used := m.viper.ConfigFileUsed(); used != "" {
		return used
	}
	path, err := GetConfigFile()
	if err != nil {
		return configFileName
	}
	return path
}

// setDefaults sets default configuration values in Viper.
func (m *Manager) setDefaults() {
	defaults := DefaultConfig()

	m.viper.SetDefault("registry.max_tabs", defaults.Registry.MaxTabs)

	m.viper.SetDefault("logging.level", defaults.Logging.Level)
	m.viper.SetDefault("logging.format", defaults.Logging.Format)
	m.viper.SetDefault("logging.file", defaults.Logging.File)
	m.viper.SetDefault("logging.max_size_mb", defaults.Logging.MaxSizeMB)
	m.viper.SetDefault("logging.max_backups", defaults.Logging.MaxBackups)

	p := defaults.Appearance.Palette
	m.viper.SetDefault("appearance.palette.background", p.Background)
	m.viper.SetDefault("appearance.palette.surface", p.Surface)
	m.viper.SetDefault("appearance.palette.surface_variant", p.SurfaceVariant)
	m.viper.SetDefault("appearance.palette.text", p.Text)
	m.viper.SetDefault("appearance.palette.muted", p.Muted)
	m.viper.SetDefault("appearance.palette.accent", p.Accent)
	m.viper.SetDefault("appearance.palette.border", p.Border)
}
