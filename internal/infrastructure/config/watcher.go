package config

import (
	"context"
	"fmt"
	"os"

	"github.com/fsnotify/fsnotify"

	"github.com/bnema/tabring/internal/logging"
)

// Watch starts watching the config file for changes and reloads automatically.
// Registered callbacks receive every configuration that loads and validates.
// Reload problems are logged with the logger carried by ctx.
func (m *Manager) Watch(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.watching {
		return nil // Already watching
	}
	configFile := m.viper.ConfigFileUsed()
	if configFile == "" {
		return fmt.Errorf("no config file to watch")
	}
	if _, err := os.Stat(configFile); err != nil {
		return fmt.Errorf("cannot watch config file: %w", err)
	}

	m.viper.OnConfigChange(func(e fsnotify.Event) {
		log := logging.FromContext(ctx)
		log.Debug().Str("op", e.Op.String()).Str("file", e.Name).Msg("fsnotify config change detected")

		m.mu.Lock()
		if err := m.reload(); err != nil {
			log.Warn().Err(err).Msg("failed to reload config")
			m.mu.Unlock()
			return
		}
		m.notifyCallbacksLocked()
	})
	m.viper.WatchConfig()

	m.watching = true
	return nil
}

// notifyCallbacksLocked copies callbacks and config, releases lock, then notifies.
// Must be called with m.mu held for write. Releases the lock before calling callbacks.
func (m *Manager) notifyCallbacksLocked() {
	config := *m.config
	callbacks := make([]func(*Config), len(m.callbacks))
	copy(callbacks, m.callbacks)
	m.mu.Unlock()

	for _, callback := range callbacks {
		cfg := config
		callback(&cfg)
	}
}

// OnConfigChange registers a callback function to be called when config changes.
func (m *Manager) OnConfigChange(callback func(*Config)) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.callbacks = append(m.callbacks, callback)
}

// reload re-reads the file (must be called with lock held for write).
// The previous configuration stays active when the new one is invalid.
func (m *Manager) reload() error {
	if err := m.viper.ReadInConfig(); err != nil {
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

// Reload re-reads the config file now and notifies callbacks on success.
func (m *Manager) Reload() error {
	m.mu.Lock()
	if err := m.reload(); err != nil {
		m.mu.Unlock()
		return err
	}
	m.notifyCallbacksLocked()
	return nil
}
