package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"sync"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"

	"github.com/bnema/wui/internal/logging"
)

// Manager handles configuration loading, watching, and reloading.
type Manager struct {
	config    *Config
	viper     *viper.Viper
	log       zerolog.Logger
	mu        sync.RWMutex
	callbacks []func(*Config)
	watching  bool

	// explicitFile is set when the caller chose the file.
	explicitFile string
}

// ManagerOption configures a Manager.
type ManagerOption func(*Manager)

// WithConfigFile reads the configuration from path instead of the XDG location.
func WithConfigFile(path string) ManagerOption {
	return func(m *Manager) { m.explicitFile = path }
}

// WithLogger sets the logger used for reload diagnostics.
func WithLogger(log zerolog.Logger) ManagerOption {
	return func(m *Manager) { m.log = log }
}

// NewManager creates a new configuration manager.
func NewManager(opts ...ManagerOption) (*Manager, error) {
	m := &Manager{
		viper: viper.New(),
		log:   logging.NewFromEnv(),
	}
	for _, opt := range opts {
		opt(m)
	}
	v := m.viper

	if m.explicitFile != "" {
		v.SetConfigFile(m.explicitFile)
	} else {
		v.SetConfigName("config")
		configDir, err := GetConfigDir()
		if err != nil {
			return nil, fmt.Errorf("failed to determine config directory: %w\nCheck XDG_CONFIG_HOME environment variable or HOME directory", err)
		}
		v.AddConfigPath(configDir)
		v.AddConfigPath(".")
	}
	v.SetConfigType("toml")

	// WUI_FRAME_INTERVAL_MS, WUI_LOGGING_LEVEL, ...
	v.SetEnvPrefix("WUI")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Same variables as logging.NewFromEnv.
	if err := v.BindEnv("logging.level", "WUI_LOG_LEVEL"); err != nil {
		return nil, fmt.Errorf("failed to bind WUI_LOG_LEVEL: %w", err)
	}
	if err := v.BindEnv("logging.format", "WUI_LOG_FORMAT"); err != nil {
		return nil, fmt.Errorf("failed to bind WUI_LOG_FORMAT: %w", err)
	}

	return m, nil
}

// Load reads the configuration file, creating a default one when missing.
func (m *Manager) Load() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.setDefaults()

	if err := m.readConfigFile(); err != nil {
		return err
	}

	cfg, err := m.decode()
	if err != nil {
		return err
	}
	m.config = cfg
	return nil
}

func (m *Manager) readConfigFile() error {
	err := m.viper.ReadInConfig()
	if err == nil {
		return nil
	}

	var notFound viper.ConfigFileNotFoundError
	if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to read config file at %s: %w\nCheck the file format (must be valid TOML) and permissions", m.configFilePath(), err)
	}

	path := m.configFilePath()
	if path == "" {
		return fmt.Errorf("failed to determine config file path")
	}
	if err := m.createDefaultConfig(path); err != nil {
		return fmt.Errorf("failed to create default config at %s: %w\nTry creating the directory manually or check permissions", path, err)
	}
	m.viper.SetConfigFile(path)
	if err := m.viper.ReadInConfig(); err != nil {
		return fmt.Errorf("failed to read newly created config file: %w", err)
	}
	return nil
}

func (m *Manager) configFilePath() string {
	if m.explicitFile != "" {
		return m.explicitFile
	}
	if used := m.viper.ConfigFileUsed(); used != "" {
		return used
	}
	path, err := GetConfigFile()
	if err != nil {
		return ""
	}
	return path
}

func (m *Manager) createDefaultConfig(path string) error {
	if err := WriteConfig(DefaultConfig(), path); err != nil {
		return err
	}
	if err := WriteSchemaFile(SchemaFileFor(path)); err != nil {
		m.log.Warn().Err(err).Msg("failed to write config schema")
	}
	m.log.Info().Str("file", path).Msg("created default configuration file")
	return nil
}

// decode unmarshals, normalizes and validates the current viper state.
func (m *Manager) decode() (*Config, error) {
	cfg := &Config{}
	if err := m.viper.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf(
			"failed to parse config file at %s: %w\nCheck for syntax errors, invalid values, or type mismatches",
			m.viper.ConfigFileUsed(),
			err,
		)
	}
	normalizeConfig(cfg)
	if err := validateConfig(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return cfg, nil
}

func normalizeConfig(cfg *Config) {
	cfg.Logging.Level = strings.ToLower(strings.TrimSpace(cfg.Logging.Level))
	cfg.Logging.Format = strings.ToLower(strings.TrimSpace(cfg.Logging.Format))

	for i := range cfg.Windows {
		w := &cfg.Windows[i]
		if w.Width <= 0 {
			w.Width = defaultWindowWidth
		}
		if w.Height <= 0 {
			w.Height = defaultWindowHeight
		}
		if w.Webview == nil {
			continue
		}
		w.Webview.DevTools = strings.ToLower(strings.TrimSpace(w.Webview.DevTools))
		w.Webview.ContextMenu = strings.ToLower(strings.TrimSpace(w.Webview.ContextMenu))
		w.Webview.ContextMenuKey = strings.TrimSpace(w.Webview.ContextMenuKey)
	}
}

// setDefaults sets default configuration values in Viper. Windows have no
// default: a file without [[windows]] declares none.
func (m *Manager) setDefaults() {
	defaults := DefaultConfig()
	m.viper.SetDefault("logging.level", defaults.Logging.Level)
	m.viper.SetDefault("logging.format", defaults.Logging.Format)
	m.viper.SetDefault("frame.interval_ms", defaults.Frame.IntervalMs)
}

// Get returns a copy of the current configuration.
func (m *Manager) Get() *Config {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.config == nil {
		return nil
	}
	return m.config.clone()
}

// GetConfigFile returns the path to the configuration file being used.
func (m *Manager) GetConfigFile() string {
	return m.viper.ConfigFileUsed()
}
