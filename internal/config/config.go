package config

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"
)

const (
	ThemeLight = "light"
	ThemeDark  = "dark"

	// MaxRecentFolders caps the recent folder list.
	MaxRecentFolders = 10
)

// Config holds all user-configurable settings loaded from config.json
type Config struct {
	Window        WindowConfig `json:"window"`
	Theme         string       `json:"theme"` // "light" or "dark"
	FontSize      int          `json:"fontSize"`
	Locale        string       `json:"locale"`
	RecentFolders []string     `json:"recentFolders"` // Most recent first
}

// WindowConfig holds the main window geometry
type WindowConfig struct {
	Width     int  `json:"width"`
	Height    int  `json:"height"`
	Maximized bool `json:"maximized"`
}

// Manager handles loading, saving, and accessing configuration
type Manager struct {
	mu       sync.RWMutex
	config   *Config
	path     string
	parseErr error // Stores parsing error if config failed to load
}

// NewManager creates a manager for the default config path
func NewManager() *Manager {
	return NewManagerAt(ConfigPath())
}

// NewManagerAt creates a manager backed by the file at path
func NewManagerAt(path string) *Manager {
	return &Manager{
		config: DefaultConfig(),
		path:   path,
	}
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Window: WindowConfig{
			Width:  1200,
			Height: 800,
		},
		Theme:         ThemeLight,
		FontSize:      14,
		Locale:        "en",
		RecentFolders: []string{},
	}
}

// ConfigPath returns the config file path: ~/.config/canopy/config.json
func ConfigPath() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "canopy", "config.json")
}

// Path returns the file this manager reads and writes
func (m *Manager) Path() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.path
}

// Load reads the configuration from the config file
// If the file doesn't exist, creates it with defaults
// If parsing fails, stores the error and returns defaults
func (m *Manager) Load() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.parseErr = nil

	configDir := filepath.Dir(m.path)
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		log.Printf("Config: failed to create directory %s: %v", configDir, err)
		return err
	}

	data, err := os.ReadFile(m.path)
	if os.IsNotExist(err) {
		log.Printf("Config: creating default config at %s", m.path)
		m.config = DefaultConfig()
		if saveErr := m.saveUnlocked(); saveErr != nil {
			log.Printf("Config: failed to save default config: %v", saveErr)
			return saveErr
		}
		return nil
	}
	if err != nil {
		log.Printf("Config: failed to read %s: %v", m.path, err)
		return err
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		// Keep defaults; the error is surfaced through ParseError
		log.Printf("Config: JSON parse error: %v", err)
		m.parseErr = err
		m.config = DefaultConfig()
		return nil
	}

	normalize(&cfg)
	log.Printf("Config: loaded from %s", m.path)
	m.config = &cfg
	return nil
}

// normalize fills zero or invalid fields from the defaults
func normalize(cfg *Config) {
	def := DefaultConfig()
	if cfg.Window.Width <= 0 || cfg.Window.Height <= 0 {
		cfg.Window.Width, cfg.Window.Height = def.Window.Width, def.Window.Height
	}
	if cfg.Theme != ThemeLight && cfg.Theme != ThemeDark {
		cfg.Theme = def.Theme
	}
	if cfg.FontSize <= 0 {
		cfg.FontSize = def.FontSize
	}
	if cfg.Locale == "" {
		cfg.Locale = def.Locale
	}
	cfg.RecentFolders = pushRecent(nil, cfg.RecentFolders...)
}

// pushRecent returns list with paths placed in front, in the given order
// of precedence, without duplicates and capped at MaxRecentFolders
func pushRecent(list []string, paths ...string) []string {
	out := make([]string, 0, MaxRecentFolders)
	seen := make(map[string]bool)
	for _, p := range append(append([]string{}, paths...), list...) {
		if p == "" || seen[p] {
			continue
		}
		seen[p] = true
		out = append(out, p)
		if len(out) == MaxRecentFolders {
			break
		}
	}
	return out
}

// saveUnlocked saves config without acquiring lock (caller must hold lock)
func (m *Manager) saveUnlocked() error {
	data, err := json.MarshalIndent(m.config, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(m.path, data, 0o644)
}

// Save writes the current configuration to disk
func (m *Manager) Save() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.saveUnlocked()
}

func (m *Manager) update(fn func(*Config)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	fn(m.config)
	if err := m.saveUnlocked(); err != nil {
		log.Printf("Config: failed to save %s: %v", m.path, err)
	}
}

// Get returns a copy of the current configuration
func (m *Manager) Get() Config {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.config == nil {
		return *DefaultConfig()
	}
	cfg := *m.config
	cfg.RecentFolders = append([]string(nil), m.config.RecentFolders...)
	return cfg
}

// ParseError returns the parsing error if config failed to load
func (m *Manager) ParseError() error {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.parseErr
}

// IsDarkMode returns true if dark mode is enabled
func (m *Manager) IsDarkMode() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.config.Theme == ThemeDark
}

// SetDarkMode stores the theme matching dark
func (m *Manager) SetDarkMode(dark bool) {
	theme := ThemeLight
	if dark {
		theme = ThemeDark
	}
	m.update(func(c *Config) { c.Theme = theme })
}

// AddRecentFolder moves path to the front of the recent folder list
func (m *Manager) AddRecentFolder(path string) {
	m.update(func(c *Config) { c.RecentFolders = pushRecent(c.RecentFolders, path) })
}

// RecentFolders returns the recent folders, most recent first
func (m *Manager) RecentFolders() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]string(nil), m.config.RecentFolders...)
}

// SetWindow records the main window geometry
func (m *Manager) SetWindow(w WindowConfig) {
	if w.Width <= 0 || w.Height <= 0 {
		return
	}
	m.update(func(c *Config) { c.Window = w })
}

// GenerateConfig backs up the existing config and writes fresh defaults to
// the default path. See GenerateConfigAt.
func GenerateConfig() (backupPath string, err error) {
	return GenerateConfigAt(ConfigPath())
}

// GenerateConfigAt backs up the file at configPath, if any, and writes a
// fresh default config there. It returns the backup path, or an empty
// string when there was nothing to back up.
func GenerateConfigAt(configPath string) (backupPath string, err error) {
	if _, err := os.Stat(configPath); err == nil {
		timestamp := time.Now().Format("20060102-150405")
		backupPath = filepath.Join(filepath.Dir(configPath), "config.backup."+timestamp+".json")

		data, err := os.ReadFile(configPath)
		if err != nil {
			return "", fmt.Errorf("failed to read existing config: %w", err)
		}
		if err := os.WriteFile(backupPath, data, 0o644); err != nil {
			return "", fmt.Errorf("failed to write backup: %w", err)
		}
	}

	configDir := filepath.Dir(configPath)
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return backupPath, fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := json.MarshalIndent(DefaultConfig(), "", "  ")
	if err != nil {
		return backupPath, fmt.Errorf("failed to marshal default config: %w", err)
	}
	if err := os.WriteFile(configPath, data, 0o644); err != nil {
		return backupPath, fmt.Errorf("failed to write config: %w", err)
	}

	return backupPath, nil
}
