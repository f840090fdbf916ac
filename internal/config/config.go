package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"

	"folio/internal/eventbus"
)

// Config represents the application configuration
type Config struct {
	Version     int             `toml:"version"`
	ContentPath string          `toml:"content_path,omitempty"` // empty = embedded content
	DataPath    string          `toml:"data_path,omitempty"`    // sqlite database for persisted state
	DevMode     bool            `toml:"dev_mode"`
	UI          UISettings      `toml:"ui"`
	Web         WebSettings     `toml:"web"`
	Contact     ContactSettings `toml:"contact"`
}

// UISettings represents terminal UI configuration
type UISettings struct {
	CellWidthPx      int  `toml:"cell_width_px"`
	CellHeightPx     int  `toml:"cell_height_px"`
	ReducedMotion    bool `toml:"reduced_motion"`
	Mouse            bool `toml:"mouse"`
	SearchDebounceMs int  `toml:"search_debounce_ms"`
	LoadDelayMs      int  `toml:"load_delay_ms"`
}

// WebSettings represents web server configuration
type WebSettings struct {
	Addr         string `toml:"addr"`
	SecureCookie bool   `toml:"secure_cookie"`
}

// ContactSettings configures how contact messages are delivered
type ContactSettings struct {
	DesktopNotify bool   `toml:"desktop_notify"`
	SMTPHost      string `toml:"smtp_host,omitempty"`
	SMTPPort      string `toml:"smtp_port,omitempty"`
	SMTPUser      string `toml:"smtp_user,omitempty"`
	SMTPPass      string `toml:"-"` // environment only
	To            string `toml:"to,omitempty"`
}

// ConfigService handles configuration management
type ConfigService interface {
	Load() (*Config, error)
	Save(config *Config) error
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
	Path() string
}

// configService is the concrete implementation
type configService struct {
	bus      eventbus.EventBus
	filePath string
}

// DefaultPath returns $XDG_CONFIG_HOME/folio/config.toml
func DefaultPath() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}
	return filepath.Join(configDir, "folio", "config.toml")
}

// NewConfigService creates a config service for the file at path. An empty
// path selects DefaultPath.
func NewConfigService(path string) ConfigService {
	if path == "" {
		path = DefaultPath()
	}
	return &configService{filePath: path}
}

// NewConfigServiceWithBus creates a config service with event bus support
func NewConfigServiceWithBus(path string, bus eventbus.EventBus) ConfigService {
	cs := NewConfigService(path).(*configService)
	cs.bus = bus
	return cs
}

func (cs *configService) Path() string {
	return cs.filePath
}

// Load loads the configuration from file. A missing file yields defaults.
func (cs *configService) Load() (*Config, error) {
	cfg, err := cs.LoadFromPath(cs.filePath)
	if errors.Is(err, fs.ErrNotExist) {
		cfg = DefaultConfig()
	} else if err != nil {
		return nil, err
	}

	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigLoadedEvent{Path: cs.filePath})
	}
	return cfg, nil
}

// Save saves the configuration to file
func (cs *configService) Save(config *Config) error {
	if err := cs.SaveToPath(config, cs.filePath); err != nil {
		return err
	}
	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigSavedEvent{Path: cs.filePath})
	}
	return nil
}

// LoadFromPath loads configuration from a specific path. Fields the file
// omits keep their default values.
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("config file not found: %s: %w", path, fs.ErrNotExist)
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	cfg.normalize()
	return cfg, nil
}

// SaveToPath saves configuration to a specific path
func (cs *configService) SaveToPath(config *Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version:  1,
		DataPath: defaultDataPath(),
		UI: UISettings{
			CellWidthPx:      8,
			CellHeightPx:     16,
			Mouse:            true,
			SearchDebounceMs: 150,
			LoadDelayMs:      500,
		},
		Web: WebSettings{
			Addr: ":8080",
		},
		Contact: ContactSettings{
			SMTPPort: "587",
		},
	}
}

func defaultDataPath() string {
	dataDir := os.Getenv("XDG_DATA_HOME")
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return filepath.Join(os.TempDir(), "folio.db")
		}
		dataDir = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataDir, "folio", "folio.db")
}

// normalize repairs values a hand-edited file may have zeroed
func (c *Config) normalize() {
	def := DefaultConfig()
	if c.UI.CellWidthPx <= 0 {
		c.UI.CellWidthPx = def.UI.CellWidthPx
	}
	if c.UI.CellHeightPx <= 0 {
		c.UI.CellHeightPx = def.UI.CellHeightPx
	}
	if c.UI.SearchDebounceMs < 0 {
		c.UI.SearchDebounceMs = def.UI.SearchDebounceMs
	}
	if c.UI.LoadDelayMs < 0 {
		c.UI.LoadDelayMs = def.UI.LoadDelayMs
	}
	if c.Web.Addr == "" {
		c.Web.Addr = def.Web.Addr
	}
	if c.DataPath == "" {
		c.DataPath = def.DataPath
	}
}

// LoadEnv reads dotenv files into the process environment. Missing files
// are skipped; variables already set win.
func LoadEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if _, err := os.Stat(f); errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err := godotenv.Load(f); err != nil {
			return fmt.Errorf("failed to load env file %s: %w", f, err)
		}
	}
	return nil
}

// ApplyEnv overlays FOLIO_* and SMTP_* environment variables onto cfg
func (c *Config) ApplyEnv(getenv func(string) string) {
	if getenv == nil {
		getenv = os.Getenv
	}
	if v := getenv("FOLIO_CONTENT"); v != "" {
		c.ContentPath = v
	}
	if v := getenv("FOLIO_DATA"); v != "" {
		c.DataPath = v
	}
	if v, ok := parseBool(getenv("FOLIO_DEV")); ok {
		c.DevMode = v
	}
	if v, ok := parseBool(getenv("FOLIO_REDUCED_MOTION")); ok {
		c.UI.ReducedMotion = v
	}
	if v := getenv("FOLIO_ADDR"); v != "" {
		c.Web.Addr = v
	} else if port := getenv("PORT"); port != "" {
		c.Web.Addr = ":" + port
	}
	if v := getenv("SMTP_HOST"); v != "" {
		c.Contact.SMTPHost = v
	}
	if v := getenv("SMTP_PORT"); v != "" {
		c.Contact.SMTPPort = v
	}
	if v := getenv("SMTP_USER"); v != "" {
		c.Contact.SMTPUser = v
	}
	if v := getenv("SMTP_PASS"); v != "" {
		c.Contact.SMTPPass = v
	}
	if v := getenv("TO_EMAIL"); v != "" {
		c.Contact.To = v
	}
}

func parseBool(s string) (bool, bool) {
	if strings.TrimSpace(s) == "" {
		return false, false
	}
	v, err := strconv.ParseBool(strings.TrimSpace(s))
	if err != nil {
		return false, false
	}
	return v, true
}
