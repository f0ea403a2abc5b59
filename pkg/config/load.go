package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/parceltrack/pkg/errors"
)

const appName = "parceltrack"

// DefaultPath returns $PARCELTRACK_CONFIG, else
// $XDG_CONFIG_HOME/parceltrack/config.toml, else
// ~/.config/parceltrack/config.toml.
func DefaultPath() (string, error) {
	if p := os.Getenv("PARCELTRACK_CONFIG"); p != "" {
		return p, nil
	}
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, appName, "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName, "config.toml"), nil
}

// Load reads the TOML file at path over the defaults and applies environment
// overrides. A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
	case err != nil:
		return nil, fmt.Errorf("read config: %w", err)
	default:
		if err := Parse(data, cfg); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
	}

	applyEnv(cfg, os.LookupEnv)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Parse decodes TOML data into cfg. Carrier tables in data are merged over
// the carriers already present in cfg, field by field.
func Parse(data []byte, cfg *Config) error {
	var file Config
	md, err := toml.Decode(string(data), &file)
	if err != nil {
		return err
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return fmt.Errorf("unknown keys: %v", undecoded)
	}

	if md.IsDefined("browser") {
		cfg.Browser = file.Browser
	}
	if file.Server.Addr != "" {
		cfg.Server.Addr = file.Server.Addr
	}
	if cfg.Carriers == nil {
		cfg.Carriers = make(map[string]Carrier)
	}
	for name, c := range file.Carriers {
		cfg.Carriers[name] = c.merge(cfg.Carriers[name])
	}
	return nil
}

// Validate checks every configured tracking URL.
func (c *Config) Validate() error {
	for name, carrier := range c.Carriers {
		if carrier.TrackingURL == "" {
			continue
		}
		if err := errors.ValidateURL(carrier.TrackingURL); err != nil {
			return fmt.Errorf("carriers.%s.tracking_url: %w", name, err)
		}
	}
	return nil
}

func applyEnv(cfg *Config, lookup func(string) (string, bool)) {
	if v, ok := lookup("PARCELTRACK_BROWSER_REMOTE_URL"); ok {
		cfg.Browser.RemoteURL = v
	}
	if v, ok := lookup("PARCELTRACK_SERVER_ADDR"); ok && v != "" {
		cfg.Server.Addr = v
	}
	for _, name := range carrierNames(cfg) {
		cfg.Carriers[name] = carrierEnv(name, cfg.Carriers[name], lookup)
	}
}

// carrierEnv applies the PARCELTRACK_<CARRIER>_* overrides to c. Values
// that do not parse are ignored.
func carrierEnv(name string, c Carrier, lookup func(string) (string, bool)) Carrier {
	prefix := "PARCELTRACK_" + strings.ToUpper(name) + "_"
	if v, ok := lookup(prefix + "CACHE_TTL"); ok {
		if n, err := strconv.Atoi(strings.TrimSpace(v)); err == nil {
			c.CacheTTL = n
		}
	}
	if v, ok := lookup(prefix + "USER_AGENT"); ok {
		c.UserAgent = v
	}
	if v, ok := lookup(prefix + "TRACKING_URL"); ok && errors.ValidateURL(v) == nil {
		c.TrackingURL = v
	}
	return c
}

func carrierNames(cfg *Config) []string {
	names := make([]string, 0, len(cfg.Carriers))
	for name := range cfg.Carriers {
		names = append(names, name)
	}
	return names
}

// Encode renders cfg as TOML.
func Encode(cfg *Config) (string, error) {
	var b strings.Builder
	if err := toml.NewEncoder(&b).Encode(cfg); err != nil {
		return "", err
	}
	return b.String(), nil
}
