// Package config holds the per-carrier settings providers read on every
// call, loaded from a TOML file with environment overrides.
//
// # File
//
//	[browser]
//	headless = true
//	no_sandbox = false
//	remote_url = ""            # ws:// URL of an already running Chrome
//
//	[server]
//	addr = ":8080"
//
//	[carriers.andreani]
//	cache_ttl = 300            # seconds
//	user_agent = "Mozilla/5.0 ..."
//	tracking_url = "https://www.andreani.com/envio/{number}"
//	page_timeout = 30          # seconds
//	response_timeout = 45      # seconds
//
//	[carriers.correo_argentino]
//	request_timeout = 15
//	countries = ["AR"]
//
// Unset or non-positive values fall back to the defaults of [Default].
//
// # Environment
//
// PARCELTRACK_CONFIG selects the file. PARCELTRACK_<CARRIER>_CACHE_TTL,
// PARCELTRACK_<CARRIER>_USER_AGENT and PARCELTRACK_<CARRIER>_TRACKING_URL
// override single carrier values (CARRIER is the upper-cased id, e.g.
// CORREO_ARGENTINO). PARCELTRACK_BROWSER_REMOTE_URL sets browser.remote_url.
package config

import (
	"strings"
	"time"
)

// Defaults applied to any unset carrier value.
const (
	DefaultCacheTTL        = 300 // seconds
	DefaultPageTimeout     = 30  // seconds
	DefaultResponseTimeout = 45  // seconds
	DefaultRequestTimeout  = 15  // seconds
	DefaultAddr            = ":8080"
	DefaultUserAgent       = "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/126.0.0.0 Safari/537.36"
)

// NumberPlaceholder is replaced by the tracking number in TrackingURL.
const NumberPlaceholder = "{number}"

// Config is the whole configuration file.
type Config struct {
	Browser  Browser            `toml:"browser"`
	Server   Server             `toml:"server"`
	Carriers map[string]Carrier `toml:"carriers"`
}

// Browser configures automated browser sessions.
type Browser struct {
	Headless  *bool  `toml:"headless,omitempty"` // nil means true
	NoSandbox bool   `toml:"no_sandbox"`
	RemoteURL string `toml:"remote_url,omitempty"`
	ExecPath  string `toml:"exec_path,omitempty"`
}

// IsHeadless reports whether Chrome runs without a window.
func (b Browser) IsHeadless() bool {
	return b.Headless == nil || *b.Headless
}

// Server configures the HTTP API.
type Server struct {
	Addr string `toml:"addr"`
}

// Carrier holds one carrier's settings. Durations are whole seconds.
type Carrier struct {
	CacheTTL        int      `toml:"cache_ttl"`
	UserAgent       string   `toml:"user_agent,omitempty"`
	TrackingURL     string   `toml:"tracking_url,omitempty"`
	PageTimeout     int      `toml:"page_timeout"`
	ResponseTimeout int      `toml:"response_timeout"`
	RequestTimeout  int      `toml:"request_timeout"`
	DetailSelector  string   `toml:"detail_selector,omitempty"`
	Countries       []string `toml:"countries,omitempty"`
}

// TTL returns the cache lifetime, DefaultCacheTTL when unset.
func (c Carrier) TTL() time.Duration { return seconds(c.CacheTTL, DefaultCacheTTL) }

// PageWait returns the navigation and DOM interaction budget.
func (c Carrier) PageWait() time.Duration { return seconds(c.PageTimeout, DefaultPageTimeout) }

// ResponseWait returns the budget for the intercepted backend response.
func (c Carrier) ResponseWait() time.Duration {
	return seconds(c.ResponseTimeout, DefaultResponseTimeout)
}

// RequestWait returns the outbound HTTP request budget.
func (c Carrier) RequestWait() time.Duration {
	return seconds(c.RequestTimeout, DefaultRequestTimeout)
}

// Agent returns the user agent, DefaultUserAgent when unset.
func (c Carrier) Agent() string {
	if c.UserAgent == "" {
		return DefaultUserAgent
	}
	return c.UserAgent
}

// URL expands TrackingURL for number.
func (c Carrier) URL(number string) string {
	return strings.ReplaceAll(c.TrackingURL, NumberPlaceholder, number)
}

// merge returns c with every unset field taken from base.
func (c Carrier) merge(base Carrier) Carrier {
	if c.CacheTTL <= 0 {
		c.CacheTTL = base.CacheTTL
	}
	if c.UserAgent == "" {
		c.UserAgent = base.UserAgent
	}
	if c.TrackingURL == "" {
		c.TrackingURL = base.TrackingURL
	}
	if c.PageTimeout <= 0 {
		c.PageTimeout = base.PageTimeout
	}
	if c.ResponseTimeout <= 0 {
		c.ResponseTimeout = base.ResponseTimeout
	}
	if c.RequestTimeout <= 0 {
		c.RequestTimeout = base.RequestTimeout
	}
	if c.DetailSelector == "" {
		c.DetailSelector = base.DetailSelector
	}
	if len(c.Countries) == 0 {
		c.Countries = base.Countries
	}
	return c
}

func seconds(v, def int) time.Duration {
	if v <= 0 {
		v = def
	}
	return time.Duration(v) * time.Second
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Server: Server{Addr: DefaultAddr},
		Carriers: map[string]Carrier{
			"andreani": {
				TrackingURL: "https://www.andreani.com/envio/" + NumberPlaceholder,
			},
			"viacargo": {
				TrackingURL: "https://www.viacargo.com.ar/tracking/" + NumberPlaceholder,
			},
			"oca": {
				TrackingURL:    "https://www.oca.com.ar/Busquedas/Envios?numero=" + NumberPlaceholder,
				DetailSelector: "#btnDetalle",
			},
			"correo_argentino": {
				TrackingURL: "https://www.correoargentino.com.ar/sites/all/modules/custom/ca_forms/api/wsFacade.php",
				Countries:   []string{"AR"},
			},
		},
	}
}

// baseCarrier is the fallback for every field of every carrier.
var baseCarrier = Carrier{
	CacheTTL:        DefaultCacheTTL,
	UserAgent:       DefaultUserAgent,
	PageTimeout:     DefaultPageTimeout,
	ResponseTimeout: DefaultResponseTimeout,
	RequestTimeout:  DefaultRequestTimeout,
}

// Carrier returns the effective settings for a carrier id: file values over
// built-in carrier values over global defaults.
func (c *Config) Carrier(name string) Carrier {
	builtin := Default().Carriers[name].merge(baseCarrier)
	if c == nil {
		return builtin
	}
	return c.Carriers[name].merge(builtin)
}

// Effective returns a copy of c where every listed carrier carries its fully
// resolved settings.
func (c *Config) Effective() *Config {
	if c == nil {
		c = Default()
	}
	out := *c
	out.Carriers = make(map[string]Carrier, len(c.Carriers))
	for name := range c.Carriers {
		out.Carriers[name] = c.Carrier(name)
	}
	return &out
}
