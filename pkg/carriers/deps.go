package carriers

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/parceltrack/pkg/browser"
	"github.com/matzehuels/parceltrack/pkg/cache"
	"github.com/matzehuels/parceltrack/pkg/config"
	"github.com/matzehuels/parceltrack/pkg/tracking"
)

// Deps are the collaborators a provider is built from. Zero fields are
// filled by [Deps.WithDefaults].
type Deps struct {
	Config   *config.Store
	Launcher browser.Launcher
	HTTP     *Client
	Cache    cache.Store[*tracking.Record]
	Clock    cache.Clock
	Logger   *log.Logger
}

// WithDefaults returns d with every nil field replaced: built-in config,
// the system clock, a fresh in-memory cache, a headless Chrome launcher,
// a plain HTTP client and a discarding logger.
func (d Deps) WithDefaults() Deps {
	if d.Config == nil {
		d.Config = config.NewStore(nil)
	}
	if d.Clock == nil {
		d.Clock = cache.SystemClock{}
	}
	if d.Cache == nil {
		d.Cache = cache.NewMemory[*tracking.Record](d.Clock)
	}
	if d.Logger == nil {
		d.Logger = log.New(io.Discard)
	}
	if d.Launcher == nil {
		d.Launcher = browser.NewChrome(browser.Options{Headless: true, Logger: d.Logger})
	}
	if d.HTTP == nil {
		d.HTTP = NewClient()
	}
	return d
}
