// Package registry wires every carrier provider into a tracking.Dispatcher.
package registry

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/parceltrack/pkg/browser"
	"github.com/matzehuels/parceltrack/pkg/cache"
	"github.com/matzehuels/parceltrack/pkg/carriers"
	"github.com/matzehuels/parceltrack/pkg/carriers/andreani"
	"github.com/matzehuels/parceltrack/pkg/carriers/correoargentino"
	"github.com/matzehuels/parceltrack/pkg/carriers/oca"
	"github.com/matzehuels/parceltrack/pkg/carriers/viacargo"
	"github.com/matzehuels/parceltrack/pkg/config"
	"github.com/matzehuels/parceltrack/pkg/tracking"
)

// Options configures the registry.
type Options struct {
	Config *config.Store
	// Launcher defaults to Chrome configured from the [browser] section.
	Launcher browser.Launcher
	HTTP     *carriers.Client
	Clock    cache.Clock
	// NoCache gives every provider a cache that never stores.
	NoCache bool
	Logger  *log.Logger
}

// Providers builds one provider per implemented carrier. Each provider gets
// its own cache instance; both Correo Argentino ids share one provider and
// therefore one cache.
func Providers(opts Options) map[tracking.Carrier]tracking.Provider {
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.Config == nil {
		opts.Config = config.NewStore(nil)
	}
	if opts.Launcher == nil {
		b := opts.Config.Current().Browser
		opts.Launcher = browser.NewChrome(browser.Options{
			Headless:  b.IsHeadless(),
			NoSandbox: b.NoSandbox,
			RemoteURL: b.RemoteURL,
			ExecPath:  b.ExecPath,
			Logger:    opts.Logger,
		})
	}

	deps := func() carriers.Deps {
		var store cache.Store[*tracking.Record]
		if opts.NoCache {
			store = cache.NewNull[*tracking.Record]()
		} else {
			store = cache.NewMemory[*tracking.Record](opts.Clock)
		}
		return carriers.Deps{
			Config:   opts.Config,
			Launcher: opts.Launcher,
			HTTP:     opts.HTTP,
			Cache:    store,
			Clock:    opts.Clock,
			Logger:   opts.Logger,
		}
	}

	correo := correoargentino.New(deps())
	return map[tracking.Carrier]tracking.Provider{
		tracking.Andreani:           andreani.New(deps()),
		tracking.ViaCargo:           viacargo.New(deps()),
		tracking.OCA:                oca.New(deps()),
		tracking.CorreoArgentino:    correo,
		tracking.CorreoArgentinoAlt: correo,
	}
}

// New returns a dispatcher over [Providers]. Carriers without an adapter
// resolve to tracking.Unsupported.
func New(opts Options) *tracking.Dispatcher {
	return tracking.NewDispatcher(Providers(opts), opts.Logger)
}
