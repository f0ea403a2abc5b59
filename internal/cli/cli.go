// Package cli implements the parceltrack command-line interface.
package cli

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/parceltrack/pkg/buildinfo"
	"github.com/matzehuels/parceltrack/pkg/browser"
	"github.com/matzehuels/parceltrack/pkg/carriers"
	"github.com/matzehuels/parceltrack/pkg/carriers/registry"
	"github.com/matzehuels/parceltrack/pkg/config"
	"github.com/matzehuels/parceltrack/pkg/tracking"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for directories and display.
	appName = "parceltrack"

	// maxConcurrentTracks bounds how many numbers one track call fetches at once.
	maxConcurrentTracks = 4
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	// Out receives command output; logs and spinners go to the logger's writer.
	Out io.Writer

	configPath string

	// Test seams. Nil values fall back to the real implementations.
	launcher   browser.Launcher
	httpClient *carriers.Client
	isTerminal func() bool
	pick       func([]tracking.CarrierInfo) (tracking.Carrier, error)
}

// New creates a new CLI instance with a default logger writing to w.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		Out:    os.Stdout,
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           appName,
		Short:         "parceltrack follows shipments across Argentine carriers",
		Long:          `parceltrack fetches the tracking history of a shipment from its carrier and normalizes it into one carrier-agnostic record: a status, dated events newest first, and shipment details.`,
		Version:       buildinfo.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/parceltrack/config.toml)")

	root.AddCommand(c.trackCommand())
	root.AddCommand(c.carriersCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.configCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Dispatcher Factory
// =============================================================================

// openConfig loads the config store from --config or the default path.
func (c *CLI) openConfig() (*config.Store, error) {
	path, err := c.resolveConfigPath()
	if err != nil {
		return nil, err
	}
	return config.Open(path)
}

func (c *CLI) resolveConfigPath() (string, error) {
	if c.configPath != "" {
		return c.configPath, nil
	}
	return config.DefaultPath()
}

// newDispatcher wires every provider over store.
func (c *CLI) newDispatcher(store *config.Store, noCache bool) *tracking.Dispatcher {
	return registry.New(registry.Options{
		Config:   store,
		Launcher: c.launcher,
		HTTP:     c.httpClient,
		NoCache:  noCache,
		Logger:   c.Logger,
	})
}
