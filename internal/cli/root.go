package cli

import (
	"context"
	"fmt"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	version string // semantic version (e.g., "v1.2.3")
	commit  string // git commit SHA
	date    string // build timestamp
)

// SetVersion sets the version information displayed by --version.
// This is typically called by the main package during initialization with values
// injected via ldflags at build time.
//
// Parameters:
//   - v: semantic version string (e.g., "v1.2.3")
//   - c: git commit SHA (short or long form)
//   - d: build timestamp (e.g., "2026-08-20T14:32:01Z")
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// Execute runs the layerforge CLI and returns an error if any command fails.
// This is the main entry point for the CLI application.
//
// The function sets up the root command with all subcommands (isolate,
// generate, decompose, inspect, cache, serve), configures logging based on
// the --verbose flag, and executes the command tree.
//
// Logging:
//   - Default: info level (logs to stderr)
//   - With --verbose (-v): debug level
//
// The logger is attached to the context and accessible to all commands via
// loggerFromContext.
//
// Example:
//
//	func main() {
//	    cli.SetVersion("v1.0.0", "abc123", "2026-08-20")
//	    if err := cli.Execute(); err != nil {
//	        os.Exit(1)
//	    }
//	}
func Execute() error {
	return ExecuteContext(context.Background())
}

// ExecuteContext is like [Execute] but runs the command tree under ctx,
// so signal-aware callers can cancel long operations.
func ExecuteContext(ctx context.Context) error {
	var (
		verbose    bool
		configPath string
	)

	root := &cobra.Command{
		Use:          "layerforge",
		Short:        "LayerForge translates captured layer trees into code",
		Long:         `LayerForge is a CLI tool for turning DOM-shaped layer captures into framework components: isolate an element, normalize its coordinates, and emit React, Vue, HTML, or SVG sources.`,
		Version:      version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			ctx := withLogger(cmd.Context(), newLogger(os.Stderr, level))
			ctx = withConfigPath(ctx, configPath)
			cmd.SetContext(ctx)
		},
	}

	root.SetVersionTemplate(fmt.Sprintf("layerforge %s\ncommit: %s\nbuilt: %s\n", version, commit, date))
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVar(&configPath, "config", "", "config file (default: user config dir)")

	root.AddCommand(newIsolateCmd())
	root.AddCommand(newGenerateCmd())
	root.AddCommand(newDecomposeCmd())
	root.AddCommand(newInspectCmd())
	root.AddCommand(newCacheCmd())
	root.AddCommand(newServeCmd())

	return root.ExecuteContext(ctx)
}

// configPathKey is the context key for the --config flag value.
const configPathKey ctxKey = 1

// withConfigPath returns a new context carrying the --config flag value.
func withConfigPath(ctx context.Context, path string) context.Context {
	return context.WithValue(ctx, configPathKey, path)
}

// configPathFromContext retrieves the --config flag value, or "".
func configPathFromContext(ctx context.Context) string {
	if p, ok := ctx.Value(configPathKey).(string); ok {
		return p
	}
	return ""
}
