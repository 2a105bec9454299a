// Package cli implements the cargodeps command-line interface.
//
// cargodeps reads a Cargo.toml and prints each entry of its [dependencies]
// table as "name:version", sorted by name, on standard output. Diagnostics
// go to standard error through charmbracelet/log and are silent unless
// --verbose (-v) is given.
//
// # Example
//
//	c := cli.New(os.Stderr, cli.LogWarn)
//	if err := c.RootCommand().ExecuteContext(ctx); err != nil {
//	    os.Exit(1)
//	}
package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/cargodeps/pkg/buildinfo"
)

const appName = "cargodeps"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogWarn  = log.WarnLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance logging to w at the given level.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command.
func (c *CLI) RootCommand() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:           appName + " <toml file>",
		Short:         "List the dependencies declared in a Cargo.toml",
		Long:          `cargodeps reads a Cargo.toml manifest and prints each entry of its [dependencies] table as "name:version", sorted by name.`,
		Version:       buildinfo.Version,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				c.SetLogLevel(LogDebug)
			}
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				_, err := io.WriteString(cmd.OutOrStdout(), usage())
				return err
			}
			return listDependencies(cmd.Context(), cmd.OutOrStdout(), args[0])
		},
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			return []string{"toml"}, cobra.ShellCompDirectiveFilterFileExt
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	return root
}

func usage() string {
	return "Usage: " + appName + " <toml file>\n"
}
