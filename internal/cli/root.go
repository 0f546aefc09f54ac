// Package cli implements the schedulectl operator commands.
package cli

import (
	"github.com/riskibarqy/sports-schedule/internal/config"
	"github.com/riskibarqy/sports-schedule/internal/platform/logging"
	"github.com/spf13/cobra"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose bool

	loadConfig func() (config.Config, error)
}

// NewRootCommand creates the root command for schedulectl.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{loadConfig: config.Load}

	cmd := &cobra.Command{
		Use:           "schedulectl",
		Short:         "Operate the sports schedule service",
		Long:          "Run database migrations, import league rosters and bootstrap administrator accounts.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "debug logging")

	cmd.AddCommand(NewMigrateCommand(opts))
	cmd.AddCommand(NewImportCommand(opts))
	cmd.AddCommand(NewCreateAdminCommand(opts))

	return cmd
}

func (o *RootOptions) config() (config.Config, error) {
	if o.loadConfig == nil {
		return config.Load()
	}
	return o.loadConfig()
}

// logger writes human readable lines to stderr so command output on stdout
// stays clean.
func (o *RootOptions) logger(cfg config.Config) *logging.Logger {
	level := cfg.LogLevel
	if o.Verbose {
		level = logging.LevelDebug
	}
	return logging.NewConsole(level).Named("schedulectl")
}
