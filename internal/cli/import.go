package cli

import (
	"fmt"

	"github.com/jonboulle/clockwork"
	"github.com/riskibarqy/sports-schedule/internal/app"
	"github.com/riskibarqy/sports-schedule/internal/infrastructure/roster"
	"github.com/spf13/cobra"
)

type importOptions struct {
	workers int
}

// NewImportCommand loads a roster YAML file and creates its leagues, teams and
// events through the regular services.
func NewImportCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &importOptions{}

	cmd := &cobra.Command{
		Use:   "import <roster.yaml>",
		Short: "Import leagues, teams and events from a roster file",
		Long: `Import a roster file into the configured store.

Leagues are created first. Teams and then events are created concurrently
on a worker pool. Events may name any team in the file as their opponent by key.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runImport(cmd, rootOpts, opts, args[0])
		},
	}

	cmd.Flags().IntVarP(&opts.workers, "workers", "w", 0, "worker pool size (defaults to IMPORT_WORKERS)")

	return cmd
}

func runImport(cmd *cobra.Command, rootOpts *RootOptions, opts *importOptions, path string) error {
	if opts.workers < 0 {
		return fmt.Errorf("--workers must be >= 1")
	}

	parsed, err := roster.Load(path)
	if err != nil {
		return err
	}

	cfg, err := rootOpts.config()
	if err != nil {
		return err
	}
	if opts.workers > 0 {
		cfg.ImportWorkers = opts.workers
	}

	logger := rootOpts.logger(cfg)
	defer func() { _ = logger.Sync() }()

	ctx := cmd.Context()
	store, err := app.OpenStore(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	services, err := app.NewServices(cfg, store, clockwork.NewRealClock(), logger)
	if err != nil {
		return err
	}

	result, err := services.Import.Import(ctx, parsed)
	if err != nil {
		return fmt.Errorf("import %s: %w", path, err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "imported %d leagues, %d teams, %d events\n", result.Leagues, result.Teams, result.Events)
	return nil
}
