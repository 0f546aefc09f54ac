package cli

import (
	"fmt"

	"github.com/jonboulle/clockwork"
	"github.com/riskibarqy/sports-schedule/internal/app"
	"github.com/spf13/cobra"
)

type createAdminOptions struct {
	username string
	password string
}

// NewCreateAdminCommand bootstraps an administrator account. It works even
// when public admin signup is disabled.
func NewCreateAdminCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &createAdminOptions{}

	cmd := &cobra.Command{
		Use:   "create-admin",
		Short: "Create an administrator account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := rootOpts.config()
			if err != nil {
				return err
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

			created, err := services.Auth.CreateAdmin(ctx, opts.username, opts.password)
			if err != nil {
				return fmt.Errorf("create admin %q: %w", opts.username, err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "admin %s created (id %s)\n", created.Username, created.ID)
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.username, "username", "u", "", "admin username")
	cmd.Flags().StringVarP(&opts.password, "password", "p", "", "admin password")
	_ = cmd.MarkFlagRequired("username")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}
