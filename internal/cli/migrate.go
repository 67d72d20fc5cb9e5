package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"salary-predictor/internal/app"
	"salary-predictor/internal/config"
	"salary-predictor/internal/database/migration"
)

func newMigrateCmd(g *globals) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the model artifact tables",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			lg := g.logger(cfg.App)
			defer func() { _ = lg.Sync() }()

			db, err := app.ConnectStore(cmd.Context(), cfg.Database)
			if err != nil {
				return fmt.Errorf("connect database: %w", err)
			}
			defer func() { _ = db.Close() }()

			n, err := migration.NewRunner(lg).Run(cmd.Context(), db.SQLDB())
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "applied %d migration(s)\n", n)
			return err
		},
	}
}
