package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"salary-predictor/internal/config"
	"salary-predictor/internal/logger"
)

type globals struct {
	envFile string
	verbose bool
}

// NewRootCmd builds the predictctl command tree.
func NewRootCmd() *cobra.Command {
	g := &globals{}

	root := &cobra.Command{
		Use:           "predictctl",
		Short:         "Encode job postings and predict salaries from the command line",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if g.envFile == "" {
				return nil
			}
			if err := godotenv.Load(g.envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
				return fmt.Errorf("load %s: %w", g.envFile, err)
			}
			return nil
		},
	}
	root.PersistentFlags().StringVar(&g.envFile, "env-file", ".env", "dotenv file to load before reading the environment")
	root.PersistentFlags().BoolVarP(&g.verbose, "verbose", "v", false, "log to stderr")

	root.AddCommand(
		newPredictCmd(g),
		newFeaturesCmd(),
		newOptionsCmd(),
		newMigrateCmd(g),
		newPublishCmd(g),
	)
	return root
}

func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func (g *globals) logger(cfg config.AppConfig) *zap.Logger {
	if g == nil || !g.verbose {
		return zap.NewNop()
	}
	l, err := logger.New(cfg)
	if err != nil {
		return zap.NewNop()
	}
	return l
}
