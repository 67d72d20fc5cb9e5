package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"salary-predictor/internal/app"
	"salary-predictor/internal/config"
	"salary-predictor/internal/domain/model"
	"salary-predictor/internal/infrastructure/persistence/postgres"
)

const (
	kindScaler = "scaler"
	kindModel  = "model"
)

type publishFlags struct {
	kind    string
	name    string
	file    string
	version string
}

// checkArtifact decodes the document the same way the server will, so a bad
// file is rejected before it reaches the store. It returns the version the
// document declares.
func checkArtifact(kind string, data []byte) (string, error) {
	switch kind {
	case kindScaler:
		_, v, err := model.DecodeScaler(data)
		return v, err
	case kindModel:
		_, v, err := model.DecodeRegressor(data)
		return v, err
	default:
		return "", fmt.Errorf("unknown artifact kind %q (want %s or %s)", kind, kindScaler, kindModel)
	}
}

func formatOf(path string) string {
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return "json"
	}
	return "yaml"
}

func newPublishCmd(g *globals) *cobra.Command {
	f := publishFlags{}

	cmd := &cobra.Command{
		Use:   "publish",
		Short: "Store a scaler or model artifact in Postgres",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(f.file)
			if err != nil {
				return err
			}
			declared, err := checkArtifact(f.kind, data)
			if err != nil {
				return err
			}
			version := f.version
			if version == "" {
				version = declared
			}
			if version == "" {
				return fmt.Errorf("--version is required when the artifact declares none")
			}

			cfg, err := config.Load()
			if err != nil {
				return err
			}
			name := f.name
			if name == "" {
				name = cfg.Model.ModelName
				if f.kind == kindScaler {
					name = cfg.Model.ScalerName
				}
			}

			lg := g.logger(cfg.App)
			defer func() { _ = lg.Sync() }()

			db, err := app.ConnectStore(cmd.Context(), cfg.Database)
			if err != nil {
				return fmt.Errorf("connect database: %w", err)
			}
			defer func() { _ = db.Close() }()

			err = postgres.NewArtifactRepository(db).Save(cmd.Context(), postgres.StoredArtifact{
				Name:    name,
				Version: version,
				Format:  formatOf(f.file),
				Payload: data,
			})
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "published %s %s\n", name, version)
			return err
		},
	}

	cmd.Flags().StringVar(&f.kind, "kind", "", "scaler or model")
	cmd.Flags().StringVar(&f.name, "name", "", "artifact name (defaults to SCALER_NAME or MODEL_NAME)")
	cmd.Flags().StringVar(&f.file, "file", "", "artifact file (YAML or JSON)")
	cmd.Flags().StringVar(&f.version, "version", "", "artifact version (defaults to the version in the file)")
	_ = cmd.MarkFlagRequired("kind")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}
