package cli

import (
	"errors"
	"fmt"

	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"

	"salary-predictor/internal/app"
	"salary-predictor/internal/config"
	"salary-predictor/internal/delivery/http/dto"
	"salary-predictor/internal/domain/features"
	"salary-predictor/internal/pkg/apperror"
	"salary-predictor/internal/usecase"
)

func newPredictCmd(g *globals) *cobra.Command {
	var (
		rec        features.Record
		scalerPath string
		modelPath  string
		full       bool
	)

	cmd := &cobra.Command{
		Use:   "predict",
		Short: "Predict a salary for one job posting",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if scalerPath != "" || modelPath != "" {
				cfg.Model.Source = config.ModelSourceFile
				if scalerPath != "" {
					cfg.Model.ScalerPath = scalerPath
				}
				if modelPath != "" {
					cfg.Model.ModelPath = modelPath
				}
			}

			lg := g.logger(cfg.App)
			defer func() { _ = lg.Sync() }()

			artifacts, closeStore := app.LoadArtifacts(cmd.Context(), cfg, lg)
			defer func() { _ = closeStore() }()

			pred := usecase.NewPredictor(artifacts, nil, lg)
			p, err := pred.Predict(cmd.Context(), rec)
			if err != nil {
				if apperror.TypeOf(err) == apperror.TypeValidation {
					return errors.New("Input validation error: " + apperror.PublicMessage(err))
				}
				return errors.New(apperror.PublicMessage(err))
			}

			if !full {
				_, err = fmt.Fprintln(cmd.OutOrStdout(), p.Formatted)
				return err
			}
			b, err := yaml.Marshal(dto.NewPredictionResponse(p, pred.Version()))
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(b)
			return err
		},
	}

	bindRecordFlags(cmd, &rec)
	cmd.Flags().StringVar(&scalerPath, "scaler", "", "scaler artifact file (overrides SCALER_PATH)")
	cmd.Flags().StringVar(&modelPath, "model", "", "model artifact file (overrides MODEL_PATH)")
	cmd.Flags().BoolVar(&full, "full", false, "print the whole prediction as YAML")
	return cmd
}
