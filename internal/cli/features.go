package cli

import (
	"errors"

	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"

	"salary-predictor/internal/delivery/http/dto"
	"salary-predictor/internal/domain/features"
)

func newFeaturesCmd() *cobra.Command {
	var rec features.Record

	cmd := &cobra.Command{
		Use:   "features",
		Short: "Print the encoded feature vector without running a model",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			vec, err := features.Build(rec)
			if err != nil {
				var ve *features.ValidationError
				if errors.As(err, &ve) {
					return errors.New("Input validation error: " + ve.Message)
				}
				return err
			}

			b, err := yaml.Marshal(dto.NamedFeatures(vec))
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(b)
			return err
		},
	}

	bindRecordFlags(cmd, &rec)
	return cmd
}
