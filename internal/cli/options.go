package cli

import (
	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"

	"salary-predictor/internal/delivery/http/dto"
	"salary-predictor/internal/usecase"
)

func newOptionsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "options",
		Short: "Print the code tables, job categories and typo corrections as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := yaml.Marshal(dto.NewOptionsResponse(usecase.EncodingOptions()))
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(b)
			return err
		},
	}
}
