package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/jornada-hq/jornada/internal/cli/formatter"
	"github.com/jornada-hq/jornada/internal/correction"
	"github.com/jornada-hq/jornada/internal/domain"
	"github.com/spf13/cobra"
)

func newCorrectionsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "corrections",
		Short: "Work with correction records",
	}

	cmd.AddCommand(newCorrectionsDiffCmd(app))

	return cmd
}

func newCorrectionsDiffCmd(app *App) *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "diff",
		Short: "Expand a correction record into its proposed field changes",
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(file)
			if err != nil {
				return fmt.Errorf("reading correction file: %w", err)
			}
			var rec domain.Correction
			if err := json.Unmarshal(data, &rec); err != nil {
				return fmt.Errorf("decoding correction file: %w", err)
			}

			fmt.Print(formatter.FormatChanges(correction.Diff(rec)))
			return nil
		},
	}

	cmd.Flags().StringVar(&file, "file", "", "Correction record JSON file")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}
