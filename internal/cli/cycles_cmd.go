package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/jornada-hq/jornada/internal/cli/formatter"
	"github.com/jornada-hq/jornada/internal/domain"
	"github.com/jornada-hq/jornada/internal/reconstruct"
	"github.com/spf13/cobra"
)

func newCyclesCmd(app *App) *cobra.Command {
	var file string
	var userID string
	var autoCloseHours int
	var timeline bool

	cmd := &cobra.Command{
		Use:   "cycles",
		Short: "Reconstruct work cycles from cached or exported events",
		RunE: func(cmd *cobra.Command, args []string) error {
			events, err := loadEvents(app, file, userID)
			if err != nil {
				return err
			}

			r := reconstruct.NewReconstructor(reconstruct.Config{
				AutoCloseAfter: time.Duration(autoCloseHours) * time.Hour,
			})
			cycles := r.Reconstruct(events)

			if timeline {
				fmt.Print(formatter.FormatTimeline(reconstruct.DailyEvents(cycles)))
				return nil
			}
			fmt.Print(formatter.FormatCycles(cycles))
			return nil
		},
	}

	cmd.Flags().StringVar(&file, "file", "", "Read events from a JSON export instead of the local cache")
	cmd.Flags().StringVar(&userID, "user", "", "Scope to a single user id")
	cmd.Flags().IntVar(&autoCloseHours, "auto-close-hours", 0, "Override the auto-close threshold (default 12)")
	cmd.Flags().BoolVar(&timeline, "timeline", false, "Print the flattened per-event timeline instead of cycles")

	return cmd
}

// loadEvents reads events from a JSON file when given, otherwise from the
// local cache.
func loadEvents(app *App, file, userID string) ([]domain.Event, error) {
	if file != "" {
		data, err := os.ReadFile(file)
		if err != nil {
			return nil, fmt.Errorf("reading events file: %w", err)
		}
		var events []domain.Event
		if err := json.Unmarshal(data, &events); err != nil {
			return nil, fmt.Errorf("decoding events file: %w", err)
		}
		if userID != "" {
			filtered := events[:0]
			for _, e := range events {
				if e.UserID == userID {
					filtered = append(filtered, e)
				}
			}
			events = filtered
		}
		return events, nil
	}

	ctx := context.Background()
	if userID != "" {
		return app.Cache.ListByUser(ctx, userID)
	}
	return app.Cache.List(ctx)
}
