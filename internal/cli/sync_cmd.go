package cli

import (
	"errors"
	"fmt"

	"github.com/jornada-hq/jornada/internal/queue"
	"github.com/spf13/cobra"
)

func newSyncCmd(app *App) *cobra.Command {
	var userID string

	cmd := &cobra.Command{
		Use:   "sync",
		Short: "Replay the offline queue, then refresh the local event cache",
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.Submitter == nil || app.History == nil {
				return fmt.Errorf("no ERP endpoint configured (set JORNADA_ERP_ENDPOINT)")
			}
			ctx := cmd.Context()

			// Push before pull so our own events appear in the refreshed
			// history.
			res, err := app.Queue.Replay(ctx, app.Submitter)
			if err != nil && !errors.Is(err, queue.ErrReplayInProgress) {
				return err
			}
			fmt.Printf("Replay: %d submitted, %d duplicates, %d pending.\n",
				res.Submitted, res.Conflicts, res.Remaining)

			events, err := app.History.FetchEvents(ctx, userID)
			if err != nil {
				return fmt.Errorf("fetching history: %w", err)
			}
			if err := app.Cache.Upsert(ctx, events); err != nil {
				return err
			}
			fmt.Printf("Cached %d events.\n", len(events))
			return nil
		},
	}

	cmd.Flags().StringVar(&userID, "user", "", "Scope history fetch to a single user id")

	return cmd
}
