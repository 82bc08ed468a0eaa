package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/jornada-hq/jornada/internal/cli/formatter"
	"github.com/jornada-hq/jornada/internal/domain"
	"github.com/jornada-hq/jornada/internal/queue"
	"github.com/spf13/cobra"
)

func newQueueCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "queue",
		Short: "Inspect and replay the offline event queue",
	}

	cmd.AddCommand(
		newQueueListCmd(app),
		newQueueAddCmd(app),
		newQueueRemoveCmd(app),
		newQueueReplayCmd(app),
	)

	return cmd
}

func newQueueListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List queued events in insertion order",
		RunE: func(cmd *cobra.Command, args []string) error {
			items, err := app.Queue.List(context.Background())
			if err != nil {
				return err
			}
			fmt.Print(formatter.FormatQueue(items))
			return nil
		},
	}
}

func newQueueAddCmd(app *App) *cobra.Command {
	var userID, note string

	cmd := &cobra.Command{
		Use:   "add <kind>",
		Short: "Capture an event locally (entrar, salir, iniciar_pausa, terminar_pausa)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, ok := domain.ParseEventKind(args[0])
			if !ok {
				return fmt.Errorf("unknown event kind %q", args[0])
			}
			item, err := app.Queue.Enqueue(context.Background(), domain.EventDraft{
				Kind:   kind,
				UserID: userID,
				Note:   note,
			})
			if err != nil {
				return err
			}
			fmt.Printf("Queued %s as %s\n", formatter.KindLabel(item.Kind), item.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&userID, "user", "", "Owning user id")
	cmd.Flags().StringVar(&note, "note", "", "Free-text note")

	return cmd
}

func newQueueRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <id>",
		Short: "Delete one queued event",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.Queue.Remove(context.Background(), args[0])
		},
	}
}

func newQueueReplayCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "replay",
		Short: "Submit queued events to the ERP",
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.Submitter == nil {
				return fmt.Errorf("no ERP endpoint configured (set JORNADA_ERP_ENDPOINT)")
			}
			res, err := app.Queue.Replay(cmd.Context(), app.Submitter)
			if err != nil && !errors.Is(err, queue.ErrReplayInProgress) {
				return err
			}
			fmt.Printf("Submitted %d, dropped %d duplicates, %d still pending.\n",
				res.Submitted, res.Conflicts, res.Remaining)
			return nil
		},
	}
}
