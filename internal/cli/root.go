package cli

import (
	"context"

	"github.com/jornada-hq/jornada/internal/domain"
	"github.com/jornada-hq/jornada/internal/queue"
	"github.com/jornada-hq/jornada/internal/repository"
	"github.com/spf13/cobra"
)

// HistoryFetcher pulls clock-event history from the remote ERP.
type HistoryFetcher interface {
	FetchEvents(ctx context.Context, userID string) ([]domain.Event, error)
}

// App holds the services CLI commands run against. Submitter and History
// are nil when no ERP endpoint is configured; commands that need them fail
// with a clear error instead.
type App struct {
	Queue     *queue.Queue
	Cache     repository.EventCacheRepo
	Submitter queue.Submitter
	History   HistoryFetcher
}

// NewRootCmd creates the top-level "jornada" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "jornada",
		Short: "Work-cycle reconstruction and offline clock-event queue",
	}

	root.AddCommand(
		newCyclesCmd(app),
		newQueueCmd(app),
		newCorrectionsCmd(app),
		newSyncCmd(app),
	)

	return root
}
