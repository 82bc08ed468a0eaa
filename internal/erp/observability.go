package erp

import (
	"fmt"
	"io"
	"time"
)

// SubmitEvent records metadata about one submission attempt.
type SubmitEvent struct {
	EventID   string
	Kind      string
	LatencyMs int64
	Success   bool
	ErrorCode string
}

// Observer receives events about ERP submissions for logging and metrics.
type Observer interface {
	OnSubmitComplete(event SubmitEvent)
}

// LogObserver writes submission events to an io.Writer.
type LogObserver struct {
	w io.Writer
}

// NewLogObserver creates an Observer that logs events to w.
func NewLogObserver(w io.Writer) *LogObserver {
	return &LogObserver{w: w}
}

func (o *LogObserver) OnSubmitComplete(event SubmitEvent) {
	ts := time.Now().UTC().Format(time.RFC3339)
	status := "ok"
	if !event.Success {
		status = "err:" + event.ErrorCode
	}
	fmt.Fprintf(o.w, "[%s] erp_submit id=%s kind=%s latency_ms=%d status=%s\n",
		ts, event.EventID, event.Kind, event.LatencyMs, status)
}

// NoopObserver discards all events. Useful for tests.
type NoopObserver struct{}

func (NoopObserver) OnSubmitComplete(SubmitEvent) {}
