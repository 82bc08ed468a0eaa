package domain

import "time"

// EventKind identifies the type of a clock event. The string values are the
// ERP's wire vocabulary.
type EventKind string

const (
	KindClockIn    EventKind = "entrar"
	KindClockOut   EventKind = "salir"
	KindPauseStart EventKind = "iniciar_pausa"
	KindPauseEnd   EventKind = "terminar_pausa"
)

// legacyKinds maps the short-form labels still present in old ERP rows onto
// the canonical vocabulary.
var legacyKinds = map[string]EventKind{
	"pausa": KindPauseStart,
	"finp":  KindPauseEnd,
}

// ParseEventKind canonicalizes a raw kind label. Legacy short forms are
// accepted; anything else is invalid.
func ParseEventKind(s string) (EventKind, bool) {
	switch EventKind(s) {
	case KindClockIn, KindClockOut, KindPauseStart, KindPauseEnd:
		return EventKind(s), true
	}
	if k, ok := legacyKinds[s]; ok {
		return k, true
	}
	return "", false
}

// Event is one immutable clock fact as recorded by the ERP or the offline
// queue. RecordedAt carries the raw timestamp representation exactly as
// received; normalization happens at reconstruction time.
type Event struct {
	ID            string `json:"id"`
	UserID        string `json:"fk_user,omitempty"`
	UserLogin     string `json:"usuario,omitempty"`
	Kind          string `json:"tipo"`
	RecordedAt    string `json:"fecha_creacion"`
	Note          string `json:"observaciones,omitempty"`
	Lat           string `json:"latitud,omitempty"`
	Lng           string `json:"longitud,omitempty"`
	OutOfRange    bool   `json:"location_warning,omitempty"`
	Justification string `json:"justification,omitempty"`
}

// EventDraft is an event as captured by a user action, before the queue
// assigns it an id and a capture timestamp.
type EventDraft struct {
	Kind          EventKind
	UserID        string
	UserLogin     string
	Note          string
	Lat           string
	Lng           string
	OutOfRange    bool
	Justification string
}

// QueuedEvent is an EventDraft plus the locally generated identity it keeps
// until the remote side confirms it.
type QueuedEvent struct {
	ID            string
	Kind          EventKind
	UserID        string
	UserLogin     string
	Note          string
	Lat           string
	Lng           string
	OutOfRange    bool
	Justification string
	CapturedAt    time.Time
}
