package domain

// PauseRevision is one pause's proposed timing inside a correction. Fields
// are raw timestamp strings; empty means absent.
type PauseRevision struct {
	ProposedStart string `json:"inicio_iso,omitempty"`
	OriginalStart string `json:"original_inicio_iso,omitempty"`
	ProposedEnd   string `json:"fin_iso,omitempty"`
	OriginalEnd   string `json:"original_fin_iso,omitempty"`
}

// Correction is a proposed retroactive edit to one cycle's recorded times.
// It references the cycle by shift date and user; approval happens in an
// external workflow. The engine only diffs it into ChangeItems.
type Correction struct {
	Date             string          `json:"fecha_jornada"`
	UserID           string          `json:"fk_user"`
	ProposedEntrance string          `json:"hora_entrada,omitempty"`
	OriginalEntrance string          `json:"hora_entrada_original,omitempty"`
	ProposedExit     string          `json:"hora_salida,omitempty"`
	OriginalExit     string          `json:"hora_salida_original,omitempty"`
	Pauses           []PauseRevision `json:"pausas,omitempty"`
	Note             string          `json:"observaciones,omitempty"`
}

// ChangeKind tags one proposed field change. Wire values follow the ERP's
// Spanish vocabulary, matching EventKind.
type ChangeKind string

const (
	ChangeEntrance   ChangeKind = "entrada"
	ChangeExit       ChangeKind = "salida"
	ChangePauseStart ChangeKind = "pausa"
	ChangePauseEnd   ChangeKind = "regreso"
	// ChangeShift is the generic placeholder emitted when a correction
	// carries no concrete time change (note-only or status-only records).
	ChangeShift ChangeKind = "jornada"
)

// ChangeItem is one discrete "original -> proposed" change extracted from a
// Correction, addressable on its own in an approval UI.
type ChangeItem struct {
	Kind       ChangeKind
	PauseIndex int // index into Correction.Pauses; -1 for non-pause kinds
	Original   string
	Proposed   string
}
