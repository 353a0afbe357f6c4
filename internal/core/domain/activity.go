package domain

import "time"

// Activity actions recorded by the audit pipeline.
const (
	ActionRegister   = "register"
	ActionLogin      = "login"
	ActionNoteCreate = "note_create"
	ActionNoteUpdate = "note_update"
	ActionNoteDelete = "note_delete"
)

// ActivityEntry records a completed operation for the activity log.
// Persisted asynchronously and best-effort; never blocks a request.
type ActivityEntry struct {
	Username  string
	Action    string
	NoteID    int64 // zero for auth actions
	Timestamp time.Time
}
