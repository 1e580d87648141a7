package domain

// Sentinel errors shared by adapters and services.
var (
	ErrNotFound = errString("not found")
	ErrConflict = errString("already exists")
	// ErrNotEditable is returned when an assessment's report job has left the queue.
	ErrNotEditable = errString("assessment is no longer queued")
)

type errString string

func (e errString) Error() string { return string(e) }
