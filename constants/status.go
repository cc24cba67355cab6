package constants

// SessionStatus is the canonical status for rows in upload_sessions.
type SessionStatus string

// Stable values (store these exact strings in DB).
const (
	StatusUploaded   SessionStatus = "uploaded"   // parsed, no mapping saved yet
	StatusMapped     SessionStatus = "mapped"     // a mapping set has been saved
	StatusGenerating SessionStatus = "generating" // export in progress
	StatusDone       SessionStatus = "done"       // last export succeeded
	StatusError      SessionStatus = "error"      // last export failed; retryable
)

// SessionStatuses lists every valid status value.
var SessionStatuses = []SessionStatus{
	StatusUploaded, StatusMapped, StatusGenerating, StatusDone, StatusError,
}

// IsSessionStatus reports whether s is a known status value.
func IsSessionStatus(s string) bool {
	for _, v := range SessionStatuses {
		if s == string(v) {
			return true
		}
	}
	return false
}

// CanGenerate reports whether an export may be started from the given status.
// "error" and "done" are re-entrant: regenerating is always allowed once a
// mapping exists.
func (s SessionStatus) CanGenerate() bool {
	switch s {
	case StatusMapped, StatusDone, StatusError:
		return true
	default:
		return false
	}
}
