package db

// Op constants name SurrealDB operations for error context.
const (
	OpConnect = "connect"
	OpSignIn  = "signin"
	OpUse     = "use"
	OpQuery   = "query"
	OpPing    = "ping"
	OpClose   = "close"
)

// Error wraps an underlying error with the operation name for diagnostics.
type Error struct {
	Op  string
	Err error
}

func (e *Error) Error() string { return e.Op + ": " + e.Err.Error() }
func (e *Error) Unwrap() error { return e.Err }
