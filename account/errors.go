package account

import "errors"

// Kind tags a FlowError so callers can branch on what went wrong
// instead of parsing message text.
type Kind string

const (
	KindInvalidInput     Kind = "invalid_input"
	KindTooShort         Kind = "too_short"
	KindMismatch         Kind = "mismatch"
	KindAuthFailure      Kind = "auth_failure"
	KindStoreUnavailable Kind = "store_unavailable"
)

// FlowError is the only error type the gateway flows produce. Field
// names the offending form control, Msg is safe to show the user, Err
// is the underlying cause and is never rendered.
type FlowError struct {
	Kind  Kind
	Field string
	Msg   string
	Err   error
}

func (e *FlowError) Error() string {
	if e.Err != nil {
		return e.Msg + ": " + e.Err.Error()
	}
	return e.Msg
}

func (e *FlowError) Unwrap() error {
	return e.Err
}

// KindOf extracts the Kind from err; errors from outside the flow
// vocabulary count as store failures.
func KindOf(err error) Kind {
	var fe *FlowError
	if errors.As(err, &fe) {
		return fe.Kind
	}
	return KindStoreUnavailable
}
