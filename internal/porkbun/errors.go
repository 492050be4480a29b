package porkbun

import "errors"

// Sentinel errors for the client. All are wrapped with context at the
// call site; match with errors.Is.
var (
	// ErrInvalidOptions indicates a request option combination that can
	// never be sent (e.g. --ssl together with --type, or --type without
	// --name). Detected before any network I/O.
	ErrInvalidOptions = errors.New("invalid option combination")

	// ErrMissingConfirmation indicates a delete without a record id or
	// without the confirm flag. Detected before any network I/O.
	ErrMissingConfirmation = errors.New("deletion not confirmed")

	// ErrUpstream indicates a non-success status from the Porkbun API.
	// The upstream message is carried verbatim.
	ErrUpstream = errors.New("upstream error")

	// ErrTimeout indicates the fixed request timeout elapsed.
	ErrTimeout = errors.New("request timed out")
)
