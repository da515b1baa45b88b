package core

import "errors"

// Failure classes surfaced to the user. Handlers convert these to display
// strings; none of them terminate the process.
var (
	// ErrStorageUnavailable means the backing database file could not be
	// opened or migrated.
	ErrStorageUnavailable = errors.New("storage unavailable")

	// ErrStorageRead wraps I/O failures on read operations.
	ErrStorageRead = errors.New("storage read failed")

	// ErrStorageWrite wraps I/O or constraint failures on write operations.
	ErrStorageWrite = errors.New("storage write failed")

	// ErrAPIInit means the external client could not be constructed,
	// usually a missing credential. Non-fatal: the app runs degraded.
	ErrAPIInit = errors.New("api client not initialized")

	// ErrAPICall wraps network or remote failures during a send or
	// generate call.
	ErrAPICall = errors.New("api call failed")

	// ErrNoSession means a conversational turn was attempted with no live
	// session (degraded mode or a failed rebuild).
	ErrNoSession = errors.New("no open session")

	// ErrInvalidCommand is a malformed fact-management sub-command.
	ErrInvalidCommand = errors.New("invalid command format")

	// ErrMissingAttachment means an attachment mode was invoked without a
	// usable file path.
	ErrMissingAttachment = errors.New("missing attachment")
)
