package okx

import "errors"

var (
	// ErrInvalidArg is wrapped by endpoint wrappers when an argument falls
	// outside its enumerated domain. Raised before any network I/O.
	ErrInvalidArg = errors.New("invalid argument, check enum and inputs and try again")

	// ErrMissingArg is wrapped when a required argument, or one side of a
	// required either-or pair, was not provided.
	ErrMissingArg = errors.New("required argument not provided")

	// ErrConflictingArgs is wrapped when both sides of a mutually-exclusive
	// argument pair were provided.
	ErrConflictingArgs = errors.New("conflicting arguments, provide exactly one")

	// ErrNotSupported is returned unconditionally by endpoint wrappers that
	// exist in the exchange's documentation but are not yet implemented by
	// this client. Callers can branch on it with errors.Is.
	ErrNotSupported = errors.New("endpoint not yet supported by this client")

	// ErrUnexpectedJSONInput is wrapped when a response body does not match
	// the documented shape.
	ErrUnexpectedJSONInput = errors.New("unexpected JSON input")
)
