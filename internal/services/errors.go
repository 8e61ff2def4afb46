package services

// ErrorKind classifies a service failure so the HTTP layer can map it to
// a status code without inspecting messages.
type ErrorKind int

const (
	// KindValidation marks a missing or malformed required field.
	KindValidation ErrorKind = iota
	// KindConflict marks a duplicate username at registration.
	KindConflict
	// KindAuth marks a credential mismatch at sign-in.
	KindAuth
	// KindNotFound marks an unknown record id.
	KindNotFound
)

// Error is a service failure carrying a human-readable message suitable
// for returning verbatim in the API response body.
type Error struct {
	Kind    ErrorKind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func validationError(message string) *Error {
	return &Error{Kind: KindValidation, Message: message}
}

func conflictError(message string) *Error {
	return &Error{Kind: KindConflict, Message: message}
}

func authError(message string) *Error {
	return &Error{Kind: KindAuth, Message: message}
}

func notFoundError(message string) *Error {
	return &Error{Kind: KindNotFound, Message: message}
}
