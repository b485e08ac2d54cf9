package fake

import "fmt"

// ValidationError reports a payload the real API would never accept: an
// empty message, too many autocomplete choices, or an attachment object
// passed where file content is required.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// NotCachedError reports an operation against a message identifier the
// cache has never seen, or has already deleted.
type NotCachedError struct {
	MessageID int64
}

func (e *NotCachedError) Error() string {
	if e.MessageID == 0 {
		return "no original response is cached"
	}
	return fmt.Sprintf("message %d is not cached", e.MessageID)
}

// StateError reports an operation that is invalid in the context's current
// response state, such as sending a modal after responding.
type StateError struct {
	Message string
}

func (e *StateError) Error() string { return e.Message }
