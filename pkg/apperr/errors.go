package apperr

import "errors"

// PolicyError indicates the caller's role does not allow the action.
type PolicyError struct {
	Reason string
}

func (e *PolicyError) Error() string { return e.Reason }

func NewPolicy(reason string) error {
	return &PolicyError{Reason: reason}
}

func IsPolicy(err error) bool {
	var pe *PolicyError
	return errors.As(err, &pe)
}

// NotFoundError indicates a referenced user, course or message is absent.
type NotFoundError struct {
	Resource string
}

func (e *NotFoundError) Error() string { return e.Resource + " not found" }

func NewNotFound(resource string) error {
	return &NotFoundError{Resource: resource}
}

func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

// StoreError wraps a failed read or write against the backing store.
// Callers must not assume the write happened after seeing one.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string { return e.Op + ": " + e.Err.Error() }

func (e *StoreError) Unwrap() error { return e.Err }

func NewStore(op string, err error) error {
	return &StoreError{Op: op, Err: err}
}
