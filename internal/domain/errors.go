package domain

import (
	"errors"
	"fmt"
)

// NotFoundError reports that a referenced entity does not exist, by id or
// by business key.
type NotFoundError struct {
	Entity string
	Key    any
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %v not found", e.Entity, e.Key)
}

// NewNotFound returns a NotFoundError for the given entity and key.
func NewNotFound(entity string, key any) error {
	return &NotFoundError{Entity: entity, Key: key}
}

// ValidationError reports caller-supplied data that violates a structural
// rule independent of store state (date ordering, score range).
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// NewValidation returns a ValidationError for the given field.
func NewValidation(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// ConflictError reports an operation that would violate a business
// invariant depending on current store state (duplicate registration,
// deleting a completed event, duplicate rating).
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string { return e.Message }

// NewConflict returns a ConflictError with the given message.
func NewConflict(format string, args ...any) error {
	return &ConflictError{Message: fmt.Sprintf(format, args...)}
}

// UnauthorizedError reports missing or invalid credentials.
type UnauthorizedError struct {
	Message string
}

func (e *UnauthorizedError) Error() string { return e.Message }

// TransactionError reports a unit-of-work protocol failure: commit without
// an open transaction, or a begin/commit failure from the store.
type TransactionError struct {
	Op  string
	Err error
}

func (e *TransactionError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("transaction %s failed", e.Op)
	}
	return fmt.Sprintf("transaction %s failed: %v", e.Op, e.Err)
}

func (e *TransactionError) Unwrap() error { return e.Err }

// PersistenceError wraps a store failure that is neither a business
// conflict nor a protocol error (connection loss, unexpected driver error).
type PersistenceError struct {
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("persistence failure: %v", e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }

// IsNotFound reports whether err is (or wraps) a NotFoundError.
func IsNotFound(err error) bool {
	var e *NotFoundError
	return errors.As(err, &e)
}

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var e *ValidationError
	return errors.As(err, &e)
}

// IsConflict reports whether err is (or wraps) a ConflictError.
func IsConflict(err error) bool {
	var e *ConflictError
	return errors.As(err, &e)
}

// IsUnauthorized reports whether err is (or wraps) an UnauthorizedError.
func IsUnauthorized(err error) bool {
	var e *UnauthorizedError
	return errors.As(err, &e)
}
