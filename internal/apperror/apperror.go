// Package apperror defines the errors request handlers turn into JSON
// error responses.
package apperror

import "net/http"

// ValidationError reports a missing, unknown or malformed request field.
type ValidationError struct{ Msg string }

func (e *ValidationError) Error() string { return e.Msg }

// Status is the HTTP status the error maps to.
func (e *ValidationError) Status() int { return http.StatusBadRequest }

// ConflictError reports a clash with an existing unique key.
type ConflictError struct{ Msg string }

func (e *ConflictError) Error() string { return e.Msg }

// Status is the HTTP status the error maps to. Duplicates answer 400, not 409.
func (e *ConflictError) Status() int { return http.StatusBadRequest }

// NotFoundError reports that a referenced record does not exist.
type NotFoundError struct{ Msg string }

func (e *NotFoundError) Error() string { return e.Msg }

// Status is the HTTP status the error maps to.
func (e *NotFoundError) Status() int { return http.StatusNotFound }

// Validation returns a *ValidationError with msg.
func Validation(msg string) error { return &ValidationError{Msg: msg} }

// Conflict returns a *ConflictError with msg.
func Conflict(msg string) error { return &ConflictError{Msg: msg} }

// NotFound returns a *NotFoundError with msg.
func NotFound(msg string) error { return &NotFoundError{Msg: msg} }
