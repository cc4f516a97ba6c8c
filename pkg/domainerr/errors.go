// Package domainerr defines the error kinds shared by every bounded context.
//
// Each failure carries exactly one kind sentinel and a human-readable message.
// Callers branch on the kind with errors.Is:
//
//	if errors.Is(err, domainerr.ErrBusinessRule) { ... }
//
// Bounded contexts declare their fixed-message failures as package-level
// *Error values in domain/errors.go, so errors.Is also matches those by identity.
package domainerr

import (
	"errors"
	"fmt"
)

// Kind sentinels. Error() of a kind is only used when a kind is returned bare.
var (
	// ErrResourceNotFound indicates the requested entity id does not exist.
	ErrResourceNotFound = errors.New("resource not found")

	// ErrBusinessRule indicates a domain invariant was violated.
	ErrBusinessRule = errors.New("business rule violation")

	// ErrInsufficientStock indicates an order asked for more than the recorded stock.
	ErrInsufficientStock = errors.New("insufficient stock")

	// ErrNotification indicates the notification gateway failed.
	ErrNotification = errors.New("notification failed")

	// ErrDatabase indicates a persistence integrity violation surfaced to the caller.
	ErrDatabase = errors.New("database error")
)

const (
	insufficientStockMsg = "Estoque insuficiente para os itens do pedido!"
	notificationMsg      = "Erro ao enviar notificação para o cliente."
)

// Error is a classified domain failure.
type Error struct {
	kind  error
	msg   string
	cause error
}

// New returns an Error of the given kind. kind must be one of the sentinels above.
func New(kind error, msg string) *Error {
	return &Error{kind: kind, msg: msg}
}

// Error returns the message exactly as it should reach the caller.
func (e *Error) Error() string {
	return e.msg
}

// Is reports whether target is this error's kind (or this exact error).
func (e *Error) Is(target error) bool {
	return target == e.kind
}

// Unwrap exposes the underlying cause, if any.
func (e *Error) Unwrap() error {
	return e.cause
}

// Kind returns the kind sentinel.
func (e *Error) Kind() error {
	return e.kind
}

// NotFound reports that no entity with the given id exists.
func NotFound(id int64) *Error {
	return New(ErrResourceNotFound, fmt.Sprintf("Recurso não encontrado. Id %d", id))
}

// BusinessRule reports a violated domain invariant.
func BusinessRule(msg string) *Error {
	return New(ErrBusinessRule, msg)
}

// InsufficientStock reports that at least one item exceeds its stock.
func InsufficientStock() *Error {
	return New(ErrInsufficientStock, insufficientStockMsg)
}

// Notification wraps a gateway failure.
func Notification(cause error) *Error {
	return &Error{kind: ErrNotification, msg: notificationMsg, cause: cause}
}

// Database wraps a persistence integrity violation.
func Database(msg string, cause error) *Error {
	return &Error{kind: ErrDatabase, msg: msg, cause: cause}
}

// KindOf returns the kind sentinel of err, or nil when err is unclassified.
func KindOf(err error) error {
	var de *Error
	if errors.As(err, &de) {
		return de.kind
	}
	for _, k := range []error{ErrResourceNotFound, ErrBusinessRule, ErrInsufficientStock, ErrNotification, ErrDatabase} {
		if errors.Is(err, k) {
			return k
		}
	}
	return nil
}
