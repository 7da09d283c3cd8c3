package errors

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/Gobusters/ectoerror/httperror"
)

type Kind string

const (
	KindSourceUnavailable Kind = "source_unavailable"
	KindNotFound          Kind = "not_found"
	KindWriteFailure      Kind = "write_failure"
	KindCancelled         Kind = "cancelled"
	KindConflict          Kind = "conflict"
	KindUnexpected        Kind = "unexpected"
)

// ErrProjectLocked is returned by a project locker when another run already
// holds the project.
var ErrProjectLocked = errors.New("project locked by another migration run")

// MigrationError classifies a failed migration step.
type MigrationError struct {
	Kind    Kind
	Message string
	Err     error
}

func New(kind Kind, msg string) *MigrationError {
	return &MigrationError{Kind: kind, Message: msg}
}

func Newf(kind Kind, format string, args ...any) *MigrationError {
	return &MigrationError{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// Wrap attaches a kind to err. A cancelled context always wins over the
// requested kind, and an existing MigrationError is returned unchanged.
func Wrap(kind Kind, msg string, err error) *MigrationError {
	if err == nil {
		return nil
	}

	var migrationErr *MigrationError
	if errors.As(err, &migrationErr) {
		return migrationErr
	}

	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		kind = KindCancelled
	}

	return &MigrationError{Kind: kind, Message: msg, Err: err}
}

func (e *MigrationError) Error() string {
	if e.Err == nil {
		return e.Message
	}
	if e.Message == "" {
		return e.Err.Error()
	}
	return fmt.Sprintf("%s: %s", e.Message, e.Err.Error())
}

func (e *MigrationError) Unwrap() error {
	return e.Err
}

func (e *MigrationError) StatusCode() int {
	switch e.Kind {
	case KindNotFound:
		return http.StatusNotFound
	case KindSourceUnavailable:
		return http.StatusBadGateway
	case KindCancelled:
		return http.StatusRequestTimeout
	case KindConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func (e *MigrationError) ToHTTPError() error {
	return httperror.NewHTTPError(e.StatusCode(), e.Error()).AddMetaValue("kind", string(e.Kind))
}

func IsMigrationError(err error) bool {
	var migrationErr *MigrationError
	return errors.As(err, &migrationErr)
}

// KindOf returns the kind of err, KindUnexpected when err is not classified.
func KindOf(err error) Kind {
	var migrationErr *MigrationError
	if errors.As(err, &migrationErr) {
		return migrationErr.Kind
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return KindCancelled
	}
	return KindUnexpected
}

// IsNotFound reports whether err is a not-found MigrationError or a 404 http error.
func IsNotFound(err error) bool {
	if err == nil {
		return false
	}
	if KindOf(err) == KindNotFound {
		return true
	}
	return httperror.IsHTTPError(err) && httperror.GetStatusCode(err) == http.StatusNotFound
}

func IsCancelled(err error) bool {
	return err != nil && KindOf(err) == KindCancelled
}

func IsProjectLocked(err error) bool {
	return errors.Is(err, ErrProjectLocked)
}
