package apperror

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// Kind is the machine-readable error category returned to clients.
type Kind string

const (
	KindValidation         Kind = "ValidationError"
	KindForbidden          Kind = "Forbidden"
	KindNotFound           Kind = "NotFound"
	KindConflict           Kind = "Conflict"
	KindInvalidState       Kind = "InvalidAttemptStatus"
	KindProctoringDisabled Kind = "ProctoringDisabled"
	KindInternal           Kind = "InternalServerError"
)

// pgUniqueViolation is the SQLSTATE for unique_violation.
const pgUniqueViolation = "23505"

type Error struct {
	Kind   Kind
	Detail string
	Err    error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Detail, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Detail)
}

func (e *Error) Unwrap() error { return e.Err }

func newf(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Detail: fmt.Sprintf(format, args...)}
}

func Validation(format string, args ...any) *Error { return newf(KindValidation, format, args...) }
func Forbidden(format string, args ...any) *Error  { return newf(KindForbidden, format, args...) }
func NotFound(format string, args ...any) *Error   { return newf(KindNotFound, format, args...) }
func Conflict(format string, args ...any) *Error   { return newf(KindConflict, format, args...) }
func InvalidState(format string, args ...any) *Error {
	return newf(KindInvalidState, format, args...)
}
func ProctoringDisabled(format string, args ...any) *Error {
	return newf(KindProctoringDisabled, format, args...)
}

// Internal wraps an unexpected failure. The wrapped error is logged, never returned to clients.
func Internal(err error, format string, args ...any) *Error {
	e := newf(KindInternal, format, args...)
	e.Err = err
	return e
}

// KindOf reports the Kind of err, InternalError for anything unclassified.
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindInternal
}

// Is reports whether err carries the given kind.
func Is(err error, kind Kind) bool {
	return err != nil && KindOf(err) == kind
}

// Translate maps store errors onto the taxonomy. Errors that already carry a kind pass through.
func Translate(err error, what string) error {
	if err == nil {
		return nil
	}
	var appErr *Error
	if errors.As(err, &appErr) {
		return err
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return NotFound("%s not found", what)
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return &Error{Kind: KindConflict, Detail: what + " already exists", Err: err}
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
		return &Error{Kind: KindConflict, Detail: what + " already exists", Err: err}
	}
	return Internal(err, "failed to access %s", what)
}

// HTTPStatus maps a Kind to its response status.
func HTTPStatus(kind Kind) int {
	switch kind {
	case KindValidation, KindInvalidState, KindProctoringDisabled:
		return http.StatusBadRequest
	case KindForbidden:
		return http.StatusForbidden
	case KindNotFound:
		return http.StatusNotFound
	case KindConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// PublicDetail is the detail string safe to send to a client.
func PublicDetail(err error) string {
	var appErr *Error
	if errors.As(err, &appErr) && appErr.Kind != KindInternal {
		return appErr.Detail
	}
	return "an unexpected error occurred"
}
