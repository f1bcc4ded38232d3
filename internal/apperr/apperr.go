// Package apperr defines the error taxonomy shared by the service and HTTP
// layers. Stores return plain errors; the service wraps them here; only the
// HTTP boundary maps kinds to status codes.
package apperr

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
)

type Kind int

const (
	KindInternal Kind = iota
	KindBadRequest
	KindNotFound
	KindConflict
)

type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "internal error"
}

func (e *Error) Unwrap() error { return e.Err }

func BadRequest(format string, args ...any) *Error {
	return &Error{Kind: KindBadRequest, Message: fmt.Sprintf(format, args...)}
}

func NotFound(format string, args ...any) *Error {
	return &Error{Kind: KindNotFound, Message: fmt.Sprintf(format, args...)}
}

func Internal(err error) *Error {
	return &Error{Kind: KindInternal, Err: err}
}

// Postgres error codes the original schema can produce.
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	pgInvalidTextRep      = "22P02"
)

// KindOf classifies err. Known *Error values keep their kind; raw Postgres
// errors are classified by SQLSTATE; everything else is internal.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			return KindConflict
		case pgForeignKeyViolation, pgInvalidTextRep:
			return KindBadRequest
		}
	}
	return KindInternal
}

// PublicMessage is the message safe to show callers. Internal errors get a
// generic message; the HTTP layer may echo details in development mode.
func PublicMessage(err error) string {
	var e *Error
	if errors.As(err, &e) && e.Kind != KindInternal {
		return e.Error()
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			return "Resource already exists"
		case pgForeignKeyViolation:
			return "Referenced resource does not exist"
		case pgInvalidTextRep:
			return "Invalid input format"
		}
	}
	return "Internal server error"
}
