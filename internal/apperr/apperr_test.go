package apperr_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"

	"demo/ordermanager/internal/apperr"
)

func TestKindOf(t *testing.T) {
	require.Equal(t, apperr.KindNotFound, apperr.KindOf(apperr.NotFound("gone")))
	require.Equal(t, apperr.KindBadRequest, apperr.KindOf(apperr.BadRequest("nope")))
	require.Equal(t, apperr.KindInternal, apperr.KindOf(errors.New("anything")))
}

func TestKindOf_Wrapped(t *testing.T) {
	err := fmt.Errorf("loading order: %w", apperr.NotFound("Order with id 3 not found"))
	require.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
}

func TestKindOf_PostgresCodes(t *testing.T) {
	require.Equal(t, apperr.KindConflict, apperr.KindOf(&pgconn.PgError{Code: "23505"}))
	require.Equal(t, apperr.KindBadRequest, apperr.KindOf(&pgconn.PgError{Code: "23503"}))
	require.Equal(t, apperr.KindBadRequest, apperr.KindOf(&pgconn.PgError{Code: "22P02"}))
	require.Equal(t, apperr.KindInternal, apperr.KindOf(&pgconn.PgError{Code: "57014"}))
}

func TestPublicMessage(t *testing.T) {
	require.Equal(t, "Order with id 3 not found", apperr.PublicMessage(apperr.NotFound("Order with id 3 not found")))
	require.Equal(t, "Resource already exists", apperr.PublicMessage(&pgconn.PgError{Code: "23505"}))
	require.Equal(t, "Referenced resource does not exist", apperr.PublicMessage(&pgconn.PgError{Code: "23503"}))
	require.Equal(t, "Internal server error", apperr.PublicMessage(errors.New("connection refused: 10.0.0.3")))
	require.Equal(t, "Internal server error", apperr.PublicMessage(apperr.Internal(errors.New("pool closed"))))
}

func TestErrorUnwrap(t *testing.T) {
	cause := errors.New("root")
	err := apperr.Internal(cause)
	require.ErrorIs(t, err, cause)
	require.Equal(t, "root", err.Error())
}
