package store

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"demo/ordermanager/internal/model"
)

// PgxIface is the subset of pgxpool.Pool the stores need. Keeping it an
// interface lets tests substitute the pool.
type PgxIface interface {
	Begin(ctx context.Context) (pgx.Tx, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

//go:generate mockgen -destination=storemock/storemock.go -package=storemock demo/ordermanager/internal/store OrderRepository,ProductRepository

type OrderRepository interface {
	// List returns all orders with their products, newest first.
	List(ctx context.Context) ([]model.Order, error)
	// Get returns one order with its products; false when absent.
	Get(ctx context.Context, id int64) (model.Order, bool, error)
	Exists(ctx context.Context, id int64) (bool, error)
	// Create inserts the order and one association row per product id in a
	// single transaction and returns the new order id.
	Create(ctx context.Context, description string, productIDs []int64) (int64, error)
	// Update applies the provided fields in a single transaction. A provided
	// product id list replaces the association set wholesale; a provided
	// empty list clears it.
	Update(ctx context.Context, id int64, p model.UpdateOrderParams) error
	// Delete removes the order; associations go with it via cascade. Returns
	// whether a row was actually removed.
	Delete(ctx context.Context, id int64) (bool, error)
}

type ProductRepository interface {
	List(ctx context.Context) ([]model.Product, error)
	CountExisting(ctx context.Context, ids []int64) (int64, error)
	// AllExist reports whether every distinct id in ids is present in the
	// catalog. An empty list trivially passes.
	AllExist(ctx context.Context, ids []int64) (bool, error)
}
