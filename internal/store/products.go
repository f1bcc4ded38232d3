package store

import (
	"context"

	"demo/ordermanager/internal/model"
)

type Products struct {
	Pool PgxIface
}

func NewProducts(pool PgxIface) *Products { return &Products{Pool: pool} }

func (r *Products) List(ctx context.Context) ([]model.Product, error) {
	rows, err := r.Pool.Query(ctx,
		`SELECT id, product_name, product_description FROM products ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]model.Product, 0)
	for rows.Next() {
		var p model.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Description); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *Products) CountExisting(ctx context.Context, ids []int64) (int64, error) {
	var n int64
	err := r.Pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM products WHERE id = ANY($1)`, ids).Scan(&n)
	return n, err
}

func (r *Products) AllExist(ctx context.Context, ids []int64) (bool, error) {
	if len(ids) == 0 {
		return true, nil
	}
	distinct := map[int64]bool{}
	for _, id := range ids {
		distinct[id] = true
	}
	n, err := r.CountExisting(ctx, ids)
	if err != nil {
		return false, err
	}
	return n == int64(len(distinct)), nil
}
