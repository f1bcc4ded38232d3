package store

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"demo/ordermanager/internal/model"
)

type Orders struct {
	Pool PgxIface
}

func NewOrders(pool PgxIface) *Orders { return &Orders{Pool: pool} }

func (r *Orders) List(ctx context.Context) ([]model.Order, error) {
	rows, err := r.Pool.Query(ctx, `
		SELECT o.id, o.order_description, o.created_at,
		       p.id, p.product_name, p.product_description
		FROM orders o
		LEFT JOIN order_product_map m ON m.order_id = o.id
		LEFT JOIN products p ON p.id = m.product_id
		ORDER BY o.created_at DESC, o.id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]model.Order, 0)
	index := map[int64]int{}
	seen := map[int64]map[int64]bool{}
	for rows.Next() {
		var o model.Order
		var pid *int64
		var pname, pdesc *string
		if err := rows.Scan(&o.ID, &o.Description, &o.CreatedAt, &pid, &pname, &pdesc); err != nil {
			return nil, err
		}
		i, ok := index[o.ID]
		if !ok {
			o.Products = make([]model.Product, 0)
			index[o.ID] = len(out)
			seen[o.ID] = map[int64]bool{}
			out = append(out, o)
			i = index[o.ID]
		}
		if pid != nil && !seen[o.ID][*pid] {
			seen[o.ID][*pid] = true
			out[i].Products = append(out[i].Products, model.Product{ID: *pid, Name: *pname, Description: pdesc})
		}
	}
	return out, rows.Err()
}

func (r *Orders) Get(ctx context.Context, id int64) (model.Order, bool, error) {
	var o model.Order
	row := r.Pool.QueryRow(ctx, `SELECT id, order_description, created_at FROM orders WHERE id=$1`, id)
	if err := row.Scan(&o.ID, &o.Description, &o.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Order{}, false, nil
		}
		return model.Order{}, false, err
	}

	rows, err := r.Pool.Query(ctx, `
		SELECT DISTINCT p.id, p.product_name, p.product_description
		FROM order_product_map m
		JOIN products p ON p.id = m.product_id
		WHERE m.order_id=$1
		ORDER BY p.id`, id)
	if err != nil {
		return model.Order{}, false, err
	}
	defer rows.Close()

	o.Products = make([]model.Product, 0)
	for rows.Next() {
		var p model.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Description); err != nil {
			return model.Order{}, false, err
		}
		o.Products = append(o.Products, p)
	}
	return o, true, rows.Err()
}

func (r *Orders) Exists(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.Pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM orders WHERE id=$1)`, id).Scan(&exists)
	return exists, err
}

func (r *Orders) Create(ctx context.Context, description string, productIDs []int64) (int64, error) {
	tx, err := r.Pool.Begin(ctx)
	if err != nil {
		return 0, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	var id int64
	err = tx.QueryRow(ctx,
		`INSERT INTO orders (order_description) VALUES ($1) RETURNING id`,
		description).Scan(&id)
	if err != nil {
		return 0, err
	}

	for _, pid := range productIDs {
		_, err = tx.Exec(ctx,
			`INSERT INTO order_product_map (order_id, product_id) VALUES ($1, $2)`,
			id, pid)
		if err != nil {
			return 0, err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, err
	}
	return id, nil
}

func (r *Orders) Update(ctx context.Context, id int64, p model.UpdateOrderParams) error {
	if p.OrderDescription == nil && p.ProductIDs == nil {
		return nil
	}

	tx, err := r.Pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if p.OrderDescription != nil {
		_, err = tx.Exec(ctx,
			`UPDATE orders SET order_description=$1 WHERE id=$2`,
			*p.OrderDescription, id)
		if err != nil {
			return err
		}
	}

	if p.ProductIDs != nil {
		_, err = tx.Exec(ctx, `DELETE FROM order_product_map WHERE order_id=$1`, id)
		if err != nil {
			return err
		}
		for _, pid := range *p.ProductIDs {
			_, err = tx.Exec(ctx,
				`INSERT INTO order_product_map (order_id, product_id) VALUES ($1, $2)`,
				id, pid)
			if err != nil {
				return err
			}
		}
	}

	return tx.Commit(ctx)
}

func (r *Orders) Delete(ctx context.Context, id int64) (bool, error) {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM orders WHERE id=$1`, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}
