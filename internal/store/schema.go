package store

import "context"

// Bootstrap creates the schema and seeds the product catalog when it is
// empty. Every statement is idempotent, so running it on each startup is
// safe.
func Bootstrap(ctx context.Context, pool PgxIface) error {
	_, err := pool.Exec(ctx, `
CREATE TABLE IF NOT EXISTS orders (
  id SERIAL PRIMARY KEY,
  order_description VARCHAR(100) NOT NULL,
  created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
CREATE TABLE IF NOT EXISTS products (
  id INT PRIMARY KEY,
  product_name VARCHAR(100) NOT NULL,
  product_description TEXT
);
CREATE TABLE IF NOT EXISTS order_product_map (
  id SERIAL PRIMARY KEY,
  order_id INT NOT NULL REFERENCES orders(id) ON DELETE CASCADE,
  product_id INT NOT NULL REFERENCES products(id) ON DELETE CASCADE
);
CREATE INDEX IF NOT EXISTS idx_order_product_map_order_id ON order_product_map(order_id);
CREATE INDEX IF NOT EXISTS idx_order_product_map_product_id ON order_product_map(product_id);
`)
	if err != nil {
		return err
	}

	var count int64
	if err := pool.QueryRow(ctx, `SELECT COUNT(*) FROM products`).Scan(&count); err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	_, err = pool.Exec(ctx, `
INSERT INTO products (id, product_name, product_description) VALUES
  (1, 'HP laptop', 'This is HP laptop'),
  (2, 'lenovo laptop', 'This is lenovo'),
  (3, 'Car', 'This is Car'),
  (4, 'Bike', 'This is Bike')
ON CONFLICT (id) DO NOTHING`)
	return err
}
