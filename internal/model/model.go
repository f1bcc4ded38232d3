package model

import "time"

// Product is a catalog item. Products are seeded once at startup and are
// read-only from the order subsystem's perspective.
type Product struct {
	ID          int64   `json:"id"`
	Name        string  `json:"product_name"`
	Description *string `json:"product_description"`
}

// Order is an order together with its associated products. Products is
// always non-nil so it marshals as a JSON array.
type Order struct {
	ID          int64     `json:"id"`
	Description string    `json:"order_description"`
	CreatedAt   time.Time `json:"created_at"`
	Products    []Product `json:"products"`
}

type CreateOrderParams struct {
	OrderDescription string  `json:"orderDescription"`
	ProductIDs       []int64 `json:"productIds"`
}

// UpdateOrderParams distinguishes "field not provided" (nil pointer, no-op)
// from "field provided as empty". A non-nil empty ProductIDs clears the
// association set.
type UpdateOrderParams struct {
	OrderDescription *string  `json:"orderDescription"`
	ProductIDs       *[]int64 `json:"productIds"`
}

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}
