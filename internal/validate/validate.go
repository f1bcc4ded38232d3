// Package validate checks request bodies before they reach the service.
// Each check produces caller-facing field errors that the HTTP layer wraps
// in the standard error envelope.
package validate

import (
	"strconv"
	"strings"

	"demo/ordermanager/internal/model"
)

const maxDescriptionLen = 100

// OrderID parses a path id. Only positive integers are accepted.
func OrderID(raw string) (int64, bool) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id < 1 {
		return 0, false
	}
	return id, true
}

// CreateOrder validates and normalizes create params. The description is
// trimmed in place before the length checks, so the stored value matches
// what was validated.
func CreateOrder(p *model.CreateOrderParams) []model.FieldError {
	var errs []model.FieldError

	p.OrderDescription = strings.TrimSpace(p.OrderDescription)
	if p.OrderDescription == "" {
		errs = append(errs, model.FieldError{Field: "orderDescription", Message: "Order description is required"})
	} else if len(p.OrderDescription) > maxDescriptionLen {
		errs = append(errs, model.FieldError{Field: "orderDescription", Message: "Order description must not exceed 100 characters"})
	}

	if len(p.ProductIDs) == 0 {
		errs = append(errs, model.FieldError{Field: "productIds", Message: "At least one product must be selected"})
	} else if !allPositive(p.ProductIDs) {
		errs = append(errs, model.FieldError{Field: "productIds", Message: "Product IDs must be positive integers"})
	}

	return errs
}

// UpdateOrder validates the provided fields only. An omitted field is a
// no-op; a provided empty product list is a valid clear.
func UpdateOrder(p *model.UpdateOrderParams) []model.FieldError {
	var errs []model.FieldError

	if p.OrderDescription != nil {
		trimmed := strings.TrimSpace(*p.OrderDescription)
		*p.OrderDescription = trimmed
		if trimmed == "" {
			errs = append(errs, model.FieldError{Field: "orderDescription", Message: "Order description cannot be empty"})
		} else if len(trimmed) > maxDescriptionLen {
			errs = append(errs, model.FieldError{Field: "orderDescription", Message: "Order description must not exceed 100 characters"})
		}
	}

	if p.ProductIDs != nil && !allPositive(*p.ProductIDs) {
		errs = append(errs, model.FieldError{Field: "productIds", Message: "Product IDs must be positive integers"})
	}

	return errs
}

func allPositive(ids []int64) bool {
	for _, id := range ids {
		if id < 1 {
			return false
		}
	}
	return true
}
