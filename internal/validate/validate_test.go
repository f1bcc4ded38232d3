package validate_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"demo/ordermanager/internal/model"
	"demo/ordermanager/internal/validate"
)

func TestOrderID(t *testing.T) {
	cases := []struct {
		raw  string
		want int64
		ok   bool
	}{
		{"1", 1, true},
		{"42", 42, true},
		{"0", 0, false},
		{"-5", 0, false},
		{"abc", 0, false},
		{"", 0, false},
		{"1.5", 0, false},
	}
	for _, tc := range cases {
		id, ok := validate.OrderID(tc.raw)
		require.Equal(t, tc.ok, ok, "raw=%q", tc.raw)
		if ok {
			require.Equal(t, tc.want, id)
		}
	}
}

func TestCreateOrder_Valid(t *testing.T) {
	p := model.CreateOrderParams{
		OrderDescription: "  Office Supplies Order  ",
		ProductIDs:       []int64{1, 3},
	}
	errs := validate.CreateOrder(&p)
	require.Empty(t, errs)
	require.Equal(t, "Office Supplies Order", p.OrderDescription, "description is trimmed in place")
}

func TestCreateOrder_MissingDescription(t *testing.T) {
	p := model.CreateOrderParams{OrderDescription: "   ", ProductIDs: []int64{1}}
	errs := validate.CreateOrder(&p)
	require.Len(t, errs, 1)
	require.Equal(t, "orderDescription", errs[0].Field)
	require.Equal(t, "Order description is required", errs[0].Message)
}

func TestCreateOrder_DescriptionTooLong(t *testing.T) {
	p := model.CreateOrderParams{
		OrderDescription: strings.Repeat("x", 101),
		ProductIDs:       []int64{1},
	}
	errs := validate.CreateOrder(&p)
	require.Len(t, errs, 1)
	require.Equal(t, "Order description must not exceed 100 characters", errs[0].Message)
}

func TestCreateOrder_NoProducts(t *testing.T) {
	p := model.CreateOrderParams{OrderDescription: "ok"}
	errs := validate.CreateOrder(&p)
	require.Len(t, errs, 1)
	require.Equal(t, "productIds", errs[0].Field)
	require.Equal(t, "At least one product must be selected", errs[0].Message)
}

func TestCreateOrder_NonPositiveProductID(t *testing.T) {
	p := model.CreateOrderParams{OrderDescription: "ok", ProductIDs: []int64{1, 0}}
	errs := validate.CreateOrder(&p)
	require.Len(t, errs, 1)
	require.Equal(t, "Product IDs must be positive integers", errs[0].Message)
}

func TestCreateOrder_CollectsAllErrors(t *testing.T) {
	p := model.CreateOrderParams{}
	errs := validate.CreateOrder(&p)
	require.Len(t, errs, 2)
}

func TestUpdateOrder_EmptyBodyIsValid(t *testing.T) {
	p := model.UpdateOrderParams{}
	require.Empty(t, validate.UpdateOrder(&p))
}

func TestUpdateOrder_EmptyProductListIsValid(t *testing.T) {
	ids := []int64{}
	p := model.UpdateOrderParams{ProductIDs: &ids}
	require.Empty(t, validate.UpdateOrder(&p))
}

func TestUpdateOrder_BlankDescriptionRejected(t *testing.T) {
	desc := "   "
	p := model.UpdateOrderParams{OrderDescription: &desc}
	errs := validate.UpdateOrder(&p)
	require.Len(t, errs, 1)
	require.Equal(t, "Order description cannot be empty", errs[0].Message)
}

func TestUpdateOrder_NegativeProductIDRejected(t *testing.T) {
	ids := []int64{2, -1}
	p := model.UpdateOrderParams{ProductIDs: &ids}
	errs := validate.UpdateOrder(&p)
	require.Len(t, errs, 1)
	require.Equal(t, "Product IDs must be positive integers", errs[0].Message)
}
