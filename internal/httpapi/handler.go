package httpapi

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"demo/ordermanager/internal/logger"
	"demo/ordermanager/internal/model"
	"demo/ordermanager/internal/validate"
)

// OrderService is what the handlers need from the coordinator.
type OrderService interface {
	ListOrders(ctx context.Context) ([]model.Order, error)
	GetOrder(ctx context.Context, id int64) (model.Order, error)
	CreateOrder(ctx context.Context, p model.CreateOrderParams) (model.Order, error)
	UpdateOrder(ctx context.Context, id int64, p model.UpdateOrderParams) (model.Order, error)
	DeleteOrder(ctx context.Context, id int64) error
	ListProducts(ctx context.Context) ([]model.Product, error)
}

type Handler struct {
	svc        OrderService
	log        *logger.Logger
	production bool
}

func NewHandler(svc OrderService, log *logger.Logger, production bool) *Handler {
	return &Handler{svc: svc, log: log, production: production}
}

// GET /api/orders
func (h *Handler) ListOrders(c *gin.Context) {
	orders, err := h.svc.ListOrders(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, orders, "")
}

// GET /api/orders/:id
func (h *Handler) GetOrder(c *gin.Context) {
	id, ok := h.orderID(c)
	if !ok {
		return
	}
	order, err := h.svc.GetOrder(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, order, "")
}

// POST /api/orders
func (h *Handler) CreateOrder(c *gin.Context) {
	var p model.CreateOrderParams
	if err := c.ShouldBindJSON(&p); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Success: false, Message: "Invalid request body"})
		return
	}
	if errs := validate.CreateOrder(&p); len(errs) > 0 {
		respondValidation(c, errs)
		return
	}

	order, err := h.svc.CreateOrder(c.Request.Context(), p)
	if err != nil {
		h.respondError(c, err)
		return
	}
	respondData(c, http.StatusCreated, order, "Order created successfully")
}

// PUT /api/orders/:id
func (h *Handler) UpdateOrder(c *gin.Context) {
	id, ok := h.orderID(c)
	if !ok {
		return
	}
	var p model.UpdateOrderParams
	if err := c.ShouldBindJSON(&p); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Success: false, Message: "Invalid request body"})
		return
	}
	if errs := validate.UpdateOrder(&p); len(errs) > 0 {
		respondValidation(c, errs)
		return
	}

	order, err := h.svc.UpdateOrder(c.Request.Context(), id, p)
	if err != nil {
		h.respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, order, "Order updated successfully")
}

// DELETE /api/orders/:id
func (h *Handler) DeleteOrder(c *gin.Context) {
	id, ok := h.orderID(c)
	if !ok {
		return
	}
	if err := h.svc.DeleteOrder(c.Request.Context(), id); err != nil {
		h.respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, nil, "Order deleted successfully")
}

// GET /api/orders/products/all
func (h *Handler) ListProducts(c *gin.Context) {
	products, err := h.svc.ListProducts(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, products, "")
}

// orderID rejects non-positive-integer path ids before the coordinator
// sees them.
func (h *Handler) orderID(c *gin.Context) (int64, bool) {
	id, ok := validate.OrderID(c.Param("id"))
	if !ok {
		respondValidation(c, []model.FieldError{
			{Field: "id", Message: "Order ID must be a positive integer"},
		})
		return 0, false
	}
	return id, true
}
