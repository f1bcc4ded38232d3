package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"demo/ordermanager/internal/apperr"
	"demo/ordermanager/internal/model"
)

// Response is the success envelope shared by every endpoint.
type Response struct {
	Success bool   `json:"success"`
	Data    any    `json:"data"`
	Message string `json:"message,omitempty"`
}

type errorResponse struct {
	Success bool               `json:"success"`
	Message string             `json:"message"`
	Errors  []model.FieldError `json:"errors,omitempty"`
}

func respondData(c *gin.Context, status int, data any, message string) {
	c.JSON(status, Response{Success: true, Data: data, Message: message})
}

func respondValidation(c *gin.Context, errs []model.FieldError) {
	c.JSON(http.StatusBadRequest, errorResponse{
		Success: false,
		Message: "Validation failed",
		Errors:  errs,
	})
}

// respondError is the single place where error kinds become status codes.
func (h *Handler) respondError(c *gin.Context, err error) {
	kind := apperr.KindOf(err)
	status := statusOf(kind)

	msg := apperr.PublicMessage(err)
	if kind == apperr.KindInternal {
		h.log.Error("request failed", "method", c.Request.Method, "path", c.Request.URL.Path, "error", err)
		if !h.production {
			msg = err.Error()
		}
	}

	c.JSON(status, errorResponse{Success: false, Message: msg})
}

func statusOf(kind apperr.Kind) int {
	switch kind {
	case apperr.KindBadRequest:
		return http.StatusBadRequest
	case apperr.KindNotFound:
		return http.StatusNotFound
	case apperr.KindConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
