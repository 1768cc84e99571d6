package handlers

import (
	"errors"
	"net/http"

	"print_shop/internal/services"

	"github.com/gin-gonic/gin"
)

// APIResponse is the envelope every endpoint returns.
type APIResponse struct {
	Success  bool        `json:"success"`
	Data     interface{} `json:"data,omitempty"`
	Message  string      `json:"message,omitempty"`
	Code     string      `json:"code,omitempty"`
	Warnings []string    `json:"warnings,omitempty"`
}

func respondOK(c *gin.Context, data interface{}, warnings []string) {
	c.JSON(http.StatusOK, APIResponse{Success: true, Data: data, Warnings: warnings})
}

func respondCreated(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, APIResponse{Success: true, Data: data})
}

func respondBadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, APIResponse{Success: false, Message: message})
}

// respondServiceError maps service errors onto the envelope. Not-found stays
// indistinguishable from a cross-tenant reference; validation rejections keep
// their stable code and a 409; everything else is a generic 500.
func respondServiceError(c *gin.Context, err error) {
	if errors.Is(err, services.ErrOrderNotFound) || errors.Is(err, services.ErrStatusPillNotFound) {
		c.JSON(http.StatusNotFound, APIResponse{Success: false, Code: services.CodeNotFound, Message: err.Error()})
		return
	}

	var te *services.TransitionError
	if errors.As(err, &te) {
		data := gin.H{}
		if te.Code == services.CodeLineItemsNotComplete {
			data["remaining_count"] = te.RemainingCount
			data["can_override"] = te.CanOverride
		}
		c.JSON(http.StatusConflict, APIResponse{Success: false, Code: te.Code, Message: te.Message, Data: data})
		return
	}

	c.JSON(http.StatusInternalServerError, APIResponse{Success: false, Message: "internal error"})
}
