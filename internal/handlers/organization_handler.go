package handlers

import (
	"print_shop/internal/middleware"
	"print_shop/internal/models"
	"print_shop/internal/services"

	"github.com/gin-gonic/gin"
)

type OrganizationHandler struct {
	preferences services.PreferenceService
}

func NewOrganizationHandler(preferences services.PreferenceService) *OrganizationHandler {
	return &OrganizationHandler{preferences: preferences}
}

func (h *OrganizationHandler) GetPreferences(c *gin.Context) {
	prefs, err := h.preferences.Get(middleware.OrgID(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, gin.H{"orders": prefs}, nil)
}

func (h *OrganizationHandler) UpdatePreferences(c *gin.Context) {
	var req models.OrderPreferences
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request format")
		return
	}

	actor := middleware.ActorFrom(c)
	if !models.IsElevatedRole(actor.Role) {
		respondServiceError(c, &services.TransitionError{
			Code:    services.CodeOrderLocked,
			Message: "only managers or admins may change organization preferences",
		})
		return
	}

	if err := h.preferences.Update(middleware.OrgID(c), req, actor); err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, gin.H{"orders": req}, nil)
}
