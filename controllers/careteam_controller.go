package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/saintecare/sainte/storage"
	"github.com/saintecare/sainte/utils"
)

// CareTeamController serves the user's support-staff contacts.
type CareTeamController struct {
	store storage.Storage
}

// NewCareTeamController creates a new CareTeamController instance.
func NewCareTeamController(store storage.Storage) *CareTeamController {
	return &CareTeamController{store: store}
}

// ListCareTeam returns the care team members assigned to the current user.
func (c *CareTeamController) ListCareTeam(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	members, err := c.store.GetCareTeam(ctx.Request.Context(), userID)
	if err != nil {
		utils.ServerError(ctx, err)
		return
	}
	ctx.JSON(200, members)
}
