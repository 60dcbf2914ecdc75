package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/saintecare/sainte/storage"
)

// UserController serves user profile endpoints.
type UserController struct {
	store storage.Storage
}

// NewUserController creates a new UserController instance.
func NewUserController(store storage.Storage) *UserController {
	return &UserController{store: store}
}

// GetCurrentUser returns the profile of the request's resolved user.
func (u *UserController) GetCurrentUser(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	user, err := u.store.GetUser(ctx.Request.Context(), userID)
	if err != nil {
		respondStorageError(ctx, err, "User not found")
		return
	}
	ctx.JSON(200, user)
}
