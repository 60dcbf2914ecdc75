package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/saintecare/sainte/middleware"
	"github.com/saintecare/sainte/storage"
	"github.com/saintecare/sainte/utils"
)

// currentUserID reads the identity resolved by the CurrentUser middleware.
// Routes are always registered behind it, so a miss is a wiring bug.
func currentUserID(ctx *gin.Context) (uint, bool) {
	id, ok := middleware.UserID(ctx)
	if !ok {
		utils.ErrorMessage(ctx, http.StatusInternalServerError, "Server error")
		return 0, false
	}
	return id, true
}

// respondStorageError maps a storage failure to 404 or 500.
func respondStorageError(ctx *gin.Context, err error, notFoundMsg string) {
	if errors.Is(err, storage.ErrNotFound) {
		utils.NotFound(ctx, notFoundMsg)
		return
	}
	utils.ServerError(ctx, err)
}
