package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/saintecare/sainte/storage"
	"github.com/saintecare/sainte/utils"
)

// ResourceController serves resource recommendations and bookmarks.
type ResourceController struct {
	store storage.Storage
}

// NewResourceController creates a new ResourceController instance.
func NewResourceController(store storage.Storage) *ResourceController {
	return &ResourceController{store: store}
}

// Recommended returns all resources decorated with the user's bookmark state.
func (r *ResourceController) Recommended(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	resources, err := r.store.GetRecommendedResources(ctx.Request.Context(), userID)
	if err != nil {
		utils.ServerError(ctx, err)
		return
	}
	ctx.JSON(200, resources)
}

// Bookmark marks a resource as bookmarked. Re-bookmarking updates the
// existing row; the (user, resource) pair never duplicates.
func (r *ResourceController) Bookmark(ctx *gin.Context) {
	resourceID, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		utils.ErrorMessage(ctx, http.StatusBadRequest, "Invalid resource ID")
		return
	}

	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	bookmark, err := r.store.BookmarkResource(ctx.Request.Context(), userID, uint(resourceID), true)
	if err != nil {
		utils.ServerError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, bookmark)
}

// RemoveBookmark deletes the user's bookmark for a resource.
func (r *ResourceController) RemoveBookmark(ctx *gin.Context) {
	resourceID, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		utils.ErrorMessage(ctx, http.StatusBadRequest, "Invalid resource ID")
		return
	}

	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	if err := r.store.RemoveResourceBookmark(ctx.Request.Context(), userID, uint(resourceID)); err != nil {
		respondStorageError(ctx, err, "Bookmark not found")
		return
	}
	ctx.JSON(200, gin.H{"success": true})
}
