package controllers

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/saintecare/sainte/models"
	"github.com/saintecare/sainte/storage"
	"github.com/saintecare/sainte/utils"
)

// StepController manages the user's daily step to-do items.
type StepController struct {
	store storage.Storage
}

// NewStepController creates a new StepController instance.
func NewStepController(store storage.Storage) *StepController {
	return &StepController{store: store}
}

// ListSteps returns all daily steps for the current user.
func (s *StepController) ListSteps(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	steps, err := s.store.GetDailySteps(ctx.Request.Context(), userID)
	if err != nil {
		utils.ServerError(ctx, err)
		return
	}
	ctx.JSON(200, steps)
}

// CreateStep adds a new daily step, due today.
func (s *StepController) CreateStep(ctx *gin.Context) {
	var req struct {
		Title       string `json:"title" binding:"required,min=1"`
		Description string `json:"description"`
		Completed   bool   `json:"completed"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.ValidationError(ctx, err)
		return
	}

	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	title := utils.Sanitize(strings.TrimSpace(req.Title))
	if title == "" {
		utils.ErrorMessage(ctx, http.StatusBadRequest, "Title cannot be empty")
		return
	}

	step := models.DailyStep{
		UserID:      userID,
		Title:       title,
		Description: utils.Sanitize(req.Description),
		Completed:   req.Completed,
		DueDate:     time.Now().Format("2006-01-02"),
	}
	if err := s.store.CreateDailyStep(ctx.Request.Context(), &step); err != nil {
		utils.ServerError(ctx, err)
		return
	}

	utils.InvalidateByPrefix("cache:sccs:report:" + strconv.Itoa(int(userID)))

	ctx.JSON(http.StatusCreated, step)
}

// UpdateStep patches the completed flag of one step.
func (s *StepController) UpdateStep(ctx *gin.Context) {
	stepID, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		utils.ErrorMessage(ctx, http.StatusBadRequest, "Invalid step ID")
		return
	}

	var req struct {
		Completed *bool `json:"completed" binding:"required"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.ErrorMessage(ctx, http.StatusBadRequest, "Completed status must be a boolean")
		return
	}

	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	step, err := s.store.UpdateDailyStep(ctx.Request.Context(), uint(stepID), *req.Completed)
	if err != nil {
		respondStorageError(ctx, err, "Step not found")
		return
	}

	utils.InvalidateByPrefix("cache:sccs:report:" + strconv.Itoa(int(userID)))

	ctx.JSON(200, step)
}
