package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/saintecare/sainte/models"
	"github.com/saintecare/sainte/storage"
	"github.com/saintecare/sainte/utils"
)

// MoodController manages mood log endpoints.
type MoodController struct {
	store storage.Storage
}

// NewMoodController creates a new MoodController instance.
func NewMoodController(store storage.Storage) *MoodController {
	return &MoodController{store: store}
}

// RecentMoods returns the user's latest mood entries, most recent first.
func (m *MoodController) RecentMoods(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	moods, err := m.store.GetRecentMoods(ctx.Request.Context(), userID)
	if err != nil {
		utils.ServerError(ctx, err)
		return
	}
	ctx.JSON(200, moods)
}

// CreateMood logs a mood for today; the server stamps the date.
func (m *MoodController) CreateMood(ctx *gin.Context) {
	var req struct {
		Mood  string `json:"mood" binding:"required"`
		Emoji string `json:"emoji" binding:"required"`
		Notes string `json:"notes"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.ValidationError(ctx, err)
		return
	}

	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	mood := models.Mood{
		UserID: userID,
		Mood:   req.Mood,
		Emoji:  req.Emoji,
		Notes:  utils.Sanitize(req.Notes),
		Date:   time.Now().Format("2006-01-02"),
	}
	if err := m.store.CreateMood(ctx.Request.Context(), &mood); err != nil {
		utils.ServerError(ctx, err)
		return
	}

	utils.InvalidateByPrefix("cache:sccs:report:" + strconv.Itoa(int(userID)))

	ctx.JSON(http.StatusCreated, mood)
}
