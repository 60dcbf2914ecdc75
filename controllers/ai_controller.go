package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/saintecare/sainte/ai"
	"github.com/saintecare/sainte/models"
	"github.com/saintecare/sainte/storage"
	"github.com/saintecare/sainte/utils"
)

// insightMaxAge is how long a stored insight is served before regenerating.
const insightMaxAge = 24 * time.Hour

// AiController serves the AI companion endpoints. Completion failures
// degrade to fixed fallback payloads; these endpoints never 500 on a bad
// upstream call.
type AiController struct {
	store     storage.Storage
	companion *ai.Companion
}

// NewAiController creates a new AiController instance.
func NewAiController(store storage.Storage, companion *ai.Companion) *AiController {
	return &AiController{store: store, companion: companion}
}

// PersonalizedMessage generates a short greeting from the user's recent activity.
func (a *AiController) PersonalizedMessage(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	rctx := ctx.Request.Context()

	user, err := a.store.GetUser(rctx, userID)
	if err != nil {
		respondStorageError(ctx, err, "User not found")
		return
	}

	moods, _ := a.store.GetRecentMoods(rctx, userID)
	steps, _ := a.store.GetDailySteps(rctx, userID)
	events, _ := a.store.GetUpcomingEvents(rctx, userID)

	message := a.companion.PersonalizedMessage(rctx, ai.UserContext{
		User:           user,
		RecentMoods:    moods,
		DailySteps:     steps,
		UpcomingEvents: events,
	})
	ctx.JSON(200, gin.H{"message": message})
}

// NewChatSession mints a fresh session id for the chat client.
func (a *AiController) NewChatSession(ctx *gin.Context) {
	ctx.JSON(http.StatusCreated, gin.H{"sessionId": uuid.NewString()})
}

// GetChatMessages returns the stored history of one chat session.
func (a *AiController) GetChatMessages(ctx *gin.Context) {
	sessionID := ctx.Param("sessionId")
	if sessionID == "" {
		utils.ErrorMessage(ctx, http.StatusBadRequest, "Session ID is required")
		return
	}

	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	messages, err := a.store.GetChatMessages(ctx.Request.Context(), userID, sessionID)
	if err != nil {
		utils.ServerError(ctx, err)
		return
	}
	ctx.JSON(200, messages)
}

// PostChatMessage stores the user's turn, generates the assistant's reply
// from the prior session history, stores it, and returns both messages.
func (a *AiController) PostChatMessage(ctx *gin.Context) {
	sessionID := ctx.Param("sessionId")
	if sessionID == "" {
		utils.ErrorMessage(ctx, http.StatusBadRequest, "Session ID is required")
		return
	}

	var req struct {
		Message string `json:"message" binding:"required"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.ErrorMessage(ctx, http.StatusBadRequest, "Message content is required")
		return
	}

	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	rctx := ctx.Request.Context()

	// History is read before the new turn is stored so the prompt does not
	// carry the message twice.
	history, err := a.store.GetChatMessages(rctx, userID, sessionID)
	if err != nil {
		utils.ServerError(ctx, err)
		return
	}

	content := utils.Sanitize(req.Message)
	userMessage := models.ChatMessage{
		UserID:        userID,
		Role:          "user",
		Content:       content,
		ChatSessionID: sessionID,
	}
	if err := a.store.CreateChatMessage(rctx, &userMessage); err != nil {
		utils.ServerError(ctx, err)
		return
	}

	reply := a.companion.ChatReply(rctx, history, content)

	assistantMessage := models.ChatMessage{
		UserID:        userID,
		Role:          "assistant",
		Content:       reply,
		ChatSessionID: sessionID,
	}
	if err := a.store.CreateChatMessage(rctx, &assistantMessage); err != nil {
		utils.ServerError(ctx, err)
		return
	}

	ctx.JSON(200, gin.H{
		"userMessage":      userMessage,
		"assistantMessage": assistantMessage,
	})
}

// Insights returns the stored progress analysis while it is fresh and
// regenerates it once it is older than a day.
func (a *AiController) Insights(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	rctx := ctx.Request.Context()

	existing, err := a.store.GetLatestAiInsight(rctx, userID)
	if err == nil && time.Since(existing.CreatedAt) < insightMaxAge {
		ctx.JSON(200, existing)
		return
	}

	user, err := a.store.GetUser(rctx, userID)
	if err != nil {
		respondStorageError(ctx, err, "User not found")
		return
	}

	moods, _ := a.store.GetRecentMoods(rctx, userID)
	steps, _ := a.store.GetDailySteps(rctx, userID)
	events, _ := a.store.GetUpcomingEvents(rctx, userID)

	result := a.companion.ProgressInsights(rctx, ai.UserContext{
		User:           user,
		RecentMoods:    moods,
		DailySteps:     steps,
		UpcomingEvents: events,
	})

	insight := models.AiInsight{
		UserID:              userID,
		Insights:            result.Insights,
		StrengthsIdentified: result.StrengthsIdentified,
		SuggestedResources:  result.SuggestedResources,
	}
	if err := a.store.CreateAiInsight(rctx, &insight); err != nil {
		utils.ServerError(ctx, err)
		return
	}
	ctx.JSON(200, insight)
}
