package controllers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/saintecare/sainte/sccs"
	"github.com/saintecare/sainte/storage"
	"github.com/saintecare/sainte/utils"
)

// SccsController serves the Social Capital Credit Score endpoints.
type SccsController struct {
	store storage.Storage
}

// NewSccsController creates a new SccsController instance.
func NewSccsController(store storage.Storage) *SccsController {
	return &SccsController{store: store}
}

// CurrentScore returns the user's latest score snapshot.
func (s *SccsController) CurrentScore(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	score, err := s.store.GetCurrentSccsScore(ctx.Request.Context(), userID)
	if err != nil {
		respondStorageError(ctx, err, "SCCS score not found")
		return
	}
	ctx.JSON(200, score)
}

// Report assembles the full score report. The payload is cached per user
// and invalidated when moods, steps, or events change.
func (s *SccsController) Report(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	cacheKey := "cache:sccs:report:" + strconv.Itoa(int(userID))
	if b, ok := utils.CacheGetBytes(cacheKey); ok {
		ctx.Data(200, "application/json", b)
		return
	}

	rctx := ctx.Request.Context()
	score, err := s.store.GetCurrentSccsScore(rctx, userID)
	if err != nil {
		respondStorageError(ctx, err, "SCCS score not found")
		return
	}

	// Lookups beyond the score row default to empty collections rather
	// than failing the report.
	moods, err := s.store.GetRecentMoods(rctx, userID)
	if err != nil {
		moods = nil
	}
	events, err := s.store.GetUpcomingEvents(rctx, userID)
	if err != nil {
		events = nil
	}
	steps, err := s.store.GetDailySteps(rctx, userID)
	if err != nil {
		steps = nil
	}

	report := sccs.BuildReport(score, moods, events, steps, time.Now())
	utils.CacheSetJSON(cacheKey, report, 5*time.Minute)
	ctx.JSON(200, report)
}

// leaderboardEntry is one row of the ranked score table.
type leaderboardEntry struct {
	UserID         uint   `json:"userId"`
	Username       string `json:"username"`
	AvatarInitials string `json:"avatarInitials"`
	Score          int    `json:"score"`
	Rank           int    `json:"rank"`
	Tier           string `json:"tier"`
	RecentGrowth   int    `json:"recentGrowth"`
	IsCurrentUser  bool   `json:"isCurrentUser,omitempty"`
}

// Leaderboard returns the ranked score table. The data is a fixed mock
// payload until real ranking ships.
func (s *SccsController) Leaderboard(ctx *gin.Context) {
	const cacheKey = "cache:sccs:leaderboard"
	if b, ok := utils.CacheGetBytes(cacheKey); ok {
		ctx.Data(200, "application/json", b)
		return
	}

	entries := []leaderboardEntry{
		{UserID: 5, Username: "AngelaT", AvatarInitials: "AT", Score: 92, Rank: 1, Tier: "platinum", RecentGrowth: 12},
		{UserID: 8, Username: "MarcusB", AvatarInitials: "MB", Score: 88, Rank: 2, Tier: "gold", RecentGrowth: 5},
		{UserID: 4, Username: "SarahK", AvatarInitials: "SK", Score: 85, Rank: 3, Tier: "gold", RecentGrowth: 7},
		{UserID: 10, Username: "DavidW", AvatarInitials: "DW", Score: 81, Rank: 4, Tier: "gold", RecentGrowth: 3},
		{UserID: 2, Username: "jsmith", AvatarInitials: "JS", Score: 73, Rank: 5, Tier: "silver", RecentGrowth: 9, IsCurrentUser: true},
		{UserID: 12, Username: "RobertL", AvatarInitials: "RL", Score: 70, Rank: 6, Tier: "silver", RecentGrowth: 4},
		{UserID: 7, Username: "TanyaM", AvatarInitials: "TM", Score: 67, Rank: 7, Tier: "silver", RecentGrowth: 2},
		{UserID: 15, Username: "KristenF", AvatarInitials: "KF", Score: 62, Rank: 8, Tier: "silver", RecentGrowth: 8},
		{UserID: 20, Username: "MichaelC", AvatarInitials: "MC", Score: 58, Rank: 9, Tier: "bronze", RecentGrowth: 6},
		{UserID: 18, Username: "JasonT", AvatarInitials: "JT", Score: 53, Rank: 10, Tier: "bronze", RecentGrowth: 11},
	}

	payload := gin.H{
		"userRank":    5,
		"totalUsers":  253,
		"percentile":  98,
		"leaderboard": entries,
	}
	utils.CacheSetJSON(cacheKey, payload, time.Hour)
	ctx.JSON(200, payload)
}
