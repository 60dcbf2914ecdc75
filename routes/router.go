package routes

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/saintecare/sainte/ai"
	"github.com/saintecare/sainte/config"
	"github.com/saintecare/sainte/controllers"
	"github.com/saintecare/sainte/middleware"
	"github.com/saintecare/sainte/storage"
	"github.com/saintecare/sainte/utils"
)

// SetupRouter wires routes, middlewares, and controllers.
func SetupRouter(store storage.Storage, companion *ai.Companion) *gin.Engine {
	cfg := config.Get()
	switch strings.ToLower(cfg.GinMode) {
	case "debug":
		gin.SetMode(gin.DebugMode)
	case "test":
		gin.SetMode(gin.TestMode)
	default:
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	// Replace default console logger with file-based zap logger
	gl, err := utils.NewRollingFileLogger(cfg.GinPath, cfg.LogLevel, cfg.LogMaxSizeMB, cfg.LogMaxBackups, cfg.LogMaxAgeDays, cfg.LogCompress)
	if err == nil {
		r.Use(utils.Ginzap(gl, time.RFC3339, true))
		r.Use(utils.RecoveryWithZap(gl, false))
	} else {
		// fallback to default recovery if logger failed to init
		r.Use(gin.Recovery())
	}

	corsCfg := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type", "X-User-ID"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	if len(cfg.AllowedOrigins) == 1 && cfg.AllowedOrigins[0] == "*" {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = cfg.AllowedOrigins
	}
	r.Use(cors.New(corsCfg))

	r.Static("/static", "./static")

	r.GET("/", func(c *gin.Context) {
		c.File("./static/index.html")
	})

	r.GET("/health", func(ctx *gin.Context) {
		ctx.JSON(200, gin.H{"status": "ok"})
	})

	userController := controllers.NewUserController(store)
	stepController := controllers.NewStepController(store)
	moodController := controllers.NewMoodController(store)
	sccsController := controllers.NewSccsController(store)
	eventController := controllers.NewEventController(store)
	careTeamController := controllers.NewCareTeamController(store)
	resourceController := controllers.NewResourceController(store)
	aiController := controllers.NewAiController(store, companion)

	api := r.Group("/api")
	api.Use(middleware.CurrentUser())

	api.GET("/users/current", userController.GetCurrentUser)

	api.GET("/daily-steps", stepController.ListSteps)
	api.POST("/daily-steps", stepController.CreateStep)
	api.PATCH("/daily-steps/:id", stepController.UpdateStep)

	api.GET("/moods/recent", moodController.RecentMoods)
	api.POST("/moods", moodController.CreateMood)

	api.GET("/sccs/current", sccsController.CurrentScore)
	api.GET("/sccs/report", sccsController.Report)
	api.GET("/sccs/leaderboard", sccsController.Leaderboard)

	api.GET("/events/upcoming", eventController.UpcomingEvents)
	api.POST("/events/:id/rsvp", eventController.RSVP)

	api.GET("/care-team", careTeamController.ListCareTeam)

	api.GET("/resources/recommended", resourceController.Recommended)
	api.POST("/resources/:id/bookmark", resourceController.Bookmark)
	api.DELETE("/resources/:id/bookmark", resourceController.RemoveBookmark)

	// Completion-backed endpoints sit behind the rate limiter; the
	// upstream call is the expensive path.
	aiGroup := api.Group("/ai")
	aiGroup.Use(middleware.RateLimitMiddleware())
	aiGroup.GET("/personalized-message", aiController.PersonalizedMessage)
	aiGroup.POST("/chat/new", aiController.NewChatSession)
	aiGroup.GET("/chat/:sessionId", aiController.GetChatMessages)
	aiGroup.POST("/chat/:sessionId", aiController.PostChatMessage)
	aiGroup.GET("/insights", aiController.Insights)

	r.NoRoute(func(ctx *gin.Context) {
		path := ctx.Request.URL.Path
		if strings.HasPrefix(path, "/api/") {
			ctx.JSON(http.StatusNotFound, gin.H{"message": "api route not found"})
			return
		}
		if strings.HasPrefix(path, "/static/") {
			ctx.JSON(http.StatusNotFound, gin.H{"message": "static asset not found"})
			return
		}
		// Remaining paths fall back to the SPA entry point.
		ctx.Status(http.StatusOK)
		ctx.File("./static/index.html")
	})

	return r
}
