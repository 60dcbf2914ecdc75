package storage

import (
	"context"
	"errors"

	"github.com/saintecare/sainte/models"
)

// ErrNotFound is returned when a requested record does not exist.
var ErrNotFound = errors.New("record not found")

// recentMoodLimit bounds how many mood entries a recent-moods lookup returns.
const recentMoodLimit = 7

// Storage is the persistence contract. Two implementations exist: a
// volatile map-backed one for development and tests, and a MySQL-backed
// one for durable deployments. The driver is selected at process start.
type Storage interface {
	// Users
	GetUser(ctx context.Context, id uint) (*models.User, error)
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
	CreateUser(ctx context.Context, user *models.User) error

	// Daily steps
	GetDailySteps(ctx context.Context, userID uint) ([]models.DailyStep, error)
	GetDailyStep(ctx context.Context, id uint) (*models.DailyStep, error)
	CreateDailyStep(ctx context.Context, step *models.DailyStep) error
	UpdateDailyStep(ctx context.Context, id uint, completed bool) (*models.DailyStep, error)
	DeleteDailyStep(ctx context.Context, id uint) error

	// Moods, most recent date first, capped at recentMoodLimit
	GetRecentMoods(ctx context.Context, userID uint) ([]models.Mood, error)
	CreateMood(ctx context.Context, mood *models.Mood) error

	// SCCS scores
	GetCurrentSccsScore(ctx context.Context, userID uint) (*models.SccsScore, error)
	CreateSccsScore(ctx context.Context, score *models.SccsScore) error

	// Events, ascending by date, today or later
	GetUpcomingEvents(ctx context.Context, userID uint) ([]models.Event, error)
	CreateEvent(ctx context.Context, event *models.Event) error
	UpdateEventStatus(ctx context.Context, id, userID uint, status string) (*models.Event, error)

	// Care team
	GetCareTeam(ctx context.Context, userID uint) ([]models.CareTeamMember, error)
	CreateCareTeamMember(ctx context.Context, member *models.CareTeamMember) error

	// Resources and bookmarks
	GetRecommendedResources(ctx context.Context, userID uint) ([]models.RecommendedResource, error)
	CreateResource(ctx context.Context, resource *models.Resource) error
	BookmarkResource(ctx context.Context, userID, resourceID uint, bookmarked bool) (*models.UserResource, error)
	RemoveResourceBookmark(ctx context.Context, userID, resourceID uint) error

	// AI chat, session scoped, ascending by creation time
	GetChatMessages(ctx context.Context, userID uint, sessionID string) ([]models.ChatMessage, error)
	CreateChatMessage(ctx context.Context, message *models.ChatMessage) error

	// AI insights
	GetLatestAiInsight(ctx context.Context, userID uint) (*models.AiInsight, error)
	CreateAiInsight(ctx context.Context, insight *models.AiInsight) error
}
