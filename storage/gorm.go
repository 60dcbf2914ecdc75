package storage

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/saintecare/sainte/models"
)

// GormStorage is the durable MySQL-backed implementation.
type GormStorage struct {
	db *gorm.DB
}

// NewGormStorage wraps an initialized gorm connection.
func NewGormStorage(db *gorm.DB) *GormStorage {
	return &GormStorage{db: db}
}

func wrapNotFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}

// Users

func (g *GormStorage) GetUser(ctx context.Context, id uint) (*models.User, error) {
	var user models.User
	if err := g.db.WithContext(ctx).First(&user, id).Error; err != nil {
		return nil, wrapNotFound(err)
	}
	return &user, nil
}

func (g *GormStorage) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	var user models.User
	if err := g.db.WithContext(ctx).Where("username = ?", username).First(&user).Error; err != nil {
		return nil, wrapNotFound(err)
	}
	return &user, nil
}

func (g *GormStorage) CreateUser(ctx context.Context, user *models.User) error {
	return g.db.WithContext(ctx).Create(user).Error
}

// Daily steps

func (g *GormStorage) GetDailySteps(ctx context.Context, userID uint) ([]models.DailyStep, error) {
	steps := []models.DailyStep{}
	if err := g.db.WithContext(ctx).Where("user_id = ?", userID).Order("id").Find(&steps).Error; err != nil {
		return nil, err
	}
	return steps, nil
}

func (g *GormStorage) GetDailyStep(ctx context.Context, id uint) (*models.DailyStep, error) {
	var step models.DailyStep
	if err := g.db.WithContext(ctx).First(&step, id).Error; err != nil {
		return nil, wrapNotFound(err)
	}
	return &step, nil
}

func (g *GormStorage) CreateDailyStep(ctx context.Context, step *models.DailyStep) error {
	return g.db.WithContext(ctx).Create(step).Error
}

func (g *GormStorage) UpdateDailyStep(ctx context.Context, id uint, completed bool) (*models.DailyStep, error) {
	var step models.DailyStep
	if err := g.db.WithContext(ctx).First(&step, id).Error; err != nil {
		return nil, wrapNotFound(err)
	}
	if err := g.db.WithContext(ctx).Model(&step).Update("completed", completed).Error; err != nil {
		return nil, err
	}
	step.Completed = completed
	return &step, nil
}

func (g *GormStorage) DeleteDailyStep(ctx context.Context, id uint) error {
	res := g.db.WithContext(ctx).Delete(&models.DailyStep{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Moods

func (g *GormStorage) GetRecentMoods(ctx context.Context, userID uint) ([]models.Mood, error) {
	moods := []models.Mood{}
	err := g.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("date DESC, id DESC").
		Limit(recentMoodLimit).
		Find(&moods).Error
	if err != nil {
		return nil, err
	}
	return moods, nil
}

func (g *GormStorage) CreateMood(ctx context.Context, mood *models.Mood) error {
	return g.db.WithContext(ctx).Create(mood).Error
}

// SCCS scores

func (g *GormStorage) GetCurrentSccsScore(ctx context.Context, userID uint) (*models.SccsScore, error) {
	var score models.SccsScore
	err := g.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("date DESC").
		First(&score).Error
	if err != nil {
		return nil, wrapNotFound(err)
	}
	return &score, nil
}

func (g *GormStorage) CreateSccsScore(ctx context.Context, score *models.SccsScore) error {
	return g.db.WithContext(ctx).Create(score).Error
}

// Events

func (g *GormStorage) GetUpcomingEvents(ctx context.Context, userID uint) ([]models.Event, error) {
	today := time.Now().Format("2006-01-02")
	events := []models.Event{}
	err := g.db.WithContext(ctx).
		Where("user_id = ? AND date >= ?", userID, today).
		Order("date ASC, id ASC").
		Find(&events).Error
	if err != nil {
		return nil, err
	}
	return events, nil
}

func (g *GormStorage) CreateEvent(ctx context.Context, event *models.Event) error {
	return g.db.WithContext(ctx).Create(event).Error
}

func (g *GormStorage) UpdateEventStatus(ctx context.Context, id, userID uint, status string) (*models.Event, error) {
	var event models.Event
	err := g.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&event).Error
	if err != nil {
		return nil, wrapNotFound(err)
	}
	if err := g.db.WithContext(ctx).Model(&event).Update("status", status).Error; err != nil {
		return nil, err
	}
	event.Status = status
	return &event, nil
}

// Care team

func (g *GormStorage) GetCareTeam(ctx context.Context, userID uint) ([]models.CareTeamMember, error) {
	members := []models.CareTeamMember{}
	if err := g.db.WithContext(ctx).Where("user_id = ?", userID).Order("id").Find(&members).Error; err != nil {
		return nil, err
	}
	return members, nil
}

func (g *GormStorage) CreateCareTeamMember(ctx context.Context, member *models.CareTeamMember) error {
	return g.db.WithContext(ctx).Create(member).Error
}

// Resources

func (g *GormStorage) GetRecommendedResources(ctx context.Context, userID uint) ([]models.RecommendedResource, error) {
	resources := []models.Resource{}
	if err := g.db.WithContext(ctx).Order("id").Find(&resources).Error; err != nil {
		return nil, err
	}
	bookmarks := []models.UserResource{}
	if err := g.db.WithContext(ctx).Where("user_id = ? AND is_bookmarked = ?", userID, true).Find(&bookmarks).Error; err != nil {
		return nil, err
	}
	bookmarked := make(map[uint]bool, len(bookmarks))
	for _, b := range bookmarks {
		bookmarked[b.ResourceID] = true
	}
	recommended := make([]models.RecommendedResource, 0, len(resources))
	for _, r := range resources {
		recommended = append(recommended, models.RecommendedResource{
			Resource:     r,
			IsBookmarked: bookmarked[r.ID],
		})
	}
	return recommended, nil
}

func (g *GormStorage) CreateResource(ctx context.Context, resource *models.Resource) error {
	return g.db.WithContext(ctx).Create(resource).Error
}

// BookmarkResource upserts on the unique (user_id, resource_id) pair so a
// repeat bookmark updates the existing row instead of duplicating it.
func (g *GormStorage) BookmarkResource(ctx context.Context, userID, resourceID uint, bookmarked bool) (*models.UserResource, error) {
	var existing models.UserResource
	err := g.db.WithContext(ctx).
		Where("user_id = ? AND resource_id = ?", userID, resourceID).
		First(&existing).Error
	if err == nil {
		if err := g.db.WithContext(ctx).Model(&existing).Update("is_bookmarked", bookmarked).Error; err != nil {
			return nil, err
		}
		existing.IsBookmarked = bookmarked
		return &existing, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	ur := models.UserResource{
		UserID:       userID,
		ResourceID:   resourceID,
		IsBookmarked: bookmarked,
	}
	if err := g.db.WithContext(ctx).Create(&ur).Error; err != nil {
		return nil, err
	}
	return &ur, nil
}

func (g *GormStorage) RemoveResourceBookmark(ctx context.Context, userID, resourceID uint) error {
	res := g.db.WithContext(ctx).
		Where("user_id = ? AND resource_id = ?", userID, resourceID).
		Delete(&models.UserResource{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Chat messages

func (g *GormStorage) GetChatMessages(ctx context.Context, userID uint, sessionID string) ([]models.ChatMessage, error) {
	messages := []models.ChatMessage{}
	err := g.db.WithContext(ctx).
		Where("user_id = ? AND chat_session_id = ?", userID, sessionID).
		Order("created_at ASC, id ASC").
		Find(&messages).Error
	if err != nil {
		return nil, err
	}
	return messages, nil
}

func (g *GormStorage) CreateChatMessage(ctx context.Context, message *models.ChatMessage) error {
	return g.db.WithContext(ctx).Create(message).Error
}

// AI insights

func (g *GormStorage) GetLatestAiInsight(ctx context.Context, userID uint) (*models.AiInsight, error) {
	var insight models.AiInsight
	err := g.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		First(&insight).Error
	if err != nil {
		return nil, wrapNotFound(err)
	}
	return &insight, nil
}

func (g *GormStorage) CreateAiInsight(ctx context.Context, insight *models.AiInsight) error {
	return g.db.WithContext(ctx).Create(insight).Error
}
