package storage

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/saintecare/sainte/models"
)

// MemoryStorage keeps all records in process-local maps. It is meant for
// development and tests; nothing survives a restart.
type MemoryStorage struct {
	mu sync.RWMutex

	users           map[uint]models.User
	dailySteps      map[uint]models.DailyStep
	moods           map[uint]models.Mood
	sccsScores      map[uint]models.SccsScore
	events          map[uint]models.Event
	careTeamMembers map[uint]models.CareTeamMember
	resources       map[uint]models.Resource
	userResources   map[uint]models.UserResource
	chatMessages    map[uint]models.ChatMessage
	aiInsights      map[uint]models.AiInsight

	nextID map[string]uint
}

// NewMemoryStorage returns an empty in-memory store.
func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{
		users:           map[uint]models.User{},
		dailySteps:      map[uint]models.DailyStep{},
		moods:           map[uint]models.Mood{},
		sccsScores:      map[uint]models.SccsScore{},
		events:          map[uint]models.Event{},
		careTeamMembers: map[uint]models.CareTeamMember{},
		resources:       map[uint]models.Resource{},
		userResources:   map[uint]models.UserResource{},
		chatMessages:    map[uint]models.ChatMessage{},
		aiInsights:      map[uint]models.AiInsight{},
		nextID:          map[string]uint{},
	}
}

func (m *MemoryStorage) allocID(kind string) uint {
	m.nextID[kind]++
	return m.nextID[kind]
}

// Users

func (m *MemoryStorage) GetUser(ctx context.Context, id uint) (*models.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if user, ok := m.users[id]; ok {
		return &user, nil
	}
	return nil, ErrNotFound
}

func (m *MemoryStorage) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, user := range m.users {
		if user.Username == username {
			u := user
			return &u, nil
		}
	}
	return nil, ErrNotFound
}

func (m *MemoryStorage) CreateUser(ctx context.Context, user *models.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	user.ID = m.allocID("user")
	if user.Role == "" {
		user.Role = "client"
	}
	if user.Tier == "" {
		user.Tier = "bronze"
	}
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now()
	}
	m.users[user.ID] = *user
	return nil
}

// Daily steps

func (m *MemoryStorage) GetDailySteps(ctx context.Context, userID uint) ([]models.DailyStep, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	steps := []models.DailyStep{}
	for _, step := range m.dailySteps {
		if step.UserID == userID {
			steps = append(steps, step)
		}
	}
	sort.Slice(steps, func(i, j int) bool { return steps[i].ID < steps[j].ID })
	return steps, nil
}

func (m *MemoryStorage) GetDailyStep(ctx context.Context, id uint) (*models.DailyStep, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if step, ok := m.dailySteps[id]; ok {
		return &step, nil
	}
	return nil, ErrNotFound
}

func (m *MemoryStorage) CreateDailyStep(ctx context.Context, step *models.DailyStep) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	step.ID = m.allocID("daily_step")
	if step.CreatedAt.IsZero() {
		step.CreatedAt = time.Now()
	}
	m.dailySteps[step.ID] = *step
	return nil
}

func (m *MemoryStorage) UpdateDailyStep(ctx context.Context, id uint, completed bool) (*models.DailyStep, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	step, ok := m.dailySteps[id]
	if !ok {
		return nil, ErrNotFound
	}
	step.Completed = completed
	m.dailySteps[id] = step
	return &step, nil
}

func (m *MemoryStorage) DeleteDailyStep(ctx context.Context, id uint) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.dailySteps[id]; !ok {
		return ErrNotFound
	}
	delete(m.dailySteps, id)
	return nil
}

// Moods

func (m *MemoryStorage) GetRecentMoods(ctx context.Context, userID uint) ([]models.Mood, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	moods := []models.Mood{}
	for _, mood := range m.moods {
		if mood.UserID == userID {
			moods = append(moods, mood)
		}
	}
	sort.Slice(moods, func(i, j int) bool {
		if moods[i].Date != moods[j].Date {
			return moods[i].Date > moods[j].Date
		}
		return moods[i].ID > moods[j].ID
	})
	if len(moods) > recentMoodLimit {
		moods = moods[:recentMoodLimit]
	}
	return moods, nil
}

func (m *MemoryStorage) CreateMood(ctx context.Context, mood *models.Mood) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	mood.ID = m.allocID("mood")
	if mood.CreatedAt.IsZero() {
		mood.CreatedAt = time.Now()
	}
	m.moods[mood.ID] = *mood
	return nil
}

// SCCS scores

func (m *MemoryStorage) GetCurrentSccsScore(ctx context.Context, userID uint) (*models.SccsScore, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var latest *models.SccsScore
	for _, score := range m.sccsScores {
		if score.UserID != userID {
			continue
		}
		s := score
		if latest == nil || s.Date > latest.Date {
			latest = &s
		}
	}
	if latest == nil {
		return nil, ErrNotFound
	}
	return latest, nil
}

func (m *MemoryStorage) CreateSccsScore(ctx context.Context, score *models.SccsScore) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	score.ID = m.allocID("sccs_score")
	if score.CreatedAt.IsZero() {
		score.CreatedAt = time.Now()
	}
	m.sccsScores[score.ID] = *score
	return nil
}

// Events

func (m *MemoryStorage) GetUpcomingEvents(ctx context.Context, userID uint) ([]models.Event, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	today := time.Now().Format("2006-01-02")
	events := []models.Event{}
	for _, event := range m.events {
		if event.UserID == userID && event.Date >= today {
			events = append(events, event)
		}
	}
	sort.Slice(events, func(i, j int) bool {
		if events[i].Date != events[j].Date {
			return events[i].Date < events[j].Date
		}
		return events[i].ID < events[j].ID
	})
	return events, nil
}

func (m *MemoryStorage) CreateEvent(ctx context.Context, event *models.Event) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	event.ID = m.allocID("event")
	if event.Status == "" {
		event.Status = "upcoming"
	}
	if event.CreatedAt.IsZero() {
		event.CreatedAt = time.Now()
	}
	m.events[event.ID] = *event
	return nil
}

func (m *MemoryStorage) UpdateEventStatus(ctx context.Context, id, userID uint, status string) (*models.Event, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	event, ok := m.events[id]
	if !ok || event.UserID != userID {
		return nil, ErrNotFound
	}
	event.Status = status
	m.events[id] = event
	return &event, nil
}

// Care team

func (m *MemoryStorage) GetCareTeam(ctx context.Context, userID uint) ([]models.CareTeamMember, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	members := []models.CareTeamMember{}
	for _, member := range m.careTeamMembers {
		if member.UserID == userID {
			members = append(members, member)
		}
	}
	sort.Slice(members, func(i, j int) bool { return members[i].ID < members[j].ID })
	return members, nil
}

func (m *MemoryStorage) CreateCareTeamMember(ctx context.Context, member *models.CareTeamMember) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	member.ID = m.allocID("care_team_member")
	if member.CreatedAt.IsZero() {
		member.CreatedAt = time.Now()
	}
	m.careTeamMembers[member.ID] = *member
	return nil
}

// Resources

func (m *MemoryStorage) GetRecommendedResources(ctx context.Context, userID uint) ([]models.RecommendedResource, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	bookmarked := map[uint]bool{}
	for _, ur := range m.userResources {
		if ur.UserID == userID && ur.IsBookmarked {
			bookmarked[ur.ResourceID] = true
		}
	}
	recommended := []models.RecommendedResource{}
	for _, resource := range m.resources {
		recommended = append(recommended, models.RecommendedResource{
			Resource:     resource,
			IsBookmarked: bookmarked[resource.ID],
		})
	}
	sort.Slice(recommended, func(i, j int) bool { return recommended[i].ID < recommended[j].ID })
	return recommended, nil
}

func (m *MemoryStorage) CreateResource(ctx context.Context, resource *models.Resource) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	resource.ID = m.allocID("resource")
	if resource.CreatedAt.IsZero() {
		resource.CreatedAt = time.Now()
	}
	m.resources[resource.ID] = *resource
	return nil
}

// BookmarkResource upserts: an existing (user, resource) row has its flag
// updated, enforced here by linear scan rather than a uniqueness constraint.
func (m *MemoryStorage) BookmarkResource(ctx context.Context, userID, resourceID uint, bookmarked bool) (*models.UserResource, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for id, ur := range m.userResources {
		if ur.UserID == userID && ur.ResourceID == resourceID {
			ur.IsBookmarked = bookmarked
			m.userResources[id] = ur
			return &ur, nil
		}
	}
	ur := models.UserResource{
		ID:           m.allocID("user_resource"),
		UserID:       userID,
		ResourceID:   resourceID,
		IsBookmarked: bookmarked,
		CreatedAt:    time.Now(),
	}
	m.userResources[ur.ID] = ur
	return &ur, nil
}

func (m *MemoryStorage) RemoveResourceBookmark(ctx context.Context, userID, resourceID uint) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for id, ur := range m.userResources {
		if ur.UserID == userID && ur.ResourceID == resourceID {
			delete(m.userResources, id)
			return nil
		}
	}
	return ErrNotFound
}

// Chat messages

func (m *MemoryStorage) GetChatMessages(ctx context.Context, userID uint, sessionID string) ([]models.ChatMessage, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	messages := []models.ChatMessage{}
	for _, msg := range m.chatMessages {
		if msg.UserID == userID && msg.ChatSessionID == sessionID {
			messages = append(messages, msg)
		}
	}
	sort.Slice(messages, func(i, j int) bool {
		if !messages[i].CreatedAt.Equal(messages[j].CreatedAt) {
			return messages[i].CreatedAt.Before(messages[j].CreatedAt)
		}
		return messages[i].ID < messages[j].ID
	})
	return messages, nil
}

func (m *MemoryStorage) CreateChatMessage(ctx context.Context, message *models.ChatMessage) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	message.ID = m.allocID("chat_message")
	if message.CreatedAt.IsZero() {
		message.CreatedAt = time.Now()
	}
	m.chatMessages[message.ID] = *message
	return nil
}

// AI insights

func (m *MemoryStorage) GetLatestAiInsight(ctx context.Context, userID uint) (*models.AiInsight, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var latest *models.AiInsight
	for _, insight := range m.aiInsights {
		if insight.UserID != userID {
			continue
		}
		i := insight
		if latest == nil || i.CreatedAt.After(latest.CreatedAt) {
			latest = &i
		}
	}
	if latest == nil {
		return nil, ErrNotFound
	}
	return latest, nil
}

func (m *MemoryStorage) CreateAiInsight(ctx context.Context, insight *models.AiInsight) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	insight.ID = m.allocID("ai_insight")
	if insight.CreatedAt.IsZero() {
		insight.CreatedAt = time.Now()
	}
	m.aiInsights[insight.ID] = *insight
	return nil
}
