package storage

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saintecare/sainte/models"
)

func TestMemoryDailyStepLifecycle(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStorage()

	step := &models.DailyStep{UserID: 1, Title: "Attend appointment", DueDate: "2025-06-15"}
	require.NoError(t, s.CreateDailyStep(ctx, step))
	require.NotZero(t, step.ID)

	got, err := s.GetDailyStep(ctx, step.ID)
	require.NoError(t, err)
	assert.Equal(t, "Attend appointment", got.Title)
	assert.False(t, got.Completed)

	updated, err := s.UpdateDailyStep(ctx, step.ID, true)
	require.NoError(t, err)
	assert.True(t, updated.Completed)

	require.NoError(t, s.DeleteDailyStep(ctx, step.ID))
	_, err = s.GetDailyStep(ctx, step.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, s.DeleteDailyStep(ctx, step.ID), ErrNotFound)
}

func TestMemoryStepsScopedToUser(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStorage()

	require.NoError(t, s.CreateDailyStep(ctx, &models.DailyStep{UserID: 1, Title: "mine"}))
	require.NoError(t, s.CreateDailyStep(ctx, &models.DailyStep{UserID: 2, Title: "theirs"}))

	steps, err := s.GetDailySteps(ctx, 1)
	require.NoError(t, err)
	require.Len(t, steps, 1)
	assert.Equal(t, "mine", steps[0].Title)
}

func TestMemoryRecentMoodsOrderAndLimit(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStorage()

	for i := 0; i < 10; i++ {
		mood := &models.Mood{
			UserID: 1,
			Mood:   "good",
			Emoji:  "🙂",
			Date:   fmt.Sprintf("2025-06-%02d", i+1),
		}
		require.NoError(t, s.CreateMood(ctx, mood))
	}

	moods, err := s.GetRecentMoods(ctx, 1)
	require.NoError(t, err)
	require.Len(t, moods, recentMoodLimit)

	// Newest date first.
	assert.Equal(t, "2025-06-10", moods[0].Date)
	for i := 1; i < len(moods); i++ {
		assert.True(t, moods[i].Date < moods[i-1].Date)
	}
}

func TestMemoryCurrentSccsScoreIsLatest(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStorage()

	_, err := s.GetCurrentSccsScore(ctx, 1)
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, s.CreateSccsScore(ctx, &models.SccsScore{UserID: 1, Score: 700, Date: "2025-05-01"}))
	require.NoError(t, s.CreateSccsScore(ctx, &models.SccsScore{UserID: 1, Score: 742, Date: "2025-06-01"}))
	require.NoError(t, s.CreateSccsScore(ctx, &models.SccsScore{UserID: 2, Score: 999, Date: "2025-07-01"}))

	score, err := s.GetCurrentSccsScore(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 742, score.Score)
}

func TestMemoryUpcomingEvents(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStorage()

	past := time.Now().Add(-48 * time.Hour).Format("2006-01-02")
	soon := time.Now().Add(24 * time.Hour).Format("2006-01-02")
	later := time.Now().Add(72 * time.Hour).Format("2006-01-02")

	require.NoError(t, s.CreateEvent(ctx, &models.Event{UserID: 1, Title: "later", Date: later}))
	require.NoError(t, s.CreateEvent(ctx, &models.Event{UserID: 1, Title: "past", Date: past}))
	require.NoError(t, s.CreateEvent(ctx, &models.Event{UserID: 1, Title: "soon", Date: soon}))

	events, err := s.GetUpcomingEvents(ctx, 1)
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, "soon", events[0].Title)
	assert.Equal(t, "later", events[1].Title)
	assert.Equal(t, "upcoming", events[0].Status)
}

func TestMemoryUpdateEventStatus(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStorage()

	event := &models.Event{UserID: 1, Title: "group session", Date: "2099-01-01"}
	require.NoError(t, s.CreateEvent(ctx, event))

	updated, err := s.UpdateEventStatus(ctx, event.ID, 1, "confirmed")
	require.NoError(t, err)
	assert.Equal(t, "confirmed", updated.Status)

	// Another user's id does not match the row.
	_, err = s.UpdateEventStatus(ctx, event.ID, 2, "confirmed")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryBookmarkUpsert(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStorage()

	require.NoError(t, s.CreateResource(ctx, &models.Resource{Title: "Housing Guide"}))

	first, err := s.BookmarkResource(ctx, 1, 1, true)
	require.NoError(t, err)
	assert.True(t, first.IsBookmarked)

	// Second call mutates the same row instead of inserting another.
	second, err := s.BookmarkResource(ctx, 1, 1, false)
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.False(t, second.IsBookmarked)

	recommended, err := s.GetRecommendedResources(ctx, 1)
	require.NoError(t, err)
	require.Len(t, recommended, 1)
	assert.False(t, recommended[0].IsBookmarked)

	_, err = s.BookmarkResource(ctx, 1, 1, true)
	require.NoError(t, err)
	recommended, err = s.GetRecommendedResources(ctx, 1)
	require.NoError(t, err)
	assert.True(t, recommended[0].IsBookmarked)

	require.NoError(t, s.RemoveResourceBookmark(ctx, 1, 1))
	assert.ErrorIs(t, s.RemoveResourceBookmark(ctx, 1, 1), ErrNotFound)
}

func TestMemoryChatMessagesBySession(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStorage()

	base := time.Now()
	for i := 0; i < 3; i++ {
		msg := &models.ChatMessage{
			UserID:        1,
			Role:          "user",
			Content:       fmt.Sprintf("turn %d", i),
			ChatSessionID: "session-a",
			CreatedAt:     base.Add(time.Duration(i) * time.Second),
		}
		require.NoError(t, s.CreateChatMessage(ctx, msg))
	}
	require.NoError(t, s.CreateChatMessage(ctx, &models.ChatMessage{
		UserID: 1, Role: "user", Content: "other", ChatSessionID: "session-b",
	}))

	messages, err := s.GetChatMessages(ctx, 1, "session-a")
	require.NoError(t, err)
	require.Len(t, messages, 3)
	assert.Equal(t, "turn 0", messages[0].Content)
	assert.Equal(t, "turn 2", messages[2].Content)
}

func TestMemoryLatestAiInsight(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStorage()

	_, err := s.GetLatestAiInsight(ctx, 1)
	assert.ErrorIs(t, err, ErrNotFound)

	old := &models.AiInsight{UserID: 1, Insights: "old", CreatedAt: time.Now().Add(-48 * time.Hour)}
	require.NoError(t, s.CreateAiInsight(ctx, old))
	fresh := &models.AiInsight{UserID: 1, Insights: "fresh", CreatedAt: time.Now()}
	require.NoError(t, s.CreateAiInsight(ctx, fresh))

	got, err := s.GetLatestAiInsight(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "fresh", got.Insights)
}

func TestSeed(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStorage()

	require.NoError(t, Seed(ctx, s))

	user, err := s.GetUserByUsername(ctx, "jsmith")
	require.NoError(t, err)
	assert.Equal(t, "James", user.FirstName)
	assert.NotEmpty(t, user.PasswordHash)
	assert.NotEqual(t, "password123", user.PasswordHash)

	steps, err := s.GetDailySteps(ctx, user.ID)
	require.NoError(t, err)
	assert.Len(t, steps, 3)

	moods, err := s.GetRecentMoods(ctx, user.ID)
	require.NoError(t, err)
	assert.Len(t, moods, 7)

	score, err := s.GetCurrentSccsScore(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, 742, score.Score)

	events, err := s.GetUpcomingEvents(ctx, user.ID)
	require.NoError(t, err)
	assert.Len(t, events, 2)

	team, err := s.GetCareTeam(ctx, user.ID)
	require.NoError(t, err)
	assert.Len(t, team, 2)

	resources, err := s.GetRecommendedResources(ctx, user.ID)
	require.NoError(t, err)
	assert.Len(t, resources, 2)
}
