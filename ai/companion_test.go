package ai

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saintecare/sainte/models"
)

// fakeCompleter records the last request and returns canned output.
type fakeCompleter struct {
	text    string
	err     error
	lastReq Request
}

func (f *fakeCompleter) Complete(ctx context.Context, req Request) (string, error) {
	f.lastReq = req
	return f.text, f.err
}

func testUserContext() UserContext {
	return UserContext{
		User: &models.User{FirstName: "James", LastName: "Smith"},
		RecentMoods: []models.Mood{
			{Mood: "good", Emoji: "🙂", Date: "2025-06-14"},
		},
		DailySteps: []models.DailyStep{
			{Title: "Attend group meeting", Completed: true},
			{Title: "Call housing counselor"},
		},
		UpcomingEvents: []models.Event{
			{Title: "Job Readiness Workshop", Date: "2025-06-16", Status: "upcoming"},
		},
	}
}

func TestPersonalizedMessage(t *testing.T) {
	fake := &fakeCompleter{text: "Good morning, James. I noticed you logged a good mood yesterday."}
	c := NewCompanion(fake)

	got := c.PersonalizedMessage(context.Background(), testUserContext())

	assert.Equal(t, fake.text, got)
	require.Len(t, fake.lastReq.Messages, 2)
	assert.Equal(t, "system", fake.lastReq.Messages[0].Role)
	assert.Contains(t, fake.lastReq.Messages[1].Content, "James")
	assert.Contains(t, fake.lastReq.Messages[1].Content, "1 completed tasks, 1 pending tasks")
	assert.InDelta(t, 0.7, fake.lastReq.Temperature, 0.001)
	assert.Equal(t, 150, fake.lastReq.MaxTokens)
}

func TestPersonalizedMessageFallsBackOnError(t *testing.T) {
	c := NewCompanion(&fakeCompleter{err: errors.New("upstream down")})

	got := c.PersonalizedMessage(context.Background(), testUserContext())

	assert.Equal(t, fallbackGreeting, got)
}

func TestPersonalizedMessageEmptyResponse(t *testing.T) {
	c := NewCompanion(&fakeCompleter{text: "   "})

	got := c.PersonalizedMessage(context.Background(), testUserContext())

	assert.Equal(t, "I'm here to support you today. How are you feeling?", got)
}

func TestChatReplyWindowsHistory(t *testing.T) {
	fake := &fakeCompleter{text: "That sounds like real progress."}
	c := NewCompanion(fake)

	history := make([]models.ChatMessage, 15)
	for i := range history {
		role := "user"
		if i%2 == 1 {
			role = "assistant"
		}
		history[i] = models.ChatMessage{Role: role, Content: fmt.Sprintf("turn %d", i)}
	}

	got := c.ChatReply(context.Background(), history, "I got the job")

	assert.Equal(t, fake.text, got)
	// system + last 10 history turns + the new message
	require.Len(t, fake.lastReq.Messages, 12)
	assert.Equal(t, "system", fake.lastReq.Messages[0].Role)
	assert.Equal(t, "turn 5", fake.lastReq.Messages[1].Content)
	assert.Equal(t, "I got the job", fake.lastReq.Messages[11].Content)
}

func TestChatReplyFallsBackOnError(t *testing.T) {
	c := NewCompanion(&fakeCompleter{err: errors.New("timeout")})

	got := c.ChatReply(context.Background(), nil, "hello")

	assert.Equal(t, fallbackChat, got)
}

func TestProgressInsights(t *testing.T) {
	fake := &fakeCompleter{text: `{
		"insights": "You have shown steady engagement this week.",
		"strengthsIdentified": ["Consistency", "Openness"],
		"suggestedResources": ["Peer support circle"]
	}`}
	c := NewCompanion(fake)

	got := c.ProgressInsights(context.Background(), testUserContext())

	assert.Equal(t, "You have shown steady engagement this week.", got.Insights)
	assert.Equal(t, []string{"Consistency", "Openness"}, got.StrengthsIdentified)
	assert.Equal(t, []string{"Peer support circle"}, got.SuggestedResources)
	assert.True(t, fake.lastReq.JSONResponse)
	assert.InDelta(t, 0.5, fake.lastReq.Temperature, 0.001)
}

func TestProgressInsightsPartialResponse(t *testing.T) {
	c := NewCompanion(&fakeCompleter{text: `{"insights": "Keep going."}`})

	got := c.ProgressInsights(context.Background(), testUserContext())

	assert.Equal(t, "Keep going.", got.Insights)
	assert.NotEmpty(t, got.StrengthsIdentified)
	assert.NotEmpty(t, got.SuggestedResources)
}

func TestProgressInsightsUnparseable(t *testing.T) {
	c := NewCompanion(&fakeCompleter{text: "sorry, no JSON here"})

	got := c.ProgressInsights(context.Background(), testUserContext())

	assert.Equal(t, fallbackInsights, got.Insights)
	assert.NotEmpty(t, got.StrengthsIdentified)
	assert.NotEmpty(t, got.SuggestedResources)
}

func TestProgressInsightsFallsBackOnError(t *testing.T) {
	c := NewCompanion(&fakeCompleter{err: errors.New("rate limited")})

	got := c.ProgressInsights(context.Background(), testUserContext())

	assert.Equal(t, fallbackInsights, got.Insights)
}
