package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/saintecare/sainte/models"
	"github.com/saintecare/sainte/utils"
)

// Fallback texts returned when the completion API is unreachable or
// returns garbage. Endpoints degrade to these instead of erroring.
const (
	fallbackGreeting = "I'm here to listen and support you today."
	fallbackChat     = "I apologize, but I'm having trouble processing your message right now. Could we try again in a moment?"
	fallbackInsights = "Looking at your recent activity, I see patterns of both challenges and growth. Each step you're taking is meaningful, even when progress feels slow."
)

const companionSystemPrompt = "You are SAINTE, a trauma-informed, client-centered AI companion that prioritizes healing, dignity and personal agency."

const chatSystemPrompt = `You are SAINTE, a trauma-informed, client-centered AI companion for justice-impacted individuals.

Guidelines:
- Always respond with empathy, warmth, and respect
- Prioritize the user's dignity and agency
- Use a conversational, supportive tone
- Avoid clinical jargon or overly formal language
- Never be judgmental about the user's past, choices, or challenges
- Ask thoughtful questions that help the user process their experiences
- If the user mentions self-harm or harming others, gently encourage them to speak with a human crisis counselor
- Remember that your role is supportive, not prescriptive - avoid giving specific medical, legal, or financial advice
- Celebrate small wins and acknowledge progress
- Keep responses fairly brief (3-5 sentences) and focused on what the user has shared`

// chatHistoryWindow bounds how many stored turns are sent as context.
const chatHistoryWindow = 10

// UserContext bundles the activity data interpolated into prompts.
type UserContext struct {
	User           *models.User
	RecentMoods    []models.Mood
	DailySteps     []models.DailyStep
	UpcomingEvents []models.Event
}

// InsightResult is the structured payload parsed from an insights completion.
type InsightResult struct {
	Insights            string   `json:"insights"`
	StrengthsIdentified []string `json:"strengthsIdentified"`
	SuggestedResources  []string `json:"suggestedResources"`
}

// Companion wraps the completion client with the three fixed prompt
// templates the app uses.
type Companion struct {
	client Completer
}

// NewCompanion creates a companion over the given completion client.
func NewCompanion(client Completer) *Companion {
	return &Companion{client: client}
}

// PersonalizedMessage generates a short greeting from the user's recent
// activity. Any failure degrades to the fixed fallback text.
func (c *Companion) PersonalizedMessage(ctx context.Context, uc UserContext) string {
	moodStr := "No recent mood logs"
	if len(uc.RecentMoods) > 0 {
		parts := make([]string, 0, len(uc.RecentMoods))
		for _, m := range uc.RecentMoods {
			parts = append(parts, fmt.Sprintf("%s: %s (%s)", m.Date, m.Mood, m.Emoji))
		}
		moodStr = "Recent moods: " + strings.Join(parts, ", ")
	}

	completedCount := 0
	for _, s := range uc.DailySteps {
		if s.Completed {
			completedCount++
		}
	}
	stepsStr := fmt.Sprintf("Progress: %d completed tasks, %d pending tasks", completedCount, len(uc.DailySteps)-completedCount)

	eventsStr := "No upcoming events"
	if len(uc.UpcomingEvents) > 0 {
		parts := []string{}
		for _, e := range uc.UpcomingEvents {
			parts = append(parts, fmt.Sprintf("%s: %s", e.Date, e.Title))
			if len(parts) == 2 {
				break
			}
		}
		eventsStr = "Upcoming events: " + strings.Join(parts, ", ")
	}

	prompt := fmt.Sprintf(`You are SAINTE, a trauma-informed, client-centered AI companion for a justice-impacted individual named %s.

User context:
- %s
- %s
- %s

Generate a single brief, empathetic, and personalized message (max 3 sentences) to greet %s.
The message should acknowledge their recent moods (if available) and recognize progress or provide gentle encouragement.
Use warm, supportive, and non-judgmental language. Avoid being overly enthusiastic or using exclamation points.
Don't propose specific actions - just be supportive and show you're aware of their situation.`,
		uc.User.FirstName, moodStr, stepsStr, eventsStr, uc.User.FirstName)

	text, err := c.client.Complete(ctx, Request{
		Messages: []Message{
			{Role: "system", Content: companionSystemPrompt},
			{Role: "user", Content: prompt},
		},
		Temperature: 0.7,
		MaxTokens:   150,
	})
	if err != nil {
		logWarn("personalized message generation failed: %v", err)
		return fallbackGreeting
	}
	if text = strings.TrimSpace(text); text == "" {
		return "I'm here to support you today. How are you feeling?"
	}
	return text
}

// ChatReply answers one chat turn given the stored session history. Only
// the last few turns are sent as context; storage keeps everything.
func (c *Companion) ChatReply(ctx context.Context, history []models.ChatMessage, message string) string {
	messages := []Message{{Role: "system", Content: chatSystemPrompt}}
	start := 0
	if len(history) > chatHistoryWindow {
		start = len(history) - chatHistoryWindow
	}
	for _, msg := range history[start:] {
		messages = append(messages, Message{Role: msg.Role, Content: msg.Content})
	}
	messages = append(messages, Message{Role: "user", Content: message})

	text, err := c.client.Complete(ctx, Request{
		Messages:    messages,
		Temperature: 0.7,
	})
	if err != nil {
		logWarn("chat completion failed: %v", err)
		return fallbackChat
	}
	if text = strings.TrimSpace(text); text == "" {
		return "I'm here to listen. Could you tell me more about how you're feeling?"
	}
	return text
}

// ProgressInsights analyzes recent activity into a structured payload. A
// failed call or unparseable response yields the fixed fallback object.
func (c *Companion) ProgressInsights(ctx context.Context, uc UserContext) InsightResult {
	moodLines := make([]string, 0, len(uc.RecentMoods))
	for _, m := range uc.RecentMoods {
		notes := m.Notes
		if notes == "" {
			notes = "no notes"
		}
		moodLines = append(moodLines, fmt.Sprintf("%s: %s (%s) - %s", m.Date, m.Mood, m.Emoji, notes))
	}
	stepLines := make([]string, 0, len(uc.DailySteps))
	for _, s := range uc.DailySteps {
		state := "Pending"
		if s.Completed {
			state = "Completed"
		}
		stepLines = append(stepLines, fmt.Sprintf("%s - %s", s.Title, state))
	}
	eventLines := make([]string, 0, len(uc.UpcomingEvents))
	for _, e := range uc.UpcomingEvents {
		eventLines = append(eventLines, fmt.Sprintf("%s: %s - %s", e.Date, e.Title, e.Status))
	}

	prompt := fmt.Sprintf(`Please analyze the following data for %s %s:

MOOD HISTORY:
%s

PROGRESS STEPS:
%s

UPCOMING EVENTS:
%s

Respond with the following in JSON format:
1. insights: A paragraph of trauma-informed, supportive insights about their progress and patterns (100-150 words)
2. strengthsIdentified: An array of 3-5 specific strengths or positive behaviors demonstrated
3. suggestedResources: An array of 2-3 brief, specific resources or activities to consider

All insights should be supportive, empowering, and focused on strengths.
Avoid language that could feel judgmental or prescriptive.`,
		uc.User.FirstName, uc.User.LastName,
		orPlaceholder(moodLines, "No mood data available"),
		orPlaceholder(stepLines, "No progress steps data available"),
		orPlaceholder(eventLines, "No upcoming events data available"))

	text, err := c.client.Complete(ctx, Request{
		Messages: []Message{
			{Role: "system", Content: "You are an empathetic, trauma-informed data analyst for a justice-impacted individual's progress."},
			{Role: "user", Content: prompt},
		},
		Temperature:  0.5,
		JSONResponse: true,
	})
	if err != nil {
		logWarn("progress insights generation failed: %v", err)
		return fallbackInsightResult()
	}

	var parsed InsightResult
	if err := json.Unmarshal([]byte(text), &parsed); err != nil {
		logWarn("progress insights response not parseable: %v", err)
		return fallbackInsightResult()
	}
	if parsed.Insights == "" {
		parsed.Insights = "Your journey shows both progress and resilience. Remember that healing isn't linear, and each step you take matters."
	}
	if len(parsed.StrengthsIdentified) == 0 {
		parsed.StrengthsIdentified = []string{"Commitment to the process", "Self-awareness", "Resilience"}
	}
	if len(parsed.SuggestedResources) == 0 {
		parsed.SuggestedResources = []string{"Self-care practices", "Community support resources"}
	}
	return parsed
}

func fallbackInsightResult() InsightResult {
	return InsightResult{
		Insights:            fallbackInsights,
		StrengthsIdentified: []string{"Engagement with the platform", "Self-reflection", "Perseverance"},
		SuggestedResources:  []string{"Mindfulness practices", "Community support groups"},
	}
}

func orPlaceholder(lines []string, placeholder string) string {
	if len(lines) == 0 {
		return placeholder
	}
	return strings.Join(lines, "\n")
}

func logWarn(format string, args ...interface{}) {
	if utils.Sugar != nil {
		utils.Sugar.Warnf(format, args...)
	}
}
