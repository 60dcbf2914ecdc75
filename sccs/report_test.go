package sccs

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saintecare/sainte/models"
)

func TestSynthesizeHistory(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	points := SynthesizeHistory(742, now)
	require.Len(t, points, 6)

	// Oldest first: current minus 35, 28, 21, 14, 7, 0.
	wantScores := []int{707, 714, 721, 728, 735, 742}
	for i, want := range wantScores {
		assert.Equal(t, want, points[i].Score, "point %d", i)
		monthsBack := len(wantScores) - 1 - i
		wantDate := now.Add(-time.Duration(monthsBack) * 30 * 24 * time.Hour).Format("2006-01-02")
		assert.Equal(t, wantDate, points[i].Date, "point %d", i)
	}
	assert.Equal(t, "2025-06-15", points[5].Date)
}

func TestSynthesizeHistoryFloor(t *testing.T) {
	points := SynthesizeHistory(40, time.Now())
	for _, p := range points {
		assert.GreaterOrEqual(t, p.Score, SubScoreMax)
	}
	assert.Equal(t, 40, points[len(points)-1].Score)
}

func TestStrengthAreas(t *testing.T) {
	score := &models.SccsScore{Consistency: 28, Engagement: 19, Milestones: 12, PeerSupport: 22}

	areas := StrengthAreas(score)
	require.Len(t, areas, 4)

	assert.Equal(t, "Consistency", areas[0].Category)
	assert.Equal(t, 28, areas[0].Score)
	assert.Equal(t, "Engagement", areas[1].Category)
	assert.Equal(t, 19, areas[1].Score)
	assert.Equal(t, "Milestones", areas[2].Category)
	assert.Equal(t, 12, areas[2].Score)
	assert.Equal(t, "Peer Support", areas[3].Category)
	assert.Equal(t, 22, areas[3].Score)
	for _, a := range areas {
		assert.Equal(t, SubScoreMax, a.MaxScore)
		assert.NotEmpty(t, a.Description)
	}
}

func TestBuildReport(t *testing.T) {
	score := &models.SccsScore{Score: 742, Consistency: 28, Engagement: 19, Milestones: 12, PeerSupport: 22}

	moods := make([]models.Mood, 8)
	for i := range moods {
		moods[i] = models.Mood{ID: uint(i + 1), Mood: "good", Emoji: "🙂"}
	}
	events := make([]models.Event, 4)
	for i := range events {
		events[i] = models.Event{ID: uint(i + 1), Title: "Event"}
	}
	steps := []models.DailyStep{
		{ID: 1, Title: "done 1", Completed: true},
		{ID: 2, Title: "pending", Completed: false},
		{ID: 3, Title: "done 2", Completed: true},
	}

	report := BuildReport(score, moods, events, steps, time.Now())

	assert.Same(t, score, report.Score)
	assert.Len(t, report.History, 6)
	assert.Len(t, report.StrengthAreas, 4)
	assert.Len(t, report.RecentActivity.Moods, 5)
	assert.Len(t, report.RecentActivity.Events, 3)
	assert.Len(t, report.Recommendations, 3)

	require.Len(t, report.RecentActivity.CompletedTasks, 2)
	for _, task := range report.RecentActivity.CompletedTasks {
		assert.True(t, task.Completed)
	}
}

func TestBuildReportEmptyActivity(t *testing.T) {
	score := &models.SccsScore{Score: 500}

	report := BuildReport(score, nil, nil, nil, time.Now())

	assert.Empty(t, report.RecentActivity.Moods)
	assert.Empty(t, report.RecentActivity.Events)
	assert.Empty(t, report.RecentActivity.CompletedTasks)
	assert.Len(t, report.History, 6)
}
