// Package sccs assembles the Social Capital Credit Score report: the
// current snapshot, a synthesized trailing history, the strength-area
// breakdown, and a slice of recent activity.
package sccs

import (
	"time"

	"github.com/saintecare/sainte/models"
)

// SubScoreMax is the upper bound each of the four sub-scores is clamped to
// by convention.
const SubScoreMax = 30

// HistoryPoint is one synthesized point in the trailing score series.
type HistoryPoint struct {
	Date  string `json:"date"`
	Score int    `json:"score"`
}

// StrengthArea is one of the four fixed score components.
type StrengthArea struct {
	Category    string `json:"category"`
	Score       int    `json:"score"`
	MaxScore    int    `json:"maxScore"`
	Description string `json:"description"`
}

// RecentActivity collects the freshest slices of user activity for the report.
type RecentActivity struct {
	Moods          []models.Mood      `json:"moods"`
	Events         []models.Event     `json:"events"`
	CompletedTasks []models.DailyStep `json:"completedTasks"`
}

// Report is the full SCCS report payload.
type Report struct {
	Score           *models.SccsScore `json:"score"`
	History         []HistoryPoint    `json:"history"`
	StrengthAreas   []StrengthArea    `json:"strengthAreas"`
	RecentActivity  RecentActivity    `json:"recentActivity"`
	Recommendations []string          `json:"recommendations"`
}

// historySteps are the fixed backdating offsets applied to the current
// score, oldest first. The last entry yields the true current score.
var historySteps = []int{35, 28, 21, 14, 7, 0}

// SynthesizeHistory emits six monthly points ending at the current score.
// Each point is current minus the step for that offset, floored at 30. The
// series is a presentation fabrication, not stored history, and the formula
// is fixed to keep the rendered chart stable.
func SynthesizeHistory(currentScore int, now time.Time) []HistoryPoint {
	points := make([]HistoryPoint, 0, len(historySteps))
	for i, step := range historySteps {
		monthsBack := len(historySteps) - 1 - i
		date := now.Add(-time.Duration(monthsBack) * 30 * 24 * time.Hour)
		score := currentScore - step
		if score < SubScoreMax {
			score = SubScoreMax
		}
		points = append(points, HistoryPoint{
			Date:  date.Format("2006-01-02"),
			Score: score,
		})
	}
	return points
}

// StrengthAreas returns the fixed ordered breakdown of the four sub-scores.
func StrengthAreas(score *models.SccsScore) []StrengthArea {
	return []StrengthArea{
		{
			Category:    "Consistency",
			Score:       score.Consistency,
			MaxScore:    SubScoreMax,
			Description: "Shows up regularly for appointments and commitments",
		},
		{
			Category:    "Engagement",
			Score:       score.Engagement,
			MaxScore:    SubScoreMax,
			Description: "Actively participates in community and program activities",
		},
		{
			Category:    "Milestones",
			Score:       score.Milestones,
			MaxScore:    SubScoreMax,
			Description: "Achieves personal and program goals and milestones",
		},
		{
			Category:    "Peer Support",
			Score:       score.PeerSupport,
			MaxScore:    SubScoreMax,
			Description: "Engages with and supports peers on similar journeys",
		},
	}
}

// Recommendations returns the fixed coaching suggestions shown under the report.
func Recommendations() []string {
	return []string{
		"Attend 2 more community events this month to boost your engagement score",
		"Log your mood daily to improve consistency score",
		"Connect with 3 more peers in your program for peer support growth",
	}
}

// BuildReport assembles the full report from the latest score row and the
// user's recent activity. Callers handle the missing-score case before
// calling; score must be non-nil.
func BuildReport(score *models.SccsScore, moods []models.Mood, events []models.Event, steps []models.DailyStep, now time.Time) Report {
	completed := make([]models.DailyStep, 0, len(steps))
	for _, step := range steps {
		if step.Completed {
			completed = append(completed, step)
		}
	}

	return Report{
		Score:           score,
		History:         SynthesizeHistory(score.Score, now),
		StrengthAreas:   StrengthAreas(score),
		RecentActivity: RecentActivity{
			Moods:          head(moods, 5),
			Events:         head(events, 3),
			CompletedTasks: head(completed, 5),
		},
		Recommendations: Recommendations(),
	}
}

func head[T any](items []T, n int) []T {
	if len(items) > n {
		return items[:n]
	}
	return items
}
