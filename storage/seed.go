package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/saintecare/sainte/models"
	"github.com/saintecare/sainte/utils"
)

// Seed populates a storage backend with the demo dataset: one client with a
// week of moods, a score snapshot, steps, events, a care team, and featured
// resources. Used by the memory driver at boot and by the MySQL driver when
// the schema is empty.
func Seed(ctx context.Context, s Storage) error {
	hash, err := utils.HashPassword("password123")
	if err != nil {
		return fmt.Errorf("hash seed password: %w", err)
	}

	user := models.User{
		Username:       "jsmith",
		PasswordHash:   hash,
		FirstName:      "James",
		LastName:       "Smith",
		Email:          "james.smith@example.com",
		Role:           "client",
		AvatarInitials: "JS",
		Tier:           "silver",
	}
	if err := s.CreateUser(ctx, &user); err != nil {
		return fmt.Errorf("seed user: %w", err)
	}

	today := time.Now().Format("2006-01-02")

	steps := []models.DailyStep{
		{
			UserID:      user.ID,
			Title:       "Apply for the warehouse position at FlexLogistics",
			Description: "Complete online application and upload resume",
			DueDate:     today,
		},
		{
			UserID:      user.ID,
			Title:       "Attend recovery support group meeting",
			Description: "Downtown Community Center at 6:30 PM",
			Completed:   true,
			DueDate:     today,
		},
		{
			UserID:      user.ID,
			Title:       "Schedule appointment with housing counselor",
			Description: "Call Affordable Housing Initiative to discuss options",
			DueDate:     today,
		},
	}
	for i := range steps {
		if err := s.CreateDailyStep(ctx, &steps[i]); err != nil {
			return fmt.Errorf("seed daily step: %w", err)
		}
	}

	// One mood entry per day for the past week.
	moodTypes := []string{"great", "good", "okay", "low", "struggling"}
	moodEmojis := []string{"😊", "🙂", "😐", "😕", "😢"}
	for i := 6; i >= 0; i-- {
		date := time.Now().AddDate(0, 0, -i).Format("2006-01-02")
		pick := i % len(moodTypes)
		mood := models.Mood{
			UserID: user.ID,
			Mood:   moodTypes[pick],
			Emoji:  moodEmojis[pick],
			Date:   date,
		}
		if err := s.CreateMood(ctx, &mood); err != nil {
			return fmt.Errorf("seed mood: %w", err)
		}
	}

	score := models.SccsScore{
		UserID:      user.ID,
		Score:       742,
		Consistency: 28,
		Engagement:  19,
		Milestones:  12,
		PeerSupport: 22,
		Date:        today,
	}
	if err := s.CreateSccsScore(ctx, &score); err != nil {
		return fmt.Errorf("seed sccs score: %w", err)
	}

	tomorrow := time.Now().AddDate(0, 0, 1).Format("2006-01-02")
	inThreeDays := time.Now().AddDate(0, 0, 3).Format("2006-01-02")

	events := []models.Event{
		{
			UserID:      user.ID,
			Title:       "Job Readiness Workshop",
			Description: "Learn interview skills and resume building techniques",
			Date:        tomorrow,
			StartTime:   "10:00 AM",
			EndTime:     "12:00 PM",
			Location:    "Workforce Development Center",
			Status:      "upcoming",
		},
		{
			UserID:      user.ID,
			Title:       "Meeting with Sarah (CHW)",
			Description: "Regular check-in to discuss progress and resources",
			Date:        inThreeDays,
			StartTime:   "2:00 PM",
			EndTime:     "3:00 PM",
			Location:    "Community Center (Room 203)",
			Status:      "confirmed",
		},
	}
	for i := range events {
		if err := s.CreateEvent(ctx, &events[i]); err != nil {
			return fmt.Errorf("seed event: %w", err)
		}
	}

	members := []models.CareTeamMember{
		{
			UserID:             user.ID,
			TeamMemberName:     "Sarah Miller",
			TeamMemberRole:     "Community Health Worker",
			TeamMemberInitials: "SM",
			ContactEmail:       "sarah.miller@example.com",
			ContactPhone:       "555-123-4567",
		},
		{
			UserID:             user.ID,
			TeamMemberName:     "James Davis",
			TeamMemberRole:     "Peer Mentor",
			TeamMemberInitials: "JD",
			ContactEmail:       "james.davis@example.com",
			ContactPhone:       "555-987-6543",
		},
	}
	for i := range members {
		if err := s.CreateCareTeamMember(ctx, &members[i]); err != nil {
			return fmt.Errorf("seed care team member: %w", err)
		}
	}

	resources := []models.Resource{
		{
			Title:       "Resume Building Workshop",
			Description: "Free workshop to help create effective resumes for job searching.",
			Category:    "Employment",
			Date:        inThreeDays,
			URL:         "https://example.com/workshop",
			ReadTime:    "10-minute read",
			IsFeatured:  true,
		},
		{
			Title:       "Affordable Housing Guide",
			Description: "Complete guide to local housing assistance programs and applications.",
			Category:    "Housing",
			URL:         "https://example.com/housing-guide",
			ReadTime:    "5-minute read",
			IsFeatured:  true,
		},
	}
	for i := range resources {
		if err := s.CreateResource(ctx, &resources[i]); err != nil {
			return fmt.Errorf("seed resource: %w", err)
		}
	}

	return nil
}
