package services

import (
	"testing"
	"time"

	"github.com/KingAsh2/RapidReps/internal/models"
)

func emptyRecord(userID int64, role string) *models.AchievementRecord {
	return &models.AchievementRecord{
		UserID:  userID,
		Role:    role,
		Unlocks: map[string]time.Time{},
	}
}

func sessionAt(trainerID, traineeID int64, start time.Time, minutes int) models.Session {
	return models.Session{
		TrainerID:            trainerID,
		TraineeID:            traineeID,
		Status:               models.SessionCompleted,
		SessionDateTimeStart: start,
		SessionDateTimeEnd:   start.Add(time.Duration(minutes) * time.Minute),
		DurationMinutes:      minutes,
	}
}

func badgeByType(t *testing.T, badges []models.BadgeProgress, badgeType string) models.BadgeProgress {
	t.Helper()
	for _, b := range badges {
		if b.BadgeType == badgeType {
			return b
		}
	}
	t.Fatalf("badge %s not found", badgeType)
	return models.BadgeProgress{}
}

func TestEvaluateTrainerBadgesProgress(t *testing.T) {
	record := emptyRecord(1, models.RoleTrainer)
	now := time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC)

	// 3 weekday morning sessions with distinct trainees.
	sessions := []models.Session{
		sessionAt(1, 10, time.Date(2026, 8, 24, 9, 0, 0, 0, time.UTC), 60), // Monday
		sessionAt(1, 11, time.Date(2026, 8, 25, 9, 0, 0, 0, time.UTC), 60),
		sessionAt(1, 12, time.Date(2026, 8, 26, 9, 0, 0, 0, time.UTC), 60),
	}

	badges, newly := EvaluateTrainerBadges(sessions, nil, record, now)
	if len(badges) != 10 {
		t.Fatalf("Expected 10 trainer badges, got %d", len(badges))
	}
	if len(newly) != 0 {
		t.Errorf("Expected no unlocks, got %v", newly)
	}

	milestone := badgeByType(t, badges, BadgeMilestoneMaster)
	if milestone.IsUnlocked || milestone.Progress != 3 || milestone.Target != 25 {
		t.Errorf("milestone_master: got unlocked=%v progress=%d/%d", milestone.IsUnlocked, milestone.Progress, milestone.Target)
	}

	earlyBird := badgeByType(t, badges, BadgeEarlyBird)
	if earlyBird.Progress != 3 {
		t.Errorf("early_bird: expected progress 3, got %d", earlyBird.Progress)
	}

	weekend := badgeByType(t, badges, BadgeWeekendWarrior)
	if weekend.Progress != 0 {
		t.Errorf("weekend_warrior: expected progress 0, got %d", weekend.Progress)
	}

	// Morning-only schedule: flexibility stays at 0.
	flex := badgeByType(t, badges, BadgeFlexibilityGuru)
	if flex.Progress != 0 {
		t.Errorf("flexibility_guru: expected 0 without all day parts, got %d", flex.Progress)
	}
}

func TestMilestoneMasterUnlockGrantsDiscounts(t *testing.T) {
	record := emptyRecord(1, models.RoleTrainer)
	now := time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC)

	sessions := make([]models.Session, 0, 25)
	for i := 0; i < 25; i++ {
		start := time.Date(2026, 7, 1, 9, 0, 0, 0, time.UTC).AddDate(0, 0, i)
		sessions = append(sessions, sessionAt(1, int64(100+i), start, 60))
	}

	badges, newly := EvaluateTrainerBadges(sessions, nil, record, now)

	milestone := badgeByType(t, badges, BadgeMilestoneMaster)
	if !milestone.IsUnlocked || milestone.Progress != 25 {
		t.Fatalf("Expected milestone_master unlocked at 25, got unlocked=%v progress=%d", milestone.IsUnlocked, milestone.Progress)
	}
	if record.DiscountSessionsRemaining != 5 {
		t.Errorf("Expected 5 discount sessions granted, got %d", record.DiscountSessionsRemaining)
	}
	if !containsString(newly, BadgeMilestoneMaster) {
		t.Errorf("Expected milestone_master in newly unlocked, got %v", newly)
	}
	if at, ok := record.Unlocks[BadgeMilestoneMaster]; !ok || !at.Equal(now) {
		t.Errorf("Expected unlock stamped at %v, got %v (present=%v)", now, at, ok)
	}

	// Re-running is idempotent: same timestamp, nothing newly unlocked, no
	// fresh grant.
	record.DiscountSessionsRemaining = 2
	later := now.Add(time.Hour)
	badges, newly = EvaluateTrainerBadges(sessions, nil, record, later)
	if len(newly) != 0 {
		t.Errorf("Expected no new unlocks on re-run, got %v", newly)
	}
	if record.DiscountSessionsRemaining != 2 {
		t.Errorf("Expected discount balance untouched on re-run, got %d", record.DiscountSessionsRemaining)
	}
	milestone = badgeByType(t, badges, BadgeMilestoneMaster)
	if milestone.UnlockedAt == nil || !milestone.UnlockedAt.Equal(now) {
		t.Errorf("Expected original unlock time %v, got %v", now, milestone.UnlockedAt)
	}
}

func TestDoubleDutyBadge(t *testing.T) {
	record := emptyRecord(1, models.RoleTrainer)
	now := time.Now().UTC()

	first := sessionAt(1, 10, time.Date(2026, 8, 24, 9, 0, 0, 0, time.UTC), 60)
	// Starts 10 minutes after the first one ends.
	second := sessionAt(1, 11, time.Date(2026, 8, 24, 10, 10, 0, 0, time.UTC), 60)
	// Order given out of sequence on purpose.
	badges, _ := EvaluateTrainerBadges([]models.Session{second, first}, nil, record, now)

	doubleDuty := badgeByType(t, badges, BadgeDoubleDuty)
	if !doubleDuty.IsUnlocked {
		t.Errorf("Expected double_duty unlocked with a 10 minute gap")
	}

	// A one hour gap does not qualify.
	record = emptyRecord(2, models.RoleTrainer)
	third := sessionAt(2, 10, time.Date(2026, 8, 24, 9, 0, 0, 0, time.UTC), 60)
	fourth := sessionAt(2, 11, time.Date(2026, 8, 24, 11, 0, 0, 0, time.UTC), 60)
	badges, _ = EvaluateTrainerBadges([]models.Session{third, fourth}, nil, record, now)
	if badgeByType(t, badges, BadgeDoubleDuty).IsUnlocked {
		t.Errorf("Expected double_duty locked with a 60 minute gap")
	}
}

func TestFlexibilityGuruCountsAllWhenSpanningDayParts(t *testing.T) {
	record := emptyRecord(1, models.RoleTrainer)
	now := time.Now().UTC()

	sessions := []models.Session{
		sessionAt(1, 10, time.Date(2026, 8, 24, 8, 0, 0, 0, time.UTC), 60),
		sessionAt(1, 11, time.Date(2026, 8, 24, 14, 0, 0, 0, time.UTC), 60),
		sessionAt(1, 12, time.Date(2026, 8, 24, 19, 0, 0, 0, time.UTC), 60),
	}

	badges, _ := EvaluateTrainerBadges(sessions, nil, record, now)
	flex := badgeByType(t, badges, BadgeFlexibilityGuru)
	if flex.Progress != 3 {
		t.Errorf("Expected all 3 sessions counted, got %d", flex.Progress)
	}
}

func TestFeedbackFavorite(t *testing.T) {
	record := emptyRecord(1, models.RoleTrainer)
	ratings := []models.Rating{
		{Rating: 5}, {Rating: 5}, {Rating: 4}, {Rating: 5},
	}
	badges, _ := EvaluateTrainerBadges(nil, ratings, record, time.Now().UTC())
	if got := badgeByType(t, badges, BadgeFeedbackFavorite).Progress; got != 3 {
		t.Errorf("Expected 3 five-star ratings counted, got %d", got)
	}
}

func TestEvaluateTraineeBadges(t *testing.T) {
	record := emptyRecord(10, models.RoleTrainee)
	record.WouldTrainAgainCount = 2
	now := time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC)

	// Three sessions with different trainers inside one ISO week.
	sessions := []models.Session{
		sessionAt(1, 10, time.Date(2026, 8, 24, 9, 0, 0, 0, time.UTC), 60),
		sessionAt(2, 10, time.Date(2026, 8, 26, 9, 0, 0, 0, time.UTC), 60),
		sessionAt(3, 10, time.Date(2026, 8, 28, 9, 0, 0, 0, time.UTC), 60),
	}

	badges, newly := EvaluateTraineeBadges(sessions, nil, record, now)
	if len(badges) != 10 {
		t.Fatalf("Expected 10 trainee badges, got %d", len(badges))
	}

	allIn := badgeByType(t, badges, BadgeAllIn)
	if !allIn.IsUnlocked {
		t.Errorf("Expected all_in unlocked with 3 sessions in one ISO week")
	}
	if !containsString(newly, BadgeAllIn) {
		t.Errorf("Expected all_in newly unlocked, got %v", newly)
	}

	if got := badgeByType(t, badges, BadgeExplorer).Progress; got != 3 {
		t.Errorf("explorer: expected 3 distinct trainers, got %d", got)
	}
	if got := badgeByType(t, badges, BadgeTrainerFavorite).Progress; got != 2 {
		t.Errorf("trainer_favorite: expected externally tracked 2, got %d", got)
	}
	if got := badgeByType(t, badges, BadgeLoyaltyLock); got.IsUnlocked {
		t.Errorf("loyalty_lock: expected locked at 3 sessions")
	}
}

func TestLoyaltyLockGrantOverwrites(t *testing.T) {
	record := emptyRecord(10, models.RoleTrainee)
	record.DiscountSessionsRemaining = 4
	now := time.Now().UTC()

	sessions := make([]models.Session, 0, 20)
	for i := 0; i < 20; i++ {
		start := time.Date(2026, 6, 1, 9, 0, 0, 0, time.UTC).AddDate(0, 0, i)
		sessions = append(sessions, sessionAt(1, 10, start, 60))
	}

	_, newly := EvaluateTraineeBadges(sessions, nil, record, now)
	if !containsString(newly, BadgeLoyaltyLock) {
		t.Fatalf("Expected loyalty_lock unlocked, got %v", newly)
	}
	if record.DiscountSessionsRemaining != 1 {
		t.Errorf("Expected grant to overwrite balance to 1, got %d", record.DiscountSessionsRemaining)
	}
}

func containsString(values []string, want string) bool {
	for _, v := range values {
		if v == want {
			return true
		}
	}
	return false
}
