package services

import (
	"sort"
	"time"

	"github.com/KingAsh2/RapidReps/internal/models"
)

// Trainer badge types.
const (
	BadgeMilestoneMaster  = "milestone_master"
	BadgeWeekendWarrior   = "weekend_warrior"
	BadgeStreakStar       = "streak_star"
	BadgeEarlyBird        = "early_bird"
	BadgeNightOwl         = "night_owl"
	BadgeTopTrainer       = "top_trainer"
	BadgeNewClientChamp   = "new_client_champ"
	BadgeFlexibilityGuru  = "flexibility_guru"
	BadgeFeedbackFavorite = "feedback_favorite"
	BadgeDoubleDuty       = "double_duty"
)

// Trainee badge types.
const (
	BadgeCommitment       = "commitment"
	BadgeConsistencyChamp = "consistency_champ"
	BadgeWeekendGrinder   = "weekend_grinder"
	BadgeEarlyRiser       = "early_riser"
	BadgeNightHustler     = "night_hustler"
	BadgeLoyaltyLock      = "loyalty_lock"
	BadgeTrainerFavorite  = "trainer_favorite"
	BadgeExplorer         = "explorer"
	BadgeFeedbackHero     = "feedback_hero"
	BadgeAllIn            = "all_in"
)

// badgeDiscountGrants holds the fixed discount-session rewards stamped on
// first unlock. The grant overwrites any remaining balance.
var badgeDiscountGrants = map[string]int{
	BadgeMilestoneMaster: 5,
	BadgeLoyaltyLock:     1,
}

type badgeStat struct {
	badgeType string
	target    int
	progress  int // uncapped; unlock compares against target before capping
}

// EvaluateTrainerBadges computes all trainer badge progress from the
// trainer's completed sessions and received ratings, stamps any new unlocks
// into record.Unlocks, and applies discount grants. It returns the badge
// list in catalog order plus the types unlocked by this evaluation.
func EvaluateTrainerBadges(sessions []models.Session, ratings []models.Rating, record *models.AchievementRecord, now time.Time) ([]models.BadgeProgress, []string) {
	stats := []badgeStat{
		{BadgeMilestoneMaster, 25, len(sessions)},
		{BadgeWeekendWarrior, 10, countWeekend(sessions)},
		{BadgeStreakStar, 3, record.StreakWeeks},
		{BadgeEarlyBird, 10, countStartingBefore(sessions, 12)},
		{BadgeNightOwl, 10, countStartingAtOrAfter(sessions, 18)},
		{BadgeTopTrainer, 1, boolProgress(record.IsTopTrainer)},
		{BadgeNewClientChamp, 10, countDistinct(sessions, func(s models.Session) int64 { return s.TraineeID })},
		{BadgeFlexibilityGuru, 10, flexibilityProgress(sessions)},
		{BadgeFeedbackFavorite, 10, countFiveStar(ratings)},
		{BadgeDoubleDuty, 1, doubleDutyProgress(sessions)},
	}
	return finalizeBadges(stats, record, now)
}

// EvaluateTraineeBadges is the trainee-side counterpart; ratings here are the
// reviews the trainee has written.
func EvaluateTraineeBadges(sessions []models.Session, ratings []models.Rating, record *models.AchievementRecord, now time.Time) ([]models.BadgeProgress, []string) {
	stats := []badgeStat{
		{BadgeCommitment, 10, len(sessions)},
		{BadgeConsistencyChamp, 3, record.StreakWeeks},
		{BadgeWeekendGrinder, 5, countWeekend(sessions)},
		{BadgeEarlyRiser, 5, countStartingBefore(sessions, 12)},
		{BadgeNightHustler, 5, countStartingAtOrAfter(sessions, 18)},
		{BadgeLoyaltyLock, 20, len(sessions)},
		{BadgeTrainerFavorite, 5, record.WouldTrainAgainCount},
		{BadgeExplorer, 5, countDistinct(sessions, func(s models.Session) int64 { return s.TrainerID })},
		{BadgeFeedbackHero, 10, len(ratings)},
		{BadgeAllIn, 3, maxSessionsInOneISOWeek(sessions)},
	}
	return finalizeBadges(stats, record, now)
}

// finalizeBadges turns raw stats into BadgeProgress entries, recording new
// unlocks on the achievement record. Re-running against an already-unlocked
// badge keeps the original timestamp and grants nothing.
func finalizeBadges(stats []badgeStat, record *models.AchievementRecord, now time.Time) ([]models.BadgeProgress, []string) {
	if record.Unlocks == nil {
		record.Unlocks = make(map[string]time.Time)
	}

	badges := make([]models.BadgeProgress, 0, len(stats))
	newlyUnlocked := make([]string, 0)

	for _, stat := range stats {
		unlocked := stat.progress >= stat.target
		progress := stat.progress
		if progress > stat.target {
			progress = stat.target
		}

		badge := models.BadgeProgress{
			BadgeType:  stat.badgeType,
			IsUnlocked: unlocked,
			Progress:   progress,
			Target:     stat.target,
		}

		if unlocked {
			if at, ok := record.Unlocks[stat.badgeType]; ok {
				unlockedAt := at
				badge.UnlockedAt = &unlockedAt
			} else {
				record.Unlocks[stat.badgeType] = now
				unlockedAt := now
				badge.UnlockedAt = &unlockedAt
				newlyUnlocked = append(newlyUnlocked, stat.badgeType)
				if grant, ok := badgeDiscountGrants[stat.badgeType]; ok {
					record.DiscountSessionsRemaining = grant
				}
			}
		}

		badges = append(badges, badge)
	}
	return badges, newlyUnlocked
}

func countWeekend(sessions []models.Session) int {
	count := 0
	for _, s := range sessions {
		day := s.SessionDateTimeStart.UTC().Weekday()
		if day == time.Saturday || day == time.Sunday {
			count++
		}
	}
	return count
}

func countStartingBefore(sessions []models.Session, hour int) int {
	count := 0
	for _, s := range sessions {
		if s.SessionDateTimeStart.UTC().Hour() < hour {
			count++
		}
	}
	return count
}

func countStartingAtOrAfter(sessions []models.Session, hour int) int {
	count := 0
	for _, s := range sessions {
		if s.SessionDateTimeStart.UTC().Hour() >= hour {
			count++
		}
	}
	return count
}

func countDistinct(sessions []models.Session, key func(models.Session) int64) int {
	seen := make(map[int64]struct{})
	for _, s := range sessions {
		seen[key(s)] = struct{}{}
	}
	return len(seen)
}

func countFiveStar(ratings []models.Rating) int {
	count := 0
	for _, r := range ratings {
		if r.Rating == 5 {
			count++
		}
	}
	return count
}

// flexibilityProgress counts every session, but only once the trainer has
// covered all three day parts (morning, afternoon, evening); otherwise 0.
func flexibilityProgress(sessions []models.Session) int {
	var morning, afternoon, evening bool
	for _, s := range sessions {
		hour := s.SessionDateTimeStart.UTC().Hour()
		switch {
		case hour < 12:
			morning = true
		case hour < 18:
			afternoon = true
		default:
			evening = true
		}
	}
	if morning && afternoon && evening {
		return len(sessions)
	}
	return 0
}

// doubleDutyProgress is 1 when any two chronologically adjacent sessions are
// back to back, with at most 15 minutes between one's end and the next's
// start.
func doubleDutyProgress(sessions []models.Session) int {
	if len(sessions) < 2 {
		return 0
	}
	ordered := make([]models.Session, len(sessions))
	copy(ordered, sessions)
	sort.Slice(ordered, func(i, j int) bool {
		return ordered[i].SessionDateTimeStart.Before(ordered[j].SessionDateTimeStart)
	})
	for i := 1; i < len(ordered); i++ {
		gap := ordered[i].SessionDateTimeStart.Sub(ordered[i-1].SessionDateTimeEnd)
		if gap <= 15*time.Minute {
			return 1
		}
	}
	return 0
}

func maxSessionsInOneISOWeek(sessions []models.Session) int {
	type week struct {
		year int
		week int
	}
	counts := make(map[week]int)
	best := 0
	for _, s := range sessions {
		y, w := s.SessionDateTimeStart.UTC().ISOWeek()
		k := week{y, w}
		counts[k]++
		if counts[k] > best {
			best = counts[k]
		}
	}
	return best
}

func boolProgress(b bool) int {
	if b {
		return 1
	}
	return 0
}
