package models

import "time"

// AchievementRecord is the per-user, per-role gamification state. Unlocks
// maps badge type to the moment it was first unlocked; the remaining fields
// are counters the badge evaluators read but do not compute themselves
// (weekly streaks, monthly ranking, "would train again" confirmations).
type AchievementRecord struct {
	ID                        int64                `json:"id"`
	UserID                    int64                `json:"userId"`
	Role                      string               `json:"role"`
	Unlocks                   map[string]time.Time `json:"unlocks"`
	DiscountSessionsRemaining int                  `json:"discountSessionsRemaining"`
	StreakWeeks               int                  `json:"streakWeeks"`
	IsTopTrainer              bool                 `json:"isTopTrainer"`
	WouldTrainAgainCount      int                  `json:"wouldTrainAgainCount"`
	CreatedAt                 time.Time            `json:"createdAt"`
	UpdatedAt                 time.Time            `json:"updatedAt"`
}

type BadgeProgress struct {
	BadgeType  string     `json:"badgeType"`
	IsUnlocked bool       `json:"isUnlocked"`
	Progress   int        `json:"progress"`
	Target     int        `json:"target"`
	UnlockedAt *time.Time `json:"unlockedAt,omitempty"`
}

type AchievementSummary struct {
	Badges                    []BadgeProgress `json:"badges"`
	TotalCompletedSessions    int             `json:"totalCompletedSessions"`
	DiscountSessionsRemaining int             `json:"discountSessionsRemaining"`
	NewlyUnlocked             []string        `json:"newlyUnlocked,omitempty"`
}
