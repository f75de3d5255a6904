package models

import "time"

const (
	FitnessLevelBeginner     = "beginner"
	FitnessLevelIntermediate = "intermediate"
	FitnessLevelAdvanced     = "advanced"
)

type TraineeProfile struct {
	ID                      int64     `json:"id"`
	UserID                  int64     `json:"userId"`
	FitnessGoals            *string   `json:"fitnessGoals"`
	CurrentFitnessLevel     string    `json:"currentFitnessLevel"`
	ExperienceLevel         *string   `json:"experienceLevel"`
	PreferredTrainingStyles []string  `json:"preferredTrainingStyles"`
	InjuriesOrLimitations   *string   `json:"injuriesOrLimitations"`
	HomeGymOrZipCode        *string   `json:"homeGymOrZipCode"`
	PrefersInPerson         bool      `json:"prefersInPerson"`
	PrefersVirtual          bool      `json:"prefersVirtual"`
	IsVirtualEnabled        bool      `json:"isVirtualEnabled"`
	BudgetMinPerMinuteCents int       `json:"budgetMinPerMinuteCents"`
	BudgetMaxPerMinuteCents int       `json:"budgetMaxPerMinuteCents"`
	Latitude                *float64  `json:"latitude"`
	Longitude               *float64  `json:"longitude"`
	LocationAddress         *string   `json:"locationAddress"`
	CreatedAt               time.Time `json:"createdAt"`
	UpdatedAt               time.Time `json:"updatedAt"`
}
