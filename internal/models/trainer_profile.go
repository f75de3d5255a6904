package models

import "time"

type TrainerProfile struct {
	ID                         int64     `json:"id"`
	UserID                     int64     `json:"userId"`
	AvatarURL                  *string   `json:"avatarUrl"`
	Bio                        *string   `json:"bio"`
	ExperienceYears            int       `json:"experienceYears"`
	Certifications             []string  `json:"certifications"`
	TrainingStyles             []string  `json:"trainingStyles"`
	GymsWorkedAt               []string  `json:"gymsWorkedAt"`
	PrimaryGym                 *string   `json:"primaryGym"`
	OffersInPerson             bool      `json:"offersInPerson"`
	OffersVirtual              bool      `json:"offersVirtual"`
	SessionDurationsOffered    []int32   `json:"sessionDurationsOffered"`
	RatePerMinuteCents         int       `json:"ratePerMinuteCents"`
	TravelRadiusMiles          *int      `json:"travelRadiusMiles"`
	CancellationPolicy         *string   `json:"cancellationPolicy"`
	VerificationDocs           []string  `json:"verificationDocs"`
	Latitude                   *float64  `json:"latitude"`
	Longitude                  *float64  `json:"longitude"`
	LocationAddress            *string   `json:"locationAddress"`
	IsAvailable                bool      `json:"isAvailable"`
	IsVirtualTrainingAvailable bool      `json:"isVirtualTrainingAvailable"`
	VideoCallPreference        *string   `json:"videoCallPreference"`
	AverageRating              float64   `json:"averageRating"`
	TotalSessionsCompleted     int       `json:"totalSessionsCompleted"`
	IsVerified                 bool      `json:"isVerified"`
	CreatedAt                  time.Time `json:"createdAt"`
	UpdatedAt                  time.Time `json:"updatedAt"`
}

// TrainerMatch is a search result row: a trainer plus how the proximity
// matcher classified it relative to the searcher.
type TrainerMatch struct {
	TrainerProfile
	DistanceMiles *float64 `json:"distanceMiles,omitempty"`
	MatchType     string   `json:"matchType"`
}

const (
	MatchTypeInPerson = "in_person"
	MatchTypeVirtual  = "virtual"
)
