package models

import "time"

const (
	SessionRequested = "requested"
	SessionConfirmed = "confirmed"
	SessionDeclined  = "declined"
	SessionCancelled = "cancelled"
	SessionCompleted = "completed"
	SessionNoShow    = "no_show"
)

const (
	LocationGym     = "gym"
	LocationHome    = "home"
	LocationVirtual = "virtual"
)

type Session struct {
	ID                      int64     `json:"id"`
	TraineeID               int64     `json:"traineeId"`
	TrainerID               int64     `json:"trainerId"`
	Status                  string    `json:"status"`
	SessionDateTimeStart    time.Time `json:"sessionDateTimeStart"`
	SessionDateTimeEnd      time.Time `json:"sessionDateTimeEnd"`
	DurationMinutes         int       `json:"durationMinutes"`
	BasePricePerMinuteCents int       `json:"basePricePerMinuteCents"`
	BaseSessionPriceCents   int       `json:"baseSessionPriceCents"`
	DiscountType            *string   `json:"discountType"`
	DiscountAmountCents     int       `json:"discountAmountCents"`
	FinalSessionPriceCents  int       `json:"finalSessionPriceCents"`
	PlatformFeePercent      int       `json:"platformFeePercent"`
	PlatformFeeCents        int       `json:"platformFeeCents"`
	TrainerEarningsCents    int       `json:"trainerEarningsCents"`
	LocationType            string    `json:"locationType"`
	LocationNameOrAddress   *string   `json:"locationNameOrAddress"`
	MeetingLink             *string   `json:"zoomMeetingLink,omitempty"`
	Notes                   *string   `json:"notes"`
	PaymentRef              *string   `json:"paymentRef"`
	CreatedAt               time.Time `json:"createdAt"`
	UpdatedAt               time.Time `json:"updatedAt"`
}

type EarningsSummary struct {
	TotalEarningsCents int       `json:"totalEarningsCents"`
	MonthEarningsCents int       `json:"monthEarningsCents"`
	WeekEarningsCents  int       `json:"weekEarningsCents"`
	TotalSessions      int       `json:"totalSessions"`
	MonthSessions      int       `json:"monthSessions"`
	WeekSessions       int       `json:"weekSessions"`
	Sessions           []Session `json:"sessions"`
}

type PlatformRevenue struct {
	TotalPlatformFeesCents   int `json:"totalPlatformFeesCents"`
	TotalSessionValueCents   int `json:"totalSessionValueCents"`
	TotalSessions            int `json:"totalSessions"`
	AverageSessionValueCents int `json:"averageSessionValueCents"`
}
