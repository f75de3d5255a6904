package models

import "time"

type Rating struct {
	ID         int64     `json:"id"`
	SessionID  int64     `json:"sessionId"`
	TraineeID  int64     `json:"traineeId"`
	TrainerID  int64     `json:"trainerId"`
	Rating     int       `json:"rating"`
	ReviewText *string   `json:"reviewText"`
	CreatedAt  time.Time `json:"createdAt"`
}
