package entity

import "time"

type TrainingSession struct {
	ID       int64     `json:"id" db:"id"`
	Date     time.Time `json:"session_date" db:"session_date"`
	StartsAt string    `json:"starts_at" db:"starts_at"`
	EndsAt   string    `json:"ends_at" db:"ends_at"`
}
