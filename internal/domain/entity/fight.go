package entity

import "time"

type Outcome string

const (
	OutcomeWin  Outcome = "Win"
	OutcomeLoss Outcome = "Loss"
)

type Fight struct {
	ID       int64     `json:"id" db:"id"`
	Date     time.Time `json:"fight_date" db:"fight_date"`
	StartsAt string    `json:"starts_at" db:"starts_at"`
	EndsAt   string    `json:"ends_at" db:"ends_at"`
	Location string    `json:"location" db:"location"`
}
