package entity

import "time"

type MembershipPlan struct {
	ID         int64  `json:"id" db:"id"`
	GymID      int64  `json:"gym_id" db:"gym_id"`
	Type       string `json:"plan_type" db:"plan_type"`
	MonthlyFee int64  `json:"monthly_fee" db:"monthly_fee"`
}

// Enrollment links a fighter to a plan from a start date.
type Enrollment struct {
	FighterID int64     `json:"fighter_id" db:"fighter_id"`
	PlanID    int64     `json:"plan_id" db:"plan_id"`
	StartDate time.Time `json:"start_date" db:"start_date"`
}
