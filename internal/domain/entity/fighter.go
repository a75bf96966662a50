package entity

import "fmt"

type Fighter struct {
	ID        int64  `json:"id" db:"id"`
	Name      string `json:"name" db:"name"`
	Email     string `json:"email" db:"email"`
	Phone     string `json:"phone" db:"phone"`
	WeightLbs int    `json:"weight_lbs" db:"weight_lbs"`
	Budget    int64  `json:"budget" db:"budget"`
	GymID     int64  `json:"gym_id" db:"gym_id"`
	Wins      int    `json:"wins" db:"wins"`
	Losses    int    `json:"losses" db:"losses"`
}

// Record renders the derived win/loss record, e.g. "3-1".
func (f *Fighter) Record() string {
	return fmt.Sprintf("%d-%d", f.Wins, f.Losses)
}
