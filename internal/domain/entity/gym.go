package entity

type Gym struct {
	ID       int64  `json:"id" db:"id"`
	Name     string `json:"name" db:"name"`
	Street   string `json:"street,omitempty" db:"street"`
	City     string `json:"city,omitempty" db:"city"`
	Phone    string `json:"phone" db:"phone"`
	OpensAt  string `json:"opens_at" db:"opens_at"`
	ClosesAt string `json:"closes_at" db:"closes_at"`
}
