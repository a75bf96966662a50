package persistence

import (
	"database/sql"

	"gym_portal/internal/domain/entity"
)

// spellSchema maps a spell row; the alias column is nullable.
type spellSchema struct {
	ID    int64          `db:"id"`
	Name  string         `db:"name"`
	Alias sql.NullString `db:"alias"`
}

func (s spellSchema) toDomain() entity.Spell {
	return entity.Spell{
		ID:    s.ID,
		Name:  s.Name,
		Alias: s.Alias.String,
	}
}

// gymSchema maps a gym row; address fields are nullable.
type gymSchema struct {
	ID       int64          `db:"id"`
	Name     string         `db:"name"`
	Street   sql.NullString `db:"street"`
	City     sql.NullString `db:"city"`
	Phone    string         `db:"phone"`
	OpensAt  string         `db:"opens_at"`
	ClosesAt string         `db:"closes_at"`
}

func (s gymSchema) toDomain() entity.Gym {
	return entity.Gym{
		ID:       s.ID,
		Name:     s.Name,
		Street:   s.Street.String,
		City:     s.City.String,
		Phone:    s.Phone,
		OpensAt:  s.OpensAt,
		ClosesAt: s.ClosesAt,
	}
}
