package persistence

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"gym_portal/internal/domain"
	"gym_portal/internal/domain/entity"
	"gym_portal/pkg/errcodes"
)

type GymRepository struct {
	db *sqlx.DB
}

func NewGymRepository(db *sqlx.DB) *GymRepository {
	return &GymRepository{db: db}
}

// IDByName resolves a gym name through the gym_name_to_id scalar function.
// The function returns 0 for unknown names.
func (r *GymRepository) IDByName(ctx context.Context, name string) (int64, error) {
	query := `SELECT gym_name_to_id($1)`

	var id int64
	if err := r.db.GetContext(ctx, &id, query, name); err != nil {
		return 0, domain.WrapError(err, errcodes.InternalServerError, "failed to resolve gym name")
	}

	if id == 0 {
		return 0, domain.NewError(errcodes.GymNotFound, "gym not found")
	}

	return id, nil
}

// GetByID returns the full gym row.
func (r *GymRepository) GetByID(ctx context.Context, id int64) (*entity.Gym, error) {
	query := `
		SELECT id, name, street, city, phone, opens_at, closes_at
		FROM gym
		WHERE id = $1`

	var schema gymSchema
	if err := r.db.GetContext(ctx, &schema, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.NewError(errcodes.GymNotFound, "gym not found")
		}
		return nil, domain.WrapError(err, errcodes.InternalServerError, "failed to get gym")
	}

	gym := schema.toDomain()
	return &gym, nil
}

// Create registers a gym through the create_gym routine and returns the
// generated identifier.
func (r *GymRepository) Create(ctx context.Context, gym *entity.Gym) (int64, error) {
	var id int64

	err := withTx(ctx, r.db, func(tx *sqlx.Tx) error {
		query := `SELECT create_gym($1, $2, $3, $4, $5, $6)`

		if err := tx.GetContext(ctx, &id, query,
			gym.Name, gym.Street, gym.City, gym.Phone, gym.OpensAt, gym.ClosesAt,
		); err != nil {
			return domain.WrapError(err, errcodes.InternalServerError, "failed to create gym")
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	return id, nil
}
