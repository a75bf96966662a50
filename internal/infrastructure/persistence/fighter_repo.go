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

type FighterRepository struct {
	db *sqlx.DB
}

func NewFighterRepository(db *sqlx.DB) *FighterRepository {
	return &FighterRepository{db: db}
}

// ByEmail returns the fighter registered under the given email address.
func (r *FighterRepository) ByEmail(ctx context.Context, email string) (*entity.Fighter, error) {
	query := `
		SELECT id, name, email, phone, weight_lbs, budget, gym_id, wins, losses
		FROM fighter
		WHERE email = $1`

	var fighter entity.Fighter
	if err := r.db.GetContext(ctx, &fighter, query, email); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.NewError(errcodes.FighterNotFound, "fighter not found")
		}
		return nil, domain.WrapError(err, errcodes.InternalServerError, "failed to get fighter")
	}

	return &fighter, nil
}

// Budget reads the fighter's current balance from the store. Workflows call
// this at the start of every spend instead of carrying a stale value.
func (r *FighterRepository) Budget(ctx context.Context, fighterID int64) (int64, error) {
	query := `SELECT budget FROM fighter WHERE id = $1`

	var budget int64
	if err := r.db.GetContext(ctx, &budget, query, fighterID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, domain.NewError(errcodes.FighterNotFound, "fighter not found")
		}
		return 0, domain.WrapError(err, errcodes.InternalServerError, "failed to get budget")
	}

	return budget, nil
}

// Create registers a fighter through the create_fighter routine and returns
// the generated identifier.
func (r *FighterRepository) Create(ctx context.Context, fighter *entity.Fighter) (int64, error) {
	var id int64

	err := withTx(ctx, r.db, func(tx *sqlx.Tx) error {
		query := `SELECT create_fighter($1, $2, $3, $4, $5)`

		if err := tx.GetContext(ctx, &id, query,
			fighter.Name, fighter.Email, fighter.Phone, fighter.WeightLbs, fighter.GymID,
		); err != nil {
			return domain.WrapError(err, errcodes.InternalServerError, "failed to create fighter")
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	return id, nil
}
