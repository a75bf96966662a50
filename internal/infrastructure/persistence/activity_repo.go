package persistence

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"

	"gym_portal/internal/domain"
	"gym_portal/internal/domain/entity"
	"gym_portal/pkg/errcodes"
)

// FightResult is everything a simulated fight commits to the store.
type FightResult struct {
	FighterID   int64
	Date        time.Time
	StartsAt    string
	EndsAt      string
	Location    string
	Outcome     entity.Outcome
	BudgetDelta int64
}

type ActivityRepository struct {
	db *sqlx.DB
}

func NewActivityRepository(db *sqlx.DB) *ActivityRepository {
	return &ActivityRepository{db: db}
}

// RecordFight commits the fight record, the budget adjustment and the
// participation link as one transaction: a failure at any step leaves no
// fight record behind.
func (r *ActivityRepository) RecordFight(ctx context.Context, res FightResult) (int64, error) {
	var fightID int64

	err := withTx(ctx, r.db, func(tx *sqlx.Tx) error {
		if err := tx.GetContext(ctx, &fightID,
			`SELECT create_fight($1, $2, $3, $4)`,
			res.Date, res.StartsAt, res.EndsAt, res.Location,
		); err != nil {
			return domain.WrapError(err, errcodes.InternalServerError, "failed to create fight")
		}

		if _, err := tx.ExecContext(ctx,
			`CALL adjust_fighter_budget($1, $2)`, res.FighterID, res.BudgetDelta,
		); err != nil {
			return domain.WrapError(err, errcodes.InternalServerError, "failed to adjust budget")
		}

		if _, err := tx.ExecContext(ctx,
			`CALL record_fight_outcome($1, $2, $3)`, res.FighterID, fightID, string(res.Outcome),
		); err != nil {
			return domain.WrapError(err, errcodes.InternalServerError, "failed to record fight outcome")
		}

		return nil
	})
	if err != nil {
		return 0, err
	}

	return fightID, nil
}

// CheckIn resolves today's training session at the fixed start time, creating
// it when absent, and records attendance in the same transaction.
func (r *ActivityRepository) CheckIn(ctx context.Context, fighterID int64, session entity.TrainingSession) (int64, error) {
	var sessionID int64

	err := withTx(ctx, r.db, func(tx *sqlx.Tx) error {
		if err := tx.GetContext(ctx, &sessionID,
			`SELECT training_session_id($1, $2)`, session.Date, session.StartsAt,
		); err != nil {
			return domain.WrapError(err, errcodes.InternalServerError, "failed to look up training session")
		}

		if sessionID == 0 {
			if err := tx.GetContext(ctx, &sessionID,
				`SELECT create_training_session($1, $2, $3)`,
				session.Date, session.StartsAt, session.EndsAt,
			); err != nil {
				return domain.WrapError(err, errcodes.InternalServerError, "failed to create training session")
			}
		}

		if _, err := tx.ExecContext(ctx,
			`CALL record_attendance($1, $2)`, fighterID, sessionID,
		); err != nil {
			return domain.WrapError(err, errcodes.InternalServerError, "failed to record attendance")
		}

		return nil
	})
	if err != nil {
		return 0, err
	}

	return sessionID, nil
}
