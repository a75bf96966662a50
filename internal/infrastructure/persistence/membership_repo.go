package persistence

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"

	"gym_portal/internal/domain"
	"gym_portal/internal/domain/entity"
	"gym_portal/pkg/errcodes"
)

type MembershipRepository struct {
	db *sqlx.DB
}

func NewMembershipRepository(db *sqlx.DB) *MembershipRepository {
	return &MembershipRepository{db: db}
}

// PlansForGym lists the plans a gym offers.
func (r *MembershipRepository) PlansForGym(ctx context.Context, gymID int64) ([]entity.MembershipPlan, error) {
	query := `SELECT id, gym_id, plan_type, monthly_fee FROM memberships_for_gym($1)`

	var plans []entity.MembershipPlan
	if err := r.db.SelectContext(ctx, &plans, query, gymID); err != nil {
		return nil, domain.WrapError(err, errcodes.InternalServerError, "failed to list membership plans")
	}

	return plans, nil
}

// SignUp enrolls a fighter into a plan starting at the given date.
func (r *MembershipRepository) SignUp(ctx context.Context, fighterID, planID int64, start time.Time) error {
	return withTx(ctx, r.db, func(tx *sqlx.Tx) error {
		if _, err := tx.ExecContext(ctx,
			`CALL sign_up_membership($1, $2, $3)`, fighterID, planID, start,
		); err != nil {
			return domain.WrapError(err, errcodes.InternalServerError, "failed to sign up membership")
		}
		return nil
	})
}

// Transfer moves the fighter's membership to another gym.
func (r *MembershipRepository) Transfer(ctx context.Context, fighterID, gymID int64) error {
	return withTx(ctx, r.db, func(tx *sqlx.Tx) error {
		if _, err := tx.ExecContext(ctx,
			`CALL transfer_membership($1, $2)`, fighterID, gymID,
		); err != nil {
			return domain.WrapError(err, errcodes.InternalServerError, "failed to transfer membership")
		}
		return nil
	})
}

// Cancel removes the fighter's membership.
func (r *MembershipRepository) Cancel(ctx context.Context, fighterID int64) error {
	return withTx(ctx, r.db, func(tx *sqlx.Tx) error {
		if _, err := tx.ExecContext(ctx,
			`CALL cancel_membership($1)`, fighterID,
		); err != nil {
			return domain.WrapError(err, errcodes.InternalServerError, "failed to cancel membership")
		}
		return nil
	})
}
