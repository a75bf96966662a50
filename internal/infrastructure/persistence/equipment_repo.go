package persistence

import (
	"context"

	"github.com/jmoiron/sqlx"

	"gym_portal/internal/domain"
	"gym_portal/internal/domain/entity"
	"gym_portal/pkg/errcodes"
)

type EquipmentRepository struct {
	db *sqlx.DB
}

func NewEquipmentRepository(db *sqlx.DB) *EquipmentRepository {
	return &EquipmentRepository{db: db}
}

// List returns the catalog of purchasable equipment.
func (r *EquipmentRepository) List(ctx context.Context) ([]entity.Equipment, error) {
	query := `SELECT id, equipment_type, price FROM equipment ORDER BY id`

	var items []entity.Equipment
	if err := r.db.SelectContext(ctx, &items, query); err != nil {
		return nil, domain.WrapError(err, errcodes.InternalServerError, "failed to list equipment")
	}

	return items, nil
}

// Purchase records the purchase and debits the fighter's budget as one unit.
func (r *EquipmentRepository) Purchase(ctx context.Context, fighterID, equipmentID, price int64) error {
	return withTx(ctx, r.db, func(tx *sqlx.Tx) error {
		if _, err := tx.ExecContext(ctx,
			`CALL record_purchase($1, $2)`, fighterID, equipmentID,
		); err != nil {
			return domain.WrapError(err, errcodes.InternalServerError, "failed to record purchase")
		}

		if _, err := tx.ExecContext(ctx,
			`CALL adjust_fighter_budget($1, $2)`, fighterID, -price,
		); err != nil {
			return domain.WrapError(err, errcodes.InternalServerError, "failed to debit budget")
		}

		return nil
	})
}
