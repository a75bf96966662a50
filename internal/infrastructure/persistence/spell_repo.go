package persistence

import (
	"context"

	"github.com/jmoiron/sqlx"

	"gym_portal/internal/domain"
	"gym_portal/internal/domain/entity"
	"gym_portal/pkg/errcodes"
)

type SpellRepository struct {
	db *sqlx.DB
}

func NewSpellRepository(db *sqlx.DB) *SpellRepository {
	return &SpellRepository{db: db}
}

// DistinctTypes returns the sorted set of non-null spell type labels.
func (r *SpellRepository) DistinctTypes(ctx context.Context) ([]string, error) {
	query := `
		SELECT DISTINCT spell_type
		FROM spell
		WHERE spell_type IS NOT NULL
		ORDER BY spell_type`

	var types []string
	if err := r.db.SelectContext(ctx, &types, query); err != nil {
		return nil, domain.WrapError(err, errcodes.InternalServerError, "failed to list spell types")
	}

	return types, nil
}

// ByType invokes the spell_has_type routine and returns the matching rows.
func (r *SpellRepository) ByType(ctx context.Context, spellType string) ([]entity.Spell, error) {
	query := `SELECT id, name, alias FROM spell_has_type($1)`

	var schemas []spellSchema
	if err := r.db.SelectContext(ctx, &schemas, query, spellType); err != nil {
		return nil, domain.WrapError(err, errcodes.InternalServerError, "failed to look up spells by type")
	}

	spells := make([]entity.Spell, 0, len(schemas))
	for _, s := range schemas {
		spells = append(spells, s.toDomain())
	}

	return spells, nil
}
