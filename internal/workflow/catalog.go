package workflow

import (
	"context"
	"log/slog"
	"strings"

	"github.com/samber/lo"

	"gym_portal/internal/domain/entity"
	"gym_portal/pkg/logx"
)

type SpellCatalog interface {
	DistinctTypes(ctx context.Context) ([]string, error)
	ByType(ctx context.Context, spellType string) ([]entity.Spell, error)
}

// Catalog is the read-only list-and-filter workflow of the spell portal.
type Catalog struct {
	spells SpellCatalog
	term   Prompter
	log    *slog.Logger
}

func NewCatalog(spells SpellCatalog, term Prompter, log *slog.Logger) *Catalog {
	return &Catalog{
		spells: spells,
		term:   term,
		log:    log,
	}
}

// BrowseByType lists the known spell types, lets the user pick one and
// prints the matching spells.
func (c *Catalog) BrowseByType(ctx context.Context) error {
	types, err := c.spells.DistinctTypes(ctx)
	if err != nil {
		c.log.Error("list spell types", logx.Error(err))
		c.term.Printf("Error retrieving spell types: %v\n\n", err)
		return err
	}

	if len(types) == 0 {
		c.term.Printf("No spell types found in the database.\n\n")
		return nil
	}

	c.term.Printf("\nAvailable Spell Types: \n")
	for i, spellType := range types {
		c.term.Printf("%d. %s\n", i+1, spellType)
	}
	c.term.Printf("%s\n", divider)

	selected, err := c.selectType(ctx, types)
	if err != nil {
		return err
	}

	spells, err := c.spells.ByType(ctx, selected)
	if err != nil {
		c.log.Error("look up spells by type", logx.Error(err))
		c.term.Printf("Failed to retrieve spell data. Please try again.\n\n")
		return err
	}

	if len(spells) == 0 {
		c.term.Printf("No spells found with spell type '%s'.\n\n", selected)
		return nil
	}

	c.term.Printf("\n---------- Spells with Type '%s' ----------\n\n", selected)
	c.term.Printf("%-12s %-35s %-30s\n", "Spell ID", "Spell Name", "Spell Alias")
	c.term.Printf("%s\n", divider)
	for _, sp := range spells {
		c.term.Printf("%-12d %-35s %-30s\n", sp.ID, sp.Name, sp.AliasOrNA())
	}
	c.term.Printf("%s\n", divider)
	c.term.Printf("Total spells found: %d\n\n", len(spells))

	return nil
}

// selectType matches the input case-insensitively against the known list and
// returns the stored casing, not the user's.
func (c *Catalog) selectType(ctx context.Context, types []string) (string, error) {
	for {
		input, err := c.term.ReadLine(ctx, "Enter a spell type from the list above: ")
		if err != nil {
			return "", err
		}

		if input == "" {
			c.term.Printf("Error: Input cannot be empty. Please try again.\n\n")
			continue
		}

		match, ok := lo.Find(types, func(t string) bool {
			return strings.EqualFold(t, input)
		})
		if !ok {
			c.term.Printf("Error: Invalid spell type '%s'. Please enter a spell type from the list.\n\n", input)
			continue
		}

		return match, nil
	}
}
