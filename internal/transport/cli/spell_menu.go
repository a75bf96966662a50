package cli

import (
	"context"
	"log/slog"

	"gym_portal/internal/workflow"
)

// SpellMenu is the two-item menu of the spell catalog portal.
type SpellMenu struct {
	catalog *workflow.Catalog
	term    workflow.Prompter
	log     *slog.Logger
}

func NewSpellMenu(catalog *workflow.Catalog, term workflow.Prompter, log *slog.Logger) *SpellMenu {
	return &SpellMenu{
		catalog: catalog,
		term:    term,
		log:     log,
	}
}

// Run drives the menu until the user disconnects.
func (m *SpellMenu) Run(ctx context.Context) error {
	for {
		m.term.Printf("\n---------- Menu ----------\n")
		m.term.Printf("1: Display the spell types\n")
		m.term.Printf("2: Disconnect from the database and close the application\n")
		m.term.Printf("%s\n", divider)

		choice, err := prompt(ctx, m.term, "Enter your choice (1 or 2): ")
		if err != nil {
			return nil
		}

		switch choice {
		case "1":
			dispatch(ctx, m.term, m.catalog.BrowseByType)
		case "2":
			return nil
		default:
			m.term.Printf("Invalid choice. Please enter 1 or 2.\n\n")
		}
	}
}
