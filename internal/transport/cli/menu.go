package cli

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"strings"

	"gym_portal/internal/domain"
	"gym_portal/internal/domain/entity"
	"gym_portal/internal/workflow"
	"gym_portal/pkg/cliio"
	"gym_portal/pkg/errcodes"
)

var divider = strings.Repeat("-", 70) //nolint:gochecknoglobals

// Workflows bundles everything the gym menu dispatches to.
type Workflows struct {
	Fighters     workflow.FighterAccounts
	Gyms         workflow.GymDirectory
	Registration *workflow.Registration
	Membership   *workflow.Membership
	Commerce     *workflow.Commerce
	Activity     *workflow.Activity
}

// Menu is the two-level text menu of the gym portal.
type Menu struct {
	wf   Workflows
	term workflow.Prompter
	log  *slog.Logger
}

func NewMenu(wf Workflows, term workflow.Prompter, log *slog.Logger) *Menu {
	return &Menu{
		wf:   wf,
		term: term,
		log:  log,
	}
}

// prompt reads one token under a fresh interrupt scope, so Ctrl-C abandons
// only the current read.
func prompt(ctx context.Context, term workflow.Prompter, label string) (string, error) {
	ictx, stop := signal.NotifyContext(ctx, os.Interrupt)
	defer stop()

	return term.ReadLine(ictx, label)
}

// dispatch runs one workflow under its own interrupt scope. An interrupt or a
// reported failure both land back at the enclosing menu.
func dispatch(ctx context.Context, term workflow.Prompter, fn func(context.Context) error) {
	ictx, stop := signal.NotifyContext(ctx, os.Interrupt)
	defer stop()

	if err := fn(ictx); err != nil && errors.Is(err, cliio.ErrInterrupted) {
		term.Printf("\nOperation cancelled by user.\n\n")
	}
}

// Run drives the top-level menu until the user disconnects. An interrupt at
// this level counts as a disconnect.
func (m *Menu) Run(ctx context.Context) error {
	for {
		m.term.Printf("\n---------- Menu ----------\n")
		m.term.Printf("1: Fighter portal\n")
		m.term.Printf("2: Disconnect from the database and close the application\n")
		m.term.Printf("%s\n", divider)

		choice, err := prompt(ctx, m.term, "Enter your choice (1 or 2): ")
		if err != nil {
			return nil
		}

		switch choice {
		case "1":
			m.fighterPortal(ctx)
		case "2":
			return nil
		default:
			m.term.Printf("Invalid choice. Please enter 1 or 2.\n\n")
		}
	}
}

// fighterPortal resolves the account by email, offering registration when the
// address is unknown, then enters the fighter menu.
func (m *Menu) fighterPortal(ctx context.Context) {
	var fighter *entity.Fighter

	dispatch(ctx, m.term, func(ictx context.Context) error {
		email, err := m.term.ReadLine(ictx, "Enter fighter email: ")
		if err != nil {
			return err
		}

		found, err := m.wf.Fighters.ByEmail(ictx, email)
		if err == nil {
			fighter = found
			m.term.Printf("Welcome back, %s!\n", fighter.Name)
			return nil
		}
		if !domain.HasCode(err, errcodes.FighterNotFound) {
			m.term.Printf("Database Error: %v\n\n", err)
			return err
		}

		m.term.Printf("No fighter is registered under '%s'.\n", email)
		answer, err := m.term.ReadLine(ictx, "Would you like to register? (y/n): ")
		if err != nil {
			return err
		}
		if !strings.EqualFold(answer, "y") && !strings.EqualFold(answer, "yes") {
			return nil
		}

		fighter, err = m.wf.Registration.Register(ictx)
		return err
	})

	if fighter == nil {
		return
	}

	m.fighterMenu(ctx, fighter)
}

func (m *Menu) fighterMenu(ctx context.Context, fighter *entity.Fighter) {
	for {
		m.term.Printf("\n---------- Fighter Menu ----------\n")
		m.term.Printf("1: View profile\n")
		m.term.Printf("2: List membership plans\n")
		m.term.Printf("3: Sign up for a membership\n")
		m.term.Printf("4: Transfer membership to another gym\n")
		m.term.Printf("5: Cancel membership\n")
		m.term.Printf("6: Buy equipment\n")
		m.term.Printf("7: Simulate a fight\n")
		m.term.Printf("8: Training check-in\n")
		m.term.Printf("9: Return to main menu\n")
		m.term.Printf("%s\n", divider)

		choice, err := prompt(ctx, m.term, "Enter your choice (1-9): ")
		if err != nil {
			return
		}

		switch choice {
		case "1":
			dispatch(ctx, m.term, func(ictx context.Context) error {
				return m.viewProfile(ictx, fighter.Email)
			})
		case "2":
			dispatch(ctx, m.term, func(ictx context.Context) error {
				_, err := m.wf.Membership.ListPlans(ictx, fighter.GymID)
				return err
			})
		case "3":
			dispatch(ctx, m.term, func(ictx context.Context) error {
				return m.wf.Membership.SignUp(ictx, fighter)
			})
		case "4":
			dispatch(ctx, m.term, func(ictx context.Context) error {
				return m.wf.Membership.Transfer(ictx, fighter.ID)
			})
		case "5":
			dispatch(ctx, m.term, func(ictx context.Context) error {
				return m.wf.Membership.Cancel(ictx, fighter.ID)
			})
		case "6":
			dispatch(ctx, m.term, func(ictx context.Context) error {
				_, err := m.wf.Commerce.BuyEquipment(ictx, fighter.ID)
				return err
			})
		case "7":
			dispatch(ctx, m.term, func(ictx context.Context) error {
				return m.wf.Activity.SimulateFight(ictx, fighter.ID)
			})
		case "8":
			dispatch(ctx, m.term, func(ictx context.Context) error {
				return m.wf.Activity.CheckInTraining(ictx, fighter.ID)
			})
		case "9":
			return
		default:
			m.term.Printf("Invalid choice. Please enter a number from 1 to 9.\n\n")
		}
	}
}

// viewProfile re-reads the fighter: budget and fight record move between
// operations.
func (m *Menu) viewProfile(ctx context.Context, email string) error {
	fighter, err := m.wf.Fighters.ByEmail(ctx, email)
	if err != nil {
		m.term.Printf("Database Error: %v\n\n", err)
		return err
	}

	gymName := "-"
	if gym, gymErr := m.wf.Gyms.GetByID(ctx, fighter.GymID); gymErr == nil {
		gymName = gym.Name
	}

	m.term.Printf("\n---------- Fighter Profile ----------\n")
	m.term.Printf("ID:       %d\n", fighter.ID)
	m.term.Printf("Name:     %s\n", fighter.Name)
	m.term.Printf("Email:    %s\n", fighter.Email)
	m.term.Printf("Phone:    %s\n", fighter.Phone)
	m.term.Printf("Weight:   %d lbs\n", fighter.WeightLbs)
	m.term.Printf("Gym:      %s\n", gymName)
	m.term.Printf("Budget:   $%d\n", fighter.Budget)
	m.term.Printf("Record:   %s\n", fighter.Record())
	m.term.Printf("%s\n", divider)

	return nil
}
