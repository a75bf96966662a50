package workflow

import (
	"context"
	"log/slog"
	"time"

	"gym_portal/internal/domain"
	"gym_portal/internal/domain/entity"
	"gym_portal/pkg/errcodes"
	"gym_portal/pkg/logx"
)

type MembershipPlans interface {
	PlansForGym(ctx context.Context, gymID int64) ([]entity.MembershipPlan, error)
	SignUp(ctx context.Context, fighterID, planID int64, start time.Time) error
	Transfer(ctx context.Context, fighterID, gymID int64) error
	Cancel(ctx context.Context, fighterID int64) error
}

// Membership covers the four plan operations: list, sign up, transfer,
// cancel. Each is a single stored-procedure transaction.
type Membership struct {
	plans MembershipPlans
	gyms  GymDirectory
	term  Prompter
	log   *slog.Logger
	now   func() time.Time
}

func NewMembership(plans MembershipPlans, gyms GymDirectory, term Prompter, log *slog.Logger) *Membership {
	return &Membership{
		plans: plans,
		gyms:  gyms,
		term:  term,
		log:   log,
		now:   time.Now,
	}
}

func (w *Membership) WithNow(now func() time.Time) *Membership {
	w.now = now
	return w
}

// ListPlans prints the numbered plans a gym offers and returns them.
func (w *Membership) ListPlans(ctx context.Context, gymID int64) ([]entity.MembershipPlan, error) {
	plans, err := w.plans.PlansForGym(ctx, gymID)
	if err != nil {
		w.log.Error("list membership plans", logx.Error(err))
		w.term.Printf("Database Error: %v\n\n", err)
		return nil, err
	}

	if len(plans) == 0 {
		w.term.Printf("No membership plans available for this gym.\n\n")
		return nil, nil
	}

	w.term.Printf("\nAvailable Membership Plans:\n")
	for i, p := range plans {
		w.term.Printf("%d. %-20s $%d/month\n", i+1, p.Type, p.MonthlyFee)
	}
	w.term.Printf("%s\n", divider)

	return plans, nil
}

// SignUp enrolls the fighter into one of their gym's plans with start date =
// today.
func (w *Membership) SignUp(ctx context.Context, fighter *entity.Fighter) error {
	plans, err := w.ListPlans(ctx, fighter.GymID)
	if err != nil || len(plans) == 0 {
		return err
	}

	n, err := promptChoice(ctx, w.term, "Select a plan: ", len(plans))
	if err != nil {
		return err
	}
	plan := plans[n-1]

	if err := w.plans.SignUp(ctx, fighter.ID, plan.ID, w.now()); err != nil {
		w.log.Error("sign up membership", logx.Error(err))
		w.term.Printf("Database Error: %v\n\n", err)
		return err
	}

	w.term.Printf("Signed up for the %s plan.\n\n", plan.Type)

	return nil
}

// Transfer re-prompts for a target gym name until one resolves, then moves the
// membership there. An invalid target never reaches the store.
func (w *Membership) Transfer(ctx context.Context, fighterID int64) error {
	var gymID int64
	for {
		name, err := promptNonEmpty(ctx, w.term, "Enter the gym to transfer to: ")
		if err != nil {
			return err
		}

		gymID, err = w.gyms.IDByName(ctx, name)
		if err == nil {
			break
		}
		if domain.HasCode(err, errcodes.GymNotFound) {
			w.term.Printf("Error: No gym named '%s' exists. Please try again.\n\n", name)
			continue
		}

		w.log.Error("resolve transfer target", logx.Error(err))
		w.term.Printf("Database Error: %v\n\n", err)
		return err
	}

	if err := w.plans.Transfer(ctx, fighterID, gymID); err != nil {
		w.log.Error("transfer membership", logx.Error(err))
		w.term.Printf("Database Error: %v\n\n", err)
		return err
	}

	w.term.Printf("Membership transferred.\n\n")

	return nil
}

// Cancel removes the fighter's membership.
func (w *Membership) Cancel(ctx context.Context, fighterID int64) error {
	if err := w.plans.Cancel(ctx, fighterID); err != nil {
		w.log.Error("cancel membership", logx.Error(err))
		w.term.Printf("Database Error: %v\n\n", err)
		return err
	}

	w.term.Printf("Membership cancelled.\n\n")

	return nil
}
