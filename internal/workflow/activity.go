package workflow

import (
	"context"
	"log/slog"
	"math/rand/v2"
	"strings"
	"time"

	"gym_portal/internal/domain/entity"
	"gym_portal/internal/infrastructure/persistence"
	"gym_portal/pkg/logx"
)

const (
	fightStartsAt    = "18:00"
	fightEndsAt      = "21:00"
	trainingStartsAt = "10:00"
	trainingEndsAt   = "11:30"

	winBudgetDelta  = 50
	lossBudgetDelta = -50
)

type triviaQuestion struct {
	Prompt string
	Answer string
}

// The fixed pool the fight simulation draws from, one question per fight.
var triviaQuestions = []triviaQuestion{ //nolint:gochecknoglobals
	{"How many rounds is a UFC championship bout scheduled for?", "5"},
	{"What does MMA stand for?", "Mixed Martial Arts"},
	{"How many sides does the UFC octagon have?", "8"},
	{"Under the 10-point must system, how many points does the round winner receive?", "10"},
	{"What is the lightweight division limit in pounds?", "155"},
	{"Which corner does the challenger traditionally take, red or blue?", "Blue"},
}

type FightLog interface {
	RecordFight(ctx context.Context, res persistence.FightResult) (int64, error)
	CheckIn(ctx context.Context, fighterID int64, session entity.TrainingSession) (int64, error)
}

// Activity runs the fight simulation and the training check-in.
type Activity struct {
	fights   FightLog
	fighters FighterAccounts
	term     Prompter
	log      *slog.Logger
	pick     func(n int) int
	now      func() time.Time
}

func NewActivity(fights FightLog, fighters FighterAccounts, term Prompter, log *slog.Logger) *Activity {
	return &Activity{
		fights:   fights,
		fighters: fighters,
		term:     term,
		log:      log,
		pick:     rand.IntN,
		now:      time.Now,
	}
}

func (w *Activity) WithPick(pick func(n int) int) *Activity {
	w.pick = pick
	return w
}

func (w *Activity) WithNow(now func() time.Time) *Activity {
	w.now = now
	return w
}

// SimulateFight asks one trivia question and settles the fight on the answer:
// Win pays +50, Loss costs 50. Fight record, budget change and outcome land
// in one transaction.
func (w *Activity) SimulateFight(ctx context.Context, fighterID int64) error {
	budget, err := w.fighters.Budget(ctx, fighterID)
	if err != nil {
		w.log.Error("read budget", logx.Error(err))
		w.term.Printf("Database Error: %v\n\n", err)
		return err
	}

	location, err := promptNonEmpty(ctx, w.term, "Enter fight location: ")
	if err != nil {
		return err
	}

	q := triviaQuestions[w.pick(len(triviaQuestions))]
	answer, err := w.term.ReadLine(ctx, q.Prompt+" ")
	if err != nil {
		return err
	}

	outcome, delta := entity.OutcomeLoss, int64(lossBudgetDelta)
	if strings.EqualFold(answer, q.Answer) {
		outcome, delta = entity.OutcomeWin, int64(winBudgetDelta)
	}

	fightID, err := w.fights.RecordFight(ctx, persistence.FightResult{
		FighterID:   fighterID,
		Date:        w.now(),
		StartsAt:    fightStartsAt,
		EndsAt:      fightEndsAt,
		Location:    location,
		Outcome:     outcome,
		BudgetDelta: delta,
	})
	if err != nil {
		w.log.Error("record fight", logx.Error(err))
		w.term.Printf("Database Error: %v\n\n", err)
		return err
	}

	w.log.Info("fight recorded",
		slog.Int64("fight-id", fightID),
		slog.Int64(logx.FieldFighterID, fighterID),
		slog.String(logx.FieldOutcome, string(outcome)),
	)

	if outcome == entity.OutcomeWin {
		w.term.Printf("Correct! You win the fight at %s. Budget: $%d.\n\n", location, budget+delta)
	} else {
		w.term.Printf("Wrong answer (it was '%s'). You lose the fight at %s. Budget: $%d.\n\n",
			q.Answer, location, budget+delta)
	}

	return nil
}

// CheckInTraining records attendance at today's session, creating the session
// when none exists for the fixed start time yet.
func (w *Activity) CheckInTraining(ctx context.Context, fighterID int64) error {
	sessionID, err := w.fights.CheckIn(ctx, fighterID, entity.TrainingSession{
		Date:     w.now(),
		StartsAt: trainingStartsAt,
		EndsAt:   trainingEndsAt,
	})
	if err != nil {
		w.log.Error("training check-in", logx.Error(err))
		w.term.Printf("Database Error: %v\n\n", err)
		return err
	}

	w.log.Info("training attendance recorded",
		slog.Int64("session-id", sessionID),
		slog.Int64(logx.FieldFighterID, fighterID),
	)
	w.term.Printf("Checked in to today's %s training session.\n\n", trainingStartsAt)

	return nil
}
