package workflow

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/go-playground/validator/v10"

	"gym_portal/internal/domain"
	"gym_portal/internal/domain/entity"
	"gym_portal/pkg/errcodes"
	"gym_portal/pkg/logx"
)

type GymDirectory interface {
	IDByName(ctx context.Context, name string) (int64, error)
	GetByID(ctx context.Context, id int64) (*entity.Gym, error)
	Create(ctx context.Context, gym *entity.Gym) (int64, error)
}

type FighterAccounts interface {
	ByEmail(ctx context.Context, email string) (*entity.Fighter, error)
	Budget(ctx context.Context, fighterID int64) (int64, error)
	Create(ctx context.Context, fighter *entity.Fighter) (int64, error)
}

// Registration onboards a new fighter, creating the gym on the way when the
// named one does not exist yet.
type Registration struct {
	gyms     GymDirectory
	fighters FighterAccounts
	term     Prompter
	log      *slog.Logger
	validate *validator.Validate
}

func NewRegistration(gyms GymDirectory, fighters FighterAccounts, term Prompter, log *slog.Logger) *Registration {
	return &Registration{
		gyms:     gyms,
		fighters: fighters,
		term:     term,
		log:      log,
		validate: validator.New(),
	}
}

type fighterInput struct {
	Name      string `validate:"required"`
	Email     string `validate:"required,email"`
	Phone     string `validate:"required"`
	WeightLbs int    `validate:"gt=0"`
}

// Register prompts the fighter fields, resolves the gym and creates the
// fighter. A nil fighter means the caller must not proceed to any
// downstream step.
func (w *Registration) Register(ctx context.Context) (*entity.Fighter, error) {
	name, err := promptNonEmpty(ctx, w.term, "Enter fighter name: ")
	if err != nil {
		return nil, err
	}

	email, err := w.promptEmail(ctx)
	if err != nil {
		return nil, err
	}

	phone, err := promptNonEmpty(ctx, w.term, "Enter phone number: ")
	if err != nil {
		return nil, err
	}

	weight, err := promptPositiveInt(ctx, w.term, "Enter weight (lbs): ")
	if err != nil {
		return nil, err
	}

	in := fighterInput{Name: name, Email: email, Phone: phone, WeightLbs: weight}
	if err := w.validate.Struct(in); err != nil {
		w.term.Printf("Error: %v\n\n", err)
		return nil, domain.WrapError(err, errcodes.ValidationError, "invalid fighter input")
	}

	gymID, err := w.resolveGym(ctx)
	if err != nil {
		return nil, err
	}

	fighter := &entity.Fighter{
		Name:      name,
		Email:     email,
		Phone:     phone,
		WeightLbs: weight,
		GymID:     gymID,
	}

	id, err := w.fighters.Create(ctx, fighter)
	if err != nil {
		w.log.Error("create fighter", logx.Error(err))
		w.term.Printf("Database Error: %v\n\n", err)
		return nil, err
	}
	fighter.ID = id

	w.log.Info("fighter registered",
		slog.Int64(logx.FieldFighterID, id),
		slog.Int64(logx.FieldGymID, gymID),
	)
	w.term.Printf("Fighter registered with ID %d.\n\n", id)

	return fighter, nil
}

func (w *Registration) promptEmail(ctx context.Context) (string, error) {
	for {
		email, err := promptNonEmpty(ctx, w.term, "Enter email: ")
		if err != nil {
			return "", err
		}

		if err := w.validate.Var(email, "email"); err != nil {
			w.term.Printf("Error: '%s' is not a valid email address.\n\n", email)
			continue
		}

		return email, nil
	}
}

// resolveGym loops until a gym identifier is obtained: look up by name, offer
// to create when unknown, otherwise re-prompt for another name.
func (w *Registration) resolveGym(ctx context.Context) (int64, error) {
	for {
		name, err := promptNonEmpty(ctx, w.term, "Enter gym name: ")
		if err != nil {
			return 0, err
		}

		id, err := w.gyms.IDByName(ctx, name)
		if err == nil {
			return id, nil
		}
		if !domain.HasCode(err, errcodes.GymNotFound) {
			w.log.Error("resolve gym", logx.Error(err))
			w.term.Printf("Database Error: %v\n\n", err)
			return 0, err
		}

		create, err := promptYesNo(ctx, w.term,
			fmt.Sprintf("Gym '%s' is not registered. Create it now? (y/n): ", name))
		if err != nil {
			return 0, err
		}
		if !create {
			continue
		}

		return w.createGym(ctx, name)
	}
}

func (w *Registration) createGym(ctx context.Context, name string) (int64, error) {
	street, err := w.term.ReadLine(ctx, "Enter street address (optional): ")
	if err != nil {
		return 0, err
	}
	city, err := w.term.ReadLine(ctx, "Enter city (optional): ")
	if err != nil {
		return 0, err
	}
	phone, err := promptNonEmpty(ctx, w.term, "Enter gym phone number: ")
	if err != nil {
		return 0, err
	}
	opens, err := promptNonEmpty(ctx, w.term, "Enter opening time (HH:MM): ")
	if err != nil {
		return 0, err
	}
	closes, err := promptNonEmpty(ctx, w.term, "Enter closing time (HH:MM): ")
	if err != nil {
		return 0, err
	}

	id, err := w.gyms.Create(ctx, &entity.Gym{
		Name:     name,
		Street:   street,
		City:     city,
		Phone:    phone,
		OpensAt:  opens,
		ClosesAt: closes,
	})
	if err != nil {
		w.log.Error("create gym", logx.Error(err))
		w.term.Printf("Database Error: %v\n\n", err)
		return 0, err
	}

	w.term.Printf("Gym '%s' created with ID %d.\n\n", name, id)

	return id, nil
}
