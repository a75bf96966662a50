package workflow_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"gym_portal/internal/domain"
	"gym_portal/internal/domain/entity"
	"gym_portal/internal/workflow"
	"gym_portal/pkg/errcodes"
)

type fakeGyms struct {
	ids     map[string]int64
	created []entity.Gym
	nextID  int64
}

func (f *fakeGyms) IDByName(_ context.Context, name string) (int64, error) {
	if id, ok := f.ids[name]; ok {
		return id, nil
	}
	return 0, domain.NewError(errcodes.GymNotFound, "gym not found")
}

func (f *fakeGyms) GetByID(_ context.Context, id int64) (*entity.Gym, error) {
	for name, gymID := range f.ids {
		if gymID == id {
			return &entity.Gym{ID: id, Name: name}, nil
		}
	}
	return nil, domain.NewError(errcodes.GymNotFound, "gym not found")
}

func (f *fakeGyms) Create(_ context.Context, gym *entity.Gym) (int64, error) {
	f.nextID++
	f.created = append(f.created, *gym)
	if f.ids == nil {
		f.ids = map[string]int64{}
	}
	f.ids[gym.Name] = f.nextID
	return f.nextID, nil
}

type fakeFighters struct {
	accounts  map[string]*entity.Fighter
	budget    int64
	created   []entity.Fighter
	createErr error
}

func (f *fakeFighters) ByEmail(_ context.Context, email string) (*entity.Fighter, error) {
	if fighter, ok := f.accounts[email]; ok {
		return fighter, nil
	}
	return nil, domain.NewError(errcodes.FighterNotFound, "fighter not found")
}

func (f *fakeFighters) Budget(context.Context, int64) (int64, error) {
	return f.budget, nil
}

func (f *fakeFighters) Create(_ context.Context, fighter *entity.Fighter) (int64, error) {
	if f.createErr != nil {
		return 0, f.createErr
	}
	f.created = append(f.created, *fighter)
	return int64(len(f.created)), nil
}

func TestRegisterWithExistingGym(t *testing.T) {
	rq := require.New(t)

	gyms := &fakeGyms{ids: map[string]int64{"Apex": 7}}
	fighters := &fakeFighters{}

	term, _ := newTerm("Jon Jones\njon@ufc.com\n555-0100\n205\nApex\n")
	w := workflow.NewRegistration(gyms, fighters, term, discardLogger())

	fighter, err := w.Register(context.Background())
	rq.NoError(err)
	rq.NotNil(fighter)
	rq.Equal(int64(7), fighter.GymID)
	rq.Equal("jon@ufc.com", fighter.Email)
	rq.Equal(205, fighter.WeightLbs)
	rq.NotZero(fighter.ID)
	rq.Empty(gyms.created)
}

func TestRegisterCreatesMissingGym(t *testing.T) {
	rq := require.New(t)

	gyms := &fakeGyms{}
	fighters := &fakeFighters{}

	input := "Amanda Nunes\namanda@ufc.com\n555-0101\n135\n" +
		"Iron Temple\ny\n12 Main St\nDenver\n555-0199\n09:00\n21:00\n"
	term, out := newTerm(input)
	w := workflow.NewRegistration(gyms, fighters, term, discardLogger())

	fighter, err := w.Register(context.Background())
	rq.NoError(err)
	rq.NotNil(fighter)

	rq.Len(gyms.created, 1)
	rq.Equal("Iron Temple", gyms.created[0].Name)
	rq.Equal(gyms.ids["Iron Temple"], fighter.GymID)
	rq.Contains(out.String(), "Gym 'Iron Temple' created")
}

func TestRegisterDeclineCreateRepromptsGymName(t *testing.T) {
	rq := require.New(t)

	gyms := &fakeGyms{ids: map[string]int64{"Apex": 3}}
	fighters := &fakeFighters{}

	input := "Max Holloway\nmax@ufc.com\n555-0102\n145\nNowhere\nn\nApex\n"
	term, _ := newTerm(input)
	w := workflow.NewRegistration(gyms, fighters, term, discardLogger())

	fighter, err := w.Register(context.Background())
	rq.NoError(err)
	rq.Equal(int64(3), fighter.GymID)
	rq.Empty(gyms.created)
}

func TestRegisterRepromptsInvalidEmail(t *testing.T) {
	rq := require.New(t)

	gyms := &fakeGyms{ids: map[string]int64{"Apex": 1}}
	fighters := &fakeFighters{}

	input := "Sean O'Malley\nnot-an-email\nsean@ufc.com\n555-0103\n135\nApex\n"
	term, out := newTerm(input)
	w := workflow.NewRegistration(gyms, fighters, term, discardLogger())

	fighter, err := w.Register(context.Background())
	rq.NoError(err)
	rq.Equal("sean@ufc.com", fighter.Email)
	rq.Contains(out.String(), "'not-an-email' is not a valid email address")
}

func TestRegisterFailureReturnsNoFighter(t *testing.T) {
	rq := require.New(t)

	gyms := &fakeGyms{ids: map[string]int64{"Apex": 1}}
	fighters := &fakeFighters{
		createErr: domain.NewError(errcodes.InternalServerError, "constraint violation"),
	}

	term, out := newTerm("A\na@b.co\n555\n170\nApex\n")
	w := workflow.NewRegistration(gyms, fighters, term, discardLogger())

	fighter, err := w.Register(context.Background())
	rq.Error(err)
	rq.Nil(fighter)
	rq.Contains(out.String(), "Database Error:")
}
