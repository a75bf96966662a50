package persistence_test

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"

	"gym_portal/internal/domain"
	"gym_portal/internal/infrastructure/persistence"
	"gym_portal/pkg/errcodes"
)

func TestByEmailReturnsFighter(t *testing.T) {
	rq := require.New(t)

	db, mock := newMockDB(t)
	repo := persistence.NewFighterRepository(db)

	rows := sqlmock.NewRows([]string{
		"id", "name", "email", "phone", "weight_lbs", "budget", "gym_id", "wins", "losses",
	}).AddRow(1, "Jon Jones", "jon@ufc.com", "555-0100", 205, 300, 7, 27, 1)

	mock.ExpectQuery("FROM fighter").
		WithArgs("jon@ufc.com").
		WillReturnRows(rows)

	fighter, err := repo.ByEmail(context.Background(), "jon@ufc.com")
	rq.NoError(err)
	rq.Equal(int64(1), fighter.ID)
	rq.Equal("27-1", fighter.Record())
}

func TestByEmailNotFound(t *testing.T) {
	rq := require.New(t)

	db, mock := newMockDB(t)
	repo := persistence.NewFighterRepository(db)

	mock.ExpectQuery("FROM fighter").
		WithArgs("nobody@ufc.com").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := repo.ByEmail(context.Background(), "nobody@ufc.com")
	rq.True(domain.HasCode(err, errcodes.FighterNotFound))
}

func TestBudgetReadsCurrentBalance(t *testing.T) {
	rq := require.New(t)

	db, mock := newMockDB(t)
	repo := persistence.NewFighterRepository(db)

	mock.ExpectQuery("SELECT budget").
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"budget"}).AddRow(240))

	budget, err := repo.Budget(context.Background(), 1)
	rq.NoError(err)
	rq.Equal(int64(240), budget)
}
