package persistence_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"

	"gym_portal/internal/domain"
	"gym_portal/internal/infrastructure/persistence"
	"gym_portal/pkg/errcodes"
)

func TestPlansForGym(t *testing.T) {
	rq := require.New(t)

	db, mock := newMockDB(t)
	repo := persistence.NewMembershipRepository(db)

	mock.ExpectQuery("FROM memberships_for_gym").
		WithArgs(int64(3)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "gym_id", "plan_type", "monthly_fee"}).
			AddRow(10, 3, "Basic", 50).
			AddRow(11, 3, "Premium", 120))

	plans, err := repo.PlansForGym(context.Background(), 3)
	rq.NoError(err)
	rq.Len(plans, 2)
	rq.Equal("Premium", plans[1].Type)
	rq.Equal(int64(120), plans[1].MonthlyFee)
	rq.NoError(mock.ExpectationsWereMet())
}

func TestSignUpCommitsOnSuccess(t *testing.T) {
	rq := require.New(t)

	db, mock := newMockDB(t)
	repo := persistence.NewMembershipRepository(db)

	start := time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)

	mock.ExpectBegin()
	mock.ExpectExec("CALL sign_up_membership").
		WithArgs(int64(5), int64(10), start).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	rq.NoError(repo.SignUp(context.Background(), 5, 10, start))
	rq.NoError(mock.ExpectationsWereMet())
}

func TestTransferRollsBackOnFailure(t *testing.T) {
	rq := require.New(t)

	db, mock := newMockDB(t)
	repo := persistence.NewMembershipRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec("CALL transfer_membership").
		WithArgs(int64(5), int64(9)).
		WillReturnError(errors.New("no active membership"))
	mock.ExpectRollback()

	err := repo.Transfer(context.Background(), 5, 9)
	rq.True(domain.HasCode(err, errcodes.InternalServerError))
	rq.NoError(mock.ExpectationsWereMet())
}

func TestCancelCommitsOnSuccess(t *testing.T) {
	rq := require.New(t)

	db, mock := newMockDB(t)
	repo := persistence.NewMembershipRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec("CALL cancel_membership").
		WithArgs(int64(5)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	rq.NoError(repo.Cancel(context.Background(), 5))
	rq.NoError(mock.ExpectationsWereMet())
}
