package persistence_test

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"

	"gym_portal/internal/domain"
	"gym_portal/internal/domain/entity"
	"gym_portal/internal/infrastructure/persistence"
	"gym_portal/pkg/errcodes"
)

func TestIDByNameResolvesExistingGym(t *testing.T) {
	rq := require.New(t)

	db, mock := newMockDB(t)
	repo := persistence.NewGymRepository(db)

	mock.ExpectQuery("SELECT gym_name_to_id").
		WithArgs("Apex").
		WillReturnRows(sqlmock.NewRows([]string{"gym_name_to_id"}).AddRow(7))

	id, err := repo.IDByName(context.Background(), "Apex")
	rq.NoError(err)
	rq.Equal(int64(7), id)
}

func TestIDByNameZeroMeansNotFound(t *testing.T) {
	rq := require.New(t)

	db, mock := newMockDB(t)
	repo := persistence.NewGymRepository(db)

	mock.ExpectQuery("SELECT gym_name_to_id").
		WithArgs("Ghost Gym").
		WillReturnRows(sqlmock.NewRows([]string{"gym_name_to_id"}).AddRow(0))

	_, err := repo.IDByName(context.Background(), "Ghost Gym")
	rq.True(domain.HasCode(err, errcodes.GymNotFound))
}

func TestCreateGymReturnsGeneratedID(t *testing.T) {
	rq := require.New(t)

	db, mock := newMockDB(t)
	repo := persistence.NewGymRepository(db)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT create_gym").
		WillReturnRows(sqlmock.NewRows([]string{"create_gym"}).AddRow(42))
	mock.ExpectCommit()

	id, err := repo.Create(context.Background(), &entity.Gym{Name: "Iron Temple"})
	rq.NoError(err)
	rq.Equal(int64(42), id)
	rq.NoError(mock.ExpectationsWereMet())
}

func TestCreateGymRollsBackOnError(t *testing.T) {
	rq := require.New(t)

	db, mock := newMockDB(t)
	repo := persistence.NewGymRepository(db)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT create_gym").
		WillReturnError(errors.New("unique violation"))
	mock.ExpectRollback()

	_, err := repo.Create(context.Background(), &entity.Gym{Name: "Iron Temple"})
	rq.Error(err)
	rq.NoError(mock.ExpectationsWereMet())
}
