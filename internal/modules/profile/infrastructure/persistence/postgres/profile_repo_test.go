package postgres_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TuaBBL/beatbookingslive/internal/modules/profile/domain"
	"github.com/TuaBBL/beatbookingslive/internal/modules/profile/infrastructure/persistence/postgres"
)

func profileRows(id uuid.UUID) *sqlmock.Rows {
	now := time.Now()
	return sqlmock.NewRows([]string{
		"id", "full_name", "location", "state_territory", "phone_number",
		"profile_image_url", "profile_completed", "created_at", "updated_at",
	}).AddRow(id, "Alex Smith", "Sydney, Australia", "New South Wales", nil, nil, true, now, now)
}

func TestProfileRepository_GetByUserID(t *testing.T) {
	db, mock, cleanup := newMockDB(t)
	defer cleanup()
	repo := postgres.NewProfileRepository(db)
	ctx := context.Background()
	userID := uuid.New()

	mock.ExpectQuery(`SELECT \* FROM profiles WHERE id = \$1`).
		WithArgs(userID).WillReturnRows(profileRows(userID))

	profile, err := repo.GetByUserID(ctx, userID)
	require.NoError(t, err)
	require.NotNil(t, profile)
	assert.Equal(t, "Alex Smith", *profile.FullName)
	assert.True(t, profile.ProfileCompleted)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProfileRepository_GetByUserID_MissingRowIsNilNil(t *testing.T) {
	db, mock, cleanup := newMockDB(t)
	defer cleanup()
	repo := postgres.NewProfileRepository(db)

	mock.ExpectQuery(`SELECT \* FROM profiles WHERE id = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	profile, err := repo.GetByUserID(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.Nil(t, profile)
}

func TestProfileRepository_Save_UpdatesBothTablesInOneTx(t *testing.T) {
	db, mock, cleanup := newMockDB(t)
	defer cleanup()
	repo := postgres.NewProfileRepository(db)
	ctx := context.Background()

	name := "Alex Smith"
	profile := &domain.Profile{ID: uuid.New(), FullName: &name, ProfileCompleted: true}

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE profiles`).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`UPDATE users`).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, repo.Save(ctx, profile))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProfileRepository_Save_RollsBackWhenMirrorWriteFails(t *testing.T) {
	db, mock, cleanup := newMockDB(t)
	defer cleanup()
	repo := postgres.NewProfileRepository(db)
	ctx := context.Background()

	profile := &domain.Profile{ID: uuid.New()}

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE profiles`).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`UPDATE users`).WillReturnError(errors.New("users table locked"))
	mock.ExpectRollback()

	err := repo.Save(ctx, profile)
	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
