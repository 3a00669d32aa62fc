// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-char-keeper/internal/logger"
	"github.com/MKhiriev/go-char-keeper/models"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDB(t *testing.T) (*DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return &DB{
		DB:                 db,
		errorClassificator: NewPostgresErrorClassifier(),
		logger:             logger.Nop(),
	}, mock
}

func newTestUserRepo(t *testing.T) (*userRepository, sqlmock.Sqlmock) {
	db, mock := newTestDB(t)
	return &userRepository{db: db, logger: logger.Nop()}, mock
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}

var userRowColumns = []string{"id", "name", "email", "password_hash", "created_at"}

func TestCreateUser_Success(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	now := time.Now()
	mock.ExpectQuery("INSERT INTO users").
		WithArgs("pilot", "p@example.com", "hash").
		WillReturnRows(sqlmock.NewRows(userRowColumns).AddRow(1, "pilot", "p@example.com", "hash", now))

	created, err := repo.CreateUser(context.Background(), models.User{
		Name:         "pilot",
		Email:        "p@example.com",
		PasswordHash: "hash",
	})
	require.NoError(t, err)

	assert.Equal(t, int64(1), created.UserID)
	assert.Equal(t, "pilot", created.Name)
	assert.WithinDuration(t, now, created.CreatedAt, time.Millisecond)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateUser_UniqueViolation(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery("INSERT INTO users").
		WillReturnError(pgError(pgerrcode.UniqueViolation))

	_, err := repo.CreateUser(context.Background(), models.User{Name: "pilot"})
	assert.ErrorIs(t, err, ErrNameAlreadyExists)
}

func TestCreateUser_UnexpectedDBError(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery("INSERT INTO users").
		WillReturnError(errors.New("db network error"))

	_, err := repo.CreateUser(context.Background(), models.User{Name: "pilot"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected DB error")
	assert.NotErrorIs(t, err, ErrTransientDB)
}

func TestCreateUser_TransientError(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery("INSERT INTO users").
		WillReturnError(pgError(pgerrcode.ConnectionFailure))

	_, err := repo.CreateUser(context.Background(), models.User{Name: "pilot"})
	assert.ErrorIs(t, err, ErrTransientDB)
}

func TestFindUserByName(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery("SELECT (.+) FROM users WHERE name =").
		WithArgs("pilot").
		WillReturnRows(sqlmock.NewRows(userRowColumns).AddRow(4, "pilot", "", "hash", time.Now()))

	user, err := repo.FindUserByName(context.Background(), "pilot")
	require.NoError(t, err)
	assert.Equal(t, int64(4), user.UserID)
	assert.Equal(t, "hash", user.PasswordHash)
}

func TestFindUserByID_NotFound(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery("SELECT (.+) FROM users WHERE id =").
		WithArgs(int64(99)).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.FindUserByID(context.Background(), 99)
	assert.ErrorIs(t, err, ErrNoUserWasFound)
}

func TestFindUserByID_ScanError(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery("SELECT (.+) FROM users WHERE id =").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1)) // wrong shape

	_, err := repo.FindUserByID(context.Background(), 1)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNoUserWasFound)
}

func TestUpdateEmail(t *testing.T) {
	tests := []struct {
		name     string
		affected int64
		execErr  error
		wantErr  error
	}{
		{name: "updated", affected: 1},
		{name: "unknown user", affected: 0, wantErr: ErrNoUserWasFound},
		{name: "exec error", execErr: errors.New("boom"), wantErr: ErrExecutingStatement},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newTestUserRepo(t)

			exp := mock.ExpectExec("UPDATE users SET email").WithArgs("new@example.com", int64(3))
			if tt.execErr != nil {
				exp.WillReturnError(tt.execErr)
			} else {
				exp.WillReturnResult(sqlmock.NewResult(0, tt.affected))
			}

			err := repo.UpdateEmail(context.Background(), 3, "new@example.com")
			if tt.wantErr == nil {
				require.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
