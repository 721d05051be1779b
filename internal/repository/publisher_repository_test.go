package repository

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gameborrow/internal/models"
)

var publisherColumns = []string{"id", "name", "website", "email", "users", "games"}

func TestPublisherRepository_Create(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewPublisherRepository(db)
	ctx := context.Background()

	t.Run("initial lists", func(t *testing.T) {
		publisher := &models.Publisher{Name: "Valve", Website: "https://valvesoftware.com", Email: "info@valve.com", Users: []string{"u1"}}

		mock.ExpectExec(q(insertPublisher)).
			WithArgs(sqlmock.AnyArg(), "Valve", "https://valvesoftware.com", "info@valve.com",
				pq.Array([]string{"u1"}), pq.Array([]string{})).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.Create(ctx, publisher)

		require.NoError(t, err)
		assert.True(t, models.IsValidID(publisher.ID))
		assert.Empty(t, publisher.Games)
		assert.NotNil(t, publisher.Games)
	})

	t.Run("duplicate name is a conflict", func(t *testing.T) {
		mock.ExpectExec(q(insertPublisher)).
			WillReturnError(&pq.Error{Code: "23505", Constraint: "publishers_name_key"})

		err := repo.Create(ctx, &models.Publisher{Name: "Valve", Email: "other@valve.com"})

		assert.ErrorIs(t, err, models.ErrConflict)
		assert.Contains(t, err.Error(), "name")
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPublisherRepository_GetByGameID(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewPublisherRepository(db)
	ctx := context.Background()

	t.Run("owner found", func(t *testing.T) {
		rows := sqlmock.NewRows(publisherColumns).
			AddRow("p1", "Valve", "https://valve.com", "info@valve.com", "{u1,u2}", "{g1,g2}")
		mock.ExpectQuery(q(selectPublisherByGameID)).WithArgs("g2").WillReturnRows(rows)

		publisher, err := repo.GetByGameID(ctx, "g2")

		require.NoError(t, err)
		assert.Equal(t, "p1", publisher.ID)
		assert.Equal(t, []string{"u1", "u2"}, publisher.Users)
		assert.Equal(t, []string{"g1", "g2"}, publisher.Games)
	})

	t.Run("no owner", func(t *testing.T) {
		mock.ExpectQuery(q(selectPublisherByGameID)).WithArgs("g9").WillReturnError(sql.ErrNoRows)

		_, err := repo.GetByGameID(ctx, "g9")

		assert.ErrorIs(t, err, models.ErrNotFound)
	})

	t.Run("lookup failure", func(t *testing.T) {
		mock.ExpectQuery(q(selectPublisherByGameID)).WithArgs("g9").WillReturnError(errors.New("connection refused"))

		_, err := repo.GetByGameID(ctx, "g9")

		assert.Error(t, err)
		assert.False(t, errors.Is(err, models.ErrNotFound))
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPublisherRepository_GetByIDAndAll(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewPublisherRepository(db)
	ctx := context.Background()

	mock.ExpectQuery(q(selectPublisherByID)).WithArgs("p1").
		WillReturnRows(sqlmock.NewRows(publisherColumns).AddRow("p1", "Valve", "", "info@valve.com", "{}", "{}"))

	publisher, err := repo.GetByID(ctx, "p1")
	require.NoError(t, err)
	assert.Empty(t, publisher.Users)

	mock.ExpectQuery(q(selectPublishers)).
		WillReturnRows(sqlmock.NewRows(publisherColumns).
			AddRow("p2", "Bethesda", "", "b@b.com", "{u3}", "{}").
			AddRow("p1", "Valve", "", "info@valve.com", "{}", "{g1}"))

	publishers, err := repo.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, publishers, 2)
	assert.Equal(t, []string{"g1"}, publishers[1].Games)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPublisherRepository_Update(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewPublisherRepository(db)
	publisher := &models.Publisher{ID: "p1", Name: "Valve Corp", Website: "https://valve.com", Email: "info@valve.com"}

	mock.ExpectExec(q(updatePublisher)).
		WithArgs("p1", "Valve Corp", "https://valve.com", "info@valve.com").
		WillReturnResult(sqlmock.NewResult(0, 1))
	assert.NoError(t, repo.Update(context.Background(), publisher))

	mock.ExpectExec(q(updatePublisher)).
		WillReturnError(&pq.Error{Code: "23505", Constraint: "publishers_email_key"})
	assert.ErrorIs(t, repo.Update(context.Background(), publisher), models.ErrConflict)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPublisherRepository_ArrayFields(t *testing.T) {
	tests := []struct {
		name  string
		query string
		call  func(repo PublisherRepository) error
	}{
		{"add game", appendPublisherGame, func(repo PublisherRepository) error {
			return repo.AddGame(context.Background(), "p1", "v1")
		}},
		{"remove game", removePublisherGame, func(repo PublisherRepository) error {
			return repo.RemoveGame(context.Background(), "p1", "v1")
		}},
		{"add user", appendPublisherUser, func(repo PublisherRepository) error {
			return repo.AddUser(context.Background(), "p1", "v1")
		}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			db, mock := setupMockDB(t)
			repo := NewPublisherRepository(db)

			mock.ExpectExec(q(tc.query)).WithArgs("p1", "v1").WillReturnResult(sqlmock.NewResult(0, 1))
			assert.NoError(t, tc.call(repo))

			mock.ExpectExec(q(tc.query)).WithArgs("p1", "v1").WillReturnResult(sqlmock.NewResult(0, 0))
			assert.ErrorIs(t, tc.call(repo), models.ErrNotFound)

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
