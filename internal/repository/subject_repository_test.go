package repository

import (
	"context"
	"database/sql"
	"regexp"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubjectRepositoryFindByID(t *testing.T) {
	db, mock, cleanup := newMockDB(t)
	defer cleanup()
	repo := NewSubjectRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, name, class FROM subjects WHERE id = $1")).
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "class"}).AddRow(1, "Database", "TY"))

	subject, err := repo.FindByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "Database", subject.Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSubjectRepositoryFindByIDMissing(t *testing.T) {
	db, mock, cleanup := newMockDB(t)
	defer cleanup()

	mock.ExpectQuery("FROM subjects").WithArgs(int64(9)).WillReturnError(sql.ErrNoRows)

	_, err := NewSubjectRepository(db).FindByID(context.Background(), 9)
	assert.ErrorIs(t, err, sql.ErrNoRows)
}

func TestSubjectRepositoryList(t *testing.T) {
	db, mock, cleanup := newMockDB(t)
	defer cleanup()

	mock.ExpectQuery(regexp.QuoteMeta("FROM subjects WHERE class = $1 ORDER BY id ASC")).
		WithArgs("TY").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "class"}).
			AddRow(1, "Database", "TY").
			AddRow(2, "TOC", "TY"))

	subjects, err := NewSubjectRepository(db).List(context.Background(), "TY")
	require.NoError(t, err)
	assert.Len(t, subjects, 2)
	assert.NoError(t, mock.ExpectationsWereMet())
}
