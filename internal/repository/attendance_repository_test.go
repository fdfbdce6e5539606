package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/attendance-tracker-api/internal/models"
)

func TestAttendanceRepositoryUpsertOverwritesOnConflict(t *testing.T) {
	db, mock, cleanup := newMockDB(t)
	defer cleanup()
	repo := NewAttendanceRepository(db)

	date := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)
	key := models.AttendanceKey{StudentID: 1, SubjectID: 3, Date: date, Time: "09:00"}
	upsert := regexp.QuoteMeta("ON CONFLICT (student_id, subject_id, date, time) DO UPDATE SET is_present = EXCLUDED.is_present")

	mock.ExpectExec(upsert).WithArgs(int64(1), int64(3), date, "09:00", true).WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec(upsert).WithArgs(int64(1), int64(3), date, "09:00", false).WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Upsert(context.Background(), key, true))
	require.NoError(t, repo.Upsert(context.Background(), key, false))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAttendanceRepositoryFindByClassAndSubject(t *testing.T) {
	db, mock, cleanup := newMockDB(t)
	defer cleanup()
	repo := NewAttendanceRepository(db)

	date := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)
	mock.ExpectQuery(regexp.QuoteMeta("WHERE s.class = $1 AND a.subject_id = $2 ORDER BY a.date ASC, s.roll_no ASC")).
		WithArgs("TY", int64(3)).
		WillReturnRows(sqlmock.NewRows([]string{"student_id", "roll_no", "date", "time", "is_present"}).
			AddRow(1, 1, date, "09:00", true).
			AddRow(2, 2, date, "09:00", false))

	records, err := repo.FindByClassAndSubject(context.Background(), "TY", 3)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, 2, records[1].RollNo)
	assert.False(t, records[1].IsPresent)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAttendanceRepositoryListDetailsByClassAndDate(t *testing.T) {
	db, mock, cleanup := newMockDB(t)
	defer cleanup()
	repo := NewAttendanceRepository(db)

	date := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)
	columns := []string{"id", "student_id", "subject_id", "date", "time", "is_present",
		"student.id", "student.name", "student.roll_no", "student.class",
		"subject.id", "subject.name", "subject.class"}
	mock.ExpectQuery(regexp.QuoteMeta("WHERE a.date = $1 AND s.class = $2")).
		WithArgs(date, "TY").
		WillReturnRows(sqlmock.NewRows(columns).
			AddRow(10, 1, 3, date, "09:00", true, 1, "John Doe", 1, "TY", 3, "Database", "TY"))

	details, err := repo.ListDetailsByClassAndDate(context.Background(), "TY", date)
	require.NoError(t, err)
	require.Len(t, details, 1)
	assert.Equal(t, int64(10), details[0].ID)
	assert.Equal(t, "John Doe", details[0].Student.Name)
	assert.Equal(t, "Database", details[0].Subject.Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAttendanceRepositoryListSlotsByClassAndDate(t *testing.T) {
	db, mock, cleanup := newMockDB(t)
	defer cleanup()

	date := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)
	mock.ExpectQuery(regexp.QuoteMeta("ORDER BY a.time ASC, s.roll_no ASC")).
		WithArgs(date, "TY").
		WillReturnRows(sqlmock.NewRows([]string{"student_id", "roll_no", "date", "time", "is_present"}).
			AddRow(2, 2, date, "09:00", false))

	records, err := NewAttendanceRepository(db).ListSlotsByClassAndDate(context.Background(), "TY", date)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "09:00", records[0].Time)
	assert.NoError(t, mock.ExpectationsWereMet())
}
