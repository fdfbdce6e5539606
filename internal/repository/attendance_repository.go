package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/attendance-tracker-api/internal/models"
)

// AttendanceRepository persists lecture attendance records.
type AttendanceRepository struct {
	db *sqlx.DB
}

// NewAttendanceRepository constructs an AttendanceRepository.
func NewAttendanceRepository(db *sqlx.DB) *AttendanceRepository {
	return &AttendanceRepository{db: db}
}

// Upsert creates the record for key or overwrites its presence flag.
func (r *AttendanceRepository) Upsert(ctx context.Context, key models.AttendanceKey, isPresent bool) error {
	const query = `INSERT INTO attendance (student_id, subject_id, date, time, is_present)
	VALUES ($1, $2, $3, $4, $5)
	ON CONFLICT (student_id, subject_id, date, time) DO UPDATE SET is_present = EXCLUDED.is_present`
	if _, err := r.db.ExecContext(ctx, query, key.StudentID, key.SubjectID, key.Date, key.Time, isPresent); err != nil {
		return fmt.Errorf("upsert attendance: %w", err)
	}
	return nil
}

// FindByClassAndSubject returns the full history of a subject for a class,
// ordered by date then roll number.
func (r *AttendanceRepository) FindByClassAndSubject(ctx context.Context, className string, subjectID int64) ([]models.AttendanceRecord, error) {
	const query = `SELECT a.student_id, s.roll_no, a.date, a.time, a.is_present
	FROM attendance a
	JOIN students s ON s.id = a.student_id
	WHERE s.class = $1 AND a.subject_id = $2
	ORDER BY a.date ASC, s.roll_no ASC`
	records := []models.AttendanceRecord{}
	if err := r.db.SelectContext(ctx, &records, query, className, subjectID); err != nil {
		return nil, fmt.Errorf("find attendance by class and subject: %w", err)
	}
	return records, nil
}

// ListDetailsByClassAndDate returns the day's records of a class joined with student and subject.
func (r *AttendanceRepository) ListDetailsByClassAndDate(ctx context.Context, className string, date time.Time) ([]models.AttendanceDetail, error) {
	const query = `SELECT a.id, a.student_id, a.subject_id, a.date, a.time, a.is_present,
	s.id AS "student.id", s.name AS "student.name", s.roll_no AS "student.roll_no", s.class AS "student.class",
	sub.id AS "subject.id", sub.name AS "subject.name", sub.class AS "subject.class"
	FROM attendance a
	JOIN students s ON s.id = a.student_id
	JOIN subjects sub ON sub.id = a.subject_id
	WHERE a.date = $1 AND s.class = $2
	ORDER BY a.time ASC, s.roll_no ASC`
	details := []models.AttendanceDetail{}
	if err := r.db.SelectContext(ctx, &details, query, date, className); err != nil {
		return nil, fmt.Errorf("list attendance details: %w", err)
	}
	return details, nil
}

// ListSlotsByClassAndDate returns every record of a class on a day across subjects.
func (r *AttendanceRepository) ListSlotsByClassAndDate(ctx context.Context, className string, date time.Time) ([]models.AttendanceRecord, error) {
	const query = `SELECT a.student_id, s.roll_no, a.date, a.time, a.is_present
	FROM attendance a
	JOIN students s ON s.id = a.student_id
	WHERE a.date = $1 AND s.class = $2
	ORDER BY a.time ASC, s.roll_no ASC`
	records := []models.AttendanceRecord{}
	if err := r.db.SelectContext(ctx, &records, query, date, className); err != nil {
		return nil, fmt.Errorf("list attendance slots: %w", err)
	}
	return records, nil
}
