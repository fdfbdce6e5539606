package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/noah-isme/attendance-tracker-api/internal/models"
)

// StudentRepository manages persistence for students.
type StudentRepository struct {
	db *sqlx.DB
}

// NewStudentRepository constructs a StudentRepository.
func NewStudentRepository(db *sqlx.DB) *StudentRepository {
	return &StudentRepository{db: db}
}

// ListByClass returns every student of a class ordered by roll number.
func (r *StudentRepository) ListByClass(ctx context.Context, className string) ([]models.Student, error) {
	const query = `SELECT id, name, roll_no, class FROM students WHERE class = $1 ORDER BY roll_no ASC`
	students := []models.Student{}
	if err := r.db.SelectContext(ctx, &students, query, className); err != nil {
		return nil, fmt.Errorf("list students by class: %w", err)
	}
	return students, nil
}

// FindByClassAndIDs returns the students of a class whose id is listed, ordered by roll number.
// Ids belonging to another class are silently dropped.
func (r *StudentRepository) FindByClassAndIDs(ctx context.Context, className string, ids []int64) ([]models.Student, error) {
	students := []models.Student{}
	if len(ids) == 0 {
		return students, nil
	}
	const query = `SELECT id, name, roll_no, class FROM students WHERE class = $1 AND id = ANY($2) ORDER BY roll_no ASC`
	if err := r.db.SelectContext(ctx, &students, query, className, pq.Array(ids)); err != nil {
		return nil, fmt.Errorf("find students by class and ids: %w", err)
	}
	return students, nil
}
