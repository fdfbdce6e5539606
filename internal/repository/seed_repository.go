package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/attendance-tracker-api/internal/models"
)

// SeedData is the demo roster loaded by the seed tool.
type SeedData struct {
	Students []models.Student
	Subjects []models.Subject
}

// SeedResult reports the rows written by a seed run.
type SeedResult struct {
	Students []models.Student
	Subjects []models.Subject
}

// SeedRepository resets and populates the roster tables.
type SeedRepository struct {
	db *sqlx.DB
}

// NewSeedRepository constructs a SeedRepository.
func NewSeedRepository(db *sqlx.DB) *SeedRepository {
	return &SeedRepository{db: db}
}

// Seed writes data inside one transaction. With reset set, attendance, students and
// subjects are deleted first; otherwise existing rows keyed by class are updated in place.
func (r *SeedRepository) Seed(ctx context.Context, data SeedData, reset bool) (*SeedResult, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin seed: %w", err)
	}
	defer func() {
		if err != nil {
			tx.Rollback() //nolint:errcheck
		}
	}()

	if reset {
		for _, stmt := range []string{`DELETE FROM attendance`, `DELETE FROM students`, `DELETE FROM subjects`} {
			if _, err = tx.ExecContext(ctx, stmt); err != nil {
				return nil, fmt.Errorf("reset seed tables: %w", err)
			}
		}
	}

	result := &SeedResult{}
	const studentQuery = `INSERT INTO students (name, roll_no, class) VALUES ($1, $2, $3)
	ON CONFLICT (class, roll_no) DO UPDATE SET name = EXCLUDED.name RETURNING id`
	for _, student := range data.Students {
		if err = tx.QueryRowxContext(ctx, studentQuery, student.Name, student.RollNo, student.Class).Scan(&student.ID); err != nil {
			return nil, fmt.Errorf("seed student %s: %w", student.Name, err)
		}
		result.Students = append(result.Students, student)
	}

	const subjectQuery = `INSERT INTO subjects (name, class) VALUES ($1, $2)
	ON CONFLICT (class, name) DO UPDATE SET name = EXCLUDED.name RETURNING id`
	for _, subject := range data.Subjects {
		if err = tx.QueryRowxContext(ctx, subjectQuery, subject.Name, subject.Class).Scan(&subject.ID); err != nil {
			return nil, fmt.Errorf("seed subject %s: %w", subject.Name, err)
		}
		result.Subjects = append(result.Subjects, subject)
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit seed: %w", err)
	}
	return result, nil
}
