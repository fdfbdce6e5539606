package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/noah-isme/attendance-tracker-api/internal/dto"
	"github.com/noah-isme/attendance-tracker-api/internal/models"
	appErrors "github.com/noah-isme/attendance-tracker-api/pkg/errors"
)

const maxParallelUpserts = 8

type attendanceStudentRepository interface {
	FindByClassAndIDs(ctx context.Context, className string, ids []int64) ([]models.Student, error)
}

type attendanceSubjectRepository interface {
	FindByID(ctx context.Context, id int64) (*models.Subject, error)
	List(ctx context.Context, className string) ([]models.Subject, error)
}

type attendanceRecordRepository interface {
	Upsert(ctx context.Context, key models.AttendanceKey, isPresent bool) error
	FindByClassAndSubject(ctx context.Context, className string, subjectID int64) ([]models.AttendanceRecord, error)
	ListDetailsByClassAndDate(ctx context.Context, className string, date time.Time) ([]models.AttendanceDetail, error)
	ListSlotsByClassAndDate(ctx context.Context, className string, date time.Time) ([]models.AttendanceRecord, error)
}

// AggregateResult is the outcome of a mark call ready for rendering.
type AggregateResult struct {
	Matrix    models.AttendanceMatrix
	Subject   models.Subject
	ClassName string
	Date      time.Time
	Time      string
}

// AttendanceService records lecture attendance and aggregates it into matrices.
type AttendanceService struct {
	students  attendanceStudentRepository
	subjects  attendanceSubjectRepository
	records   attendanceRecordRepository
	validator *validator.Validate
	logger    *zap.Logger
	metrics   *MetricsService
}

// NewAttendanceService constructs an AttendanceService.
func NewAttendanceService(students attendanceStudentRepository, subjects attendanceSubjectRepository, records attendanceRecordRepository, validate *validator.Validate, logger *zap.Logger, metrics *MetricsService) *AttendanceService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AttendanceService{
		students:  students,
		subjects:  subjects,
		records:   records,
		validator: validate,
		logger:    logger,
		metrics:   metrics,
	}
}

// MarkAndAggregate upserts one lecture's attendance, then builds the class
// matrix for the subject covering the submitted students.
func (s *AttendanceService) MarkAndAggregate(ctx context.Context, req dto.MarkAttendanceRequest) (*AggregateResult, error) {
	entries := len(req.AttendanceData)

	slot, err := s.parseMarkRequest(req)
	if err != nil {
		s.metrics.RecordAttendanceMark(MarkResultInvalid, entries)
		return nil, err
	}
	className := strings.TrimSpace(req.ClassName)

	subject, err := s.subjects.FindByID(ctx, int64(req.SubjectID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			s.metrics.RecordAttendanceMark(MarkResultNotFound, entries)
			return nil, appErrors.Clone(appErrors.ErrNotFound, "subject not found")
		}
		s.metrics.RecordAttendanceMark(MarkResultFailure, entries)
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load subject")
	}

	if err := s.upsertAll(ctx, subject.ID, slot); err != nil {
		s.metrics.RecordAttendanceMark(MarkResultFailure, entries)
		s.logger.Warn("attendance upsert failed",
			zap.Int64("subject_id", subject.ID),
			zap.String("class", className),
			zap.Error(err))
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to record attendance")
	}

	ids := make([]int64, 0, len(slot.Entries))
	for id := range slot.Entries {
		ids = append(ids, id)
	}

	start := time.Now()
	students, err := s.students.FindByClassAndIDs(ctx, className, ids)
	s.metrics.ObserveDBQuery("students_by_class_and_ids", time.Since(start))
	if err != nil {
		s.metrics.RecordAttendanceMark(MarkResultFailure, entries)
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load students")
	}

	start = time.Now()
	history, err := s.records.FindByClassAndSubject(ctx, className, subject.ID)
	s.metrics.ObserveDBQuery("attendance_by_class_and_subject", time.Since(start))
	if err != nil {
		s.metrics.RecordAttendanceMark(MarkResultFailure, entries)
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load attendance history")
	}

	matrix := BuildAttendanceMatrix(students, history, slot)
	s.metrics.RecordAttendanceMark(MarkResultSuccess, entries)
	s.logger.Info("attendance marked",
		zap.Int64("subject_id", subject.ID),
		zap.String("subject", subject.Name),
		zap.String("class", className),
		zap.String("date", slot.Date.Format(models.DateLayout)),
		zap.String("time", slot.Time),
		zap.Int("entries", entries),
		zap.Int("columns", len(matrix.Columns)))

	return &AggregateResult{
		Matrix:    matrix,
		Subject:   *subject,
		ClassName: className,
		Date:      slot.Date,
		Time:      slot.Time,
	}, nil
}

func (s *AttendanceService) parseMarkRequest(req dto.MarkAttendanceRequest) (MarkedSlot, error) {
	if err := s.validator.Struct(req); err != nil {
		return MarkedSlot{}, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid attendance payload")
	}
	label := strings.TrimSpace(req.Time)
	if label == "" {
		return MarkedSlot{}, appErrors.Clone(appErrors.ErrValidation, "time is required")
	}
	if strings.TrimSpace(req.ClassName) == "" {
		return MarkedSlot{}, appErrors.Clone(appErrors.ErrValidation, "className is required")
	}
	date, err := parseAttendanceDate(req.Date)
	if err != nil {
		return MarkedSlot{}, err
	}

	entries := make(map[int64]bool, len(req.AttendanceData))
	for _, entry := range req.AttendanceData {
		if _, exists := entries[entry.StudentID]; exists {
			return MarkedSlot{}, appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("student %d submitted more than once", entry.StudentID))
		}
		entries[entry.StudentID] = *entry.IsPresent
	}
	return MarkedSlot{Date: date, Time: label, Entries: entries}, nil
}

func (s *AttendanceService) upsertAll(ctx context.Context, subjectID int64, slot MarkedSlot) error {
	start := time.Now()
	defer func() { s.metrics.ObserveDBQuery("attendance_upsert", time.Since(start)) }()

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxParallelUpserts)
	for studentID, present := range slot.Entries {
		key := models.AttendanceKey{StudentID: studentID, SubjectID: subjectID, Date: slot.Date, Time: slot.Time}
		present := present
		g.Go(func() error {
			return s.records.Upsert(gctx, key, present)
		})
	}
	return g.Wait()
}

// DailyReport lists a class's attendance on one day joined with student and subject.
func (s *AttendanceService) DailyReport(ctx context.Context, query dto.DailyReportQuery) ([]models.AttendanceDetail, error) {
	if err := s.validator.Struct(query); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "className and date are required")
	}
	date, err := parseAttendanceDate(query.Date)
	if err != nil {
		return nil, err
	}
	details, err := s.records.ListDetailsByClassAndDate(ctx, strings.TrimSpace(query.ClassName), date)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to fetch attendance report")
	}
	return details, nil
}

// FirstLectureAbsentees returns roll numbers absent from the earliest lecture of the day.
func (s *AttendanceService) FirstLectureAbsentees(ctx context.Context, className, rawDate string) (*dto.FirstLectureAbsenteesResponse, error) {
	className = strings.TrimSpace(className)
	if className == "" {
		return nil, appErrors.Clone(appErrors.ErrValidation, "className is required")
	}
	date, err := parseAttendanceDate(rawDate)
	if err != nil {
		return nil, err
	}
	records, err := s.records.ListSlotsByClassAndDate(ctx, className, date)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to fetch first lecture absentees")
	}
	return &dto.FirstLectureAbsenteesResponse{Absentees: firstLectureAbsentees(records)}, nil
}

// ListSubjects returns the subjects taught to a class.
func (s *AttendanceService) ListSubjects(ctx context.Context, className string) ([]models.Subject, error) {
	className = strings.TrimSpace(className)
	if className == "" {
		return nil, appErrors.Clone(appErrors.ErrValidation, "className is required")
	}
	subjects, err := s.subjects.List(ctx, className)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to fetch subjects")
	}
	return subjects, nil
}

// parseAttendanceDate accepts YYYY-MM-DD or an RFC3339 instant, keeping the UTC calendar day.
func parseAttendanceDate(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, appErrors.Clone(appErrors.ErrValidation, "date is required")
	}
	if t, err := time.Parse(models.DateLayout, raw); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return calendarDay(t.UTC()), nil
	}
	return time.Time{}, appErrors.Clone(appErrors.ErrValidation, "date must be formatted as YYYY-MM-DD")
}
