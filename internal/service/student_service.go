package service

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/noah-isme/attendance-tracker-api/internal/models"
	appErrors "github.com/noah-isme/attendance-tracker-api/pkg/errors"
)

// RosterCachePattern matches every cached class roster.
const RosterCachePattern = "students:*"

// RosterCacheKey is the cache key of a class roster.
func RosterCacheKey(className string) string {
	return "students:class:" + className
}

type studentRosterRepository interface {
	ListByClass(ctx context.Context, className string) ([]models.Student, error)
}

// StudentService serves class rosters, optionally through the cache.
type StudentService struct {
	repo   studentRosterRepository
	cache  *CacheService
	ttl    time.Duration
	logger *zap.Logger
}

// NewStudentService constructs a StudentService. A nil cache disables caching.
func NewStudentService(repo studentRosterRepository, cache *CacheService, ttl time.Duration, logger *zap.Logger) *StudentService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &StudentService{repo: repo, cache: cache, ttl: ttl, logger: logger}
}

// ListByClass returns the students of a class ordered by roll number.
func (s *StudentService) ListByClass(ctx context.Context, className string) ([]models.Student, error) {
	className = strings.TrimSpace(className)
	if className == "" {
		return nil, appErrors.Clone(appErrors.ErrValidation, "className is required")
	}

	key := RosterCacheKey(className)
	var cached []models.Student
	if hit, err := s.cache.Get(ctx, key, &cached); err == nil && hit {
		return cached, nil
	}

	students, err := s.repo.ListByClass(ctx, className)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to fetch students")
	}

	if err := s.cache.Set(ctx, key, students, s.ttl); err != nil {
		s.logger.Debug("roster not cached", zap.String("class", className), zap.Error(err))
	}
	return students, nil
}

// InvalidateRosters drops every cached roster.
func (s *StudentService) InvalidateRosters(ctx context.Context) error {
	return s.cache.Invalidate(ctx, RosterCachePattern)
}
