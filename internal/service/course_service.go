package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/coursebay/coursebay-backend/internal/config"
	"github.com/coursebay/coursebay-backend/internal/model"
	"github.com/coursebay/coursebay-backend/internal/repository"
)

// Course errors.
var (
	ErrCourseNotFound = errors.New("course not found")
	// ErrNotCourseOwner is returned when an admin mutates a course they
	// did not create. Checked only after existence, so a non-owner does
	// learn the course exists.
	ErrNotCourseOwner = errors.New("not the course creator")
)

// catalogCacheTTL bounds staleness if an invalidation is ever missed.
const catalogCacheTTL = 5 * time.Minute

// CourseFinder is the read surface shared with the purchase service.
type CourseFinder interface {
	GetByID(ctx context.Context, id uuid.UUID) (*model.Course, error)
}

// CourseStore is the full course persistence surface.
type CourseStore interface {
	CourseFinder
	Create(ctx context.Context, c *model.Course) error
	GetAll(ctx context.Context) ([]model.Course, error)
	Update(ctx context.Context, c *model.Course) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// CourseService handles course CRUD with creator-ownership policy and an
// optional Redis-backed catalog cache. A nil Redis client disables caching.
type CourseService struct {
	courses CourseStore
	rdb     *redis.Client
	log     zerolog.Logger
}

// NewCourseService creates a new CourseService.
func NewCourseService(courses CourseStore, rdb *redis.Client, log zerolog.Logger) *CourseService {
	return &CourseService{
		courses: courses,
		rdb:     rdb,
		log:     log.With().Str("component", "course_service").Logger(),
	}
}

// Create persists a new course owned by the acting admin.
func (s *CourseService) Create(ctx context.Context, adminID uuid.UUID, req model.CourseRequest) (*model.Course, error) {
	course := &model.Course{
		Title:       req.Title,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		Price:       req.Price,
		CreatedBy:   adminID,
	}
	if err := s.courses.Create(ctx, course); err != nil {
		return nil, err
	}

	s.invalidate(ctx, course.ID)
	return course, nil
}

// Update replaces all four editable fields of the course. Fails with
// ErrCourseNotFound when the course is absent and ErrNotCourseOwner when
// the acting admin is not its creator, in that order.
func (s *CourseService) Update(ctx context.Context, adminID, courseID uuid.UUID, req model.CourseRequest) (*model.Course, error) {
	course, err := s.ownedCourse(ctx, adminID, courseID)
	if err != nil {
		return nil, err
	}

	course.Title = req.Title
	course.Description = req.Description
	course.ImageURL = req.ImageURL
	course.Price = req.Price

	if err := s.courses.Update(ctx, course); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrCourseNotFound
		}
		return nil, err
	}

	s.invalidate(ctx, courseID)
	return course, nil
}

// Delete removes the course. Same existence and ownership checks as Update.
func (s *CourseService) Delete(ctx context.Context, adminID, courseID uuid.UUID) error {
	if _, err := s.ownedCourse(ctx, adminID, courseID); err != nil {
		return err
	}

	if err := s.courses.Delete(ctx, courseID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrCourseNotFound
		}
		return err
	}

	s.invalidate(ctx, courseID)
	return nil
}

// List returns the full catalog. Served from cache when warm; an empty
// catalog is a valid result, not an error.
func (s *CourseService) List(ctx context.Context) ([]model.Course, error) {
	key := config.CacheKey.CourseCatalogKey()

	if cached, ok := s.cacheGet(ctx, key); ok {
		var courses []model.Course
		if err := json.Unmarshal(cached, &courses); err == nil {
			return courses, nil
		}
	}

	courses, err := s.courses.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	s.cacheSet(ctx, key, courses)
	return courses, nil
}

// GetByID returns a single course, from cache when warm.
func (s *CourseService) GetByID(ctx context.Context, id uuid.UUID) (*model.Course, error) {
	key := config.CacheKey.CourseKey(id.String())

	if cached, ok := s.cacheGet(ctx, key); ok {
		course := &model.Course{}
		if err := json.Unmarshal(cached, course); err == nil {
			return course, nil
		}
	}

	course, err := s.courses.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrCourseNotFound
		}
		return nil, err
	}

	s.cacheSet(ctx, key, course)
	return course, nil
}

// ownedCourse fetches the course and enforces the creator-ownership policy.
func (s *CourseService) ownedCourse(ctx context.Context, adminID, courseID uuid.UUID) (*model.Course, error) {
	course, err := s.courses.GetByID(ctx, courseID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrCourseNotFound
		}
		return nil, err
	}
	if course.CreatedBy != adminID {
		return nil, ErrNotCourseOwner
	}
	return course, nil
}

// ─── Cache helpers ─────────────────────────────────────────────────────────
// Cache failures are logged and swallowed: the database stays authoritative.

func (s *CourseService) cacheGet(ctx context.Context, key string) ([]byte, bool) {
	if s.rdb == nil {
		return nil, false
	}
	data, err := s.rdb.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			s.log.Warn().Err(err).Str("key", key).Msg("cache read failed")
		}
		return nil, false
	}
	return data, true
}

func (s *CourseService) cacheSet(ctx context.Context, key string, v interface{}) {
	if s.rdb == nil {
		return
	}
	data, err := json.Marshal(v)
	if err != nil {
		return
	}
	if err := s.rdb.Set(ctx, key, data, catalogCacheTTL).Err(); err != nil {
		s.log.Warn().Err(err).Str("key", key).Msg("cache write failed")
	}
}

func (s *CourseService) invalidate(ctx context.Context, courseID uuid.UUID) {
	if s.rdb == nil {
		return
	}
	keys := []string{
		config.CacheKey.CourseCatalogKey(),
		config.CacheKey.CourseKey(courseID.String()),
	}
	if err := s.rdb.Del(ctx, keys...).Err(); err != nil {
		s.log.Warn().Err(err).Msg("cache invalidation failed")
	}
}
