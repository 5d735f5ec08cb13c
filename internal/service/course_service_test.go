package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coursebay/coursebay-backend/internal/model"
)

func courseReq() model.CourseRequest {
	return model.CourseRequest{
		Title:       "Intro to Go",
		Description: "A practical introduction",
		ImageURL:    "http://img.example/go.png",
		Price:       500,
	}
}

func TestCourseCreate_SetsCreator(t *testing.T) {
	t.Parallel()

	store := newMemCourseStore()
	svc := NewCourseService(store, nil, zerolog.Nop())
	adminID := uuid.New()

	course, err := svc.Create(context.Background(), adminID, courseReq())
	require.NoError(t, err)
	assert.Equal(t, adminID, course.CreatedBy)
	assert.NotEqual(t, uuid.Nil, course.ID)
}

func TestCourseOwnershipPolicy(t *testing.T) {
	t.Parallel()

	store := newMemCourseStore()
	svc := NewCourseService(store, nil, zerolog.Nop())
	ctx := context.Background()

	adminA := uuid.New()
	adminB := uuid.New()

	course, err := svc.Create(ctx, adminA, courseReq())
	require.NoError(t, err)

	updated := courseReq()
	updated.Title = "Advanced Go"

	// B may neither update nor delete A's course.
	_, err = svc.Update(ctx, adminB, course.ID, updated)
	assert.ErrorIs(t, err, ErrNotCourseOwner)
	assert.ErrorIs(t, svc.Delete(ctx, adminB, course.ID), ErrNotCourseOwner)

	// A may do both.
	got, err := svc.Update(ctx, adminA, course.ID, updated)
	require.NoError(t, err)
	assert.Equal(t, "Advanced Go", got.Title)

	require.NoError(t, svc.Delete(ctx, adminA, course.ID))
	_, err = svc.GetByID(ctx, course.ID)
	assert.ErrorIs(t, err, ErrCourseNotFound)
}

func TestCourseUpdate_MissingCourse(t *testing.T) {
	t.Parallel()

	svc := NewCourseService(newMemCourseStore(), nil, zerolog.Nop())
	ctx := context.Background()

	// Absence is reported before ownership: 404 wins over 403.
	_, err := svc.Update(ctx, uuid.New(), uuid.New(), courseReq())
	assert.ErrorIs(t, err, ErrCourseNotFound)
	assert.ErrorIs(t, svc.Delete(ctx, uuid.New(), uuid.New()), ErrCourseNotFound)
}

func TestCourseUpdate_ReplacesAllEditableFields(t *testing.T) {
	t.Parallel()

	store := newMemCourseStore()
	svc := NewCourseService(store, nil, zerolog.Nop())
	ctx := context.Background()
	adminID := uuid.New()

	course, err := svc.Create(ctx, adminID, courseReq())
	require.NoError(t, err)

	req := model.CourseRequest{
		Title:       "Advanced Go",
		Description: "Concurrency and beyond",
		ImageURL:    "http://img.example/go2.png",
		Price:       6999,
	}
	got, err := svc.Update(ctx, adminID, course.ID, req)
	require.NoError(t, err)

	assert.Equal(t, req.Title, got.Title)
	assert.Equal(t, req.Description, got.Description)
	assert.Equal(t, req.ImageURL, got.ImageURL)
	assert.Equal(t, req.Price, got.Price)
	// The creator never changes, whatever the update carries.
	assert.Equal(t, adminID, got.CreatedBy)

	stored, err := svc.GetByID(ctx, course.ID)
	require.NoError(t, err)
	assert.Equal(t, adminID, stored.CreatedBy)
}

func TestCourseList_EmptyCatalog(t *testing.T) {
	t.Parallel()

	svc := NewCourseService(newMemCourseStore(), nil, zerolog.Nop())

	courses, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, courses)
}

func TestCourseList_ReturnsAll(t *testing.T) {
	t.Parallel()

	store := newMemCourseStore()
	svc := NewCourseService(store, nil, zerolog.Nop())
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := svc.Create(ctx, uuid.New(), courseReq())
		require.NoError(t, err)
	}

	courses, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, courses, 3)
}
