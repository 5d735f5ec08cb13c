package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/coursebay/coursebay-backend/internal/model"
	"github.com/coursebay/coursebay-backend/internal/repository"
)

// PurchaseStore is the purchase persistence surface.
type PurchaseStore interface {
	Create(ctx context.Context, p *model.Purchase) error
	ListByUser(ctx context.Context, userID uuid.UUID) ([]model.Purchase, error)
}

// PurchaseService records and lists course purchases.
type PurchaseService struct {
	purchases PurchaseStore
	courses   CourseFinder
	log       zerolog.Logger
}

// NewPurchaseService creates a new PurchaseService.
func NewPurchaseService(purchases PurchaseStore, courses CourseFinder, log zerolog.Logger) *PurchaseService {
	return &PurchaseService{
		purchases: purchases,
		courses:   courses,
		log:       log.With().Str("component", "purchase_service").Logger(),
	}
}

// Purchase records that the user bought the course. The course must exist;
// beyond that the insert is unconditional: no payment step, and buying the
// same course again records a second purchase.
func (s *PurchaseService) Purchase(ctx context.Context, userID, courseID uuid.UUID) (*model.Purchase, error) {
	if _, err := s.courses.GetByID(ctx, courseID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrCourseNotFound
		}
		return nil, err
	}

	purchase := &model.Purchase{UserID: userID, CourseID: courseID}
	if err := s.purchases.Create(ctx, purchase); err != nil {
		return nil, err
	}

	s.log.Info().
		Str("user_id", userID.String()).
		Str("course_id", courseID.String()).
		Msg("course purchased")
	return purchase, nil
}

// ListByUser returns all purchases the user has made, newest first.
func (s *PurchaseService) ListByUser(ctx context.Context, userID uuid.UUID) ([]model.Purchase, error) {
	return s.purchases.ListByUser(ctx, userID)
}
