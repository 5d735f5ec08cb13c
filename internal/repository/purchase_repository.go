package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/coursebay/coursebay-backend/internal/model"
)

// PurchaseRepository handles purchase data access.
type PurchaseRepository struct {
	pool *pgxpool.Pool
}

// NewPurchaseRepository creates a new PurchaseRepository.
func NewPurchaseRepository(pool *pgxpool.Pool) *PurchaseRepository {
	return &PurchaseRepository{pool: pool}
}

// Create inserts a purchase row. There is no duplicate check: buying the
// same course twice records two rows.
func (r *PurchaseRepository) Create(ctx context.Context, p *model.Purchase) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO purchases (user_id, course_id)
		 VALUES ($1, $2)
		 RETURNING id, created_at`,
		p.UserID, p.CourseID,
	).Scan(&p.ID, &p.CreatedAt)
}

// ListByUser retrieves all purchases made by a user, newest first.
func (r *PurchaseRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]model.Purchase, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, user_id, course_id, created_at
		 FROM purchases
		 WHERE user_id = $1
		 ORDER BY created_at DESC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var purchases []model.Purchase
	for rows.Next() {
		var p model.Purchase
		if err := rows.Scan(&p.ID, &p.UserID, &p.CourseID, &p.CreatedAt); err != nil {
			return nil, err
		}
		purchases = append(purchases, p)
	}
	return purchases, rows.Err()
}
