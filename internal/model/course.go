package model

import (
	"time"

	"github.com/google/uuid"
)

// Price bounds for a course, enforced at request validation time.
const (
	MinCoursePrice = 499
	MaxCoursePrice = 6999
)

// Course is a purchasable catalog entry. CreatedBy is set once at creation
// and never changes afterwards.
type Course struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	ImageURL    string    `json:"imageUrl"`
	Price       int       `json:"price"`
	CreatedBy   uuid.UUID `json:"createdBy"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// CourseRequest is the payload for creating or fully replacing a course.
// Updates overwrite all four editable fields; there is no partial update.
type CourseRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description" binding:"required"`
	ImageURL    string `json:"imageUrl" binding:"required"`
	Price       int    `json:"price" binding:"required,gte=499,lte=6999"`
}
