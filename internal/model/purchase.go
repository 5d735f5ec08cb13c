package model

import (
	"time"

	"github.com/google/uuid"
)

// Purchase records that a user bought a course. There is deliberately no
// uniqueness over (user, course): repeat purchases are permitted.
type Purchase struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"userId"`
	CourseID  uuid.UUID `json:"courseId"`
	CreatedAt time.Time `json:"created_at"`
}
