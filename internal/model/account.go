package model

import (
	"time"

	"github.com/google/uuid"
)

// Admin is an account that can create and manage courses.
type Admin struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

// User is an account that browses and purchases courses.
type User struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

// SignupRequest is the payload for admin and user registration.
type SignupRequest struct {
	Name     string `json:"name" binding:"required,min=3,max=30"`
	Email    string `json:"email" binding:"required,email,max=30"`
	Password string `json:"password" binding:"required,min=8,max=30"`
}

// SigninRequest is the payload for admin and user sign-in.
type SigninRequest struct {
	Email    string `json:"email" binding:"required,email,max=30"`
	Password string `json:"password" binding:"required,min=8,max=30"`
}
