package models

import "time"

type ContactRequest struct {
	Name    string `json:"name" validate:"required,max=200"`
	Email   string `json:"email" validate:"required,email,max=320"`
	Message string `json:"message" validate:"required,max=2000"`
}

type ContactSubmission struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Message     string    `json:"message"`
	Read        bool      `json:"read"`
	ClientIP    string    `json:"-"`
	SubmittedAt time.Time `json:"submitted_at"`
}
