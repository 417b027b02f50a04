package domain

import "time"

// EmailTemplate is a reusable subject/body pair written in Liquid syntax.
type EmailTemplate struct {
	ID        string    `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	Subject   string    `json:"subject" db:"subject"`
	Body      string    `json:"body" db:"body"`
	Type      string    `json:"type" db:"type"` // introduction, follow_up, meeting_request, ...
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
