package domain

import "time"

// InteractionCompleted is the default interaction status.
const InteractionCompleted = "completed"

// InteractionLog records one touchpoint with a contact. Logs are immutable.
type InteractionLog struct {
	ID        string    `json:"id" db:"id"`
	ContactID string    `json:"contact_id" db:"contact_id"`
	Type      string    `json:"type" db:"type"` // email_sent, email_received, meeting, call, ...
	Subject   string    `json:"subject,omitempty" db:"subject"`
	Content   string    `json:"content,omitempty" db:"content"`
	Status    string    `json:"status" db:"status"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
