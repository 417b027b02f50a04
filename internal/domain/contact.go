package domain

import (
	"time"
)

// ContactStatus enumerates where a contact sits in the outreach funnel.
type ContactStatus string

const (
	ContactNew       ContactStatus = "new"
	ContactContacted ContactStatus = "contacted"
	ContactResponded ContactStatus = "responded"
	ContactConverted ContactStatus = "converted"
)

// ContactStatuses lists every contact status in funnel order.
var ContactStatuses = []ContactStatus{ContactNew, ContactContacted, ContactResponded, ContactConverted}

// Valid reports whether s is a known contact status.
func (s ContactStatus) Valid() bool {
	for _, v := range ContactStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// Priority ranks how urgently a contact should be worked.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// Priorities lists every priority from lowest to highest.
var Priorities = []Priority{PriorityLow, PriorityMedium, PriorityHigh}

// Valid reports whether p is a known priority.
func (p Priority) Valid() bool {
	for _, v := range Priorities {
		if p == v {
			return true
		}
	}
	return false
}

// Contact is a person in the user's professional network.
type Contact struct {
	ID                   string        `json:"id" db:"id"`
	Name                 string        `json:"name" db:"name"`
	Email                string        `json:"email" db:"email"`
	Company              string        `json:"company,omitempty" db:"company"`
	Position             string        `json:"position,omitempty" db:"position"`
	Industry             string        `json:"industry,omitempty" db:"industry"`
	LinkedInURL          string        `json:"linkedin_url,omitempty" db:"linkedin_url"`
	Phone                string        `json:"phone,omitempty" db:"phone"`
	Notes                string        `json:"notes,omitempty" db:"notes"`
	Status               ContactStatus `json:"status" db:"status"`
	Priority             Priority      `json:"priority" db:"priority"`
	LeadScore            int           `json:"lead_score" db:"lead_score"`
	RelationshipStrength int           `json:"relationship_strength" db:"relationship_strength"`
	Tags                 []string      `json:"tags" db:"tags"`
	CreatedAt            time.Time     `json:"created_at" db:"created_at"`
	UpdatedAt            time.Time     `json:"updated_at" db:"updated_at"`
	LastContacted        *time.Time    `json:"last_contacted,omitempty" db:"last_contacted"`
	LastInteraction      *time.Time    `json:"last_interaction,omitempty" db:"last_interaction"`
}
