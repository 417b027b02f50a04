package contact

import (
	"context"
	"time"

	"github.com/ignite/networking-ai/internal/domain"
)

// Repository defines the data access contract for contacts.
// Implementations must be safe for concurrent use.
type Repository interface {
	// Get returns a single contact. Returns ErrNotFound if it doesn't exist.
	Get(ctx context.Context, id string) (*domain.Contact, error)

	// List returns contacts matching the filter, newest first.
	List(ctx context.Context, filter ListFilter) ([]domain.Contact, error)

	// Create inserts a fully populated contact.
	Create(ctx context.Context, c *domain.Contact) error

	// Update applies the non-nil fields of u and sets updated_at.
	// Returns ErrNotFound if the contact doesn't exist.
	Update(ctx context.Context, id string, u UpdateFields, updatedAt time.Time) error

	// Delete removes a contact. Returns ErrNotFound if it doesn't exist.
	Delete(ctx context.Context, id string) error

	// TouchInteraction sets last_interaction. It reports whether a contact
	// matched; an unknown id is not an error.
	TouchInteraction(ctx context.Context, id string, at time.Time) (bool, error)

	// SetRelationshipStrength stores a recomputed strength and bumps
	// updated_at. It reports whether a contact matched.
	SetRelationshipStrength(ctx context.Context, id string, strength int, at time.Time) (bool, error)
}

// ListFilter controls filtering for contact lists. Zero values are ignored.
type ListFilter struct {
	Status   domain.ContactStatus
	Priority domain.Priority
	Limit    int
}

// UpdateFields holds the mutable fields for a contact patch.
// Nil fields are left untouched.
type UpdateFields struct {
	Name        *string               `json:"name"`
	Email       *string               `json:"email"`
	Company     *string               `json:"company"`
	Position    *string               `json:"position"`
	Industry    *string               `json:"industry"`
	LinkedInURL *string               `json:"linkedin_url"`
	Phone       *string               `json:"phone"`
	Notes       *string               `json:"notes"`
	Status      *domain.ContactStatus `json:"status"`
	Priority    *domain.Priority      `json:"priority"`
	Tags        *[]string             `json:"tags"`
}

// Apply merges the non-nil fields into c. Repositories that store whole
// documents use it so every backend agrees on patch semantics.
func (u UpdateFields) Apply(c *domain.Contact) {
	if u.Name != nil {
		c.Name = *u.Name
	}
	if u.Email != nil {
		c.Email = *u.Email
	}
	if u.Company != nil {
		c.Company = *u.Company
	}
	if u.Position != nil {
		c.Position = *u.Position
	}
	if u.Industry != nil {
		c.Industry = *u.Industry
	}
	if u.LinkedInURL != nil {
		c.LinkedInURL = *u.LinkedInURL
	}
	if u.Phone != nil {
		c.Phone = *u.Phone
	}
	if u.Notes != nil {
		c.Notes = *u.Notes
	}
	if u.Status != nil {
		c.Status = *u.Status
	}
	if u.Priority != nil {
		c.Priority = *u.Priority
	}
	if u.Tags != nil {
		c.Tags = append([]string{}, (*u.Tags)...)
	}
}
