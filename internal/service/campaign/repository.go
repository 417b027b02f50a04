package campaign

import (
	"bytes"
	"context"
	"encoding/json"
	"time"

	"github.com/ignite/networking-ai/internal/domain"
)

// Repository defines the data access contract for campaigns.
// Implementations must be safe for concurrent use.
type Repository interface {
	// Get returns a single campaign. Returns ErrNotFound if it doesn't exist.
	Get(ctx context.Context, id string) (*domain.Campaign, error)

	// List returns campaigns matching the given filter, ordered by created_at DESC.
	List(ctx context.Context, filter ListFilter) ([]domain.Campaign, error)

	// Create inserts a fully populated campaign.
	Create(ctx context.Context, c *domain.Campaign) error

	// Update modifies a campaign. Only non-nil fields in the update are applied.
	Update(ctx context.Context, id string, u UpdateFields, updatedAt time.Time) error
}

// ListFilter controls filtering for campaign lists.
type ListFilter struct {
	Status domain.CampaignStatus
	Limit  int
}

// UpdateFields holds the mutable fields for a campaign update.
// Nil fields are not applied. An explicit JSON null for template_id or
// scheduled_at clears the stored value.
type UpdateFields struct {
	Name            *string                `json:"name"`
	Description     *string                `json:"description"`
	Status          *domain.CampaignStatus `json:"status"`
	ContactIDs      *[]string              `json:"contact_ids"`
	TemplateID      *string                `json:"template_id"`
	ScheduledAt     *time.Time             `json:"scheduled_at"`
	SentCount       *int                   `json:"sent_count"`
	ResponseCount   *int                   `json:"response_count"`
	ConversionCount *int                   `json:"conversion_count"`

	ClearTemplateID  bool `json:"-"`
	ClearScheduledAt bool `json:"-"`
}

// UnmarshalJSON decodes the patch and records which nullable fields were
// sent as null.
func (u *UpdateFields) UnmarshalJSON(data []byte) error {
	type plain UpdateFields
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*u = UpdateFields(p)
	u.ClearTemplateID = isNull(raw, "template_id")
	u.ClearScheduledAt = isNull(raw, "scheduled_at")
	return nil
}

func isNull(raw map[string]json.RawMessage, key string) bool {
	v, ok := raw[key]
	return ok && bytes.Equal(bytes.TrimSpace(v), []byte("null"))
}

// Apply merges the non-nil fields into c.
func (u UpdateFields) Apply(c *domain.Campaign) {
	if u.Name != nil {
		c.Name = *u.Name
	}
	if u.Description != nil {
		c.Description = *u.Description
	}
	if u.Status != nil {
		c.Status = *u.Status
	}
	if u.ContactIDs != nil {
		c.ContactIDs = append([]string{}, (*u.ContactIDs)...)
	}
	if u.TemplateID != nil {
		id := *u.TemplateID
		c.TemplateID = &id
	} else if u.ClearTemplateID {
		c.TemplateID = nil
	}
	if u.ScheduledAt != nil {
		at := *u.ScheduledAt
		c.ScheduledAt = &at
	} else if u.ClearScheduledAt {
		c.ScheduledAt = nil
	}
	if u.SentCount != nil {
		c.SentCount = *u.SentCount
	}
	if u.ResponseCount != nil {
		c.ResponseCount = *u.ResponseCount
	}
	if u.ConversionCount != nil {
		c.ConversionCount = *u.ConversionCount
	}
}
