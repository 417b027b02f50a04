package domain

import (
	"time"
)

// CampaignStatus enumerates the lifecycle states of an outreach campaign.
// Any status may be set from any other; there is no transition table.
type CampaignStatus string

const (
	CampaignDraft     CampaignStatus = "draft"
	CampaignActive    CampaignStatus = "active"
	CampaignPaused    CampaignStatus = "paused"
	CampaignCompleted CampaignStatus = "completed"
)

// CampaignStatuses lists every campaign status.
var CampaignStatuses = []CampaignStatus{CampaignDraft, CampaignActive, CampaignPaused, CampaignCompleted}

// Valid reports whether s is a known campaign status.
func (s CampaignStatus) Valid() bool {
	for _, v := range CampaignStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// Campaign groups contacts for a round of outreach.
type Campaign struct {
	ID          string         `json:"id" db:"id"`
	Name        string         `json:"name" db:"name"`
	Description string         `json:"description,omitempty" db:"description"`
	Status      CampaignStatus `json:"status" db:"status"`
	ContactIDs  []string       `json:"contact_ids" db:"contact_ids"`
	TemplateID  *string        `json:"template_id" db:"template_id"`
	ScheduledAt *time.Time     `json:"scheduled_at" db:"scheduled_at"`

	// Counters are plain settable fields; nothing increments them server-side.
	SentCount       int `json:"sent_count" db:"sent_count"`
	ResponseCount   int `json:"response_count" db:"response_count"`
	ConversionCount int `json:"conversion_count" db:"conversion_count"`

	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}
