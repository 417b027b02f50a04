package domain

import "time"

// DefaultUserID is the implicit owner of goals when none is supplied.
const DefaultUserID = "default_user"

// NetworkingGoals captures what the user wants out of their networking.
type NetworkingGoals struct {
	ID                          string    `json:"id" db:"id"`
	UserID                      string    `json:"user_id" db:"user_id"`
	Industry                    string    `json:"industry" db:"industry"`
	Role                        string    `json:"role" db:"role"`
	CompanySize                 string    `json:"company_size,omitempty" db:"company_size"`
	NetworkingObjectives        []string  `json:"networking_objectives" db:"networking_objectives"`
	TargetContactsPerMonth      int       `json:"target_contacts_per_month" db:"target_contacts_per_month"`
	PreferredCommunicationStyle string    `json:"preferred_communication_style" db:"preferred_communication_style"`
	PainPoints                  []string  `json:"pain_points" db:"pain_points"`
	SuccessMetrics              []string  `json:"success_metrics" db:"success_metrics"`
	CreatedAt                   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt                   time.Time `json:"updated_at" db:"updated_at"`
}
