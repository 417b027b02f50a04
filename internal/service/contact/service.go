package contact

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/ignite/networking-ai/internal/domain"
	"github.com/ignite/networking-ai/internal/pkg/logger"
	"github.com/ignite/networking-ai/internal/scoring"
)

const (
	// DefaultListLimit is used when the caller passes no limit.
	DefaultListLimit = 100
	// MaxListLimit caps a single list call.
	MaxListLimit = 1000
)

// Service implements contact business logic. All public methods are safe
// for concurrent use if the underlying repository is concurrency-safe.
type Service struct {
	repo Repository
	now  func() time.Time
}

// NewService creates a contact service backed by the given repository.
func NewService(repo Repository) *Service {
	return &Service{repo: repo, now: time.Now}
}

// WithClock overrides the time source. Used by tests.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// CreateInput holds the fields accepted when creating a contact.
type CreateInput struct {
	Name        string          `json:"name"`
	Email       string          `json:"email"`
	Company     string          `json:"company"`
	Position    string          `json:"position"`
	Industry    string          `json:"industry"`
	LinkedInURL string          `json:"linkedin_url"`
	Phone       string          `json:"phone"`
	Notes       string          `json:"notes"`
	Priority    domain.Priority `json:"priority"`
	Tags        []string        `json:"tags"`
}

// Validate checks required fields and enum values.
func (in CreateInput) Validate() error {
	if strings.TrimSpace(in.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrValidation)
	}
	if strings.TrimSpace(in.Email) == "" {
		return fmt.Errorf("%w: email is required", ErrValidation)
	}
	if in.Priority != "" && !in.Priority.Valid() {
		return fmt.Errorf("%w: unknown priority %q", ErrValidation, in.Priority)
	}
	return nil
}

// Create validates, scores, and persists a new contact with status "new".
func (s *Service) Create(ctx context.Context, in CreateInput) (*domain.Contact, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	now := s.now().UTC()
	c := &domain.Contact{
		ID:          uuid.New().String(),
		Name:        in.Name,
		Email:       in.Email,
		Company:     in.Company,
		Position:    in.Position,
		Industry:    in.Industry,
		LinkedInURL: in.LinkedInURL,
		Phone:       in.Phone,
		Notes:       in.Notes,
		Status:      domain.ContactNew,
		Priority:    in.Priority,
		Tags:        in.Tags,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if c.Priority == "" {
		c.Priority = domain.PriorityMedium
	}
	if c.Tags == nil {
		c.Tags = []string{}
	}
	c.LeadScore = scoring.LeadScore(*c, now)

	if err := s.repo.Create(ctx, c); err != nil {
		return nil, fmt.Errorf("create contact: %w", err)
	}
	logger.Info("contact created", "contact_id", c.ID, "email", c.Email, "lead_score", c.LeadScore)
	return c, nil
}

// List returns contacts matching the filter.
func (s *Service) List(ctx context.Context, f ListFilter) ([]domain.Contact, error) {
	if f.Status != "" && !f.Status.Valid() {
		return nil, fmt.Errorf("%w: unknown status %q", ErrValidation, f.Status)
	}
	if f.Priority != "" && !f.Priority.Valid() {
		return nil, fmt.Errorf("%w: unknown priority %q", ErrValidation, f.Priority)
	}
	switch {
	case f.Limit < 0:
		return nil, fmt.Errorf("%w: limit must be positive", ErrValidation)
	case f.Limit == 0:
		f.Limit = DefaultListLimit
	case f.Limit > MaxListLimit:
		f.Limit = MaxListLimit
	}
	return s.repo.List(ctx, f)
}

// Get returns a single contact.
func (s *Service) Get(ctx context.Context, id string) (*domain.Contact, error) {
	return s.repo.Get(ctx, id)
}

// Update applies a partial patch and returns the stored result. The lead
// score is deliberately left as computed at creation.
func (s *Service) Update(ctx context.Context, id string, u UpdateFields) (*domain.Contact, error) {
	if u.Status != nil && !u.Status.Valid() {
		return nil, fmt.Errorf("%w: unknown status %q", ErrValidation, *u.Status)
	}
	if u.Priority != nil && !u.Priority.Valid() {
		return nil, fmt.Errorf("%w: unknown priority %q", ErrValidation, *u.Priority)
	}
	if u.Name != nil && strings.TrimSpace(*u.Name) == "" {
		return nil, fmt.Errorf("%w: name cannot be empty", ErrValidation)
	}
	if u.Email != nil && strings.TrimSpace(*u.Email) == "" {
		return nil, fmt.Errorf("%w: email cannot be empty", ErrValidation)
	}

	current, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	updatedAt := s.now().UTC()
	if !updatedAt.After(current.UpdatedAt) {
		updatedAt = current.UpdatedAt.Add(time.Microsecond)
	}
	if err := s.repo.Update(ctx, id, u, updatedAt); err != nil {
		return nil, err
	}
	return s.repo.Get(ctx, id)
}

// Delete removes a contact. Interaction logs and campaign references to it
// are left in place.
func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	logger.Info("contact deleted", "contact_id", id)
	return nil
}
