package campaign

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/ignite/networking-ai/internal/domain"
	"github.com/ignite/networking-ai/internal/pkg/logger"
)

// MaxListLimit caps a single list call.
const MaxListLimit = 1000

// Service implements campaign business logic.
// All public methods are safe for concurrent use if the underlying
// repository is concurrency-safe.
type Service struct {
	repo Repository
	now  func() time.Time
}

// NewService creates a campaign service backed by the given repository.
func NewService(repo Repository) *Service {
	return &Service{repo: repo, now: time.Now}
}

// WithClock overrides the time source. Used by tests.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// CreateInput holds the fields for creating a new campaign.
type CreateInput struct {
	Name        string     `json:"name"`
	Description string     `json:"description"`
	ContactIDs  []string   `json:"contact_ids"`
	TemplateID  *string    `json:"template_id"`
	ScheduledAt *time.Time `json:"scheduled_at"`
}

// Get returns a single campaign.
func (s *Service) Get(ctx context.Context, id string) (*domain.Campaign, error) {
	return s.repo.Get(ctx, id)
}

// List returns campaigns matching the filter.
func (s *Service) List(ctx context.Context, f ListFilter) ([]domain.Campaign, error) {
	if f.Status != "" && !f.Status.Valid() {
		return nil, fmt.Errorf("%w: unknown status %q", ErrValidation, f.Status)
	}
	if f.Limit <= 0 || f.Limit > MaxListLimit {
		f.Limit = MaxListLimit
	}
	return s.repo.List(ctx, f)
}

// Create validates and persists a new campaign in draft status with zeroed
// counters. Contact and template references are not checked.
func (s *Service) Create(ctx context.Context, in CreateInput) (*domain.Campaign, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, fmt.Errorf("%w: name is required", ErrValidation)
	}

	now := s.now().UTC()
	c := &domain.Campaign{
		ID:          uuid.New().String(),
		Name:        in.Name,
		Description: in.Description,
		Status:      domain.CampaignDraft,
		ContactIDs:  in.ContactIDs,
		TemplateID:  in.TemplateID,
		ScheduledAt: in.ScheduledAt,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if c.ContactIDs == nil {
		c.ContactIDs = []string{}
	}

	if err := s.repo.Create(ctx, c); err != nil {
		return nil, fmt.Errorf("create campaign: %w", err)
	}
	logger.Info("campaign created", "campaign_id", c.ID, "contacts", len(c.ContactIDs))
	return c, nil
}

// Update applies a partial patch and returns the stored campaign.
func (s *Service) Update(ctx context.Context, id string, u UpdateFields) (*domain.Campaign, error) {
	if err := validateUpdate(u); err != nil {
		return nil, err
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

func validateUpdate(u UpdateFields) error {
	if u.Name != nil && strings.TrimSpace(*u.Name) == "" {
		return fmt.Errorf("%w: name cannot be empty", ErrValidation)
	}
	if u.Status != nil && !u.Status.Valid() {
		return fmt.Errorf("%w: unknown status %q", ErrValidation, *u.Status)
	}
	for field, v := range map[string]*int{
		"sent_count":       u.SentCount,
		"response_count":   u.ResponseCount,
		"conversion_count": u.ConversionCount,
	} {
		if v != nil && *v < 0 {
			return fmt.Errorf("%w: %s cannot be negative", ErrValidation, field)
		}
	}
	return nil
}
