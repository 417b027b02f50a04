// Package goals stores the user's networking goals. Goals are written once
// and read back by user id; the single implicit user is domain.DefaultUserID.
package goals

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/ignite/networking-ai/internal/domain"
)

// ErrValidation marks rejected input.
var ErrValidation = errors.New("invalid networking goals")

const (
	// MaxListLimit caps a single list call.
	MaxListLimit = 1000

	defaultTargetPerMonth = 10
	defaultStyle          = "professional"
)

// Repository defines the data access contract for networking goals.
type Repository interface {
	Create(ctx context.Context, g *domain.NetworkingGoals) error
	// ListByUser returns the user's goal records, oldest first.
	ListByUser(ctx context.Context, userID string, limit int) ([]domain.NetworkingGoals, error)
}

// CreateInput holds the fields accepted when recording goals.
type CreateInput struct {
	UserID                      string   `json:"user_id"`
	Industry                    string   `json:"industry"`
	Role                        string   `json:"role"`
	CompanySize                 string   `json:"company_size"`
	NetworkingObjectives        []string `json:"networking_objectives"`
	TargetContactsPerMonth      *int     `json:"target_contacts_per_month"`
	PreferredCommunicationStyle string   `json:"preferred_communication_style"`
	PainPoints                  []string `json:"pain_points"`
	SuccessMetrics              []string `json:"success_metrics"`
}

// Service implements goal creation and lookup.
type Service struct {
	repo Repository
	now  func() time.Time
}

// NewService creates a goals service backed by repo.
func NewService(repo Repository) *Service {
	return &Service{repo: repo, now: time.Now}
}

// Create validates and stores a goals record, filling defaults.
func (s *Service) Create(ctx context.Context, in CreateInput) (*domain.NetworkingGoals, error) {
	if strings.TrimSpace(in.Industry) == "" {
		return nil, fmt.Errorf("%w: industry is required", ErrValidation)
	}
	if strings.TrimSpace(in.Role) == "" {
		return nil, fmt.Errorf("%w: role is required", ErrValidation)
	}
	target := defaultTargetPerMonth
	if in.TargetContactsPerMonth != nil {
		if *in.TargetContactsPerMonth < 0 {
			return nil, fmt.Errorf("%w: target_contacts_per_month cannot be negative", ErrValidation)
		}
		target = *in.TargetContactsPerMonth
	}

	now := s.now().UTC()
	g := &domain.NetworkingGoals{
		ID:                          uuid.New().String(),
		UserID:                      orDefault(in.UserID, domain.DefaultUserID),
		Industry:                    in.Industry,
		Role:                        in.Role,
		CompanySize:                 in.CompanySize,
		NetworkingObjectives:        nonNil(in.NetworkingObjectives),
		TargetContactsPerMonth:      target,
		PreferredCommunicationStyle: orDefault(in.PreferredCommunicationStyle, defaultStyle),
		PainPoints:                  nonNil(in.PainPoints),
		SuccessMetrics:              nonNil(in.SuccessMetrics),
		CreatedAt:                   now,
		UpdatedAt:                   now,
	}
	if err := s.repo.Create(ctx, g); err != nil {
		return nil, fmt.Errorf("create goals: %w", err)
	}
	return g, nil
}

// List returns the goals recorded for userID (the default user when empty).
func (s *Service) List(ctx context.Context, userID string) ([]domain.NetworkingGoals, error) {
	return s.repo.ListByUser(ctx, orDefault(userID, domain.DefaultUserID), MaxListLimit)
}

// Primary returns the user's first goals record, or nil when none exist.
func (s *Service) Primary(ctx context.Context, userID string) (*domain.NetworkingGoals, error) {
	gs, err := s.repo.ListByUser(ctx, orDefault(userID, domain.DefaultUserID), 1)
	if err != nil || len(gs) == 0 {
		return nil, err
	}
	return &gs[0], nil
}

func orDefault(v, def string) string {
	if strings.TrimSpace(v) == "" {
		return def
	}
	return v
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
