package interaction

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/ignite/networking-ai/internal/domain"
	"github.com/ignite/networking-ai/internal/pkg/distlock"
	"github.com/ignite/networking-ai/internal/pkg/logger"
	"github.com/ignite/networking-ai/internal/scoring"
)

// ErrValidation marks rejected input.
var ErrValidation = errors.New("invalid interaction")

const (
	// MaxListLimit caps the logs returned for one contact.
	MaxListLimit = 1000

	lockWait = 2 * time.Second
	lockPoll = 50 * time.Millisecond
)

// Repository stores interaction logs.
type Repository interface {
	Create(ctx context.Context, l *domain.InteractionLog) error
	// ListByContact returns logs for a contact, oldest first. limit <= 0
	// means no limit.
	ListByContact(ctx context.Context, contactID string, limit int) ([]domain.InteractionLog, error)
}

// ContactWriter is the slice of the contact repository this service updates.
type ContactWriter interface {
	TouchInteraction(ctx context.Context, id string, at time.Time) (bool, error)
	SetRelationshipStrength(ctx context.Context, id string, strength int, at time.Time) (bool, error)
}

// CreateInput holds the fields for logging an interaction.
type CreateInput struct {
	ContactID string `json:"contact_id"`
	Type      string `json:"type"`
	Subject   string `json:"subject"`
	Content   string `json:"content"`
	Status    string `json:"status"`
}

// Service implements interaction logging.
type Service struct {
	logs     Repository
	contacts ContactWriter
	locks    distlock.Factory
	now      func() time.Time
}

// NewService wires the service. locks may be nil, in which case concurrent
// logs for one contact can race on relationship_strength (last writer wins).
func NewService(logs Repository, contacts ContactWriter, locks distlock.Factory) *Service {
	return &Service{logs: logs, contacts: contacts, locks: locks, now: time.Now}
}

// WithClock overrides the time source. Used by tests.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// Create persists the log and then refreshes the contact's derived fields.
// Failures after the log is stored are returned but the log stays.
func (s *Service) Create(ctx context.Context, in CreateInput) (*domain.InteractionLog, error) {
	if strings.TrimSpace(in.ContactID) == "" {
		return nil, fmt.Errorf("%w: contact_id is required", ErrValidation)
	}
	if strings.TrimSpace(in.Type) == "" {
		return nil, fmt.Errorf("%w: type is required", ErrValidation)
	}

	l := &domain.InteractionLog{
		ID:        uuid.New().String(),
		ContactID: in.ContactID,
		Type:      in.Type,
		Subject:   in.Subject,
		Content:   in.Content,
		Status:    in.Status,
		CreatedAt: s.now().UTC(),
	}
	if l.Status == "" {
		l.Status = domain.InteractionCompleted
	}

	if err := s.logs.Create(ctx, l); err != nil {
		return nil, fmt.Errorf("create interaction: %w", err)
	}

	if err := s.refreshContact(ctx, l.ContactID); err != nil {
		return nil, err
	}
	return l, nil
}

// ListByContact returns up to MaxListLimit logs for a contact.
func (s *Service) ListByContact(ctx context.Context, contactID string) ([]domain.InteractionLog, error) {
	return s.logs.ListByContact(ctx, contactID, MaxListLimit)
}

func (s *Service) refreshContact(ctx context.Context, contactID string) error {
	if s.locks != nil {
		lock := s.locks("contact:" + contactID + ":relationship")
		ok, err := distlock.AcquireWithin(ctx, lock, lockWait, lockPoll)
		switch {
		case err != nil:
			logger.Warn("relationship lock unavailable, updating unlocked", "contact_id", contactID, "error", err)
		case !ok:
			logger.Warn("relationship lock contended, updating unlocked", "contact_id", contactID)
		default:
			defer func() {
				if err := lock.Release(context.WithoutCancel(ctx)); err != nil {
					logger.Warn("relationship lock release failed", "contact_id", contactID, "error", err)
				}
			}()
		}
	}

	now := s.now().UTC()
	matched, err := s.contacts.TouchInteraction(ctx, contactID, now)
	if err != nil {
		return fmt.Errorf("touch contact: %w", err)
	}

	all, err := s.logs.ListByContact(ctx, contactID, 0)
	if err != nil {
		return fmt.Errorf("reload interactions: %w", err)
	}
	strength := scoring.RelationshipStrength(all, now)

	if _, err := s.contacts.SetRelationshipStrength(ctx, contactID, strength, now); err != nil {
		return fmt.Errorf("update relationship strength: %w", err)
	}

	if !matched {
		logger.Warn("interaction logged for unknown contact", "contact_id", contactID)
		return nil
	}
	logger.Debug("relationship strength updated", "contact_id", contactID, "strength", strength, "interactions", len(all))
	return nil
}
