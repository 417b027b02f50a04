package template

import (
	"context"

	"github.com/ignite/networking-ai/internal/domain"
)

// Repository defines the data access contract for email templates.
// Templates are immutable once created, so there is no Update or Delete.
type Repository interface {
	Get(ctx context.Context, id string) (*domain.EmailTemplate, error)
	List(ctx context.Context, limit int) ([]domain.EmailTemplate, error)
	Create(ctx context.Context, t *domain.EmailTemplate) error
}

// ContactReader is the slice of the contact repository rendering needs.
type ContactReader interface {
	Get(ctx context.Context, id string) (*domain.Contact, error)
}
