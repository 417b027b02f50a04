package memory

import (
	"context"

	"github.com/ignite/networking-ai/internal/domain"
)

// InteractionRepo implements interaction.Repository in memory.
type InteractionRepo struct{ s *Store }

func (r *InteractionRepo) Create(_ context.Context, l *domain.InteractionLog) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.interactions = append(r.s.interactions, *l)
	return nil
}

func (r *InteractionRepo) ListByContact(_ context.Context, contactID string, limit int) ([]domain.InteractionLog, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := []domain.InteractionLog{}
	for _, l := range r.s.interactions {
		if l.ContactID != contactID {
			continue
		}
		out = append(out, l)
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out, nil
}
