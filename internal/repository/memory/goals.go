package memory

import (
	"context"

	"github.com/ignite/networking-ai/internal/domain"
)

// GoalsRepo implements goals.Repository in memory.
type GoalsRepo struct{ s *Store }

func (r *GoalsRepo) Create(_ context.Context, g *domain.NetworkingGoals) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.goals = append(r.s.goals, cloneGoals(*g))
	return nil
}

func (r *GoalsRepo) ListByUser(_ context.Context, userID string, limit int) ([]domain.NetworkingGoals, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := []domain.NetworkingGoals{}
	for _, g := range r.s.goals {
		if g.UserID != userID {
			continue
		}
		out = append(out, cloneGoals(g))
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out, nil
}
