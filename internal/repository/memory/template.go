package memory

import (
	"context"

	"github.com/ignite/networking-ai/internal/domain"
	"github.com/ignite/networking-ai/internal/service/template"
)

// TemplateRepo implements template.Repository in memory.
type TemplateRepo struct{ s *Store }

func (r *TemplateRepo) Get(_ context.Context, id string) (*domain.EmailTemplate, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, t := range r.s.templates {
		if t.ID == id {
			return &t, nil
		}
	}
	return nil, template.ErrNotFound
}

// List returns templates in insertion order.
func (r *TemplateRepo) List(_ context.Context, limit int) ([]domain.EmailTemplate, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	n := len(r.s.templates)
	if limit > 0 && limit < n {
		n = limit
	}
	return append([]domain.EmailTemplate{}, r.s.templates[:n]...), nil
}

func (r *TemplateRepo) Create(_ context.Context, t *domain.EmailTemplate) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.templates = append(r.s.templates, *t)
	return nil
}
