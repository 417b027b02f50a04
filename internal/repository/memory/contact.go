package memory

import (
	"context"
	"time"

	"github.com/ignite/networking-ai/internal/domain"
	"github.com/ignite/networking-ai/internal/service/contact"
)

// ContactRepo implements contact.Repository in memory.
type ContactRepo struct{ s *Store }

func (r *ContactRepo) find(id string) int {
	for i := range r.s.contacts {
		if r.s.contacts[i].ID == id {
			return i
		}
	}
	return -1
}

func (r *ContactRepo) Get(_ context.Context, id string) (*domain.Contact, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	i := r.find(id)
	if i < 0 {
		return nil, contact.ErrNotFound
	}
	c := cloneContact(r.s.contacts[i])
	return &c, nil
}

func (r *ContactRepo) List(_ context.Context, f contact.ListFilter) ([]domain.Contact, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := []domain.Contact{}
	order := newestFirst(len(r.s.contacts), func(i int) time.Time { return r.s.contacts[i].CreatedAt })
	for _, i := range order {
		c := r.s.contacts[i]
		if f.Status != "" && c.Status != f.Status {
			continue
		}
		if f.Priority != "" && c.Priority != f.Priority {
			continue
		}
		out = append(out, cloneContact(c))
		if f.Limit > 0 && len(out) == f.Limit {
			break
		}
	}
	return out, nil
}

func (r *ContactRepo) Create(_ context.Context, c *domain.Contact) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.contacts = append(r.s.contacts, cloneContact(*c))
	return nil
}

func (r *ContactRepo) Update(_ context.Context, id string, u contact.UpdateFields, updatedAt time.Time) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	i := r.find(id)
	if i < 0 {
		return contact.ErrNotFound
	}
	u.Apply(&r.s.contacts[i])
	r.s.contacts[i].UpdatedAt = updatedAt
	return nil
}

func (r *ContactRepo) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	i := r.find(id)
	if i < 0 {
		return contact.ErrNotFound
	}
	r.s.contacts = append(r.s.contacts[:i], r.s.contacts[i+1:]...)
	return nil
}

func (r *ContactRepo) TouchInteraction(_ context.Context, id string, at time.Time) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	i := r.find(id)
	if i < 0 {
		return false, nil
	}
	r.s.contacts[i].LastInteraction = cloneTime(&at)
	return true, nil
}

func (r *ContactRepo) SetRelationshipStrength(_ context.Context, id string, strength int, at time.Time) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	i := r.find(id)
	if i < 0 {
		return false, nil
	}
	r.s.contacts[i].RelationshipStrength = strength
	r.s.contacts[i].UpdatedAt = at
	return true, nil
}
