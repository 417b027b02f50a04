package memory

import (
	"context"
	"time"

	"github.com/ignite/networking-ai/internal/domain"
	"github.com/ignite/networking-ai/internal/service/campaign"
)

// CampaignRepo implements campaign.Repository in memory.
type CampaignRepo struct{ s *Store }

func (r *CampaignRepo) find(id string) int {
	for i := range r.s.campaigns {
		if r.s.campaigns[i].ID == id {
			return i
		}
	}
	return -1
}

func (r *CampaignRepo) Get(_ context.Context, id string) (*domain.Campaign, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	i := r.find(id)
	if i < 0 {
		return nil, campaign.ErrNotFound
	}
	c := cloneCampaign(r.s.campaigns[i])
	return &c, nil
}

func (r *CampaignRepo) List(_ context.Context, f campaign.ListFilter) ([]domain.Campaign, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := []domain.Campaign{}
	order := newestFirst(len(r.s.campaigns), func(i int) time.Time { return r.s.campaigns[i].CreatedAt })
	for _, i := range order {
		c := r.s.campaigns[i]
		if f.Status != "" && c.Status != f.Status {
			continue
		}
		out = append(out, cloneCampaign(c))
		if f.Limit > 0 && len(out) == f.Limit {
			break
		}
	}
	return out, nil
}

func (r *CampaignRepo) Create(_ context.Context, c *domain.Campaign) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.campaigns = append(r.s.campaigns, cloneCampaign(*c))
	return nil
}

func (r *CampaignRepo) Update(_ context.Context, id string, u campaign.UpdateFields, updatedAt time.Time) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	i := r.find(id)
	if i < 0 {
		return campaign.ErrNotFound
	}
	u.Apply(&r.s.campaigns[i])
	r.s.campaigns[i].UpdatedAt = updatedAt
	return nil
}
