package memory

import (
	"context"
	"time"

	"github.com/ignite/networking-ai/internal/domain"
	"github.com/ignite/networking-ai/internal/service/analytics"
)

// AnalyticsRepo implements analytics.Source by scanning the store.
type AnalyticsRepo struct{ s *Store }

func (r *AnalyticsRepo) ContactStats(_ context.Context, since time.Time) (analytics.ContactStats, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	st := analytics.ContactStats{
		ByStatus:   map[domain.ContactStatus]int{},
		ByPriority: map[domain.Priority]int{},
	}
	for _, c := range r.s.contacts {
		st.Total++
		st.ByStatus[c.Status]++
		st.ByPriority[c.Priority]++
		st.LeadScoreSum += c.LeadScore
		st.RelationshipSum += c.RelationshipStrength
		if !c.CreatedAt.Before(since) {
			st.CreatedSince++
		}
	}
	return st, nil
}

func (r *AnalyticsRepo) CampaignStats(_ context.Context, since time.Time) (analytics.CampaignStats, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	st := analytics.CampaignStats{ByStatus: map[domain.CampaignStatus]int{}}
	for _, c := range r.s.campaigns {
		st.Total++
		st.ByStatus[c.Status]++
		st.SentSum += c.SentCount
		st.ResponseSum += c.ResponseCount
		st.ConversionSum += c.ConversionCount
		if !c.CreatedAt.Before(since) {
			st.CreatedSince++
		}
	}
	return st, nil
}
