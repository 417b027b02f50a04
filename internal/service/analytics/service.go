// Package analytics folds contact and campaign aggregates into the fixed
// report served by the dashboard. Every call scans the full collections;
// that is acceptable only while they stay small.
package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/ignite/networking-ai/internal/domain"
)

// GrowthWindow is the trailing window counted as "this month".
const GrowthWindow = 30 * 24 * time.Hour

// ContactStats are the raw contact aggregates a repository returns.
type ContactStats struct {
	Total           int
	ByStatus        map[domain.ContactStatus]int
	ByPriority      map[domain.Priority]int
	LeadScoreSum    int
	RelationshipSum int
	CreatedSince    int
}

// CampaignStats are the raw campaign aggregates a repository returns.
type CampaignStats struct {
	Total         int
	ByStatus      map[domain.CampaignStatus]int
	SentSum       int
	ResponseSum   int
	ConversionSum int
	CreatedSince  int
}

// Source runs the group-by queries behind the report.
type Source interface {
	ContactStats(ctx context.Context, since time.Time) (ContactStats, error)
	CampaignStats(ctx context.Context, since time.Time) (CampaignStats, error)
}

// Service builds analytics reports.
type Service struct {
	src Source
	now func() time.Time
}

// NewService creates an analytics service over src.
func NewService(src Source) *Service {
	return &Service{src: src, now: time.Now}
}

// WithClock overrides the time source. Used by tests.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// Report computes the current analytics summary.
func (s *Service) Report(ctx context.Context) (*domain.AnalyticsReport, error) {
	since := s.now().UTC().Add(-GrowthWindow)

	cs, err := s.src.ContactStats(ctx, since)
	if err != nil {
		return nil, fmt.Errorf("contact stats: %w", err)
	}
	ps, err := s.src.CampaignStats(ctx, since)
	if err != nil {
		return nil, fmt.Errorf("campaign stats: %w", err)
	}
	return Fold(cs, ps), nil
}

// Fold turns raw aggregates into a report. Every enum key is present in the
// grouped maps, and rates and averages are zero rather than NaN when their
// denominator is zero.
func Fold(cs ContactStats, ps CampaignStats) *domain.AnalyticsReport {
	r := &domain.AnalyticsReport{
		TotalContacts:      cs.Total,
		ContactsByStatus:   make(map[string]int, len(domain.ContactStatuses)),
		ContactsByPriority: make(map[string]int, len(domain.Priorities)),
		TotalCampaigns:     ps.Total,
		CampaignsByStatus:  make(map[string]int, len(domain.CampaignStatuses)),
		EmailPerformance: domain.EmailPerformance{
			TotalSent:        ps.SentSum,
			TotalResponses:   ps.ResponseSum,
			TotalConversions: ps.ConversionSum,
			ResponseRate:     percent(ps.ResponseSum, ps.SentSum),
			ConversionRate:   percent(ps.ConversionSum, ps.SentSum),
		},
		RelationshipScores: domain.RelationshipScores{
			AverageLeadScore:            average(cs.LeadScoreSum, cs.Total),
			AverageRelationshipStrength: average(cs.RelationshipSum, cs.Total),
		},
		MonthlyGrowth: domain.MonthlyGrowth{
			NewContacts:  cs.CreatedSince,
			NewCampaigns: ps.CreatedSince,
		},
	}

	for _, st := range domain.ContactStatuses {
		r.ContactsByStatus[string(st)] = cs.ByStatus[st]
	}
	for _, p := range domain.Priorities {
		r.ContactsByPriority[string(p)] = cs.ByPriority[p]
	}
	for _, st := range domain.CampaignStatuses {
		r.CampaignsByStatus[string(st)] = ps.ByStatus[st]
	}
	return r
}

func percent(part, whole int) float64 {
	if whole == 0 {
		return 0
	}
	return float64(part) / float64(whole) * 100
}

func average(sum, n int) float64 {
	if n == 0 {
		return 0
	}
	return float64(sum) / float64(n)
}
