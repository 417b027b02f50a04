package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/ignite/networking-ai/internal/domain"
	"github.com/ignite/networking-ai/internal/service/analytics"
)

// AnalyticsRepo implements analytics.Source with GROUP BY queries.
type AnalyticsRepo struct{ db *sql.DB }

// NewAnalyticsRepo creates a Postgres-backed analytics source.
func NewAnalyticsRepo(db *sql.DB) *AnalyticsRepo { return &AnalyticsRepo{db: db} }

func (r *AnalyticsRepo) ContactStats(ctx context.Context, since time.Time) (analytics.ContactStats, error) {
	st := analytics.ContactStats{
		ByStatus:   map[domain.ContactStatus]int{},
		ByPriority: map[domain.Priority]int{},
	}
	rows, err := r.db.QueryContext(ctx, `
		SELECT status, priority, COUNT(*),
		       COALESCE(SUM(lead_score), 0), COALESCE(SUM(relationship_strength), 0),
		       COUNT(*) FILTER (WHERE created_at >= $1)
		FROM contacts
		GROUP BY status, priority
	`, since)
	if err != nil {
		return st, fmt.Errorf("contact stats: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			status      domain.ContactStatus
			priority    domain.Priority
			n, lead     int
			rel, recent int
		)
		if err := rows.Scan(&status, &priority, &n, &lead, &rel, &recent); err != nil {
			return st, fmt.Errorf("scan contact stats: %w", err)
		}
		st.Total += n
		st.ByStatus[status] += n
		st.ByPriority[priority] += n
		st.LeadScoreSum += lead
		st.RelationshipSum += rel
		st.CreatedSince += recent
	}
	return st, rows.Err()
}

func (r *AnalyticsRepo) CampaignStats(ctx context.Context, since time.Time) (analytics.CampaignStats, error) {
	st := analytics.CampaignStats{ByStatus: map[domain.CampaignStatus]int{}}
	rows, err := r.db.QueryContext(ctx, `
		SELECT status, COUNT(*),
		       COALESCE(SUM(sent_count), 0), COALESCE(SUM(response_count), 0),
		       COALESCE(SUM(conversion_count), 0),
		       COUNT(*) FILTER (WHERE created_at >= $1)
		FROM campaigns
		GROUP BY status
	`, since)
	if err != nil {
		return st, fmt.Errorf("campaign stats: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			status                 domain.CampaignStatus
			n, sent, resp, conv, c int
		)
		if err := rows.Scan(&status, &n, &sent, &resp, &conv, &c); err != nil {
			return st, fmt.Errorf("scan campaign stats: %w", err)
		}
		st.Total += n
		st.ByStatus[status] += n
		st.SentSum += sent
		st.ResponseSum += resp
		st.ConversionSum += conv
		st.CreatedSince += c
	}
	return st, rows.Err()
}
