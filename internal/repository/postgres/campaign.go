package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"

	"github.com/ignite/networking-ai/internal/domain"
	"github.com/ignite/networking-ai/internal/service/campaign"
)

const campaignColumns = `id, name, description, status, contact_ids, template_id, scheduled_at,
		       sent_count, response_count, conversion_count, created_at, updated_at`

// CampaignRepo implements campaign.Repository against PostgreSQL.
type CampaignRepo struct{ db *sql.DB }

// NewCampaignRepo creates a Postgres-backed campaign repository.
func NewCampaignRepo(db *sql.DB) *CampaignRepo { return &CampaignRepo{db: db} }

func scanCampaign(row rowScanner) (*domain.Campaign, error) {
	var (
		c           domain.Campaign
		templateID  sql.NullString
		scheduledAt sql.NullTime
	)
	if err := row.Scan(
		&c.ID, &c.Name, &c.Description, &c.Status, pq.Array(&c.ContactIDs), &templateID, &scheduledAt,
		&c.SentCount, &c.ResponseCount, &c.ConversionCount, &c.CreatedAt, &c.UpdatedAt,
	); err != nil {
		return nil, err
	}
	c.ContactIDs = emptyIfNil(c.ContactIDs)
	if templateID.Valid {
		id := templateID.String
		c.TemplateID = &id
	}
	if scheduledAt.Valid {
		t := scheduledAt.Time
		c.ScheduledAt = &t
	}
	return &c, nil
}

func (r *CampaignRepo) Get(ctx context.Context, id string) (*domain.Campaign, error) {
	c, err := scanCampaign(r.db.QueryRowContext(ctx,
		`SELECT `+campaignColumns+` FROM campaigns WHERE id = $1`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, campaign.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get campaign: %w", err)
	}
	return c, nil
}

func (r *CampaignRepo) List(ctx context.Context, f campaign.ListFilter) ([]domain.Campaign, error) {
	q := `SELECT ` + campaignColumns + ` FROM campaigns`
	args := []interface{}{}
	idx := 1
	if f.Status != "" {
		q += fmt.Sprintf(" WHERE status = $%d", idx)
		args = append(args, f.Status)
		idx++
	}
	q += fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d", idx)
	args = append(args, f.Limit)

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("list campaigns: %w", err)
	}
	defer rows.Close()

	out := []domain.Campaign{}
	for rows.Next() {
		c, err := scanCampaign(rows)
		if err != nil {
			return nil, fmt.Errorf("scan campaign: %w", err)
		}
		out = append(out, *c)
	}
	return out, rows.Err()
}

func (r *CampaignRepo) Create(ctx context.Context, c *domain.Campaign) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO campaigns
			(id, name, description, status, contact_ids, template_id, scheduled_at,
			 sent_count, response_count, conversion_count, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`, c.ID, c.Name, c.Description, c.Status, pq.Array(emptyIfNil(c.ContactIDs)), c.TemplateID, c.ScheduledAt,
		c.SentCount, c.ResponseCount, c.ConversionCount, c.CreatedAt, c.UpdatedAt)
	if err != nil {
		return fmt.Errorf("create campaign: %w", err)
	}
	return nil
}

func (r *CampaignRepo) Update(ctx context.Context, id string, u campaign.UpdateFields, updatedAt time.Time) error {
	sets := []string{}
	args := []interface{}{}
	idx := 1
	add := func(col string, val interface{}) {
		sets = append(sets, fmt.Sprintf("%s = $%d", col, idx))
		args = append(args, val)
		idx++
	}

	if u.Name != nil {
		add("name", *u.Name)
	}
	if u.Description != nil {
		add("description", *u.Description)
	}
	if u.Status != nil {
		add("status", *u.Status)
	}
	if u.ContactIDs != nil {
		add("contact_ids", pq.Array(emptyIfNil(*u.ContactIDs)))
	}
	if u.TemplateID != nil {
		add("template_id", *u.TemplateID)
	} else if u.ClearTemplateID {
		add("template_id", nil)
	}
	if u.ScheduledAt != nil {
		add("scheduled_at", *u.ScheduledAt)
	} else if u.ClearScheduledAt {
		add("scheduled_at", nil)
	}
	if u.SentCount != nil {
		add("sent_count", *u.SentCount)
	}
	if u.ResponseCount != nil {
		add("response_count", *u.ResponseCount)
	}
	if u.ConversionCount != nil {
		add("conversion_count", *u.ConversionCount)
	}
	add("updated_at", updatedAt)

	q := fmt.Sprintf("UPDATE campaigns SET %s WHERE id = $%d", joinComma(sets), idx)
	args = append(args, id)

	res, err := r.db.ExecContext(ctx, q, args...)
	if err != nil {
		return fmt.Errorf("update campaign: %w", err)
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return campaign.ErrNotFound
	}
	return nil
}
