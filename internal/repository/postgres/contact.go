package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"

	"github.com/ignite/networking-ai/internal/domain"
	"github.com/ignite/networking-ai/internal/service/contact"
)

const contactColumns = `id, name, email, company, position, industry, linkedin_url, phone, notes,
		       status, priority, lead_score, relationship_strength, tags,
		       created_at, updated_at, last_contacted, last_interaction`

// ContactRepo implements contact.Repository against PostgreSQL.
type ContactRepo struct{ db *sql.DB }

// NewContactRepo creates a Postgres-backed contact repository.
func NewContactRepo(db *sql.DB) *ContactRepo { return &ContactRepo{db: db} }

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanContact(row rowScanner) (*domain.Contact, error) {
	var (
		c                    domain.Contact
		lastContacted, lastI sql.NullTime
	)
	if err := row.Scan(
		&c.ID, &c.Name, &c.Email, &c.Company, &c.Position, &c.Industry, &c.LinkedInURL, &c.Phone, &c.Notes,
		&c.Status, &c.Priority, &c.LeadScore, &c.RelationshipStrength, pq.Array(&c.Tags),
		&c.CreatedAt, &c.UpdatedAt, &lastContacted, &lastI,
	); err != nil {
		return nil, err
	}
	c.Tags = emptyIfNil(c.Tags)
	if lastContacted.Valid {
		t := lastContacted.Time
		c.LastContacted = &t
	}
	if lastI.Valid {
		t := lastI.Time
		c.LastInteraction = &t
	}
	return &c, nil
}

func (r *ContactRepo) Get(ctx context.Context, id string) (*domain.Contact, error) {
	c, err := scanContact(r.db.QueryRowContext(ctx,
		`SELECT `+contactColumns+` FROM contacts WHERE id = $1`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, contact.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get contact: %w", err)
	}
	return c, nil
}

func (r *ContactRepo) List(ctx context.Context, f contact.ListFilter) ([]domain.Contact, error) {
	q := `SELECT ` + contactColumns + ` FROM contacts WHERE 1=1`
	args := []interface{}{}
	idx := 1
	if f.Status != "" {
		q += fmt.Sprintf(" AND status = $%d", idx)
		args = append(args, f.Status)
		idx++
	}
	if f.Priority != "" {
		q += fmt.Sprintf(" AND priority = $%d", idx)
		args = append(args, f.Priority)
		idx++
	}
	q += fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d", idx)
	args = append(args, f.Limit)

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("list contacts: %w", err)
	}
	defer rows.Close()

	out := []domain.Contact{}
	for rows.Next() {
		c, err := scanContact(rows)
		if err != nil {
			return nil, fmt.Errorf("scan contact: %w", err)
		}
		out = append(out, *c)
	}
	return out, rows.Err()
}

func (r *ContactRepo) Create(ctx context.Context, c *domain.Contact) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO contacts
			(id, name, email, company, position, industry, linkedin_url, phone, notes,
			 status, priority, lead_score, relationship_strength, tags,
			 created_at, updated_at, last_contacted, last_interaction)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)
	`, c.ID, c.Name, c.Email, c.Company, c.Position, c.Industry, c.LinkedInURL, c.Phone, c.Notes,
		c.Status, c.Priority, c.LeadScore, c.RelationshipStrength, pq.Array(emptyIfNil(c.Tags)),
		c.CreatedAt, c.UpdatedAt, c.LastContacted, c.LastInteraction)
	if err != nil {
		return fmt.Errorf("create contact: %w", err)
	}
	return nil
}

func (r *ContactRepo) Update(ctx context.Context, id string, u contact.UpdateFields, updatedAt time.Time) error {
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
	if u.Email != nil {
		add("email", *u.Email)
	}
	if u.Company != nil {
		add("company", *u.Company)
	}
	if u.Position != nil {
		add("position", *u.Position)
	}
	if u.Industry != nil {
		add("industry", *u.Industry)
	}
	if u.LinkedInURL != nil {
		add("linkedin_url", *u.LinkedInURL)
	}
	if u.Phone != nil {
		add("phone", *u.Phone)
	}
	if u.Notes != nil {
		add("notes", *u.Notes)
	}
	if u.Status != nil {
		add("status", *u.Status)
	}
	if u.Priority != nil {
		add("priority", *u.Priority)
	}
	if u.Tags != nil {
		add("tags", pq.Array(emptyIfNil(*u.Tags)))
	}
	add("updated_at", updatedAt)

	q := fmt.Sprintf("UPDATE contacts SET %s WHERE id = $%d", joinComma(sets), idx)
	args = append(args, id)

	res, err := r.db.ExecContext(ctx, q, args...)
	if err != nil {
		return fmt.Errorf("update contact: %w", err)
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return contact.ErrNotFound
	}
	return nil
}

func (r *ContactRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM contacts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete contact: %w", err)
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return contact.ErrNotFound
	}
	return nil
}

func (r *ContactRepo) TouchInteraction(ctx context.Context, id string, at time.Time) (bool, error) {
	res, err := r.db.ExecContext(ctx,
		`UPDATE contacts SET last_interaction = $1 WHERE id = $2`, at, id)
	if err != nil {
		return false, fmt.Errorf("touch interaction: %w", err)
	}
	n, _ := res.RowsAffected()
	return n > 0, nil
}

func (r *ContactRepo) SetRelationshipStrength(ctx context.Context, id string, strength int, at time.Time) (bool, error) {
	res, err := r.db.ExecContext(ctx,
		`UPDATE contacts SET relationship_strength = $1, updated_at = $2 WHERE id = $3`, strength, at, id)
	if err != nil {
		return false, fmt.Errorf("set relationship strength: %w", err)
	}
	n, _ := res.RowsAffected()
	return n > 0, nil
}
