package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/ignite/networking-ai/internal/domain"
)

// InteractionRepo implements interaction.Repository against PostgreSQL.
type InteractionRepo struct{ db *sql.DB }

// NewInteractionRepo creates a Postgres-backed interaction log repository.
func NewInteractionRepo(db *sql.DB) *InteractionRepo { return &InteractionRepo{db: db} }

func (r *InteractionRepo) Create(ctx context.Context, l *domain.InteractionLog) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO interaction_logs (id, contact_id, type, subject, content, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, l.ID, l.ContactID, l.Type, l.Subject, l.Content, l.Status, l.CreatedAt)
	if err != nil {
		return fmt.Errorf("create interaction: %w", err)
	}
	return nil
}

func (r *InteractionRepo) ListByContact(ctx context.Context, contactID string, limit int) ([]domain.InteractionLog, error) {
	q := `
		SELECT id, contact_id, type, subject, content, status, created_at
		FROM interaction_logs WHERE contact_id = $1 ORDER BY created_at`
	args := []interface{}{contactID}
	if limit > 0 {
		q += " LIMIT $2"
		args = append(args, limit)
	}

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("list interactions: %w", err)
	}
	defer rows.Close()

	out := []domain.InteractionLog{}
	for rows.Next() {
		var l domain.InteractionLog
		if err := rows.Scan(&l.ID, &l.ContactID, &l.Type, &l.Subject, &l.Content, &l.Status, &l.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan interaction: %w", err)
		}
		out = append(out, l)
	}
	return out, rows.Err()
}
