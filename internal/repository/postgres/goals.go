package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/lib/pq"

	"github.com/ignite/networking-ai/internal/domain"
)

// GoalsRepo implements goals.Repository against PostgreSQL.
type GoalsRepo struct{ db *sql.DB }

// NewGoalsRepo creates a Postgres-backed networking goals repository.
func NewGoalsRepo(db *sql.DB) *GoalsRepo { return &GoalsRepo{db: db} }

func (r *GoalsRepo) Create(ctx context.Context, g *domain.NetworkingGoals) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO networking_goals
			(id, user_id, industry, role, company_size, networking_objectives,
			 target_contacts_per_month, preferred_communication_style,
			 pain_points, success_metrics, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`, g.ID, g.UserID, g.Industry, g.Role, g.CompanySize, pq.Array(emptyIfNil(g.NetworkingObjectives)),
		g.TargetContactsPerMonth, g.PreferredCommunicationStyle,
		pq.Array(emptyIfNil(g.PainPoints)), pq.Array(emptyIfNil(g.SuccessMetrics)), g.CreatedAt, g.UpdatedAt)
	if err != nil {
		return fmt.Errorf("create goals: %w", err)
	}
	return nil
}

func (r *GoalsRepo) ListByUser(ctx context.Context, userID string, limit int) ([]domain.NetworkingGoals, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, user_id, industry, role, company_size, networking_objectives,
		       target_contacts_per_month, preferred_communication_style,
		       pain_points, success_metrics, created_at, updated_at
		FROM networking_goals WHERE user_id = $1
		ORDER BY created_at LIMIT $2
	`, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("list goals: %w", err)
	}
	defer rows.Close()

	out := []domain.NetworkingGoals{}
	for rows.Next() {
		var g domain.NetworkingGoals
		if err := rows.Scan(
			&g.ID, &g.UserID, &g.Industry, &g.Role, &g.CompanySize, pq.Array(&g.NetworkingObjectives),
			&g.TargetContactsPerMonth, &g.PreferredCommunicationStyle,
			pq.Array(&g.PainPoints), pq.Array(&g.SuccessMetrics), &g.CreatedAt, &g.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan goals: %w", err)
		}
		g.NetworkingObjectives = emptyIfNil(g.NetworkingObjectives)
		g.PainPoints = emptyIfNil(g.PainPoints)
		g.SuccessMetrics = emptyIfNil(g.SuccessMetrics)
		out = append(out, g)
	}
	return out, rows.Err()
}
