package contact_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ignite/networking-ai/internal/domain"
	"github.com/ignite/networking-ai/internal/repository/memory"
	"github.com/ignite/networking-ai/internal/service/contact"
)

func newService(now time.Time) *contact.Service {
	return contact.NewService(memory.NewStore().Contacts()).WithClock(func() time.Time { return now })
}

func strPtr(s string) *string { return &s }

func TestCreateFullProfileScoresHundred(t *testing.T) {
	svc := newService(time.Now())

	c, err := svc.Create(context.Background(), contact.CreateInput{
		Name:        "Alice Doe",
		Email:       "alice@example.com",
		Company:     "Acme",
		Position:    "CTO",
		Industry:    "Software",
		LinkedInURL: "https://linkedin.com/in/alice",
		Phone:       "+1 555 0100",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, c.ID)
	assert.Equal(t, 100, c.LeadScore)
	assert.Equal(t, 0, c.RelationshipStrength)
	assert.Equal(t, domain.ContactNew, c.Status)
	assert.Equal(t, domain.PriorityMedium, c.Priority)
	assert.Equal(t, []string{}, c.Tags)
	assert.Equal(t, c.CreatedAt, c.UpdatedAt)
}

func TestCreateMinimalScoresFifty(t *testing.T) {
	svc := newService(time.Now())

	c, err := svc.Create(context.Background(), contact.CreateInput{
		Name: "Bob", Email: "bob@example.com", Company: "   ", Priority: domain.PriorityHigh,
	})
	require.NoError(t, err)
	assert.Equal(t, 50, c.LeadScore)
	assert.Equal(t, domain.PriorityHigh, c.Priority)
}

func TestCreateValidation(t *testing.T) {
	svc := newService(time.Now())
	ctx := context.Background()

	tests := []struct {
		name string
		in   contact.CreateInput
	}{
		{"missing name", contact.CreateInput{Email: "a@example.com"}},
		{"missing email", contact.CreateInput{Name: "A"}},
		{"bad priority", contact.CreateInput{Name: "A", Email: "a@example.com", Priority: "urgent"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(ctx, tt.in)
			assert.ErrorIs(t, err, contact.ErrValidation)
		})
	}
}

func TestUpdatePartialKeepsOmittedFields(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	svc := newService(now)

	c, err := svc.Create(ctx, contact.CreateInput{Name: "Alice", Email: "alice@example.com", Company: "Acme", Tags: []string{"vip"}})
	require.NoError(t, err)

	status := domain.ContactContacted
	updated, err := svc.Update(ctx, c.ID, contact.UpdateFields{Position: strPtr("VP"), Status: &status})
	require.NoError(t, err)

	assert.Equal(t, "VP", updated.Position)
	assert.Equal(t, domain.ContactContacted, updated.Status)
	assert.Equal(t, "Alice", updated.Name)
	assert.Equal(t, "alice@example.com", updated.Email)
	assert.Equal(t, "Acme", updated.Company)
	assert.Equal(t, []string{"vip"}, updated.Tags)
	assert.Equal(t, c.LeadScore, updated.LeadScore, "lead score is not recomputed")
	// Same clock reading, yet updated_at still moves forward.
	assert.True(t, updated.UpdatedAt.After(c.UpdatedAt))
}

func TestUpdateValidationAndNotFound(t *testing.T) {
	ctx := context.Background()
	svc := newService(time.Now())

	bad := domain.ContactStatus("archived")
	_, err := svc.Update(ctx, "x", contact.UpdateFields{Status: &bad})
	assert.ErrorIs(t, err, contact.ErrValidation)

	_, err = svc.Update(ctx, "x", contact.UpdateFields{Name: strPtr(" ")})
	assert.ErrorIs(t, err, contact.ErrValidation)

	_, err = svc.Update(ctx, "missing", contact.UpdateFields{Name: strPtr("A")})
	assert.ErrorIs(t, err, contact.ErrNotFound)
}

func TestDelete(t *testing.T) {
	ctx := context.Background()
	svc := newService(time.Now())

	assert.ErrorIs(t, svc.Delete(ctx, "missing"), contact.ErrNotFound)

	c, err := svc.Create(ctx, contact.CreateInput{Name: "A", Email: "a@example.com"})
	require.NoError(t, err)
	require.NoError(t, svc.Delete(ctx, c.ID))

	_, err = svc.Get(ctx, c.ID)
	assert.ErrorIs(t, err, contact.ErrNotFound)
	list, err := svc.List(ctx, contact.ListFilter{})
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestListLimits(t *testing.T) {
	ctx := context.Background()
	svc := newService(time.Now())
	for i := 0; i < 3; i++ {
		_, err := svc.Create(ctx, contact.CreateInput{Name: "A", Email: "a@example.com"})
		require.NoError(t, err)
	}

	_, err := svc.List(ctx, contact.ListFilter{Limit: -1})
	assert.ErrorIs(t, err, contact.ErrValidation)

	_, err = svc.List(ctx, contact.ListFilter{Status: "bogus"})
	assert.ErrorIs(t, err, contact.ErrValidation)

	out, err := svc.List(ctx, contact.ListFilter{Limit: 2})
	require.NoError(t, err)
	assert.Len(t, out, 2)

	out, err = svc.List(ctx, contact.ListFilter{Limit: 5000})
	require.NoError(t, err)
	assert.Len(t, out, 3)
}
