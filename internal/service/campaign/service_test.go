package campaign_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ignite/networking-ai/internal/domain"
	"github.com/ignite/networking-ai/internal/repository/memory"
	"github.com/ignite/networking-ai/internal/service/campaign"
)

func newService() *campaign.Service {
	return campaign.NewService(memory.NewStore().Campaigns())
}

func TestCreateDefaults(t *testing.T) {
	c, err := newService().Create(context.Background(), campaign.CreateInput{Name: "Spring outreach"})
	require.NoError(t, err)

	assert.NotEmpty(t, c.ID)
	assert.Equal(t, domain.CampaignDraft, c.Status)
	assert.Equal(t, []string{}, c.ContactIDs)
	assert.Zero(t, c.SentCount)
	assert.Zero(t, c.ResponseCount)
	assert.Zero(t, c.ConversionCount)
	assert.Nil(t, c.TemplateID)
}

func TestCreateRequiresName(t *testing.T) {
	_, err := newService().Create(context.Background(), campaign.CreateInput{Name: "  "})
	assert.ErrorIs(t, err, campaign.ErrValidation)
}

func TestUpdate(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	svc := newService().WithClock(func() time.Time { return now })

	c, err := svc.Create(ctx, campaign.CreateInput{Name: "Q3", Description: "partners"})
	require.NoError(t, err)

	status := domain.CampaignCompleted
	sent, responses := 40, 8
	ids := []string{"c1", "c2"}
	got, err := svc.Update(ctx, c.ID, campaign.UpdateFields{
		Status: &status, SentCount: &sent, ResponseCount: &responses, ContactIDs: &ids,
	})
	require.NoError(t, err)

	assert.Equal(t, domain.CampaignCompleted, got.Status)
	assert.Equal(t, 40, got.SentCount)
	assert.Equal(t, 8, got.ResponseCount)
	assert.Equal(t, ids, got.ContactIDs)
	assert.Equal(t, "partners", got.Description)
	assert.True(t, got.UpdatedAt.After(c.UpdatedAt))
}

func TestUpdateFieldsNullClears(t *testing.T) {
	var u campaign.UpdateFields
	require.NoError(t, json.Unmarshal([]byte(`{"template_id":null,"name":"Q4"}`), &u))
	assert.True(t, u.ClearTemplateID)
	assert.False(t, u.ClearScheduledAt)
	assert.Nil(t, u.TemplateID)
	require.NotNil(t, u.Name)
	assert.Equal(t, "Q4", *u.Name)

	var omitted campaign.UpdateFields
	require.NoError(t, json.Unmarshal([]byte(`{"name":"Q4"}`), &omitted))
	assert.False(t, omitted.ClearTemplateID)
}

func TestUpdateClearsTemplate(t *testing.T) {
	ctx := context.Background()
	svc := newService()
	tpl := "t1"
	at := time.Date(2024, 7, 1, 9, 0, 0, 0, time.UTC)
	c, err := svc.Create(ctx, campaign.CreateInput{Name: "Q3", TemplateID: &tpl, ScheduledAt: &at})
	require.NoError(t, err)
	require.NotNil(t, c.TemplateID)

	got, err := svc.Update(ctx, c.ID, campaign.UpdateFields{ClearTemplateID: true})
	require.NoError(t, err)
	assert.Nil(t, got.TemplateID)
	assert.NotNil(t, got.ScheduledAt)

	got, err = svc.Update(ctx, c.ID, campaign.UpdateFields{ClearScheduledAt: true})
	require.NoError(t, err)
	assert.Nil(t, got.ScheduledAt)
}

func TestUpdateRejectsNegativeCounters(t *testing.T) {
	ctx := context.Background()
	svc := newService()
	c, err := svc.Create(ctx, campaign.CreateInput{Name: "Q3"})
	require.NoError(t, err)

	neg := -1
	_, err = svc.Update(ctx, c.ID, campaign.UpdateFields{ConversionCount: &neg})
	assert.ErrorIs(t, err, campaign.ErrValidation)

	bad := domain.CampaignStatus("archived")
	_, err = svc.Update(ctx, c.ID, campaign.UpdateFields{Status: &bad})
	assert.ErrorIs(t, err, campaign.ErrValidation)
}

func TestUpdateNotFound(t *testing.T) {
	name := "x"
	_, err := newService().Update(context.Background(), "missing", campaign.UpdateFields{Name: &name})
	assert.ErrorIs(t, err, campaign.ErrNotFound)
}

func TestListStatusFilter(t *testing.T) {
	ctx := context.Background()
	svc := newService()
	a, err := svc.Create(ctx, campaign.CreateInput{Name: "A"})
	require.NoError(t, err)
	_, err = svc.Create(ctx, campaign.CreateInput{Name: "B"})
	require.NoError(t, err)

	active := domain.CampaignActive
	_, err = svc.Update(ctx, a.ID, campaign.UpdateFields{Status: &active})
	require.NoError(t, err)

	out, err := svc.List(ctx, campaign.ListFilter{Status: domain.CampaignActive})
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, a.ID, out[0].ID)

	_, err = svc.List(ctx, campaign.ListFilter{Status: "nope"})
	assert.ErrorIs(t, err, campaign.ErrValidation)
}
