package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ignite/networking-ai/internal/config"
	"github.com/ignite/networking-ai/internal/domain"
	"github.com/ignite/networking-ai/internal/llm"
	"github.com/ignite/networking-ai/internal/repository/memory"
	"github.com/ignite/networking-ai/internal/service/analytics"
	"github.com/ignite/networking-ai/internal/service/campaign"
	"github.com/ignite/networking-ai/internal/service/contact"
	"github.com/ignite/networking-ai/internal/service/goals"
	"github.com/ignite/networking-ai/internal/service/interaction"
	"github.com/ignite/networking-ai/internal/service/outreach"
	"github.com/ignite/networking-ai/internal/service/template"
)

type fakeLLM struct {
	reply string
	err   error
}

func (f fakeLLM) Chat(context.Context, string, string) (string, error) { return f.reply, f.err }

func newTestServer(t *testing.T, model llm.Client) http.Handler {
	t.Helper()
	store := memory.NewStore()
	goalsSvc := goals.NewService(store.Goals())
	h := NewHandlers(Services{
		Contacts:     contact.NewService(store.Contacts()),
		Campaigns:    campaign.NewService(store.Campaigns()),
		Templates:    template.NewService(store.Templates(), store.Contacts()),
		Interactions: interaction.NewService(store.Interactions(), store.Contacts(), nil),
		Goals:        goalsSvc,
		Analytics:    analytics.NewService(store.Analytics()),
		Drafter:      outreach.NewDrafter(model, store.Contacts(), goalsSvc),
	})
	return NewServer(config.ServerConfig{}, h, NewHealthChecker(nil, nil)).Handler()
}

func do(t *testing.T, h http.Handler, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if s, ok := body.(string); ok {
			buf.WriteString(s)
		} else {
			require.NoError(t, json.NewEncoder(&buf).Encode(body))
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}

func createContact(t *testing.T, h http.Handler, body map[string]interface{}) domain.Contact {
	t.Helper()
	rec := do(t, h, http.MethodPost, "/api/contacts", body)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	return decode[domain.Contact](t, rec)
}

func TestRoot(t *testing.T) {
	rec := do(t, newTestServer(t, nil), http.MethodGet, "/api/", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "NetworkingAI API is running", decode[map[string]string](t, rec)["message"])
}

func TestCreateFullContact(t *testing.T) {
	h := newTestServer(t, nil)
	c := createContact(t, h, map[string]interface{}{
		"name": "Alice Doe", "email": "alice@example.com", "company": "Acme", "position": "CTO",
		"industry": "Software", "linkedin_url": "https://linkedin.com/in/alice", "phone": "555-0100",
	})

	assert.Equal(t, 100, c.LeadScore)
	assert.Equal(t, domain.ContactNew, c.Status)
	assert.Equal(t, domain.PriorityMedium, c.Priority)

	rec := do(t, h, http.MethodGet, "/api/contacts/"+c.ID, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Alice Doe", decode[domain.Contact](t, rec).Name)
}

func TestCreateContactValidation(t *testing.T) {
	h := newTestServer(t, nil)

	rec := do(t, h, http.MethodPost, "/api/contacts", map[string]string{"name": "No Email"})
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, "validation_error", decode[map[string]string](t, rec)["code"])

	rec = do(t, h, http.MethodPost, "/api/contacts", "{not json")
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	rec = do(t, h, http.MethodPost, "/api/contacts", map[string]string{"name": "A", "email": "a@example.com", "priority": "urgent"})
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestListContactsQuery(t *testing.T) {
	h := newTestServer(t, nil)
	createContact(t, h, map[string]interface{}{"name": "A", "email": "a@example.com", "priority": "high"})
	createContact(t, h, map[string]interface{}{"name": "B", "email": "b@example.com"})

	rec := do(t, h, http.MethodGet, "/api/contacts?priority=high", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	list := decode[[]domain.Contact](t, rec)
	require.Len(t, list, 1)
	assert.Equal(t, "A", list[0].Name)

	rec = do(t, h, http.MethodGet, "/api/contacts?limit=abc", nil)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	rec = do(t, h, http.MethodGet, "/api/contacts?status=archived", nil)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	rec = do(t, newTestServer(t, nil), http.MethodGet, "/api/contacts", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "[]", strings.TrimSpace(rec.Body.String()))
}

func TestUpdateContactPartial(t *testing.T) {
	h := newTestServer(t, nil)
	c := createContact(t, h, map[string]interface{}{"name": "A", "email": "a@example.com", "company": "Acme"})

	rec := do(t, h, http.MethodPut, "/api/contacts/"+c.ID, map[string]string{"status": "responded"})
	require.Equal(t, http.StatusOK, rec.Code)
	got := decode[domain.Contact](t, rec)

	assert.Equal(t, domain.ContactResponded, got.Status)
	assert.Equal(t, "Acme", got.Company)
	assert.Equal(t, "a@example.com", got.Email)

	rec = do(t, h, http.MethodPut, "/api/contacts/missing", map[string]string{"name": "x"})
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Contact not found", decode[map[string]string](t, rec)["error"])
}

func TestDeleteContact(t *testing.T) {
	h := newTestServer(t, nil)
	c := createContact(t, h, map[string]interface{}{"name": "A", "email": "a@example.com"})

	rec := do(t, h, http.MethodDelete, "/api/contacts/"+c.ID, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Contact deleted successfully", decode[map[string]string](t, rec)["message"])

	assert.Equal(t, http.StatusNotFound, do(t, h, http.MethodGet, "/api/contacts/"+c.ID, nil).Code)
	assert.Equal(t, http.StatusNotFound, do(t, h, http.MethodDelete, "/api/contacts/"+c.ID, nil).Code)
}

func TestGenerateEmailWithoutCredential(t *testing.T) {
	h := newTestServer(t, nil)
	c := createContact(t, h, map[string]interface{}{"name": "A", "email": "a@example.com"})

	rec := do(t, h, http.MethodPost, "/api/generate-email", map[string]string{"contact_id": c.ID, "email_type": "introduction"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, decode[map[string]string](t, rec)["error"], "not configured")
}

func TestGenerateEmail(t *testing.T) {
	h := newTestServer(t, fakeLLM{reply: `{"subject":"Hi","body":"Hello A","personalization_notes":["n"]}`})
	c := createContact(t, h, map[string]interface{}{"name": "A", "email": "a@example.com"})

	rec := do(t, h, http.MethodPost, "/api/generate-email", map[string]string{"contact_id": c.ID, "email_type": "introduction"})
	require.Equal(t, http.StatusOK, rec.Code)
	draft := decode[outreach.Draft](t, rec)
	assert.Equal(t, "Hi", draft.Subject)
	assert.Equal(t, outreach.SourceAI, draft.Source)
	assert.False(t, draft.Degraded)

	rec = do(t, h, http.MethodPost, "/api/generate-email", map[string]string{"contact_id": "missing", "email_type": "introduction"})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGenerateEmailDegraded(t *testing.T) {
	h := newTestServer(t, fakeLLM{err: errors.New("upstream 503")})
	c := createContact(t, h, map[string]interface{}{"name": "A", "email": "a@example.com"})

	rec := do(t, h, http.MethodPost, "/api/generate-email", map[string]string{"contact_id": c.ID, "email_type": "follow_up"})
	require.Equal(t, http.StatusOK, rec.Code)
	draft := decode[outreach.Draft](t, rec)
	assert.True(t, draft.Degraded)
	assert.Equal(t, "Re: Follow Up", draft.Subject)
}

func TestInteractionForUnknownContact(t *testing.T) {
	h := newTestServer(t, nil)

	rec := do(t, h, http.MethodPost, "/api/interactions", map[string]string{"contact_id": "ghost", "type": "email"})
	require.Equal(t, http.StatusOK, rec.Code)
	l := decode[domain.InteractionLog](t, rec)
	assert.Equal(t, "completed", l.Status)

	rec = do(t, h, http.MethodGet, "/api/interactions/ghost", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode[[]domain.InteractionLog](t, rec), 1)
}

func TestInteractionRaisesRelationshipStrength(t *testing.T) {
	h := newTestServer(t, nil)
	c := createContact(t, h, map[string]interface{}{"name": "A", "email": "a@example.com"})

	for i := 0; i < 2; i++ {
		require.Equal(t, http.StatusOK, do(t, h, http.MethodPost, "/api/interactions", map[string]string{"contact_id": c.ID, "type": "call"}).Code)
	}
	got := decode[domain.Contact](t, do(t, h, http.MethodGet, "/api/contacts/"+c.ID, nil))
	assert.Equal(t, 30, got.RelationshipStrength)
	assert.NotNil(t, got.LastInteraction)
}

func TestCampaignLifecycle(t *testing.T) {
	h := newTestServer(t, nil)

	rec := do(t, h, http.MethodPost, "/api/campaigns", map[string]interface{}{"name": "Q3", "contact_ids": []string{"c1"}})
	require.Equal(t, http.StatusOK, rec.Code)
	k := decode[domain.Campaign](t, rec)
	assert.Equal(t, domain.CampaignDraft, k.Status)

	rec = do(t, h, http.MethodPut, "/api/campaigns/"+k.ID, map[string]interface{}{"status": "active", "sent_count": 10})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 10, decode[domain.Campaign](t, rec).SentCount)

	rec = do(t, h, http.MethodPut, "/api/campaigns/"+k.ID, map[string]interface{}{"sent_count": -1})
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	rec = do(t, h, http.MethodGet, "/api/campaigns/missing", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Campaign not found", decode[map[string]string](t, rec)["error"])

	rec = do(t, h, http.MethodGet, "/api/campaigns?status=active", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode[[]domain.Campaign](t, rec), 1)
}

func TestCampaignTemplateCleared(t *testing.T) {
	h := newTestServer(t, nil)
	rec := do(t, h, http.MethodPost, "/api/campaigns", map[string]interface{}{"name": "Q3", "template_id": "t1"})
	require.Equal(t, http.StatusOK, rec.Code)
	k := decode[domain.Campaign](t, rec)
	require.NotNil(t, k.TemplateID)

	rec = do(t, h, http.MethodPut, "/api/campaigns/"+k.ID, `{"template_id":null}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Nil(t, decode[domain.Campaign](t, rec).TemplateID)
}

func TestTemplates(t *testing.T) {
	h := newTestServer(t, nil)
	c := createContact(t, h, map[string]interface{}{"name": "Alice Doe", "email": "a@example.com"})

	rec := do(t, h, http.MethodPost, "/api/email-templates", map[string]string{
		"name": "Intro", "subject": "Hi {{ contact.first_name }}", "body": "Hello {{ contact.name }}", "type": "introduction",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	tpl := decode[domain.EmailTemplate](t, rec)

	rec = do(t, h, http.MethodPost, "/api/email-templates/"+tpl.ID+"/render", map[string]string{"contact_id": c.ID})
	require.Equal(t, http.StatusOK, rec.Code)
	out := decode[map[string]string](t, rec)
	assert.Equal(t, "Hi Alice", out["subject"])
	assert.Equal(t, "Hello Alice Doe", out["body"])

	rec = do(t, h, http.MethodPost, "/api/email-templates/missing/render", map[string]string{"contact_id": c.ID})
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Template not found", decode[map[string]string](t, rec)["error"])

	rec = do(t, h, http.MethodGet, "/api/email-templates", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode[[]domain.EmailTemplate](t, rec), 1)
}

func TestNetworkingGoals(t *testing.T) {
	h := newTestServer(t, nil)

	rec := do(t, h, http.MethodPost, "/api/networking-goals", map[string]interface{}{"industry": "Fintech", "role": "Founder"})
	require.Equal(t, http.StatusOK, rec.Code)
	g := decode[domain.NetworkingGoals](t, rec)
	assert.Equal(t, "default_user", g.UserID)
	assert.Equal(t, 10, g.TargetContactsPerMonth)

	rec = do(t, h, http.MethodGet, "/api/networking-goals", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode[[]domain.NetworkingGoals](t, rec), 1)

	rec = do(t, h, http.MethodGet, "/api/networking-goals?user_id=someone", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, decode[[]domain.NetworkingGoals](t, rec))

	rec = do(t, h, http.MethodPost, "/api/networking-goals", map[string]interface{}{"role": "Founder"})
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestAnalyticsEmpty(t *testing.T) {
	rec := do(t, newTestServer(t, nil), http.MethodGet, "/api/analytics", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	r := decode[domain.AnalyticsReport](t, rec)
	assert.Zero(t, r.EmailPerformance.ResponseRate)
	assert.Zero(t, r.EmailPerformance.ConversionRate)
	assert.Len(t, r.ContactsByStatus, 4)
}

func TestDiscoverContacts(t *testing.T) {
	rec := do(t, newTestServer(t, nil), http.MethodPost, "/api/discover-contacts", map[string]string{"industry": "Healthcare"})
	require.Equal(t, http.StatusOK, rec.Code)
	res := decode[outreach.DiscoveryResult](t, rec)
	assert.Equal(t, 2, res.TotalFound)
	assert.Equal(t, "Healthcare", res.DiscoveredContacts[0].Industry)
	assert.Equal(t, "Healthcare", res.CriteriaUsed["industry"])
}

func TestCORSPreflight(t *testing.T) {
	h := newTestServer(t, nil)
	req := httptest.NewRequest(http.MethodOptions, "/api/contacts", nil)
	req.Header.Set("Origin", "http://example.com")
	req.Header.Set("Access-Control-Request-Method", "POST")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestHealth(t *testing.T) {
	h := newTestServer(t, nil)

	rec := do(t, h, http.MethodGet, "/health", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	status := decode[HealthStatus](t, rec)
	assert.Equal(t, "healthy", status.Status)
	assert.Equal(t, "disabled", status.Checks["redis"].Status)

	assert.Equal(t, http.StatusOK, do(t, h, http.MethodGet, "/health/live", nil).Code)
	assert.Equal(t, http.StatusOK, do(t, h, http.MethodGet, "/health/ready", nil).Code)
}

func TestHealthWithRedis(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	hc := NewHealthChecker(nil, client)
	checks := hc.runAllChecks(context.Background())
	assert.Equal(t, "up", checks["redis"].Status)
	assert.Equal(t, "healthy", determineOverallStatus(checks))

	mr.Close()
	checks = hc.runAllChecks(context.Background())
	assert.Equal(t, "down", checks["redis"].Status)
	assert.Equal(t, "degraded", determineOverallStatus(checks))
}

func TestDetermineOverallStatus(t *testing.T) {
	assert.Equal(t, "unhealthy", determineOverallStatus(map[string]ComponentCheck{"database": {Status: "down"}}))
	assert.Equal(t, "healthy", determineOverallStatus(map[string]ComponentCheck{
		"database": {Status: "up"}, "redis": {Status: "disabled"},
	}))
}

func TestServerAddr(t *testing.T) {
	t.Setenv("SERVER_HOST", "")
	t.Setenv("ECS_CONTAINER_METADATA_URI", "")
	t.Setenv("KUBERNETES_SERVICE_HOST", "")

	s := NewServer(config.ServerConfig{Host: "127.0.0.1", Port: 8123}, NewHandlers(Services{}), nil)
	assert.Equal(t, "127.0.0.1:8123", s.Addr())
}
