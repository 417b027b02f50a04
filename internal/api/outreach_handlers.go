package api

import (
	"net/http"

	"github.com/ignite/networking-ai/internal/pkg/httputil"
	"github.com/ignite/networking-ai/internal/service/outreach"
)

// Analytics handles GET /api/analytics
func (h *Handlers) Analytics(w http.ResponseWriter, r *http.Request) {
	report, err := h.analytics.Report(r.Context())
	if err != nil {
		respondServiceError(w, err)
		return
	}
	httputil.OK(w, report)
}

// GenerateEmail handles POST /api/generate-email. Model failures still
// answer 200 with a degraded draft.
func (h *Handlers) GenerateEmail(w http.ResponseWriter, r *http.Request) {
	var req outreach.Request
	if !httputil.Decode(w, r, &req) {
		return
	}
	draft, err := h.drafter.Generate(r.Context(), req)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	httputil.OK(w, draft)
}

// DiscoverContacts handles POST /api/discover-contacts
func (h *Handlers) DiscoverContacts(w http.ResponseWriter, r *http.Request) {
	var criteria map[string]interface{}
	if !httputil.Decode(w, r, &criteria) {
		return
	}
	httputil.OK(w, outreach.Discover(criteria))
}
