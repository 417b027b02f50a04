package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ignite/networking-ai/internal/pkg/httputil"
	"github.com/ignite/networking-ai/internal/service/template"
)

// CreateTemplate handles POST /api/email-templates
func (h *Handlers) CreateTemplate(w http.ResponseWriter, r *http.Request) {
	var in template.CreateInput
	if !httputil.Decode(w, r, &in) {
		return
	}
	t, err := h.templates.Create(r.Context(), in)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	httputil.OK(w, t)
}

// ListTemplates handles GET /api/email-templates
func (h *Handlers) ListTemplates(w http.ResponseWriter, r *http.Request) {
	list, err := h.templates.List(r.Context())
	if err != nil {
		respondServiceError(w, err)
		return
	}
	httputil.OK(w, list)
}

// RenderTemplate handles POST /api/email-templates/{id}/render
//
//	{"contact_id": "..."}
func (h *Handlers) RenderTemplate(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ContactID string `json:"contact_id"`
	}
	if !httputil.Decode(w, r, &req) {
		return
	}
	if req.ContactID == "" {
		httputil.Unprocessable(w, "contact_id is required")
		return
	}
	out, err := h.templates.Render(r.Context(), chi.URLParam(r, "id"), req.ContactID)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	httputil.OK(w, out)
}
