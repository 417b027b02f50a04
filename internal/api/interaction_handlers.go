package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ignite/networking-ai/internal/pkg/httputil"
	"github.com/ignite/networking-ai/internal/service/interaction"
)

// CreateInteraction handles POST /api/interactions. The contact does not
// have to exist.
func (h *Handlers) CreateInteraction(w http.ResponseWriter, r *http.Request) {
	var in interaction.CreateInput
	if !httputil.Decode(w, r, &in) {
		return
	}
	l, err := h.interactions.Create(r.Context(), in)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	httputil.OK(w, l)
}

// ListInteractions handles GET /api/interactions/{contact_id}
func (h *Handlers) ListInteractions(w http.ResponseWriter, r *http.Request) {
	list, err := h.interactions.ListByContact(r.Context(), chi.URLParam(r, "contact_id"))
	if err != nil {
		respondServiceError(w, err)
		return
	}
	httputil.OK(w, list)
}
