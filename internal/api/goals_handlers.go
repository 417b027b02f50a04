package api

import (
	"net/http"

	"github.com/ignite/networking-ai/internal/pkg/httputil"
	"github.com/ignite/networking-ai/internal/service/goals"
)

// CreateGoals handles POST /api/networking-goals
func (h *Handlers) CreateGoals(w http.ResponseWriter, r *http.Request) {
	var in goals.CreateInput
	if !httputil.Decode(w, r, &in) {
		return
	}
	g, err := h.goals.Create(r.Context(), in)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	httputil.OK(w, g)
}

// ListGoals handles GET /api/networking-goals?user_id=
func (h *Handlers) ListGoals(w http.ResponseWriter, r *http.Request) {
	list, err := h.goals.List(r.Context(), r.URL.Query().Get("user_id"))
	if err != nil {
		respondServiceError(w, err)
		return
	}
	httputil.OK(w, list)
}
