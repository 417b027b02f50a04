package api

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/ignite/networking-ai/internal/domain"
	"github.com/ignite/networking-ai/internal/pkg/httputil"
	"github.com/ignite/networking-ai/internal/service/contact"
)

// CreateContact handles POST /api/contacts
func (h *Handlers) CreateContact(w http.ResponseWriter, r *http.Request) {
	var in contact.CreateInput
	if !httputil.Decode(w, r, &in) {
		return
	}
	c, err := h.contacts.Create(r.Context(), in)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	httputil.OK(w, c)
}

// ListContacts handles GET /api/contacts?status=&priority=&limit=
func (h *Handlers) ListContacts(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	f := contact.ListFilter{
		Status:   domain.ContactStatus(q.Get("status")),
		Priority: domain.Priority(q.Get("priority")),
	}
	if raw := q.Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			httputil.Unprocessable(w, "limit must be a positive integer")
			return
		}
		f.Limit = n
	}

	list, err := h.contacts.List(r.Context(), f)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	httputil.OK(w, list)
}

// GetContact handles GET /api/contacts/{id}
func (h *Handlers) GetContact(w http.ResponseWriter, r *http.Request) {
	c, err := h.contacts.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondServiceError(w, err)
		return
	}
	httputil.OK(w, c)
}

// UpdateContact handles PUT /api/contacts/{id}. Only fields present in the
// body are changed.
func (h *Handlers) UpdateContact(w http.ResponseWriter, r *http.Request) {
	var u contact.UpdateFields
	if !httputil.Decode(w, r, &u) {
		return
	}
	c, err := h.contacts.Update(r.Context(), chi.URLParam(r, "id"), u)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	httputil.OK(w, c)
}

// DeleteContact handles DELETE /api/contacts/{id}
func (h *Handlers) DeleteContact(w http.ResponseWriter, r *http.Request) {
	if err := h.contacts.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		respondServiceError(w, err)
		return
	}
	httputil.OK(w, map[string]string{"message": "Contact deleted successfully"})
}
