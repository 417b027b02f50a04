// Package api exposes the networking assistant over HTTP. Every resource
// lives under /api and speaks JSON; health probes sit at the root.
package api

import (
	"net/http"

	"github.com/ignite/networking-ai/internal/pkg/httputil"
	"github.com/ignite/networking-ai/internal/service/analytics"
	"github.com/ignite/networking-ai/internal/service/campaign"
	"github.com/ignite/networking-ai/internal/service/contact"
	"github.com/ignite/networking-ai/internal/service/goals"
	"github.com/ignite/networking-ai/internal/service/interaction"
	"github.com/ignite/networking-ai/internal/service/outreach"
	"github.com/ignite/networking-ai/internal/service/template"
)

// Services bundles the business services the handlers call.
type Services struct {
	Contacts     *contact.Service
	Campaigns    *campaign.Service
	Templates    *template.Service
	Interactions *interaction.Service
	Goals        *goals.Service
	Analytics    *analytics.Service
	Drafter      *outreach.Drafter
}

// Handlers contains all HTTP handlers
type Handlers struct {
	contacts     *contact.Service
	campaigns    *campaign.Service
	templates    *template.Service
	interactions *interaction.Service
	goals        *goals.Service
	analytics    *analytics.Service
	drafter      *outreach.Drafter
}

// NewHandlers creates a new Handlers instance
func NewHandlers(s Services) *Handlers {
	return &Handlers{
		contacts:     s.Contacts,
		campaigns:    s.Campaigns,
		templates:    s.Templates,
		interactions: s.Interactions,
		goals:        s.Goals,
		analytics:    s.Analytics,
		drafter:      s.Drafter,
	}
}

// Root answers GET /api/.
func (h *Handlers) Root(w http.ResponseWriter, r *http.Request) {
	httputil.OK(w, map[string]string{"message": "NetworkingAI API is running"})
}
