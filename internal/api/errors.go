package api

import (
	"errors"
	"net/http"

	"github.com/ignite/networking-ai/internal/pkg/httputil"
	"github.com/ignite/networking-ai/internal/service/campaign"
	"github.com/ignite/networking-ai/internal/service/contact"
	"github.com/ignite/networking-ai/internal/service/goals"
	"github.com/ignite/networking-ai/internal/service/interaction"
	"github.com/ignite/networking-ai/internal/service/outreach"
	"github.com/ignite/networking-ai/internal/service/template"
)

var notFound = []struct {
	err error
	msg string
}{
	{contact.ErrNotFound, "Contact not found"},
	{campaign.ErrNotFound, "Campaign not found"},
	{template.ErrNotFound, "Template not found"},
}

var validation = []error{
	contact.ErrValidation,
	campaign.ErrValidation,
	template.ErrValidation,
	goals.ErrValidation,
	interaction.ErrValidation,
	outreach.ErrValidation,
}

// respondServiceError maps service sentinels to HTTP responses. Anything
// unrecognized is a 500 whose details only reach the log.
func respondServiceError(w http.ResponseWriter, err error) {
	for _, nf := range notFound {
		if errors.Is(err, nf.err) {
			httputil.NotFound(w, nf.msg)
			return
		}
	}
	for _, v := range validation {
		if errors.Is(err, v) {
			httputil.Unprocessable(w, err.Error())
			return
		}
	}
	if errors.Is(err, outreach.ErrNotConfigured) {
		httputil.BadRequest(w, outreach.NotConfiguredMessage)
		return
	}
	httputil.InternalError(w, err)
}

func respondNotFoundRoute(w http.ResponseWriter) {
	httputil.NotFound(w, "Not Found")
}
