// Package llm talks to the chat model that drafts outreach emails. Two
// providers are supported: the OpenAI chat completions API over HTTP and
// Anthropic models hosted on AWS Bedrock.
package llm

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/ignite/networking-ai/internal/config"
	"github.com/ignite/networking-ai/internal/pkg/httpretry"
)

// ErrNotConfigured is returned by New when no credential is available: an
// empty or placeholder OpenAI key, or AWS credentials that cannot be
// retrieved for Bedrock.
var ErrNotConfigured = errors.New("llm: api key not configured")

// Client sends one system instruction plus one user prompt and returns the
// model's text reply.
type Client interface {
	Chat(ctx context.Context, system, prompt string) (string, error)
}

// New builds the client selected by cfg.Provider.
func New(ctx context.Context, cfg config.LLMConfig) (Client, error) {
	if !cfg.Configured() {
		return nil, ErrNotConfigured
	}

	switch cfg.Provider {
	case config.ProviderOpenAI, "":
		httpClient := httpretry.NewRetryClient(&http.Client{Timeout: cfg.Timeout()}, cfg.Retries())
		return NewOpenAI(httpClient, cfg.BaseURL, cfg.APIKey, cfg.Model), nil
	case config.ProviderBedrock:
		b, err := NewBedrockFromConfig(ctx, cfg)
		if err != nil {
			return nil, err
		}
		return b, nil
	default:
		return nil, fmt.Errorf("llm: unknown provider %q", cfg.Provider)
	}
}
