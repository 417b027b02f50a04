// Package template manages reusable email templates. Subjects and bodies are
// Liquid templates validated on create and rendered against a contact.
package template

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/ignite/networking-ai/internal/domain"
	"github.com/ignite/networking-ai/internal/pkg/logger"
)

// MaxListLimit caps a single list call.
const MaxListLimit = 1000

// Service implements template creation, listing, and rendering.
type Service struct {
	repo     Repository
	contacts ContactReader
	engine   *Engine
	now      func() time.Time
}

// NewService wires a template service. contacts is used only by Render.
func NewService(repo Repository, contacts ContactReader) *Service {
	return &Service{repo: repo, contacts: contacts, engine: NewEngine(), now: time.Now}
}

// CreateInput holds the fields for a new template.
type CreateInput struct {
	Name    string `json:"name"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
	Type    string `json:"type"`
}

// Rendered is a template rendered for one contact.
type Rendered struct {
	TemplateID string `json:"template_id"`
	ContactID  string `json:"contact_id"`
	Subject    string `json:"subject"`
	Body       string `json:"body"`
}

// Create validates required fields and Liquid syntax, then stores the template.
func (s *Service) Create(ctx context.Context, in CreateInput) (*domain.EmailTemplate, error) {
	for field, v := range map[string]string{"name": in.Name, "subject": in.Subject, "body": in.Body, "type": in.Type} {
		if strings.TrimSpace(v) == "" {
			return nil, fmt.Errorf("%w: %s is required", ErrValidation, field)
		}
	}
	if err := s.engine.Parse(in.Subject); err != nil {
		return nil, fmt.Errorf("%w: subject: %v", ErrValidation, err)
	}
	if err := s.engine.Parse(in.Body); err != nil {
		return nil, fmt.Errorf("%w: body: %v", ErrValidation, err)
	}

	t := &domain.EmailTemplate{
		ID:        uuid.New().String(),
		Name:      in.Name,
		Subject:   in.Subject,
		Body:      in.Body,
		Type:      in.Type,
		CreatedAt: s.now().UTC(),
	}
	if err := s.repo.Create(ctx, t); err != nil {
		return nil, fmt.Errorf("create template: %w", err)
	}
	logger.Info("template created", "template_id", t.ID, "type", t.Type)
	return t, nil
}

// List returns every stored template, up to MaxListLimit.
func (s *Service) List(ctx context.Context) ([]domain.EmailTemplate, error) {
	return s.repo.List(ctx, MaxListLimit)
}

// Render fills a template's subject and body with a contact's fields.
func (s *Service) Render(ctx context.Context, templateID, contactID string) (*Rendered, error) {
	t, err := s.repo.Get(ctx, templateID)
	if err != nil {
		return nil, err
	}
	c, err := s.contacts.Get(ctx, contactID)
	if err != nil {
		return nil, err
	}

	bindings := ContactBindings(*c)
	subject, err := s.engine.Render(t.ID+":subject", t.Subject, bindings)
	if err != nil {
		return nil, fmt.Errorf("%w: subject: %v", ErrValidation, err)
	}
	body, err := s.engine.Render(t.ID+":body", t.Body, bindings)
	if err != nil {
		return nil, fmt.Errorf("%w: body: %v", ErrValidation, err)
	}
	return &Rendered{TemplateID: t.ID, ContactID: c.ID, Subject: subject, Body: body}, nil
}
