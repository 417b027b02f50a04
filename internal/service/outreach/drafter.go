package outreach

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/ignite/networking-ai/internal/domain"
	"github.com/ignite/networking-ai/internal/llm"
	"github.com/ignite/networking-ai/internal/pkg/logger"
)

var (
	// ErrNotConfigured means no LLM credential is available.
	ErrNotConfigured = errors.New("llm api key not configured")
	ErrValidation    = errors.New("invalid email request")
)

// NotConfiguredMessage is shown to API callers for ErrNotConfigured.
const NotConfiguredMessage = "LLM API key not configured. Please add your API key to the .env file."

// Draft sources.
const (
	SourceAI             = "ai"
	SourceAIUnstructured = "ai_unstructured"
	SourceFallback       = "fallback"
)

const fallbackNote = "AI generation failed - using template"

const systemPrompt = `You are an expert networking assistant that generates personalized outreach emails.
Your task is to create professional, engaging emails that help build meaningful business relationships.

Always respond in the following JSON format:
{
    "subject": "Email subject line",
    "body": "Email body content",
    "personalization_notes": ["note1", "note2"]
}`

// ContactReader loads the recipient.
type ContactReader interface {
	Get(ctx context.Context, id string) (*domain.Contact, error)
}

// GoalsReader loads the sender's networking goals.
type GoalsReader interface {
	Primary(ctx context.Context, userID string) (*domain.NetworkingGoals, error)
}

// Request is the input to Generate.
type Request struct {
	ContactID string `json:"contact_id"`
	EmailType string `json:"email_type"`
	Context   string `json:"context,omitempty"`
	Tone      string `json:"tone,omitempty"`
}

// Draft is a generated email.
type Draft struct {
	Subject              string   `json:"subject"`
	Body                 string   `json:"body"`
	PersonalizationNotes []string `json:"personalization_notes"`
	Source               string   `json:"source"`
	Degraded             bool     `json:"degraded"`
}

// Drafter generates outreach emails. A nil client means the model is not
// configured and every Generate call returns ErrNotConfigured.
type Drafter struct {
	client   llm.Client
	contacts ContactReader
	goals    GoalsReader
}

// NewDrafter creates a Drafter.
func NewDrafter(client llm.Client, contacts ContactReader, goals GoalsReader) *Drafter {
	return &Drafter{client: client, contacts: contacts, goals: goals}
}

// Generate drafts an email for the contact named in req.
func (d *Drafter) Generate(ctx context.Context, req Request) (*Draft, error) {
	if d.client == nil {
		return nil, ErrNotConfigured
	}
	if strings.TrimSpace(req.ContactID) == "" {
		return nil, fmt.Errorf("%w: contact_id is required", ErrValidation)
	}
	if strings.TrimSpace(req.EmailType) == "" {
		return nil, fmt.Errorf("%w: email_type is required", ErrValidation)
	}
	if req.Tone == "" {
		req.Tone = "professional"
	}

	c, err := d.contacts.Get(ctx, req.ContactID)
	if err != nil {
		return nil, err
	}

	var goals *domain.NetworkingGoals
	if d.goals != nil {
		// Goals only enrich the prompt.
		if g, err := d.goals.Primary(ctx, domain.DefaultUserID); err == nil {
			goals = g
		} else {
			logger.Warn("outreach: goals lookup failed", "error", err)
		}
	}

	reply, err := d.client.Chat(ctx, systemPrompt, buildPrompt(*c, req, goals))
	if err != nil {
		logger.Error("outreach: email generation failed", "contact_id", c.ID, "error", err)
		return fallbackDraft(*c, req.EmailType), nil
	}
	return parseReply(reply, *c, req.EmailType), nil
}

func buildPrompt(c domain.Contact, req Request, goals *domain.NetworkingGoals) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Generate a %s email for the following contact:\n\n", req.EmailType)
	b.WriteString("Contact Information:\n")
	fmt.Fprintf(&b, "- Name: %s\n", c.Name)
	fmt.Fprintf(&b, "- Company: %s\n", orValue(c.Company, "Not specified"))
	fmt.Fprintf(&b, "- Position: %s\n", orValue(c.Position, "Not specified"))
	fmt.Fprintf(&b, "- Industry: %s\n\n", orValue(c.Industry, "Not specified"))
	fmt.Fprintf(&b, "Email Type: %s\n", req.EmailType)
	fmt.Fprintf(&b, "Tone: %s\n", req.Tone)
	fmt.Fprintf(&b, "Additional Context: %s\n\n", orValue(req.Context, "None"))
	if goals != nil {
		fmt.Fprintf(&b, "Networking Goals: %s\n\n", strings.Join(goals.NetworkingObjectives, ", "))
	}
	b.WriteString("Please generate a personalized email that:\n")
	fmt.Fprintf(&b, "1. Is appropriate for the %s purpose\n", req.EmailType)
	fmt.Fprintf(&b, "2. Matches the %s tone\n", req.Tone)
	b.WriteString("3. Includes relevant personalization based on their company/position\n")
	b.WriteString("4. Is concise and actionable\n")
	b.WriteString("5. Follows professional email best practices\n")
	return b.String()
}

// parseReply turns the model's text into a draft. Text that is not JSON is
// split into a subject line and body. JSON that does not have the requested
// shape is treated like a failed call.
func parseReply(reply string, c domain.Contact, emailType string) *Draft {
	payload := stripFences(reply)
	if !json.Valid([]byte(payload)) {
		return splitReply(reply, c)
	}

	draft, err := decodeDraft([]byte(payload))
	if err != nil {
		logger.Warn("outreach: model reply has the wrong shape", "contact_id", c.ID, "error", err)
		return fallbackDraft(c, emailType)
	}
	return draft
}

// decodeDraft requires an object with string subject and body and, when
// present, a string array of personalization notes.
func decodeDraft(payload []byte) (*Draft, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(payload, &fields); err != nil || fields == nil {
		return nil, errors.New("reply is not a JSON object")
	}

	d := &Draft{PersonalizationNotes: []string{}, Source: SourceAI}
	for key, dst := range map[string]*string{"subject": &d.Subject, "body": &d.Body} {
		raw, ok := fields[key]
		if !ok {
			return nil, fmt.Errorf("%s is missing", key)
		}
		if err := json.Unmarshal(raw, dst); err != nil || string(raw) == "null" {
			return nil, fmt.Errorf("%s is not a string", key)
		}
	}
	if raw, ok := fields["personalization_notes"]; ok {
		if err := json.Unmarshal(raw, &d.PersonalizationNotes); err != nil || string(raw) == "null" {
			return nil, errors.New("personalization_notes is not a list of strings")
		}
	}
	return d, nil
}

func splitReply(reply string, c domain.Contact) *Draft {
	lines := strings.Split(reply, "\n")
	body := reply
	if len(lines) > 1 {
		body = strings.Join(lines[1:], "\n")
	}
	return &Draft{
		Subject:              lines[0],
		Body:                 body,
		PersonalizationNotes: []string{fmt.Sprintf("Generated for %s at %s", c.Name, c.Company)},
		Source:               SourceAIUnstructured,
	}
}

func fallbackDraft(c domain.Contact, emailType string) *Draft {
	return &Draft{
		Subject:              "Re: " + titleCase(strings.ReplaceAll(emailType, "_", " ")),
		Body:                 fmt.Sprintf("Hi %s,\n\nI hope this email finds you well.\n\n[This is a placeholder - AI generation is currently unavailable]\n\nBest regards", c.Name),
		PersonalizationNotes: []string{fallbackNote},
		Source:               SourceFallback,
		Degraded:             true,
	}
}

// stripFences removes a surrounding ``` or ```json block.
func stripFences(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}

// titleCase upper-cases the first letter of each word and lower-cases the rest.
func titleCase(s string) string {
	out := []rune(s)
	prevLetter := false
	for i, r := range out {
		if unicode.IsLetter(r) {
			if prevLetter {
				out[i] = unicode.ToLower(r)
			} else {
				out[i] = unicode.ToUpper(r)
			}
			prevLetter = true
		} else {
			prevLetter = false
		}
	}
	return string(out)
}

func orValue(v, def string) string {
	if strings.TrimSpace(v) == "" {
		return def
	}
	return v
}
