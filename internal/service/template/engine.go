package template

import (
	"fmt"
	"strings"
	"sync"

	"github.com/osteele/liquid"

	"github.com/ignite/networking-ai/internal/domain"
)

// Engine compiles and renders Liquid templates. Compiled templates are
// cached by key; templates never change after creation so entries never
// go stale.
type Engine struct {
	engine *liquid.Engine
	cache  sync.Map // map[string]*liquid.Template
}

// NewEngine creates an Engine with the outreach-specific filters registered.
func NewEngine() *Engine {
	e := &Engine{engine: liquid.NewEngine()}
	e.registerFilters()
	return e
}

func (e *Engine) registerFilters() {
	// {{ contact.company | default: "your team" }}
	e.engine.RegisterFilter("default", func(value interface{}, fallback string) interface{} {
		if value == nil {
			return fallback
		}
		if s, ok := value.(string); ok && strings.TrimSpace(s) == "" {
			return fallback
		}
		return value
	})

	// {{ contact.name | first_name }}
	e.engine.RegisterFilter("first_name", firstName)
}

// Parse reports syntax errors without rendering.
func (e *Engine) Parse(src string) error {
	if _, err := e.engine.ParseString(src); err != nil {
		return err
	}
	return nil
}

// Render compiles (or reuses) src under key and renders it with bindings.
func (e *Engine) Render(key, src string, bindings map[string]interface{}) (string, error) {
	var tpl *liquid.Template
	if cached, ok := e.cache.Load(key); ok && key != "" {
		tpl = cached.(*liquid.Template)
	} else {
		parsed, err := e.engine.ParseString(src)
		if err != nil {
			return "", fmt.Errorf("parse: %w", err)
		}
		tpl = parsed
		if key != "" {
			e.cache.Store(key, tpl)
		}
	}

	out, err := tpl.RenderString(bindings)
	if err != nil {
		return "", fmt.Errorf("render: %w", err)
	}
	return out, nil
}

// ContactBindings exposes a contact to templates as {{ contact.* }}.
func ContactBindings(c domain.Contact) map[string]interface{} {
	return map[string]interface{}{
		"contact": map[string]interface{}{
			"name":         c.Name,
			"first_name":   firstName(c.Name),
			"email":        c.Email,
			"company":      c.Company,
			"position":     c.Position,
			"industry":     c.Industry,
			"linkedin_url": c.LinkedInURL,
		},
	}
}

func firstName(full string) string {
	fields := strings.Fields(full)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}
