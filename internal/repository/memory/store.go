// Package memory holds in-process repositories used when no database is
// configured and by tests. Everything is lost on restart.
package memory

import (
	"sort"
	"sync"
	"time"

	"github.com/ignite/networking-ai/internal/domain"
)

// Store owns every collection behind one lock so the analytics source sees a
// consistent snapshot. Slices keep insertion order.
type Store struct {
	mu           sync.RWMutex
	contacts     []domain.Contact
	campaigns    []domain.Campaign
	templates    []domain.EmailTemplate
	interactions []domain.InteractionLog
	goals        []domain.NetworkingGoals
}

// NewStore creates an empty store.
func NewStore() *Store { return &Store{} }

// Contacts returns the contact repository view.
func (s *Store) Contacts() *ContactRepo { return &ContactRepo{s: s} }

// Campaigns returns the campaign repository view.
func (s *Store) Campaigns() *CampaignRepo { return &CampaignRepo{s: s} }

// Templates returns the template repository view.
func (s *Store) Templates() *TemplateRepo { return &TemplateRepo{s: s} }

// Interactions returns the interaction log repository view.
func (s *Store) Interactions() *InteractionRepo { return &InteractionRepo{s: s} }

// Goals returns the networking goals repository view.
func (s *Store) Goals() *GoalsRepo { return &GoalsRepo{s: s} }

// Analytics returns the analytics source view.
func (s *Store) Analytics() *AnalyticsRepo { return &AnalyticsRepo{s: s} }

func cloneStrings(in []string) []string {
	return append([]string{}, in...)
}

func cloneTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := *t
	return &v
}

func cloneContact(c domain.Contact) domain.Contact {
	c.Tags = cloneStrings(c.Tags)
	c.LastContacted = cloneTime(c.LastContacted)
	c.LastInteraction = cloneTime(c.LastInteraction)
	return c
}

func cloneCampaign(c domain.Campaign) domain.Campaign {
	c.ContactIDs = cloneStrings(c.ContactIDs)
	c.ScheduledAt = cloneTime(c.ScheduledAt)
	if c.TemplateID != nil {
		id := *c.TemplateID
		c.TemplateID = &id
	}
	return c
}

func cloneGoals(g domain.NetworkingGoals) domain.NetworkingGoals {
	g.NetworkingObjectives = cloneStrings(g.NetworkingObjectives)
	g.PainPoints = cloneStrings(g.PainPoints)
	g.SuccessMetrics = cloneStrings(g.SuccessMetrics)
	return g
}

// newestFirst returns indexes of n items ordered by created desc, keeping
// later insertions first on ties.
func newestFirst(n int, created func(i int) time.Time) []int {
	idx := make([]int, n)
	for i := range idx {
		idx[i] = n - 1 - i
	}
	sort.SliceStable(idx, func(a, b int) bool {
		return created(idx[a]).After(created(idx[b]))
	})
	return idx
}
