// Package scoring computes the derived 0-100 heuristics stored on contacts.
// Every function here is pure: callers pass in "now" so results are
// reproducible in tests.
package scoring

import (
	"strings"
	"time"

	"github.com/ignite/networking-ai/internal/domain"
)

const (
	// MaxScore is the upper clamp for every score.
	MaxScore = 100

	leadBase        = 50
	leadCompany     = 10
	leadPosition    = 10
	leadIndustry    = 10
	leadLinkedIn    = 15
	leadPhone       = 5
	leadRecentWeek  = 20
	leadRecentMonth = 10

	strengthPerInteraction = 5
	strengthPerRecent      = 10

	week  = 7 * 24 * time.Hour
	month = 30 * 24 * time.Hour
)

// LeadScore rates a contact's outreach-worthiness from profile completeness
// and how recently we interacted with them.
func LeadScore(c domain.Contact, now time.Time) int {
	score := leadBase
	if present(c.Company) {
		score += leadCompany
	}
	if present(c.Position) {
		score += leadPosition
	}
	if present(c.Industry) {
		score += leadIndustry
	}
	if present(c.LinkedInURL) {
		score += leadLinkedIn
	}
	if present(c.Phone) {
		score += leadPhone
	}

	if c.LastInteraction != nil {
		since := now.Sub(*c.LastInteraction)
		switch {
		case since < week:
			score += leadRecentWeek
		case since < month:
			score += leadRecentMonth
		}
	}
	return Clamp(score)
}

// RelationshipStrength rates relationship depth from interaction volume and
// recency: 5 points per interaction plus 10 per interaction in the last 30 days.
func RelationshipStrength(logs []domain.InteractionLog, now time.Time) int {
	recent := 0
	for _, l := range logs {
		if now.Sub(l.CreatedAt) < month {
			recent++
		}
	}
	return Clamp(strengthPerInteraction*len(logs) + strengthPerRecent*recent)
}

// Clamp bounds v to [0, MaxScore].
func Clamp(v int) int {
	if v < 0 {
		return 0
	}
	if v > MaxScore {
		return MaxScore
	}
	return v
}

func present(s string) bool {
	return strings.TrimSpace(s) != ""
}
