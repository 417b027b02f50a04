package scoring

import (
	"testing"
	"time"

	"github.com/ignite/networking-ai/internal/domain"
)

var now = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func ago(d time.Duration) *time.Time {
	t := now.Add(-d)
	return &t
}

func TestLeadScore(t *testing.T) {
	full := domain.Contact{
		Name:        "A",
		Email:       "a@x.com",
		Company:     "C",
		Position:    "Eng",
		Industry:    "Tech",
		LinkedInURL: "https://linkedin.com/in/a",
		Phone:       "555",
	}

	tests := []struct {
		name    string
		contact domain.Contact
		want    int
	}{
		{"bare contact", domain.Contact{Name: "A", Email: "a@x.com"}, 50},
		{"full profile clamps", full, 100},
		{"company only", domain.Contact{Company: "C"}, 60},
		{"linkedin and phone", domain.Contact{LinkedInURL: "u", Phone: "1"}, 70},
		{"whitespace is absent", domain.Contact{Company: "   ", Phone: "\t"}, 50},
		{"interaction this week", domain.Contact{LastInteraction: ago(2 * 24 * time.Hour)}, 70},
		{"interaction this month", domain.Contact{LastInteraction: ago(10 * 24 * time.Hour)}, 60},
		{"stale interaction", domain.Contact{LastInteraction: ago(45 * 24 * time.Hour)}, 50},
		{"industry and recent", domain.Contact{Industry: "Tech", LastInteraction: ago(time.Hour)}, 80},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := LeadScore(tt.contact, now); got != tt.want {
				t.Errorf("LeadScore() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestRelationshipStrength_AllRecent(t *testing.T) {
	for n := 0; n <= 10; n++ {
		logs := make([]domain.InteractionLog, n)
		for i := range logs {
			logs[i].CreatedAt = now.Add(-time.Duration(i) * time.Hour)
		}
		want := 15 * n
		if want > 100 {
			want = 100
		}
		if got := RelationshipStrength(logs, now); got != want {
			t.Errorf("n=%d: got %d, want %d", n, got, want)
		}
	}
}

func TestRelationshipStrength_Mixed(t *testing.T) {
	logs := []domain.InteractionLog{
		{CreatedAt: now.Add(-24 * time.Hour)},
		{CreatedAt: now.Add(-40 * 24 * time.Hour)},
		{CreatedAt: now.Add(-90 * 24 * time.Hour)},
	}
	// 3*5 + 1*10
	if got := RelationshipStrength(logs, now); got != 25 {
		t.Fatalf("got %d, want 25", got)
	}
}

func TestClamp(t *testing.T) {
	if Clamp(-5) != 0 || Clamp(150) != 100 || Clamp(42) != 42 {
		t.Fatal("clamp bounds wrong")
	}
}
