package outreach

// DiscoveredContact is a candidate returned by Discover.
type DiscoveredContact struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Company     string `json:"company"`
	Position    string `json:"position"`
	Industry    string `json:"industry"`
	LinkedInURL string `json:"linkedin_url"`
	LeadScore   int    `json:"lead_score"`
}

// DiscoveryResult is the response body of the discovery endpoint.
type DiscoveryResult struct {
	DiscoveredContacts []DiscoveredContact    `json:"discovered_contacts"`
	TotalFound         int                    `json:"total_found"`
	CriteriaUsed       map[string]interface{} `json:"criteria_used"`
}

// Discover returns fixed sample candidates. No external data provider is
// wired yet; only criteria["industry"] is honored.
func Discover(criteria map[string]interface{}) *DiscoveryResult {
	if criteria == nil {
		criteria = map[string]interface{}{}
	}
	industry := "Technology"
	if v, ok := criteria["industry"]; ok {
		if s, ok := v.(string); ok {
			industry = s
		}
	}

	found := []DiscoveredContact{
		{
			Name:        "John Smith",
			Email:       "john.smith@example.com",
			Company:     "Tech Corp",
			Position:    "Senior Developer",
			Industry:    industry,
			LinkedInURL: "https://linkedin.com/in/johnsmith",
			LeadScore:   75,
		},
		{
			Name:        "Sarah Johnson",
			Email:       "sarah.j@example.com",
			Company:     "Innovation Inc",
			Position:    "Product Manager",
			Industry:    industry,
			LinkedInURL: "https://linkedin.com/in/sarahjohnson",
			LeadScore:   82,
		},
	}
	return &DiscoveryResult{
		DiscoveredContacts: found,
		TotalFound:         len(found),
		CriteriaUsed:       criteria,
	}
}
