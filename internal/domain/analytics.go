package domain

// AnalyticsReport is the fixed-shape summary served by GET /api/analytics.
type AnalyticsReport struct {
	TotalContacts      int                `json:"total_contacts"`
	ContactsByStatus   map[string]int     `json:"contacts_by_status"`
	ContactsByPriority map[string]int     `json:"contacts_by_priority"`
	TotalCampaigns     int                `json:"total_campaigns"`
	CampaignsByStatus  map[string]int     `json:"campaigns_by_status"`
	EmailPerformance   EmailPerformance   `json:"email_performance"`
	RelationshipScores RelationshipScores `json:"relationship_scores"`
	MonthlyGrowth      MonthlyGrowth      `json:"monthly_growth"`
}

// EmailPerformance sums campaign counters. Rates are percentages.
type EmailPerformance struct {
	TotalSent        int     `json:"total_sent"`
	TotalResponses   int     `json:"total_responses"`
	TotalConversions int     `json:"total_conversions"`
	ResponseRate     float64 `json:"response_rate"`
	ConversionRate   float64 `json:"conversion_rate"`
}

// RelationshipScores averages the derived contact scores.
type RelationshipScores struct {
	AverageLeadScore            float64 `json:"average_lead_score"`
	AverageRelationshipStrength float64 `json:"average_relationship_strength"`
}

// MonthlyGrowth counts records created in the trailing 30 days.
type MonthlyGrowth struct {
	NewContacts  int `json:"new_contacts"`
	NewCampaigns int `json:"new_campaigns"`
}
