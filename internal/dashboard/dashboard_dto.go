package dashboard

type HeadcountResponse struct {
	Department string `json:"department"`
	Count      int    `json:"count"`
}

type ActivityResponse struct {
	ID         string `json:"id"`
	Type       string `json:"type"`
	Message    string `json:"message"`
	OccurredAt string `json:"occurred_at"`
}

type SummaryResponse struct {
	TotalEmployees  int                 `json:"total_employees"`
	OnLeave         int                 `json:"on_leave"`
	PendingRequests int                 `json:"pending_requests"`
	NewHires        int                 `json:"new_hires"`
	Quarter         string              `json:"quarter"`
	Headcount       []HeadcountResponse `json:"headcount"`
	RecentActivity  []ActivityResponse  `json:"recent_activity"`
}
