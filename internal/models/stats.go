package models

// SessionStats aggregates the session collection
type SessionStats struct {
	Total         int                   `json:"total"`
	ByStatus      map[SessionStatus]int `json:"by_status"`
	AverageRating float64               `json:"average_rating"`
	RatedSessions int                   `json:"rated_sessions"`
	TotalHours    float64               `json:"total_hours"`
	MethodUsage   map[string]int        `json:"method_usage"` // keyed by method ID
}
