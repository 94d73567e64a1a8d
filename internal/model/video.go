package model

// Video is one extracted video resource. Score and ScoreBreakdown are only
// present on recommendation and ranked-listing responses.
type Video struct {
	ID             string             `json:"id"`
	Title          string             `json:"title"`
	URL            string             `json:"url"`
	Author         string             `json:"author,omitempty"`
	Duration       string             `json:"duration,omitempty"`
	Cover          string             `json:"cover,omitempty"`
	Category       string             `json:"category,omitempty"`
	Tags           []string           `json:"tags,omitempty"`
	SourceDomain   string             `json:"source_domain"`
	ExtractedAt    string             `json:"extracted_at"`
	Score          *float64           `json:"score,omitempty"`
	ScoreBreakdown map[string]float64 `json:"scoreBreakdown,omitempty"`
}

// VideoStats are the aggregate counts for one user's video collection.
type VideoStats struct {
	Total      int            `json:"total"`
	ByCategory map[string]int `json:"byCategory"`
	ByDomain   map[string]int `json:"byDomain"`
}
