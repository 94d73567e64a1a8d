package model

// UserProfile is the backend-aggregated behavioral summary for one user.
// All nested sequences arrive pre-sorted by relevance or recency; the UI
// only truncates them, never re-sorts.
type UserProfile struct {
	UserID        string            `json:"userId"`
	TotalRatings  int               `json:"totalRatings"`
	AverageScore  float64           `json:"averageScore"`
	Categories    []CategoryScore   `json:"categories"`
	Domains       []DomainScore     `json:"domains"`
	TimePatterns  TimePattern       `json:"timePatterns"`
	Interests     []InterestTag     `json:"interests"`
	Sentiment     SentimentAnalysis `json:"sentiment"`
}

// CategoryScore is one content category with its visit aggregates.
type CategoryScore struct {
	Category     string  `json:"category"`
	Count        int     `json:"count"`
	AverageScore float64 `json:"averageScore"`
	Weight       float64 `json:"weight"`
}

// DomainScore is one visited hostname with its aggregates.
type DomainScore struct {
	Domain       string  `json:"domain"`
	Count        int     `json:"count"`
	AverageScore float64 `json:"averageScore"`
	LastVisited  string  `json:"lastVisited"`
}

// TimePattern describes when a user is active. Hour keys are 0-23,
// weekday keys 0-6. PeakHours is computed by the backend.
type TimePattern struct {
	HourlyDistribution  map[int]int `json:"hourlyDistribution"`
	WeekdayDistribution map[int]int `json:"weekdayDistribution"`
	PeakHours           []int       `json:"peakHours"`
}

// InterestTag is one backend-extracted interest with its weight.
type InterestTag struct {
	Tag       string  `json:"tag"`
	Weight    float64 `json:"weight"`
	Frequency int     `json:"frequency"`
}

// Overall sentiment values returned by the backend.
const (
	SentimentPositive = "positive"
	SentimentNeutral  = "neutral"
	SentimentNegative = "negative"
)

// SentimentAnalysis holds sentiment proportions (expected to sum to ~1)
// and the backend's overall verdict.
type SentimentAnalysis struct {
	Positive         float64 `json:"positive"`
	Neutral          float64 `json:"neutral"`
	Negative         float64 `json:"negative"`
	OverallSentiment string  `json:"overallSentiment"`
}

// SimilarityResult is the payload of a profile comparison. Similarity is
// in [0,1].
type SimilarityResult struct {
	User1      string  `json:"user1,omitempty"`
	User2      string  `json:"user2,omitempty"`
	Similarity float64 `json:"similarity"`
}
