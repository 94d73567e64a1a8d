package view

import (
	"context"
	"errors"
	"sort"
	"strconv"
	"strings"

	"github.com/photinia-ana/kalkman-web/internal/backend"
	"github.com/photinia-ana/kalkman-web/internal/middleware"
	"github.com/photinia-ana/kalkman-web/internal/model"
)

// Truncation limits for the profile detail page. Sequences arrive sorted by
// the backend; only the head is shown.
const (
	maxCategoryBars = 6
	maxInterestTags = 15
	maxDomainRows   = 10
)

// CategoryBar is one bar of the category distribution chart.
type CategoryBar struct {
	Name  string
	Count int
	Score float64
	Pct   float64
}

// NamedValue is one slice of the sentiment breakdown, scaled to percent.
type NamedValue struct {
	Name    string
	Value   float64
	Display string
}

// HourBucket is one labeled bucket of the hourly activity chart.
type HourBucket struct {
	Label string
	Count int
	Pct   float64
}

// DomainRow is one frequently visited domain with its score band.
type DomainRow struct {
	Domain string
	Count  int
	Score  float64
	Band   string
}

// ProfileView is the detail page for one user.
type ProfileView struct {
	Err            bool
	NotFound       bool
	UserID         string
	TotalRatings   int
	AverageScore   float64
	Sentiment      string
	SentimentClass string
	Categories     []CategoryBar
	SentimentPie   []NamedValue
	Hourly         []HourBucket
	PeakHours      string
	Interests      []model.InterestTag
	Domains        []DomainRow
}

// BuildProfile loads one profile and reshapes it into the chart-ready
// projections the detail page renders. No values are recomputed; the
// projections are pure truncations and relabelings of backend data.
func BuildProfile(ctx context.Context, src ProfileSource, userID string) *ProfileView {
	v := &ProfileView{UserID: userID}

	profile, err := src.GetUserProfile(ctx, userID)
	if err != nil {
		var reqErr *backend.RequestError
		if errors.As(err, &reqErr) && reqErr.NotFound() {
			v.NotFound = true
			return v
		}
		middleware.Logger.Error().Err(err).Msg("profile: load failed")
		v.Err = true
		return v
	}

	v.TotalRatings = profile.TotalRatings
	v.AverageScore = profile.AverageScore
	v.Sentiment = profile.Sentiment.OverallSentiment
	v.SentimentClass = sentimentClass(profile.Sentiment.OverallSentiment)
	v.Categories = categoryBars(profile.Categories)
	v.SentimentPie = sentimentSlices(profile.Sentiment)
	v.Hourly = hourBuckets(profile.TimePatterns.HourlyDistribution)
	v.PeakHours = peakHourLabels(profile.TimePatterns.PeakHours)

	v.Interests = profile.Interests
	if len(v.Interests) > maxInterestTags {
		v.Interests = v.Interests[:maxInterestTags]
	}
	v.Domains = domainRows(profile.Domains)

	return v
}

func categoryBars(categories []model.CategoryScore) []CategoryBar {
	if len(categories) > maxCategoryBars {
		categories = categories[:maxCategoryBars]
	}

	maxCount := 0
	for _, c := range categories {
		if c.Count > maxCount {
			maxCount = c.Count
		}
	}

	bars := make([]CategoryBar, 0, len(categories))
	for _, c := range categories {
		bar := CategoryBar{Name: c.Category, Count: c.Count, Score: c.AverageScore}
		if maxCount > 0 {
			bar.Pct = float64(c.Count) / float64(maxCount) * 100
		}
		bars = append(bars, bar)
	}
	return bars
}

// sentimentSlices scales the three proportions to percentages.
func sentimentSlices(s model.SentimentAnalysis) []NamedValue {
	slices := []NamedValue{
		{Name: "positive", Value: s.Positive * 100},
		{Name: "neutral", Value: s.Neutral * 100},
		{Name: "negative", Value: s.Negative * 100},
	}
	for i := range slices {
		slices[i].Display = strconv.FormatFloat(slices[i].Value, 'f', 1, 64) + "%"
	}
	return slices
}

// hourBuckets labels the hourly distribution in ascending hour order.
func hourBuckets(hourly map[int]int) []HourBucket {
	hours := make([]int, 0, len(hourly))
	for h := range hourly {
		hours = append(hours, h)
	}
	sort.Ints(hours)

	maxCount := 0
	for _, count := range hourly {
		if count > maxCount {
			maxCount = count
		}
	}

	buckets := make([]HourBucket, 0, len(hours))
	for _, h := range hours {
		b := HourBucket{
			Label: strconv.Itoa(h) + ":00",
			Count: hourly[h],
		}
		if maxCount > 0 {
			b.Pct = float64(b.Count) / float64(maxCount) * 100
		}
		buckets = append(buckets, b)
	}
	return buckets
}

func peakHourLabels(peaks []int) string {
	labels := make([]string, 0, len(peaks))
	for _, h := range peaks {
		labels = append(labels, strconv.Itoa(h)+":00")
	}
	return strings.Join(labels, ", ")
}

func domainRows(domains []model.DomainScore) []DomainRow {
	if len(domains) > maxDomainRows {
		domains = domains[:maxDomainRows]
	}

	rows := make([]DomainRow, 0, len(domains))
	for _, d := range domains {
		rows = append(rows, DomainRow{
			Domain: d.Domain,
			Count:  d.Count,
			Score:  d.AverageScore,
			Band:   domainBand(d.AverageScore),
		})
	}
	return rows
}

// domainBand maps a domain's average score to a display band.
func domainBand(score float64) string {
	switch {
	case score >= 7:
		return "band-high"
	case score >= 4:
		return "band-mid"
	default:
		return "band-low"
	}
}
