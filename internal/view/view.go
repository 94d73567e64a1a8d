// Package view composes backend data into renderable page models. Each page
// has a small builder that fetches what it needs, folds it into a view
// struct and degrades to an error or empty state when the backend fails.
// Builders never panic on backend errors and never re-sort backend-ordered
// sequences; they only truncate.
package view

import (
	"context"
	"sort"

	"github.com/photinia-ana/kalkman-web/internal/backend"
	"github.com/photinia-ana/kalkman-web/internal/model"
)

// ProfileSource is the slice of the backend client the profile pages need.
type ProfileSource interface {
	GetAllProfiles(ctx context.Context) (map[string]*model.UserProfile, error)
	GetUserProfile(ctx context.Context, userID string) (*model.UserProfile, error)
}

// CompareSource is the slice of the backend client the compare page needs.
type CompareSource interface {
	CompareUsers(ctx context.Context, user1, user2 string) (*model.SimilarityResult, error)
}

// VideoSource is the slice of the backend client the video library needs.
type VideoSource interface {
	GetVideoStats(ctx context.Context, userID string) (*model.VideoStats, error)
	GetUserVideos(ctx context.Context, userID string, q backend.VideoQuery) ([]model.Video, error)
	GetRecommendations(ctx context.Context, userID string, limit int, minScore float64) ([]model.Video, error)
}

// ProfilePreview is one row in a profile listing.
type ProfilePreview struct {
	UserID         string
	ShortID        string
	TotalRatings   int
	AverageScore   float64
	Sentiment      string
	SentimentClass string
}

func newProfilePreview(p *model.UserProfile) ProfilePreview {
	short := p.UserID
	if len(short) > 8 {
		short = short[:8] + "…"
	}
	return ProfilePreview{
		UserID:         p.UserID,
		ShortID:        short,
		TotalRatings:   p.TotalRatings,
		AverageScore:   p.AverageScore,
		Sentiment:      p.Sentiment.OverallSentiment,
		SentimentClass: sentimentClass(p.Sentiment.OverallSentiment),
	}
}

func sentimentClass(sentiment string) string {
	switch sentiment {
	case model.SentimentPositive:
		return "badge-positive"
	case model.SentimentNegative:
		return "badge-negative"
	default:
		return "badge-neutral"
	}
}

// sortedProfiles returns the mapping's profiles in stable userId order. The
// backend keys profiles by ID, so the mapping itself carries no ordering.
func sortedProfiles(profiles map[string]*model.UserProfile) []*model.UserProfile {
	ids := make([]string, 0, len(profiles))
	for id := range profiles {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	out := make([]*model.UserProfile, 0, len(ids))
	for _, id := range ids {
		out = append(out, profiles[id])
	}
	return out
}
