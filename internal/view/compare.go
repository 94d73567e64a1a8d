package view

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/photinia-ana/kalkman-web/internal/backend"
	"github.com/photinia-ana/kalkman-web/internal/middleware"
)

// CompareView is the similarity comparison form and its result.
type CompareView struct {
	User1         string
	User2         string
	Submitted     bool
	ValidationErr string
	Err           string
	HasResult     bool
	Similarity    float64
	Percent       string
	Tier          string
	TierClass     string
}

// BuildCompare drives the comparison form. Nothing is fetched until the
// form is submitted; a submission with either ID empty short-circuits with
// a validation error and issues zero backend calls.
func BuildCompare(ctx context.Context, src CompareSource, user1, user2 string, submitted bool) *CompareView {
	v := &CompareView{
		User1:     strings.TrimSpace(user1),
		User2:     strings.TrimSpace(user2),
		Submitted: submitted,
	}
	if !submitted {
		return v
	}

	if v.User1 == "" || v.User2 == "" {
		v.ValidationErr = "Enter both user IDs"
		return v
	}

	result, err := src.CompareUsers(ctx, v.User1, v.User2)
	if err != nil {
		middleware.Logger.Error().Err(err).Msg("compare: request failed")
		var reqErr *backend.RequestError
		if errors.As(err, &reqErr) && reqErr.Message != "" {
			v.Err = reqErr.Message
		} else {
			v.Err = "Comparison failed"
		}
		return v
	}

	v.HasResult = true
	v.Similarity = result.Similarity
	v.Percent = strconv.FormatFloat(result.Similarity*100, 'f', 1, 64) + "%"
	v.Tier, v.TierClass = SimilarityTier(result.Similarity)
	return v
}

// SimilarityTier maps a similarity in [0,1] to its qualitative label and
// display class.
func SimilarityTier(similarity float64) (label, class string) {
	switch {
	case similarity >= 0.7:
		return "very similar", "tier-high"
	case similarity >= 0.4:
		return "moderate", "tier-mid"
	default:
		return "low", "tier-low"
	}
}
