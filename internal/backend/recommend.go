package backend

import (
	"context"
	"net/url"
	"strconv"

	"github.com/photinia-ana/kalkman-web/internal/model"
)

// Defaults applied when recommendation calls receive zero values.
const (
	DefaultRecommendationLimit = 20
	DefaultMinScore            = 0.3
	DefaultSimilarLimit        = 10
)

// GetRecommendations fetches scored video recommendations for a user,
// ordered by the backend.
// GET /api/recommendations/user/{userId}?limit=&minScore=
func (c *Client) GetRecommendations(ctx context.Context, userID string, limit int, minScore float64) ([]model.Video, error) {
	if limit <= 0 {
		limit = DefaultRecommendationLimit
	}
	if minScore <= 0 {
		minScore = DefaultMinScore
	}
	q := url.Values{
		"limit":    {strconv.Itoa(limit)},
		"minScore": {strconv.FormatFloat(minScore, 'g', -1, 64)},
	}
	var videos []model.Video
	if err := c.get(ctx, "getRecommendations", "/recommendations/user/"+url.PathEscape(userID), q, &videos); err != nil {
		return nil, err
	}
	return videos, nil
}

// GetSimilarVideos fetches videos similar to a given one, scored for the
// given user.
// GET /api/recommendations/similar/{videoId}?userId=&limit=
func (c *Client) GetSimilarVideos(ctx context.Context, videoID, userID string, limit int) ([]model.Video, error) {
	if limit <= 0 {
		limit = DefaultSimilarLimit
	}
	q := url.Values{
		"userId": {userID},
		"limit":  {strconv.Itoa(limit)},
	}
	var videos []model.Video
	if err := c.get(ctx, "getSimilarVideos", "/recommendations/similar/"+url.PathEscape(videoID), q, &videos); err != nil {
		return nil, err
	}
	return videos, nil
}

// BatchRank asks the backend to re-score a whole candidate set in one round
// trip and returns the videos in the new order.
// POST /api/recommendations/batch-rank
func (c *Client) BatchRank(ctx context.Context, userID string, videos []model.Video) ([]model.Video, error) {
	body := struct {
		UserID string        `json:"userId"`
		Videos []model.Video `json:"videos"`
	}{UserID: userID, Videos: videos}

	var ranked []model.Video
	if err := c.post(ctx, "batchRank", "/recommendations/batch-rank", body, &ranked); err != nil {
		return nil, err
	}
	return ranked, nil
}
