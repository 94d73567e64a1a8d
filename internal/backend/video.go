package backend

import (
	"context"
	"net/url"
	"strconv"

	"github.com/photinia-ana/kalkman-web/internal/model"
)

// VideoQuery narrows a user's video listing. Zero values mean "not set" and
// are omitted from the request. Ranked selects the endpoint variant whose
// ordering is precomputed by the backend.
type VideoQuery struct {
	Limit        int
	Offset       int
	Category     string
	SourceDomain string
	Ranked       bool
}

// GetUserVideos fetches a user's video list.
// GET /api/resources/user/{userId} or /api/resources/user/{userId}/ranked
func (c *Client) GetUserVideos(ctx context.Context, userID string, query VideoQuery) ([]model.Video, error) {
	path := "/resources/user/" + url.PathEscape(userID)
	if query.Ranked {
		path += "/ranked"
	}

	q := url.Values{}
	if query.Limit > 0 {
		q.Set("limit", strconv.Itoa(query.Limit))
	}
	if query.Offset > 0 {
		q.Set("offset", strconv.Itoa(query.Offset))
	}
	if query.Category != "" {
		q.Set("category", query.Category)
	}
	if query.SourceDomain != "" {
		q.Set("sourceDomain", query.SourceDomain)
	}

	var videos []model.Video
	if err := c.get(ctx, "getUserVideos", path, q, &videos); err != nil {
		return nil, err
	}
	return videos, nil
}

// GetVideoStats fetches the aggregate stats for a user's video collection.
// GET /api/resources/user/{userId}/stats
func (c *Client) GetVideoStats(ctx context.Context, userID string) (*model.VideoStats, error) {
	var stats model.VideoStats
	if err := c.get(ctx, "getVideoStats", "/resources/user/"+url.PathEscape(userID)+"/stats", nil, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}
