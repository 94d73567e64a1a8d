package backend

import (
	"context"
	"net/url"
	"strconv"

	"github.com/photinia-ana/kalkman-web/internal/model"
)

// DefaultInterestLimit is used when GetUserInterests is called with a
// non-positive limit.
const DefaultInterestLimit = 10

// GetUserProfile fetches a single user profile.
// GET /api/profile/{userId}
func (c *Client) GetUserProfile(ctx context.Context, userID string) (*model.UserProfile, error) {
	var profile model.UserProfile
	if err := c.get(ctx, "getUserProfile", "/profile/"+url.PathEscape(userID), nil, &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

// GetAllProfiles fetches every known profile, keyed by user ID.
// GET /api/profile
func (c *Client) GetAllProfiles(ctx context.Context) (map[string]*model.UserProfile, error) {
	profiles := make(map[string]*model.UserProfile)
	if err := c.get(ctx, "getAllProfiles", "/profile", nil, &profiles); err != nil {
		return nil, err
	}
	return profiles, nil
}

// GetUserInterests fetches a user's top interest tags.
// GET /api/profile/{userId}/interests?limit=
func (c *Client) GetUserInterests(ctx context.Context, userID string, limit int) ([]model.InterestTag, error) {
	if limit <= 0 {
		limit = DefaultInterestLimit
	}
	q := url.Values{"limit": {strconv.Itoa(limit)}}
	var interests []model.InterestTag
	if err := c.get(ctx, "getUserInterests", "/profile/"+url.PathEscape(userID)+"/interests", q, &interests); err != nil {
		return nil, err
	}
	return interests, nil
}

// CompareUsers fetches the backend-computed similarity between two users.
// GET /api/profile/compare/similarity?user1=&user2=
func (c *Client) CompareUsers(ctx context.Context, user1, user2 string) (*model.SimilarityResult, error) {
	q := url.Values{
		"user1": {user1},
		"user2": {user2},
	}
	var result model.SimilarityResult
	if err := c.get(ctx, "compareUsers", "/profile/compare/similarity", q, &result); err != nil {
		return nil, err
	}
	return &result, nil
}
