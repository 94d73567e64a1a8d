package view

import (
	"context"
	"strings"

	"github.com/photinia-ana/kalkman-web/internal/middleware"
	"github.com/photinia-ana/kalkman-web/internal/model"
)

// UserListView is the searchable listing of all profiles.
type UserListView struct {
	Err      bool
	Search   string
	Total    int
	Profiles []ProfilePreview
}

// BuildUserList loads every profile and applies the free-text search filter.
// Filtering is purely client-side; no extra backend call per search.
func BuildUserList(ctx context.Context, src ProfileSource, search string) *UserListView {
	v := &UserListView{Search: search}

	profiles, err := src.GetAllProfiles(ctx)
	if err != nil {
		middleware.Logger.Error().Err(err).Msg("user list: load profiles failed")
		v.Err = true
		return v
	}
	v.Total = len(profiles)

	for _, p := range FilterProfiles(sortedProfiles(profiles), search) {
		v.Profiles = append(v.Profiles, newProfilePreview(p))
	}
	return v
}

// FilterProfiles keeps the profiles whose userId contains term,
// case-insensitively. An empty term keeps everything.
func FilterProfiles(profiles []*model.UserProfile, term string) []*model.UserProfile {
	if term == "" {
		return profiles
	}
	needle := strings.ToLower(term)

	var out []*model.UserProfile
	for _, p := range profiles {
		if strings.Contains(strings.ToLower(p.UserID), needle) {
			out = append(out, p)
		}
	}
	return out
}
