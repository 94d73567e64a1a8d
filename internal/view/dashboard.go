package view

import (
	"context"
	"strconv"

	"github.com/photinia-ana/kalkman-web/internal/middleware"
)

// DashboardPreviewSize is how many profiles the dashboard preview shows.
const DashboardPreviewSize = 5

// DashboardView is the aggregate overview of all known profiles.
type DashboardView struct {
	Err          bool
	UserCount    int
	TotalRatings int
	AverageScore string
	Preview      []ProfilePreview
}

// BuildDashboard loads every profile and folds the aggregates the overview
// page shows: user count, summed ratings and mean average score formatted
// to one decimal ("0" when there are no users).
func BuildDashboard(ctx context.Context, src ProfileSource) *DashboardView {
	profiles, err := src.GetAllProfiles(ctx)
	if err != nil {
		middleware.Logger.Error().Err(err).Msg("dashboard: load profiles failed")
		return &DashboardView{Err: true, AverageScore: "0"}
	}

	v := &DashboardView{
		UserCount:    len(profiles),
		AverageScore: "0",
	}

	var scoreSum float64
	for _, p := range profiles {
		v.TotalRatings += p.TotalRatings
		scoreSum += p.AverageScore
	}
	if v.UserCount > 0 {
		v.AverageScore = strconv.FormatFloat(scoreSum/float64(v.UserCount), 'f', 1, 64)
	}

	for _, p := range sortedProfiles(profiles) {
		if len(v.Preview) == DashboardPreviewSize {
			break
		}
		v.Preview = append(v.Preview, newProfilePreview(p))
	}
	return v
}
