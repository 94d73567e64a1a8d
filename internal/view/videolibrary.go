package view

import (
	"context"
	"math"
	"sort"
	"sync"

	"github.com/photinia-ana/kalkman-web/internal/backend"
	"github.com/photinia-ana/kalkman-web/internal/middleware"
	"github.com/photinia-ana/kalkman-web/internal/model"
)

// View modes for the video library.
const (
	ModeRecommended = "recommended"
	ModeAll         = "all"
)

// libraryPageSize is how many videos one load requests.
const libraryPageSize = 50

// maxCardTags caps the tag chips shown on one video card.
const maxCardTags = 5

// minSignalShare is the contribution below which a score-breakdown signal
// is not worth a chip.
const minSignalShare = 0.1

// VideoLibraryQuery is the full set of inputs for one gallery load.
type VideoLibraryQuery struct {
	UserID   string
	Mode     string
	Category string
	Domain   string
}

// FilterOption is one entry of a category or domain filter dropdown.
type FilterOption struct {
	Value    string
	Count    int
	Selected bool
}

// StatsView summarizes a user's video collection and feeds the filters.
type StatsView struct {
	Total      int
	Categories []FilterOption
	Domains    []FilterOption
}

// VideoCard is one video prepared for display.
type VideoCard struct {
	Video        model.Video
	Tags         []string
	Signals      []string
	HasScore     bool
	ScorePercent int
	ScoreLabel   string
	ScoreClass   string
}

// VideoLibraryView is the gallery page model.
type VideoLibraryView struct {
	Query  VideoLibraryQuery
	Prompt bool
	Err    bool
	Stats  *StatsView
	Videos []VideoCard
}

// BuildVideoLibrary fetches stats plus either recommendations or the ranked,
// filtered video list, depending on the view mode. Stats and the list are
// fetched concurrently. The build holds no state between requests: each
// response renders exactly the data fetched for its own query. When no user
// ID is set the view only prompts for one.
func BuildVideoLibrary(ctx context.Context, src VideoSource, q VideoLibraryQuery) *VideoLibraryView {
	if q.Mode != ModeAll {
		q.Mode = ModeRecommended
	}
	if q.UserID == "" {
		return &VideoLibraryView{Query: q, Prompt: true}
	}

	var (
		wg       sync.WaitGroup
		stats    *model.VideoStats
		statsErr error
		videos   []model.Video
		listErr  error
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		stats, statsErr = src.GetVideoStats(ctx, q.UserID)
	}()
	go func() {
		defer wg.Done()
		if q.Mode == ModeRecommended {
			videos, listErr = src.GetRecommendations(ctx, q.UserID, libraryPageSize, 0)
		} else {
			videos, listErr = src.GetUserVideos(ctx, q.UserID, backend.VideoQuery{
				Limit:        libraryPageSize,
				Category:     q.Category,
				SourceDomain: q.Domain,
				Ranked:       true,
			})
		}
	}()
	wg.Wait()

	v := &VideoLibraryView{Query: q}
	if statsErr != nil {
		// Stats are decorative; the gallery still renders without them.
		middleware.Logger.Warn().Err(statsErr).Msg("video library: stats load failed")
	} else {
		v.Stats = newStatsView(stats, q)
	}
	if listErr != nil {
		middleware.Logger.Error().Err(listErr).Msg("video library: list load failed")
		v.Err = true
	} else {
		v.Videos = videoCards(videos)
	}
	return v
}

func newStatsView(stats *model.VideoStats, q VideoLibraryQuery) *StatsView {
	return &StatsView{
		Total:      stats.Total,
		Categories: filterOptions(stats.ByCategory, q.Category),
		Domains:    filterOptions(stats.ByDomain, q.Domain),
	}
}

func filterOptions(counts map[string]int, selected string) []FilterOption {
	values := make([]string, 0, len(counts))
	for v := range counts {
		values = append(values, v)
	}
	sort.Strings(values)

	opts := make([]FilterOption, 0, len(values))
	for _, v := range values {
		opts = append(opts, FilterOption{Value: v, Count: counts[v], Selected: v == selected})
	}
	return opts
}

func videoCards(videos []model.Video) []VideoCard {
	cards := make([]VideoCard, 0, len(videos))
	for _, video := range videos {
		card := VideoCard{Video: video, Tags: video.Tags}
		if len(card.Tags) > maxCardTags {
			card.Tags = card.Tags[:maxCardTags]
		}
		if video.Score != nil {
			card.HasScore = true
			card.ScorePercent = int(math.Round(*video.Score * 100))
			card.ScoreLabel = ScoreLabel(*video.Score)
			card.ScoreClass = ScoreClass(*video.Score)
			card.Signals = scoreSignals(video.ScoreBreakdown)
		}
		cards = append(cards, card)
	}
	return cards
}

// scoreSignals lists the breakdown components that contributed more than
// minSignalShare, strongest first.
func scoreSignals(breakdown map[string]float64) []string {
	signals := make([]string, 0, len(breakdown))
	for name, share := range breakdown {
		if share > minSignalShare {
			signals = append(signals, name)
		}
	}
	sort.Slice(signals, func(i, j int) bool {
		if breakdown[signals[i]] != breakdown[signals[j]] {
			return breakdown[signals[i]] > breakdown[signals[j]]
		}
		return signals[i] < signals[j]
	})
	return signals
}

// ScoreLabel buckets a recommendation score into its qualitative label.
func ScoreLabel(score float64) string {
	switch {
	case score >= 0.8:
		return "strongly recommended"
	case score >= 0.6:
		return "recommended"
	case score >= 0.4:
		return "possibly of interest"
	default:
		return "general"
	}
}

// ScoreClass picks the badge color for a recommendation score. Its
// thresholds are not the same as ScoreLabel's; the two ladders are
// independent parts of the display contract.
func ScoreClass(score float64) string {
	switch {
	case score >= 0.7:
		return "score-high"
	case score >= 0.5:
		return "score-mid"
	default:
		return "score-low"
	}
}
