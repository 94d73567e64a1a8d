package view

import (
	"context"
	"errors"
	"testing"

	"github.com/photinia-ana/kalkman-web/internal/model"
)

type fakeProfileSource struct {
	profiles map[string]*model.UserProfile
	allErr   error

	profile *model.UserProfile
	oneErr  error

	allCalls int
	oneCalls int
}

func (f *fakeProfileSource) GetAllProfiles(ctx context.Context) (map[string]*model.UserProfile, error) {
	f.allCalls++
	return f.profiles, f.allErr
}

func (f *fakeProfileSource) GetUserProfile(ctx context.Context, userID string) (*model.UserProfile, error) {
	f.oneCalls++
	return f.profile, f.oneErr
}

func testProfile(id string, ratings int, avg float64, sentiment string) *model.UserProfile {
	return &model.UserProfile{
		UserID:       id,
		TotalRatings: ratings,
		AverageScore: avg,
		Sentiment:    model.SentimentAnalysis{OverallSentiment: sentiment},
	}
}

func TestBuildDashboard_Aggregates(t *testing.T) {
	src := &fakeProfileSource{profiles: map[string]*model.UserProfile{
		"a": testProfile("a", 10, 8.0, "positive"),
		"b": testProfile("b", 20, 6.0, "neutral"),
		"c": testProfile("c", 5, 7.0, "negative"),
	}}

	v := BuildDashboard(context.Background(), src)

	if v.Err {
		t.Fatal("unexpected error state")
	}
	if v.UserCount != 3 {
		t.Errorf("UserCount = %d, want 3", v.UserCount)
	}
	if v.TotalRatings != 35 {
		t.Errorf("TotalRatings = %d, want 35", v.TotalRatings)
	}
	if v.AverageScore != "7.0" {
		t.Errorf("AverageScore = %q, want 7.0", v.AverageScore)
	}
}

func TestBuildDashboard_EmptyShowsZeroAverage(t *testing.T) {
	src := &fakeProfileSource{profiles: map[string]*model.UserProfile{}}

	v := BuildDashboard(context.Background(), src)

	if v.UserCount != 0 {
		t.Errorf("UserCount = %d, want 0", v.UserCount)
	}
	if v.AverageScore != "0" {
		t.Errorf("AverageScore = %q, want 0", v.AverageScore)
	}
	if len(v.Preview) != 0 {
		t.Errorf("Preview should be empty, got %d entries", len(v.Preview))
	}
}

func TestBuildDashboard_PreviewCappedAtFive(t *testing.T) {
	profiles := make(map[string]*model.UserProfile)
	for _, id := range []string{"a", "b", "c", "d", "e", "f", "g"} {
		profiles[id] = testProfile(id, 1, 5.0, "neutral")
	}
	src := &fakeProfileSource{profiles: profiles}

	v := BuildDashboard(context.Background(), src)

	if len(v.Preview) != DashboardPreviewSize {
		t.Errorf("Preview has %d entries, want %d", len(v.Preview), DashboardPreviewSize)
	}
}

func TestBuildDashboard_BackendFailure(t *testing.T) {
	src := &fakeProfileSource{allErr: errors.New("boom")}

	v := BuildDashboard(context.Background(), src)

	if !v.Err {
		t.Fatal("expected error state")
	}
	if v.AverageScore != "0" {
		t.Errorf("error state AverageScore = %q, want 0", v.AverageScore)
	}
}

func TestProfilePreview_ShortensLongIDs(t *testing.T) {
	p := newProfilePreview(testProfile("0123456789abcdef", 1, 5.0, "positive"))
	if p.ShortID != "01234567…" {
		t.Errorf("ShortID = %q", p.ShortID)
	}

	short := newProfilePreview(testProfile("abc", 1, 5.0, "positive"))
	if short.ShortID != "abc" {
		t.Errorf("short ID should pass through, got %q", short.ShortID)
	}
}
