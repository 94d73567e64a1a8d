package view

import (
	"context"
	"testing"

	"github.com/photinia-ana/kalkman-web/internal/backend"
	"github.com/photinia-ana/kalkman-web/internal/model"
)

type fakeCompareSource struct {
	result *model.SimilarityResult
	err    error
	calls  int
}

func (f *fakeCompareSource) CompareUsers(ctx context.Context, user1, user2 string) (*model.SimilarityResult, error) {
	f.calls++
	return f.result, f.err
}

func TestBuildCompare_NotSubmittedDoesNothing(t *testing.T) {
	src := &fakeCompareSource{}

	v := BuildCompare(context.Background(), src, "", "", false)

	if v.Submitted || v.ValidationErr != "" || v.HasResult {
		t.Errorf("idle form should be empty: %+v", v)
	}
	if src.calls != 0 {
		t.Errorf("backend called %d times, want 0", src.calls)
	}
}

func TestBuildCompare_EmptyInputShortCircuits(t *testing.T) {
	tests := []struct {
		name  string
		user1 string
		user2 string
	}{
		{"both empty", "", ""},
		{"first empty", "", "bob"},
		{"second empty", "alice", ""},
		{"whitespace only", "   ", "bob"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := &fakeCompareSource{}

			v := BuildCompare(context.Background(), src, tt.user1, tt.user2, true)

			if v.ValidationErr == "" {
				t.Error("expected a validation error")
			}
			if src.calls != 0 {
				t.Errorf("backend called %d times, want 0", src.calls)
			}
		})
	}
}

func TestBuildCompare_TierRendering(t *testing.T) {
	tests := []struct {
		similarity float64
		percent    string
		tier       string
		class      string
	}{
		{0.85, "85.0%", "very similar", "tier-high"},
		{0.7, "70.0%", "very similar", "tier-high"},
		{0.5, "50.0%", "moderate", "tier-mid"},
		{0.4, "40.0%", "moderate", "tier-mid"},
		{0.2, "20.0%", "low", "tier-low"},
	}

	for _, tt := range tests {
		t.Run(tt.percent, func(t *testing.T) {
			src := &fakeCompareSource{result: &model.SimilarityResult{Similarity: tt.similarity}}

			v := BuildCompare(context.Background(), src, "alice", "bob", true)

			if !v.HasResult {
				t.Fatal("expected a result")
			}
			if v.Percent != tt.percent {
				t.Errorf("Percent = %q, want %q", v.Percent, tt.percent)
			}
			if v.Tier != tt.tier {
				t.Errorf("Tier = %q, want %q", v.Tier, tt.tier)
			}
			if v.TierClass != tt.class {
				t.Errorf("TierClass = %q, want %q", v.TierClass, tt.class)
			}
		})
	}
}

func TestBuildCompare_BackendErrorSurfacesMessage(t *testing.T) {
	src := &fakeCompareSource{err: &backend.RequestError{
		Operation:  "compareUsers",
		StatusCode: 404,
		Message:    "unknown user",
	}}

	v := BuildCompare(context.Background(), src, "alice", "bob", true)

	if v.HasResult {
		t.Fatal("failed comparison must not carry a result")
	}
	if v.Err != "unknown user" {
		t.Errorf("Err = %q, want the backend message", v.Err)
	}
}
