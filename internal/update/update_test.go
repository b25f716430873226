package update

import (
	"context"
	"testing"
)

func TestNewer(t *testing.T) {
	tests := []struct {
		current, latest string
		want            bool
	}{
		{"dev", "1.0.0", true},
		{"1.0.0", "1.0.1", true},
		{"v1.2.0", "1.10.0", true},
		{"1.2.0", "1.2.0", false},
		{"2.0.0", "1.9.9", false},
		{"1.0.0", "garbage", false},
	}
	for _, tt := range tests {
		if got := Newer(tt.current, tt.latest); got != tt.want {
			t.Errorf("Newer(%q, %q) = %v, want %v", tt.current, tt.latest, got, tt.want)
		}
	}
}

func TestCheckDevVersion(t *testing.T) {
	// Needs network access to GitHub; skip when unavailable.
	res, err := Check(context.Background(), "dev")
	if err != nil {
		t.Skipf("skipping (likely no network): %v", err)
	}
	if res.CurrentVersion != "dev" {
		t.Errorf("CurrentVersion = %q, want dev", res.CurrentVersion)
	}
	if res.LatestVersion != "" && !res.UpdateAvailable {
		t.Error("a dev build should always see a release as newer")
	}
}
