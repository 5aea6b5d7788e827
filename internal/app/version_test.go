package app

import (
	"runtime/debug"
	"strings"
	"testing"
)

func TestVcsStamp(t *testing.T) {
	settings := []debug.BuildSetting{
		{Key: "vcs.revision", Value: "0123456789abcdef0123"},
		{Key: "vcs.time", Value: "2026-10-01T12:00:00Z"},
		{Key: "vcs.modified", Value: "false"},
	}

	tests := []struct {
		name       string
		settings   []debug.BuildSetting
		commit     string
		built      string
		wantCommit string
		wantBuilt  string
	}{
		{"from vcs", settings, "unknown", "unknown", "0123456789ab", "2026-10-01T12:00:00Z"},
		{"ldflags win", settings, "abc123", "yesterday", "abc123", "yesterday"},
		{"no vcs", nil, "unknown", "unknown", "unknown", "unknown"},
		{
			"dirty tree",
			[]debug.BuildSetting{{Key: "vcs.revision", Value: "deadbeef"}, {Key: "vcs.modified", Value: "true"}},
			"unknown", "unknown", "deadbeef-dirty", "unknown",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			commit, built := vcsStamp(tt.settings, tt.commit, tt.built)
			if commit != tt.wantCommit || built != tt.wantBuilt {
				t.Errorf("vcsStamp() = %q, %q; want %q, %q", commit, built, tt.wantCommit, tt.wantBuilt)
			}
		})
	}
}

func TestBuildVersion_StartsWithVersion(t *testing.T) {
	if got := BuildVersion(); !strings.HasPrefix(got, Version+" (commit: ") {
		t.Errorf("BuildVersion() = %q", got)
	}
}
