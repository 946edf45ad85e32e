package compileinfo

import (
	"runtime/debug"
	"strings"
	"testing"
)

func TestFromBuildInfo(t *testing.T) {
	bi := &debug.BuildInfo{
		GoVersion: "go1.21.0",
		Path:      "github.com/carbocation/htsviz/cmd/htsviz",
		Main:      debug.Module{Version: "v0.3.0"},
		Settings: []debug.BuildSetting{
			{Key: "vcs.revision", Value: "abc123"},
			{Key: "vcs.time", Value: "2025-12-10T00:00:00Z"},
			{Key: "vcs.modified", Value: "true"},
		},
	}

	ci := fromBuildInfo(bi)
	if ci.Commit != "abc123" || !ci.Modified || ci.Version != "v0.3.0" {
		t.Errorf("Unexpected compile info %+v", ci)
	}

	s := ci.String()
	if !strings.Contains(s, "htsviz v0.3.0") || !strings.Contains(s, "modified") {
		t.Errorf("Unexpected description %q", s)
	}
}

func TestEmptyCompileInfo(t *testing.T) {
	if s := (CompileInfo{}).String(); !strings.Contains(s, "unavailable") {
		t.Errorf("Unexpected description %q", s)
	}
}
