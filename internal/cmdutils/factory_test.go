//go:build !integration

package cmdutils

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/prism-view/prism/internal/env"
	"github.com/prism-view/prism/internal/iostreams"
)

func TestNewFactory(t *testing.T) {
	ios := iostreams.New()
	snapshot := env.Snapshot{Pagers: env.Pagers{Fallback: "less"}}
	buildInfo := BuildInfo{Version: "v1.2.3", Commit: "deadbeef", Platform: "linux"}

	f := NewFactory(ios, snapshot, buildInfo)

	assert.Same(t, ios, f.IO())
	assert.Equal(t, snapshot, f.Env())
	assert.Equal(t, buildInfo, f.BuildInfo())
}

func TestBuildInfoUserAgent(t *testing.T) {
	assert.Equal(t, "prism/1.2.3 (linux)", BuildInfo{Version: "v1.2.3", Platform: "linux"}.UserAgent())

	got := BuildInfo{Version: "0.1.0"}.UserAgent()
	assert.Contains(t, got, "prism/0.1.0")
}
