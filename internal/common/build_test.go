package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetVersion_UsesLinkerValues(t *testing.T) {
	origVersion, origCommit := Version, GitCommit
	t.Cleanup(func() {
		Version, GitCommit = origVersion, origCommit
	})

	Version = "1.2.3"
	GitCommit = "abc1234"

	version, commit, ok := GetModuleBuildInfo()
	assert.True(t, ok)
	assert.Equal(t, "1.2.3", version)
	assert.Equal(t, "abc1234", commit)

	assert.Equal(t, "1.2.3 (git: abc1234)", GetVersion())
}
