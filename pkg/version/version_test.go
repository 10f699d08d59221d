package version

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"v1.2.3", "1.2.3"},
		{"1.2", "1.2.0"},
		{"v2", "2.0.0"},
		{"1.0.0-rc.1", "1.0.0-rc.1"},
		{"1.0.0+build.5", "1.0.0+build.5"},
		{"dev", "dev"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.in))
		})
	}
}

func TestGetVersion(t *testing.T) {
	assert.Equal(t, "0.1.0-dev", GetVersion())
	assert.True(t, IsPrerelease())
}

func TestIsPrerelease_Release(t *testing.T) {
	orig := version
	t.Cleanup(func() { version = orig })

	version = "v1.4.0"
	assert.False(t, IsPrerelease())
	assert.Equal(t, "1.4.0", GetVersion())

	version = "not-a-version"
	assert.False(t, IsPrerelease())
	assert.Equal(t, "not-a-version", GetVersion())
}

func TestInfo(t *testing.T) {
	info := Info()
	assert.Contains(t, info, "fuelco2 0.1.0-dev (prerelease)\n")
	assert.Contains(t, info, "commit: unknown")
	assert.Contains(t, info, "go: go")
}

func TestInfo_Release(t *testing.T) {
	orig := version
	t.Cleanup(func() { version = orig })

	version = "v1.4.0"
	assert.True(t, strings.HasPrefix(Info(), "fuelco2 1.4.0\n"))
}
