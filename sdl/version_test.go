package sdl

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVersionNum(t *testing.T) {
	v := VersionNum(3, 2, 14)
	assert.Equal(t, 3002014, v)
	assert.Equal(t, 3, VersionNumMajor(v))
	assert.Equal(t, 2, VersionNumMinor(v))
	assert.Equal(t, 14, VersionNumMicro(v))
}

func TestVersionString(t *testing.T) {
	assert.Equal(t, "3.2.14", VersionString(VersionNum(3, 2, 14)))
	assert.Equal(t, "3.0.0", VersionString(VersionNum(3, 0, 0)))
}

func TestCompiledVersion(t *testing.T) {
	v := VersionNum(MAJOR_VERSION, MINOR_VERSION, MICRO_VERSION)
	assert.GreaterOrEqual(t, VersionNumMajor(v), 3)
}
