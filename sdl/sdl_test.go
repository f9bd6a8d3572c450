package sdl

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadLibraryFailureLeavesDefaultSearchUsable(t *testing.T) {
	err := LoadLibrary("/nonexistent/libSDL3.so")
	require.Error(t, err)

	// Nothing latched: a later native call would still run the default
	// soname search instead of repeating this failure.
	libMu.Lock()
	defer libMu.Unlock()
	assert.Nil(t, lib)
	assert.NoError(t, libErr)
}

func TestLoadLibraryFailureCanBeRetried(t *testing.T) {
	err := LoadLibrary("/nonexistent/libSDL3.so")
	require.Error(t, err)

	err = LoadLibrary("/still/nonexistent/libSDL3.so")
	require.Error(t, err)
	assert.NotContains(t, err.Error(), "already loaded")
}
