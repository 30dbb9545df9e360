package pythonparser

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseModuleCached_Hit(t *testing.T) {
	PurgeParseCache()
	src := []byte("x = 1\n")

	a, err := ParseModuleCached(src, DefaultOptions)
	require.NoError(t, err)
	b, err := ParseModuleCached(src, DefaultOptions)
	require.NoError(t, err)
	assert.Same(t, a, b)

	// a different buffer with the same bytes still hits
	c, err := ParseModuleCached([]byte("x = 1\n"), DefaultOptions)
	require.NoError(t, err)
	assert.Same(t, a, c)
}

func TestParseModuleCached_Purge(t *testing.T) {
	PurgeParseCache()
	src := []byte("x = 1\n")

	a, err := ParseModuleCached(src, DefaultOptions)
	require.NoError(t, err)
	PurgeParseCache()
	b, err := ParseModuleCached(src, DefaultOptions)
	require.NoError(t, err)
	assert.NotSame(t, a, b)
}

func TestParseModuleCached_Error(t *testing.T) {
	PurgeParseCache()
	_, err := ParseModuleCached([]byte("x = )\n"), DefaultOptions)
	assert.Error(t, err)
}

func TestParseModuleCached_Eviction(t *testing.T) {
	PurgeParseCache()
	src := []byte("first = 1\n")
	a, err := ParseModuleCached(src, DefaultOptions)
	require.NoError(t, err)

	for i := 0; i < parseCacheSize; i++ {
		_, err := ParseModuleCached([]byte(fmt.Sprintf("x%d = 1\n", i)), DefaultOptions)
		require.NoError(t, err)
	}

	// the oldest entry is gone; reparsing yields a fresh result
	b, err := ParseModuleCached(src, DefaultOptions)
	require.NoError(t, err)
	assert.NotSame(t, a, b)
}

func TestHashSource(t *testing.T) {
	assert.Equal(t, hashSource([]byte("abc")), hashSource([]byte("abc")))
	assert.NotEqual(t, hashSource([]byte("abc")), hashSource([]byte("abd")))
}
