package collections

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOrderedMapSetGet(t *testing.T) {
	m := NewOrderedMap(4)
	require.True(t, m.Set("a", 1))
	require.True(t, m.Set("b", 2))
	require.False(t, m.Set("a", 3))

	v, ok := m.Get("a")
	require.True(t, ok)
	require.Equal(t, 3, v)

	_, ok = m.Get("missing")
	require.False(t, ok)
	require.Equal(t, 2, m.Len())
}

func TestOrderedMapDelete(t *testing.T) {
	m := NewOrderedMap(0)
	m.Set("a", 1)
	v, ok := m.Delete("a")
	require.True(t, ok)
	require.Equal(t, 1, v)
	_, ok = m.Delete("a")
	require.False(t, ok)
	require.Equal(t, 0, m.Len())
}

func TestOrderedMapRange(t *testing.T) {
	m := NewOrderedMap(0)
	m.Set("a", 1)
	m.Set("b", 2)
	m.Set("c", 3)

	var inc []string
	m.RangeInc(func(k, v interface{}) bool {
		inc = append(inc, k.(string))
		return true
	})
	require.Equal(t, []string{"a", "b", "c"}, inc)

	var dec []string
	m.RangeDec(func(k, v interface{}) bool {
		dec = append(dec, k.(string))
		return true
	})
	require.Equal(t, []string{"c", "b", "a"}, dec)
}

func TestOrderedMapRangeDeletes(t *testing.T) {
	m := NewOrderedMap(0)
	m.Set("a", 1)
	m.Set("b", 2)
	m.RangeInc(func(k, v interface{}) bool {
		m.Delete(k)
		return true
	})
	require.Equal(t, 0, m.Len())
}
