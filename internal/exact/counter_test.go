package exact

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewCounter(t *testing.T) {
	c := NewCounter(0)

	require.NotNil(t, c)
	require.Zero(t, c.Count())
	require.Zero(t, c.Collisions())
}

func TestCounter_Add(t *testing.T) {
	c := NewCounter(16)

	require.True(t, c.Add("a"))
	require.True(t, c.Add("b"))
	require.False(t, c.Add("a"))
	require.True(t, c.Add(""))
	require.False(t, c.Add(""))

	require.Equal(t, 3, c.Count())
	require.Zero(t, c.Collisions())
}

func TestCounter_Collision(t *testing.T) {
	c := NewCounter(4)

	require.True(t, c.add("cpu.usage", 0x1234))
	require.True(t, c.add("cpu.idle", 0x1234), "different item with same ID is new")
	require.False(t, c.add("cpu.idle", 0x1234))
	require.False(t, c.add("cpu.usage", 0x1234))

	require.Equal(t, 2, c.Count())
	require.Equal(t, 1, c.Collisions())
}

func TestCounter_ManyItems(t *testing.T) {
	c := NewCounter(1000)
	for range 3 {
		for i := range 1000 {
			c.Add(strconv.Itoa(i))
		}
	}
	require.Equal(t, 1000, c.Count())
}
