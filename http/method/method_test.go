package method

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMethod(t *testing.T) {
	for _, method := range List {
		assert.Equal(t, method.String(), Parse(method.String()).String())
	}

	require.Equal(t, Unknown, Parse("BREW"))
	require.Equal(t, Unknown, Parse("get"))
}

func TestIs(t *testing.T) {
	require.True(t, Is("HEAD", HEAD))
	require.True(t, Is("head", HEAD))
	require.True(t, Is("Connect", CONNECT))
	require.False(t, Is("HEADS", HEAD))
	require.False(t, Is("", Unknown))
}
