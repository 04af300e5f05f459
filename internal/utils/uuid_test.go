package utils

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUUIDGenerator_Generate(t *testing.T) {
	g := NewUUIDGenerator()

	token, err := g.Generate()
	require.NoError(t, err)

	parsed, err := uuid.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(4), parsed.Version())
}

func TestUUIDGenerator_Unique(t *testing.T) {
	g := NewUUIDGenerator()

	seen := make(map[string]struct{}, 100)
	for range 100 {
		token, err := g.Generate()
		require.NoError(t, err)

		_, dup := seen[token]
		require.False(t, dup, "token %s generated twice", token)
		seen[token] = struct{}{}
	}
}
