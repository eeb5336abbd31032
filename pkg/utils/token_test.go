package utils

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewVerificationToken(t *testing.T) {
	tok := NewVerificationToken()
	assert.Len(t, tok, 32)
	_, err := hex.DecodeString(tok)
	require.NoError(t, err)
}

func TestNewVerificationToken_Unique(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		tok := NewVerificationToken()
		assert.False(t, seen[tok], "token collision")
		seen[tok] = true
	}
}

func TestNewID(t *testing.T) {
	id := NewID()
	assert.Len(t, id, 36) // uuid 标准文本格式
	assert.NotEqual(t, id, NewID())
}
