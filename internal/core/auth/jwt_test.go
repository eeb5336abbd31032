package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTer_IssueParse(t *testing.T) {
	j := &JWTer{Secret: []byte("test-secret"), Issuer: "lodging", TTL: time.Minute}

	tok, err := j.Issue("acc-1", "GENERAL")
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	c, err := j.Parse(tok)
	require.NoError(t, err)
	assert.Equal(t, "acc-1", c.UID)
	assert.Equal(t, "GENERAL", c.Role)
}

func TestJWTer_WrongSecretRejected(t *testing.T) {
	j := &JWTer{Secret: []byte("secret-a"), Issuer: "lodging", TTL: time.Minute}
	tok, err := j.Issue("acc-1", "ADMIN")
	require.NoError(t, err)

	other := &JWTer{Secret: []byte("secret-b"), Issuer: "lodging", TTL: time.Minute}
	_, err = other.Parse(tok)
	assert.Error(t, err)
}

func TestJWTer_WrongIssuerRejected(t *testing.T) {
	j := &JWTer{Secret: []byte("s"), Issuer: "a", TTL: time.Minute}
	tok, err := j.Issue("acc-1", "GENERAL")
	require.NoError(t, err)

	other := &JWTer{Secret: []byte("s"), Issuer: "b", TTL: time.Minute}
	_, err = other.Parse(tok)
	assert.Error(t, err)
}

func TestJWTer_GarbageRejected(t *testing.T) {
	j := &JWTer{Secret: []byte("s"), Issuer: "a", TTL: time.Minute}
	_, err := j.Parse("not.a.jwt")
	assert.Error(t, err)
}
