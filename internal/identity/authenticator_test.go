package identity

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-lodging-api/internal/domain"
)

func TestAuthenticate_EnabledAccount(t *testing.T) {
	accounts := newMemAccounts()
	a := seedAccount(t, accounts)
	require.NoError(t, accounts.Enable(context.Background(), a.ID))

	svc := NewAuthenticator(accounts)

	// 邮箱大小写无关
	got, err := svc.Authenticate(context.Background(), "TARO@Example.com", "password123")
	require.NoError(t, err)
	assert.Equal(t, a.ID, got.ID)
}

func TestAuthenticate_DisabledAccountRejected(t *testing.T) {
	accounts := newMemAccounts()
	seedAccount(t, accounts)

	svc := NewAuthenticator(accounts)

	// 密码正确但账号未启用，仍然拒绝
	_, err := svc.Authenticate(context.Background(), "taro@example.com", "password123")
	assert.ErrorIs(t, err, domain.ErrAuthenticationFailed)
}

func TestAuthenticate_WrongPassword(t *testing.T) {
	accounts := newMemAccounts()
	a := seedAccount(t, accounts)
	require.NoError(t, accounts.Enable(context.Background(), a.ID))

	svc := NewAuthenticator(accounts)
	_, err := svc.Authenticate(context.Background(), "taro@example.com", "nope")
	assert.ErrorIs(t, err, domain.ErrAuthenticationFailed)
}

func TestAuthenticate_UnknownEmail(t *testing.T) {
	svc := NewAuthenticator(newMemAccounts())
	_, err := svc.Authenticate(context.Background(), "nobody@example.com", "whatever")
	assert.ErrorIs(t, err, domain.ErrAuthenticationFailed)
}
