package identity

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"go-lodging-api/internal/domain"
	"go-lodging-api/pkg/utils"
)

func seedAccount(t *testing.T, accounts *memAccounts) *domain.Account {
	t.Helper()
	svc := NewRegistrationService(accounts, memRoles{}, bcrypt.MinCost)
	a, err := svc.Register(context.Background(), RegisterInput{
		Email:                "taro@example.com",
		Password:             "password123",
		PasswordConfirmation: "password123",
		Name:                 "太郎",
	})
	require.NoError(t, err)
	return a
}

func TestVerify_EnablesAccount(t *testing.T) {
	accounts := newMemAccounts()
	tokens := newMemTokens()
	a := seedAccount(t, accounts)

	tok := utils.NewVerificationToken()
	require.NoError(t, tokens.Create(context.Background(), &domain.VerificationToken{
		ID: utils.NewID(), AccountID: a.ID, Token: tok,
	}))

	svc := NewVerificationService(tokens, accounts)
	got, err := svc.Verify(context.Background(), tok)
	require.NoError(t, err)
	assert.Equal(t, a.ID, got.ID)
	assert.True(t, got.Enabled)

	stored, err := accounts.FindByID(context.Background(), a.ID)
	require.NoError(t, err)
	assert.True(t, stored.Enabled, "enable must be persisted")
}

func TestVerify_UnknownTokenChangesNothing(t *testing.T) {
	accounts := newMemAccounts()
	a := seedAccount(t, accounts)

	svc := NewVerificationService(newMemTokens(), accounts)
	_, err := svc.Verify(context.Background(), "deadbeef")
	assert.ErrorIs(t, err, domain.ErrInvalidToken)

	stored, err := accounts.FindByID(context.Background(), a.ID)
	require.NoError(t, err)
	assert.False(t, stored.Enabled)
}

func TestVerify_Idempotent(t *testing.T) {
	accounts := newMemAccounts()
	tokens := newMemTokens()
	a := seedAccount(t, accounts)

	tok := utils.NewVerificationToken()
	require.NoError(t, tokens.Create(context.Background(), &domain.VerificationToken{
		ID: utils.NewID(), AccountID: a.ID, Token: tok,
	}))

	svc := NewVerificationService(tokens, accounts)
	_, err := svc.Verify(context.Background(), tok)
	require.NoError(t, err)

	// 同一令牌再来一次：不报错，账号保持启用
	got, err := svc.Verify(context.Background(), tok)
	require.NoError(t, err)
	assert.True(t, got.Enabled)
}

func TestVerify_TokenForMissingAccount(t *testing.T) {
	tokens := newMemTokens()
	tok := utils.NewVerificationToken()
	require.NoError(t, tokens.Create(context.Background(), &domain.VerificationToken{
		ID: utils.NewID(), AccountID: "gone", Token: tok,
	}))

	svc := NewVerificationService(tokens, newMemAccounts())
	_, err := svc.Verify(context.Background(), tok)
	assert.ErrorIs(t, err, domain.ErrInvalidToken)
}
