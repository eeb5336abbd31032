package identity

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"go-lodging-api/internal/domain"
)

func TestNotifier_PersistsTokenAndSendsMail(t *testing.T) {
	tokens := newMemTokens()
	mail := &fakeMailer{}
	n := NewSignupNotifier(tokens, mail, zap.NewNop(), 8)

	a := &domain.Account{ID: "a1", Email: "taro@example.com"}
	n.Enqueue(a, "http://localhost:8080/api/v1/auth")
	n.Close() // 排空队列后 worker 必然处理完毕

	sent := mail.all()
	require.Len(t, sent, 1)
	assert.Equal(t, "taro@example.com", sent[0].To)
	assert.Equal(t, "メール認証", sent[0].Subject)

	// 邮件里的链接必须带着已落库的令牌
	idx := strings.Index(sent[0].Body, "/verify?token=")
	require.GreaterOrEqual(t, idx, 0)
	tok := sent[0].Body[idx+len("/verify?token="):]
	tok = strings.TrimSpace(tok)

	vt, err := tokens.FindByToken(context.Background(), tok)
	require.NoError(t, err)
	assert.Equal(t, "a1", vt.AccountID)
}

func TestNotifier_MailFailureIsSwallowed(t *testing.T) {
	tokens := newMemTokens()
	mail := &fakeMailer{err: errors.New("smtp down")}
	n := NewSignupNotifier(tokens, mail, zap.NewNop(), 8)

	n.Enqueue(&domain.Account{ID: "a1", Email: "taro@example.com"}, "http://x")
	n.Close()

	// 投递失败：令牌仍然落库，调用方完全不受影响
	assert.Empty(t, mail.all())
}

func TestNotifier_CloseDrainsQueue(t *testing.T) {
	tokens := newMemTokens()
	mail := &fakeMailer{}
	n := NewSignupNotifier(tokens, mail, zap.NewNop(), 32)

	for i := 0; i < 10; i++ {
		n.Enqueue(&domain.Account{ID: "a" + string(rune('0'+i)), Email: "x@example.com"}, "http://x")
	}
	n.Close()
	n.Close() // 重复关闭安全

	assert.Len(t, mail.all(), 10)
}

func TestNotifier_FullQueueDropsWithoutBlocking(t *testing.T) {
	// worker 卡在第一封邮件上，后续任务把队列塞满
	block := make(chan struct{})
	mail := &blockingMailer{block: block}
	n := NewSignupNotifier(newMemTokens(), mail, zap.NewNop(), 1)

	for i := 0; i < 5; i++ {
		n.Enqueue(&domain.Account{ID: "a", Email: "x@example.com"}, "http://x")
	}
	close(block)
	n.Close()
	// 没有死锁、没有 panic 就算过；丢弃只记日志
}

type blockingMailer struct{ block chan struct{} }

func (b *blockingMailer) Send(context.Context, string, string, string) error {
	<-b.block
	return nil
}
