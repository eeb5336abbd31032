// Package mailer 定义外发邮件的协作边界。
// 投递本身是外部系统的事：没有送达保证，也不在这里重试。
package mailer

import (
	"context"

	"go.uber.org/zap"
)

type Mailer interface {
	Send(ctx context.Context, to, subject, body string) error
}

// ZapMailer 开发/测试用实现：把邮件打进日志
type ZapMailer struct {
	From string
	log  *zap.Logger
}

func NewZapMailer(from string, l *zap.Logger) *ZapMailer {
	return &ZapMailer{From: from, log: l}
}

func (m *ZapMailer) Send(_ context.Context, to, subject, body string) error {
	m.log.Info("mail send",
		zap.String("from", m.From),
		zap.String("to", to),
		zap.String("subject", subject),
		zap.String("body", body),
	)
	return nil
}
