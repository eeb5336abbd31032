package identity

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"go-lodging-api/internal/domain"
	"go-lodging-api/internal/mailer"
	"go-lodging-api/pkg/utils"
)

const mailSubject = "メール認証"
const mailBody = "以下のリンクをクリックして会員登録を完了してください。"

type signupTask struct {
	account *domain.Account
	baseURL string
}

// SignupNotifier 注册成功后的异步旁路：发令牌、发邮件。
// 显式任务队列 + worker，不用全局事件总线。
// Enqueue 必须在账号写入落库之后调用，这是它唯一的顺序契约。
type SignupNotifier struct {
	tokens domain.VerificationTokenRepository
	mail   mailer.Mailer
	log    *zap.Logger

	ch   chan signupTask
	wg   sync.WaitGroup
	once sync.Once
}

func NewSignupNotifier(tokens domain.VerificationTokenRepository, mail mailer.Mailer, l *zap.Logger, queueSize int) *SignupNotifier {
	if queueSize <= 0 {
		queueSize = 64
	}
	n := &SignupNotifier{
		tokens: tokens,
		mail:   mail,
		log:    l,
		ch:     make(chan signupTask, queueSize),
	}
	n.wg.Add(1)
	go n.worker()
	return n
}

// Enqueue 不阻塞调用方的响应路径；队列塞满只记日志，
// 邮件是 best-effort，不回滚已创建的账号
func (n *SignupNotifier) Enqueue(account *domain.Account, baseURL string) {
	select {
	case n.ch <- signupTask{account: account, baseURL: baseURL}:
	default:
		n.log.Warn("signup notify queue full, mail skipped",
			zap.String("account_id", account.ID))
	}
}

// Close 排空队列并停掉 worker；重复调用安全
func (n *SignupNotifier) Close() {
	n.once.Do(func() { close(n.ch) })
	n.wg.Wait()
}

func (n *SignupNotifier) worker() {
	defer n.wg.Done()
	for task := range n.ch {
		n.process(task)
	}
}

func (n *SignupNotifier) process(task signupTask) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	tok := utils.NewVerificationToken()
	vt := &domain.VerificationToken{
		ID:        utils.NewID(),
		AccountID: task.account.ID,
		Token:     tok,
	}
	if err := n.tokens.Create(ctx, vt); err != nil {
		// 令牌没落库就不发链接；失败不向注册方传播
		n.log.Error("persist verification token failed",
			zap.String("account_id", task.account.ID), zap.Error(err))
		return
	}

	link := task.baseURL + "/verify?token=" + tok
	if err := n.mail.Send(ctx, task.account.Email, mailSubject, mailBody+"\n"+link); err != nil {
		// 邮件投递失败同样只记日志，注册流程不感知
		n.log.Error("send verification mail failed",
			zap.String("account_id", task.account.ID), zap.Error(err))
	}
}
