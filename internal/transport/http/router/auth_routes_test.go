package router

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"go-lodging-api/internal/core/auth"
	"go-lodging-api/internal/domain"
	"go-lodging-api/internal/identity"
)

// 账号仓库的内存替身；错误口径与 repo 包一致
type memAccounts struct {
	mu   sync.Mutex
	byID map[string]*domain.Account
}

func newMemAccounts() *memAccounts { return &memAccounts{byID: map[string]*domain.Account{}} }

func (m *memAccounts) Create(_ context.Context, a *domain.Account) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, e := range m.byID {
		if e.Email == a.Email {
			return domain.ErrDuplicateEmail
		}
	}
	cp := *a
	m.byID[a.ID] = &cp
	return nil
}
func (m *memAccounts) FindByID(_ context.Context, id string) (*domain.Account, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if a, ok := m.byID[id]; ok {
		cp := *a
		return &cp, nil
	}
	return nil, domain.ErrNotFound
}
func (m *memAccounts) FindByEmail(_ context.Context, email string) (*domain.Account, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, a := range m.byID {
		if a.Email == email {
			cp := *a
			return &cp, nil
		}
	}
	return nil, domain.ErrNotFound
}
func (m *memAccounts) Enable(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if a, ok := m.byID[id]; ok {
		a.Enabled = true
		return nil
	}
	return domain.ErrNotFound
}
func (m *memAccounts) UpdateProfile(_ context.Context, id string, p domain.AccountProfile) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	a, ok := m.byID[id]
	if !ok {
		return domain.ErrNotFound
	}
	a.Email, a.Name = p.Email, p.Name
	a.Furigana, a.PostalCode, a.Address, a.PhoneNumber = p.Furigana, p.PostalCode, p.Address, p.PhoneNumber
	return nil
}
func (m *memAccounts) List(_ context.Context, _ string, _, _ int) ([]domain.Account, int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []domain.Account
	for _, a := range m.byID {
		out = append(out, *a)
	}
	return out, int64(len(out)), nil
}

type memRoles struct{}

func (memRoles) IDByName(_ context.Context, r domain.Role) (uint, error) {
	if r == domain.RoleAdmin {
		return 2, nil
	}
	return 1, nil
}

type memTokens struct {
	mu      sync.Mutex
	byToken map[string]*domain.VerificationToken
}

func newMemTokens() *memTokens {
	return &memTokens{byToken: map[string]*domain.VerificationToken{}}
}
func (m *memTokens) Create(_ context.Context, t *domain.VerificationToken) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *t
	m.byToken[t.Token] = &cp
	return nil
}
func (m *memTokens) FindByToken(_ context.Context, token string) (*domain.VerificationToken, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if t, ok := m.byToken[token]; ok {
		cp := *t
		return &cp, nil
	}
	return nil, domain.ErrNotFound
}

type memMailer struct {
	mu     sync.Mutex
	bodies []string
}

func (m *memMailer) Send(_ context.Context, _, _, body string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.bodies = append(m.bodies, body)
	return nil
}
func (m *memMailer) last() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.bodies) == 0 {
		return ""
	}
	return m.bodies[len(m.bodies)-1]
}

type testEnv struct {
	engine   *gin.Engine
	notifier *identity.SignupNotifier
	mail     *memMailer
	tokens   *memTokens
	accounts *memAccounts
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	accounts := newMemAccounts()
	tokens := newMemTokens()
	mail := &memMailer{}
	notifier := identity.NewSignupNotifier(tokens, mail, zap.NewNop(), 8)
	t.Cleanup(notifier.Close)

	jwter := &auth.JWTer{Secret: []byte("test"), Issuer: "lodging", TTL: time.Minute}
	deps := APIDeps{
		Auth: AuthDeps{
			Registration: identity.NewRegistrationService(accounts, memRoles{}, bcrypt.MinCost),
			Verification: identity.NewVerificationService(tokens, accounts),
			Auth:         identity.NewAuthenticator(accounts),
			Notifier:     notifier,
			Accounts:     accounts,
			JWTer:        jwter,
		},
	}

	r := gin.New()
	api := r.Group("/api/v1")
	public := api.Group("")
	authed := api.Group("")
	mountAuthRoutes(public, authed, deps.Auth)

	return &testEnv{engine: r, notifier: notifier, mail: mail, tokens: tokens, accounts: accounts}
}

func (e *testEnv) do(method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	e.engine.ServeHTTP(w, req)
	return w
}

func TestSignupVerifyLoginFlow(t *testing.T) {
	env := newTestEnv(t)

	// 注册
	w := env.do(http.MethodPost, "/api/v1/auth/signup", `{
		"email": "taro@example.com",
		"password": "password123",
		"passwordConfirmation": "password123",
		"name": "山田太郎"
	}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	// 未验证前不能登录
	w = env.do(http.MethodPost, "/api/v1/auth/login", `{"email":"taro@example.com","password":"password123"}`)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// 等异步通知处理完，从邮件里抠出验证链接
	env.notifier.Close()
	body := env.mail.last()
	idx := strings.Index(body, "token=")
	require.GreaterOrEqual(t, idx, 0, "mail must contain verification link")
	token := strings.TrimSpace(body[idx+len("token="):])

	w = env.do(http.MethodGet, "/api/v1/auth/verify?token="+token, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	// 验证后登录成功并拿到 JWT
	w = env.do(http.MethodPost, "/api/v1/auth/login", `{"email":"TARO@example.com","password":"password123"}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var out struct {
		Data struct {
			Token string `json:"token"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	assert.NotEmpty(t, out.Data.Token)
}

func TestSignup_FieldErrorsInOneResponse(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(http.MethodPost, "/api/v1/auth/signup", `{
		"email": "taro@example.com",
		"password": "password123",
		"passwordConfirmation": "password123",
		"name": "山田太郎"
	}`)
	require.Equal(t, http.StatusOK, w.Code)

	// 重复 email + 密码不一致，一次提交同时报两条
	w = env.do(http.MethodPost, "/api/v1/auth/signup", `{
		"email": "taro@example.com",
		"password": "password123",
		"passwordConfirmation": "different456",
		"name": "山田太郎"
	}`)
	require.Equal(t, http.StatusBadRequest, w.Code)

	var out struct {
		Data struct {
			Fields []struct {
				Field string `json:"field"`
			} `json:"fields"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	require.Len(t, out.Data.Fields, 2)

	fields := []string{out.Data.Fields[0].Field, out.Data.Fields[1].Field}
	assert.Contains(t, fields, "email")
	assert.Contains(t, fields, "password")
}

func TestVerify_BadToken(t *testing.T) {
	env := newTestEnv(t)
	w := env.do(http.MethodGet, "/api/v1/auth/verify?token=bogus", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
