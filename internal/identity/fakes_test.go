package identity

import (
	"context"
	"strings"
	"sync"
	"time"

	"go-lodging-api/internal/domain"
)

// 内存实现，行为对齐 repo 包：找不到返回 ErrNotFound，
// 唯一冲突返回 ErrDuplicateEmail
type memAccounts struct {
	mu   sync.Mutex
	byID map[string]*domain.Account
}

func newMemAccounts() *memAccounts {
	return &memAccounts{byID: map[string]*domain.Account{}}
}

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
	a, ok := m.byID[id]
	if !ok {
		return domain.ErrNotFound
	}
	a.Enabled = true
	a.UpdatedAt = time.Now()
	return nil
}

func (m *memAccounts) UpdateProfile(_ context.Context, id string, p domain.AccountProfile) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	a, ok := m.byID[id]
	if !ok {
		return domain.ErrNotFound
	}
	for oid, o := range m.byID {
		if oid != id && o.Email == p.Email {
			return domain.ErrDuplicateEmail
		}
	}
	a.Email, a.Name, a.Furigana = p.Email, p.Name, p.Furigana
	a.PostalCode, a.Address, a.PhoneNumber = p.PostalCode, p.Address, p.PhoneNumber
	a.UpdatedAt = time.Now()
	return nil
}

func (m *memAccounts) List(_ context.Context, keyword string, offset, limit int) ([]domain.Account, int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []domain.Account
	for _, a := range m.byID {
		if keyword == "" || strings.Contains(a.Email, keyword) || strings.Contains(a.Name, keyword) {
			out = append(out, *a)
		}
	}
	total := int64(len(out))
	if offset > len(out) {
		offset = len(out)
	}
	end := offset + limit
	if limit <= 0 || end > len(out) {
		end = len(out)
	}
	return out[offset:end], total, nil
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

type sentMail struct {
	To      string
	Subject string
	Body    string
}

type fakeMailer struct {
	mu   sync.Mutex
	sent []sentMail
	err  error
}

func (f *fakeMailer) Send(_ context.Context, to, subject, body string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, sentMail{To: to, Subject: subject, Body: body})
	return nil
}

func (f *fakeMailer) all() []sentMail {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]sentMail(nil), f.sent...)
}
