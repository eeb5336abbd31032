package identity

import (
	"strings"

	"go-lodging-api/internal/domain"
)

// AuthState 每个请求上的认证状态机：Unauthenticated 或 Authenticated{role}
type AuthState struct {
	Authenticated bool
	Role          domain.Role
}

func Unauthenticated() AuthState { return AuthState{} }

func Authenticated(role domain.Role) AuthState {
	return AuthState{Authenticated: true, Role: role}
}

// Decision 授权结果
type Decision int

const (
	Allow Decision = iota
	// DenyRedirectLogin 未登录访问受保护路径 → 引导去登录
	DenyRedirectLogin
	// DenyForbidden 已登录但角色不够 → 403，不再引导登录
	DenyForbidden
)

// Gate 逐请求的授权决策。规则按固定优先级求值，
// 命中即返回，不继续往下落：
//  1. 公共前缀 → 放行
//  2. admin 前缀 → 仅 Authenticated{ADMIN}
//  3. 其余 → 任意已认证角色
type Gate struct {
	publicPrefixes []string
	adminPrefix    string
}

func NewGate(publicPrefixes []string, adminPrefix string) *Gate {
	return &Gate{publicPrefixes: publicPrefixes, adminPrefix: adminPrefix}
}

func (g *Gate) Decide(path string, st AuthState) Decision {
	for _, p := range g.publicPrefixes {
		if strings.HasPrefix(path, p) {
			return Allow
		}
	}
	if g.adminPrefix != "" && strings.HasPrefix(path, g.adminPrefix) {
		if !st.Authenticated {
			return DenyRedirectLogin
		}
		if st.Role != domain.RoleAdmin {
			return DenyForbidden
		}
		return Allow
	}
	if !st.Authenticated {
		return DenyRedirectLogin
	}
	return Allow
}
