package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"go-lodging-api/internal/core/auth"
	"go-lodging-api/internal/domain"
	"go-lodging-api/internal/identity"
	resp "go-lodging-api/internal/transport/http/response"
)

// gin context 里的认证信息 key
const (
	CtxAccountID = "accountId"
	CtxRole      = "role"
)

// LoginPath 未认证访问受保护路径时引导的登录入口
const LoginPath = "/api/v1/auth/login"

// AuthGate 逐请求授权：先从 Bearer token 物化认证状态，
// 再按 Gate 的固定优先级规则裁决。
// 未登录 → 401 + 登录引导；角色不够 → 403（不再引导登录）。
func AuthGate(j *auth.JWTer, gate *identity.Gate) gin.HandlerFunc {
	return func(c *gin.Context) {
		st := identity.Unauthenticated()

		if ah := c.GetHeader("Authorization"); strings.HasPrefix(ah, "Bearer ") {
			claims, err := j.Parse(strings.TrimPrefix(ah, "Bearer "))
			if err == nil {
				if role, ok := domain.ParseRole(claims.Role); ok {
					st = identity.Authenticated(role)
					c.Set(CtxAccountID, claims.UID)
					c.Set(CtxRole, role.String())
				}
			}
			// 坏 token 不直接拒绝：当作未认证，让 Gate 决定
		}

		switch gate.Decide(c.Request.URL.Path, st) {
		case identity.Allow:
			c.Next()
		case identity.DenyForbidden:
			c.AbortWithStatusJSON(http.StatusForbidden, resp.Error(resp.CodeForbidden, "forbidden"))
		default: // DenyRedirectLogin
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				resp.New(resp.CodeUnauthorized, "login required", gin.H{"redirect": LoginPath}))
		}
	}
}
