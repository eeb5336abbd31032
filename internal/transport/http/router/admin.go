package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"go-lodging-api/internal/core/auth"
	"go-lodging-api/internal/core/server"
	"go-lodging-api/internal/identity"
	mdw "go-lodging-api/internal/transport/http/middleware"
)

// NewAdminEngine 管理端引擎：接口面小，走 server.NewRouter 的轻量底座。
// /admin/v1 整组只有 ADMIN 角色可过。
func NewAdminEngine(l *zap.Logger, jwter *auth.JWTer, d AdminDeps) *gin.Engine {
	r := server.NewRouter(l)

	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"ok": 1}) })
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	gate := identity.NewGate([]string{"/health", "/metrics"}, "/admin/v1")

	admin := r.Group("/admin/v1")
	admin.Use(mdw.AuthGate(jwter, gate))

	MountAllAdmin(admin)
	mountAdminRoutes(admin, d)

	return r
}
