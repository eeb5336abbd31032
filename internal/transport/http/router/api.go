package router

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"go-lodging-api/internal/house"
	"go-lodging-api/internal/identity"
	mdw "go-lodging-api/internal/transport/http/middleware"
)

// APIDeps 会员侧引擎依赖
type APIDeps struct {
	Auth   AuthDeps
	Houses *house.Service
}

// NewAPIEngine 会员侧引擎：/api/v1 下挂注册/验证/登录/资料 与房源浏览。
// 授权全部走 AuthGate，公共前缀由 gate 决定，不在路由层散落判断。
func NewAPIEngine(l *zap.Logger, gate *identity.Gate, d APIDeps) *gin.Engine {
	r := gin.New()

	r.Use(
		mdw.RequestID(),
		mdw.RateLimit(200, 400),
		mdw.ConcurrencyLimit(300),
		mdw.MaxBodyBytes(16<<20),
		mdw.Timeout(10*time.Second),
		mdw.Recovery(l),
		mdw.Metrics(),
		mdw.AccessLog(l),
	)

	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"ok": 1}) })
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api/v1")
	api.Use(mdw.AuthGate(d.Auth.JWTer, gate))

	// 扩展点：其他模块通过 Register 挂进来
	MountAllAPI(api)

	public := api.Group("")
	authed := api.Group("")
	mountAuthRoutes(public, authed, d.Auth)
	mountHouseRoutes(public, d.Houses)

	return r
}

// APIGate 会员侧引擎的默认授权规则
func APIGate() *identity.Gate {
	return identity.NewGate([]string{
		"/health",
		"/metrics",
		"/api/v1/auth",
		"/api/v1/houses",
	}, "")
}
