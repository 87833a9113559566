package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"employee-api/internal/core/config"
	"employee-api/internal/domain"
	mdw "employee-api/internal/transport/http/middleware"
)

func NewAPIEngine(l *zap.Logger, repo domain.EmployeeRepository, pol config.Policy) *gin.Engine {
	r := gin.New()

	// 中间件
	r.Use(
		mdw.RequestID(),
		mdw.RateLimit(rate.Limit(pol.RateLimitRPS), pol.RateLimitBurst),
		mdw.ConcurrencyLimit(pol.MaxConcurrency),
		mdw.MaxBodyBytes(pol.MaxBodyMB<<20),
		mdw.Timeout(time.Duration(pol.RequestTimeoutS)*time.Second),
		ginzap.RecoveryWithZap(l, true),
		cors.Default(),
		mdw.Metrics(),
		mdw.AccessLog(l),
	)

	// 健康检查 / 指标
	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"ok": 1}) })
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	mountEmployeeActions(r, repo)

	return r
}
