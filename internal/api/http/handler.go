package apiHttp

import (
	"net/http"
	"time"

	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/kaustubh03-ks/covid-19-analysis/docs"
	"github.com/kaustubh03-ks/covid-19-analysis/internal/api/http/pages"
	"github.com/kaustubh03-ks/covid-19-analysis/internal/metrics"
	"github.com/kaustubh03-ks/covid-19-analysis/pkg/limiter"
	"github.com/kaustubh03-ks/covid-19-analysis/pkg/logger"
	"github.com/kaustubh03-ks/covid-19-analysis/pkg/validator"

	internalV1 "github.com/kaustubh03-ks/covid-19-analysis/internal/api/http/internal/v1"
	"github.com/kaustubh03-ks/covid-19-analysis/internal/config"
	"github.com/kaustubh03-ks/covid-19-analysis/internal/service"
)

type Handler struct {
	services *service.Services
	config   *config.Config
}

func NewHandlers(services *service.Services, cfg *config.Config) *Handler {
	return &Handler{
		services: services,
		config:   cfg,
	}
}

func (h *Handler) Init(cfg *config.Config) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()

	validator.RegisterGinValidator()

	router.Use(
		ginzap.Ginzap(logger.Logger(), time.RFC3339, true),
		limiter.Limit(cfg.Limiter.RPS, cfg.Limiter.Burst, cfg.Limiter.TTL),
		corsMiddleware,
		metricsMiddleware,
	)
	router.Use(ginzap.RecoveryWithZap(logger.Logger(), true))

	if cfg.HttpServer.SwaggerEnabled {
		router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.NewHandler(), ginSwagger.InstanceName("internal")))
	}
	if cfg.HttpServer.MetricsEnabled {
		router.GET("/metrics", gin.WrapH(metrics.Handler()))
	}
	router.GET("/healthz", func(c *gin.Context) {
		info := h.services.Dataset.Info(c.Request.Context())
		if info.Version == 0 {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "loading"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok", "rows": info.Rows, "version": info.Version})
	})

	pages.NewHandler(h.services).Init(router)
	h.initAPI(router)

	return router
}

func (h *Handler) initAPI(router *gin.Engine) {
	internalHandlersV1 := internalV1.NewHandler(h.services, h.config)
	api := router.Group("/api")
	internalHandlersV1.Init(api)
}
