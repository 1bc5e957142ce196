package route

import (
	"io"

	"github.com/gin-gonic/gin"
	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"contact-back/internal/api/http/handler"
	"contact-back/internal/api/http/middleware"
	"contact-back/internal/config"
)

func SetupRouter(
	log *zap.Logger,
	cfg *config.Config,
	rdb *goredis.Client,
	healthHdl HealthHandler,
	inquiryHdl InquiryHandler,
) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	gin.DefaultWriter = io.Discard

	router := gin.New()

	// middleware
	router.Use(middleware.Logger(log))
	router.Use(middleware.Recovery(log))
	router.Use(middleware.SecureHeaders())
	router.Use(middleware.RequestTimeout(cfg.HTTPServer.Timeout.Request))
	router.Use(middleware.CORS(cfg.CORS))
	router.Use(middleware.MaxBodySize(cfg.HTTPServer.MaxBody))

	router.HandleMethodNotAllowed = true
	router.NoMethod(handler.NoMethod)
	router.NoRoute(handler.NoRoute)

	basePath := router.Group(cfg.BasePath)
	basePath.Use(middleware.RateLimit(log, rdb, cfg.RateLimit))

	healthPath := basePath.Group("/health")
	RegisterHealth(healthPath, healthHdl)

	inquiryPath := basePath.Group("/inquiries")
	RegisterInquiryRoutes(inquiryPath, inquiryHdl)

	return router
}
