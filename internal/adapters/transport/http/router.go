package http

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/pagepal-app/pagepal/auth-service/internal/adapters/transport/http/middleware"
	"github.com/pagepal-app/pagepal/auth-service/internal/infra/config"
)

// NewRouter wires middleware and routes. Transport concerns stop here;
// everything behind the handlers speaks the domain error taxonomy.
func NewRouter(h *Handler, log *zap.Logger, cfg *config.Config) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger(log))
	router.Use(middleware.RateLimitPerIP(50, 100, 10_000, time.Hour))

	router.Use(cors.New(cors.Config{
		AllowOrigins: cfg.AllowedOrigins,
		AllowMethods: []string{"GET", "POST", "OPTIONS"},
		AllowHeaders: []string{
			"Origin", "Content-Type", "Accept",
			"Authorization",
			"X-Requested-With",
		},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: cfg.AllowCredentials,
		MaxAge:           12 * time.Hour,
	}))

	router.POST("/signup", h.Signup)
	router.POST("/login", h.Login)
	router.GET("/me", h.Me)
	router.POST("/logout", h.Logout)
	router.GET("/health", h.Health)

	return router
}
