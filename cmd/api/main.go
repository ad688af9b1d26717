package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/wellnesslane/session-scheduler/internal/config"
	dbpkg "github.com/wellnesslane/session-scheduler/internal/db"
	"github.com/wellnesslane/session-scheduler/internal/identity"
	"github.com/wellnesslane/session-scheduler/internal/logger"
	"github.com/wellnesslane/session-scheduler/internal/routes"
)

func main() {

	cfg := config.Load()

	log := logger.Init(cfg.IsProduction())
	defer func() { _ = log.Sync() }()

	db := dbpkg.NewDB(cfg)

	var verifier identity.Verifier = identity.NewHTTPClient(
		cfg.IdentityBaseURL,
		cfg.IdentityTimeout,
	)

	// Redis is optional: without it every existence check hits the
	// identity service directly.
	rdb := identity.NewRedisClient(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	verifier = identity.NewCachedVerifier(verifier, rdb, cfg.IdentityCacheTTL)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.Default()

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, verifier, cfg)

	log.Info("server starting", zap.String("addr", cfg.Addr()))
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatal("server exited", zap.Error(err))
	}
}
