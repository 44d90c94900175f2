package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/agendalivre/platform-api/internal/cache"
	"github.com/agendalivre/platform-api/internal/config"
	dbpkg "github.com/agendalivre/platform-api/internal/db"
	"github.com/agendalivre/platform-api/internal/middleware"
	"github.com/agendalivre/platform-api/internal/routes"
)

func main() {

	_ = godotenv.Load()

	cfg := config.Load()
	db := dbpkg.NewDB(cfg)

	var summaryCache *cache.SummaryCache
	if cfg.RedisURL != "" {
		sc, err := cache.NewSummaryCache(cfg.RedisURL)
		if err != nil {
			logrus.WithError(err).Warn("redis unavailable, financial summary cache disabled")
		} else {
			summaryCache = sc
		}
	}

	r := gin.Default()

	r.Use(middleware.CORSMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, cfg, summaryCache)

	logrus.WithField("addr", cfg.Addr()).Info("server running")
	if err := r.Run(cfg.Addr()); err != nil {
		logrus.WithError(err).Fatal("failed to start server")
	}
}
