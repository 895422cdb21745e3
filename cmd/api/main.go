package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/f1rstwash/booking-api/internal/config"
	dbpkg "github.com/f1rstwash/booking-api/internal/db"
	"github.com/f1rstwash/booking-api/internal/logger"
	"github.com/f1rstwash/booking-api/internal/metrics"
	"github.com/f1rstwash/booking-api/internal/middleware"
	"github.com/f1rstwash/booking-api/internal/routes"
)

func main() {

	cfg := config.Load()
	logger.Init()
	log := logger.L()

	db := dbpkg.NewDB(cfg)

	r := gin.New()

	// A failed request must never take the process down.
	r.Use(gin.CustomRecovery(func(c *gin.Context, err any) {
		log.Error("unhandled panic", zap.Any("error", err))
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"error": "Server error. Try again.",
		})
	}))
	r.Use(middleware.CORSMiddleware())
	r.Use(metrics.Middleware())

	routes.RegisterRoutes(r, db, cfg)

	log.Info("booking API listening",
		zap.String("addr", cfg.Addr()),
		zap.String("timezone", cfg.Timezone),
		zap.Int("capacity", cfg.Capacity),
	)
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatal("failed to start server", zap.Error(err))
	}
}
