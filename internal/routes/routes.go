package routes

import (
	"context"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/f1rstwash/booking-api/internal/config"
	"github.com/f1rstwash/booking-api/internal/handlers"
	infraRepo "github.com/f1rstwash/booking-api/internal/infra/repository"
	"github.com/f1rstwash/booking-api/internal/logger"
	"github.com/f1rstwash/booking-api/internal/metrics"
	"github.com/f1rstwash/booking-api/internal/middleware"
	"github.com/f1rstwash/booking-api/internal/notify"
	"github.com/f1rstwash/booking-api/internal/recommend"
	ucbooking "github.com/f1rstwash/booking-api/internal/usecase/booking"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	bookingRepo := infraRepo.NewBookingGormRepository(db)
	notifier := notify.NewDispatcher(notify.NewMailer(cfg))

	var recommender recommend.Recommender
	if cfg.GeminiAPIKey != "" {
		rec, err := recommend.NewGeminiRecommender(context.Background(), cfg.GeminiAPIKey)
		if err != nil {
			logger.L().Warn("recommendation collaborator unavailable, using fallback copy",
				zap.Error(err),
			)
		} else {
			recommender = rec
		}
	}

	// ======================================================
	// USE CASES
	// ======================================================
	availabilityUC := ucbooking.NewGetAvailability(bookingRepo, cfg)
	createUC := ucbooking.NewCreateBooking(bookingRepo, cfg, notifier)
	listUC := ucbooking.NewListBookings(bookingRepo, cfg)

	// ======================================================
	// HANDLERS
	// ======================================================
	appHandler := handlers.NewAppHandler(cfg)
	bookingHandler := handlers.NewBookingHandler(bookingRepo, availabilityUC, createUC, cfg)
	adminHandler := handlers.NewAdminHandler(bookingRepo, listUC, cfg)
	recommendHandler := handlers.NewRecommendHandler(recommender)

	// ======================================================
	// ROUTES
	// ======================================================
	r.GET("/", appHandler.Root)
	r.GET("/metrics", metrics.Handler())

	api := r.Group("/api")
	{
		api.GET("/health", appHandler.Health)

		api.GET("/services", bookingHandler.ListServices)
		api.GET("/availability", bookingHandler.Availability)
		api.POST("/bookings", bookingHandler.Create)

		api.POST("/recommendation", recommendHandler.Recommend)

		admin := api.Group("/admin")
		{
			admin.POST("/login", adminHandler.Login)

			secured := admin.Group("/")
			secured.Use(middleware.AdminAuth(cfg))
			{
				secured.GET("/bookings", adminHandler.ListBookings)
				secured.POST("/blocks", adminHandler.CreateBlock)
			}
		}
	}
}
