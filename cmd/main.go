package main

import (
	"fmt"
	"log"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sharath018/seva-booking-backend/config"
	"github.com/sharath018/seva-booking-backend/database"
	"github.com/sharath018/seva-booking-backend/internal/auditlog"
	"github.com/sharath018/seva-booking-backend/internal/auth"
	"github.com/sharath018/seva-booking-backend/internal/booking"
	"github.com/sharath018/seva-booking-backend/internal/hero"
	"github.com/sharath018/seva-booking-backend/internal/notification"
	"github.com/sharath018/seva-booking-backend/internal/settings"
	"github.com/sharath018/seva-booking-backend/internal/seva"
	"github.com/sharath018/seva-booking-backend/middleware"
	"github.com/sharath018/seva-booking-backend/routes"
	"github.com/sharath018/seva-booking-backend/utils"
)

// @title Temple Seva Booking API
// @version 1.0
// @description Seva catalog, bookings and temple administration.
// @BasePath /api
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg := config.Load()
	db := database.Connect(cfg)

	// Init Redis
	if err := utils.InitRedis(cfg); err != nil {
		log.Printf("⚠️ Redis unavailable: %v", err)
		log.Println("ℹ️ Continuing without Redis (seva cache and live notifications disabled)")
	}

	// Init Kafka
	utils.InitializeKafka(cfg)
	defer utils.Kafka.Close()

	log.Println("🔄 Initializing Firebase...")
	if err := utils.InitFirebase(cfg); err != nil {
		log.Printf("⚠️ Firebase initialization failed: %v", err)
		log.Println("ℹ️ Continuing without Firebase (push notifications will be disabled)")
	}

	// Auto-migrate models
	log.Println("🔄 Running database migrations...")
	if err := db.AutoMigrate(
		&auth.UserRole{},
		&auth.User{},
		&seva.Seva{},
		&booking.Booking{},
		&notification.Notification{},
		&settings.Settings{},
		&hero.Slide{},
		&auditlog.AuditLog{},
	); err != nil {
		panic(fmt.Sprintf("❌ DB AutoMigrate failed: %v", err))
	}
	log.Println("✅ Database migrations completed")

	// Seed roles & admin
	if err := auth.SeedUserRoles(db); err != nil {
		panic(fmt.Sprintf("❌ Failed to seed roles: %v", err))
	}
	if err := auth.SeedAdminUser(db, cfg); err != nil {
		panic(fmt.Sprintf("❌ Failed to seed admin: %v", err))
	}
	if cfg.SeedDemoData {
		if err := seva.SeedCatalog(db); err != nil {
			log.Printf("⚠️ Demo catalog seed failed: %v", err)
		}
	}

	// Setup Gin router
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.RequestLogger())

	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS", "HEAD"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "Content-Length", "X-Requested-With", "X-Request-ID", "Cache-Control"},
		ExposeHeaders:    []string{"Content-Length", "Content-Type", "Content-Disposition", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	routes.Setup(router, cfg)

	fmt.Printf("🚀 Server starting on port %s\n", cfg.Port)
	fmt.Printf("✅ CORS configured for: %v\n", cfg.CORSOrigins)
	fmt.Printf("💰 Pricing policy: %s (enforce=%t)\n", booking.PolicyFor(cfg.PricingPolicy).Name(), cfg.PricingEnforce)
	if utils.IsFCMEnabled() {
		fmt.Println("✅ Firebase Cloud Messaging enabled")
	} else {
		fmt.Println("ℹ️ Firebase Cloud Messaging disabled")
	}

	if err := router.Run(":" + cfg.Port); err != nil {
		panic(fmt.Sprintf("Failed to start server: %v", err))
	}
}
