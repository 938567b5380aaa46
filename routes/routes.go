package routes

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sharath018/seva-booking-backend/config"
	"github.com/sharath018/seva-booking-backend/database"
	"github.com/sharath018/seva-booking-backend/internal/auditlog"
	"github.com/sharath018/seva-booking-backend/internal/auth"
	"github.com/sharath018/seva-booking-backend/internal/booking"
	"github.com/sharath018/seva-booking-backend/internal/hero"
	"github.com/sharath018/seva-booking-backend/internal/notification"
	"github.com/sharath018/seva-booking-backend/internal/payment"
	"github.com/sharath018/seva-booking-backend/internal/reports"
	"github.com/sharath018/seva-booking-backend/internal/settings"
	"github.com/sharath018/seva-booking-backend/internal/seva"
	"github.com/sharath018/seva-booking-backend/internal/translate"
	"github.com/sharath018/seva-booking-backend/middleware"
	"github.com/sharath018/seva-booking-backend/utils"

	_ "github.com/sharath018/seva-booking-backend/docs"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

const sevaCacheTTL = 5 * time.Minute

func Setup(r *gin.Engine, cfg *config.Config) {
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.Group("/api")
	api.Use(middleware.AuditMiddleware())
	api.Use(middleware.RateLimiter(cfg.RateLimitPerMinute, utils.RedisClient))

	admin := middleware.RBACMiddleware(auth.RoleAdmin)

	// ========== Audit Logs ==========
	auditRepo := auditlog.NewRepository(database.DB)
	auditSvc := auditlog.NewService(auditRepo)
	auditHandler := auditlog.NewHandler(auditSvc)

	// ========== Auth ==========
	authRepo := auth.NewRepository(database.DB)
	authSvc := auth.NewService(authRepo, cfg)
	authHandler := auth.NewHandler(authSvc)

	requireAuth := middleware.AuthMiddleware(cfg, authSvc)

	authGroup := api.Group("/auth")
	{
		authGroup.POST("/register", authHandler.Register)
		authGroup.POST("/login", authHandler.Login)
		authGroup.GET("/profile", requireAuth, authHandler.Profile)
	}

	// ========== Settings ==========
	settingsSvc := settings.NewService(settings.NewRepository(database.DB), auditSvc)
	settingsHandler := settings.NewHandler(settingsSvc)

	api.GET("/settings", settingsHandler.Get)
	api.PUT("/settings", requireAuth, admin, settingsHandler.Update)

	// ========== Notifications ==========
	notifSvc := notification.NewService(notification.NewRepository(database.DB))
	if utils.RedisClient != nil {
		notifSvc.AddBroadcaster(notification.NewRedisBroadcaster(utils.RedisClient))
	}
	if utils.IsFCMEnabled() {
		notifSvc.AddBroadcaster(notification.NewFCMBroadcaster(utils.FirebaseClient, cfg.FCMAdminTopic))
	}
	if mailer := utils.NewMailer(cfg); mailer != nil {
		notifSvc.SetEmailSender(mailer, settingsSvc)
	}
	notifHandler := notification.NewHandler(notifSvc, utils.RedisClient)

	notifRoutes := api.Group("/notifications", requireAuth, admin)
	{
		notifRoutes.GET("", notifHandler.List)
		notifRoutes.GET("/unread-count", notifHandler.UnreadCount)
		notifRoutes.GET("/stream", notifHandler.Stream)
		notifRoutes.PUT("/read-all", notifHandler.MarkAllRead)
		notifRoutes.PUT("/:id/read", notifHandler.MarkRead)
	}

	// ========== Sevas ==========
	sevaSvc := seva.NewService(seva.NewRepository(database.DB), auditSvc)
	if utils.RedisClient != nil {
		sevaSvc.SetCache(seva.NewRedisCache(utils.RedisClient, sevaCacheTTL))
	}
	sevaHandler := seva.NewHandler(sevaSvc)

	sevaRoutes := api.Group("/sevas")
	{
		sevaRoutes.GET("", sevaHandler.ListActive)
		sevaRoutes.GET("/all", requireAuth, admin, sevaHandler.ListAll)
		sevaRoutes.GET("/:id", sevaHandler.GetByID)
		sevaRoutes.POST("", requireAuth, admin, sevaHandler.Create)
		sevaRoutes.PUT("/:id", requireAuth, admin, sevaHandler.Update)
		sevaRoutes.DELETE("/:id", requireAuth, admin, sevaHandler.Delete)
	}

	// ========== Bookings ==========
	pricing := booking.PolicyFor(cfg.PricingPolicy)
	bookingSvc := booking.NewService(booking.NewRepository(database.DB), sevaSvc, auditSvc, pricing, cfg.PricingEnforce)
	bookingSvc.SetNotifService(notifSvc)
	if utils.Kafka != nil {
		bookingSvc.SetEventPublisher(utils.Kafka)
	}
	bookingHandler := booking.NewHandler(bookingSvc)

	reportsSvc := reports.NewReportService(reports.NewRepository(database.DB), reports.NewReportExporter(cfg.PDFFontPath), bookingSvc, settingsSvc, auditSvc)
	reportsHandler := reports.NewHandler(reportsSvc)

	bookingRoutes := api.Group("/bookings")
	{
		bookingRoutes.POST("", middleware.OptionalAuth(cfg, authSvc), bookingHandler.Create)
		bookingRoutes.GET("", requireAuth, admin, bookingHandler.ListAll)
		bookingRoutes.GET("/mybookings", requireAuth, bookingHandler.ListMine)
		bookingRoutes.GET("/track/:phone", bookingHandler.Track)
		bookingRoutes.PUT("/:id", requireAuth, admin, bookingHandler.Update)
		bookingRoutes.DELETE("/:id", requireAuth, admin, bookingHandler.Delete)
		bookingRoutes.GET("/:id/receipt", requireAuth, admin, reportsHandler.Receipt)
	}

	// ========== Reports ==========
	api.GET("/reports/bookings", requireAuth, admin, reportsHandler.ExportBookings)

	// ========== Hero Slides ==========
	heroHandler := hero.NewHandler(hero.NewService(hero.NewRepository(database.DB), auditSvc))

	heroRoutes := api.Group("/hero")
	{
		heroRoutes.GET("", heroHandler.List)
		heroRoutes.POST("", requireAuth, admin, heroHandler.Create)
		heroRoutes.PUT("/:id", requireAuth, admin, heroHandler.Update)
		heroRoutes.DELETE("/:id", requireAuth, admin, heroHandler.Delete)
	}

	// ========== Translate ==========
	translateHandler := translate.NewHandler(translate.NewService(cfg.TranslateBaseURL))
	api.GET("/translate", translateHandler.Translate)

	// ========== Payments ==========
	paymentSvc := payment.NewService(cfg, sevaSvc, pricing, auditSvc)
	if !paymentSvc.Enabled() {
		log.Println("ℹ️ Razorpay keys not set, payment orders will return 503")
	}
	paymentHandler := payment.NewHandler(paymentSvc)

	paymentRoutes := api.Group("/payments", middleware.OptionalAuth(cfg, authSvc))
	{
		paymentRoutes.POST("/orders", paymentHandler.CreateOrder)
		paymentRoutes.POST("/verify", paymentHandler.Verify)
	}

	// ========== Audit Logs (admin) ==========
	auditRoutes := api.Group("/audit-logs", requireAuth, admin)
	{
		auditRoutes.GET("", auditHandler.List)
		auditRoutes.GET("/bookings/:id", auditHandler.BookingTrail)
		auditRoutes.GET("/:id", auditHandler.GetByID)
	}
}
