package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"syana-server/config"
	"syana-server/database"
	"syana-server/jobs"
	"syana-server/middleware"
	"syana-server/routes"
	"syana-server/services"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	cfg := config.Load()
	gin.SetMode(cfg.Server.GinMode)

	// Initialize database
	db, err := database.Connect(cfg.Database)
	if err != nil {
		log.Fatal("Failed to initialize database:", err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}
	log.Println("✅ Database connected and migrated")

	// Wire up services
	push := services.NewExpoPush(cfg.Push.URL)
	notifier := services.NewNotifier(db, push)

	bookings := services.NewBookingService(db)
	orders := services.NewOrderService(db, bookings, notifier)
	users := services.NewUserService(db)
	notifications := services.NewNotificationService(db)
	companies := services.NewCompanyService(db)
	catalog := services.NewCatalogService(db)
	areas := services.NewAreaService(db)
	projects := services.NewProjectService(db)
	reviews := services.NewReviewService(db)
	faqs := services.NewFaqService(db)

	sms := services.NewSMSService(cfg.Twilio)
	auth := services.NewAuthService(db, sms, cfg.JWT, cfg.Phone)

	var uploads *services.UploadService
	if cfg.Cloudinary.URL != "" {
		uploads, err = services.NewUploadService(cfg.Cloudinary)
		if err != nil {
			log.Fatal("Failed to initialize uploads:", err)
		}
	} else {
		log.Println("⚠️ Cloudinary not configured, upload routes disabled")
	}

	// Router
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.Logger())
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.SecurityHeadersMiddleware())
	r.Use(middleware.RateLimitMiddleware())

	routes.Register(r, routes.Deps{
		DB:            db,
		JWTSecret:     cfg.JWT.Secret,
		Orders:        orders,
		Bookings:      bookings,
		Users:         users,
		Notifications: notifications,
		Notifier:      notifier,
		Companies:     companies,
		Catalog:       catalog,
		Areas:         areas,
		Projects:      projects,
		Reviews:       reviews,
		Faqs:          faqs,
		Auth:          auth,
		Uploads:       uploads,
	})

	// Background jobs
	reminderJob := jobs.NewReminderJob(bookings, notifier)
	reminderJob.Start()

	// Graceful teardown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-quit
		log.Println("🛑 Shutting down...")
		reminderJob.Stop()
		notifier.Close()
		if err := database.Close(db); err != nil {
			log.Printf("❌ Error closing database: %v", err)
		}
		os.Exit(0)
	}()

	log.Printf("🚀 Server starting on port %s", cfg.Server.Port)
	if err := r.Run(":" + cfg.Server.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
