package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"syana-server/database"
	"syana-server/middleware"
	"syana-server/services"
)

// Deps bundles everything the route tables need.
type Deps struct {
	DB        *gorm.DB
	JWTSecret string

	Orders        *services.OrderService
	Bookings      *services.BookingService
	Users         *services.UserService
	Notifications *services.NotificationService
	Notifier      *services.Notifier
	Companies     *services.CompanyService
	Catalog       *services.CatalogService
	Areas         *services.AreaService
	Projects      *services.ProjectService
	Reviews       *services.ReviewService
	Faqs          *services.FaqService
	Auth          *services.AuthService
	Uploads       *services.UploadService
}

// Register mounts every entity method table plus the health check.
func Register(r *gin.Engine, deps Deps) {
	r.GET("/health", func(c *gin.Context) {
		if err := database.Ping(deps.DB); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	d := NewDispatcher(deps.DB, deps.JWTSecret)
	d.Mount(r, "order", OrderMethods(deps.Orders))
	d.Mount(r, "booking", BookingMethods(deps.Bookings))
	d.Mount(r, "user", UserMethods(deps.Users))
	d.Mount(r, "notification", NotificationMethods(deps.Notifications, deps.Notifier))
	d.Mount(r, "company", CompanyMethods(deps.Companies))
	d.Mount(r, "service", ServiceMethods(deps.Catalog))
	d.Mount(r, "area", AreaMethods(deps.Areas))
	d.Mount(r, "project", ProjectMethods(deps.Projects))
	d.Mount(r, "review", ReviewMethods(deps.Reviews))
	d.Mount(r, "faq", FaqMethods(deps.Faqs))
	d.Mount(r, "auth", AuthMethods(deps.Auth), middleware.AuthRateLimitMiddleware())
	if deps.Uploads != nil {
		d.Mount(r, "upload", UploadMethods(deps.Uploads))
	}
}
