package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/coursebay/coursebay-backend/internal/config"
	"github.com/coursebay/coursebay-backend/internal/handler"
	"github.com/coursebay/coursebay-backend/internal/middleware"
	"github.com/coursebay/coursebay-backend/internal/response"
	"github.com/coursebay/coursebay-backend/internal/service"
)

// Handlers groups all handler instances for route setup.
type Handlers struct {
	Auth     *handler.AuthHandler
	Course   *handler.CourseHandler
	Catalog  *handler.CatalogHandler
	Purchase *handler.PurchaseHandler
}

// SetupRouter configures all Gin route groups with appropriate middlewares.
func SetupRouter(
	authService *service.AuthService,
	handlers *Handlers,
	cfg *config.Config,
) *gin.Engine {
	gin.SetMode(cfg.GinMode)
	router := gin.Default()

	// ─── CORS ──────────────────────────────────────────────────────────
	// If AllowedOrigins is set in config, restrict to that list;
	// otherwise allow all (*) so dev works without extra config.
	corsConfig := cors.DefaultConfig()
	if len(cfg.AllowedOrigins) > 0 {
		corsConfig.AllowOrigins = cfg.AllowedOrigins
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"}
	corsConfig.ExposeHeaders = []string{"X-Request-ID"}
	corsConfig.MaxAge = 12 * time.Hour
	router.Use(cors.New(corsConfig))

	// Apply request ID middleware globally so every response carries one.
	router.Use(response.RequestIDMiddleware())

	// Apply brotli middleware globally.
	router.Use(middleware.Brotli())

	// Health check.
	router.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, "ok", nil)
	})

	// ─── 1. Admin Group ────────────────────────────────────────────────
	admin := router.Group("/admin")
	{
		admin.POST("/signup", handlers.Auth.AdminSignup)
		admin.POST("/signin", handlers.Auth.AdminSignin)

		// Course management requires an admin-namespace token.
		admin.POST("/course", middleware.RequireAdminToken(authService), handlers.Course.Create)
		admin.PUT("/course/:id", middleware.RequireAdminToken(authService), handlers.Course.Update)
		admin.DELETE("/course/:id", middleware.RequireAdminToken(authService), handlers.Course.Delete)
	}

	// ─── 2. User Group ─────────────────────────────────────────────────
	user := router.Group("/user")
	{
		user.POST("/signup", handlers.Auth.UserSignup)
		user.POST("/signin", handlers.Auth.UserSignin)

		user.POST("/course/:id/purchase", middleware.RequireUserToken(authService), handlers.Purchase.Purchase)
		user.GET("/purchases", middleware.RequireUserToken(authService), handlers.Purchase.ListPurchases)
	}

	// ─── 3. Public Catalog ─────────────────────────────────────────────
	courses := router.Group("/courses")
	{
		courses.GET("", handlers.Catalog.ListCourses)
		courses.GET("/:id", handlers.Catalog.GetCourse)
	}

	return router
}
