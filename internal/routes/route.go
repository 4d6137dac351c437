package routes

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/adjei-dev/stagepress/internal/container"
	"github.com/adjei-dev/stagepress/internal/handlers"
	"github.com/adjei-dev/stagepress/internal/middleware"
)

// SetupRoutes configures all routes with the dependency container
func SetupRoutes(ct *container.Container) *gin.Engine {
	if ct.Config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	r.Use(middleware.RequestID())
	r.Use(middleware.StructuredLogger(ct.Logger))
	r.Use(middleware.Metrics())
	r.Use(gin.Recovery())

	secret := ct.Config.JWTSecret

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "OK",
			"service": "stagepress-api",
		})
	})
	if ct.Config.EnableMetrics {
		r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	}

	// Uploaded media is served straight off local disk.
	r.Static("/uploads", ct.Config.UploadDir)

	api := r.Group("/api")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/login", handlers.Login(ct.UserService, ct.Config))
			auth.POST("/logout", handlers.Logout(ct.Config))
			auth.GET("/session", middleware.Auth(secret), handlers.Session())
		}

		// Public reads carry optional session context so admins and event
		// creators see past the publication gate.
		api.GET("/events", middleware.OptionalAuth(secret), handlers.ListEvents(ct.EventService))
		api.GET("/events/:idOrSlug", middleware.OptionalAuth(secret), handlers.GetEvent(ct.EventService))
		api.GET("/posts", handlers.ListPosts(ct.PostService))
		api.GET("/posts/:idOrSlug", middleware.OptionalAuth(secret), handlers.GetPost(ct.PostService))
		api.GET("/categories", handlers.ListCategories(ct.CategoryService))
		api.GET("/adverts", handlers.ListPublicAdverts(ct.AdvertService))

		api.POST("/tickets/purchase", middleware.OptionalAuth(secret), handlers.PurchaseTicket(ct.PurchaseService))

		authed := api.Group("/", middleware.Auth(secret))
		{
			authed.POST("/events", handlers.CreateEvent(ct.EventService))
			authed.POST("/events/payment", handlers.ConfirmEventPayment(ct.EventService))
			authed.POST("/upload", handlers.UploadFile(ct.Config))
		}

		admin := api.Group("/", middleware.Auth(secret), middleware.RequireAdmin())
		{
			admin.PATCH("/events/:idOrSlug", handlers.UpdateEvent(ct.EventService))
			admin.DELETE("/events/:idOrSlug", handlers.DeleteEvent(ct.EventService))
			// Kept off the /api/events POST tree so the static /payment
			// route and the :idOrSlug parameter cannot collide.
			admin.POST("/admin/events/:id/approve", handlers.ApproveEvent(ct.EventService))

			admin.POST("/posts", handlers.CreatePost(ct.PostService))
			admin.PUT("/posts/:id", handlers.UpdatePost(ct.PostService))
			admin.DELETE("/posts/:id", handlers.DeletePost(ct.PostService))

			admin.POST("/categories", handlers.CreateCategory(ct.CategoryService))
			admin.PUT("/categories/:id", handlers.UpdateCategory(ct.CategoryService))
			admin.DELETE("/categories/:id", handlers.DeleteCategory(ct.CategoryService))

			admin.GET("/users", handlers.ListUsers(ct.UserService))
			admin.POST("/users", handlers.CreateUser(ct.UserService))
			admin.GET("/users/:id", handlers.GetUser(ct.UserService))
			admin.PUT("/users/:id", handlers.UpdateUser(ct.UserService))
			admin.DELETE("/users/:id", handlers.DeleteUser(ct.UserService))

			admin.GET("/admin/adverts", handlers.ListAdverts(ct.AdvertService))
			admin.POST("/admin/adverts", handlers.CreateAdvert(ct.AdvertService))
			admin.PATCH("/admin/adverts/:id", handlers.UpdateAdvert(ct.AdvertService))
			admin.DELETE("/admin/adverts/:id", handlers.DeleteAdvert(ct.AdvertService))

			admin.GET("/admin/orders", handlers.ListOrders(ct.PurchaseService))
		}
	}

	return r
}
