package app

import (
	"sofreh_salawat_backend/docs"
	"sofreh_salawat_backend/internal/config"
	"sofreh_salawat_backend/internal/middleware"
	"sofreh_salawat_backend/internal/model"
	"sofreh_salawat_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, repos *repositories, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())
	router.GET("/health", c.health.HealthCheck)

	// Public routes, no token needed.
	public := router.Group("/api")
	{
		public.POST("/auth/register", c.auth.Register)
		public.POST("/auth/login", c.auth.Login)

		public.GET("/prayers", c.prayer.List)
		public.GET("/prayers/:id", c.prayer.Get)
		public.GET("/prayers/:id/stats", c.prayer.GetStats)

		public.GET("/content", c.content.List)
		public.GET("/content/:type", c.content.GetByType)
	}

	// Routes requiring a valid token.
	authorized := router.Group("/api")
	authorized.Use(middleware.AuthMiddleware(cfg))
	{
		authorized.GET("/auth/profile", c.auth.GetProfile)
		authorized.PUT("/auth/profile", c.auth.UpdateProfile)

		authorized.POST("/prayers", c.prayer.Create)
		authorized.PUT("/prayers/:id", c.prayer.Update)
		authorized.DELETE("/prayers/:id", c.prayer.Delete)
		authorized.POST("/prayers/:id/participate", c.prayer.Participate)

		authorized.GET("/users/stats", c.user.GetStats)
		authorized.GET("/users/participations", c.user.GetParticipations)
	}

	// Admin routes. Role lives in the database, not the token.
	admin := router.Group("/api/admin")
	admin.Use(middleware.AuthMiddleware(cfg), middleware.RoleMiddleware(repos.user, model.RoleAdmin))
	{
		admin.GET("/users", c.user.ListUsers)
		admin.POST("/users/:id/disable", c.user.DisableUser)

		admin.POST("/content", c.content.Create)
		admin.PUT("/content/:id", c.content.Update)
		admin.DELETE("/content/:id", c.content.Delete)
		admin.POST("/content/:id/audio", c.content.UploadAudio)
	}
}
