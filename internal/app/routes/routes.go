package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/alumnihub/portal-api/internal/app/controllers"
	"github.com/alumnihub/portal-api/internal/app/models"
	"github.com/alumnihub/portal-api/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	profileController *controllers.ProfileController,
	adminController *controllers.AdminController,
	alumniController *controllers.AlumniController,
	eventController *controllers.EventController,
	galleryController *controllers.GalleryController,
	jobController *controllers.JobController,
	mentorshipController *controllers.MentorshipController,
	contentController *controllers.ContentController,
	authMiddleware *middleware.AuthMiddleware,
	serviceKey string,
) {
	// API version group
	v1 := router.Group("/api/v1")

	v1.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// --- Public Auth routes ---
	auth := v1.Group("/auth")
	{
		auth.POST("/register", authController.Register)
		auth.POST("/login", authController.Login)
		auth.POST("/refresh", authController.RefreshToken)
	}

	// --- Public content routes ---
	v1.GET("/alumni", alumniController.ListAlumni)
	v1.GET("/alumni/:id", alumniController.GetAlumnus)

	events := v1.Group("/events")
	{
		events.GET("", eventController.ListEvents)
		events.GET("/section", eventController.GetSection)
		events.GET("/:id", eventController.GetEvent)
	}

	gallery := v1.Group("/gallery")
	{
		gallery.GET("", galleryController.ListImages)
		gallery.GET("/content", galleryController.GetContent)
	}

	jobs := v1.Group("/jobs")
	{
		jobs.GET("", jobController.ListJobs)
		jobs.GET("/:id", jobController.GetJob)
	}

	mentorship := v1.Group("/mentorship")
	{
		mentorship.GET("", mentorshipController.ListOffers)
		mentorship.GET("/:id", mentorshipController.GetOffer)
	}

	content := v1.Group("/content")
	{
		content.GET("/hero", contentController.GetHero)
		content.GET("/settings", contentController.ListSettings)
		content.GET("/settings/:id", contentController.GetSetting)
	}

	// --- Authenticated routes ---
	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.JWTAuth())
	{
		authenticated.GET("/auth/me", authController.Me)

		authenticated.GET("/jobs/mine", jobController.ListMyJobs)
		authenticated.GET("/mentorship/mine", mentorshipController.ListMyOffers)

		// Posting management requires an approved alumni profile or admin
		posters := authenticated.Group("")
		posters.Use(authMiddleware.RoleRequired(models.RoleAlumni, models.RoleAdmin))
		{
			posters.POST("/jobs", jobController.CreateJob)
			posters.PUT("/jobs/:id", jobController.UpdateJob)
			posters.DELETE("/jobs/:id", jobController.DeleteJob)

			posters.POST("/mentorship", mentorshipController.CreateOffer)
			posters.PUT("/mentorship/:id", mentorshipController.UpdateOffer)
			posters.DELETE("/mentorship/:id", mentorshipController.DeleteOffer)
		}

		// --- Admin routes ---
		admin := authenticated.Group("/admin")
		admin.Use(authMiddleware.RoleRequired(models.RoleAdmin))
		{
			admin.GET("/profiles", profileController.ListProfiles)
			admin.GET("/profiles/:id", profileController.GetProfile)
			admin.POST("/profiles/:id/approve", profileController.ApproveProfile)
			admin.POST("/profiles/:id/reject", profileController.RejectProfile)
			admin.PUT("/profiles/:id", profileController.UpdateProfile)
			admin.DELETE("/users/:userId", profileController.DeleteUser)

			admin.POST("/admins", adminController.AddAdmin)
			admin.GET("/admins", adminController.ListAdmins)
			admin.DELETE("/admins/:userId", adminController.RevokeAdmin)
		}

		// Admin-gated content management
		adminContent := authenticated.Group("")
		adminContent.Use(authMiddleware.RoleRequired(models.RoleAdmin))
		{
			adminContent.POST("/alumni", alumniController.CreateAlumnus)
			adminContent.PUT("/alumni/:id", alumniController.UpdateAlumnus)
			adminContent.DELETE("/alumni/:id", alumniController.DeleteAlumnus)
			adminContent.PUT("/alumni-section-title", alumniController.UpdateSectionTitle)

			adminContent.POST("/events", eventController.CreateEvent)
			adminContent.PUT("/events/section", eventController.UpdateSection)
			adminContent.PUT("/events/:id", eventController.UpdateEvent)
			adminContent.DELETE("/events/:id", eventController.DeleteEvent)

			adminContent.POST("/gallery", galleryController.AddImage)
			adminContent.DELETE("/gallery/:id", galleryController.DeleteImage)
			adminContent.PUT("/gallery/content", galleryController.UpdateContent)

			adminContent.PUT("/content/hero", contentController.UpdateHero)
			adminContent.PUT("/content/settings/:id", contentController.UpsertSetting)
		}
	}

	// --- Internal service-to-service routes ---
	internal := router.Group("/internal")
	internal.Use(middleware.ServiceKeyRequired(serviceKey))
	{
		internal.DELETE("/users/:userId", adminController.InternalDeleteUser)
	}
}
