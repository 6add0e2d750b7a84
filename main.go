package main

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/diyorbe-beep/kino11111/config"
	"github.com/diyorbe-beep/kino11111/controllers"
	_ "github.com/diyorbe-beep/kino11111/docs"
	"github.com/diyorbe-beep/kino11111/middleware"
	"github.com/diyorbe-beep/kino11111/models"
	"github.com/diyorbe-beep/kino11111/services/activity"
	"github.com/diyorbe-beep/kino11111/services/mail"
	"github.com/diyorbe-beep/kino11111/services/metadata"
	"github.com/diyorbe-beep/kino11111/services/sweeper"
	"github.com/diyorbe-beep/kino11111/utils"
)

// @title           Kino Streaming API
// @version         1.0
// @description     Backend API for the movie streaming platform

// @contact.name   API Support

// @host      localhost:8081
// @BasePath  /api/v1

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Enter the Bearer token
func main() {
	if err := utils.InitLogger(); err != nil {
		log.Fatal("Error initializing logger:", err)
	}

	if err := godotenv.Load(); err != nil {
		utils.LogInfo("no .env file found, relying on process environment")
	}

	db, err := config.InitDB()
	if err != nil {
		log.Fatal("Error connecting to database:", err)
	}

	models.SetDB(db)

	gin.SetMode(gin.ReleaseMode)
	r := gin.Default()

	r.Use(middleware.LanguageMiddleware())

	r.Static("/uploads", "./uploads")
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	activityService := activity.NewActivityService(db)
	mailService := mail.NewMailService()
	metadataService := metadata.NewMetadataService(db)

	authController := controllers.NewAuthController(db, activityService, mailService)
	profileController := controllers.NewProfileController(db)
	premiumController := controllers.NewPremiumController(db, activityService)
	carouselController := controllers.NewCarouselController(db)
	userManagementController := controllers.NewUserManagementController(db, activityService)
	adminMovieController := controllers.NewAdminMovieController(db, activityService, metadataService)
	adminCatalogController := controllers.NewAdminCatalogController(db)
	adminPremiumCodeController := controllers.NewAdminPremiumCodeController(db, activityService)
	adminDashboardController := controllers.NewAdminDashboardController(db)
	adminModerationController := controllers.NewAdminModerationController(db, activityService)
	activityController := controllers.NewActivityController(activityService)

	v1 := r.Group("/api/v1")
	{
		// auth
		v1.POST("/auth/register", authController.Register)
		v1.POST("/auth/login", authController.Login)
		v1.POST("/auth/token/refresh", authController.RefreshToken)
		v1.GET("/auth/check-username", authController.CheckUsername)
		v1.GET("/auth/check-email", authController.CheckEmail)

		// public catalog; optional auth widens what premium users see
		public := v1.Group("")
		public.Use(middleware.OptionalAuthMiddleware())
		{
			public.GET("/movies", controllers.GetMovies)
			public.GET("/movies/featured", controllers.GetFeaturedMovies)
			public.GET("/movies/trending", controllers.GetTrendingMovies)
			public.GET("/movies/premiers", controllers.GetPremierMovies)
			public.GET("/movies/:slug", controllers.GetMovieBySlug)
			public.GET("/movies/:slug/episodes", controllers.GetMovieEpisodes)
			public.GET("/movies/:slug/comments", controllers.GetMovieComments)
			public.GET("/movies/:slug/ratings", controllers.GetMovieRatings)
			public.GET("/movies/:slug/watch", controllers.WatchMovie)
			public.GET("/categories", controllers.GetCategories)
			public.GET("/genres", controllers.GetGenres)
			public.GET("/carousels", carouselController.GetCarousels)
		}

		// logged-in routes
		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware())
		{
			protected.POST("/auth/logout", authController.Logout)
			protected.POST("/auth/change-password", authController.ChangePassword)

			protected.GET("/users/me", profileController.GetProfile)
			protected.PUT("/users/me", profileController.UpdateProfile)
			protected.POST("/users/me/avatar", profileController.UploadAvatar)
			protected.GET("/users/me/favorites", controllers.GetMyFavorites)

			protected.POST("/movies/:slug/comments", controllers.CreateComment)
			protected.POST("/comments/:id/reply", controllers.ReplyToComment)
			protected.PUT("/comments/:id", controllers.UpdateComment)
			protected.DELETE("/comments/:id", controllers.DeleteComment)

			protected.POST("/movies/:slug/ratings", controllers.CreateRating)
			protected.PUT("/ratings/:id", controllers.UpdateRating)
			protected.DELETE("/ratings/:id", controllers.DeleteRating)

			protected.POST("/movies/:slug/favorite", controllers.AddFavorite)
			protected.DELETE("/movies/:slug/favorite", controllers.RemoveFavorite)
			protected.POST("/movies/:slug/progress", controllers.ReportWatchProgress)

			protected.GET("/premium/status", premiumController.GetPremiumStatus)
			protected.POST("/premium/redeem", premiumController.RedeemCode)
		}

		// back office
		admin := v1.Group("/admin")
		admin.Use(middleware.AuthMiddleware())
		admin.Use(middleware.RequireRoles(models.RoleAdmin))
		{
			admin.GET("/dashboard", adminDashboardController.Dashboard)
			admin.GET("/activities", activityController.GetRecentActivities)

			admin.GET("/users", userManagementController.ListUsers)
			admin.GET("/users/:id", userManagementController.GetUser)
			admin.PUT("/users/:id", userManagementController.UpdateUser)
			admin.DELETE("/users/:id", userManagementController.DeleteUser)
			admin.POST("/users/:id/premium", userManagementController.GrantPremium)

			admin.GET("/movies", adminMovieController.AdminListMovies)
			admin.POST("/movies", adminMovieController.CreateMovie)
			admin.PUT("/movies/:id", adminMovieController.UpdateMovie)
			admin.DELETE("/movies/:id", adminMovieController.DeleteMovie)
			admin.POST("/movies/bulk", adminMovieController.BulkMovieAction)
			admin.GET("/movies/:id/analytics", adminMovieController.MovieAnalytics)
			admin.POST("/movies/:id/refresh-rating", adminMovieController.RefreshIMDbRating)

			admin.POST("/movies/:id/videos", adminMovieController.AddVideo)
			admin.PUT("/videos/:id", adminMovieController.UpdateVideo)
			admin.DELETE("/videos/:id", adminMovieController.DeleteVideo)

			admin.POST("/movies/:id/episodes", adminMovieController.AddEpisode)
			admin.PUT("/episodes/:id", adminMovieController.UpdateEpisode)
			admin.DELETE("/episodes/:id", adminMovieController.DeleteEpisode)

			admin.POST("/categories", adminCatalogController.CreateCategory)
			admin.PUT("/categories/:id", adminCatalogController.UpdateCategory)
			admin.DELETE("/categories/:id", adminCatalogController.DeleteCategory)
			admin.POST("/genres", adminCatalogController.CreateGenre)
			admin.PUT("/genres/:id", adminCatalogController.UpdateGenre)
			admin.DELETE("/genres/:id", adminCatalogController.DeleteGenre)

			admin.GET("/carousels", carouselController.AdminListCarousels)
			admin.POST("/carousels", carouselController.CreateCarousel)
			admin.PUT("/carousels/:id", carouselController.UpdateCarousel)
			admin.DELETE("/carousels/:id", carouselController.DeleteCarousel)

			admin.GET("/premium-codes", adminPremiumCodeController.ListCodes)
			admin.POST("/premium-codes", adminPremiumCodeController.GenerateCodes)
			admin.DELETE("/premium-codes/:id", adminPremiumCodeController.DeleteCode)

			admin.GET("/comments", adminModerationController.ListComments)
			admin.PUT("/comments/:id/visibility", adminModerationController.SetCommentVisibility)
			admin.DELETE("/comments/:id", adminModerationController.PurgeComment)
			admin.GET("/ratings", adminModerationController.ListRatings)
			admin.DELETE("/ratings/:id", adminModerationController.PurgeRating)

			admin.GET("/system/status", controllers.GetSystemStatus)
			admin.GET("/logs", controllers.GetLogs)
		}

		// the websocket route authenticates inside the handler; the upgrade
		// cannot carry an Authorization header from a browser
		v1.GET("/admin/logs/watch", controllers.WatchLogs)
	}

	interval := time.Duration(config.GetConfig().SweepInterval) * time.Minute
	maintenance := sweeper.NewSweeper(db, interval, mailService, activityService)
	maintenance.Start()

	r.Run(":8081")
}
