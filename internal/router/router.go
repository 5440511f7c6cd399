package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sportnest/sportscomplex-backend/internal/config"
	"github.com/sportnest/sportscomplex-backend/internal/handler"
	"github.com/sportnest/sportscomplex-backend/internal/middleware"
	"github.com/sportnest/sportscomplex-backend/internal/response"
	"github.com/sportnest/sportscomplex-backend/internal/service"
)

// Handlers groups all handler instances for route setup.
type Handlers struct {
	User       *handler.UserHandler
	Sport      *handler.SportHandler
	Class      *handler.SportsClassHandler
	Enrollment *handler.EnrollmentHandler
	Rating     *handler.RatingHandler
}

// SetupRouter configures all Gin route groups with appropriate middlewares.
func SetupRouter(
	authService *service.AuthService,
	userService *service.UserService,
	handlers *Handlers,
	cfg *config.Config,
) *gin.Engine {
	gin.SetMode(cfg.GinMode)
	router := gin.Default()

	// If AllowedOrigins is set in config, restrict to that list;
	// otherwise allow all (*) so dev works without extra config.
	corsConfig := cors.DefaultConfig()
	if len(cfg.AllowedOrigins) > 0 {
		corsConfig.AllowOrigins = cfg.AllowedOrigins
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"}
	corsConfig.ExposeHeaders = []string{"X-Request-ID"}
	corsConfig.MaxAge = 12 * time.Hour
	router.Use(cors.New(corsConfig))

	// Apply request ID middleware globally so every response includes metadata.
	router.Use(response.RequestIDMiddleware())

	// Apply brotli middleware globally.
	router.Use(middleware.Brotli())

	// Health check.
	router.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, gin.H{"status": "ok"})
	})

	authUser := middleware.RequireAuth(authService, userService, middleware.AccessUser)
	authAdmin := middleware.RequireAuth(authService, userService, middleware.AccessAdmin)
	authAny := middleware.RequireAuth(authService, userService, middleware.AccessAny)

	// Rate limiter for the credential endpoints (30 requests per minute per IP).
	authLimiter := middleware.NewRateLimiter(30, time.Minute)

	api := router.Group("/api/v1")

	users := api.Group("/users")
	{
		users.POST("/user/register", authLimiter.Middleware(), handlers.User.RegisterUser)
		users.POST("/admin/register", authLimiter.Middleware(), handlers.User.RegisterAdmin)
		users.POST("/login", authLimiter.Middleware(), handlers.User.Login)
		users.POST("/forgotpassword", authLimiter.Middleware(), handlers.User.ForgotPassword)
		users.POST("/resetpassword/:id/:code", authLimiter.Middleware(), handlers.User.ResetPassword)
		users.GET("/verify/:id/:code", handlers.User.Verify)

		users.GET("", authAdmin, handlers.User.ListUsers)
		users.GET("/:id", authAdmin, handlers.User.GetUser)
		users.PATCH("/:id", authAdmin, handlers.User.UpdateUser)
		users.DELETE("/:id", authAdmin, handlers.User.DeleteUser)
	}

	sports := api.Group("/sports")
	{
		sports.GET("", authAny, handlers.Sport.ListSports)
		sports.POST("", authAdmin, handlers.Sport.CreateSport)
		sports.GET("/:id", authAdmin, handlers.Sport.GetSport)
		sports.DELETE("/:id", authAdmin, handlers.Sport.DeleteSport)
	}

	classes := api.Group("/classes")
	{
		classes.GET("", authAny, handlers.Class.ListSportsClasses)
		classes.GET("/:id", authAny, handlers.Class.GetSportsClass)
		classes.POST("", authAdmin, handlers.Class.CreateSportsClass)
		classes.PATCH("/:id", authAdmin, handlers.Class.UpdateSportsClass)
		classes.DELETE("/:id", authAdmin, handlers.Class.DeleteSportsClass)
	}

	enrollments := api.Group("/enrollments")
	{
		enrollments.POST("", authUser, handlers.Enrollment.CreateEnrollment)
		enrollments.GET("", authAdmin, handlers.Enrollment.ListEnrollments)
		enrollments.GET("/:id", authAdmin, handlers.Enrollment.GetEnrollment)
		enrollments.GET("/user/:userId", authAdmin, handlers.Enrollment.EnrollmentsByUser)
		enrollments.GET("/class/:classId", authAdmin, handlers.Enrollment.EnrollmentsByClass)
		enrollments.GET("/user/:userId/class/:classId", authAdmin, handlers.Enrollment.EnrollmentByPair)
		enrollments.PATCH("/:id", authUser, handlers.Enrollment.UpdateEnrollment)
		enrollments.DELETE("/:id", authAny, handlers.Enrollment.DeleteEnrollment)
	}

	ratings := api.Group("/ratings")
	{
		ratings.POST("", authUser, handlers.Rating.CreateRating)
		ratings.GET("", authAdmin, handlers.Rating.ListRatings)
		ratings.GET("/:id", authAdmin, handlers.Rating.GetRating)
		ratings.GET("/class/:classId", authAdmin, handlers.Rating.RatingsByClass)
		ratings.GET("/user/:userId", authAdmin, handlers.Rating.RatingsByUser)
		ratings.GET("/average/:classId", authAdmin, handlers.Rating.AverageRatingForClass)
		ratings.DELETE("/:id", authAdmin, handlers.Rating.DeleteRating)
	}

	return router
}
