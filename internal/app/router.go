package app

import (
	"nptel_prep_backend/docs"
	"nptel_prep_backend/internal/config"
	"nptel_prep_backend/internal/middleware"
	"nptel_prep_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, repos *repositories, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	a.registerPublicRoutes(router, c)

	authGroup := router.Group("/api")
	authGroup.Use(middleware.AuthMiddleware(cfg), middleware.ActivityMiddleware(repos.user))
	{
		a.registerCatalogRoutes(authGroup, c)
		a.registerQuizRoutes(authGroup, c)
		a.registerResultRoutes(authGroup, c)

		authGroup.GET("/profile", c.auth.GetProfile)
	}
}

func (a *App) registerPublicRoutes(router *gin.Engine, c *controllers) {
	public := router.Group("/api")
	{
		public.POST("/register", c.auth.Register)
		public.POST("/login", c.auth.Login)
		public.GET("/health", c.health.HealthCheck)
	}
}

func (a *App) registerCatalogRoutes(group *gin.RouterGroup, c *controllers) {
	courses := group.Group("/courses")
	{
		courses.GET("", c.course.GetCourses)
		courses.GET("/:courseCode", c.course.GetCourseDetail)
		courses.GET("/:courseCode/assignments", c.course.GetCourseAssignments)
		courses.GET("/:courseCode/quiz", c.quiz.GetWeekBank)
	}
}

func (a *App) registerQuizRoutes(group *gin.RouterGroup, c *controllers) {
	quiz := group.Group("/quiz")
	{
		quiz.POST("/start", c.quiz.StartAttempt)
		quiz.POST("/:attemptId/toggle", c.quiz.ToggleOption)
		quiz.POST("/:attemptId/submit", c.quiz.SubmitAttempt)
		quiz.GET("/:attemptId/review", c.quiz.GetReview)
		quiz.DELETE("/:attemptId", c.quiz.CancelAttempt)
	}
}

func (a *App) registerResultRoutes(group *gin.RouterGroup, c *controllers) {
	tests := group.Group("/tests")
	{
		tests.GET("", c.testResult.GetMyTests)
		tests.GET("/user/:userId", c.testResult.GetUserTests)
	}
}
