// Package server contain implementation of go-gin-server and each route handlers
package server

import (
	"net/http"
	"os"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	// Load env
	_ "github.com/joho/godotenv/autoload"

	// Init swagger doc
	_ "github.com/PiyushSRAI/sun-robotics-launchpad/docs"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/PiyushSRAI/sun-robotics-launchpad/internal/auth"
	"github.com/PiyushSRAI/sun-robotics-launchpad/internal/controller/application"
	"github.com/PiyushSRAI/sun-robotics-launchpad/internal/controller/blog"
	"github.com/PiyushSRAI/sun-robotics-launchpad/internal/controller/contact"
	"github.com/PiyushSRAI/sun-robotics-launchpad/internal/controller/job"
	"github.com/PiyushSRAI/sun-robotics-launchpad/internal/metrics"
	"github.com/PiyushSRAI/sun-robotics-launchpad/internal/middleware"
)

const maxSubmissionBytes = 1 << 20

// RegisterRoutes will register each http endpoint routes to bound Server instance
func (s *Server) RegisterRoutes() http.Handler {
	r := gin.Default()

	allowOriginsStr := os.Getenv("ALLOW_ORIGIN")
	allowOrigins := strings.Split(allowOriginsStr, ",")

	lAuth := auth.NewLocalAuthHandler(s.DB)
	jobController := job.NewJobController(s.DB)
	applicationController := application.NewApplicationController(s.DB)
	blogController := blog.NewBlogController(s.DB)
	contactController := contact.NewContactController(s.DB)

	r.Use(cors.New(cors.Config{
		AllowOrigins:     allowOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowHeaders:     []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
	}))
	r.Use(middleware.SafeHeader(), metrics.Middleware())

	r.GET("/", s.HelloWorldHandler)
	r.GET("/health", s.healthHandler)
	r.GET("/metrics", metrics.Handler())

	api := r.Group("/api")
	{
		authRoute := api.Group("/auth")
		{
			authRoute.POST("login", middleware.EnvRateLimitMiddleware(), lAuth.LocalLoginHandler)
		}

		// Public routes, no identity required
		api.GET("/jobs", jobController.GetActiveJobs)
		api.GET("/jobs/:id", jobController.GetJobByID)
		api.GET("/blogs", blogController.GetAllBlogs)
		api.GET("/blogs/:id", blogController.GetBlogByID)

		submit := api.Group("", middleware.EnvRateLimitMiddleware(), middleware.SizeLimit(maxSubmissionBytes))
		{
			submit.POST("/applications/apply", applicationController.ApplyHandler)
			submit.POST("/contact", contactController.SendMessageHandler)
		}

		// Admin routes, a valid identity is required
		admin := api.Group("/admin")
		{
			admin.Use(middleware.RequireAuth(s.DB))

			admin.GET("/jobs", jobController.GetAllJobs)
			admin.POST("/jobs", jobController.CreateJob)
			admin.PUT("/jobs/:id", jobController.UpdateJob)
			admin.DELETE("/jobs/:id", jobController.DeleteJob)

			admin.GET("/applications", applicationController.GetAllApplications)
			admin.PATCH("/applications/:id/status", applicationController.UpdateApplicationStatus)

			admin.GET("/messages", contactController.GetAllMessages)
			admin.PATCH("/messages/:id/read", contactController.MarkMessageAsRead)
			admin.DELETE("/messages/:id", contactController.DeleteMessage)

			admin.POST("/blogs", blogController.CreateBlog)
			admin.PUT("/blogs/:id", blogController.UpdateBlog)
			admin.DELETE("/blogs/:id", blogController.DeleteBlog)
		}
	}

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

// HelloWorldHandler handle request by return message "Hello World"
func (s *Server) HelloWorldHandler(c *gin.Context) {
	resp := make(map[string]string)
	resp["message"] = "Hello World"

	c.JSON(http.StatusOK, resp)
}

func (s *Server) healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, s.DB.Health())
}
