// Package router sets up the HTTP routing for the application.
package router

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/productivity-hub/backend/config"
	"github.com/productivity-hub/backend/internal/integration/entrypoint/controller"
	"github.com/productivity-hub/backend/internal/integration/entrypoint/dto"
	"github.com/productivity-hub/backend/internal/integration/entrypoint/middleware"
)

// Controllers groups the HTTP handlers mounted by the router.
type Controllers struct {
	Health      *controller.HealthController
	Auth        *controller.AuthController
	Task        *controller.TaskController
	Transaction *controller.TransactionController
	Category    *controller.CategoryController
	Goal        *controller.GoalController
	Finance     *controller.FinanceController
	Project     *controller.ProjectController
	Event       *controller.EventController
	Draft       *controller.DraftController
	Dashboard   *controller.DashboardController
}

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine         *gin.Engine
	controllers    Controllers
	websocket      http.HandlerFunc
	rateLimiter    *middleware.RateLimiter
	quotas         config.RateLimitConfig
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	controllers Controllers,
	websocket http.HandlerFunc,
	rateLimiter *middleware.RateLimiter,
	quotas config.RateLimitConfig,
	authMiddleware *middleware.AuthMiddleware,
) *Router {
	return &Router{
		controllers:    controllers,
		websocket:      websocket,
		rateLimiter:    rateLimiter,
		quotas:         quotas,
		authMiddleware: authMiddleware,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	// Set Gin mode based on environment
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if environment == "test" {
		gin.SetMode(gin.TestMode)
	}

	// Create router with default middleware (logger and recovery)
	r.engine = gin.Default()

	r.setupHealthRoutes()
	r.setupAPIRoutes()

	r.engine.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, dto.ErrorResponse{
			Error: "Route " + c.Request.Method + " " + c.Request.URL.Path + " not found",
		})
	})

	return r.engine
}

// setupHealthRoutes configures health check endpoints.
func (r *Router) setupHealthRoutes() {
	r.engine.GET("/health", r.controllers.Health.Check)
}

// setupAPIRoutes configures the main API routes.
func (r *Router) setupAPIRoutes() {
	c := r.controllers

	v1 := r.engine.Group("/api/v1")
	{
		auth := v1.Group("/auth")
		{
			auth.POST("/login", r.rateLimiter.Limit("login", middleware.Quota{
				Attempts: r.quotas.LoginAttempts,
				Window:   r.quotas.Window,
			}), c.Auth.Login)
			auth.POST("/signup", r.rateLimiter.Limit("signup", middleware.Quota{
				Attempts: r.quotas.SignupAttempts,
				Window:   r.quotas.Window,
			}), c.Auth.Signup)
			auth.POST("/logout", c.Auth.Logout)
			auth.GET("/session", c.Auth.Session)
		}

		// Everything below requires an authenticated session
		gated := v1.Group("")
		gated.Use(r.authMiddleware.Authenticate())

		tasks := gated.Group("/tasks")
		{
			tasks.GET("", c.Task.List)
			tasks.POST("", c.Task.Create)
			tasks.POST("/quick", c.Task.QuickAdd)
			tasks.GET("/board", c.Task.Board)
			tasks.POST("/board/drop", c.Task.Drop)
			tasks.PATCH("/:id", c.Task.Update)
			tasks.PATCH("/:id/status", c.Task.ChangeStatus)
			tasks.POST("/:id/toggle", c.Task.Toggle)
			tasks.DELETE("/:id", c.Task.Delete)
		}

		transactions := gated.Group("/transactions")
		{
			transactions.GET("", c.Transaction.List)
			transactions.POST("", c.Transaction.Create)
			transactions.PATCH("/:id", c.Transaction.Update)
			transactions.DELETE("/:id", c.Transaction.Delete)
			transactions.POST("/:id/split", c.Transaction.Split)
		}

		categories := gated.Group("/categories")
		{
			categories.GET("", c.Category.List)
			categories.POST("", c.Category.Create)
			categories.PATCH("/:name", c.Category.Update)
			categories.DELETE("/:name", c.Category.Delete)
		}

		goals := gated.Group("/goals")
		{
			goals.GET("", c.Goal.List)
			goals.POST("", c.Goal.Create)
			goals.PATCH("/:id", c.Goal.Update)
			goals.DELETE("/:id", c.Goal.Delete)
		}

		finance := gated.Group("/finance")
		{
			finance.GET("/summary", c.Finance.Summary)
			finance.GET("/budgets", c.Finance.Budgets)
			finance.GET("/spending", c.Finance.Spending)
		}

		projects := gated.Group("/projects")
		{
			projects.GET("", c.Project.List)
			projects.POST("", c.Project.Create)
			projects.PATCH("/:id", c.Project.Update)
			projects.DELETE("/:id", c.Project.Delete)
		}

		events := gated.Group("/events")
		{
			events.GET("", c.Event.List)
			events.GET("/days", c.Event.Days)
			events.POST("", c.Event.Create)
			events.PATCH("/:id", c.Event.Update)
			events.DELETE("/:id", c.Event.Delete)
		}

		drafts := gated.Group("/drafts")
		{
			drafts.GET("", c.Draft.Kinds)
			drafts.POST("/:kind", c.Draft.Begin)
			drafts.GET("/:kind/:handle", c.Draft.Get)
			drafts.PATCH("/:kind/:handle", c.Draft.Update)
			drafts.POST("/:kind/:handle/commit", c.Draft.Commit)
			drafts.DELETE("/:kind/:handle", c.Draft.Discard)
		}

		gated.GET("/dashboard", c.Dashboard.Overview)

		if r.websocket != nil {
			gated.GET("/ws", gin.WrapF(r.websocket))
		}
	}
}

// Engine returns the underlying Gin engine.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}
