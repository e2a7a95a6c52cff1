// Package router assembles the HTTP surface: middleware, route guards and
// handlers.
package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"financeapp/internal/auth"
	apperrors "financeapp/internal/errors"
	"financeapp/internal/handlers"
	"financeapp/internal/middleware"
	"financeapp/internal/rbac"
	"financeapp/internal/services"
	"financeapp/internal/validator"

	_ "financeapp/internal/docs" // Import swagger docs
)

// Sessions resolves, issues and revokes login sessions.
type Sessions interface {
	auth.Resolver
	handlers.SessionIssuer
	handlers.SessionInvalidator
}

// Deps are the collaborators the router wires into handlers.
type Deps struct {
	Sessions   Sessions
	Provider   handlers.OAuthProvider
	Movements  services.MovementServicer
	Users      services.UserServicer
	Reports    services.ReportServicer
	Audit      services.AuditServicer
	Auth       handlers.AuthConfig
	CORSOrigin string
}

// New builds the Gin engine with every route of the API.
func New(d Deps) *gin.Engine {
	validator.Register()

	authHandler := handlers.NewAuthHandler(d.Provider, d.Sessions, d.Users, d.Audit, d.Auth)
	movementHandler := handlers.NewMovementHandler(d.Movements, d.Audit)
	userHandler := handlers.NewUserHandler(d.Users, d.Sessions, d.Audit)
	reportHandler := handlers.NewReportHandler(d.Reports)

	router := gin.New()
	router.HandleMethodNotAllowed = true
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogging())
	router.Use(middleware.ErrorHandler())
	router.Use(middleware.CORS(d.CORSOrigin))

	router.NoRoute(func(c *gin.Context) { _ = c.Error(apperrors.ErrNotFound) })
	router.NoMethod(func(c *gin.Context) { _ = c.Error(apperrors.ErrMethodNotAllowed) })

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check endpoint
	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := router.Group("/api/v1")
	guard := func(p rbac.Permission, h middleware.SessionHandler) gin.HandlerFunc {
		return middleware.WithPermission(d.Sessions, p, h)
	}
	authenticated := func(h middleware.SessionHandler) gin.HandlerFunc {
		return middleware.WithAuth(d.Sessions, h)
	}

	// Public routes
	authGroup := v1.Group("/auth")
	authGroup.GET("/github", authHandler.GitHubLogin)
	authGroup.GET("/github/callback", authHandler.GitHubCallback)
	authGroup.POST("/logout", authenticated(authHandler.Logout))

	// Session routes
	v1.GET("/me", guard(rbac.ViewDashboard, authHandler.Me))
	v1.GET("/navigation", guard(rbac.ViewDashboard, authHandler.Navigation))

	// Movement routes
	movements := v1.Group("/movements")
	movements.GET("", guard(rbac.ViewMovements, movementHandler.ListMovements))
	movements.POST("", guard(rbac.CreateMovement, movementHandler.CreateMovement))

	// User routes
	users := v1.Group("/users")
	users.GET("", guard(rbac.ManageUsers, userHandler.ListUsers))
	users.PUT("/:id", guard(rbac.ManageUsers, userHandler.UpdateUser))

	// Report routes
	reports := v1.Group("/reports")
	reports.GET("", guard(rbac.ViewReports, reportHandler.GetReport))
	reports.GET("/csv", guard(rbac.ViewReports, reportHandler.ExportCSV))
	reports.GET("/pdf", guard(rbac.ViewReports, reportHandler.ExportPDF))

	return router
}
