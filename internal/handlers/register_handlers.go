package handlers

import (
	"net/http"

	"github.com/SscSPs/bizdesk/cmd/docs"
	portssvc "github.com/SscSPs/bizdesk/internal/core/ports/services"
	"github.com/SscSPs/bizdesk/internal/middleware"
	"github.com/SscSPs/bizdesk/internal/platform/config"
	"github.com/SscSPs/bizdesk/internal/session"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Deps bundles what the routes need besides the services.
type Deps struct {
	Sessions session.Storage
	Roles    session.RoleResolver
	// Users is consulted on every authenticated request.
	Users middleware.UserLookup
	// AuthLimit rate limits the public auth routes. Nil disables it.
	AuthLimit gin.HandlerFunc
}

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	deps Deps,
) {
	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	requireSession := middleware.AuthMiddleware(cfg.JWTSecret, deps.Sessions, deps.Roles, deps.Users)

	authHandler := NewAuthHandler(services.Auth, deps.Sessions, deps.Roles, cfg)
	registerAuthRoutes(r, authHandler, requireSession, deps.AuthLimit)

	setupAPIV1Routes(r, services, requireSession)

	setupSwaggerRoutes(r, cfg)
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific entity route registrations
func setupAPIV1Routes(r *gin.Engine, services *portssvc.ServiceContainer, requireSession gin.HandlerFunc) {
	v1 := r.Group("/api/v1", requireSession)

	registerAccountRoutes(v1, services.Account)
	registerUserRoutes(v1, services.User)
	registerVendorRoutes(v1, services.Vendor)
	registerDepartmentRoutes(v1, services.Department)
	registerEmployeeRoutes(v1, services.Employee)
	registerFormRoutes(v1, services)
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
