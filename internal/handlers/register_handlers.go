package handlers

import (
	"github.com/craftline/craftline_backend/cmd/docs"
	portssvc "github.com/craftline/craftline_backend/internal/core/ports/services"
	"github.com/craftline/craftline_backend/internal/middleware"
	"github.com/craftline/craftline_backend/internal/platform/config"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {

	// Add health check route
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})

	// Setup API v1 routes, passing service interfaces
	setupAPIV1Routes(r, cfg, services)

	// Swagger routes (typically public or conditionally available)
	setupSwaggerRoutes(r, cfg)
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific entity route registrations
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	service *portssvc.ServiceContainer,
) {
	// Bearer tokens are optional here; when present they attribute trash
	// actions to an actor.
	v1 := r.Group("/api/v1", middleware.BearerActorMiddleware(cfg.JWTSecret))

	registerExampleRoutes(v1)
	registerProjectRoutes(v1, service.Project)
	registerExpenseRoutes(v1, service.Expense)
	registerPaymentRoutes(v1, service.Payment)
	registerSupplierRoutes(v1, service.Supplier)
	registerProjectItemRoutes(v1, service.ProjectItem)
	registerTeamRoutes(v1, service.Team, service.TeamMember)
	registerQuotationRoutes(v1, service.Quotation)
	registerTrashRoutes(v1, service.Trash)
	registerAnalyticsRoutes(v1, service.Reporting)
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	// Swagger setup
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api/v1"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
