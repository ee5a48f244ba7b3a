package routes

import (
	"volunteer-hub-backend/internal/api/handlers"
	"volunteer-hub-backend/internal/api/middleware"
	"volunteer-hub-backend/internal/config"
	"volunteer-hub-backend/internal/delivery"
	"volunteer-hub-backend/internal/repository"
	"volunteer-hub-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// SetupRoutes configures all the routes for the application
func SetupRoutes(store repository.Store, cfg *config.Config) *gin.Engine {
	// Create router
	router := gin.New()

	// Add middleware
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(cfg))

	// Initialize validator
	validator := validator.New()

	// Initialize repositories
	groupRepo := repository.NewGroupRepository(store)
	departmentRepo := repository.NewDepartmentRepository(store)
	spocRepo := repository.NewSPOCRepository(store)
	organizationRepo := repository.NewOrganizationRepository(store)

	// Initialize delivery simulations
	otpSender := delivery.NewSimulatedSender(cfg.OTPSendDelay)
	identityVerifier := delivery.NewSimulatedVerifier(cfg.IDVerifyDelay)

	// Initialize services
	verificationService := service.NewVerificationService(otpSender, identityVerifier, validator)
	groupService := service.NewGroupService(groupRepo, spocRepo, validator, cfg.PublicBaseURL)
	departmentService := service.NewDepartmentService(departmentRepo, validator)
	spocService := service.NewSPOCService(spocRepo, departmentRepo, validator)
	organizationService := service.NewOrganizationService(organizationRepo, validator)
	exportService := service.NewExportService(groupRepo, departmentRepo, spocRepo, organizationRepo)
	qrService := service.NewQRService(organizationRepo)
	statisticsService := service.NewStatisticsService(groupRepo)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(store)
	verificationHandler := handlers.NewVerificationHandler(verificationService)
	groupHandler := handlers.NewGroupHandler(groupService, verificationService, qrService)
	departmentHandler := handlers.NewDepartmentHandler(departmentService, spocService)
	spocHandler := handlers.NewSPOCHandler(spocService)
	organizationHandler := handlers.NewOrganizationHandler(organizationService)
	exportHandler := handlers.NewExportHandler(exportService)
	statisticsHandler := handlers.NewStatisticsHandler(statisticsService)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/live", healthHandler.Live)

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Verification routes
		verifications := v1.Group("/verifications")
		{
			verifications.POST("", verificationHandler.StartVerification)
			verifications.GET("/:id", verificationHandler.GetVerification)
			verifications.DELETE("/:id", verificationHandler.CancelVerification)
			verifications.POST("/:id/mobile/request", verificationHandler.RequestMobileOTP)
			verifications.POST("/:id/mobile/submit", verificationHandler.SubmitMobileOTP)
			verifications.POST("/:id/email/request", verificationHandler.RequestEmailOTP)
			verifications.POST("/:id/email/submit", verificationHandler.SubmitEmailOTP)
			verifications.POST("/:id/government-id", verificationHandler.SubmitGovernmentID)
		}

		// Group routes
		groups := v1.Group("/groups")
		{
			groups.GET("", groupHandler.GetGroups)
			groups.POST("", groupHandler.CreateGroup)
			groups.POST("/join", groupHandler.JoinGroup)
			groups.GET("/by-code/:code", groupHandler.ResolveGroup)
			groups.GET("/:id", groupHandler.GetGroup)
			groups.PUT("/:id/task", groupHandler.AssignTask)
			groups.PUT("/:id/spoc", groupHandler.AssignSPOC)
			groups.GET("/:id/qr", groupHandler.GroupQR)
		}

		// Department routes
		departments := v1.Group("/departments")
		{
			departments.GET("", departmentHandler.GetDepartments)
			departments.POST("", departmentHandler.CreateDepartment)
			departments.GET("/:id", departmentHandler.GetDepartment)
			departments.PUT("/:id", departmentHandler.UpdateDepartment)
			departments.DELETE("/:id", departmentHandler.DeleteDepartment)
			departments.GET("/:id/spocs", departmentHandler.GetDepartmentSPOCs)
		}

		// SPOC routes
		spocs := v1.Group("/spocs")
		{
			spocs.GET("", spocHandler.GetSPOCs)
			spocs.POST("", spocHandler.CreateSPOC)
			spocs.GET("/:id", spocHandler.GetSPOC)
			spocs.PUT("/:id", spocHandler.UpdateSPOC)
			spocs.DELETE("/:id", spocHandler.DeleteSPOC)
		}

		// Organization settings routes
		organization := v1.Group("/organization")
		{
			organization.GET("", organizationHandler.GetOrganization)
			organization.PUT("", organizationHandler.UpdateOrganization)
		}

		// Dashboard aggregates
		v1.GET("/statistics", statisticsHandler.GetStatistics)

		// Full-state export
		v1.GET("/export", exportHandler.Export)
	}

	// Catch-all route for undefined endpoints
	router.NoRoute(func(c *gin.Context) {
		c.JSON(404, gin.H{
			"error":      "Endpoint not found",
			"path":       c.Request.URL.Path,
			"method":     c.Request.Method,
			"request_id": c.GetString(middleware.RequestIDKey),
		})
	})

	return router
}

// SetupHealthRoutes sets up only health check routes (useful for testing)
func SetupHealthRoutes(store repository.Store) *gin.Engine {
	router := gin.New()
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())

	healthHandler := handlers.NewHealthHandler(store)
	router.GET("/health", healthHandler.Health)
	router.GET("/health/live", healthHandler.Live)

	return router
}
