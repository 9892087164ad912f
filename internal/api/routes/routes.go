package routes

import (
	"fmt"

	"performance-backend/internal/api/handlers"
	"performance-backend/internal/api/middleware"
	"performance-backend/internal/auth"
	"performance-backend/internal/cache"
	"performance-backend/internal/config"
	"performance-backend/internal/database/models"
	"performance-backend/internal/logger"
	"performance-backend/internal/repository"
	"performance-backend/internal/service"
	"performance-backend/internal/slack"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

const analyticsCachePrefix = "performance:analytics:"

// SetupRoutes configures all the routes for the application. redisClient may be nil, in which
// case analytics are computed on every request.
func SetupRoutes(db *gorm.DB, cfg *config.Config, redisClient redis.UniversalClient) (*gin.Engine, error) {
	// Create router
	router := gin.New()

	// Add middleware
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.CORS(cfg))

	// Initialize validator
	validator := validator.New()

	// Initialize repositories
	organisationRepo := repository.NewOrganisationRepository(db)
	departmentRepo := repository.NewDepartmentRepository(db)
	teamRepo := repository.NewTeamRepository(db)
	designationRepo := repository.NewDesignationRepository(db)
	roleRepo := repository.NewRoleRepository(db)
	employeeRepo := repository.NewEmployeeRepository(db)
	reviewCycleRepo := repository.NewReviewCycleRepository(db)
	kraRepo := repository.NewKRARepository(db)
	kpiRepo := repository.NewKPIRepository(db)
	reviewRepo := repository.NewReviewRepository(db)
	goalRepo := repository.NewGoalRepository(db)
	suggestionRepo := repository.NewSuggestionRepository(db)
	activityRepo := repository.NewUserActivityRepository(db)
	slackRepo := repository.NewSlackIntegrationRepository(db)

	// Initialize auth
	authService, err := auth.NewAuthService(auth.NewAuthConfig(cfg))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize auth service: %w", err)
	}

	// Optional integrations
	var directory service.DirectorySearcher
	if cfg.LDAPEnabled() {
		directory = service.NewLDAPService(cfg)
	} else {
		logger.New().Info("LDAP_HOST not set, directory search disabled")
	}

	var slackAPI service.SlackAPI
	if cfg.SlackEnabled() {
		slackAPI = slack.NewClient(slack.Config{
			ClientID:      cfg.SlackClientID,
			ClientSecret:  cfg.SlackClientSecret,
			SigningSecret: cfg.SlackSigningSecret,
			RedirectURL:   cfg.SlackRedirectURL,
		})
	} else {
		logger.New().Info("Slack credentials not set, notifications disabled")
	}

	var analyticsCache cache.Cache = cache.NoopCache{}
	if redisClient != nil {
		analyticsCache = cache.NewRedisCache(redisClient, analyticsCachePrefix)
	}

	// Initialize services
	activityService := service.NewUserActivityService(activityRepo)
	slackService := service.NewSlackService(slackAPI, authService, slackRepo, employeeRepo, activityService)
	organisationService := service.NewOrganisationService(organisationRepo, employeeRepo, activityService, validator)
	departmentService := service.NewDepartmentService(departmentRepo, activityService, validator)
	teamService := service.NewTeamService(teamRepo, departmentRepo, activityService, validator)
	designationService := service.NewDesignationService(designationRepo, teamRepo, activityService, validator)
	roleService := service.NewRoleService(roleRepo, activityService, validator)
	employeeService := service.NewEmployeeService(employeeRepo, roleRepo, departmentRepo, teamRepo, designationRepo, directory, activityService, validator)
	reviewCycleService := service.NewReviewCycleService(reviewCycleRepo, organisationRepo, slackService, activityService, validator)
	kraService := service.NewKRAService(kraRepo, reviewCycleRepo, organisationRepo, activityService, validator)
	kpiService := service.NewKPIService(kpiRepo, kraRepo, departmentRepo, teamRepo, designationRepo, employeeRepo, activityService, validator)
	reviewService := service.NewReviewService(service.ReviewRepositories{
		Reviews:   reviewRepo,
		Cycles:    reviewCycleRepo,
		Orgs:      organisationRepo,
		Employees: employeeRepo,
		KPIs:      kpiRepo,
		KRAs:      kraRepo,
		Goals:     goalRepo,
		Roles:     roleRepo,
	}, slackService, activityService, validator)
	goalService := service.NewGoalService(goalRepo, reviewCycleRepo, employeeRepo, slackService, activityService, validator)
	suggestionService := service.NewSuggestionService(suggestionRepo, roleRepo, activityService, validator)
	analyticsService := service.NewAnalyticsService(reviewRepo, reviewCycleRepo, employeeRepo, organisationRepo, analyticsCache, cfg.AnalyticsCacheTTL)
	slackService.WithGoals(goalService)

	authHandler := auth.NewAuthHandler(authService)
	authMiddleware := auth.NewAuthMiddleware(authService, roleService)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db, redisClient)
	organisationHandler := handlers.NewOrganisationHandler(organisationService)
	departmentHandler := handlers.NewDepartmentHandler(departmentService)
	teamHandler := handlers.NewTeamHandler(teamService)
	designationHandler := handlers.NewDesignationHandler(designationService)
	roleHandler := handlers.NewRoleHandler(roleService)
	employeeHandler := handlers.NewEmployeeHandler(employeeService)
	directoryHandler := handlers.NewDirectoryHandler(employeeService)
	reviewCycleHandler := handlers.NewReviewCycleHandler(reviewCycleService)
	kraHandler := handlers.NewKRAHandler(kraService)
	kpiHandler := handlers.NewKPIHandler(kpiService)
	reviewHandler := handlers.NewReviewHandler(reviewService)
	goalHandler := handlers.NewGoalHandler(goalService)
	suggestionHandler := handlers.NewSuggestionHandler(suggestionService)
	activityHandler := handlers.NewUserActivityHandler(activityService)
	analyticsHandler := handlers.NewAnalyticsHandler(analyticsService)
	slackHandler := handlers.NewSlackHandler(slackService)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Slack callbacks are verified by signature or signed state, not by bearer token
	slackCallbacks := router.Group("/api/slack")
	{
		slackCallbacks.POST("/events", slackHandler.Events)
		slackCallbacks.POST("/commands", slackHandler.Commands)
		slackCallbacks.GET("/oauth/callback", slackHandler.OAuthCallback)
	}

	// Onboarding creates the first administrator, so it cannot require a token
	router.POST("/api/v1/organisations/onboard", organisationHandler.Onboard)

	// API v1 routes - all other endpoints require authentication
	v1 := router.Group("/api/v1")
	v1.Use(authMiddleware.RequireAuth())

	view := func(module models.Module) gin.HandlerFunc { return authMiddleware.RequirePermission(module, false) }
	edit := func(module models.Module) gin.HandlerFunc { return authMiddleware.RequirePermission(module, true) }

	{
		v1.GET("/auth/validate", authHandler.ValidateToken)

		// Organisation routes
		organisation := v1.Group("/organisation")
		{
			organisation.GET("", organisationHandler.Get)
			organisation.PUT("", edit(models.ModuleOrganisation), organisationHandler.Update)
		}

		// Department routes
		departments := v1.Group("/departments")
		{
			departments.GET("", view(models.ModuleDepartments), departmentHandler.ListDepartments)
			departments.POST("", edit(models.ModuleDepartments), departmentHandler.CreateDepartments)
			departments.GET("/:id", view(models.ModuleDepartments), departmentHandler.GetDepartment)
			departments.PUT("/:id", edit(models.ModuleDepartments), departmentHandler.UpdateDepartment)
		}

		// Team routes
		teams := v1.Group("/teams")
		{
			teams.GET("", view(models.ModuleTeams), teamHandler.ListTeams)
			teams.POST("", edit(models.ModuleTeams), teamHandler.CreateTeams)
			teams.GET("/:id", view(models.ModuleTeams), teamHandler.GetTeam)
			teams.PUT("/:id", edit(models.ModuleTeams), teamHandler.UpdateTeam)
		}

		// Designation routes
		designations := v1.Group("/designations")
		{
			designations.GET("", view(models.ModuleDesignations), designationHandler.ListDesignations)
			designations.POST("", edit(models.ModuleDesignations), designationHandler.CreateDesignations)
			designations.GET("/:id", view(models.ModuleDesignations), designationHandler.GetDesignation)
			designations.PUT("/:id", edit(models.ModuleDesignations), designationHandler.UpdateDesignation)
		}

		// Role routes
		roles := v1.Group("/roles")
		{
			roles.GET("", view(models.ModuleRoles), roleHandler.ListRoles)
			roles.POST("", edit(models.ModuleRoles), roleHandler.CreateRole)
			roles.GET("/:id", view(models.ModuleRoles), roleHandler.GetRole)
			roles.PUT("/:id", edit(models.ModuleRoles), roleHandler.UpdateRole)
		}

		// Employee routes
		employees := v1.Group("/employees")
		{
			employees.GET("", view(models.ModuleEmployees), employeeHandler.ListEmployees)
			employees.POST("", edit(models.ModuleEmployees), employeeHandler.CreateEmployee)
			employees.GET("/reportees", employeeHandler.GetReportees)
			employees.GET("/directory", edit(models.ModuleEmployees), directoryHandler.Search)
			employees.GET("/:id", view(models.ModuleEmployees), employeeHandler.GetEmployee)
			employees.PUT("/:id", edit(models.ModuleEmployees), employeeHandler.UpdateEmployee)
			employees.PATCH("/:id/status", edit(models.ModuleEmployees), employeeHandler.SetEmployeeStatus)
			employees.GET("/:id/kpis", view(models.ModuleKPIs), kpiHandler.ListEmployeeKPIs)
		}

		// Review cycle routes
		reviewCycles := v1.Group("/review-cycles")
		{
			reviewCycles.GET("", view(models.ModuleReviewCycles), reviewCycleHandler.ListReviewCycles)
			reviewCycles.POST("", edit(models.ModuleReviewCycles), reviewCycleHandler.CreateReviewCycle)
			reviewCycles.GET("/active", reviewCycleHandler.GetActiveReviewCycle)
			reviewCycles.GET("/:id", view(models.ModuleReviewCycles), reviewCycleHandler.GetReviewCycle)
			reviewCycles.PUT("/:id", edit(models.ModuleReviewCycles), reviewCycleHandler.UpdateReviewCycle)
			reviewCycles.GET("/:id/team-status", view(models.ModuleTeamReviews), reviewHandler.TeamStatus)
		}

		// KRA routes
		kras := v1.Group("/kras")
		{
			kras.GET("", view(models.ModuleKRAs), kraHandler.ListKRAs)
			kras.POST("", edit(models.ModuleKRAs), kraHandler.CreateKRA)
			kras.PUT("/weightages", edit(models.ModuleKRAs), kraHandler.UpdateWeightages)
		}

		// KPI routes
		kpis := v1.Group("/kpis")
		{
			kpis.GET("", view(models.ModuleKPIs), kpiHandler.ListKPIs)
			kpis.POST("", edit(models.ModuleKPIs), kpiHandler.CreateKPI)
			kpis.GET("/:id", view(models.ModuleKPIs), kpiHandler.GetKPI)
			kpis.PUT("/:id", edit(models.ModuleKPIs), kpiHandler.UpdateKPI)
		}

		// Review routes; the service checks the reviewer relationship
		reviews := v1.Group("/reviews")
		{
			reviews.GET("", reviewHandler.GetReview)
			reviews.POST("/self", reviewHandler.SubmitSelfReview)
			reviews.POST("/manager", edit(models.ModuleTeamReviews), reviewHandler.SubmitManagerReview)
			reviews.POST("/check-in", edit(models.ModuleTeamReviews), reviewHandler.SubmitCheckIn)
		}

		// Goal routes
		goals := v1.Group("/goals")
		{
			goals.GET("", goalHandler.ListGoals)
			goals.POST("", edit(models.ModuleGoals), goalHandler.CreateGoal)
			goals.PATCH("/:id/progress", goalHandler.UpdateGoalProgress)
		}

		// Suggestion routes
		suggestions := v1.Group("/suggestions")
		{
			suggestions.POST("", suggestionHandler.CreateSuggestion)
			suggestions.GET("/mine", suggestionHandler.ListMySuggestions)
			suggestions.GET("/received", view(models.ModuleReceivedSuggestions), suggestionHandler.ListReceivedSuggestions)
			suggestions.PUT("/:id", suggestionHandler.UpdateSuggestion)
			suggestions.PATCH("/:id/progress", edit(models.ModuleReceivedSuggestions), suggestionHandler.UpdateSuggestionProgress)
			suggestions.GET("/:id/comments", suggestionHandler.ListSuggestionComments)
		}

		// User activity routes
		v1.GET("/user-activities", view(models.ModuleUserActivity), activityHandler.ListActivities)

		// Analytics routes
		analytics := v1.Group("/analytics", view(models.ModuleAnalytics))
		{
			analytics.GET("/employees", analyticsHandler.EmployeesData)
			analytics.GET("/review-cycles/:id/ratings", analyticsHandler.RatingsDistribution)
			analytics.GET("/review-cycles/:id/status", analyticsHandler.ReviewStatus)
			analytics.GET("/review-cycles/:id/export", analyticsHandler.Export)
		}

		// Integration routes
		integrations := v1.Group("/integrations/slack")
		{
			integrations.GET("", view(models.ModuleIntegrations), slackHandler.Status)
			integrations.GET("/install", edit(models.ModuleIntegrations), slackHandler.InstallURL)
			integrations.DELETE("", edit(models.ModuleIntegrations), slackHandler.Disconnect)
		}
	}

	// Catch-all route for undefined endpoints
	router.NoRoute(func(c *gin.Context) {
		c.JSON(404, gin.H{
			"error":      "Endpoint not found",
			"path":       c.Request.URL.Path,
			"method":     c.Request.Method,
			"request_id": c.GetString(logger.RequestIDKey),
		})
	})

	return router, nil
}

// SetupHealthRoutes sets up only health check routes (useful for testing)
func SetupHealthRoutes(db *gorm.DB, redisClient redis.UniversalClient) *gin.Engine {
	router := gin.New()
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())

	healthHandler := handlers.NewHealthHandler(db, redisClient)
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	return router
}
