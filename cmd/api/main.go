package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"

	"github.com/dmirandam/backoffice-backend/internal/domain/entities"
	httphandlers "github.com/dmirandam/backoffice-backend/internal/handlers/http"
	"github.com/dmirandam/backoffice-backend/internal/handlers/middleware"
	"github.com/dmirandam/backoffice-backend/internal/infrastructure/auth"
	"github.com/dmirandam/backoffice-backend/internal/infrastructure/config"
	"github.com/dmirandam/backoffice-backend/internal/infrastructure/i18n"
	"github.com/dmirandam/backoffice-backend/internal/infrastructure/logging"
	"github.com/dmirandam/backoffice-backend/internal/infrastructure/mail"
	"github.com/dmirandam/backoffice-backend/internal/infrastructure/persistence/postgres"
	"github.com/dmirandam/backoffice-backend/internal/services"
)

func main() {
	// .env es opcional; las variables de entorno mandan
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	logger := logging.NewSlogLogger(cfg.Logging.Level)
	logger.Info("starting backoffice backend",
		"env", cfg.Env,
		"version", "dev",
	)

	db, err := postgres.NewDatabaseConnection(&cfg.Database, logger)
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		log.Fatal(err)
	}

	if err := postgres.Migrate(db); err != nil {
		logger.Error("failed to migrate schema", "error", err)
		log.Fatal(err)
	}

	adminPassword := os.Getenv("SEED_ADMIN_PASSWORD")
	if adminPassword == "" {
		adminPassword = "Admin123!"
	}
	if err := postgres.Seed(db, adminPassword, logger); err != nil {
		logger.Error("failed to seed database", "error", err)
		log.Fatal(err)
	}

	i18nService, err := i18n.NewService("./internal/infrastructure/i18n/locales", "es")
	if err != nil {
		logger.Error("failed to initialize i18n", "error", err)
		log.Fatal(err)
	}
	logger.Info("i18n initialized",
		"default_language", i18nService.GetDefaultLanguage(),
		"supported_languages", i18nService.GetSupportedLanguages(),
	)

	// Repositories
	userRepo := postgres.NewUserRepository(db)
	roleRepo := postgres.NewRoleRepository(db)
	moduleRepo := postgres.NewModuleRepository(db)
	permissionRepo := postgres.NewPermissionRepository(db)
	tokenRepo := postgres.NewResetTokenRepository(db)
	taskRepo := postgres.NewTaskRepository(db)
	catalogRepo := postgres.NewCatalogRepository(db)
	uow := postgres.NewUnitOfWork(db)

	// Infraestructura
	mailer := mail.NewSMTPMailer(&cfg.SMTP, logger)
	jwtIssuer := auth.NewJWTIssuer(&cfg.JWT)
	securityLogger := services.NewSecurityLogger(logger)

	// Services
	userService := services.NewUserService(userRepo, roleRepo, permissionRepo, uow, jwtIssuer, securityLogger, logger)
	roleService := services.NewRoleService(roleRepo, userRepo, logger)
	moduleService := services.NewModuleService(moduleRepo, permissionRepo, logger)
	permissionService := services.NewPermissionService(permissionRepo, userRepo, moduleRepo, uow, logger)
	resetService := services.NewPasswordResetService(tokenRepo, userRepo, uow, mailer, securityLogger, &cfg.PasswordReset, logger)
	taskService := services.NewTaskService(taskRepo, userRepo, logger)
	catalogService := services.NewCatalogService(catalogRepo, logger)

	// Handlers
	authHandler := httphandlers.NewAuthHandler(userService, resetService, permissionService)
	userHandler := httphandlers.NewUserHandler(userService)
	roleHandler := httphandlers.NewRoleHandler(roleService)
	moduleHandler := httphandlers.NewModuleHandler(moduleService)
	permissionHandler := httphandlers.NewPermissionHandler(permissionService)
	taskHandler := httphandlers.NewTaskHandler(taskService)
	catalogHandler := httphandlers.NewCatalogHandler(catalogService)
	adminHandler := httphandlers.NewAdminHandler(resetService)

	// Limpieza periódica de tokens expirados
	scheduler := cron.New()
	if _, err := scheduler.AddFunc("@hourly", func() {
		deleted, err := resetService.CleanupExpired(context.Background())
		if err != nil {
			logger.Error("token cleanup failed", "error", err)
			return
		}
		if deleted > 0 {
			logger.Info("token cleanup finished", "deleted", deleted)
		}
	}); err != nil {
		logger.Error("failed to schedule token cleanup", "error", err)
		log.Fatal(err)
	}
	scheduler.Start()
	defer scheduler.Stop()

	// Setup Gin
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.Default()

	// Base URL para construir URIs RFC 7807
	router.Use(func(c *gin.Context) {
		c.Set("base_url", cfg.Server.BaseURL)
		c.Next()
	})

	i18nMiddleware := middleware.NewI18nMiddleware(i18nService)
	router.Use(i18nMiddleware.DetectLanguage())

	router.Use(middleware.CORS(cfg.CORS.AllowedOrigins))

	authMiddleware := middleware.NewAuthMiddleware(jwtIssuer, securityLogger)
	permMiddleware := middleware.NewPermissionMiddleware(permissionService, securityLogger)

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
			"env":    cfg.Env,
		})
	})

	// API routes
	v1 := router.Group("/api/v1")
	{
		// Autenticación y reset (públicos)
		authRoutes := v1.Group("/auth")
		{
			authRoutes.POST("/login", authHandler.Login)
			authRoutes.POST("/forgot-password", authHandler.ForgotPassword)
			authRoutes.POST("/validate-reset-token", authHandler.ValidateResetToken)
			authRoutes.POST("/reset-password", authHandler.ResetPassword)
			authRoutes.PUT("/change-password", authMiddleware.RequireAuth(), authHandler.ChangePassword)
			authRoutes.GET("/me/permissions", authMiddleware.RequireAuth(), authHandler.MyPermissions)
		}

		// Lo demás exige token y permiso por módulo:
		// GET Read, POST Write, PUT Edit, DELETE Admin
		protected := v1.Group("")
		protected.Use(authMiddleware.RequireAuth())

		users := protected.Group("/users")
		{
			users.GET("", permMiddleware.Require("USERS", entities.PermissionRead), userHandler.ListUsers)
			users.GET("/:id", permMiddleware.Require("USERS", entities.PermissionRead), userHandler.GetUser)
			users.POST("", permMiddleware.Require("USERS", entities.PermissionWrite), userHandler.CreateUser)
			users.PUT("/:id", permMiddleware.Require("USERS", entities.PermissionEdit), userHandler.UpdateUser)
			users.DELETE("/:id", permMiddleware.Require("USERS", entities.PermissionAdmin), userHandler.DeleteUser)
		}

		roles := protected.Group("/roles")
		{
			roles.GET("", permMiddleware.Require("ROLES", entities.PermissionRead), roleHandler.ListRoles)
			roles.GET("/:id", permMiddleware.Require("ROLES", entities.PermissionRead), roleHandler.GetRole)
			roles.POST("", permMiddleware.Require("ROLES", entities.PermissionWrite), roleHandler.CreateRole)
			roles.PUT("/:id", permMiddleware.Require("ROLES", entities.PermissionEdit), roleHandler.UpdateRole)
			roles.DELETE("/:id", permMiddleware.Require("ROLES", entities.PermissionAdmin), roleHandler.DeleteRole)
		}

		modules := protected.Group("/modules")
		{
			modules.GET("", permMiddleware.Require("PERMISSIONS", entities.PermissionRead), moduleHandler.ListModules)
			modules.GET("/:id", permMiddleware.Require("PERMISSIONS", entities.PermissionRead), moduleHandler.GetModule)
			modules.POST("", permMiddleware.Require("PERMISSIONS", entities.PermissionWrite), moduleHandler.CreateModule)
			modules.PUT("/:id", permMiddleware.Require("PERMISSIONS", entities.PermissionEdit), moduleHandler.UpdateModule)
			modules.DELETE("/:id", permMiddleware.Require("PERMISSIONS", entities.PermissionAdmin), moduleHandler.DeleteModule)
		}

		permissions := protected.Group("/permissions")
		{
			permissions.POST("", permMiddleware.Require("PERMISSIONS", entities.PermissionWrite), permissionHandler.AssignPermission)
			permissions.PUT("/:id", permMiddleware.Require("PERMISSIONS", entities.PermissionEdit), permissionHandler.UpdatePermission)
			permissions.GET("/users/:user_id", permMiddleware.Require("PERMISSIONS", entities.PermissionRead), permissionHandler.GetUserPermissions)
			permissions.PUT("/users/:user_id", permMiddleware.Require("PERMISSIONS", entities.PermissionEdit), permissionHandler.UpdateUserPermissions)
			permissions.DELETE("/users/:user_id", permMiddleware.Require("PERMISSIONS", entities.PermissionAdmin), permissionHandler.RemoveAllUserPermissions)
			permissions.DELETE("/users/:user_id/modules/:module_id", permMiddleware.Require("PERMISSIONS", entities.PermissionAdmin), permissionHandler.RemovePermission)
		}

		tasks := protected.Group("/tasks")
		{
			tasks.GET("", permMiddleware.Require("TASKS", entities.PermissionRead), taskHandler.ListTasks)
			tasks.GET("/:id", permMiddleware.Require("TASKS", entities.PermissionRead), taskHandler.GetTask)
			tasks.POST("", permMiddleware.Require("TASKS", entities.PermissionWrite), taskHandler.CreateTask)
			tasks.PUT("/:id", permMiddleware.Require("TASKS", entities.PermissionEdit), taskHandler.UpdateTask)
			tasks.DELETE("/:id", permMiddleware.Require("TASKS", entities.PermissionAdmin), taskHandler.DeleteTask)
		}

		catalogs := protected.Group("/catalogs")
		{
			catalogs.GET("", permMiddleware.Require("CATALOGS", entities.PermissionRead), catalogHandler.ListCatalogItems)
			catalogs.GET("/:id", permMiddleware.Require("CATALOGS", entities.PermissionRead), catalogHandler.GetCatalogItem)
			catalogs.POST("", permMiddleware.Require("CATALOGS", entities.PermissionWrite), catalogHandler.CreateCatalogItem)
			catalogs.PUT("/:id", permMiddleware.Require("CATALOGS", entities.PermissionEdit), catalogHandler.UpdateCatalogItem)
			catalogs.DELETE("/:id", permMiddleware.Require("CATALOGS", entities.PermissionAdmin), catalogHandler.DeleteCatalogItem)
		}

		admin := protected.Group("/admin/utils")
		admin.Use(permMiddleware.Require("ADMIN_UTILS", entities.PermissionAdmin))
		{
			admin.GET("/reset-attempts", adminHandler.GetResetStats)
			admin.POST("/reset-attempts/:user_id", adminHandler.ResetUserAttempts)
			admin.POST("/cleanup-tokens", adminHandler.CleanupExpiredTokens)
		}
	}

	// HTTP Server
	srv := &http.Server{
		Addr:              cfg.Server.Host + ":" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Graceful shutdown
	go func() {
		logger.Info("server starting",
			"host", cfg.Server.Host,
			"port", cfg.Server.Port,
		)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server failed", "error", err)
			log.Fatal(err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
	}

	logger.Info("server exited")
}
