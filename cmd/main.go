package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"vazifa/internal/config"
	projects_controllers "vazifa/internal/features/projects/controllers"
	system_healthcheck "vazifa/internal/features/system/healthcheck"
	tasks_controllers "vazifa/internal/features/tasks/controllers"
	users_controllers "vazifa/internal/features/users/controllers"
	users_middleware "vazifa/internal/features/users/middleware"
	users_services "vazifa/internal/features/users/services"
	"vazifa/internal/storage"
	cache_utils "vazifa/internal/util/cache"
	env_utils "vazifa/internal/util/env"
	"vazifa/internal/util/logger"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
)

func main() {
	log := logger.GetLogger()

	// Connects and runs migrations on first use
	storage.GetDb()

	if config.GetEnv().ValkeyHost != "" {
		cache_utils.TestCacheConnection()
	}

	gin.SetMode(gin.ReleaseMode)
	ginApp := gin.Default()

	ginApp.Use(gzip.Gzip(gzip.DefaultCompression))

	enableCors(ginApp)
	setUpRoutes(ginApp)

	startServerWithGracefulShutdown(log, ginApp)
}

func setUpRoutes(r *gin.Engine) {
	v1 := r.Group("/api/v1")

	// Public routes (only user auth routes and healthcheck)
	userController := users_controllers.GetUserController()
	userController.RegisterRoutes(v1)
	system_healthcheck.GetHealthcheckController().RegisterRoutes(v1)

	userService := users_services.GetUserService()
	authMiddleware := users_middleware.AuthMiddleware(userService)

	// Protected routes
	protected := v1.Group("")
	protected.Use(authMiddleware)

	userController.RegisterProtectedRoutes(protected)
	projects_controllers.GetProjectController().RegisterRoutes(protected)
	projects_controllers.GetMembershipController().RegisterRoutes(protected)
	tasks_controllers.GetTaskController().RegisterRoutes(protected)
	tasks_controllers.GetCollaboratorController().RegisterRoutes(protected)
}

func enableCors(ginApp *gin.Engine) {
	if config.GetEnv().EnvMode != env_utils.EnvModeDevelopment {
		return
	}

	ginApp.Use(cors.New(cors.Config{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders: []string{
			"Origin",
			"Content-Length",
			"Content-Type",
			"Authorization",
			"Accept",
			"Accept-Language",
			"Accept-Encoding",
			"Access-Control-Request-Method",
			"Access-Control-Request-Headers",
		},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
}

func startServerWithGracefulShutdown(log *slog.Logger, app *gin.Engine) {
	host := ""
	if config.GetEnv().EnvMode == env_utils.EnvModeDevelopment {
		host = "127.0.0.1"
	}

	srv := &http.Server{
		Addr:    host + ":" + config.GetEnv().ServerPort,
		Handler: app,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("listen:", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	log.Info("Shutdown signal received")

	// Give in-flight requests 10 seconds to finish
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("Server forced to shutdown:", "error", err)
	}

	log.Info("Server gracefully stopped")
}
