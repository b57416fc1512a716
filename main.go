package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"hotel-admin/config"
	"hotel-admin/controllers"
	"hotel-admin/forms"
	"hotel-admin/routes"
	"hotel-admin/services"
)

func main() {
	envErr := godotenv.Load()

	settings := config.Load()
	log, logCloser := config.NewLogger(settings.LogLevel, settings.LogFile)
	defer logCloser.Close()

	if envErr != nil {
		log.Info(".env not found; continuing with environment variables")
	}
	if settings.JWTSecret == "" {
		log.Fatal("JWT_SECRET environment variable is not set")
	}
	if settings.LogLevel != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := config.ConnectDatabase(log, settings)
	if err != nil {
		log.WithError(err).Fatal("database connect failed")
	}
	log.Info("database connection established and migrations applied")

	services.DefaultOriginCountry = settings.OriginCountry

	roomService := services.NewRoomService(db)
	reservationService := services.NewReservationService(db)
	roleService := services.NewRoleService(db)
	userService := services.NewUserService(db)
	auditService := services.NewAuditService(db)
	dashboardService := services.NewDashboardService(db, settings.Location)
	formSessions := forms.NewStore(settings.FormSessionTTL)

	router := routes.SetupRouter(routes.Controllers{
		Auth:         controllers.NewAuthController(userService, settings.JWTSecret, settings.JWTTTL),
		Rooms:        controllers.NewRoomController(roomService),
		Reservations: controllers.NewReservationController(reservationService),
		Forms:        controllers.NewFormController(reservationService, formSessions),
		Roles:        controllers.NewRoleController(roleService),
		Users:        controllers.NewUserController(userService),
		Audit:        controllers.NewAuditController(auditService),
		Dashboard:    controllers.NewDashboardController(dashboardService, settings.Locale),
	}, routes.Options{
		CORSOrigins: settings.CORSOrigins,
		JWTSecret:   settings.JWTSecret,
		Roles:       roleService,
		Audit:       auditService,
		Log:         log,
	})

	addr := ":" + settings.Port
	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadTimeout:       10 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.WithField("addr", addr).Info("server starting")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Fatal("ListenAndServe failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	log.Info("shutdown signal received, shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.WithError(err).Error("server forced to shutdown")
	}

	log.Info("server stopped gracefully")
}
