package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"hotel-admin/controllers"
	"hotel-admin/middleware"
)

// Controllers groups everything SetupRouter wires.
type Controllers struct {
	Auth         *controllers.AuthController
	Rooms        *controllers.RoomController
	Reservations *controllers.ReservationController
	Forms        *controllers.FormController
	Roles        *controllers.RoleController
	Users        *controllers.UserController
	Audit        *controllers.AuditController
	Dashboard    *controllers.DashboardController
}

type Options struct {
	CORSOrigins []string
	JWTSecret   string
	Roles       middleware.RoleLister
	Audit       middleware.AuditRecorder
	Log         *logrus.Logger
}

func SetupRouter(ctl Controllers, opts Options) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.Logger(opts.Log))

	allowCredentials := true
	for _, origin := range opts.CORSOrigins {
		if origin == "*" {
			allowCredentials = false
			break
		}
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     opts.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: allowCredentials,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	api.POST("/auth/login", ctl.Auth.Login)
	api.GET("/countries/:code", ctl.Dashboard.GetCountry)

	perm := middleware.Permissions{Roles: opts.Roles, Log: opts.Log}
	secured := api.Group("", middleware.Auth(opts.JWTSecret), middleware.Audit(opts.Audit, opts.Log))
	{
		secured.GET("/dashboard/summary", perm.Require("dashboard", "read"), ctl.Dashboard.GetSummary)
		secured.POST("/permissions/check", ctl.Roles.CheckPermission)

		rooms := secured.Group("/rooms")
		{
			rooms.GET("", perm.Require("habitacion", "read"), ctl.Rooms.GetRooms)
			rooms.GET("/:id/price", perm.Require("habitacion", "read"), ctl.Rooms.GetRoomPrice)
			rooms.POST("", perm.Require("habitacion", "write"), ctl.Rooms.CreateRoom)
			rooms.PUT("/:id", perm.Require("habitacion", "write"), ctl.Rooms.UpdateRoom)
			rooms.DELETE("/:id", perm.Require("habitacion", "delete"), ctl.Rooms.DeleteRoom)
		}

		reservations := secured.Group("/reservations")
		{
			reservations.GET("", perm.Require("reserva", "read"), ctl.Reservations.GetReservations)
			reservations.GET("/:id", perm.Require("reserva", "read"), ctl.Reservations.GetReservation)
			reservations.POST("", perm.Require("reserva", "write"), ctl.Reservations.CreateReservation)
			reservations.PUT("/:id", perm.Require("reserva", "write"), ctl.Reservations.UpdateReservation)
			reservations.DELETE("/:id", perm.Require("reserva", "delete"), ctl.Reservations.DeleteReservation)
			reservations.POST("/:id/form", perm.Require("reserva", "write"), ctl.Forms.OpenReservationForm)
		}

		formRoutes := secured.Group("/forms", perm.Require("reserva", "write"))
		{
			formRoutes.GET("/:sid", ctl.Forms.GetForm)
			formRoutes.PATCH("/:sid", ctl.Forms.ChangeField)
			formRoutes.PUT("/:sid/fields/:key", ctl.Forms.SetField)
			formRoutes.POST("/:sid/validate", ctl.Forms.ValidateForm)
			formRoutes.POST("/:sid/reset", ctl.Forms.ResetForm)
			formRoutes.DELETE("/:sid", ctl.Forms.CloseForm)
		}

		secured.GET("/roles", perm.Require("usuario", "read"), ctl.Roles.GetRoles)
		secured.PUT("/roles/:id/permissions", perm.Require("usuario", "write"), ctl.Roles.UpdateRolePermissions)

		secured.GET("/users", perm.Require("usuario", "read"), ctl.Users.GetUsers)
		secured.POST("/users", perm.Require("usuario", "write"), ctl.Users.CreateUser)

		secured.GET("/audit-logs", perm.Require("auditoria", "read"), ctl.Audit.GetAuditLogs)
	}

	return r
}
