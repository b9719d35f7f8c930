package router

import (
	"github.com/labstack/echo/v4"

	"plantlog/pkg/middleware"
)

func New(
	e *echo.Echo,
	jwtSecret string,
	authCtrl interface {
		Register(echo.Context) error
		Login(echo.Context) error
		WhoAmI(echo.Context) error
	},
	parcelCtrl interface {
		Create(echo.Context) error
		List(echo.Context) error
		Get(echo.Context) error
	},
	actCtrl interface {
		Append(echo.Context) error
		List(echo.Context) error
	},
	remCtrl interface {
		Schedule(echo.Context) error
		List(echo.Context) error
		Complete(echo.Context) error
	},
	statsCtrl interface {
		Dashboard(echo.Context) error
		Analytics(echo.Context) error
		Calendar(echo.Context) error
	},
	exportCtrl interface{ Activities(echo.Context) error },
	healthCtrl interface{ Health(echo.Context) error },
) *echo.Echo {
	e.POST("/register", authCtrl.Register)
	e.POST("/login", authCtrl.Login)
	e.GET("/health", healthCtrl.Health)

	api := e.Group("", middleware.Auth(jwtSecret))
	api.GET("/whoami", authCtrl.WhoAmI)

	api.GET("/parcels", parcelCtrl.List)
	api.POST("/parcels", parcelCtrl.Create)
	api.GET("/parcels/:id", parcelCtrl.Get)

	api.GET("/parcels/:id/activities", actCtrl.List)
	api.POST("/parcels/:id/activities", actCtrl.Append)
	api.GET("/parcels/:id/activities/export", exportCtrl.Activities)

	api.GET("/parcels/:id/reminders", remCtrl.List)
	api.POST("/parcels/:id/reminders", remCtrl.Schedule)
	api.PATCH("/reminders/:id/complete", remCtrl.Complete)

	api.GET("/dashboard", statsCtrl.Dashboard)
	api.GET("/analytics", statsCtrl.Analytics)
	api.GET("/calendar", statsCtrl.Calendar)
	return e
}
