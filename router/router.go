package router

import (
	"github.com/labstack/echo/v4"

	"seedwizard/pkg/middleware"
)

func New(
	e *echo.Echo,
	seedCtrl interface {
		List(echo.Context) error
		Create(echo.Context) error
		Get(echo.Context) error
		Update(echo.Context) error
		Delete(echo.Context) error
		PatchPlanted(echo.Context) error
		PatchFavorite(echo.Context) error
	},
	profileCtrl interface {
		Get(echo.Context) error
		Put(echo.Context) error
	},
	locationCtrl interface{ Lookup(echo.Context) error },
	extractCtrl interface{ Extract(echo.Context) error },
	calendarCtrl interface {
		Calendar(echo.Context) error
		Plantable(echo.Context) error
	},
	authCtrl interface {
		DevLogin(echo.Context) error
		WhoAmI(echo.Context) error
	},
	healthCtrl interface{ Health(echo.Context) error },
) *echo.Echo {
	e.Use(middleware.DevLogin())
	api := e.Group("")

	e.GET("/health", healthCtrl.Health)
	api.GET("/whoami", authCtrl.WhoAmI)
	api.GET("/devlogin", authCtrl.DevLogin)

	api.GET("/profile", profileCtrl.Get)
	api.PUT("/profile", profileCtrl.Put)
	api.GET("/location", locationCtrl.Lookup)

	api.GET("/seeds", seedCtrl.List)
	api.POST("/seeds", seedCtrl.Create)
	api.GET("/seeds/:id", seedCtrl.Get)
	api.PUT("/seeds/:id", seedCtrl.Update)
	api.DELETE("/seeds/:id", seedCtrl.Delete)
	api.PATCH("/seeds/:id/planted", seedCtrl.PatchPlanted)
	api.PATCH("/seeds/:id/favorite", seedCtrl.PatchFavorite)

	api.POST("/extract", extractCtrl.Extract)

	api.GET("/calendar", calendarCtrl.Calendar)
	api.GET("/plantable", calendarCtrl.Plantable)
	return e
}
