package controllerImp

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"seedwizard/pkg/auth/controller"
	"seedwizard/pkg/middleware"
)

type authCtrl struct{}

func New() controller.AuthController { return &authCtrl{} }

// DevLogin sets the acting user cookie. Handy for poking at the API with a
// second user id during development.
func (h *authCtrl) DevLogin(c echo.Context) error {
	uid := c.QueryParam("uid")
	if uid == "" {
		uid = middleware.DefaultUserID
	}
	c.SetCookie(&http.Cookie{Name: "SW_UID", Value: uid, Path: "/"})
	return c.JSON(http.StatusOK, echo.Map{"uid": uid})
}

func (h *authCtrl) WhoAmI(c echo.Context) error {
	uid, _ := c.Get("uid").(string)
	return c.JSON(http.StatusOK, echo.Map{"uid": uid})
}
