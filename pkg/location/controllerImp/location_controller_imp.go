package controllerImp

import (
	"net/http"
	"regexp"
	"time"

	"github.com/labstack/echo/v4"

	"seedwizard/pkg/location/serviceImp"
)

var zipRe = regexp.MustCompile(`^\d{5}$`)

type LocationCtrl struct{ svc *serviceImp.LocationSvc }

func New(svc *serviceImp.LocationSvc) *LocationCtrl { return &LocationCtrl{svc} }

// Lookup handles GET /location?zip=NNNNN.
func (ct *LocationCtrl) Lookup(c echo.Context) error {
	zip := c.QueryParam("zip")
	if !zipRe.MatchString(zip) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "zip must be a 5-digit code"})
	}
	return c.JSON(http.StatusOK, ct.svc.Lookup(zip, time.Now()))
}
