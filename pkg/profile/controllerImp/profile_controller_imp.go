package controllerImp

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"seedwizard/entities"
	"seedwizard/pkg/planting"
	"seedwizard/pkg/profile/repository"
)

type ProfileCtrl struct{ repo repository.ProfileRepository }

func New(repo repository.ProfileRepository) *ProfileCtrl { return &ProfileCtrl{repo} }

type updateReq struct {
	DisplayName    *string `json:"display_name"`
	ZipCode        *string `json:"zip_code" validate:"omitempty,max=10"`
	HardinessZone  *string `json:"hardiness_zone" validate:"omitempty,max=5"`
	LastFrostDate  *string `json:"last_frost_date"`
	FirstFrostDate *string `json:"first_frost_date"`
}

func (h *ProfileCtrl) Get(c echo.Context) error {
	uid := c.Get("uid").(string)
	p, err := h.repo.Get(uid)
	if err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "profile not found"})
	}
	return c.JSON(http.StatusOK, p)
}

func (h *ProfileCtrl) Put(c echo.Context) error {
	uid := c.Get("uid").(string)
	var req updateReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid json"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "validation failed", "details": err.Error()})
	}

	// Frost dates must be real YYYY-MM-DD values; everything downstream
	// parses them with local-midnight semantics.
	for _, d := range []*string{req.LastFrostDate, req.FirstFrostDate} {
		if d != nil && *d != "" {
			if _, err := planting.ParseLocalDate(*d); err != nil {
				return c.JSON(http.StatusBadRequest, echo.Map{"error": "frost dates must be YYYY-MM-DD"})
			}
		}
	}

	p := &entities.Profile{
		ID:             uid,
		DisplayName:    req.DisplayName,
		ZipCode:        req.ZipCode,
		HardinessZone:  req.HardinessZone,
		LastFrostDate:  req.LastFrostDate,
		FirstFrostDate: req.FirstFrostDate,
	}
	if err := h.repo.Upsert(p); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, p)
}
