package controllerImp

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"seedwizard/entities"
	"seedwizard/pkg/seeds/repository"
)

type SeedCtrl struct{ repo repository.SeedRepository }

func New(repo repository.SeedRepository) *SeedCtrl { return &SeedCtrl{repo} }

type seedReq struct {
	VarietyName     string  `json:"variety_name" validate:"required"`
	CommonName      *string `json:"common_name"`
	SeedCompany     *string `json:"seed_company"`
	ProductURL      *string `json:"product_url" validate:"omitempty,url"`
	ImageURL        *string `json:"image_url" validate:"omitempty,url"`
	PurchaseYear    *int    `json:"purchase_year" validate:"omitempty,min=1900,max=2100"`
	QuantityPackets int     `json:"quantity_packets" validate:"omitempty,min=1"`
	Notes           *string `json:"notes"`

	DaysToMaturityMin   *int     `json:"days_to_maturity_min" validate:"omitempty,min=1"`
	DaysToMaturityMax   *int     `json:"days_to_maturity_max" validate:"omitempty,min=1"`
	PlantingDepthInches *float64 `json:"planting_depth_inches" validate:"omitempty,min=0"`
	SpacingInches       *int     `json:"spacing_inches" validate:"omitempty,min=0"`
	RowSpacingInches    *int     `json:"row_spacing_inches" validate:"omitempty,min=0"`
	SunRequirement      *string  `json:"sun_requirement" validate:"omitempty,oneof=full_sun partial_shade shade"`
	WaterRequirement    *string  `json:"water_requirement" validate:"omitempty,oneof=low medium high"`

	PlantingMethod              *string `json:"planting_method" validate:"omitempty,oneof=direct_sow start_indoors"`
	WeeksBeforeLastFrost        *int    `json:"weeks_before_last_frost" validate:"omitempty,min=0"`
	WeeksAfterLastFrost         *int    `json:"weeks_after_last_frost" validate:"omitempty,min=0"`
	ColdHardy                   bool    `json:"cold_hardy"`
	WeeksBeforeLastFrostOutdoor *int    `json:"weeks_before_last_frost_outdoor" validate:"omitempty,min=0"`
	SuccessionPlanting          bool    `json:"succession_planting"`
	SuccessionIntervalDays      *int    `json:"succession_interval_days" validate:"omitempty,min=1"`
	FallPlanting                bool    `json:"fall_planting"`
	ColdStratificationRequired  bool    `json:"cold_stratification_required"`
	ColdStratificationWeeks     *int    `json:"cold_stratification_weeks" validate:"omitempty,min=1"`
}

// apply copies the request onto a seed entity, preserving ID/user/AI fields.
func (req *seedReq) apply(s *entities.Seed) {
	s.VarietyName = req.VarietyName
	s.CommonName = req.CommonName
	s.SeedCompany = req.SeedCompany
	s.ProductURL = emptyToNil(req.ProductURL)
	s.ImageURL = emptyToNil(req.ImageURL)
	s.PurchaseYear = req.PurchaseYear
	if req.QuantityPackets > 0 {
		s.QuantityPackets = req.QuantityPackets
	} else if s.QuantityPackets == 0 {
		s.QuantityPackets = 1
	}
	s.Notes = req.Notes
	s.DaysToMaturityMin = req.DaysToMaturityMin
	s.DaysToMaturityMax = req.DaysToMaturityMax
	s.PlantingDepthInches = req.PlantingDepthInches
	s.SpacingInches = req.SpacingInches
	s.RowSpacingInches = req.RowSpacingInches
	s.SunRequirement = req.SunRequirement
	s.WaterRequirement = req.WaterRequirement
	s.PlantingMethod = req.PlantingMethod
	s.WeeksBeforeLastFrost = req.WeeksBeforeLastFrost
	s.WeeksAfterLastFrost = req.WeeksAfterLastFrost
	s.ColdHardy = req.ColdHardy
	s.WeeksBeforeLastFrostOutdoor = req.WeeksBeforeLastFrostOutdoor
	s.SuccessionPlanting = req.SuccessionPlanting
	s.SuccessionIntervalDays = req.SuccessionIntervalDays
	s.FallPlanting = req.FallPlanting
	s.ColdStratificationRequired = req.ColdStratificationRequired
	s.ColdStratificationWeeks = req.ColdStratificationWeeks
}

func emptyToNil(s *string) *string {
	if s != nil && *s == "" {
		return nil
	}
	return s
}

func (h *SeedCtrl) List(c echo.Context) error {
	uid := c.Get("uid").(string)
	out, err := h.repo.List(uid)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, out)
}

func (h *SeedCtrl) Create(c echo.Context) error {
	uid := c.Get("uid").(string)
	var req seedReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid json"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "validation failed", "details": err.Error()})
	}

	s := &entities.Seed{UserID: uid}
	req.apply(s)
	if err := h.repo.Create(s); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, s)
}

func (h *SeedCtrl) Get(c echo.Context) error {
	uid := c.Get("uid").(string)
	s, err := h.repo.FindByID(c.Param("id"), uid)
	if err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "seed not found"})
	}
	return c.JSON(http.StatusOK, s)
}

func (h *SeedCtrl) Update(c echo.Context) error {
	uid := c.Get("uid").(string)
	s, err := h.repo.FindByID(c.Param("id"), uid)
	if err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "seed not found"})
	}

	var req seedReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid json"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "validation failed", "details": err.Error()})
	}

	req.apply(s)
	if err := h.repo.Update(s); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, s)
}

func (h *SeedCtrl) Delete(c echo.Context) error {
	uid := c.Get("uid").(string)
	if err := h.repo.Delete(c.Param("id"), uid); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *SeedCtrl) PatchPlanted(c echo.Context) error {
	return h.patchFlag(c, h.repo.SetPlanted)
}

func (h *SeedCtrl) PatchFavorite(c echo.Context) error {
	return h.patchFlag(c, h.repo.SetFavorite)
}

func (h *SeedCtrl) patchFlag(c echo.Context, set func(id, uid string, v bool) error) error {
	uid := c.Get("uid").(string)
	var body struct {
		Value bool `json:"value"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid json"})
	}
	if err := set(c.Param("id"), uid, body.Value); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "seed not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, echo.Map{"status": "ok"})
}
