package controllerImp

import (
	"errors"
	"net/http"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"seedwizard/entities"
	"seedwizard/pkg/plantdefaults"
	"seedwizard/pkg/planting"
	profilerepo "seedwizard/pkg/profile/repository"
	seedrepo "seedwizard/pkg/seeds/repository"
)

type CalendarCtrl struct {
	seeds       seedrepo.SeedRepository
	profiles    profilerepo.ProfileRepository
	windowWeeks int
}

func New(seeds seedrepo.SeedRepository, profiles profilerepo.ProfileRepository, windowWeeks int) *CalendarCtrl {
	if windowWeeks <= 0 {
		windowWeeks = planting.DefaultWindowWeeks
	}
	return &CalendarCtrl{seeds: seeds, profiles: profiles, windowWeeks: windowWeeks}
}

type calendarItem struct {
	SeedID       string                `json:"seed_id"`
	VarietyName  string                `json:"variety_name"`
	CommonName   *string               `json:"common_name"`
	Category     plantdefaults.Category `json:"category"`
	PlantingDate string                `json:"planting_date"`
	EventType    planting.EventType    `json:"event_type"`
	IsPlanted    bool                  `json:"is_planted"`
}

// lastFrost pulls the profile's last frost date, the anchor every planting
// date hangs off of.
func (ct *CalendarCtrl) lastFrost(uid string) (time.Time, error) {
	p, err := ct.profiles.Get(uid)
	if err != nil {
		return time.Time{}, err
	}
	if p.LastFrostDate == nil || *p.LastFrostDate == "" {
		return time.Time{}, errors.New("no frost date")
	}
	return planting.ParseLocalDate(*p.LastFrostDate)
}

func noLocation(c echo.Context) error {
	return c.JSON(http.StatusBadRequest, echo.Map{
		"error": "no frost date set. Set your location in your profile first.",
	})
}

// Calendar handles GET /calendar. Default shape is a sorted event list;
// format=calendar groups events into a date-keyed map for month views.
func (ct *CalendarCtrl) Calendar(c echo.Context) error {
	uid := c.Get("uid").(string)

	lastFrost, err := ct.lastFrost(uid)
	if err != nil {
		return noLocation(c)
	}
	seeds, err := ct.seeds.List(uid)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}

	wanted := categoryFilter(c.QueryParam("categories"))

	items := make([]calendarItem, 0, len(seeds))
	for _, s := range seeds {
		ev := planting.Resolve(&s, lastFrost)
		if ev == nil {
			continue
		}
		cat := plantdefaults.CategoryForName(displayName(&s))
		if wanted != nil && !wanted[cat] {
			continue
		}
		items = append(items, calendarItem{
			SeedID:       s.ID,
			VarietyName:  s.VarietyName,
			CommonName:   s.CommonName,
			Category:     cat,
			PlantingDate: ev.Date.Format("2006-01-02"),
			EventType:    ev.Type,
			IsPlanted:    s.IsPlanted,
		})
	}
	sort.SliceStable(items, func(i, j int) bool { return items[i].PlantingDate < items[j].PlantingDate })

	if c.QueryParam("format") == "calendar" {
		byDate := map[string][]calendarItem{}
		for _, it := range items {
			byDate[it.PlantingDate] = append(byDate[it.PlantingDate], it)
		}
		return c.JSON(http.StatusOK, byDate)
	}
	return c.JSON(http.StatusOK, items)
}

// Plantable handles GET /plantable: seeds inside the sowing window around
// today. Filter preferences arrive as query params, not server state.
func (ct *CalendarCtrl) Plantable(c echo.Context) error {
	uid := c.Get("uid").(string)

	lastFrost, err := ct.lastFrost(uid)
	if err != nil {
		return noLocation(c)
	}
	seeds, err := ct.seeds.List(uid)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}

	weeks := ct.windowWeeks
	if v := c.QueryParam("weeks"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			weeks = n
		}
	}
	hidePlanted := c.QueryParam("hide_planted") == "true"
	indoorOnly := c.QueryParam("indoor") == "true"
	outdoorOnly := c.QueryParam("outdoor") == "true"

	results := planting.PlantableNow(seeds, lastFrost, weeks)

	out := make([]planting.PlantableResult, 0, len(results))
	for _, r := range results {
		if hidePlanted && r.Seed.IsPlanted {
			continue
		}
		if indoorOnly && r.EventType != planting.EventIndoor {
			continue
		}
		if outdoorOnly && r.EventType != planting.EventOutdoor {
			continue
		}
		out = append(out, r)
	}

	if v := c.QueryParam("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 && n < len(out) {
			out = out[:n]
		}
	}
	return c.JSON(http.StatusOK, out)
}

func displayName(s *entities.Seed) string {
	if s.CommonName != nil && *s.CommonName != "" {
		return *s.CommonName
	}
	return s.VarietyName
}

// categoryFilter parses "vegetable,herb" into a set; nil means no filter.
func categoryFilter(raw string) map[plantdefaults.Category]bool {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	set := map[plantdefaults.Category]bool{}
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(strings.ToLower(part)); p != "" {
			set[plantdefaults.Category(p)] = true
		}
	}
	if len(set) == 0 {
		return nil
	}
	return set
}
