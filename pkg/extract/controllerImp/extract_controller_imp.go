package controllerImp

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"seedwizard/pkg/ai"
	"seedwizard/pkg/plantdefaults"
	"seedwizard/pkg/scraper"
)

type ExtractCtrl struct {
	sc  *scraper.Scraper
	llm ai.Client
}

func New(sc *scraper.Scraper, llm ai.Client) *ExtractCtrl {
	return &ExtractCtrl{sc: sc, llm: llm}
}

type extractReq struct {
	URL string `json:"url" validate:"required,url"`
}

type extractResp struct {
	ai.ExtractedSeed
	ProductURL       string `json:"product_url"`
	AIExtracted      bool   `json:"ai_extracted"`
	AIExtractionDate string `json:"ai_extraction_date"`
}

// Extract handles POST /extract: fetch the product page, run the LLM over
// the cleaned text, backfill timing gaps from the defaults table.
func (ct *ExtractCtrl) Extract(c echo.Context) error {
	var req extractReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid json: " + err.Error()})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "url is required and must be valid"})
	}

	if name := scraper.BlockedSite(req.URL); name != "" {
		return c.JSON(http.StatusUnprocessableEntity, echo.Map{"error": scraper.BlockedMessage(name)})
	}

	content, err := ct.sc.FetchPage(req.URL)
	if err != nil {
		return c.JSON(http.StatusBadGateway, echo.Map{"error": "could not fetch page: " + err.Error()})
	}
	if len(content) < 100 {
		return c.JSON(http.StatusUnprocessableEntity, echo.Map{"error": "page has too little text to extract from"})
	}

	seed, err := ct.llm.ExtractSeed(content, req.URL)
	if err != nil {
		return c.JSON(http.StatusBadGateway, echo.Map{"error": "extraction failed: " + err.Error()})
	}
	if !seed.IsSeedProductPage {
		return c.JSON(http.StatusUnprocessableEntity, echo.Map{"error": "this does not look like a seed product page"})
	}

	backfillTiming(seed)

	return c.JSON(http.StatusOK, extractResp{
		ExtractedSeed:    *seed,
		ProductURL:       req.URL,
		AIExtracted:      true,
		AIExtractionDate: time.Now().Format("2006-01-02"),
	})
}

// backfillTiming fills timing fields the page left unstated from the
// defaults table, keyed on common name. Extracted values always win.
func backfillTiming(s *ai.ExtractedSeed) {
	name := s.VarietyName
	if s.CommonName != nil && *s.CommonName != "" {
		name = *s.CommonName
	}
	t := plantdefaults.DefaultTiming(name)
	if t == nil {
		return
	}
	if s.PlantingMethod == nil || *s.PlantingMethod == "" {
		method := t.PlantingMethod
		s.PlantingMethod = &method
		s.ColdHardy = s.ColdHardy || t.ColdHardy
	}
	if s.WeeksBeforeLastFrost == nil {
		s.WeeksBeforeLastFrost = t.WeeksBeforeLastFrost
	}
	if s.WeeksAfterLastFrost == nil {
		s.WeeksAfterLastFrost = t.WeeksAfterLastFrost
	}
	if s.WeeksBeforeLastFrostOutdoor == nil {
		s.WeeksBeforeLastFrostOutdoor = t.WeeksBeforeLastFrostOutdoor
	}
}
