package controllerImp

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"seedwizard/pkg/ai"
	"seedwizard/pkg/middleware"
	"seedwizard/pkg/scraper"
)

type stubLLM struct {
	seed *ai.ExtractedSeed
	err  error
}

func (s *stubLLM) ExtractSeed(pageContent, sourceURL string) (*ai.ExtractedSeed, error) {
	return s.seed, s.err
}

func newEcho() *echo.Echo {
	e := echo.New()
	e.Validator = middleware.NewValidator()
	return e
}

func doExtract(t *testing.T, llm ai.Client, body string) (*httptest.ResponseRecorder, *ExtractCtrl) {
	t.Helper()
	e := newEcho()
	req := httptest.NewRequest(http.MethodPost, "/extract", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	ct := New(scraper.New(0), llm)
	require.NoError(t, ct.Extract(c))
	return rec, ct
}

func TestExtractHappyPath(t *testing.T) {
	page := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.Write([]byte(`<html><body><h1>Dill Seeds</h1><p>` +
			strings.Repeat("Aromatic herb, easy from seed. ", 10) +
			`</p></body></html>`))
	}))
	defer page.Close()

	name := "dill"
	llm := &stubLLM{seed: &ai.ExtractedSeed{
		IsSeedProductPage: true,
		VarietyName:       "Bouquet Dill",
		CommonName:        &name,
	}}

	rec, _ := doExtract(t, llm, `{"url":"`+page.URL+`/dill"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Bouquet Dill", resp["variety_name"])
	assert.Equal(t, true, resp["ai_extracted"])
	assert.Equal(t, page.URL+"/dill", resp["product_url"])

	// dill timing came from the defaults table, the page gave none
	assert.Equal(t, "direct_sow", resp["planting_method"])
	assert.Equal(t, float64(1), resp["weeks_after_last_frost"])
}

func TestExtractRejectsBlockedSite(t *testing.T) {
	rec, _ := doExtract(t, &stubLLM{}, `{"url":"https://www.rareseeds.com/tomato"}`)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, rec.Body.String(), "Baker Creek")
}

func TestExtractRejectsBadURL(t *testing.T) {
	rec, _ := doExtract(t, &stubLLM{}, `{"url":"not-a-url"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec, _ = doExtract(t, &stubLLM{}, `{}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestExtractNotASeedPage(t *testing.T) {
	page := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.Write([]byte(`<html><body><p>` +
			strings.Repeat("Quarterly financial results and outlook. ", 10) +
			`</p></body></html>`))
	}))
	defer page.Close()

	llm := &stubLLM{seed: &ai.ExtractedSeed{IsSeedProductPage: false}}
	rec, _ := doExtract(t, llm, `{"url":"`+page.URL+`"}`)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, rec.Body.String(), "seed product page")
}

func TestExtractTooLittleText(t *testing.T) {
	page := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.Write([]byte(`<html><body><p>hi</p></body></html>`))
	}))
	defer page.Close()

	rec, _ := doExtract(t, &stubLLM{}, `{"url":"`+page.URL+`"}`)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, rec.Body.String(), "too little text")
}

func TestBackfillKeepsExtractedValues(t *testing.T) {
	name := "tomato"
	method := "direct_sow"
	three := 3
	seed := &ai.ExtractedSeed{
		IsSeedProductPage:   true,
		VarietyName:         "Oddball Tomato",
		CommonName:          &name,
		PlantingMethod:      &method,
		WeeksAfterLastFrost: &three,
	}
	backfillTiming(seed)

	// the page's own advice is never overridden by the defaults table
	assert.Equal(t, "direct_sow", *seed.PlantingMethod)
	assert.Equal(t, 3, *seed.WeeksAfterLastFrost)
	// gaps the page left do get filled
	require.NotNil(t, seed.WeeksBeforeLastFrost)
	assert.Equal(t, 6, *seed.WeeksBeforeLastFrost)
}
