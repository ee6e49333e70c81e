package scraper

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBlockedSite(t *testing.T) {
	assert.Equal(t, "Baker Creek Heirloom Seeds", BlockedSite("https://www.rareseeds.com/tomato-cherokee-purple"))
	assert.Equal(t, "Seed Savers Exchange", BlockedSite("https://shop.seedsavers.org/beans"))
	assert.Empty(t, BlockedSite("https://www.johnnyseeds.com/vegetables"))
	assert.Empty(t, BlockedSite("::not a url"))

	msg := BlockedMessage("Baker Creek Heirloom Seeds")
	assert.Contains(t, msg, "Baker Creek")
	assert.Contains(t, msg, "manually")
}

const samplePage = `<html><head>
<title>Cherokee Purple Tomato</title>
<meta property="og:image" content="/images/products/cherokee-purple.jpg">
<script>trackEverything();</script>
<style>.hero{color:red}</style>
</head><body>
<nav><a href="/">Home</a></nav>
<div class="cookie-banner">We use cookies!</div>
<h1>Cherokee Purple Tomato</h1>
<p>An heirloom favorite with dusky purple fruit.</p>
<ul><li>Days to maturity: 80</li><li>Start indoors 6 weeks before last frost.</li></ul>
<table><tr><th>Depth</th><td>1/4 inch</td></tr></table>
<img src="/img/site-logo.png" alt="logo">
<img src="/images/products/cherokee-purple-2.jpg" alt="Cherokee Purple tomato plant">
<footer>Copyright</footer>
</body></html>`

func TestCleanHTML(t *testing.T) {
	base, _ := url.Parse("https://seeds.example.com/tomato")
	text, err := CleanHTML([]byte(samplePage), base)
	require.NoError(t, err)

	assert.Contains(t, text, "### Cherokee Purple Tomato")
	assert.Contains(t, text, "- Days to maturity: 80")
	assert.Contains(t, text, "| Depth")
	assert.Contains(t, text, "heirloom favorite")

	assert.NotContains(t, text, "trackEverything")
	assert.NotContains(t, text, "color:red")
	assert.NotContains(t, text, "We use cookies")
	assert.NotContains(t, text, "Copyright")

	assert.Contains(t, text, "[Product Images]")
	assert.Contains(t, text, "https://seeds.example.com/images/products/cherokee-purple.jpg")
	assert.Contains(t, text, "https://seeds.example.com/images/products/cherokee-purple-2.jpg")
	assert.NotContains(t, text, "site-logo")
}

func TestTruncateAtSentence(t *testing.T) {
	long := strings.Repeat("This is a sentence. ", 40)
	got := truncateAtSentence(long, 100)
	assert.LessOrEqual(t, len(got), 100)
	assert.True(t, strings.HasSuffix(got, "."), "cut lands on a sentence end: %q", got[len(got)-20:])

	short := "tiny"
	assert.Equal(t, short, truncateAtSentence(short, 100))
}

func TestFetchPage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Contains(t, r.Header.Get("User-Agent"), "SeedWizard")
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write([]byte(samplePage))
	}))
	defer srv.Close()

	sc := New(0)
	text, err := sc.FetchPage(srv.URL + "/tomato")
	require.NoError(t, err)
	assert.Contains(t, text, "Cherokee Purple")
}

func TestFetchPageRejections(t *testing.T) {
	sc := New(0)

	_, err := sc.FetchPage("ftp://example.com/file")
	assert.Error(t, err)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/404":
			http.NotFound(w, r)
		case "/pdf":
			w.Header().Set("Content-Type", "application/pdf")
			w.Write([]byte("%PDF"))
		}
	}))
	defer srv.Close()

	_, err = sc.FetchPage(srv.URL + "/404")
	assert.Error(t, err)

	_, err = sc.FetchPage(srv.URL + "/pdf")
	assert.Error(t, err)
}
