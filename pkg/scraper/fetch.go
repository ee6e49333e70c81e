package scraper

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

const (
	userAgent    = "Mozilla/5.0 (compatible; SeedWizard/1.0; +https://seedwizard.app)"
	maxTextChars = 15000
	maxImages    = 5
)

type Scraper struct {
	client   *http.Client
	maxBytes int
}

func New(maxBytes int) *Scraper {
	if maxBytes <= 0 {
		maxBytes = 1500000
	}
	return &Scraper{
		client:   &http.Client{Timeout: 20 * time.Second},
		maxBytes: maxBytes,
	}
}

// FetchPage downloads a product page and reduces it to LLM-friendly text.
// Harvested product image URLs are appended at the end of the text so the
// extractor can pick one.
func (sc *Scraper) FetchPage(raw string) (string, error) {
	u, err := url.Parse(raw)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") {
		return "", fmt.Errorf("invalid url")
	}

	req, err := http.NewRequest(http.MethodGet, raw, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml")

	resp, err := sc.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetch failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("fetch failed: status %d", resp.StatusCode)
	}
	ct := strings.ToLower(resp.Header.Get("Content-Type"))
	if ct != "" && !strings.Contains(ct, "text/html") && !strings.Contains(ct, "xhtml") {
		return "", fmt.Errorf("unsupported content-type: %s", ct)
	}

	limited := io.LimitedReader{R: resp.Body, N: int64(sc.maxBytes)}
	b, err := io.ReadAll(&limited)
	if err != nil {
		return "", err
	}
	return CleanHTML(b, resp.Request.URL)
}

// CleanHTML strips chrome and boilerplate from a product page and flattens
// what remains to plain text with light markdown markers.
func CleanHTML(raw []byte, base *url.URL) (string, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(raw))
	if err != nil {
		return "", err
	}

	images := harvestImages(doc, base)

	doc.Find("script, style, noscript, header, footer, nav, aside, iframe, svg, form").Remove()
	doc.Find("div, section").Each(func(_ int, s *goquery.Selection) {
		cls, _ := s.Attr("class")
		id, _ := s.Attr("id")
		hint := strings.ToLower(cls + " " + id)
		for _, bad := range []string{"cookie", "popup", "modal", "newsletter", "banner"} {
			if strings.Contains(hint, bad) {
				s.Remove()
				return
			}
		}
	})

	doc.Find("h1, h2, h3, h4").Each(func(_ int, s *goquery.Selection) {
		s.SetText("\n### " + strings.TrimSpace(s.Text()) + "\n")
	})
	doc.Find("li").Each(func(_ int, s *goquery.Selection) {
		s.SetText("\n- " + strings.TrimSpace(s.Text()))
	})
	doc.Find("td, th").Each(func(_ int, s *goquery.Selection) {
		s.SetText(" | " + strings.TrimSpace(s.Text()))
	})
	doc.Find("p, tr, br").Each(func(_ int, s *goquery.Selection) {
		s.SetText("\n" + strings.TrimSpace(s.Text()))
	})

	text := collapseWhitespace(doc.Find("body").Text())
	if text == "" {
		text = collapseWhitespace(doc.Text())
	}
	text = truncateAtSentence(text, maxTextChars)

	if len(images) > 0 {
		text += "\n\n[Product Images]\n" + strings.Join(images, "\n")
	}
	return text, nil
}

// harvestImages collects likely product photos: social preview tags first,
// then inline <img> elements that look like product shots.
func harvestImages(doc *goquery.Document, base *url.URL) []string {
	seen := map[string]bool{}
	var out []string
	add := func(src string) {
		src = strings.TrimSpace(src)
		if src == "" || strings.HasPrefix(src, "data:") {
			return
		}
		if base != nil {
			if ref, err := url.Parse(src); err == nil {
				src = base.ResolveReference(ref).String()
			}
		}
		low := strings.ToLower(src)
		for _, bad := range []string{"logo", "icon", "sprite", "badge", "pixel", "avatar"} {
			if strings.Contains(low, bad) {
				return
			}
		}
		if !seen[src] && len(out) < maxImages {
			seen[src] = true
			out = append(out, src)
		}
	}

	doc.Find(`meta[property="og:image"], meta[name="twitter:image"]`).Each(func(_ int, s *goquery.Selection) {
		c, _ := s.Attr("content")
		add(c)
	})
	doc.Find("img").Each(func(_ int, s *goquery.Selection) {
		src, ok := s.Attr("src")
		if !ok {
			src, _ = s.Attr("data-src")
		}
		alt, _ := s.Attr("alt")
		cls, _ := s.Attr("class")
		hint := strings.ToLower(src + " " + alt + " " + cls)
		if strings.Contains(hint, "product") || strings.Contains(hint, "seed") || strings.Contains(hint, "plant") {
			add(src)
		}
	})
	return out
}

var multiWS = regexp.MustCompile(`[ \t]+`)
var multiNL = regexp.MustCompile(`\n{3,}`)

func collapseWhitespace(s string) string {
	s = strings.ReplaceAll(s, "\r", "")
	s = multiWS.ReplaceAllString(s, " ")
	var lines []string
	for _, ln := range strings.Split(s, "\n") {
		lines = append(lines, strings.TrimSpace(ln))
	}
	s = strings.Join(lines, "\n")
	return strings.TrimSpace(multiNL.ReplaceAllString(s, "\n\n"))
}

// truncateAtSentence cuts text near limit, preferring the last sentence end
// so the extractor never sees a half sentence.
func truncateAtSentence(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	cut := s[:limit]
	if i := strings.LastIndexAny(cut, ".!?"); i > limit/2 {
		cut = cut[:i+1]
	}
	return cut
}
