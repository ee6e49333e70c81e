package scraper

import (
	"net/url"
	"strings"
)

// Sites that actively reject automated fetches. Users get pointed at
// manual entry instead of a confusing bad-gateway error.
var blockedHosts = map[string]string{
	"seedsavers.org":       "Seed Savers Exchange",
	"shop.seedsavers.org":  "Seed Savers Exchange",
	"rareseeds.com":        "Baker Creek Heirloom Seeds",
	"southernexposure.com": "Southern Exposure Seed Exchange",
}

// BlockedSite returns the display name of a known-blocked retailer, or
// "" when the URL is fetchable.
func BlockedSite(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return ""
	}
	host := strings.ToLower(strings.TrimPrefix(u.Hostname(), "www."))
	if name, ok := blockedHosts[host]; ok {
		return name
	}
	return ""
}

// BlockedMessage explains the workaround for a blocked retailer.
func BlockedMessage(name string) string {
	return name + " blocks automated access to their site. Please copy the planting details from the page and add the seed manually."
}
