package serviceImp

import (
	"fmt"
	"strconv"
	"time"

	"seedwizard/pkg/location/repository"
)

// Result is the lookup payload returned to the settings flow.
type Result struct {
	ZipCode        string `json:"zip_code"`
	HardinessZone  string `json:"hardiness_zone"`
	LastFrostDate  string `json:"last_frost_date"`
	FirstFrostDate string `json:"first_frost_date"`
	Source         string `json:"source"` // database|estimated
	Note           string `json:"note,omitempty"`
}

type LocationSvc struct{ repo repository.LocationRepository }

func New(repo repository.LocationRepository) *LocationSvc { return &LocationSvc{repo} }

// Lookup resolves frost data for a 5-digit ZIP: exact table hit first, then
// a rough regional estimate keyed on the ZIP prefix.
func (s *LocationSvc) Lookup(zip string, now time.Time) Result {
	if z, err := s.repo.FindByZip(zip); err == nil {
		return Result{
			ZipCode:        z.ZipCode,
			HardinessZone:  z.HardinessZone,
			LastFrostDate:  z.LastFrostDateAvg,
			FirstFrostDate: z.FirstFrostDateAvg,
			Source:         "database",
		}
	}

	prefix, _ := strconv.Atoi(zip[:3])
	r := estimateByPrefix(prefix, now)
	r.ZipCode = zip
	r.Source = "estimated"
	r.Note = "Frost dates are estimated. For accurate dates, check your local extension office."
	return r
}

// formatFrostDate attaches a year to a recurring month/day: the current year
// when the date is still ahead, otherwise next year.
func formatFrostDate(month, day int, now time.Time) string {
	year := now.Year()
	if time.Date(year, time.Month(month), day, 0, 0, 0, 0, now.Location()).Before(now) {
		year++
	}
	return fmt.Sprintf("%d-%02d-%02d", year, month, day)
}

// Rough continental-US approximations by ZIP prefix region.
func estimateByPrefix(prefix int, now time.Time) Result {
	zone := func(hz string, lm, ld, fm, fd int) Result {
		return Result{
			HardinessZone:  hz,
			LastFrostDate:  formatFrostDate(lm, ld, now),
			FirstFrostDate: formatFrostDate(fm, fd, now),
		}
	}

	switch {
	case prefix >= 320 && prefix <= 349: // Florida
		return zone("9a", 2, 15, 12, 15)
	case (prefix >= 10 && prefix <= 69) || (prefix >= 100 && prefix <= 149): // Northeast
		return zone("6a", 5, 1, 10, 15)
	case prefix >= 200 && prefix <= 319: // Southeast
		return zone("7b", 4, 1, 11, 1)
	case prefix >= 400 && prefix <= 629: // Midwest
		return zone("5b", 5, 10, 10, 1)
	case prefix >= 700 && prefix <= 799: // South Central
		return zone("8a", 3, 15, 11, 15)
	case prefix >= 800 && prefix <= 899: // Mountain West
		return zone("5a", 5, 15, 9, 30)
	case prefix >= 970 && prefix <= 994: // Pacific Northwest
		return zone("8b", 4, 1, 11, 1)
	case prefix >= 900 && prefix <= 961: // California
		return zone("9b", 2, 1, 12, 15)
	default:
		return zone("6a", 4, 25, 10, 20)
	}
}
