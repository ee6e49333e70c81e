package entities

import "time"

// Profile holds the user's location settings. Frost dates are stored as
// date-only YYYY-MM-DD strings; parsing to a concrete date happens at the
// point of use with local-midnight semantics.
type Profile struct {
	ID             string  `gorm:"primaryKey" json:"id"`
	DisplayName    *string `json:"display_name"`
	ZipCode        *string `json:"zip_code"`
	HardinessZone  *string `json:"hardiness_zone"`
	LastFrostDate  *string `json:"last_frost_date"`  // YYYY-MM-DD
	FirstFrostDate *string `json:"first_frost_date"` // YYYY-MM-DD

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
