package entities

// ZipFrost is one row of the static ZIP-code-to-frost-date lookup table,
// importable at bootstrap from CSV or XLSX.
type ZipFrost struct {
	ZipCode           string   `gorm:"primaryKey" json:"zip_code"`
	HardinessZone     string   `json:"hardiness_zone"`
	LastFrostDateAvg  string   `json:"last_frost_date_avg"`  // YYYY-MM-DD
	FirstFrostDateAvg string   `json:"first_frost_date_avg"` // YYYY-MM-DD
	Latitude          *float64 `json:"latitude"`
	Longitude         *float64 `json:"longitude"`
	StationName       string   `json:"station_name"`
}

func (ZipFrost) TableName() string { return "zip_frost_data" }
