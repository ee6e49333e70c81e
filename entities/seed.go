package entities

import "time"

// Seed planting methods.
const (
	MethodStartIndoors = "start_indoors"
	MethodDirectSow    = "direct_sow"
)

type Seed struct {
	ID     string `gorm:"primaryKey" json:"id"`
	UserID string `gorm:"index" json:"user_id"`

	// Basic info (user-entered)
	VarietyName     string  `json:"variety_name"`
	CommonName      *string `json:"common_name"`
	SeedCompany     *string `json:"seed_company"`
	ProductURL      *string `json:"product_url"`
	ImageURL        *string `json:"image_url"`
	PurchaseYear    *int    `json:"purchase_year"`
	QuantityPackets int     `gorm:"default:1" json:"quantity_packets"`
	Notes           *string `json:"notes"`

	// Planting data (AI-extracted or user-entered)
	DaysToMaturityMin   *int     `json:"days_to_maturity_min"`
	DaysToMaturityMax   *int     `json:"days_to_maturity_max"`
	PlantingDepthInches *float64 `json:"planting_depth_inches"`
	SpacingInches       *int     `json:"spacing_inches"`
	RowSpacingInches    *int     `json:"row_spacing_inches"`
	SunRequirement      *string  `json:"sun_requirement"`   // full_sun|partial_shade|shade
	WaterRequirement    *string  `json:"water_requirement"` // low|medium|high

	// Planting strategy
	PlantingMethod              *string `json:"planting_method"` // start_indoors|direct_sow
	WeeksBeforeLastFrost        *int    `json:"weeks_before_last_frost"`
	WeeksAfterLastFrost         *int    `json:"weeks_after_last_frost"`
	ColdHardy                   bool    `json:"cold_hardy"`
	WeeksBeforeLastFrostOutdoor *int    `json:"weeks_before_last_frost_outdoor"`
	SuccessionPlanting          bool    `json:"succession_planting"`
	SuccessionIntervalDays      *int    `json:"succession_interval_days"`
	FallPlanting                bool    `json:"fall_planting"`
	ColdStratificationRequired  bool    `json:"cold_stratification_required"`
	ColdStratificationWeeks     *int    `json:"cold_stratification_weeks"`

	// Status flags
	IsFavorite bool `json:"is_favorite"`
	IsPlanted  bool `json:"is_planted"`

	// AI metadata
	AIExtracted      bool    `gorm:"column:ai_extracted" json:"ai_extracted"`
	AIExtractionDate *string `gorm:"column:ai_extraction_date" json:"ai_extraction_date"`
	RawAIResponse    *string `gorm:"column:raw_ai_response" json:"raw_ai_response"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
