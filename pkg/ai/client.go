package ai

// ExtractedSeed is the structured output of a product-page extraction.
// Pointer fields stay nil when the page does not state a value.
type ExtractedSeed struct {
	IsSeedProductPage bool `json:"is_seed_product_page"`

	VarietyName string  `json:"variety_name"`
	CommonName  *string `json:"common_name"`
	SeedCompany *string `json:"seed_company"`
	ImageURL    *string `json:"image_url"`

	DaysToMaturityMin   *int     `json:"days_to_maturity_min"`
	DaysToMaturityMax   *int     `json:"days_to_maturity_max"`
	PlantingDepthInches *float64 `json:"planting_depth_inches"`
	SpacingInches       *int     `json:"spacing_inches"`
	RowSpacingInches    *int     `json:"row_spacing_inches"`
	SunRequirement      *string  `json:"sun_requirement"`
	WaterRequirement    *string  `json:"water_requirement"`

	PlantingMethod              *string `json:"planting_method"`
	WeeksBeforeLastFrost        *int    `json:"weeks_before_last_frost"`
	WeeksAfterLastFrost         *int    `json:"weeks_after_last_frost"`
	ColdHardy                   bool    `json:"cold_hardy"`
	WeeksBeforeLastFrostOutdoor *int    `json:"weeks_before_last_frost_outdoor"`
	SuccessionPlanting          bool    `json:"succession_planting"`
	SuccessionIntervalDays      *int    `json:"succession_interval_days"`
	FallPlanting                bool    `json:"fall_planting"`
	ColdStratificationRequired  bool    `json:"cold_stratification_required"`
	ColdStratificationWeeks     *int    `json:"cold_stratification_weeks"`

	Notes *string `json:"notes"`
}

type Client interface {
	// ExtractSeed pulls planting metadata out of cleaned page text.
	ExtractSeed(pageContent, sourceURL string) (*ExtractedSeed, error)
}
