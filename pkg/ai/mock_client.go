package ai

import (
	"strings"

	"seedwizard/pkg/plantdefaults"
)

type mockClient struct{}

// NewMock is the no-key fallback: it scans the page text for a known plant
// name and answers from the defaults table. Deterministic, offline.
func NewMock() Client { return &mockClient{} }

func (m *mockClient) ExtractSeed(pageContent, sourceURL string) (*ExtractedSeed, error) {
	low := strings.ToLower(pageContent)

	name := ""
	for _, candidate := range []string{
		"tomato", "pepper", "eggplant", "cucumber", "zucchini", "squash",
		"pumpkin", "watermelon", "cantaloupe", "corn", "bean", "okra",
		"lettuce", "spinach", "kale", "chard", "arugula", "pea", "broccoli",
		"cauliflower", "cabbage", "carrot", "beet", "radish", "turnip",
		"onion", "leek", "garlic", "basil", "cilantro", "dill", "parsley",
		"oregano", "thyme", "sage", "mint", "chives", "sunflower", "zinnia",
		"marigold", "cosmos", "nasturtium", "sweet pea", "poppy", "lavender",
	} {
		if strings.Contains(low, candidate) {
			name = candidate
			break
		}
	}
	if name == "" {
		return &ExtractedSeed{IsSeedProductPage: false}, nil
	}

	seed := &ExtractedSeed{
		IsSeedProductPage: true,
		VarietyName:       upperFirst(name) + " (mock)",
		CommonName:        &name,
	}
	if d := plantdefaults.FindByName(name); d != nil {
		method := d.PlantingMethod
		seed.PlantingMethod = &method
		seed.WeeksBeforeLastFrost = d.WeeksBeforeLastFrost
		seed.WeeksAfterLastFrost = d.WeeksAfterLastFrost
		seed.WeeksBeforeLastFrostOutdoor = d.WeeksBeforeLastFrostOutdoor
		seed.ColdHardy = d.ColdHardy
		if d.MaturityMin > 0 {
			mn, mx := d.MaturityMin, d.MaturityMax
			seed.DaysToMaturityMin = &mn
			seed.DaysToMaturityMax = &mx
		}
		if d.Notes != "" {
			notes := d.Notes
			seed.Notes = &notes
		}
	}
	return seed, nil
}

func upperFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
