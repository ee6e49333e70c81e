// Package plantdefaults carries general planting-timing guidelines for
// common garden plants, used to backfill timing fields the page extraction
// missed and to group seeds into display categories.
package plantdefaults

import "strings"

type Category string

const (
	CategoryVegetable Category = "vegetable"
	CategoryHerb      Category = "herb"
	CategoryFlower    Category = "flower"
	CategoryFruit     Category = "fruit"
)

type Default struct {
	// Names are the common-name variations that match this entry.
	Names           []string
	Category        Category
	PlantingMethod  string // start_indoors|direct_sow
	AlternateMethod string

	WeeksBeforeLastFrost        *int // start_indoors only
	WeeksAfterLastFrost         *int // direct_sow, not cold hardy
	WeeksBeforeLastFrostOutdoor *int // direct_sow, cold hardy
	ColdHardy                   bool

	MaturityMin int
	MaturityMax int
	Notes       string
}

func wk(n int) *int { return &n }

var defaults = []Default{
	// herbs
	{Names: []string{"basil", "sweet basil", "genovese basil", "thai basil"}, Category: CategoryHerb, PlantingMethod: "start_indoors", WeeksBeforeLastFrost: wk(6), MaturityMin: 60, MaturityMax: 90, Notes: "Very frost sensitive. Wait until soil is warm to transplant."},
	{Names: []string{"cilantro", "coriander"}, Category: CategoryHerb, PlantingMethod: "direct_sow", WeeksBeforeLastFrostOutdoor: wk(2), ColdHardy: true, MaturityMin: 45, MaturityMax: 70, Notes: "Prefers cool weather. Bolts quickly in heat."},
	{Names: []string{"dill"}, Category: CategoryHerb, PlantingMethod: "direct_sow", WeeksAfterLastFrost: wk(1), MaturityMin: 40, MaturityMax: 60, Notes: "Does not transplant well."},
	{Names: []string{"parsley", "flat leaf parsley", "curly parsley", "italian parsley"}, Category: CategoryHerb, PlantingMethod: "start_indoors", WeeksBeforeLastFrost: wk(10), ColdHardy: true, MaturityMin: 70, MaturityMax: 90, Notes: "Slow to germinate. Can also direct sow in early spring."},
	{Names: []string{"oregano"}, Category: CategoryHerb, PlantingMethod: "start_indoors", WeeksBeforeLastFrost: wk(8), ColdHardy: true, MaturityMin: 80, MaturityMax: 90},
	{Names: []string{"thyme"}, Category: CategoryHerb, PlantingMethod: "start_indoors", WeeksBeforeLastFrost: wk(8), ColdHardy: true, MaturityMin: 85, MaturityMax: 95},
	{Names: []string{"sage"}, Category: CategoryHerb, PlantingMethod: "start_indoors", WeeksBeforeLastFrost: wk(8), ColdHardy: true, MaturityMin: 75, MaturityMax: 85},
	{Names: []string{"mint", "spearmint", "peppermint"}, Category: CategoryHerb, PlantingMethod: "start_indoors", WeeksBeforeLastFrost: wk(8), ColdHardy: true, MaturityMin: 90, MaturityMax: 120},
	{Names: []string{"chives"}, Category: CategoryHerb, PlantingMethod: "start_indoors", WeeksBeforeLastFrost: wk(8), ColdHardy: true, MaturityMin: 80, MaturityMax: 90},

	// warm-season vegetables
	{Names: []string{"tomato", "tomatoes"}, Category: CategoryVegetable, PlantingMethod: "start_indoors", WeeksBeforeLastFrost: wk(6), MaturityMin: 60, MaturityMax: 85, Notes: "Start indoors 6-8 weeks before last frost."},
	{Names: []string{"pepper", "peppers", "bell pepper", "sweet pepper", "hot pepper", "chili pepper"}, Category: CategoryVegetable, PlantingMethod: "start_indoors", WeeksBeforeLastFrost: wk(8), MaturityMin: 60, MaturityMax: 90, Notes: "Start indoors 8-10 weeks before last frost. Need warm soil."},
	{Names: []string{"eggplant", "aubergine"}, Category: CategoryVegetable, PlantingMethod: "start_indoors", WeeksBeforeLastFrost: wk(8), MaturityMin: 70, MaturityMax: 85},
	{Names: []string{"cucumber", "cucumbers"}, Category: CategoryVegetable, PlantingMethod: "direct_sow", AlternateMethod: "start_indoors", WeeksAfterLastFrost: wk(2), MaturityMin: 50, MaturityMax: 70, Notes: "Can start indoors 3-4 weeks before last frost."},
	{Names: []string{"squash", "summer squash", "winter squash", "zucchini", "acorn squash", "butternut squash", "spaghetti squash", "pumpkin", "pumpkins"}, Category: CategoryVegetable, PlantingMethod: "direct_sow", AlternateMethod: "start_indoors", WeeksAfterLastFrost: wk(2), MaturityMin: 45, MaturityMax: 110, Notes: "Can start indoors 3-4 weeks before last frost. Direct sow preferred."},
	{Names: []string{"melon", "watermelon", "cantaloupe", "honeydew"}, Category: CategoryFruit, PlantingMethod: "start_indoors", WeeksBeforeLastFrost: wk(4), MaturityMin: 70, MaturityMax: 100},
	{Names: []string{"corn", "sweet corn"}, Category: CategoryVegetable, PlantingMethod: "direct_sow", WeeksAfterLastFrost: wk(2), MaturityMin: 60, MaturityMax: 100, Notes: "Plant in blocks for good pollination."},
	{Names: []string{"bean", "beans", "green bean", "bush bean", "pole bean", "snap bean"}, Category: CategoryVegetable, PlantingMethod: "direct_sow", WeeksAfterLastFrost: wk(1), MaturityMin: 50, MaturityMax: 65, Notes: "Direct sow after danger of frost has passed."},
	{Names: []string{"okra"}, Category: CategoryVegetable, PlantingMethod: "direct_sow", WeeksAfterLastFrost: wk(3), MaturityMin: 50, MaturityMax: 65, Notes: "Needs warm soil (65F+)."},

	// cool-season vegetables
	{Names: []string{"lettuce", "leaf lettuce", "romaine", "butterhead", "head lettuce"}, Category: CategoryVegetable, PlantingMethod: "direct_sow", AlternateMethod: "start_indoors", WeeksBeforeLastFrostOutdoor: wk(4), ColdHardy: true, MaturityMin: 45, MaturityMax: 70},
	{Names: []string{"spinach"}, Category: CategoryVegetable, PlantingMethod: "direct_sow", WeeksBeforeLastFrostOutdoor: wk(6), ColdHardy: true, MaturityMin: 40, MaturityMax: 50},
	{Names: []string{"kale"}, Category: CategoryVegetable, PlantingMethod: "direct_sow", WeeksBeforeLastFrostOutdoor: wk(4), ColdHardy: true, MaturityMin: 50, MaturityMax: 65},
	{Names: []string{"swiss chard", "chard"}, Category: CategoryVegetable, PlantingMethod: "direct_sow", WeeksBeforeLastFrostOutdoor: wk(2), ColdHardy: true, MaturityMin: 50, MaturityMax: 60},
	{Names: []string{"arugula", "rocket"}, Category: CategoryVegetable, PlantingMethod: "direct_sow", WeeksBeforeLastFrostOutdoor: wk(4), ColdHardy: true, MaturityMin: 30, MaturityMax: 45},
	{Names: []string{"pea", "peas", "snap pea", "snow pea", "garden pea", "shelling pea"}, Category: CategoryVegetable, PlantingMethod: "direct_sow", WeeksBeforeLastFrostOutdoor: wk(6), ColdHardy: true, MaturityMin: 55, MaturityMax: 70},
	{Names: []string{"broccoli"}, Category: CategoryVegetable, PlantingMethod: "start_indoors", WeeksBeforeLastFrost: wk(6), ColdHardy: true, MaturityMin: 55, MaturityMax: 80},
	{Names: []string{"cauliflower"}, Category: CategoryVegetable, PlantingMethod: "start_indoors", WeeksBeforeLastFrost: wk(6), ColdHardy: true, MaturityMin: 55, MaturityMax: 80},
	{Names: []string{"cabbage"}, Category: CategoryVegetable, PlantingMethod: "start_indoors", WeeksBeforeLastFrost: wk(6), ColdHardy: true, MaturityMin: 60, MaturityMax: 100},
	{Names: []string{"brussels sprouts", "brussels sprout"}, Category: CategoryVegetable, PlantingMethod: "start_indoors", WeeksBeforeLastFrost: wk(6), ColdHardy: true, MaturityMin: 90, MaturityMax: 110},
	{Names: []string{"kohlrabi"}, Category: CategoryVegetable, PlantingMethod: "direct_sow", WeeksBeforeLastFrostOutdoor: wk(4), ColdHardy: true, MaturityMin: 45, MaturityMax: 60},
	{Names: []string{"carrot", "carrots"}, Category: CategoryVegetable, PlantingMethod: "direct_sow", WeeksBeforeLastFrostOutdoor: wk(3), ColdHardy: true, MaturityMin: 55, MaturityMax: 80},
	{Names: []string{"beet", "beets", "beetroot"}, Category: CategoryVegetable, PlantingMethod: "direct_sow", WeeksBeforeLastFrostOutdoor: wk(4), ColdHardy: true, MaturityMin: 50, MaturityMax: 70},
	{Names: []string{"radish", "radishes"}, Category: CategoryVegetable, PlantingMethod: "direct_sow", WeeksBeforeLastFrostOutdoor: wk(4), ColdHardy: true, MaturityMin: 22, MaturityMax: 30},
	{Names: []string{"turnip", "turnips"}, Category: CategoryVegetable, PlantingMethod: "direct_sow", WeeksBeforeLastFrostOutdoor: wk(4), ColdHardy: true, MaturityMin: 40, MaturityMax: 55},
	{Names: []string{"parsnip", "parsnips"}, Category: CategoryVegetable, PlantingMethod: "direct_sow", WeeksBeforeLastFrostOutdoor: wk(3), ColdHardy: true, MaturityMin: 100, MaturityMax: 120},
	{Names: []string{"onion", "onions"}, Category: CategoryVegetable, PlantingMethod: "start_indoors", WeeksBeforeLastFrost: wk(10), ColdHardy: true, MaturityMin: 90, MaturityMax: 120},
	{Names: []string{"leek", "leeks"}, Category: CategoryVegetable, PlantingMethod: "start_indoors", WeeksBeforeLastFrost: wk(10), ColdHardy: true, MaturityMin: 100, MaturityMax: 120},
	{Names: []string{"garlic"}, Category: CategoryVegetable, PlantingMethod: "direct_sow", WeeksBeforeLastFrostOutdoor: wk(6), ColdHardy: true, MaturityMin: 90, MaturityMax: 240, Notes: "Usually fall planted; spring planting gives smaller bulbs."},
	{Names: []string{"potato", "potatoes"}, Category: CategoryVegetable, PlantingMethod: "direct_sow", WeeksBeforeLastFrostOutdoor: wk(2), ColdHardy: true, MaturityMin: 70, MaturityMax: 120, Notes: "Plant seed potatoes, not seeds."},
	{Names: []string{"sweet potato", "sweet potatoes"}, Category: CategoryVegetable, PlantingMethod: "start_indoors", WeeksBeforeLastFrost: wk(8), MaturityMin: 90, MaturityMax: 120, Notes: "Start slips indoors or purchase transplants."},

	// cool-season flowers
	{Names: []string{"pansy", "pansies", "viola"}, Category: CategoryFlower, PlantingMethod: "start_indoors", WeeksBeforeLastFrost: wk(8), ColdHardy: true, MaturityMin: 70, MaturityMax: 84},
	{Names: []string{"snapdragon", "snapdragons"}, Category: CategoryFlower, PlantingMethod: "start_indoors", WeeksBeforeLastFrost: wk(10), ColdHardy: true, MaturityMin: 80, MaturityMax: 100},
	{Names: []string{"sweet pea", "sweet peas"}, Category: CategoryFlower, PlantingMethod: "direct_sow", WeeksBeforeLastFrostOutdoor: wk(6), ColdHardy: true, MaturityMin: 50, MaturityMax: 65, Notes: "Prefers cool weather. Plant as early as possible."},
	{Names: []string{"larkspur"}, Category: CategoryFlower, PlantingMethod: "direct_sow", WeeksBeforeLastFrostOutdoor: wk(4), ColdHardy: true, MaturityMin: 80, MaturityMax: 100},
	{Names: []string{"bachelor button", "cornflower", "centaurea"}, Category: CategoryFlower, PlantingMethod: "direct_sow", WeeksBeforeLastFrostOutdoor: wk(4), ColdHardy: true, MaturityMin: 60, MaturityMax: 80, Notes: "Can also be fall sown for earlier spring bloom."},
	{Names: []string{"poppy", "poppies", "california poppy"}, Category: CategoryFlower, PlantingMethod: "direct_sow", WeeksBeforeLastFrostOutdoor: wk(4), ColdHardy: true, MaturityMin: 60, MaturityMax: 90, Notes: "Does not transplant well."},
	{Names: []string{"stock"}, Category: CategoryFlower, PlantingMethod: "start_indoors", WeeksBeforeLastFrost: wk(8), ColdHardy: true, MaturityMin: 70, MaturityMax: 84},

	// warm-season flowers
	{Names: []string{"zinnia", "zinnias"}, Category: CategoryFlower, PlantingMethod: "direct_sow", WeeksAfterLastFrost: wk(1), MaturityMin: 60, MaturityMax: 75, Notes: "Direct sow after frost. Can start indoors 4 weeks before last frost."},
	{Names: []string{"marigold", "marigolds"}, Category: CategoryFlower, PlantingMethod: "direct_sow", AlternateMethod: "start_indoors", WeeksAfterLastFrost: wk(0), MaturityMin: 50, MaturityMax: 75, Notes: "Can start indoors 6-8 weeks before last frost."},
	{Names: []string{"sunflower", "sunflowers"}, Category: CategoryFlower, PlantingMethod: "direct_sow", WeeksAfterLastFrost: wk(1), MaturityMin: 55, MaturityMax: 100, Notes: "Direct sow preferred. Does not transplant well."},
	{Names: []string{"cosmos"}, Category: CategoryFlower, PlantingMethod: "direct_sow", WeeksAfterLastFrost: wk(1), MaturityMin: 60, MaturityMax: 90, Notes: "Easy from direct sow. Can start indoors 4-6 weeks before."},
	{Names: []string{"nasturtium", "nasturtiums"}, Category: CategoryFlower, PlantingMethod: "direct_sow", WeeksAfterLastFrost: wk(1), MaturityMin: 50, MaturityMax: 65, Notes: "Direct sow preferred."},
	{Names: []string{"morning glory"}, Category: CategoryFlower, PlantingMethod: "direct_sow", WeeksAfterLastFrost: wk(1), MaturityMin: 60, MaturityMax: 90},
	{Names: []string{"celosia", "cockscomb"}, Category: CategoryFlower, PlantingMethod: "start_indoors", WeeksBeforeLastFrost: wk(6), MaturityMin: 90, MaturityMax: 120},
	{Names: []string{"impatiens"}, Category: CategoryFlower, PlantingMethod: "start_indoors", WeeksBeforeLastFrost: wk(10), MaturityMin: 70, MaturityMax: 90},
	{Names: []string{"petunia", "petunias"}, Category: CategoryFlower, PlantingMethod: "start_indoors", WeeksBeforeLastFrost: wk(10), MaturityMin: 75, MaturityMax: 90},
	{Names: []string{"aster", "asters", "china aster"}, Category: CategoryFlower, PlantingMethod: "start_indoors", WeeksBeforeLastFrost: wk(7), MaturityMin: 90, MaturityMax: 120},
	{Names: []string{"dahlia", "dahlias"}, Category: CategoryFlower, PlantingMethod: "start_indoors", WeeksBeforeLastFrost: wk(6), MaturityMin: 90, MaturityMax: 120},
	{Names: []string{"strawflower", "strawflowers", "everlasting"}, Category: CategoryFlower, PlantingMethod: "start_indoors", WeeksBeforeLastFrost: wk(6), MaturityMin: 75, MaturityMax: 90},

	// shade tolerant / ground covers
	{Names: []string{"coleus"}, Category: CategoryFlower, PlantingMethod: "start_indoors", WeeksBeforeLastFrost: wk(10), MaturityMin: 70, MaturityMax: 90},
	{Names: []string{"hosta"}, Category: CategoryFlower, PlantingMethod: "start_indoors", WeeksBeforeLastFrost: wk(10), ColdHardy: true, MaturityMin: 90, MaturityMax: 180},
	{Names: []string{"shade mix", "shade garden mix", "shade flower mix"}, Category: CategoryFlower, PlantingMethod: "direct_sow", WeeksAfterLastFrost: wk(1), MaturityMin: 60, MaturityMax: 90, Notes: "Most shade mixes should be sown after last frost."},
}

// FindByName matches a common name against the table: exact match first,
// then the search term contained in an entry name, then the reverse.
func FindByName(commonName string) *Default {
	term := strings.ToLower(strings.TrimSpace(commonName))
	if term == "" {
		return nil
	}

	for i := range defaults {
		for _, n := range defaults[i].Names {
			if n == term {
				return &defaults[i]
			}
		}
	}
	for i := range defaults {
		for _, n := range defaults[i].Names {
			if strings.Contains(n, term) {
				return &defaults[i]
			}
		}
	}
	for i := range defaults {
		for _, n := range defaults[i].Names {
			if strings.Contains(term, n) {
				return &defaults[i]
			}
		}
	}
	return nil
}

// Timing is the subset of a Default used to backfill extraction output.
type Timing struct {
	PlantingMethod              string
	WeeksBeforeLastFrost        *int
	WeeksAfterLastFrost         *int
	WeeksBeforeLastFrostOutdoor *int
	ColdHardy                   bool
}

func DefaultTiming(commonName string) *Timing {
	d := FindByName(commonName)
	if d == nil {
		return nil
	}
	return &Timing{
		PlantingMethod:              d.PlantingMethod,
		WeeksBeforeLastFrost:        d.WeeksBeforeLastFrost,
		WeeksAfterLastFrost:         d.WeeksAfterLastFrost,
		WeeksBeforeLastFrostOutdoor: d.WeeksBeforeLastFrostOutdoor,
		ColdHardy:                   d.ColdHardy,
	}
}

// CategoryForName maps a common name to a display filter bucket. Anything
// unmatched, and fruit, falls into the vegetable bucket.
func CategoryForName(commonName string) Category {
	d := FindByName(commonName)
	if d == nil {
		return CategoryVegetable
	}
	switch d.Category {
	case CategoryHerb, CategoryFlower:
		return d.Category
	default:
		return CategoryVegetable
	}
}
