package planting

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"seedwizard/entities"
)

func sp(s string) *string { return &s }
func ip(n int) *int       { return &n }

func mustDate(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := ParseLocalDate(s)
	require.NoError(t, err)
	return d
}

func TestResolveStartIndoors(t *testing.T) {
	lastFrost := mustDate(t, "2025-05-01")
	seed := &entities.Seed{
		PlantingMethod:       sp(entities.MethodStartIndoors),
		WeeksBeforeLastFrost: ip(6),
	}

	ev := Resolve(seed, lastFrost)
	require.NotNil(t, ev)
	assert.Equal(t, EventIndoor, ev.Type)
	assert.Equal(t, mustDate(t, "2025-03-20"), ev.Date)
}

func TestResolveDirectSowColdHardy(t *testing.T) {
	lastFrost := mustDate(t, "2025-05-01")
	seed := &entities.Seed{
		PlantingMethod:              sp(entities.MethodDirectSow),
		ColdHardy:                   true,
		WeeksBeforeLastFrostOutdoor: ip(4),
	}

	ev := Resolve(seed, lastFrost)
	require.NotNil(t, ev)
	assert.Equal(t, EventOutdoor, ev.Type)
	assert.Equal(t, mustDate(t, "2025-04-03"), ev.Date)
}

func TestResolveDirectSowTender(t *testing.T) {
	lastFrost := mustDate(t, "2025-05-01")
	seed := &entities.Seed{
		PlantingMethod:      sp(entities.MethodDirectSow),
		WeeksAfterLastFrost: ip(2),
	}

	ev := Resolve(seed, lastFrost)
	require.NotNil(t, ev)
	assert.Equal(t, EventOutdoor, ev.Type)
	assert.Equal(t, mustDate(t, "2025-05-15"), ev.Date)
}

func TestResolveZeroWeeksIsPlantAtFrost(t *testing.T) {
	lastFrost := mustDate(t, "2025-05-01")
	seed := &entities.Seed{
		PlantingMethod:      sp(entities.MethodDirectSow),
		WeeksAfterLastFrost: ip(0),
	}

	ev := Resolve(seed, lastFrost)
	require.NotNil(t, ev, "zero weeks means plant at last frost, not missing data")
	assert.Equal(t, lastFrost, ev.Date)
}

func TestResolveMissingData(t *testing.T) {
	lastFrost := mustDate(t, "2025-05-01")

	cases := map[string]*entities.Seed{
		"no method":                {},
		"unknown method":           {PlantingMethod: sp("broadcast")},
		"indoors without weeks":    {PlantingMethod: sp(entities.MethodStartIndoors)},
		"cold hardy without weeks": {PlantingMethod: sp(entities.MethodDirectSow), ColdHardy: true},
		"tender without weeks":     {PlantingMethod: sp(entities.MethodDirectSow)},
		"negative weeks": {
			PlantingMethod:       sp(entities.MethodStartIndoors),
			WeeksBeforeLastFrost: ip(-3),
		},
	}
	for name, seed := range cases {
		t.Run(name, func(t *testing.T) {
			assert.Nil(t, Resolve(seed, lastFrost))
		})
	}
}

// Cold-hardy direct-sow seeds never fall through to the tender branch even
// when weeks_after_last_frost happens to be set.
func TestResolveBranchPriority(t *testing.T) {
	lastFrost := mustDate(t, "2025-05-01")

	seed := &entities.Seed{
		PlantingMethod:              sp(entities.MethodDirectSow),
		ColdHardy:                   true,
		WeeksBeforeLastFrostOutdoor: ip(6),
		WeeksAfterLastFrost:         ip(2),
	}
	ev := Resolve(seed, lastFrost)
	require.NotNil(t, ev)
	assert.Equal(t, mustDate(t, "2025-03-20"), ev.Date)

	// with the outdoor count missing the seed resolves to nothing, it does
	// not borrow the tender offset
	seed.WeeksBeforeLastFrostOutdoor = nil
	assert.Nil(t, Resolve(seed, lastFrost))

	// start_indoors ignores every direct-sow field
	indoor := &entities.Seed{
		PlantingMethod:              sp(entities.MethodStartIndoors),
		WeeksBeforeLastFrost:        ip(8),
		ColdHardy:                   true,
		WeeksBeforeLastFrostOutdoor: ip(2),
		WeeksAfterLastFrost:         ip(1),
	}
	ev = Resolve(indoor, lastFrost)
	require.NotNil(t, ev)
	assert.Equal(t, EventIndoor, ev.Type)
	assert.Equal(t, mustDate(t, "2025-03-06"), ev.Date)
}

func TestResolveNormalizesFrostTimestamp(t *testing.T) {
	// a frost anchor carrying a time-of-day must not shift the computed day
	noisy := time.Date(2025, 5, 1, 17, 45, 12, 0, time.Local)
	seed := &entities.Seed{
		PlantingMethod:       sp(entities.MethodStartIndoors),
		WeeksBeforeLastFrost: ip(2),
	}
	ev := Resolve(seed, noisy)
	require.NotNil(t, ev)
	assert.Equal(t, mustDate(t, "2025-04-17"), ev.Date)
}

func TestParseLocalDate(t *testing.T) {
	d, err := ParseLocalDate(" 2025-05-01 ")
	require.NoError(t, err)
	assert.Equal(t, time.Local, d.Location())
	assert.Equal(t, 0, d.Hour())

	_, err = ParseLocalDate("05/01/2025")
	assert.Error(t, err)
}
