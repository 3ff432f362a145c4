package fixtures

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	bundle, err := NewLoader(0).Load()

	require.NoError(t, err)
	assert.Len(t, bundle.Regions, 2)
	assert.Len(t, bundle.Zones, 4)
	assert.Len(t, bundle.Buildings, 6)
	assert.Len(t, bundle.Meters, 12)
	assert.Len(t, bundle.Events, 8)
	assert.Len(t, bundle.Users, 5)
}

func TestRegion(t *testing.T) {
	bundle, err := NewLoader(0).Load()
	require.NoError(t, err)

	t.Run("known region", func(t *testing.T) {
		reg, found := bundle.Region("r-north")

		require.True(t, found)
		assert.Equal(t, "r-north", reg.RegionId)
	})

	t.Run("unknown region", func(t *testing.T) {
		_, found := bundle.Region("r-nowhere")

		assert.False(t, found)
	})
}

func TestFilterRegion(t *testing.T) {
	bundle, err := NewLoader(0).Load()
	require.NoError(t, err)

	scoped := bundle.FilterRegion("r-north")

	require.Len(t, scoped.Zones, 2)
	for _, z := range scoped.Zones {
		assert.Equal(t, "r-north", z.RegionId)
	}

	zoneIds := map[string]bool{}
	for _, z := range scoped.Zones {
		zoneIds[z.ZoneId] = true
	}
	assert.Len(t, scoped.Meters, 8)
	for _, m := range scoped.Meters {
		assert.True(t, zoneIds[m.ZoneId], "meter %s outside region zones", m.MeterId)
	}
	assert.Len(t, scoped.Events, 5)
	for _, e := range scoped.Events {
		assert.True(t, zoneIds[e.ZoneId], "event %s outside region zones", e.EventId)
	}

	// Users and regions are not region-scoped
	assert.Len(t, scoped.Users, 5)
	assert.Len(t, scoped.Regions, 2)
}

func TestLoadReturnsFreshBundles(t *testing.T) {
	loader := NewLoader(0)

	a, err := loader.Load()
	require.NoError(t, err)
	b, err := loader.Load()
	require.NoError(t, err)

	a.Meters[0].BatteryLevel = 1
	assert.NotEqual(t, a.Meters[0].BatteryLevel, b.Meters[0].BatteryLevel)
}
