// Fixture dataset loader. Stands in for the utility's real data platform:
// static JSON embedded in the binary, served with a configurable artificial
// delay so the dashboard behaves like it talks to a remote API.
package fixtures

import (
	"embed"
	"encoding/json"
	"fmt"
	"time"

	"github.com/aquawatch/aquawatch_backend/pkg/types"
)

//go:embed data/*.json
var dataFS embed.FS

type Loader struct {
	// Fake network latency applied once per Load. Zero disables it.
	Latency time.Duration
}

func NewLoader(latency time.Duration) *Loader {
	return &Loader{Latency: latency}
}

// Load decodes the embedded dataset into a fresh Bundle.
func (l *Loader) Load() (*Bundle, error) {
	if l.Latency > 0 {
		time.Sleep(l.Latency)
	}

	var b Bundle
	files := []struct {
		name string
		dest interface{}
	}{
		{"data/regions.json", &b.Regions},
		{"data/zones.json", &b.Zones},
		{"data/buildings.json", &b.Buildings},
		{"data/meters.json", &b.Meters},
		{"data/events.json", &b.Events},
		{"data/users.json", &b.Users},
	}
	for _, f := range files {
		raw, err := dataFS.ReadFile(f.name)
		if err != nil {
			return nil, fmt.Errorf("read fixture %s: %w", f.name, err)
		}
		if err := json.Unmarshal(raw, f.dest); err != nil {
			return nil, fmt.Errorf("decode fixture %s: %w", f.name, err)
		}
	}
	return &b, nil
}

// Region looks up a region by id.
func (b *Bundle) Region(regionId string) (types.Region, bool) {
	for _, reg := range b.Regions {
		if reg.RegionId == regionId {
			return reg, true
		}
	}
	return types.Region{}, false
}

// FilterRegion narrows the bundle to one region's zones, buildings, meters
// and events. Users and regions pass through unchanged.
func (b *Bundle) FilterRegion(regionId string) *Bundle {
	out := &Bundle{Regions: b.Regions, Users: b.Users}

	zoneIds := make(map[string]bool)
	for _, z := range b.Zones {
		if z.RegionId == regionId {
			out.Zones = append(out.Zones, z)
			zoneIds[z.ZoneId] = true
		}
	}
	for _, bl := range b.Buildings {
		if zoneIds[bl.ZoneId] {
			out.Buildings = append(out.Buildings, bl)
		}
	}
	for _, m := range b.Meters {
		if zoneIds[m.ZoneId] {
			out.Meters = append(out.Meters, m)
		}
	}
	for _, e := range b.Events {
		if zoneIds[e.ZoneId] {
			out.Events = append(out.Events, e)
		}
	}
	return out
}
