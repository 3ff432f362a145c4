package fixtures

import "github.com/aquawatch/aquawatch_backend/pkg/types"

// Bundle is one full decode of the fixture dataset. Every Load returns a
// fresh bundle, so callers can never corrupt each other's slices.
type Bundle struct {
	Regions   []types.Region
	Zones     []types.Zone
	Buildings []types.Building
	Meters    []types.Meter
	Events    []types.MeterEvent
	Users     []types.User
}
