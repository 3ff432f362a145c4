// Shared wire types for the AquaWatch backend.
// All JSON tags match the fixture dataset and the dashboard API payloads.
package types

type Region struct {
	RegionId    string `json:"regionId"`
	RegionName  string `json:"regionName"`
	Description string `json:"description"`
	ZoneCount   int    `json:"zoneCount"`
	MeterCount  int    `json:"meterCount"`
	IsActive    bool   `json:"isActive"`
}

type Zone struct {
	ZoneId        string `json:"zoneId"`
	RegionId      string `json:"regionId"`
	ZoneName      string `json:"zoneName"`
	BuildingCount int    `json:"buildingCount"`
	IsActive      bool   `json:"isActive"`
}

type Building struct {
	BuildingId   string  `json:"buildingId"`
	ZoneId       string  `json:"zoneId"`
	BuildingName string  `json:"buildingName"`
	BuildingCode string  `json:"buildingCode"`
	Lat          float64 `json:"lat"`
	Lng          float64 `json:"lng"`
	FloorCount   int     `json:"floorCount"`
	IsActive     bool    `json:"isActive"`
}
