package domain

// Landmark - известное место в зоне обслуживания для автодополнения
type Landmark struct {
	Name string  `json:"name"`
	Lat  float64 `json:"lat"`
	Lng  float64 `json:"lng"`
}

// CBDLandmarks is the fixed lookup table used by the location suggestion
// endpoint. A static list plus substring scan, nothing fuzzy.
var CBDLandmarks = []Landmark{
	{Name: "Flinders Street Station", Lat: -37.8183, Lng: 144.9671},
	{Name: "Southern Cross Station", Lat: -37.8184, Lng: 144.9525},
	{Name: "Melbourne Central", Lat: -37.8100, Lng: 144.9628},
	{Name: "Federation Square", Lat: -37.8180, Lng: 144.9691},
	{Name: "Queen Victoria Market", Lat: -37.8076, Lng: 144.9568},
	{Name: "Bourke Street Mall", Lat: -37.8136, Lng: 144.9631},
	{Name: "State Library Victoria", Lat: -37.8098, Lng: 144.9652},
	{Name: "Crown Casino", Lat: -37.8226, Lng: 144.9583},
	{Name: "Marvel Stadium", Lat: -37.8165, Lng: 144.9475},
	{Name: "Royal Botanic Gardens", Lat: -37.8304, Lng: 144.9796},
	{Name: "Melbourne Cricket Ground", Lat: -37.8200, Lng: 144.9834},
	{Name: "Parliament House", Lat: -37.8110, Lng: 144.9731},
	{Name: "Docklands", Lat: -37.8149, Lng: 144.9426},
	{Name: "Carlton Gardens", Lat: -37.8055, Lng: 144.9717},
	{Name: "Royal Exhibition Building", Lat: -37.8047, Lng: 144.9717},
}
