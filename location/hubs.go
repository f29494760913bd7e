// Package location holds the static hub table and the delivery ETA model.
package location

import "sort"

// DefaultHub is used when a request does not name a hub.
const DefaultHub = "Lagos"

// Hub is a distribution point deliveries leave from.
type Hub struct {
	Name            string  `json:"name"`
	Latitude        float64 `json:"latitude"`
	Longitude       float64 `json:"longitude"`
	BaseHours       float64 `json:"base_hours"`
	PerKmMinuteCost float64 `json:"per_km_minute_cost"`
	ColdChain       bool    `json:"cold_chain"`
}

type City struct {
	Name      string  `json:"name"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

var hubs = map[string]Hub{
	"Lagos":         {Name: "Lagos", Latitude: 6.5244, Longitude: 3.3792, BaseHours: 6, PerKmMinuteCost: 1.2, ColdChain: true},
	"Abuja":         {Name: "Abuja", Latitude: 9.0765, Longitude: 7.3986, BaseHours: 12, PerKmMinuteCost: 1.0, ColdChain: true},
	"Port Harcourt": {Name: "Port Harcourt", Latitude: 4.8156, Longitude: 7.0498, BaseHours: 12, PerKmMinuteCost: 1.1, ColdChain: true},
	"Ibadan":        {Name: "Ibadan", Latitude: 7.3775, Longitude: 3.9470, BaseHours: 8, PerKmMinuteCost: 1.0, ColdChain: true},
	"Kano":          {Name: "Kano", Latitude: 12.0022, Longitude: 8.5919, BaseHours: 16, PerKmMinuteCost: 1.1, ColdChain: true},
	"Enugu":         {Name: "Enugu", Latitude: 6.5244, Longitude: 7.5174, BaseHours: 14, PerKmMinuteCost: 1.0, ColdChain: true},
	"Benin City":    {Name: "Benin City", Latitude: 6.3350, Longitude: 5.6037, BaseHours: 10, PerKmMinuteCost: 1.0, ColdChain: true},
}

// Every hub city is also a delivery city.
var cities = func() map[string]City {
	m := make(map[string]City, len(hubs))
	for name, h := range hubs {
		m[name] = h.City()
	}
	return m
}()

// City returns the hub's own city.
func (h Hub) City() City {
	return City{Name: h.Name, Latitude: h.Latitude, Longitude: h.Longitude}
}

func LookupHub(name string) (Hub, bool) {
	h, ok := hubs[name]
	return h, ok
}

func LookupCity(name string) (City, bool) {
	c, ok := cities[name]
	return c, ok
}

// Hubs returns the hub table sorted by name.
func Hubs() []Hub {
	out := make([]Hub, 0, len(hubs))
	for _, h := range hubs {
		out = append(out, h)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Cities returns the supported delivery cities sorted by name.
func Cities() []City {
	out := make([]City, 0, len(cities))
	for _, c := range cities {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}
