package models

// Branch is a physical restaurant location. Branches are authored in the
// content store and read-only here; inactive branches are filtered out
// before they reach the composition layer.
type Branch struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Slug           string `json:"slug"`
	Address        string `json:"address,omitempty"`
	Phone          string `json:"phone,omitempty"`
	WhatsApp       string `json:"whatsapp,omitempty"`
	OperatingHours string `json:"operating_hours,omitempty"`
	GoogleMapsURL  string `json:"google_maps_url,omitempty"`
	IsActive       bool   `json:"is_active"`
}
