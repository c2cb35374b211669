// Package domain defines the types and ports for crew enrichment
package domain

// Supplement is the extra text attached to a crew member
// the source is a picture of the day draw and is not about the member
type Supplement struct {
	Title       string `json:"title" example:"The Horsehead Nebula"`
	Explanation string `json:"explanation"`
	URL         string `json:"url,omitempty"`
	Date        string `json:"date,omitempty" example:"2021-04-23"`
}

// EnrichedCrewMember is a resolved crew profile plus optional supplementary data
type EnrichedCrewMember struct {
	ID          string      `json:"id" example:"5fe3c587b3467846b3242198"`
	Name        string      `json:"name" example:"Thomas Pesquet"`
	Role        string      `json:"role" example:"Mission Specialist"`
	RoleLabel   string      `json:"role_label" example:"Mission Specialist"`
	Status      string      `json:"status" example:"active"`
	StatusLabel string      `json:"status_label" example:"Active"`
	Image       string      `json:"image,omitempty"`
	Agency      string      `json:"agency,omitempty" example:"ESA"`
	Wikipedia   string      `json:"wikipedia,omitempty"`
	NasaData    *Supplement `json:"nasa_data"`
}

// Enrichment is a resolved roster tagged with the launch it belongs to
type Enrichment struct {
	LaunchID   string               `json:"launch_id"`
	Generation uint64               `json:"generation"`
	Ready      bool                 `json:"ready"`
	Crew       []EnrichedCrewMember `json:"crew"`
}
