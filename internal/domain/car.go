package domain

import "time"

// Car represents a vehicle in the rental fleet.
type Car struct {
	ID             string    `json:"id"`
	Plate          string    `json:"plate"`
	Name           string    `json:"name"`
	Category       string    `json:"category"` // open tag set, e.g. "MPV", "SUV"
	DailyRate      Money     `json:"daily_rate"`
	OwnerPartnerID string    `json:"owner_partner_id,omitempty"` // empty = company-owned
	CreatedAt      time.Time `json:"created_at"`
}

// PartnerOwned reports whether the car belongs to an investor partner.
func (c *Car) PartnerOwned() bool {
	return c.OwnerPartnerID != ""
}
