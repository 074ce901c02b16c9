package domain

import "time"

// Partner is an investor who owns cars in the fleet and receives a
// percentage split of the gross revenue those cars generate.
type Partner struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	Phone           string    `json:"phone,omitempty"`
	SplitPercentage int64     `json:"split_percentage"` // [0,100]
	CreatedAt       time.Time `json:"created_at"`
}

// Customer rents cars.
type Customer struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone,omitempty"`
	Address   string    `json:"address,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// Driver is an optional chauffeur attached to a booking.
type Driver struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone,omitempty"`
	DailyFee  Money     `json:"daily_fee"`
	CreatedAt time.Time `json:"created_at"`
}
