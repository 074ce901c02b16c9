package domain

import "time"

// ChargeType distinguishes percentage-based from flat (nominal) charges.
type ChargeType string

const (
	ChargePercentage ChargeType = "PERCENTAGE"
	ChargeNominal    ChargeType = "NOMINAL"
)

// HighSeasonRule surcharges the base price for bookings whose interval
// intersects its inclusive date range. Rules for the same category must not
// have overlapping date ranges; ambiguity is a configuration error.
type HighSeasonRule struct {
	ID             string     `json:"id"`
	Name           string     `json:"name"`
	DateRangeStart time.Time  `json:"date_range_start"` // inclusive
	DateRangeEnd   time.Time  `json:"date_range_end"`   // inclusive
	Categories     []string   `json:"categories,omitempty"` // empty = all categories
	SurchargeType  ChargeType `json:"surcharge_type"`
	SurchargeValue int64      `json:"surcharge_value"` // percent or minor units
}

// AppliesTo reports whether the rule covers the given car category.
func (r *HighSeasonRule) AppliesTo(category string) bool {
	if len(r.Categories) == 0 {
		return true
	}
	for _, c := range r.Categories {
		if c == category {
			return true
		}
	}
	return false
}

// IntersectsInterval reports whether the rule's inclusive date range
// intersects the half-open booking interval [start, end).
func (r *HighSeasonRule) IntersectsInterval(start, end time.Time) bool {
	return r.DateRangeStart.Before(end) && !start.After(r.DateRangeEnd)
}

// Contains reports whether t falls inside the rule's inclusive date range.
func (r *HighSeasonRule) Contains(t time.Time) bool {
	return !t.Before(r.DateRangeStart) && !t.After(r.DateRangeEnd)
}

// OverlapsRule reports whether two rules' inclusive date ranges overlap.
func (r *HighSeasonRule) OverlapsRule(other *HighSeasonRule) bool {
	return !r.DateRangeStart.After(other.DateRangeEnd) && !other.DateRangeStart.After(r.DateRangeEnd)
}

// PricingConfig is the single global overtime policy. It is loaded once per
// operation batch and passed by value into pricing calls, never mutated
// mid-computation.
type PricingConfig struct {
	OvertimeType  ChargeType `json:"overtime_type"`
	OvertimeValue int64      `json:"overtime_value"` // percent of daily rate, or minor units per hour
}

// RentalPackage determines the rate policy applied to a car's daily rate.
// RateMultiplierPct of 100 bills the list rate; FlatFee is added once.
type RentalPackage struct {
	ID                string `json:"id"`
	Name              string `json:"name"`
	RateMultiplierPct int64  `json:"rate_multiplier_pct"`
	FlatFee           Money  `json:"flat_fee"`
}

// DefaultRentalPackage bills the plain list rate.
func DefaultRentalPackage() *RentalPackage {
	return &RentalPackage{ID: "", Name: "standard", RateMultiplierPct: 100}
}
