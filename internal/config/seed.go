package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// SeedFile is the YAML master-data file loaded once at startup. Only empty
// collections are seeded from it; a populated store is never overwritten.
type SeedFile struct {
	Partners        []SeedPartner       `yaml:"partners"`
	Cars            []SeedCar           `yaml:"cars"`
	Customers       []SeedCustomer      `yaml:"customers"`
	Drivers         []SeedDriver        `yaml:"drivers"`
	RentalPackages  []SeedRentalPackage `yaml:"rental_packages"`
	HighSeasonRules []SeedSeasonRule    `yaml:"high_season_rules"`
	Pricing         *SeedPricing        `yaml:"pricing"`
}

// SeedPartner seeds one investor partner.
type SeedPartner struct {
	ID              string `yaml:"id"`
	Name            string `yaml:"name"`
	Phone           string `yaml:"phone"`
	SplitPercentage int64  `yaml:"split_percentage"`
}

// SeedCar seeds one fleet car.
type SeedCar struct {
	ID             string `yaml:"id"`
	Plate          string `yaml:"plate"`
	Name           string `yaml:"name"`
	Category       string `yaml:"category"`
	DailyRate      int64  `yaml:"daily_rate"`
	OwnerPartnerID string `yaml:"owner_partner_id"`
}

// SeedCustomer seeds one customer.
type SeedCustomer struct {
	ID      string `yaml:"id"`
	Name    string `yaml:"name"`
	Phone   string `yaml:"phone"`
	Address string `yaml:"address"`
}

// SeedDriver seeds one chauffeur.
type SeedDriver struct {
	ID       string `yaml:"id"`
	Name     string `yaml:"name"`
	Phone    string `yaml:"phone"`
	DailyFee int64  `yaml:"daily_fee"`
}

// SeedRentalPackage seeds one rate package.
type SeedRentalPackage struct {
	ID                string `yaml:"id"`
	Name              string `yaml:"name"`
	RateMultiplierPct int64  `yaml:"rate_multiplier_pct"`
	FlatFee           int64  `yaml:"flat_fee"`
}

// SeedSeasonRule seeds one high-season surcharge rule. Dates are inclusive
// calendar days in RFC 3339.
type SeedSeasonRule struct {
	ID             string    `yaml:"id"`
	Name           string    `yaml:"name"`
	DateRangeStart time.Time `yaml:"date_range_start"`
	DateRangeEnd   time.Time `yaml:"date_range_end"`
	Categories     []string  `yaml:"categories"`
	SurchargeType  string    `yaml:"surcharge_type"`
	SurchargeValue int64     `yaml:"surcharge_value"`
}

// SeedPricing seeds the global overtime policy.
type SeedPricing struct {
	OvertimeType  string `yaml:"overtime_type"`
	OvertimeValue int64  `yaml:"overtime_value"`
}

// LoadSeedFile reads and parses the YAML seed file at path.
func LoadSeedFile(path string) (*SeedFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}
	var seed SeedFile
	if err := yaml.Unmarshal(data, &seed); err != nil {
		return nil, fmt.Errorf("parse seed file %s: %w", path, err)
	}
	return &seed, nil
}
