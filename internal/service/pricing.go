package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/leondigitalsolution-byte/wira-rentcar-sub001/internal/domain"
	"github.com/leondigitalsolution-byte/wira-rentcar-sub001/internal/repository"
)

// PricingService computes rental charges: base price, high-season surcharge
// and overtime fees. All arithmetic is integer arithmetic on minor currency
// units; percentages round half-up.
type PricingService struct {
	pricingRepo repository.PricingRepository
}

// NewPricingService creates a new PricingService.
func NewPricingService(pricingRepo repository.PricingRepository) *PricingService {
	return &PricingService{pricingRepo: pricingRepo}
}

// Quote is a priced rental interval before any overtime is known.
type Quote struct {
	RentalDays int          `json:"rentalDays"`
	BasePrice  domain.Money `json:"basePrice"`
	Surcharge  domain.Money `json:"surcharge"`
	Total      domain.Money `json:"total"`
}

// Quote prices a rental of car over [start, end) under pkg, including the
// driver's daily fee when driver is non-nil.
func (s *PricingService) Quote(ctx context.Context, car *domain.Car, driver *domain.Driver, pkg *domain.RentalPackage, start, end time.Time) (*Quote, error) {
	if !start.Before(end) {
		return nil, ErrInvalidInterval
	}

	days := rentalDays(start, end)
	base := basePrice(car.DailyRate, driver, pkg, days)

	rules, err := s.pricingRepo.ListRules(ctx)
	if err != nil {
		return nil, err
	}
	surcharge, err := seasonSurcharge(rules, car.Category, start, end, base)
	if err != nil {
		return nil, err
	}

	return &Quote{
		RentalDays: days,
		BasePrice:  base,
		Surcharge:  surcharge,
		Total:      base + surcharge,
	}, nil
}

// OvertimeFee computes the late-return fee for a booking returned at
// actualReturn against scheduledEnd. Returns that are on time or early
// cost nothing.
func (s *PricingService) OvertimeFee(ctx context.Context, dailyRate domain.Money, scheduledEnd, actualReturn time.Time) (domain.Money, error) {
	if !actualReturn.After(scheduledEnd) {
		return 0, nil
	}

	cfg, err := s.pricingRepo.GetConfig(ctx)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return 0, &ConfigurationError{Reason: "overtime pricing is not configured"}
		}
		return 0, err
	}

	hoursLate := ceilHours(actualReturn.Sub(scheduledEnd))
	switch cfg.OvertimeType {
	case domain.ChargePercentage:
		return domain.Money(hoursLate) * roundPercent(dailyRate, cfg.OvertimeValue), nil
	case domain.ChargeNominal:
		return domain.Money(hoursLate) * domain.Money(cfg.OvertimeValue), nil
	default:
		return 0, &ConfigurationError{Reason: fmt.Sprintf("unknown overtime charge type %q", cfg.OvertimeType)}
	}
}

// rentalDays is the billed day count for [start, end): partial days round
// up and the minimum is one day.
func rentalDays(start, end time.Time) int {
	d := end.Sub(start)
	days := int(d / (24 * time.Hour))
	if d%(24*time.Hour) != 0 {
		days++
	}
	if days < 1 {
		days = 1
	}
	return days
}

// ceilHours rounds a positive duration up to whole hours.
func ceilHours(d time.Duration) int64 {
	hours := int64(d / time.Hour)
	if d%time.Hour != 0 {
		hours++
	}
	return hours
}

// roundPercent applies pct percent to amount, rounding half-up.
func roundPercent(amount domain.Money, pct int64) domain.Money {
	return (amount*domain.Money(pct) + 50) / 100
}

// basePrice is days times the package-adjusted daily rate, plus the
// package flat fee once, plus the driver's daily fee for each day.
func basePrice(dailyRate domain.Money, driver *domain.Driver, pkg *domain.RentalPackage, days int) domain.Money {
	rate := dailyRate
	if pkg != nil {
		rate = roundPercent(dailyRate, pkg.RateMultiplierPct)
	}
	total := rate * domain.Money(days)
	if pkg != nil {
		total += pkg.FlatFee
	}
	if driver != nil {
		total += driver.DailyFee * domain.Money(days)
	}
	return total
}

// seasonSurcharge evaluates the high-season rules against a booking of the
// given category over [start, end). Multiple rules may match as long as
// their date ranges do not overlap each other; when they do, the pricing
// data is ambiguous and the caller gets a ConfigurationError. With several
// disjoint matches the rule containing start wins, otherwise the one whose
// range begins earliest.
func seasonSurcharge(rules []*domain.HighSeasonRule, category string, start, end time.Time, base domain.Money) (domain.Money, error) {
	var matched []*domain.HighSeasonRule
	for _, r := range rules {
		if r.AppliesTo(category) && r.IntersectsInterval(start, end) {
			matched = append(matched, r)
		}
	}
	if len(matched) == 0 {
		return 0, nil
	}

	for i := 0; i < len(matched); i++ {
		for j := i + 1; j < len(matched); j++ {
			if matched[i].OverlapsRule(matched[j]) {
				return 0, &ConfigurationError{
					Reason:  "overlapping high season rules match the booking interval",
					RuleIDs: []string{matched[i].ID, matched[j].ID},
				}
			}
		}
	}

	rule := matched[0]
	for _, r := range matched[1:] {
		if r.Contains(start) {
			rule = r
			break
		}
		if !rule.Contains(start) && r.DateRangeStart.Before(rule.DateRangeStart) {
			rule = r
		}
	}

	switch rule.SurchargeType {
	case domain.ChargePercentage:
		return roundPercent(base, rule.SurchargeValue), nil
	case domain.ChargeNominal:
		return domain.Money(rule.SurchargeValue), nil
	default:
		return 0, &ConfigurationError{
			Reason:  fmt.Sprintf("rule has unknown surcharge type %q", rule.SurchargeType),
			RuleIDs: []string{rule.ID},
		}
	}
}
