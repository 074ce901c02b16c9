package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/leondigitalsolution-byte/wira-rentcar-sub001/internal/config"
	"github.com/leondigitalsolution-byte/wira-rentcar-sub001/internal/domain"
	"github.com/leondigitalsolution-byte/wira-rentcar-sub001/internal/repository"
)

// SeedRepos are the repositories the seeder writes through.
type SeedRepos struct {
	Cars      repository.CarRepository
	Partners  repository.PartnerRepository
	Customers repository.CustomerRepository
	Drivers   repository.DriverRepository
	Pricing   repository.PricingRepository
}

// ApplySeed loads master data from the YAML seed file into collections that
// are still empty. Populated collections are left untouched, so re-running
// a deployment with the same seed file is harmless.
func ApplySeed(ctx context.Context, path string, repos SeedRepos) error {
	seed, err := config.LoadSeedFile(path)
	if err != nil {
		return err
	}

	now := time.Now()

	if len(seed.Partners) > 0 {
		existing, err := repos.Partners.GetAll(ctx)
		if err != nil {
			return fmt.Errorf("seed partners: %w", err)
		}
		if len(existing) == 0 {
			for _, p := range seed.Partners {
				partner := &domain.Partner{
					ID:              p.ID,
					Name:            p.Name,
					Phone:           p.Phone,
					SplitPercentage: p.SplitPercentage,
					CreatedAt:       now,
				}
				if err := repos.Partners.Create(ctx, partner); err != nil {
					return fmt.Errorf("seed partner %s: %w", p.ID, err)
				}
			}
			log.Info().Int("count", len(seed.Partners)).Msg("seeded partners")
		}
	}

	if len(seed.Cars) > 0 {
		existing, err := repos.Cars.GetAll(ctx)
		if err != nil {
			return fmt.Errorf("seed cars: %w", err)
		}
		if len(existing) == 0 {
			for _, c := range seed.Cars {
				car := &domain.Car{
					ID:             c.ID,
					Plate:          c.Plate,
					Name:           c.Name,
					Category:       c.Category,
					DailyRate:      domain.Money(c.DailyRate),
					OwnerPartnerID: c.OwnerPartnerID,
					CreatedAt:      now,
				}
				if err := repos.Cars.Create(ctx, car); err != nil {
					return fmt.Errorf("seed car %s: %w", c.ID, err)
				}
			}
			log.Info().Int("count", len(seed.Cars)).Msg("seeded cars")
		}
	}

	if len(seed.Customers) > 0 {
		existing, err := repos.Customers.GetAll(ctx)
		if err != nil {
			return fmt.Errorf("seed customers: %w", err)
		}
		if len(existing) == 0 {
			for _, cu := range seed.Customers {
				customer := &domain.Customer{
					ID:        cu.ID,
					Name:      cu.Name,
					Phone:     cu.Phone,
					Address:   cu.Address,
					CreatedAt: now,
				}
				if err := repos.Customers.Create(ctx, customer); err != nil {
					return fmt.Errorf("seed customer %s: %w", cu.ID, err)
				}
			}
			log.Info().Int("count", len(seed.Customers)).Msg("seeded customers")
		}
	}

	if len(seed.Drivers) > 0 {
		existing, err := repos.Drivers.GetAll(ctx)
		if err != nil {
			return fmt.Errorf("seed drivers: %w", err)
		}
		if len(existing) == 0 {
			for _, d := range seed.Drivers {
				driver := &domain.Driver{
					ID:        d.ID,
					Name:      d.Name,
					Phone:     d.Phone,
					DailyFee:  domain.Money(d.DailyFee),
					CreatedAt: now,
				}
				if err := repos.Drivers.Create(ctx, driver); err != nil {
					return fmt.Errorf("seed driver %s: %w", d.ID, err)
				}
			}
			log.Info().Int("count", len(seed.Drivers)).Msg("seeded drivers")
		}
	}

	if len(seed.RentalPackages) > 0 {
		existing, err := repos.Pricing.ListPackages(ctx)
		if err != nil {
			return fmt.Errorf("seed rental packages: %w", err)
		}
		if len(existing) == 0 {
			packages := make([]*domain.RentalPackage, 0, len(seed.RentalPackages))
			for _, p := range seed.RentalPackages {
				packages = append(packages, &domain.RentalPackage{
					ID:                p.ID,
					Name:              p.Name,
					RateMultiplierPct: p.RateMultiplierPct,
					FlatFee:           domain.Money(p.FlatFee),
				})
			}
			if err := repos.Pricing.SavePackages(ctx, packages); err != nil {
				return fmt.Errorf("seed rental packages: %w", err)
			}
			log.Info().Int("count", len(packages)).Msg("seeded rental packages")
		}
	}

	if len(seed.HighSeasonRules) > 0 {
		existing, err := repos.Pricing.ListRules(ctx)
		if err != nil {
			return fmt.Errorf("seed high season rules: %w", err)
		}
		if len(existing) == 0 {
			rules := make([]*domain.HighSeasonRule, 0, len(seed.HighSeasonRules))
			for _, r := range seed.HighSeasonRules {
				rules = append(rules, &domain.HighSeasonRule{
					ID:             r.ID,
					Name:           r.Name,
					DateRangeStart: r.DateRangeStart,
					DateRangeEnd:   r.DateRangeEnd,
					Categories:     r.Categories,
					SurchargeType:  domain.ChargeType(r.SurchargeType),
					SurchargeValue: r.SurchargeValue,
				})
			}
			if err := repos.Pricing.SaveRules(ctx, rules); err != nil {
				return fmt.Errorf("seed high season rules: %w", err)
			}
			log.Info().Int("count", len(rules)).Msg("seeded high season rules")
		}
	}

	if seed.Pricing != nil {
		if _, err := repos.Pricing.GetConfig(ctx); err != nil {
			if !errors.Is(err, repository.ErrNotFound) {
				return fmt.Errorf("seed pricing config: %w", err)
			}
			cfg := &domain.PricingConfig{
				OvertimeType:  domain.ChargeType(seed.Pricing.OvertimeType),
				OvertimeValue: seed.Pricing.OvertimeValue,
			}
			if err := repos.Pricing.SaveConfig(ctx, cfg); err != nil {
				return fmt.Errorf("seed pricing config: %w", err)
			}
			log.Info().Msg("seeded pricing config")
		}
	}

	return nil
}
