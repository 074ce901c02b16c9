package service

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/leondigitalsolution-byte/wira-rentcar-sub001/internal/domain"
	"github.com/leondigitalsolution-byte/wira-rentcar-sub001/internal/metrics"
	"github.com/leondigitalsolution-byte/wira-rentcar-sub001/internal/repository"
)

// SettlementService computes what an investor partner is owed for a period.
// It is a pure read: nothing is written, so running the same settlement
// twice over unchanged books yields the same numbers.
type SettlementService struct {
	partnerRepo     repository.PartnerRepository
	carRepo         repository.CarRepository
	bookingRepo     repository.BookingRepository
	transactionRepo repository.TransactionRepository
}

// NewSettlementService creates a new SettlementService.
func NewSettlementService(
	partnerRepo repository.PartnerRepository,
	carRepo repository.CarRepository,
	bookingRepo repository.BookingRepository,
	transactionRepo repository.TransactionRepository,
) *SettlementService {
	return &SettlementService{
		partnerRepo:     partnerRepo,
		carRepo:         carRepo,
		bookingRepo:     bookingRepo,
		transactionRepo: transactionRepo,
	}
}

// Settlement is the outcome of settling one partner over one period.
// Outstanding may be negative when deposits exceeded the share.
type Settlement struct {
	PartnerID       string       `json:"partner_id"`
	PeriodStart     time.Time    `json:"period_start"`
	PeriodEnd       time.Time    `json:"period_end"`
	SplitPercentage int64        `json:"split_percentage"`
	GrossRevenue    domain.Money `json:"gross_revenue"`
	PartnerShare    domain.Money `json:"partner_share"`
	CompanyShare    domain.Money `json:"company_share"`
	DepositsPaid    domain.Money `json:"deposits_paid"`
	Outstanding     domain.Money `json:"outstanding"`
	BookingCount    int          `json:"booking_count"`
}

// Settle computes the given partner's settlement over the half-open period
// [periodStart, periodEnd). Gross revenue sums the frozen totals of
// COMPLETED bookings of the partner's cars whose scheduled start falls in
// the period. The partner's share rounds half-up; the company share is the
// exact complement so the two always sum to the gross.
func (s *SettlementService) Settle(ctx context.Context, partnerID string, periodStart, periodEnd time.Time) (*Settlement, error) {
	if partnerID == "" {
		return nil, ErrInvalidPartnerID
	}
	if !periodStart.Before(periodEnd) {
		return nil, ErrInvalidPeriod
	}

	partner, err := s.partnerRepo.GetByID(ctx, partnerID)
	if err != nil {
		return nil, err
	}
	if partner.SplitPercentage < 0 || partner.SplitPercentage > 100 {
		return nil, ErrInvalidSplitPercentage
	}

	cars, err := s.carRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	owned := make(map[string]bool)
	for _, car := range cars {
		if car.OwnerPartnerID == partnerID {
			owned[car.ID] = true
		}
	}

	bookings, err := s.bookingRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	var gross domain.Money
	count := 0
	for _, b := range bookings {
		if b.Status != domain.BookingStatusCompleted || !owned[b.CarID] {
			continue
		}
		if b.ScheduledStart.Before(periodStart) || !b.ScheduledStart.Before(periodEnd) {
			continue
		}
		gross += b.TotalPrice
		count++
	}

	partnerShare := roundPercent(gross, partner.SplitPercentage)
	companyShare := gross - partnerShare

	transactions, err := s.transactionRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	var deposits domain.Money
	for _, tx := range transactions {
		if !tx.PartnerDeposit(partnerID) {
			continue
		}
		if tx.Date.Before(periodStart) || !tx.Date.Before(periodEnd) {
			continue
		}
		deposits += tx.Amount
	}

	metrics.SettlementsComputed.Inc()
	log.Debug().
		Str("partner_id", partnerID).
		Int64("gross_revenue", int64(gross)).
		Int64("partner_share", int64(partnerShare)).
		Int64("deposits_paid", int64(deposits)).
		Msg("settlement computed")

	return &Settlement{
		PartnerID:       partnerID,
		PeriodStart:     periodStart,
		PeriodEnd:       periodEnd,
		SplitPercentage: partner.SplitPercentage,
		GrossRevenue:    gross,
		PartnerShare:    partnerShare,
		CompanyShare:    companyShare,
		DepositsPaid:    deposits,
		Outstanding:     partnerShare - deposits,
		BookingCount:    count,
	}, nil
}
