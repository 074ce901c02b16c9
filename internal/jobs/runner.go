package jobs

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"

	"github.com/leondigitalsolution-byte/wira-rentcar-sub001/internal/config"
	"github.com/leondigitalsolution-byte/wira-rentcar-sub001/internal/domain"
	"github.com/leondigitalsolution-byte/wira-rentcar-sub001/internal/repository"
	"github.com/leondigitalsolution-byte/wira-rentcar-sub001/internal/service"
)

// Runner coordinates the scheduled jobs: the nightly overdue sweep and the
// monthly partner statements. Both jobs are read-only over the store.
type Runner struct {
	cron        *cron.Cron
	cfg         config.JobsConfig
	bookingRepo repository.BookingRepository
	partnerRepo repository.PartnerRepository
	settlement  *service.SettlementService
}

// NewRunner creates a Runner and registers its jobs against the configured
// schedules.
func NewRunner(
	cfg config.JobsConfig,
	bookingRepo repository.BookingRepository,
	partnerRepo repository.PartnerRepository,
	settlement *service.SettlementService,
) *Runner {
	r := &Runner{
		cron:        cron.New(cron.WithLocation(time.UTC)),
		cfg:         cfg,
		bookingRepo: bookingRepo,
		partnerRepo: partnerRepo,
		settlement:  settlement,
	}

	if _, err := r.cron.AddFunc(cfg.OverdueSchedule, r.SweepOverdue); err != nil {
		log.Error().Err(err).Str("schedule", cfg.OverdueSchedule).Msg("failed to register overdue sweep")
	}
	if _, err := r.cron.AddFunc(cfg.StatementSchedule, r.MonthlyStatements); err != nil {
		log.Error().Err(err).Str("schedule", cfg.StatementSchedule).Msg("failed to register monthly statements")
	}

	return r
}

// Start begins running jobs on their schedules.
func (r *Runner) Start() {
	r.cron.Start()
	log.Info().
		Str("overdue", r.cfg.OverdueSchedule).
		Str("statements", r.cfg.StatementSchedule).
		Msg("job scheduler started")
}

// Stop stops the scheduler and waits for running jobs to finish.
func (r *Runner) Stop() {
	ctx := r.cron.Stop()
	<-ctx.Done()
	log.Info().Msg("job scheduler stopped")
}

// runWithRecovery wraps job execution with panic recovery.
func (r *Runner) runWithRecovery(jobName string, jobFunc func()) {
	defer func() {
		if rec := recover(); rec != nil {
			log.Error().Str("job", jobName).Any("panic", rec).Msg("job panicked")
		}
	}()

	log.Info().Str("job", jobName).Msg("starting job")
	jobFunc()
	log.Info().Str("job", jobName).Msg("job completed")
}

// SweepOverdue logs every ACTIVE booking past its scheduled end. These are
// cars out accruing overtime; the fee itself is priced at completion, so
// the sweep only surfaces them.
func (r *Runner) SweepOverdue() {
	r.runWithRecovery("SweepOverdue", func() {
		ctx := context.Background()
		now := time.Now()

		bookings, err := r.bookingRepo.GetAll(ctx)
		if err != nil {
			log.Error().Err(err).Msg("failed to load bookings for overdue sweep")
			return
		}

		overdue := 0
		for _, b := range bookings {
			if b.Status != domain.BookingStatusActive || !now.After(b.ScheduledEnd) {
				continue
			}
			overdue++
			log.Warn().
				Str("booking_id", b.ID).
				Str("car_id", b.CarID).
				Time("scheduled_end", b.ScheduledEnd).
				Msg("booking overdue")
		}

		log.Info().Int("overdue", overdue).Msg("overdue sweep finished")
	})
}

// MonthlyStatements computes last month's settlement for every partner and
// logs the statement lines.
func (r *Runner) MonthlyStatements() {
	r.runWithRecovery("MonthlyStatements", func() {
		ctx := context.Background()

		now := time.Now().UTC()
		periodEnd := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
		periodStart := periodEnd.AddDate(0, -1, 0)

		partners, err := r.partnerRepo.GetAll(ctx)
		if err != nil {
			log.Error().Err(err).Msg("failed to load partners for statements")
			return
		}

		for _, p := range partners {
			stmt, err := r.settlement.Settle(ctx, p.ID, periodStart, periodEnd)
			if err != nil {
				log.Error().Err(err).Str("partner_id", p.ID).Msg("failed to compute statement")
				continue
			}
			log.Info().
				Str("partner_id", p.ID).
				Str("partner", p.Name).
				Time("period_start", periodStart).
				Time("period_end", periodEnd).
				Int64("gross_revenue", int64(stmt.GrossRevenue)).
				Int64("partner_share", int64(stmt.PartnerShare)).
				Int64("deposits_paid", int64(stmt.DepositsPaid)).
				Int64("outstanding", int64(stmt.Outstanding)).
				Msg("monthly partner statement")
		}
	})
}
