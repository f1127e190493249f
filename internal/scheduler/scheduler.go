package scheduler

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/household-platform/household-service/internal/application"
	"github.com/household-platform/household-service/internal/domain"
	"github.com/household-platform/household-service/internal/platform/kafka"
	"github.com/household-platform/household-service/internal/platform/logging"
	"github.com/household-platform/household-service/internal/platform/metrics"
)

const (
	jobAppendNextDay  = "append_next_day"
	jobLowStockDigest = "low_stock_digest"

	// Both schedules run in UTC, matching the planner's date arithmetic.
	defaultAppendSchedule = "0 0 * * *"
	defaultDigestSchedule = "0 6 * * *"

	jobTimeout = 30 * time.Second
)

// PlanAppender extends the meal planner by one day.
type PlanAppender interface {
	AppendNextDay(ctx context.Context) (*domain.DayPlan, error)
}

// DigestSource produces the low-stock digest.
type DigestSource interface {
	LowStockDigest(ctx context.Context) (*application.LowStockDigestDTO, error)
}

// Config holds the cron expressions for the scheduled jobs.
type Config struct {
	AppendSchedule string
	DigestSchedule string
}

// DefaultConfig returns the standard schedules: planner roll-over at UTC
// midnight, low-stock digest at 06:00 UTC.
func DefaultConfig() *Config {
	return &Config{
		AppendSchedule: defaultAppendSchedule,
		DigestSchedule: defaultDigestSchedule,
	}
}

// Scheduler runs the household background jobs.
type Scheduler struct {
	cron     *cron.Cron
	config   *Config
	planner  PlanAppender
	digests  DigestSource
	producer *kafka.Producer
	metrics  *metrics.Metrics
	logger   *logging.Logger
}

// New creates a Scheduler. Jobs are registered by Start.
func New(config *Config, planner PlanAppender, digests DigestSource, producer *kafka.Producer, m *metrics.Metrics, logger *logging.Logger) *Scheduler {
	return &Scheduler{
		cron:     cron.New(cron.WithLocation(time.UTC)),
		config:   config,
		planner:  planner,
		digests:  digests,
		producer: producer,
		metrics:  m,
		logger:   logger.WithComponent("scheduler"),
	}
}

// Start registers the jobs and starts the cron loop.
func (s *Scheduler) Start() error {
	if _, err := s.cron.AddFunc(s.config.AppendSchedule, s.RunAppendNextDay); err != nil {
		return err
	}
	if _, err := s.cron.AddFunc(s.config.DigestSchedule, s.RunLowStockDigest); err != nil {
		return err
	}

	s.cron.Start()
	s.logger.Info("Scheduler started",
		"appendSchedule", s.config.AppendSchedule,
		"digestSchedule", s.config.DigestSchedule,
	)
	return nil
}

// Stop halts the cron loop and waits for running jobs to finish.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	s.logger.Info("Scheduler stopped")
}

// RunAppendNextDay extends the meal planner by one calendar day.
func (s *Scheduler) RunAppendNextDay() {
	s.run(jobAppendNextDay, func(ctx context.Context) error {
		plan, err := s.planner.AppendNextDay(ctx)
		if err != nil {
			return err
		}
		s.logger.Info("Planner extended", "date", plan.Date)
		return nil
	})
}

// RunLowStockDigest computes the low-stock digest and publishes it.
func (s *Scheduler) RunLowStockDigest() {
	s.run(jobLowStockDigest, func(ctx context.Context) error {
		digest, err := s.digests.LowStockDigest(ctx)
		if err != nil {
			return err
		}
		s.logger.Info("Low-stock digest computed",
			"items", len(digest.Items),
			"estimatedTotal", digest.EstimatedTotal,
		)

		if s.producer == nil || len(digest.Items) == 0 {
			return nil
		}
		envelope := kafka.NewEnvelope("household.inventory.low_stock_digest", "household-service", "", digest)
		return s.producer.Publish(ctx, kafka.Topics.InventoryEvents, envelope)
	})
}

func (s *Scheduler) run(job string, fn func(ctx context.Context) error) {
	ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
	defer cancel()

	s.logger.JobStart(job)
	start := time.Now()
	err := fn(ctx)
	duration := time.Since(start)

	if err != nil {
		s.logger.WithError(err).Error("Scheduled job failed", "job", job)
	}
	s.logger.JobComplete(job, duration, err == nil)
	if s.metrics != nil {
		s.metrics.RecordJobRun(job, err == nil, duration)
	}
}
