package scheduler

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/household-platform/household-service/internal/application"
	"github.com/household-platform/household-service/internal/domain"
	"github.com/household-platform/household-service/internal/platform/logging"
)

func testLogger() *logging.Logger {
	cfg := logging.DefaultConfig("scheduler-test")
	cfg.Output = io.Discard
	return logging.New(cfg)
}

type fakePlanner struct {
	calls int
	err   error
}

func (p *fakePlanner) AppendNextDay(_ context.Context) (*domain.DayPlan, error) {
	p.calls++
	if p.err != nil {
		return nil, p.err
	}
	return domain.NewDayPlan("2025-03-11"), nil
}

type fakeDigests struct {
	calls  int
	digest *application.LowStockDigestDTO
	err    error
}

func (d *fakeDigests) LowStockDigest(_ context.Context) (*application.LowStockDigestDTO, error) {
	d.calls++
	return d.digest, d.err
}

func TestRunAppendNextDay(t *testing.T) {
	planner := &fakePlanner{}
	s := New(DefaultConfig(), planner, &fakeDigests{}, nil, nil, testLogger())

	s.RunAppendNextDay()
	assert.Equal(t, 1, planner.calls)
}

func TestRunAppendNextDayFailure(t *testing.T) {
	planner := &fakePlanner{err: errors.New("database unavailable")}
	s := New(DefaultConfig(), planner, &fakeDigests{}, nil, nil, testLogger())

	// A failed run must not panic; the next tick retries.
	s.RunAppendNextDay()
	assert.Equal(t, 1, planner.calls)
}

func TestRunLowStockDigest(t *testing.T) {
	digests := &fakeDigests{digest: &application.LowStockDigestDTO{
		Items: []*domain.StockItem{
			{ID: "i1", Name: "Milk", Quantity: 0.5, Unit: "L", LowStockThreshold: 1},
		},
		EstimatedTotal: 2.25,
	}}
	s := New(DefaultConfig(), &fakePlanner{}, digests, nil, nil, testLogger())

	s.RunLowStockDigest()
	assert.Equal(t, 1, digests.calls)
}

func TestScheduleExpressionsParse(t *testing.T) {
	s := New(DefaultConfig(), &fakePlanner{}, &fakeDigests{}, nil, nil, testLogger())

	assert.NoError(t, s.Start())
	s.Stop()
}
