// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-fuel-dashboard/internal/logger"
	"github.com/MKhiriev/go-fuel-dashboard/internal/service"
	"github.com/robfig/cron/v3"
)

// DefaultMarketPriceSchedule collects market prices every six hours.
const DefaultMarketPriceSchedule = "0 */6 * * *"

// MarketPriceWorker periodically stores the market price feed quotes.
// It collects once on start and then on every cron tick. A run that is still
// in progress makes the next tick skip.
type MarketPriceWorker struct {
	service  service.MarketPriceService
	schedule string
	timeout  time.Duration

	logger *logger.Logger
}

func NewMarketPriceWorker(svc service.MarketPriceService, schedule string, logger *logger.Logger) (*MarketPriceWorker, error) {
	if schedule == "" {
		schedule = DefaultMarketPriceSchedule
	}
	if _, err := cron.ParseStandard(schedule); err != nil {
		return nil, fmt.Errorf("invalid market price schedule %q: %w", schedule, err)
	}

	return &MarketPriceWorker{
		service:  svc,
		schedule: schedule,
		timeout:  time.Minute,
		logger:   logger,
	}, nil
}

func (w *MarketPriceWorker) Run(ctx context.Context) {
	c := cron.New(
		cron.WithLocation(time.UTC),
		cron.WithLogger(cronLogger{w.logger}),
	)

	job := w.job(ctx)
	if _, err := c.AddJob(w.schedule, job); err != nil {
		// the schedule is checked in NewMarketPriceWorker
		w.logger.Err(err).Str("schedule", w.schedule).Msg("market price worker not started")
		return
	}

	c.Start()
	w.logger.Info().Str("schedule", w.schedule).Msg("market price worker started")

	go job.Run()

	go func() {
		<-ctx.Done()
		<-c.Stop().Done()
		w.logger.Info().Msg("market price worker stopped")
	}()
}

// job wraps collect so that a panic is recovered and a run is skipped while
// the previous one is still going. The start-up run and the scheduled runs
// share one wrapper.
func (w *MarketPriceWorker) job(ctx context.Context) cron.Job {
	cronLog := cronLogger{w.logger}
	return cron.NewChain(cron.Recover(cronLog), cron.SkipIfStillRunning(cronLog)).
		Then(cron.FuncJob(func() { w.collect(ctx) }))
}

func (w *MarketPriceWorker) collect(ctx context.Context) {
	if ctx.Err() != nil {
		return
	}

	ctx, cancel := context.WithTimeout(ctx, w.timeout)
	defer cancel()

	saved, err := w.service.CollectMarketPrices(ctx)
	if err != nil {
		w.logger.Err(err).Msg("market price collection failed")
		return
	}

	w.logger.Debug().Int64("saved", saved).Msg("market price collection finished")
}

// cronLogger routes cron's own messages into zerolog.
type cronLogger struct {
	logger *logger.Logger
}

func (l cronLogger) Info(msg string, keysAndValues ...any) {
	l.logger.Debug().Fields(keysAndValues).Msg(msg)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...any) {
	l.logger.Err(err).Fields(keysAndValues).Msg(msg)
}
