package workers

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-fuel-dashboard/internal/config"
	"github.com/MKhiriev/go-fuel-dashboard/internal/logger"
	"github.com/MKhiriev/go-fuel-dashboard/internal/service"
)

type Workers struct {
	workers []Worker
}

// NewWorkers builds the background workers. The market price collector runs
// only when a feed is configured, on cfg.MarketPriceSchedule or
// DefaultMarketPriceSchedule.
func NewWorkers(services *service.Services, cfg config.Workers, logger *logger.Logger) (*Workers, error) {
	w := &Workers{}

	if services.MarketPriceService != nil {
		marketPrices, err := NewMarketPriceWorker(services.MarketPriceService, cfg.MarketPriceSchedule, logger)
		if err != nil {
			return nil, fmt.Errorf("error creating market price worker: %w", err)
		}
		w.workers = append(w.workers, marketPrices)
	}

	return w, nil
}

func (w *Workers) Run(ctx context.Context) {
	for _, worker := range w.workers {
		worker.Run(ctx)
	}
}
