package scheduler

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/granjatech/granja-api/internal/application/service"
	"github.com/granjatech/granja-api/pkg/events"
)

// Scheduler runs the periodic low-stock scan. Stock changes are pushed over
// the event bus as they happen; the scan is a safety net that also catches
// minimums raised after the last mutation.
type Scheduler struct {
	cron         *cron.Cron
	stockService *service.StockService
	bus          *events.Bus
	schedule     string
	logger       *zap.Logger
}

// NewScheduler creates a new scheduler instance.
func NewScheduler(stockService *service.StockService, bus *events.Bus, schedule string, logger *zap.Logger) *Scheduler {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Scheduler{
		cron:         cron.New(),
		stockService: stockService,
		bus:          bus,
		schedule:     schedule,
		logger:       logger,
	}
}

// Start starts the scheduler.
func (s *Scheduler) Start() {
	s.logger.Info("starting scheduler", zap.String("low_stock_schedule", s.schedule))

	_, err := s.cron.AddFunc(s.schedule, s.scanLowStock)
	if err != nil {
		s.logger.Error("failed to schedule low stock scan", zap.Error(err))
	}

	s.cron.Start()
}

// Stop stops the scheduler.
func (s *Scheduler) Stop() {
	s.logger.Info("stopping scheduler")
	s.cron.Stop()
}

func (s *Scheduler) scanLowStock() {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	items, err := s.stockService.ListLowStock(ctx)
	if err != nil {
		s.logger.Error("low stock scan failed", zap.Error(err))
		return
	}

	if len(items) == 0 {
		s.logger.Info("low stock scan clean")
		return
	}

	for _, item := range items {
		s.logger.Warn("ingredient below minimum stock",
			zap.String("ingredient", item.IngredientName),
			zap.Float64("balance_kg", item.CurrentBalanceKg),
			zap.Float64("minimum_kg", item.MinimumStockKg),
		)
	}

	s.bus.Publish(events.TypeLowStock, items)
}
