package usecase

import (
	"context"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"scheduling-optimizer/config"
	"scheduling-optimizer/internal/planner"
	"scheduling-optimizer/pkg/gcalendar"
	"scheduling-optimizer/pkg/log"
)

// CalendarClient is the slice of pkg/gcalendar used by plan export.
// Kept narrow so tests can substitute a fake.
type CalendarClient interface {
	CreateEvent(ctx context.Context, req gcalendar.CreateEventRequest) (*gcalendar.Event, error)
}

// implUseCase is the private implementation of planner.UseCase.
type implUseCase struct {
	l          log.Logger
	cfg        config.PlannerConfig
	calendar   CalendarClient // nil when calendar export is not configured
	calendarID string
	plans      *expirable.LRU[string, planner.Plan]
}

// New creates a new planner UseCase implementation. calendar may be nil;
// Export then returns planner.ErrCalendarUnavailable.
func New(l log.Logger, cfg config.PlannerConfig, calendar CalendarClient, calendarID string) *implUseCase {
	size := cfg.PlanCacheSize
	if size <= 0 {
		size = 256
	}

	return &implUseCase{
		l:          l,
		cfg:        cfg,
		calendar:   calendar,
		calendarID: calendarID,
		plans:      expirable.NewLRU[string, planner.Plan](size, nil, cfg.PlanCacheTTL),
	}
}
