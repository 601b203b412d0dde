package usecase_test

import (
	"context"
	"errors"

	"scheduling-optimizer/config"
	"scheduling-optimizer/internal/planner"
	"scheduling-optimizer/internal/planner/usecase"
	"scheduling-optimizer/pkg/gcalendar"
)

// mock dependencies

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...any)                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (m *mockLogger) Panic(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...any)  {}

type mockCalendarClient struct {
	fail     bool
	requests []gcalendar.CreateEventRequest
}

func (m *mockCalendarClient) CreateEvent(ctx context.Context, req gcalendar.CreateEventRequest) (*gcalendar.Event, error) {
	if m.fail {
		return nil, errors.New("cal error")
	}
	m.requests = append(m.requests, req)
	return &gcalendar.Event{
		Summary:     req.Summary,
		Description: req.Description,
		HtmlLink:    "http://cal.link/" + req.Summary,
		StartTime:   req.StartTime,
	}, nil
}

func testConfig() config.PlannerConfig {
	return config.PlannerConfig{
		DefaultCapacity: 6,
		MaxCapacity:     12,
		SeedTasks:       config.SeedTasks,
		Timezone:        "UTC",
		PlanCacheSize:   16,
	}
}

func newTestUseCase(cal usecase.CalendarClient) planner.UseCase {
	return usecase.New(&mockLogger{}, testConfig(), cal, "primary")
}
