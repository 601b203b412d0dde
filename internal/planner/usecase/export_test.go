package usecase_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"scheduling-optimizer/internal/planner"
)

func TestExport(t *testing.T) {
	ctx := context.Background()
	start := time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC)

	t.Run("one all-day event per bucket", func(t *testing.T) {
		cal := &mockCalendarClient{}
		uc := newTestUseCase(cal)

		suggested, err := uc.Suggest(ctx, planner.SuggestInput{
			Text:        "A | 4\nB | 4\nC | 2",
			HoursPerDay: 6,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		out, err := uc.Export(ctx, planner.ExportInput{PlanID: suggested.Plan.ID, StartDate: start})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if len(out.Events) != len(suggested.Plan.Days) {
			t.Fatalf("expected %d events, got %d", len(suggested.Plan.Days), len(out.Events))
		}
		for i, event := range out.Events {
			wantDate := start.AddDate(0, 0, i)
			if !event.Date.Equal(wantDate) {
				t.Errorf("event %d: expected date %v, got %v", i, wantDate, event.Date)
			}
			if event.HtmlLink == "" {
				t.Errorf("event %d: expected a link", i)
			}
		}
		for _, req := range cal.requests {
			if !req.AllDay {
				t.Errorf("expected all-day events, got %+v", req)
			}
			if req.CalendarID != "primary" {
				t.Errorf("expected calendar 'primary', got %q", req.CalendarID)
			}
		}
		if !strings.Contains(cal.requests[0].Description, "A: 4h") {
			t.Errorf("description should list tasks, got %q", cal.requests[0].Description)
		}
	})

	t.Run("no calendar configured", func(t *testing.T) {
		uc := newTestUseCase(nil)

		_, err := uc.Export(ctx, planner.ExportInput{PlanID: "any", StartDate: start})
		if err != planner.ErrCalendarUnavailable {
			t.Errorf("expected ErrCalendarUnavailable, got %v", err)
		}
	})

	t.Run("unknown plan", func(t *testing.T) {
		uc := newTestUseCase(&mockCalendarClient{})

		_, err := uc.Export(ctx, planner.ExportInput{PlanID: "missing", StartDate: start})
		if err != planner.ErrPlanNotFound {
			t.Errorf("expected ErrPlanNotFound, got %v", err)
		}
	})

	t.Run("calendar failure propagates", func(t *testing.T) {
		cal := &mockCalendarClient{fail: true}
		uc := newTestUseCase(cal)

		suggested, err := uc.Suggest(ctx, planner.SuggestInput{Text: "A | 2", HoursPerDay: 6})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		_, err = uc.Export(ctx, planner.ExportInput{PlanID: suggested.Plan.ID, StartDate: start})
		if err == nil {
			t.Errorf("expected an error from the calendar client")
		}
	})
}
