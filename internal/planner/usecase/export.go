package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"scheduling-optimizer/internal/planner"
	"scheduling-optimizer/pkg/gcalendar"
)

// Export creates one all-day calendar event per day bucket of a stored
// plan, starting at StartDate ("Day 1") and advancing one calendar day
// per bucket.
func (uc *implUseCase) Export(ctx context.Context, input planner.ExportInput) (planner.ExportOutput, error) {
	if uc.calendar == nil {
		return planner.ExportOutput{}, planner.ErrCalendarUnavailable
	}

	plan, ok := uc.plans.Get(input.PlanID)
	if !ok {
		return planner.ExportOutput{}, planner.ErrPlanNotFound
	}

	start := input.StartDate
	if start.IsZero() {
		start = time.Now().UTC().Truncate(24 * time.Hour)
	}

	events := make([]planner.ExportedEvent, 0, len(plan.Days))
	for i, day := range plan.Days {
		date := start.AddDate(0, 0, i)
		summary := fmt.Sprintf("%s (%gh)", day.Label, day.Hours())

		created, err := uc.calendar.CreateEvent(ctx, gcalendar.CreateEventRequest{
			CalendarID:  uc.calendarID,
			Summary:     summary,
			Description: describeDay(day),
			StartTime:   date,
			AllDay:      true,
			Timezone:    uc.cfg.Timezone,
		})
		if err != nil {
			uc.l.Errorf(ctx, "uc.Export CreateEvent %s: %v", day.Label, err)
			return planner.ExportOutput{}, fmt.Errorf("export %s: %w", day.Label, err)
		}

		events = append(events, planner.ExportedEvent{
			Label:    day.Label,
			Date:     date,
			Summary:  summary,
			HtmlLink: created.HtmlLink,
		})
	}

	return planner.ExportOutput{Events: events}, nil
}

// describeDay renders a day bucket as the event description, one task
// per line with hours and due date.
func describeDay(day planner.DayPlan) string {
	lines := make([]string, 0, len(day.Tasks))
	for _, task := range day.Tasks {
		due := "No due date"
		if task.DueDate != nil {
			due = task.DueDate.Format(planner.DueDateLayout)
		}
		lines = append(lines, fmt.Sprintf("- %s: %gh (Due: %s)", task.Name, task.Hours, due))
	}
	return strings.Join(lines, "\n")
}
