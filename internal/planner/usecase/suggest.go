package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"scheduling-optimizer/internal/planner"
)

// Suggest parses raw task text, sorts the backlog by due date (unset
// dates last), and distributes it across days. Per-line parse errors
// are returned alongside the plan, never as a failure.
func (uc *implUseCase) Suggest(ctx context.Context, input planner.SuggestInput) (planner.SuggestOutput, error) {
	text := input.Text
	if strings.TrimSpace(text) == "" {
		text = uc.cfg.SeedTasks
	}

	capacity := input.HoursPerDay
	if capacity == 0 {
		capacity = uc.cfg.DefaultCapacity
	}
	if capacity <= 0 {
		return planner.SuggestOutput{}, planner.ErrInvalidCapacity
	}
	if uc.cfg.MaxCapacity > 0 && capacity > uc.cfg.MaxCapacity {
		return planner.SuggestOutput{}, planner.ErrCapacityTooLarge
	}

	parsed := planner.ParseTasks(text)
	if len(parsed.Errors) > 0 {
		uc.l.Warnf(ctx, "uc.Suggest: %d of %d lines rejected", len(parsed.Errors), len(parsed.Tasks)+len(parsed.Errors))
	}

	backlog := make([]planner.Task, len(parsed.Tasks))
	copy(backlog, parsed.Tasks)
	planner.SortByDueDate(backlog)

	days := planner.Distribute(backlog, capacity)

	var total float64
	for _, task := range backlog {
		total += task.Hours
	}

	plan := planner.Plan{
		ID:          uuid.NewString(),
		HoursPerDay: capacity,
		TotalHours:  total,
		Days:        days,
		CreatedAt:   time.Now().UTC(),
	}
	uc.plans.Add(plan.ID, plan)

	return planner.SuggestOutput{
		Plan:    plan,
		Errors:  parsed.Errors,
		Backlog: backlog,
	}, nil
}

// Detail returns a previously suggested plan from the plan cache.
func (uc *implUseCase) Detail(ctx context.Context, id string) (planner.DetailOutput, error) {
	plan, ok := uc.plans.Get(id)
	if !ok {
		return planner.DetailOutput{}, planner.ErrPlanNotFound
	}
	return planner.DetailOutput{Plan: plan}, nil
}
