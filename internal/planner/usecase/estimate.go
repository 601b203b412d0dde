package usecase

import (
	"context"
	"math"

	"scheduling-optimizer/internal/planner"
)

// Estimate computes the what-if delivery timeline: total effort and the
// number of days needed at the given capacity, rounded up.
func (uc *implUseCase) Estimate(ctx context.Context, input planner.EstimateInput) (planner.EstimateOutput, error) {
	if input.Tasks <= 0 || input.AvgHours <= 0 || input.Capacity <= 0 {
		return planner.EstimateOutput{}, planner.ErrInvalidEstimate
	}

	total := float64(input.Tasks) * input.AvgHours
	// The 0.499 offset pushes any fractional day to the next integer;
	// it keeps the ratio off an exact .5, so the tie-breaking mode of
	// Round never comes into play.
	days := int(math.Round(total/input.Capacity + 0.499))

	return planner.EstimateOutput{
		TotalHours:    total,
		EstimatedDays: days,
	}, nil
}
