package usecase

import (
	"context"
	"math"

	"scheduling-optimizer/internal/report"
)

// Generate computes per-row variance/attainment and the headline
// summary. The report is stateless: it is derived entirely from the
// rows supplied by the caller.
func (uc *implUseCase) Generate(ctx context.Context, input report.GenerateInput) (report.GenerateOutput, error) {
	if len(input.Rows) == 0 {
		return report.GenerateOutput{}, report.ErrNoRows
	}

	out := report.GenerateOutput{
		Rows: make([]report.ComputedRow, len(input.Rows)),
	}

	var scrapSum float64
	for i, row := range input.Rows {
		out.Rows[i] = report.ComputedRow{
			Row:        row,
			Variance:   row.Units - row.Target,
			Attainment: safeRatio(float64(row.Units), float64(row.Target)),
		}

		out.Summary.TotalUnits += row.Units
		out.Summary.TotalTarget += row.Target
		out.Summary.TotalDowntime += row.DowntimeHr
		scrapSum += row.ScrapPct
	}

	out.Summary.TotalVariance = out.Summary.TotalUnits - out.Summary.TotalTarget
	out.Summary.AvgAttainment = safeRatio(float64(out.Summary.TotalUnits), float64(out.Summary.TotalTarget))
	out.Summary.AvgScrapPct = scrapSum / float64(len(input.Rows))

	return out, nil
}

// Seed returns the sample rows.
func (uc *implUseCase) Seed(ctx context.Context) (report.SeedOutput, error) {
	return report.SeedOutput{Rows: report.SeedRows()}, nil
}

// safeRatio avoids division by zero when computing derived KPIs.
func safeRatio(numerator, denominator float64) float64 {
	if math.Abs(denominator) < 1e-9 {
		return 0
	}
	return numerator / denominator
}
