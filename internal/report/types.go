package report

// --- Report Domain Model ---

// Row is a single production line/shift record as entered by the user.
type Row struct {
	Line       string
	Shift      string
	Units      int
	Target     int
	ScrapPct   float64
	DowntimeHr float64
}

// ComputedRow is a Row with derived KPI columns.
type ComputedRow struct {
	Row
	Variance   int     // units - target
	Attainment float64 // units / target, 0 when target is 0
}

// Summary holds the headline KPIs across all rows.
type Summary struct {
	TotalUnits    int
	TotalTarget   int
	TotalVariance int
	AvgAttainment float64 // total units / total target
	AvgScrapPct   float64 // mean of per-row scrap percentages
	TotalDowntime float64 // summed downtime hours
}

// SeedRows returns the sample records users start from.
func SeedRows() []Row {
	return []Row{
		{Line: "Line A", Shift: "Morning", Units: 1200, Target: 1100, ScrapPct: 1.4, DowntimeHr: 0.5},
		{Line: "Line B", Shift: "Evening", Units: 900, Target: 950, ScrapPct: 2.1, DowntimeHr: 1.2},
		{Line: "Line C", Shift: "Night", Units: 750, Target: 800, ScrapPct: 1.1, DowntimeHr: 0.8},
	}
}

// --- UseCase Inputs ---

type GenerateInput struct {
	Rows []Row
}

// --- UseCase Outputs ---

type GenerateOutput struct {
	Rows    []ComputedRow
	Summary Summary
}

type SeedOutput struct {
	Rows []Row
}
