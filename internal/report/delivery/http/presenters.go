package http

import (
	"scheduling-optimizer/internal/report"
)

// --- Request DTOs ---

type rowReq struct {
	Line       string  `json:"line"       binding:"required,min=1,max=255"`
	Shift      string  `json:"shift"      binding:"max=255"`
	Units      int     `json:"units"      binding:"gte=0"`
	Target     int     `json:"target"     binding:"gte=0"`
	ScrapPct   float64 `json:"scrap_pct"  binding:"gte=0"`
	DowntimeHr float64 `json:"downtime_hr" binding:"gte=0"`
}

type generateReq struct {
	Rows []rowReq `json:"rows" binding:"required,min=1,dive"`
}

func (r generateReq) validate() error { return nil }

func (r generateReq) toInput() report.GenerateInput {
	rows := make([]report.Row, len(r.Rows))
	for i, row := range r.Rows {
		rows[i] = report.Row{
			Line:       row.Line,
			Shift:      row.Shift,
			Units:      row.Units,
			Target:     row.Target,
			ScrapPct:   row.ScrapPct,
			DowntimeHr: row.DowntimeHr,
		}
	}
	return report.GenerateInput{Rows: rows}
}

// --- Response DTOs ---

type rowResp struct {
	Line       string  `json:"line"`
	Shift      string  `json:"shift"`
	Units      int     `json:"units"`
	Target     int     `json:"target"`
	ScrapPct   float64 `json:"scrap_pct"`
	DowntimeHr float64 `json:"downtime_hr"`
	Variance   int     `json:"variance"`
	Attainment float64 `json:"attainment"`
}

type summaryResp struct {
	TotalUnits    int     `json:"total_units"`
	TotalTarget   int     `json:"total_target"`
	TotalVariance int     `json:"total_variance"`
	AvgAttainment float64 `json:"avg_attainment"`
	AvgScrapPct   float64 `json:"avg_scrap_pct"`
	TotalDowntime float64 `json:"total_downtime"`
}

type generateResp struct {
	Rows    []rowResp   `json:"rows"`
	Summary summaryResp `json:"summary"`
}

func (h *handler) newGenerateResp(out report.GenerateOutput) generateResp {
	rows := make([]rowResp, len(out.Rows))
	for i, row := range out.Rows {
		rows[i] = rowResp{
			Line:       row.Line,
			Shift:      row.Shift,
			Units:      row.Units,
			Target:     row.Target,
			ScrapPct:   row.ScrapPct,
			DowntimeHr: row.DowntimeHr,
			Variance:   row.Variance,
			Attainment: row.Attainment,
		}
	}
	return generateResp{
		Rows: rows,
		Summary: summaryResp{
			TotalUnits:    out.Summary.TotalUnits,
			TotalTarget:   out.Summary.TotalTarget,
			TotalVariance: out.Summary.TotalVariance,
			AvgAttainment: out.Summary.AvgAttainment,
			AvgScrapPct:   out.Summary.AvgScrapPct,
			TotalDowntime: out.Summary.TotalDowntime,
		},
	}
}

type seedRowResp struct {
	Line       string  `json:"line"`
	Shift      string  `json:"shift"`
	Units      int     `json:"units"`
	Target     int     `json:"target"`
	ScrapPct   float64 `json:"scrap_pct"`
	DowntimeHr float64 `json:"downtime_hr"`
}

type seedResp struct {
	Rows []seedRowResp `json:"rows"`
}

func (h *handler) newSeedResp(out report.SeedOutput) seedResp {
	rows := make([]seedRowResp, len(out.Rows))
	for i, row := range out.Rows {
		rows[i] = seedRowResp{
			Line:       row.Line,
			Shift:      row.Shift,
			Units:      row.Units,
			Target:     row.Target,
			ScrapPct:   row.ScrapPct,
			DowntimeHr: row.DowntimeHr,
		}
	}
	return seedResp{Rows: rows}
}
