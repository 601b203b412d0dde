package http

import (
	"scheduling-optimizer/internal/document"
	"scheduling-optimizer/pkg/response"
)

// --- Request DTOs ---

type listReq struct {
	Dir string `form:"dir"`
}

func (r listReq) validate() error { return nil }

func (r listReq) toInput() document.ListInput {
	return document.ListInput{Dir: r.Dir}
}

// ---

type downloadReq struct {
	Dir  string `form:"dir"`
	Path string `form:"path" binding:"required"`
}

func (r downloadReq) validate() error { return nil }

func (r downloadReq) toInput() document.OpenInput {
	return document.OpenInput{
		Dir:  r.Dir,
		Path: r.Path,
	}
}

// --- Response DTOs ---

type pdfResp struct {
	RelPath   string `json:"rel_path"`
	SizeBytes int64  `json:"size_bytes"`
	SizeHuman string `json:"size_human"`
	Modified  string `json:"modified"`
}

type listResp struct {
	BaseDir string    `json:"base_dir"`
	Count   int       `json:"count"`
	Files   []pdfResp `json:"files"`
}

func (h *handler) newListResp(out document.ListOutput) listResp {
	files := make([]pdfResp, len(out.Files))
	for i, pdf := range out.Files {
		files[i] = pdfResp{
			RelPath:   pdf.RelPath,
			SizeBytes: pdf.SizeBytes,
			SizeHuman: document.FormatSize(pdf.SizeBytes),
			Modified:  pdf.Modified.Format(response.DateTimeFormat),
		}
	}
	return listResp{
		BaseDir: out.BaseDir,
		Count:   len(files),
		Files:   files,
	}
}
