package document

import (
	"fmt"
	"time"
)

// --- Document Domain Model ---

// PDF describes one discovered PDF file.
type PDF struct {
	RelPath   string // path relative to the scanned base directory
	AbsPath   string
	SizeBytes int64
	Modified  time.Time
}

// FormatSize pretty-prints a file size using binary units.
func FormatSize(numBytes int64) string {
	const step = 1024.0
	units := []string{"B", "KiB", "MiB", "GiB", "TiB"}

	size := float64(numBytes)
	for _, unit := range units {
		if size < step {
			if unit == "B" {
				return fmt.Sprintf("%d %s", int64(size), unit)
			}
			return fmt.Sprintf("%.1f %s", size, unit)
		}
		size /= step
	}
	return fmt.Sprintf("%.1f PiB", size)
}

// --- UseCase Inputs ---

type ListInput struct {
	Dir string // empty falls back to the configured base directory
}

type OpenInput struct {
	Dir  string
	Path string // relative path of the PDF within the base directory
}

// --- UseCase Outputs ---

type ListOutput struct {
	BaseDir string
	Files   []PDF
}

type OpenOutput struct {
	AbsPath   string
	Name      string
	SizeBytes int64
}
