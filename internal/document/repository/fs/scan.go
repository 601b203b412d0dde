package fs

import (
	"context"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"scheduling-optimizer/internal/document"
	"scheduling-optimizer/internal/document/repository"
)

// ListPDFs returns every PDF under opt.BaseDir, recursive and
// case-insensitive on the extension, regular files only, sorted by
// relative path. Results come from the scan cache when fresh.
func (r *fsRepository) ListPDFs(ctx context.Context, opt repository.ListPDFsOptions) ([]document.PDF, error) {
	if cached, ok := r.cache.Get(opt.BaseDir); ok {
		return cached, nil
	}

	var pdfs []document.PDF
	err := filepath.WalkDir(opt.BaseDir, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			// Unreadable subtrees are skipped, not fatal: the scan
			// lists whatever is reachable.
			r.l.Warnf(ctx, "document.fs: skipping %s: %v", path, walkErr)
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		if d.IsDir() {
			r.watchDir(path, opt.BaseDir)
			return nil
		}
		if !d.Type().IsRegular() {
			return nil
		}
		if !strings.EqualFold(filepath.Ext(path), ".pdf") {
			return nil
		}

		info, infoErr := d.Info()
		if infoErr != nil {
			r.l.Warnf(ctx, "document.fs: stat %s: %v", path, infoErr)
			return nil
		}

		rel, relErr := filepath.Rel(opt.BaseDir, path)
		if relErr != nil {
			return relErr
		}

		pdfs = append(pdfs, document.PDF{
			RelPath:   filepath.ToSlash(rel),
			AbsPath:   path,
			SizeBytes: info.Size(),
			Modified:  info.ModTime(),
		})
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(pdfs, func(i, j int) bool { return pdfs[i].RelPath < pdfs[j].RelPath })

	r.cache.Add(opt.BaseDir, pdfs)
	return pdfs, nil
}

// watchDir registers a directory with the watcher and remembers which
// base dir its events should invalidate.
func (r *fsRepository) watchDir(dir, baseDir string) {
	if r.watcher == nil {
		return
	}
	r.roots.Add(dir, baseDir)
	// Re-adding an already watched dir is a no-op error-wise on most
	// platforms; a failed watch only costs cache freshness.
	if err := r.watcher.Add(dir); err != nil {
		r.l.Debugf(context.Background(), "document.fs: watch %s: %v", dir, err)
	}
}

func parentDir(dir string) string {
	return filepath.Dir(dir)
}
