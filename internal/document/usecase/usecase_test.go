package usecase_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"scheduling-optimizer/internal/document"
	"scheduling-optimizer/internal/document/repository"
	"scheduling-optimizer/internal/document/usecase"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...any)                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (m *mockLogger) Panic(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...any)  {}

type mockRepo struct {
	files []document.PDF
	calls []string
}

func (m *mockRepo) ListPDFs(ctx context.Context, opt repository.ListPDFsOptions) ([]document.PDF, error) {
	m.calls = append(m.calls, opt.BaseDir)
	return m.files, nil
}

func (m *mockRepo) Close() error { return nil }

func TestList(t *testing.T) {
	ctx := context.Background()

	t.Run("lists PDFs under an existing directory", func(t *testing.T) {
		base := t.TempDir()
		repo := &mockRepo{files: []document.PDF{
			{RelPath: "a.pdf", SizeBytes: 1536, Modified: time.Now()},
		}}
		uc := usecase.New(repo, &mockLogger{}, base)

		out, err := uc.List(ctx, document.ListInput{Dir: base})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.BaseDir != base {
			t.Errorf("expected base %q, got %q", base, out.BaseDir)
		}
		if len(out.Files) != 1 || out.Files[0].RelPath != "a.pdf" {
			t.Errorf("unexpected files: %+v", out.Files)
		}
		if len(repo.calls) != 1 || repo.calls[0] != base {
			t.Errorf("repo called with %v", repo.calls)
		}
	})

	t.Run("empty dir falls back to the default", func(t *testing.T) {
		base := t.TempDir()
		repo := &mockRepo{}
		uc := usecase.New(repo, &mockLogger{}, base)

		out, err := uc.List(ctx, document.ListInput{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.BaseDir != base {
			t.Errorf("expected default base %q, got %q", base, out.BaseDir)
		}
	})

	t.Run("missing directory", func(t *testing.T) {
		uc := usecase.New(&mockRepo{}, &mockLogger{}, ".")

		_, err := uc.List(ctx, document.ListInput{Dir: filepath.Join(t.TempDir(), "nope")})
		if err != document.ErrDirNotFound {
			t.Errorf("expected ErrDirNotFound, got %v", err)
		}
	})

	t.Run("file instead of directory", func(t *testing.T) {
		base := t.TempDir()
		file := filepath.Join(base, "a.pdf")
		if err := os.WriteFile(file, []byte("pdf"), 0o644); err != nil {
			t.Fatalf("write: %v", err)
		}
		uc := usecase.New(&mockRepo{}, &mockLogger{}, ".")

		_, err := uc.List(ctx, document.ListInput{Dir: file})
		if err != document.ErrNotADirectory {
			t.Errorf("expected ErrNotADirectory, got %v", err)
		}
	})
}

func TestOpen(t *testing.T) {
	ctx := context.Background()

	t.Run("resolves a PDF inside the base directory", func(t *testing.T) {
		base := t.TempDir()
		if err := os.MkdirAll(filepath.Join(base, "nested"), 0o755); err != nil {
			t.Fatalf("mkdir: %v", err)
		}
		file := filepath.Join(base, "nested", "a.pdf")
		if err := os.WriteFile(file, []byte("pdf-a"), 0o644); err != nil {
			t.Fatalf("write: %v", err)
		}
		uc := usecase.New(&mockRepo{}, &mockLogger{}, base)

		out, err := uc.Open(ctx, document.OpenInput{Dir: base, Path: "nested/a.pdf"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.AbsPath != file {
			t.Errorf("expected %q, got %q", file, out.AbsPath)
		}
		if out.Name != "a.pdf" || out.SizeBytes != 5 {
			t.Errorf("unexpected output: %+v", out)
		}
	})

	t.Run("path escaping the base directory is refused", func(t *testing.T) {
		base := t.TempDir()
		uc := usecase.New(&mockRepo{}, &mockLogger{}, base)

		_, err := uc.Open(ctx, document.OpenInput{Dir: base, Path: "../secrets.pdf"})
		if err != document.ErrPathEscapes {
			t.Errorf("expected ErrPathEscapes, got %v", err)
		}
	})

	t.Run("non-pdf file is refused", func(t *testing.T) {
		base := t.TempDir()
		if err := os.WriteFile(filepath.Join(base, "notes.txt"), []byte("x"), 0o644); err != nil {
			t.Fatalf("write: %v", err)
		}
		uc := usecase.New(&mockRepo{}, &mockLogger{}, base)

		_, err := uc.Open(ctx, document.OpenInput{Dir: base, Path: "notes.txt"})
		if err != document.ErrFileNotFound {
			t.Errorf("expected ErrFileNotFound, got %v", err)
		}
	})

	t.Run("missing file", func(t *testing.T) {
		base := t.TempDir()
		uc := usecase.New(&mockRepo{}, &mockLogger{}, base)

		_, err := uc.Open(ctx, document.OpenInput{Dir: base, Path: "ghost.pdf"})
		if err != document.ErrFileNotFound {
			t.Errorf("expected ErrFileNotFound, got %v", err)
		}
	})
}
