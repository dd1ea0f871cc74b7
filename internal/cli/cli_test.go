package cli

import (
	"archive/zip"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// writeTestWorkbook writes a minimal zip with one protected worksheet.
func writeTestWorkbook(t *testing.T, path string) {
	t.Helper()

	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create %s: %v", path, err)
	}
	zw := zip.NewWriter(f)
	entries := map[string]string{
		"[Content_Types].xml":      `<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types"/>`,
		"xl/worksheets/sheet1.xml": `<worksheet><sheetData/><sheetProtection password="CC1A" sheet="1"/></worksheet>`,
	}
	for _, name := range []string{"[Content_Types].xml", "xl/worksheets/sheet1.xml"} {
		w, err := zw.Create(name)
		if err != nil {
			t.Fatalf("create entry %s: %v", name, err)
		}
		if _, err := w.Write([]byte(entries[name])); err != nil {
			t.Fatalf("write entry %s: %v", name, err)
		}
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("close zip: %v", err)
	}
	if err := f.Close(); err != nil {
		t.Fatalf("close file: %v", err)
	}
}

func resetUnlockFlags() {
	unlockInput = ""
	unlockOutput = ""
	unlockQuiet = true
	unlockYes = true
}

func TestReporter(t *testing.T) {
	t.Run("NewReporter", func(t *testing.T) {
		r := NewReporter(false)
		if r == nil {
			t.Fatal("NewReporter returned nil")
		}
		if r.quiet {
			t.Error("quiet should be false")
		}

		r = NewReporter(true)
		if !r.quiet {
			t.Error("quiet should be true")
		}
	})

	t.Run("QuietSuppressesStatus", func(t *testing.T) {
		// Just ensure the quiet paths don't panic; output goes to stderr.
		r := NewReporter(true)
		r.Status("ignored")
		r.PrintSuccess("ignored %s", "too")
		r.PrintWarn("ignored as well")
	})
}

func TestUnlockValidation(t *testing.T) {
	t.Run("missing input", func(t *testing.T) {
		resetUnlockFlags()

		err := runUnlock(unlockCmd, nil)
		if err == nil {
			t.Error("expected error for missing input")
		}
		if !strings.Contains(err.Error(), "input") {
			t.Errorf("error should mention input: %v", err)
		}
	})

	t.Run("nonexistent input file", func(t *testing.T) {
		resetUnlockFlags()
		unlockInput = "/nonexistent/file/path.xlsx"

		err := runUnlock(unlockCmd, nil)
		if err == nil {
			t.Error("expected error for nonexistent file")
		}
		if !strings.Contains(err.Error(), "not found") {
			t.Errorf("error should mention not found: %v", err)
		}
	})

	t.Run("input is a directory", func(t *testing.T) {
		resetUnlockFlags()
		unlockInput = t.TempDir()

		if err := runUnlock(unlockCmd, nil); err == nil {
			t.Error("expected error for directory input")
		}
	})

	t.Run("output equals input", func(t *testing.T) {
		resetUnlockFlags()
		dir := t.TempDir()
		input := filepath.Join(dir, "book.xlsx")
		writeTestWorkbook(t, input)
		unlockInput = input
		unlockOutput = input

		err := runUnlock(unlockCmd, nil)
		if err == nil {
			t.Error("expected error when output equals input")
		}
	})

	t.Run("invalid archive", func(t *testing.T) {
		resetUnlockFlags()
		dir := t.TempDir()
		input := filepath.Join(dir, "bad.xlsx")
		if err := os.WriteFile(input, []byte("not a zip"), 0644); err != nil {
			t.Fatalf("write input: %v", err)
		}
		unlockInput = input

		if err := runUnlock(unlockCmd, nil); err == nil {
			t.Error("expected error for invalid archive")
		}
	})
}

func TestUnlockWritesOutput(t *testing.T) {
	resetUnlockFlags()

	dir := t.TempDir()
	input := filepath.Join(dir, "book.xlsx")
	output := filepath.Join(dir, "clean.xlsx")
	writeTestWorkbook(t, input)
	unlockInput = input
	unlockOutput = output

	if err := runUnlock(unlockCmd, nil); err != nil {
		t.Fatalf("runUnlock() failed: %v", err)
	}

	zr, err := zip.OpenReader(output)
	if err != nil {
		t.Fatalf("output is not a valid zip: %v", err)
	}
	defer zr.Close()
	if len(zr.File) != 2 {
		t.Errorf("output has %d entries; want 2", len(zr.File))
	}
}

func TestUnlockDefaultOutputName(t *testing.T) {
	resetUnlockFlags()

	dir := t.TempDir()
	input := filepath.Join(dir, "book.xlsx")
	writeTestWorkbook(t, input)
	unlockInput = input

	if err := runUnlock(unlockCmd, nil); err != nil {
		t.Fatalf("runUnlock() failed: %v", err)
	}

	want := filepath.Join(dir, "book_unprotected.xlsx")
	if _, err := os.Stat(want); err != nil {
		t.Errorf("default output %s should exist: %v", want, err)
	}
}

func TestDefaultOutputName(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"book.xlsx", "book_unprotected.xlsx"},
		{"dir/report.xlsx", "dir/report_unprotected.xlsx"},
		{"noext", "noext_unprotected.xlsx"},
		{"two.dots.xlsx", "two.dots_unprotected.xlsx"},
	}
	for _, tt := range tests {
		if got := DefaultOutputName(tt.input); got != tt.want {
			t.Errorf("DefaultOutputName(%q) = %q; want %q", tt.input, got, tt.want)
		}
	}
}

func TestInspectValidation(t *testing.T) {
	err := runInspect(inspectCmd, []string{"/nonexistent/file.xlsx"})
	if err == nil {
		t.Error("expected error for nonexistent file")
	}
	if !strings.Contains(err.Error(), "not found") {
		t.Errorf("error should mention not found: %v", err)
	}
}
