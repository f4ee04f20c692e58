package ingest

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/joseph-ayodele/course-stats/internal/common"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
}

func TestScanDirectory(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "a.xlsx"), "one")
	writeFile(t, filepath.Join(root, "b.PDF"), "two")
	writeFile(t, filepath.Join(root, "copy", "a-copy.xlsx"), "one")
	writeFile(t, filepath.Join(root, "legacy.xls"), "old")
	writeFile(t, filepath.Join(root, "notes.txt"), "skip")
	writeFile(t, filepath.Join(root, "~$a.xlsx"), "lock")
	writeFile(t, filepath.Join(root, ".hidden", "c.xlsx"), "three")

	files, stats, err := ScanDirectory(context.Background(), root, ScanOptions{SkipHidden: true, Dedupe: true})
	if err != nil {
		t.Fatalf("ScanDirectory() error = %v", err)
	}

	wantStats := DirStats{Scanned: 9, Matched: 3, Unsupported: 1, Deduplicated: 1}
	if diff := cmp.Diff(wantStats, stats); diff != "" {
		t.Errorf("stats mismatch (-want +got):\n%s", diff)
	}

	want := []string{filepath.Join(root, "a.xlsx"), filepath.Join(root, "b.PDF")}
	if diff := cmp.Diff(want, Readable(files)); diff != "" {
		t.Errorf("readable mismatch (-want +got):\n%s", diff)
	}

	for _, f := range files {
		if filepath.Base(f.Path) == "a-copy.xlsx" && f.Duplicate != filepath.Join(root, "a.xlsx") {
			t.Errorf("a-copy.xlsx duplicate = %q", f.Duplicate)
		}
	}
}

func TestScanDirectoryKeepsDuplicatesWhenAsked(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "a.xlsx"), "same")
	writeFile(t, filepath.Join(root, "b.xlsx"), "same")

	files, stats, err := ScanDirectory(context.Background(), root, ScanOptions{})
	if err != nil {
		t.Fatal(err)
	}
	if stats.Deduplicated != 0 || len(Readable(files)) != 2 {
		t.Errorf("got %d readable, %d deduplicated", len(Readable(files)), stats.Deduplicated)
	}
}

func TestScanDirectoryRequiresRoot(t *testing.T) {
	_, _, err := ScanDirectory(context.Background(), " ", ScanOptions{})
	if !errors.Is(err, common.ErrInvalidInput) {
		t.Errorf("error = %v, want ErrInvalidInput", err)
	}
}

func TestHashFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "x.pdf")
	writeFile(t, path, "abc")
	sum, size, err := HashFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if size != 3 || sum != "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad" {
		t.Errorf("HashFile() = %s, %d", sum, size)
	}
}
