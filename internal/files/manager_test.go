package files

import (
	"os"
	"path/filepath"
	"testing"
)

func TestJournalPath(t *testing.T) {
	tmp := t.TempDir()

	mgr, err := NewManager(tmp)
	if err != nil {
		t.Fatalf("NewManager: %v", err)
	}

	want := filepath.Join(tmp, "journal_entries.txt")
	if got := mgr.JournalPath(); got != want {
		t.Fatalf("JournalPath() = %q, want %q", got, want)
	}
	if got := mgr.LogPath(); got != filepath.Join(tmp, "jurnal.log") {
		t.Fatalf("LogPath() = %q", got)
	}
}

func TestWriteLinesCreatesDirectoriesAndOverwrites(t *testing.T) {
	tmp := t.TempDir()
	mgr, err := NewManager(filepath.Join(tmp, "nested", "home"))
	if err != nil {
		t.Fatalf("NewManager: %v", err)
	}
	path := mgr.JournalPath()

	if err := mgr.WriteLines(path, []string{"first", "second"}); err != nil {
		t.Fatalf("WriteLines: %v", err)
	}
	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if string(got) != "first\nsecond\n" {
		t.Fatalf("contents = %q, want %q", got, "first\nsecond\n")
	}

	if err := mgr.WriteLines(path, []string{"third"}); err != nil {
		t.Fatalf("WriteLines second: %v", err)
	}
	got, err = os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile second: %v", err)
	}
	if string(got) != "third\n" {
		t.Fatalf("contents after rewrite = %q, want %q", got, "third\n")
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("Stat: %v", err)
	}
	if info.Mode().Perm() != filePermissions {
		t.Fatalf("mode = %v, want %v", info.Mode().Perm(), os.FileMode(filePermissions))
	}
}

func TestWriteLinesEmptyTruncates(t *testing.T) {
	mgr, err := NewManager(t.TempDir())
	if err != nil {
		t.Fatalf("NewManager: %v", err)
	}
	path := mgr.JournalPath()

	if err := mgr.WriteLines(path, []string{"stale"}); err != nil {
		t.Fatalf("WriteLines: %v", err)
	}
	if err := mgr.WriteLines(path, nil); err != nil {
		t.Fatalf("WriteLines empty: %v", err)
	}
	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("contents = %q, want empty", got)
	}

	leftovers, err := filepath.Glob(filepath.Join(filepath.Dir(path), "jurnal-*"))
	if err != nil {
		t.Fatalf("Glob: %v", err)
	}
	if len(leftovers) != 0 {
		t.Fatalf("temp files left behind: %v", leftovers)
	}
}

func TestOpenLogAppends(t *testing.T) {
	mgr, err := NewManager(t.TempDir())
	if err != nil {
		t.Fatalf("NewManager: %v", err)
	}

	for _, line := range []string{"a\n", "b\n"} {
		f, err := mgr.OpenLog(mgr.LogPath())
		if err != nil {
			t.Fatalf("OpenLog: %v", err)
		}
		if _, err := f.WriteString(line); err != nil {
			t.Fatalf("WriteString: %v", err)
		}
		f.Close()
	}

	got, err := os.ReadFile(mgr.LogPath())
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if string(got) != "a\nb\n" {
		t.Fatalf("log contents = %q, want %q", got, "a\nb\n")
	}
}
