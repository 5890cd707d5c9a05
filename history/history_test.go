package history

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func openStore(t *testing.T, size int) (*Store, string) {
	t.Helper()
	file := filepath.Join(t.TempDir(), "history.db")
	s, err := Open(file, size)
	if err != nil {
		t.Fatalf("open: %s", err)
	}
	return s, file
}

func TestAppendLines(t *testing.T) {
	s, _ := openStore(t, 10)
	defer s.Close()

	for _, line := range []string{"var a = 1;", "", "print a;", "print a;", "a = 2;"} {
		if err := s.Append(line); err != nil {
			t.Fatalf("append %q: %s", line, err)
		}
	}
	got, err := s.Lines()
	if err != nil {
		t.Fatalf("lines: %s", err)
	}
	want := []string{"var a = 1;", "print a;", "a = 2;"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("lines mismatched (-want +got):\n%s", diff)
	}
}

func TestTrimOldest(t *testing.T) {
	s, _ := openStore(t, 2)
	defer s.Close()

	for _, line := range []string{"one", "two", "three"} {
		if err := s.Append(line); err != nil {
			t.Fatalf("append %q: %s", line, err)
		}
	}
	got, _ := s.Lines()
	want := []string{"two", "three"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("lines mismatched (-want +got):\n%s", diff)
	}
}

func TestReopen(t *testing.T) {
	s, file := openStore(t, 5)
	if err := s.Append("print 1;"); err != nil {
		t.Fatalf("append: %s", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("close: %s", err)
	}
	if err := s.Append("print 2;"); !errors.Is(err, ErrClosed) {
		t.Fatalf("append after close: got %v, want %v", err, ErrClosed)
	}

	s, err := Open(file, 5)
	if err != nil {
		t.Fatalf("reopen: %s", err)
	}
	defer s.Close()
	got, _ := s.Lines()
	if diff := cmp.Diff([]string{"print 1;"}, got); diff != "" {
		t.Fatalf("lines mismatched (-want +got):\n%s", diff)
	}
}

func TestInvalidSize(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "history.db"), 0)
	if !errors.Is(err, ErrSize) {
		t.Fatalf("got %v, want %v", err, ErrSize)
	}
}
