package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDecode(t *testing.T) {
	const doc = `
prompt: "lox> "
history:
  file: /tmp/lox.db
  size: 20
`
	cfg, err := Decode(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if cfg.Prompt != "lox> " {
		t.Errorf("prompt: got %q, want %q", cfg.Prompt, "lox> ")
	}
	if cfg.History.File != "/tmp/lox.db" || cfg.History.Size != 20 {
		t.Errorf("history: got %+v", cfg.History)
	}
}

func TestDecodeDefaults(t *testing.T) {
	cfg, err := Decode(strings.NewReader("prompt: \"$ \"\n"))
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if cfg.History.Size != DefaultSize {
		t.Errorf("size: got %d, want %d", cfg.History.Size, DefaultSize)
	}
	if cfg.History.File != Expand(DefaultHistory) {
		t.Errorf("file: got %q, want %q", cfg.History.File, Expand(DefaultHistory))
	}

	cfg, err = Decode(strings.NewReader(""))
	if err != nil {
		t.Fatalf("empty document: unexpected error: %s", err)
	}
	if cfg.Prompt != DefaultPrompt {
		t.Errorf("prompt: got %q, want %q", cfg.Prompt, DefaultPrompt)
	}
}

func TestDecodeInvalid(t *testing.T) {
	tests := []struct {
		Doc  string
		Want error
	}{
		{Doc: "history:\n  size: 0\n", Want: ErrInvalid},
		{Doc: "history:\n  file: \"\"\n", Want: ErrInvalid},
	}
	for _, tt := range tests {
		_, err := Decode(strings.NewReader(tt.Doc))
		if !errors.Is(err, tt.Want) {
			t.Errorf("%q: got %v, want %v", tt.Doc, err, tt.Want)
		}
	}
	if _, err := Decode(strings.NewReader("colors: true\n")); err == nil {
		t.Errorf("unknown field should be rejected")
	}
}

func TestLoad(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yml"))
	if err != nil {
		t.Fatalf("missing file: unexpected error: %s", err)
	}
	if cfg.Prompt != DefaultPrompt {
		t.Errorf("prompt: got %q, want %q", cfg.Prompt, DefaultPrompt)
	}

	file := filepath.Join(t.TempDir(), "loxrc.yml")
	if err := os.WriteFile(file, []byte("prompt: \">> \"\n"), 0644); err != nil {
		t.Fatalf("write: %s", err)
	}
	cfg, err = Load(file)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if cfg.Prompt != ">> " {
		t.Errorf("prompt: got %q, want %q", cfg.Prompt, ">> ")
	}
}

func TestExpand(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}
	if got, want := Expand("~/file.db"), filepath.Join(home, "file.db"); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
	if got := Expand("/abs/file.db"); got != "/abs/file.db" {
		t.Errorf("absolute path changed: %q", got)
	}
	if got := Expand("~user/file.db"); got != "~user/file.db" {
		t.Errorf("other user path changed: %q", got)
	}
}
