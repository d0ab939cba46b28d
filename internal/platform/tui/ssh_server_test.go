package tui

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

func TestHostKeyPath(t *testing.T) {
	dir := t.TempDir()
	want := filepath.Join(dir, "keys", "host_key")

	got, err := hostKeyPath(want)
	if err != nil {
		t.Fatal(err)
	}
	if got != want {
		t.Errorf("hostKeyPath() = %q, expected %q", got, want)
	}
	if info, err := os.Stat(filepath.Dir(want)); err != nil || !info.IsDir() {
		t.Errorf("key directory not created: %v", err)
	}

	t.Setenv("HOME", dir)
	got, err = hostKeyPath("")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(got, dir) || filepath.Base(got) != "host_key" {
		t.Errorf("hostKeyPath(\"\") = %q", got)
	}
}

func TestNewSSHServer(t *testing.T) {
	dir := t.TempDir()
	cfg := DefaultSSHServerConfig()
	cfg.Address = "127.0.0.1:0"
	cfg.HostKeyPath = filepath.Join(dir, "host_key")
	cfg.DBPath = filepath.Join(dir, "scores.db")
	cfg.TickRate = 0
	cfg.Logger = log.New(io.Discard)

	s, err := NewSSHServer(cfg)
	if err != nil {
		t.Fatal(err)
	}
	defer s.closeStore()

	if s.Addr() != cfg.Address {
		t.Errorf("Addr() = %q, expected %q", s.Addr(), cfg.Address)
	}
	if s.config.TickRate != 60 {
		t.Errorf("TickRate = %d, expected default 60", s.config.TickRate)
	}
	if s.store == nil {
		t.Error("store should be open")
	}
	if s.Sessions() != 0 {
		t.Errorf("Sessions() = %d, expected 0", s.Sessions())
	}
}
