package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadConfigCreatesDefault(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	c, err := LoadConfig()
	if err != nil {
		t.Fatal(err)
	}
	if *c != *Default() {
		t.Errorf("LoadConfig() = %+v, want defaults", c)
	}

	path := filepath.Join(dir, "blackjack", "config.toml")
	if GetConfigFilePath() != path {
		t.Errorf("GetConfigFilePath() = %s, want %s", GetConfigFilePath(), path)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("config file not created: %v", err)
	}
}

func TestSaveAndLoad(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	want := &Config{Color: false, ClearScreen: false, DealerPauseMs: 0, CardBack: "#123456", Seed: 99}
	if err := SaveConfig(want); err != nil {
		t.Fatal(err)
	}
	got, err := LoadConfig()
	if err != nil {
		t.Fatal(err)
	}
	if *got != *want {
		t.Errorf("LoadConfig() = %+v, want %+v", got, want)
	}
}

func TestLoadFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partial.toml")
	if err := os.WriteFile(path, []byte("seed = 7\n"), 0644); err != nil {
		t.Fatal(err)
	}
	c, err := LoadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if c.Seed != 7 || !c.Color || c.CardBack != Default().CardBack {
		t.Errorf("LoadFile() = %+v", c)
	}
	if c.DealerPause() != 800*time.Millisecond {
		t.Errorf("DealerPause() = %v, want 800ms", c.DealerPause())
	}
}

func TestLoadFileRejectsBadToml(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.toml")
	if err := os.WriteFile(path, []byte("color = \n"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFile(path); err == nil {
		t.Error("LoadFile() should fail on malformed toml")
	}
}
