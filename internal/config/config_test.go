package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	t.Setenv("INTERQ_DB", "")
	t.Setenv("INTERQ_BANK", "")
	t.Setenv("INTERQ_KNOWLEDGE", "")
	t.Setenv("INTERQ_VOLUME", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.DBPath != "" {
		t.Errorf("DBPath = %q, want empty", cfg.DBPath)
	}
	if cfg.BankPath != DefaultBankPath {
		t.Errorf("BankPath = %q, want %q", cfg.BankPath, DefaultBankPath)
	}
	if cfg.KnowledgeDir != DefaultKnowledgeDir {
		t.Errorf("KnowledgeDir = %q, want %q", cfg.KnowledgeDir, DefaultKnowledgeDir)
	}
	if cfg.Volume != DefaultVolume {
		t.Errorf("Volume = %v, want %v", cfg.Volume, DefaultVolume)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("INTERQ_DB", "/tmp/interq.db")
	t.Setenv("INTERQ_BANK", "questions.csv")
	t.Setenv("INTERQ_KNOWLEDGE", "/srv/docs")
	t.Setenv("INTERQ_VOLUME", "0.8")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.DBPath != "/tmp/interq.db" {
		t.Errorf("DBPath = %q", cfg.DBPath)
	}
	if cfg.BankPath != "questions.csv" {
		t.Errorf("BankPath = %q", cfg.BankPath)
	}
	if cfg.KnowledgeDir != "/srv/docs" {
		t.Errorf("KnowledgeDir = %q", cfg.KnowledgeDir)
	}
	if cfg.Volume != 0.8 {
		t.Errorf("Volume = %v, want 0.8", cfg.Volume)
	}
}

func TestLoadClampsVolume(t *testing.T) {
	tests := []struct {
		raw  string
		want float64
	}{
		{"1.5", 1},
		{"-0.2", 0},
		{"0", 0},
		{"1", 1},
	}
	for _, tt := range tests {
		t.Setenv("INTERQ_VOLUME", tt.raw)
		cfg, err := Load()
		if err != nil {
			t.Fatalf("load with volume %q: %v", tt.raw, err)
		}
		if cfg.Volume != tt.want {
			t.Errorf("volume %q -> %v, want %v", tt.raw, cfg.Volume, tt.want)
		}
	}
}

func TestLoadBadVolume(t *testing.T) {
	t.Setenv("INTERQ_VOLUME", "loud")
	if _, err := Load(); err == nil {
		t.Fatal("expected error for non-numeric volume")
	}
}
