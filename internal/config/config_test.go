package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	cerr "github.com/saeidalz13/battleship-console/internal/error"
	mb "github.com/saeidalz13/battleship-console/models/battleship"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"STAGE", "LOG_LEVEL", "LOG_FILE", "PSQL_URL", "ORIENTATION_MODE",
		"PLACEMENT_MAX_ATTEMPTS", "SEED", EnvConfigFile,
	} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Stage != StageDev {
		t.Fatalf("expected stage: %s\tgot: %s", StageDev, cfg.Stage)
	}
	if cfg.LogLevel != "warn" {
		t.Fatalf("expected log level: warn\tgot: %s", cfg.LogLevel)
	}
	if cfg.OrientationMode != OrientationModeSkewed {
		t.Fatalf("expected orientation mode: %s\tgot: %s", OrientationModeSkewed, cfg.OrientationMode)
	}
	if cfg.PlacementMaxAttempts != mb.DefaultMaxPlacementAttempts {
		t.Fatalf("expected placement attempts: %d\tgot: %d", mb.DefaultMaxPlacementAttempts, cfg.PlacementMaxAttempts)
	}
	if cfg.AnalyticsEnabled() {
		t.Fatal("analytics must be disabled without PSQL_URL")
	}
}

func TestLoadFromEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("STAGE", "prod")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("ORIENTATION_MODE", "FAIR")
	t.Setenv("PLACEMENT_MAX_ATTEMPTS", "42")
	t.Setenv("SEED", "7")
	t.Setenv("PSQL_URL", "postgres://localhost:5432/battleship")

	cfg, err := Load()
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Stage != StageProd {
		t.Fatalf("expected stage: %s\tgot: %s", StageProd, cfg.Stage)
	}
	if cfg.LogLevel != "debug" {
		t.Fatalf("expected log level: debug\tgot: %s", cfg.LogLevel)
	}
	if cfg.OrientationMode != OrientationModeFair {
		t.Fatalf("expected orientation mode: %s\tgot: %s", OrientationModeFair, cfg.OrientationMode)
	}
	if cfg.PlacementMaxAttempts != 42 {
		t.Fatalf("expected placement attempts: 42\tgot: %d", cfg.PlacementMaxAttempts)
	}
	if cfg.Seed != 7 {
		t.Fatalf("expected seed: 7\tgot: %d", cfg.Seed)
	}
	if !cfg.AnalyticsEnabled() {
		t.Fatal("analytics must be enabled with PSQL_URL")
	}
}

func TestLoadFromFileEnvWins(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "battleship.yaml")
	content := []byte("log_level: error\norientation_mode: fair\nseed: 99\n")
	if err := os.WriteFile(path, content, 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv(EnvConfigFile, path)
	t.Setenv("LOG_LEVEL", "info")

	cfg, err := Load()
	if err != nil {
		t.Fatal(err)
	}

	if cfg.LogLevel != "info" {
		t.Fatalf("expected env to win, log level: info\tgot: %s", cfg.LogLevel)
	}
	if cfg.OrientationMode != OrientationModeFair {
		t.Fatalf("expected orientation mode from file: %s\tgot: %s", OrientationModeFair, cfg.OrientationMode)
	}
	if cfg.Seed != 99 {
		t.Fatalf("expected seed from file: 99\tgot: %d", cfg.Seed)
	}
}

func TestLoadInvalid(t *testing.T) {
	tests := []struct {
		name        string
		key         string
		value       string
		expectedErr error
	}{
		{name: "invalid stage", key: "STAGE", value: "qa", expectedErr: cerr.ErrInvalidStage},
		{name: "invalid orientation", key: "ORIENTATION_MODE", value: "diagonal", expectedErr: cerr.ErrInvalidOrientation},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(test.key, test.value)

			_, err := Load()
			if !errors.Is(err, test.expectedErr) {
				t.Fatalf("expected err: %v\tgot: %v", test.expectedErr, err)
			}
		})
	}
}

func TestSeededRandIsDeterministic(t *testing.T) {
	cfg := Config{Seed: 11}
	a, b := cfg.Rand(), cfg.Rand()
	for i := 0; i < 10; i++ {
		if x, y := a.Intn(100), b.Intn(100); x != y {
			t.Fatalf("expected equal draws for equal seeds\tgot: %d and %d", x, y)
		}
	}
}
