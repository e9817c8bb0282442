package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/eugenenazirov/cube-packer/internal/packing"
	"github.com/eugenenazirov/cube-packer/internal/storage"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("CONTAINER_DIMS", "")
	t.Setenv("SORT_ORDER", "")

	cfg, err := Load(nil)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if cfg.Port != defaultPort {
		t.Fatalf("expected default port %s, got %s", defaultPort, cfg.Port)
	}
	if cfg.Container != storage.DefaultSettings() {
		t.Fatalf("expected default container settings, got %v", cfg.Container)
	}
	if cfg.ShutdownGracePeriod != 10*time.Second {
		t.Fatalf("unexpected shutdown grace period: %s", cfg.ShutdownGracePeriod)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("CONTAINER_DIMS", "4x3x2")
	t.Setenv("SORT_ORDER", "desc")

	cfg, err := Load(nil)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if cfg.Port != "9000" {
		t.Fatalf("expected overridden port, got %s", cfg.Port)
	}
	want := storage.Settings{Length: 4, Width: 3, Height: 2, Order: packing.Descending}
	if cfg.Container != want {
		t.Fatalf("expected container %v, got %v", want, cfg.Container)
	}
}

func TestLoadYAMLFile(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("CONTAINER_DIMS", "")
	t.Setenv("SORT_ORDER", "")

	path := filepath.Join(t.TempDir(), "config.yaml")
	payload := []byte(`
port: "8181"
container:
  length: 6
  width: 5
  height: 4
sort_order: desc
shutdown_grace_period: 3s
enable_request_logging: true
rate_limit:
  rps: 5
  burst: 10
`)
	if err := os.WriteFile(path, payload, 0o600); err != nil {
		t.Fatalf("write config file: %v", err)
	}

	cfg, err := Load(&CLIOverrides{ConfigFile: path})
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if cfg.Port != "8181" {
		t.Fatalf("expected YAML port, got %s", cfg.Port)
	}
	want := storage.Settings{Length: 6, Width: 5, Height: 4, Order: packing.Descending}
	if cfg.Container != want {
		t.Fatalf("expected container %v, got %v", want, cfg.Container)
	}
	if cfg.ShutdownGracePeriod != 3*time.Second {
		t.Fatalf("unexpected shutdown grace period: %s", cfg.ShutdownGracePeriod)
	}
	if cfg.RateLimitRPS != 5 || cfg.RateLimitBurst != 10 {
		t.Fatalf("unexpected rate limit: %v/%v", cfg.RateLimitRPS, cfg.RateLimitBurst)
	}
}

func TestLoadCLIOverridesWinOverEnv(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("CONTAINER_DIMS", "9x9x9")

	port := "7070"
	container := "2x2x2"
	cfg, err := Load(&CLIOverrides{Port: &port, ContainerStr: &container})
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if cfg.Port != "7070" {
		t.Fatalf("expected CLI port to win, got %s", cfg.Port)
	}
	if cfg.Container.Length != 2 || cfg.Container.Width != 2 || cfg.Container.Height != 2 {
		t.Fatalf("expected CLI container to win, got %v", cfg.Container)
	}
}

func TestParseContainerDims(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		got, err := ParseContainerDims("10x20x30")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != [3]int{10, 20, 30} {
			t.Fatalf("unexpected dims: %v", got)
		}
	})

	t.Run("invalid", func(t *testing.T) {
		for _, raw := range []string{"", "1x2", "1x2x3x4", "axbxc", "0x1x1", "-1x2x3"} {
			if _, err := ParseContainerDims(raw); err == nil {
				t.Fatalf("expected error for %q", raw)
			}
		}
	})
}
