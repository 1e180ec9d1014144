package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoad_EnvOnlyDefaults(t *testing.T) {
	cfg, err := Load("does-not-exist.yaml", true)
	if err != nil {
		t.Fatalf("err=%v", err)
	}
	if cfg.Server.HTTPAddr != ":8080" {
		t.Fatalf("http_addr=%q", cfg.Server.HTTPAddr)
	}
	if cfg.Cache.Backend != "memory" {
		t.Fatalf("cache.backend=%q want memory", cfg.Cache.Backend)
	}
	if cfg.Simulator.LeaderboardCacheTTL != 2*time.Minute {
		t.Fatalf("leaderboard_cache_ttl=%s", cfg.Simulator.LeaderboardCacheTTL)
	}
	if cfg.Events.Kafka.Enabled {
		t.Fatalf("kafka should be disabled by default")
	}
}

func TestLoad_FileAndEnvOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	body := "server:\n  http_addr: \":9090\"\ncache:\n  backend: redis\n  redis_addr: \"localhost:6379\"\n"
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	t.Setenv("LS_SERVER_HTTP_ADDR", ":7070")

	cfg, err := Load(path, false)
	if err != nil {
		t.Fatalf("err=%v", err)
	}
	if cfg.Server.HTTPAddr != ":7070" {
		t.Fatalf("http_addr=%q want env override", cfg.Server.HTTPAddr)
	}
	if cfg.Cache.Backend != "redis" || cfg.Cache.RedisAddr != "localhost:6379" {
		t.Fatalf("cache=%+v", cfg.Cache)
	}
}
