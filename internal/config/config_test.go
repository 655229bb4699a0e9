package config

import "testing"

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() failed: %v", err)
	}

	if cfg.TVMazeBaseURL != DefaultBaseURL {
		t.Errorf("TVMazeBaseURL = %q, want %q", cfg.TVMazeBaseURL, DefaultBaseURL)
	}
	if cfg.ClientTimeout != "30s" {
		t.Errorf("ClientTimeout = %q, want 30s", cfg.ClientTimeout)
	}
	if cfg.Server.Port != 8080 || cfg.Server.Address != "localhost" {
		t.Errorf("Server = %+v", cfg.Server)
	}
	if cfg.Cache.Provider != "memory" || cfg.Cache.Size != 500 || cfg.Cache.TTL != "5m" {
		t.Errorf("Cache = %+v", cfg.Cache)
	}
	if !cfg.Breaker.Enabled || cfg.Breaker.FailureThreshold != 5 || cfg.Breaker.Delay != "30s" {
		t.Errorf("Breaker = %+v", cfg.Breaker)
	}
	if cfg.Metrics.Enabled || cfg.Metrics.Port != 9090 {
		t.Errorf("Metrics = %+v", cfg.Metrics)
	}
	if cfg.UserAgent != DefaultUserAgent {
		t.Errorf("UserAgent = %q, want default", cfg.UserAgent)
	}
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("APP_TVMAZE_BASE_URL", "http://mirror.local/")
	t.Setenv("APP_CACHE_PROVIDER", "none")
	t.Setenv("APP_SERVER_PORT", "9999")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() failed: %v", err)
	}

	if cfg.TVMazeBaseURL != "http://mirror.local" {
		t.Errorf("TVMazeBaseURL = %q, want trailing slash trimmed", cfg.TVMazeBaseURL)
	}
	if cfg.Cache.Provider != "none" {
		t.Errorf("Cache.Provider = %q, want none", cfg.Cache.Provider)
	}
	if cfg.Server.Port != 9999 {
		t.Errorf("Server.Port = %d, want 9999", cfg.Server.Port)
	}
}

func TestGetLoggerAndUserAgent(t *testing.T) {
	if GetConfig() == nil {
		t.Fatal("expected the global configuration to be loaded at init")
	}
	if GetUserAgent() == "" {
		t.Error("expected a user agent")
	}
	logger := GetLogger()
	logger.Debug().Msg("logger usable")
}
