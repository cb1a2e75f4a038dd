package config

import (
	"strings"
	"testing"
)

func validConfig() *Config {
	return &Config{
		HTTPPort:           8080,
		RateLimitPerMinute: 100,
		MenuBackend:        BackendFile,
		MenuFile:           "menu.json",
		MenuRedisKey:       "menu",
		AdminPageMode:      PageInline,
		AdminPagePath:      "public/index.html",
		DatabaseURL:        "postgres://menu:pw@localhost:5432/menuboard",
		EventsBackend:      EventsMemory,
		LogLevel:           "info",
		Environment:        EnvDevelopment,
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{"defaults", func(*Config) {}, ""},
		{"unknown backend", func(c *Config) { c.MenuBackend = "sqlite" }, "MenuBackend"},
		{"file backend without path", func(c *Config) { c.MenuFile = "" }, "MenuFile"},
		{"memory backend without path", func(c *Config) { c.MenuBackend = BackendMemory; c.MenuFile = "" }, ""},
		{"redis backend without key", func(c *Config) { c.MenuBackend = BackendRedis; c.MenuRedisKey = "" }, "MenuRedisKey"},
		{"unknown page mode", func(c *Config) { c.AdminPageMode = "spa" }, "AdminPageMode"},
		{"static page without path", func(c *Config) { c.AdminPageMode = PageStatic; c.AdminPagePath = "" }, "AdminPagePath"},
		{"unknown events backend", func(c *Config) { c.EventsBackend = "kafka" }, "EventsBackend"},
		{"postgres events without database", func(c *Config) { c.EventsBackend = EventsPostgres; c.DatabaseURL = "" }, "DATABASE_URL"},
		{"zero rate limit", func(c *Config) { c.RateLimitPerMinute = 0 }, "RateLimitPerMinute"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)
			err := Validate(cfg)
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("expected valid config, got %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("expected error mentioning %q, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestAddr(t *testing.T) {
	cfg := validConfig()
	cfg.HTTPPort = 3000
	if got := cfg.Addr(); got != ":3000" {
		t.Fatalf("expected :3000, got %q", got)
	}
}

func TestNeedsInfrastructure(t *testing.T) {
	tests := []struct {
		backend, events string
		redis, database bool
	}{
		{BackendFile, EventsMemory, false, false},
		{BackendMemory, EventsNone, false, false},
		{BackendRedis, EventsMemory, true, false},
		{BackendPostgres, EventsNone, false, true},
		{BackendFile, EventsPostgres, false, true},
	}
	for _, tt := range tests {
		cfg := &Config{MenuBackend: tt.backend, EventsBackend: tt.events}
		if cfg.NeedsRedis() != tt.redis || cfg.NeedsDatabase() != tt.database {
			t.Errorf("%s/%s: NeedsRedis=%v NeedsDatabase=%v", tt.backend, tt.events, cfg.NeedsRedis(), cfg.NeedsDatabase())
		}
	}
}

func TestValidateForProduction(t *testing.T) {
	t.Run("non-production is skipped", func(t *testing.T) {
		cfg := validConfig()
		cfg.LogLevel = "debug"
		cfg.MenuBackend = BackendMemory
		if err := ValidateForProduction(cfg); err != nil {
			t.Fatalf("expected nil, got %v", err)
		}
	})

	t.Run("production rejects debug and memory storage", func(t *testing.T) {
		cfg := validConfig()
		cfg.Environment = EnvProduction
		cfg.LogLevel = "debug"
		cfg.MenuBackend = BackendMemory
		err := ValidateForProduction(cfg)
		if err == nil {
			t.Fatal("expected error")
		}
		for _, want := range []string{"LOG_LEVEL", "MENU_BACKEND=memory"} {
			if !strings.Contains(err.Error(), want) {
				t.Errorf("error %q does not mention %s", err, want)
			}
		}
	})

	t.Run("production accepts file storage", func(t *testing.T) {
		cfg := validConfig()
		cfg.Environment = EnvProduction
		if err := ValidateForProduction(cfg); err != nil {
			t.Fatalf("expected nil, got %v", err)
		}
	})
}
