package config

import (
	"os"
	"testing"
)

func TestValidate_InvalidPort(t *testing.T) {
	cfg := Config{
		HTTP: HTTPConfig{Port: 0},
		Database: DatabaseConfig{
			Driver: "memory",
		},
	}

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected error for invalid port")
	}
}

func TestValidate_RedisRequiresAddrs(t *testing.T) {
	cfg := Config{
		HTTP: HTTPConfig{Port: 8080},
		Database: DatabaseConfig{
			Driver: "redis",
		},
	}

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected error for missing redis addrs")
	}
}

func TestValidate_MySQLRequiresDSN(t *testing.T) {
	cfg := Config{
		HTTP: HTTPConfig{Port: 8080},
		Database: DatabaseConfig{
			Driver: "mysql",
		},
	}

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected error for missing mysql dsn")
	}
}

func TestValidate_UnknownDriver(t *testing.T) {
	cfg := Config{
		HTTP: HTTPConfig{Port: 8080},
		Database: DatabaseConfig{
			Driver: "mongodb",
		},
	}

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected error for unknown driver")
	}
}

func TestValidate_MemoryDriverNeedsNothing(t *testing.T) {
	cfg := Config{
		HTTP: HTTPConfig{Port: 8080},
		Database: DatabaseConfig{
			Driver: "memory",
		},
	}

	if err := cfg.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestApplyDefaults(t *testing.T) {
	cfg := Config{}
	cfg.ApplyDefaults()

	if cfg.HTTP.ReadTimeoutSec != 10 {
		t.Errorf("expected ReadTimeoutSec=10, got %d", cfg.HTTP.ReadTimeoutSec)
	}
	if cfg.HTTP.WriteTimeoutSec != 10 {
		t.Errorf("expected WriteTimeoutSec=10, got %d", cfg.HTTP.WriteTimeoutSec)
	}
	if cfg.HTTP.ShutdownSec != 10 {
		t.Errorf("expected ShutdownSec=10, got %d", cfg.HTTP.ShutdownSec)
	}
	if cfg.Database.Driver != "redis" {
		t.Errorf("expected driver=redis, got %q", cfg.Database.Driver)
	}
	if cfg.Database.ReadinessTimeout != 10 {
		t.Errorf("expected ReadinessTimeout=10, got %d", cfg.Database.ReadinessTimeout)
	}
	if cfg.Storage.KeyPrefix != "listdex:" {
		t.Errorf("expected KeyPrefix=listdex:, got %q", cfg.Storage.KeyPrefix)
	}
	if cfg.RateLimit.RPS != 50 {
		t.Errorf("expected RPS=50, got %v", cfg.RateLimit.RPS)
	}
	if cfg.RateLimit.Burst != 100 {
		t.Errorf("expected Burst=100, got %d", cfg.RateLimit.Burst)
	}
}

func TestApplyDefaults_KeepsExplicitValues(t *testing.T) {
	cfg := Config{
		Database:  DatabaseConfig{Driver: "mysql"},
		Storage:   StorageConfig{KeyPrefix: "custom:"},
		RateLimit: RateLimitConfig{RPS: 5, Burst: 10},
	}
	cfg.ApplyDefaults()

	if cfg.Database.Driver != "mysql" {
		t.Errorf("driver overwritten: %q", cfg.Database.Driver)
	}
	if cfg.Storage.KeyPrefix != "custom:" {
		t.Errorf("key prefix overwritten: %q", cfg.Storage.KeyPrefix)
	}
	if cfg.RateLimit.RPS != 5 || cfg.RateLimit.Burst != 10 {
		t.Errorf("rate limit overwritten: %+v", cfg.RateLimit)
	}
}

func TestExpandEnvVars(t *testing.T) {
	os.Setenv("LISTDEX_TEST_VAR", "from-env")
	defer os.Unsetenv("LISTDEX_TEST_VAR")

	tests := []struct {
		in   string
		want string
	}{
		{"value: ${LISTDEX_TEST_VAR}", "value: from-env"},
		{"value: ${LISTDEX_TEST_UNSET}", "value: "},
		{"value: ${LISTDEX_TEST_UNSET:-fallback}", "value: fallback"},
		{"value: ${LISTDEX_TEST_VAR:-fallback}", "value: from-env"},
		{"value: plain", "value: plain"},
	}
	for _, tc := range tests {
		if got := string(expandEnvVars([]byte(tc.in))); got != tc.want {
			t.Errorf("expandEnvVars(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestGetEnv(t *testing.T) {
	os.Unsetenv("ENV")
	if env := GetEnv(); env != "local" {
		t.Errorf("GetEnv() = %q, want local", env)
	}

	os.Setenv("ENV", "prod")
	defer os.Unsetenv("ENV")
	if env := GetEnv(); env != "prod" {
		t.Errorf("GetEnv() = %q, want prod", env)
	}
}
