package app

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/reelcraft-backend/internal/platform/logger"
)

func TestLoadConfigDefaults(t *testing.T) {
	for _, k := range []string{"PORT", "EXAMPLE_STORE", "USER_HOOK_PROBABILITY", "SIGNATURE_CTA_PROBABILITY", "RANDOM_SEED"} {
		t.Setenv(k, "")
	}
	cfg := LoadConfig()
	if cfg.Port != "8080" {
		t.Fatalf("port: got=%q want=%q", cfg.Port, "8080")
	}
	if cfg.Store.Kind != "file" || cfg.Store.FilePath != "data/user_examples.json" {
		t.Fatalf("store: got=%+v", cfg.Store)
	}
	if cfg.UserHookProbability != 0.30 {
		t.Fatalf("user hook probability: got=%v want=0.30", cfg.UserHookProbability)
	}
	if cfg.SignatureCTAProbability != nil {
		t.Fatalf("signature probability should be unset")
	}
	if got := cfg.Policy(0.85).SignatureCTAProbability; got != 0.85 {
		t.Fatalf("profile signature probability: got=%v want=0.85", got)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("validate: %v", err)
	}
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv("SIGNATURE_CTA_PROBABILITY", "1.7")
	t.Setenv("USER_HOOK_PROBABILITY", "0")
	t.Setenv("RANDOM_SEED", "42")
	t.Setenv("CORS_ALLOW_ORIGINS", "https://a.test, https://b.test")
	t.Setenv("EXAMPLES_REFRESH_SECONDS", "30")

	cfg := LoadConfig()
	p := cfg.Policy(0.5)
	if p.SignatureCTAProbability != 1 {
		t.Fatalf("clamped signature probability: got=%v want=1", p.SignatureCTAProbability)
	}
	if p.UserHookProbability != 0 {
		t.Fatalf("user hook probability: got=%v want=0", p.UserHookProbability)
	}
	if cfg.RandomSeed != 42 {
		t.Fatalf("seed: got=%d want=42", cfg.RandomSeed)
	}
	if len(cfg.CORSOrigins) != 2 {
		t.Fatalf("origins: got=%v", cfg.CORSOrigins)
	}
	if cfg.ExamplesRefresh != 30*time.Second {
		t.Fatalf("refresh: got=%v", cfg.ExamplesRefresh)
	}
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name string
		mod  func(*Config)
		want string
	}{
		{"postgres without dsn", func(c *Config) { c.Store.Kind = "postgres" }, "POSTGRES_DSN"},
		{"redis without addr", func(c *Config) { c.Store.Kind = "redis" }, "REDIS_ADDR"},
		{"unknown store", func(c *Config) { c.Store.Kind = "s3" }, "unknown EXAMPLE_STORE"},
		{"blank port", func(c *Config) { c.Port = " " }, "PORT"},
		{"bus without redis", func(c *Config) { c.ExamplesBus = true }, "EXAMPLES_BUS_ENABLED"},
		{"bus with file store", func(c *Config) {
			c.ExamplesBus = true
			c.Store.Redis.Addr = "127.0.0.1:6379"
		}, "shared EXAMPLE_STORE"},
		{"refresh with file store", func(c *Config) { c.ExamplesRefresh = time.Minute }, "EXAMPLES_REFRESH_SECONDS"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Config{Port: "8080", Store: LoadConfig().Store}
			cfg.Store.Kind = "file"
			cfg.Store.Redis.Addr = ""
			tc.mod(&cfg)
			err := cfg.Validate()
			if err == nil || !strings.Contains(err.Error(), tc.want) {
				t.Fatalf("err: got=%v want containing %q", err, tc.want)
			}
		})
	}
}

func TestValidateSharedStoreSync(t *testing.T) {
	cfg := Config{Port: "8080", Store: LoadConfig().Store, ExamplesRefresh: time.Minute, ExamplesBus: true}
	cfg.Store.Kind = "sqlite"
	cfg.Store.Redis.Addr = "127.0.0.1:6379"
	if err := cfg.Validate(); err != nil {
		t.Fatalf("sqlite with refresh and bus: got=%v want nil", err)
	}
}

func TestLoadEnvFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.env")
	if err := os.WriteFile(path, []byte("REELCRAFT_TEST_VALUE=from-file\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	t.Cleanup(func() { os.Unsetenv("REELCRAFT_TEST_VALUE") })
	if err := LoadEnvFiles(filepath.Join(dir, "missing.env"), path); err != nil {
		t.Fatalf("load: %v", err)
	}
	if got := os.Getenv("REELCRAFT_TEST_VALUE"); got != "from-file" {
		t.Fatalf("env: got=%q want=%q", got, "from-file")
	}
}

func TestNewWithConfigServes(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cfg := Config{
		Port:           "0",
		RandomSeed:     3,
		MetricsEnabled: true,
	}
	cfg.UserHookProbability = 0.3
	cfg.Store.Kind = "file"
	cfg.Store.FilePath = filepath.Join(t.TempDir(), "examples.json")

	a, err := NewWithConfig(context.Background(), logger.Nop(), cfg)
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	t.Cleanup(a.Close)

	if got := a.Services.Composer.Policy().SignatureCTAProbability; got != a.Services.Style.CTAPolicy.SignatureProbability {
		t.Fatalf("signature probability: got=%v want profile value", got)
	}

	rec := httptest.NewRecorder()
	a.Router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/topics", nil))
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), `"topics"`) {
		t.Fatalf("topics: got=%d %s", rec.Code, rec.Body.String())
	}
}

func TestNewWithConfigBadStore(t *testing.T) {
	cfg := Config{Port: "0"}
	cfg.Store.Kind = "s3"
	if _, err := NewWithConfig(context.Background(), logger.Nop(), cfg); err == nil {
		t.Fatalf("expected store error")
	}
}
