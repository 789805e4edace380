package app

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/yungbote/reelcraft-backend/internal/data/examples"
	"github.com/yungbote/reelcraft-backend/internal/modules/content/composer"
	"github.com/yungbote/reelcraft-backend/internal/observability"
	"github.com/yungbote/reelcraft-backend/internal/platform/envutil"
)

const serviceName = "reelcraft"

type Config struct {
	Port        string
	LogMode     string
	GinMode     string
	CORSOrigins []string

	// RandomSeed of 0 means time seeded.
	RandomSeed int64
	// SignatureCTAProbability is nil when unset; the style profile supplies it.
	UserHookProbability     float64
	SignatureCTAProbability *float64
	StyleProfilePath        string

	Store examples.BackendConfig
	// ExamplesRefresh reloads the example store on this interval; 0 disables.
	ExamplesRefresh time.Duration
	// ExamplesBus announces saves over Redis pub/sub so other replicas refresh.
	ExamplesBus        bool
	ExamplesBusChannel string

	MetricsEnabled bool
	Otel           observability.OtelConfig
}

// LoadEnvFiles loads .env files into the process environment. Missing files
// are ignored.
func LoadEnvFiles(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	for _, p := range paths {
		if _, err := os.Stat(p); err != nil {
			continue
		}
		if err := godotenv.Load(p); err != nil {
			return fmt.Errorf("load %s: %w", p, err)
		}
	}
	return nil
}

func LoadConfig() Config {
	cfg := Config{
		Port:        envutil.String("PORT", "8080"),
		LogMode:     envutil.String("LOG_MODE", "development"),
		GinMode:     envutil.String("GIN_MODE", ""),
		CORSOrigins: envutil.List("CORS_ALLOW_ORIGINS", nil),

		RandomSeed:          envutil.Int64("RANDOM_SEED", 0),
		UserHookProbability: envutil.Float("USER_HOOK_PROBABILITY", composer.DefaultPolicy().UserHookProbability, 0, 1),
		StyleProfilePath:    envutil.String("STYLE_PROFILE_PATH", ""),

		Store: examples.BackendConfig{
			Kind:        envutil.String("EXAMPLE_STORE", "file"),
			FilePath:    envutil.String("EXAMPLES_PATH", "data/user_examples.json"),
			SQLitePath:  envutil.String("SQLITE_PATH", "data/user_examples.db"),
			PostgresDSN: envutil.String("POSTGRES_DSN", ""),
			Redis: examples.RedisConfig{
				Addr:     envutil.String("REDIS_ADDR", ""),
				Password: envutil.String("REDIS_PASSWORD", ""),
				DB:       envutil.Int("REDIS_DB", 0),
				Key:      envutil.String("REDIS_KEY", ""),
			},
		},

		ExamplesRefresh:    time.Duration(envutil.Int("EXAMPLES_REFRESH_SECONDS", 0)) * time.Second,
		ExamplesBus:        envutil.Bool("EXAMPLES_BUS_ENABLED", false),
		ExamplesBusChannel: envutil.String("EXAMPLES_BUS_CHANNEL", ""),

		MetricsEnabled: envutil.Bool("METRICS_ENABLED", true),
		Otel: observability.OtelConfig{
			Enabled:     envutil.Bool("OTEL_ENABLED", false),
			ServiceName: envutil.String("OTEL_SERVICE_NAME", serviceName),
			Environment: envutil.String("APP_ENV", "development"),
			Version:     envutil.String("APP_VERSION", ""),
			Endpoint:    envutil.String("OTEL_EXPORTER_OTLP_ENDPOINT", ""),
			Headers:     envutil.String("OTEL_EXPORTER_OTLP_HEADERS", ""),
			Insecure:    envutil.Bool("OTEL_EXPORTER_OTLP_INSECURE", false),
			SampleRatio: envutil.Float("OTEL_SAMPLER_RATIO", 1, 0, 1),
		},
	}
	if strings.TrimSpace(os.Getenv("SIGNATURE_CTA_PROBABILITY")) != "" {
		p := envutil.Float("SIGNATURE_CTA_PROBABILITY", composer.DefaultPolicy().SignatureCTAProbability, 0, 1)
		cfg.SignatureCTAProbability = &p
	}
	return cfg
}

// Validate reports settings that would fail later at startup.
func (c Config) Validate() error {
	var errs []error
	if strings.TrimSpace(c.Port) == "" {
		errs = append(errs, errors.New("PORT is required"))
	}
	kind := strings.ToLower(strings.TrimSpace(c.Store.Kind))
	switch kind {
	case "", "file", "sqlite":
	case "postgres":
		if strings.TrimSpace(c.Store.PostgresDSN) == "" {
			errs = append(errs, errors.New("POSTGRES_DSN is required when EXAMPLE_STORE=postgres"))
		}
	case "redis":
		if strings.TrimSpace(c.Store.Redis.Addr) == "" {
			errs = append(errs, errors.New("REDIS_ADDR is required when EXAMPLE_STORE=redis"))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown EXAMPLE_STORE %q", c.Store.Kind))
	}
	if c.ExamplesBus && strings.TrimSpace(c.Store.Redis.Addr) == "" {
		errs = append(errs, errors.New("REDIS_ADDR is required when EXAMPLES_BUS_ENABLED=true"))
	}
	// A per-process JSON file cannot converge with other writers.
	if kind == "" || kind == "file" {
		if c.ExamplesBus {
			errs = append(errs, errors.New("EXAMPLES_BUS_ENABLED requires a shared EXAMPLE_STORE (sqlite, postgres or redis)"))
		}
		if c.ExamplesRefresh > 0 {
			errs = append(errs, errors.New("EXAMPLES_REFRESH_SECONDS requires a shared EXAMPLE_STORE (sqlite, postgres or redis)"))
		}
	}
	return errors.Join(errs...)
}

// Policy resolves the composer policy. Without an explicit override the
// signature CTA probability comes from the style profile.
func (c Config) Policy(profileSignature float64) composer.Policy {
	p := composer.Policy{
		UserHookProbability:     c.UserHookProbability,
		SignatureCTAProbability: profileSignature,
	}
	if c.SignatureCTAProbability != nil {
		p.SignatureCTAProbability = *c.SignatureCTAProbability
	}
	return p
}
