package app

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/yungbote/reelcraft-backend/internal/data/examples"
	"github.com/yungbote/reelcraft-backend/internal/modules/content/composer"
	"github.com/yungbote/reelcraft-backend/internal/modules/content/hooks"
	"github.com/yungbote/reelcraft-backend/internal/modules/content/style"
	"github.com/yungbote/reelcraft-backend/internal/observability"
	"github.com/yungbote/reelcraft-backend/internal/platform/logger"
	"github.com/yungbote/reelcraft-backend/internal/platform/randx"
	"github.com/yungbote/reelcraft-backend/internal/realtime/bus"
)

type Services struct {
	Style    *style.Profile
	Store    *examples.Store
	Composer *composer.Composer
	Metrics  *observability.Metrics

	// Bus is nil unless EXAMPLES_BUS_ENABLED.
	Bus        bus.Bus
	InstanceID string
}

func wireServices(ctx context.Context, log *logger.Logger, cfg Config) (Services, error) {
	log.Info("Wiring services...")

	profile, err := style.Load(cfg.StyleProfilePath)
	if err != nil {
		return Services{}, fmt.Errorf("load style profile: %w", err)
	}

	var metrics *observability.Metrics
	if cfg.MetricsEnabled {
		metrics = observability.NewMetrics()
	}

	backend, err := examples.OpenBackend(cfg.Store)
	if err != nil {
		return Services{}, fmt.Errorf("open example store: %w", err)
	}
	store := examples.NewStore(log, backend)

	instanceID := uuid.NewString()
	var events bus.Bus
	if cfg.ExamplesBus {
		events, err = bus.NewRedisBus(log, bus.RedisConfig{
			Addr:     cfg.Store.Redis.Addr,
			Password: cfg.Store.Redis.Password,
			DB:       cfg.Store.Redis.DB,
			Channel:  cfg.ExamplesBusChannel,
		})
		if err != nil {
			_ = store.Close()
			return Services{}, fmt.Errorf("init example bus: %w", err)
		}
	}

	store.OnSave(func(name string, ok bool) {
		metrics.ObserveExampleSave(name, ok)
		if !ok {
			return
		}
		recordExampleCounts(metrics, store.Examples())
		if events != nil {
			pubCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()
			ev := bus.Event{Origin: instanceID, Backend: name, At: time.Now().UTC()}
			if err := events.Publish(pubCtx, ev); err != nil {
				log.Warn("publish example event failed", "error", err)
			}
		}
	})
	recordExampleCounts(metrics, store.LoadExamples(ctx))

	policy := cfg.Policy(profile.CTAPolicy.SignatureProbability)
	comp := composer.New(composer.Options{
		Log:      log,
		Source:   randx.NewLocked(cfg.RandomSeed),
		Policy:   policy,
		Examples: store,
		Style:    profile,
		OnHook: func(method hooks.Method, fallbackUsed bool) {
			metrics.ObserveHook(string(method), fallbackUsed)
		},
	})
	log.Info("Composer ready",
		"style", profile.Name,
		"example_store", store.Backend(),
		"user_hook_probability", policy.UserHookProbability,
		"signature_cta_probability", policy.SignatureCTAProbability,
		"seeded", cfg.RandomSeed != 0,
	)

	return Services{
		Style:      profile,
		Store:      store,
		Composer:   comp,
		Metrics:    metrics,
		Bus:        events,
		InstanceID: instanceID,
	}, nil
}

func recordExampleCounts(m *observability.Metrics, c examples.Collection) {
	for kind, n := range c.Counts() {
		m.SetExampleCount(string(kind), n)
	}
}
