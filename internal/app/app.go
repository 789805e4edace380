package app

import (
	"context"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"

	"github.com/yungbote/reelcraft-backend/internal/http"
	"github.com/yungbote/reelcraft-backend/internal/observability"
	"github.com/yungbote/reelcraft-backend/internal/platform/logger"
	"github.com/yungbote/reelcraft-backend/internal/realtime/bus"
)

type App struct {
	Log      *logger.Logger
	Router   *gin.Engine
	Cfg      Config
	Services Services

	otelShutdown func(context.Context) error
}

func New(ctx context.Context) (*App, error) {
	if err := LoadEnvFiles(); err != nil {
		return nil, err
	}
	cfg := LoadConfig()

	log, err := logger.New(cfg.LogMode)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Sync()
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return NewWithConfig(ctx, log, cfg)
}

// NewWithConfig wires the app from an already loaded config.
func NewWithConfig(ctx context.Context, log *logger.Logger, cfg Config) (*App, error) {
	otelShutdown := observability.InitOTel(ctx, log, cfg.Otel)

	serviceset, err := wireServices(ctx, log, cfg)
	if err != nil {
		_ = otelShutdown(ctx)
		log.Sync()
		return nil, err
	}
	handlerset := wireHandlers(log, serviceset)
	router := wireRouter(log, cfg, serviceset, handlerset)

	return &App{
		Log:          log,
		Router:       router,
		Cfg:          cfg,
		Services:     serviceset,
		otelShutdown: otelShutdown,
	}, nil
}

// Run serves HTTP until ctx is cancelled.
func (a *App) Run(ctx context.Context) error {
	if a == nil || a.Router == nil {
		return fmt.Errorf("app not initialized")
	}
	addr := ":" + a.Cfg.Port
	srv := &http.Server{Engine: a.Router}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		a.Log.Info("Server listening", "addr", addr)
		return srv.Run(gctx, addr)
	})
	if a.Services.Bus != nil {
		g.Go(func() error {
			a.forwardExampleEvents(gctx)
			return nil
		})
	}
	if a.Cfg.ExamplesRefresh > 0 {
		g.Go(func() error {
			a.refreshExamples(gctx, a.Cfg.ExamplesRefresh)
			return nil
		})
	}
	return g.Wait()
}

// refreshExamples reloads the store so entries written by other replicas
// sharing the backend become visible.
func (a *App) refreshExamples(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			c, err := a.Services.Store.Refresh(ctx)
			if err != nil {
				a.Log.Warn("example refresh failed", "error", err)
				continue
			}
			recordExampleCounts(a.Services.Metrics, c)
		}
	}
}

// forwardExampleEvents refreshes the store when another instance saves.
func (a *App) forwardExampleEvents(ctx context.Context) {
	err := a.Services.Bus.StartForwarder(ctx, func(ev bus.Event) {
		if ev.Origin == a.Services.InstanceID {
			return
		}
		c, err := a.Services.Store.Refresh(ctx)
		if err != nil {
			a.Log.Warn("example refresh after event failed", "origin", ev.Origin, "error", err)
			return
		}
		recordExampleCounts(a.Services.Metrics, c)
	})
	if err != nil {
		a.Log.Warn("example event forwarder not started", "error", err)
		return
	}
	<-ctx.Done()
}

func (a *App) Close() {
	if a == nil {
		return
	}
	if a.Services.Store != nil {
		if err := a.Services.Store.Close(); err != nil && a.Log != nil {
			a.Log.Warn("example store close failed", "error", err)
		}
	}
	if a.Services.Bus != nil {
		_ = a.Services.Bus.Close()
	}
	if a.otelShutdown != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if err := a.otelShutdown(ctx); err != nil && a.Log != nil {
			a.Log.Warn("otel shutdown failed", "error", err)
		}
		cancel()
	}
	if a.Log != nil {
		a.Log.Sync()
	}
}
