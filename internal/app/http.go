package app

import (
	"github.com/gin-gonic/gin"

	"github.com/yungbote/reelcraft-backend/internal/http"
	httpH "github.com/yungbote/reelcraft-backend/internal/http/handlers"
	"github.com/yungbote/reelcraft-backend/internal/platform/logger"
)

type Handlers struct {
	Health   *httpH.HealthHandler
	Content  *httpH.ContentHandler
	Examples *httpH.ExamplesHandler
}

func wireHandlers(log *logger.Logger, services Services) Handlers {
	log.Info("Wiring handlers...")
	return Handlers{
		Health:   httpH.NewHealthHandler(serviceName, http.Endpoints),
		Content:  httpH.NewContentHandler(log, services.Composer, services.Metrics),
		Examples: httpH.NewExamplesHandler(log, services.Store),
	}
}

func wireRouter(log *logger.Logger, cfg Config, services Services, handlers Handlers) *gin.Engine {
	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}
	traceService := ""
	if cfg.Otel.Enabled {
		traceService = cfg.Otel.ServiceName
	}
	return http.NewRouter(http.RouterConfig{
		Log:             log,
		Metrics:         services.Metrics,
		CORSOrigins:     cfg.CORSOrigins,
		TraceService:    traceService,
		HealthHandler:   handlers.Health,
		ContentHandler:  handlers.Content,
		ExamplesHandler: handlers.Examples,
	})
}
