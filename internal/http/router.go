package http

import (
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	httpH "github.com/yungbote/reelcraft-backend/internal/http/handlers"
	httpMW "github.com/yungbote/reelcraft-backend/internal/http/middleware"
	"github.com/yungbote/reelcraft-backend/internal/observability"
	"github.com/yungbote/reelcraft-backend/internal/platform/logger"
)

type RouterConfig struct {
	Log         *logger.Logger
	Metrics     *observability.Metrics
	CORSOrigins []string
	// TraceService enables otelgin spans under this service name.
	TraceService string

	ContentHandler  *httpH.ContentHandler
	ExamplesHandler *httpH.ExamplesHandler
	HealthHandler   *httpH.HealthHandler
}

// Endpoints lists the routes NewRouter registers, for the index page.
var Endpoints = []string{
	"GET /healthcheck",
	"GET /api/topics",
	"POST /api/generate/reel",
	"POST /api/generate/hooks",
	"POST /api/generate/quick-ideas",
	"GET /api/frameworks",
	"GET /api/framework/:name",
	"POST /api/generate/custom",
	"GET /api/videos",
	"GET /api/videos/:type/shots",
	"GET /api/examples",
	"POST /api/examples",
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	r := gin.New()
	if cfg.TraceService != "" {
		r.Use(otelgin.Middleware(cfg.TraceService))
	}
	r.Use(httpMW.AttachTraceContext())
	r.Use(httpMW.RequestLogger(cfg.Log))
	r.Use(httpMW.Recovery(cfg.Log))
	r.Use(httpMW.Metrics(cfg.Metrics))
	r.Use(httpMW.CORS(cfg.CORSOrigins))

	// Health
	if cfg.HealthHandler != nil {
		r.GET("/", cfg.HealthHandler.Index)
		r.GET("/healthcheck", cfg.HealthHandler.HealthCheck)
	}
	if cfg.Metrics != nil {
		r.GET("/metrics", gin.WrapH(cfg.Metrics.Handler()))
	}

	api := r.Group("/api")
	{
		// Content
		if cfg.ContentHandler != nil {
			api.GET("/topics", cfg.ContentHandler.Topics)
			api.POST("/generate/reel", cfg.ContentHandler.GenerateReel)
			api.POST("/generate/hooks", cfg.ContentHandler.GenerateHooks)
			api.POST("/generate/quick-ideas", cfg.ContentHandler.GenerateQuickIdeas)
			api.POST("/generate/custom", cfg.ContentHandler.GenerateCustom)
			api.GET("/frameworks", cfg.ContentHandler.Frameworks)
			api.GET("/framework/:name", cfg.ContentHandler.Framework)
			api.GET("/videos", cfg.ContentHandler.VideoTypes)
			api.GET("/videos/:type/shots", cfg.ContentHandler.Shots)
		}

		// Examples
		if cfg.ExamplesHandler != nil {
			api.GET("/examples", cfg.ExamplesHandler.List)
			api.POST("/examples", cfg.ExamplesHandler.Save)
		}
	}

	return r
}
