package handlers

import (
	"errors"
	"io"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/reelcraft-backend/internal/http/response"
	"github.com/yungbote/reelcraft-backend/internal/modules/content/composer"
	"github.com/yungbote/reelcraft-backend/internal/observability"
	"github.com/yungbote/reelcraft-backend/internal/platform/apierr"
	"github.com/yungbote/reelcraft-backend/internal/platform/ctxutil"
	"github.com/yungbote/reelcraft-backend/internal/platform/logger"
)

const (
	defaultNumTips    = 3
	defaultHookCount  = 5
	defaultIdeaCount  = 3
	maxRequestedItems = 50
)

type ContentHandler struct {
	log      *logger.Logger
	composer *composer.Composer
	metrics  *observability.Metrics
}

func NewContentHandler(log *logger.Logger, c *composer.Composer, m *observability.Metrics) *ContentHandler {
	return &ContentHandler{
		log:      log.With("handler", "ContentHandler"),
		composer: c,
		metrics:  m,
	}
}

type reelRequest struct {
	Topic   string `json:"topic"`
	NumTips *int   `json:"num_tips"`
}

type hooksRequest struct {
	Category string `json:"category"`
	Count    *int   `json:"count"`
}

type ideasRequest struct {
	Count *int `json:"count"`
}

type customRequest struct {
	Topic       string `json:"topic"`
	ContentType string `json:"content_type"`
	NumTips     *int   `json:"num_tips"`
}

// bindOptional decodes a JSON body, treating an empty body as {}, chunked
// or not.
func bindOptional(c *gin.Context, dst any) bool {
	if c.Request.Body == nil || c.Request.ContentLength == 0 {
		return true
	}
	if err := c.ShouldBindJSON(dst); err != nil && !errors.Is(err, io.EOF) {
		response.RespondAPIError(c, errInvalidBody)
		return false
	}
	return true
}

func intOr(v *int, def int) int {
	if v == nil {
		return def
	}
	return min(*v, maxRequestedItems)
}

// generated records one generated item for metrics and the request log.
func (h *ContentHandler) generated(c *gin.Context, kind string) {
	h.metrics.IncGeneration(kind)
	c.Set(ctxutil.GenerationKey, kind)
}

// GET /api/topics
func (h *ContentHandler) Topics(c *gin.Context) {
	response.RespondOK(c, gin.H{"topics": h.composer.Topics()})
}

// POST /api/generate/reel
func (h *ContentHandler) GenerateReel(c *gin.Context) {
	var req reelRequest
	if !bindOptional(c, &req) {
		return
	}
	reel := h.composer.ComposeReel(req.Topic, intOr(req.NumTips, defaultNumTips))
	h.generated(c, "reel")
	response.RespondOK(c, gin.H{"reel": reel})
}

// POST /api/generate/hooks
func (h *ContentHandler) GenerateHooks(c *gin.Context) {
	var req hooksRequest
	if !bindOptional(c, &req) {
		return
	}
	list := h.composer.ContentHooks(req.Category, intOr(req.Count, defaultHookCount))
	h.generated(c, "hooks")
	response.RespondOK(c, gin.H{"hooks": list})
}

// POST /api/generate/quick-ideas
func (h *ContentHandler) GenerateQuickIdeas(c *gin.Context) {
	var req ideasRequest
	if !bindOptional(c, &req) {
		return
	}
	ideas := h.composer.QuickIdeas(intOr(req.Count, defaultIdeaCount))
	h.generated(c, "quick_ideas")
	response.RespondOK(c, gin.H{"ideas": ideas})
}

// GET /api/frameworks
func (h *ContentHandler) Frameworks(c *gin.Context) {
	response.RespondOK(c, gin.H{"frameworks": h.composer.Frameworks()})
}

// GET /api/framework/:name
func (h *ContentHandler) Framework(c *gin.Context) {
	response.RespondOK(c, gin.H{"framework": h.composer.Framework(c.Param("name"))})
}

// POST /api/generate/custom
func (h *ContentHandler) GenerateCustom(c *gin.Context) {
	var req customRequest
	if !bindOptional(c, &req) {
		return
	}
	out, err := h.composer.CustomContent(req.Topic, req.ContentType, intOr(req.NumTips, defaultNumTips))
	if err != nil {
		apiErr := apiError(err)
		if apierr.StatusOf(apiErr) >= 500 {
			h.log.Error("custom content failed", "error", err)
		}
		response.RespondAPIError(c, apiErr)
		return
	}
	h.generated(c, "custom_"+out.Type)
	response.RespondOK(c, gin.H{"content": out.Payload()})
}

// GET /api/videos
func (h *ContentHandler) VideoTypes(c *gin.Context) {
	response.RespondOK(c, gin.H{"video_types": h.composer.VideoTypes()})
}

// GET /api/videos/:type/shots
func (h *ContentHandler) Shots(c *gin.Context) {
	vt, shots := h.composer.Shots(c.Param("type"))
	response.RespondOK(c, gin.H{"video_type": vt, "shots": shots})
}
