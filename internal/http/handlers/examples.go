package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/yungbote/reelcraft-backend/internal/data/examples"
	"github.com/yungbote/reelcraft-backend/internal/http/response"
	"github.com/yungbote/reelcraft-backend/internal/platform/logger"
)

type ExamplesHandler struct {
	log   *logger.Logger
	store *examples.Store
}

func NewExamplesHandler(log *logger.Logger, store *examples.Store) *ExamplesHandler {
	return &ExamplesHandler{
		log:   log.With("handler", "ExamplesHandler"),
		store: store,
	}
}

type saveExampleRequest struct {
	Kind    string           `json:"kind"`
	Topic   string           `json:"topic"`
	Content examples.Content `json:"content"`
}

// GET /api/examples
func (h *ExamplesHandler) List(c *gin.Context) {
	response.RespondOK(c, gin.H{"examples": h.store.Examples()})
}

// POST /api/examples
func (h *ExamplesHandler) Save(c *gin.Context) {
	var req saveExampleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondAPIError(c, errInvalidBody)
		return
	}
	kind, err := examples.ParseKind(req.Kind)
	if err != nil {
		response.RespondAPIError(c, apiError(err))
		return
	}
	saved := h.store.SaveExample(c.Request.Context(), kind, req.Topic, req.Content)
	if !saved {
		h.log.Warn("example not saved", "kind", kind, "topic", req.Topic)
	}
	response.RespondOK(c, gin.H{"saved": saved})
}
