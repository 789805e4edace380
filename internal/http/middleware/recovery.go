package middleware

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/reelcraft-backend/internal/http/response"
	"github.com/yungbote/reelcraft-backend/internal/platform/ctxutil"
	"github.com/yungbote/reelcraft-backend/internal/platform/logger"
)

var errInternal = errors.New("internal server error")

// Recovery turns a handler panic into the 500 failure envelope.
func Recovery(log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if log != nil {
				log.Error("panic recovered",
					"panic", fmt.Sprint(rec),
					"path", c.Request.URL.Path,
					"request_id", ctxutil.RequestID(c.Request.Context()),
				)
			}
			if c.Writer.Written() {
				c.Abort()
				return
			}
			response.RespondError(c, http.StatusInternalServerError, "internal", errInternal)
			c.Abort()
		}()
		c.Next()
	}
}
