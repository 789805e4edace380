package response

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/reelcraft-backend/internal/platform/apierr"
)

func render(t *testing.T, fn func(c *gin.Context)) (int, map[string]any) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	fn(c)
	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v (%s)", err, rec.Body.String())
	}
	return rec.Code, body
}

func TestRespondOKMergesPayload(t *testing.T) {
	code, body := render(t, func(c *gin.Context) {
		RespondOK(c, gin.H{"topics": []string{"a"}, "success": false})
	})
	if code != http.StatusOK {
		t.Fatalf("status: got=%d want=%d", code, http.StatusOK)
	}
	if body["success"] != true {
		t.Fatalf("success: got=%v want=true", body["success"])
	}
	if _, ok := body["topics"]; !ok {
		t.Fatalf("missing topics: %v", body)
	}
}

func TestRespondAPIError(t *testing.T) {
	code, body := render(t, func(c *gin.Context) {
		RespondAPIError(c, apierr.BadRequest("empty_topic", errors.New("Please provide a topic")))
	})
	if code != http.StatusBadRequest {
		t.Fatalf("status: got=%d want=%d", code, http.StatusBadRequest)
	}
	if body["success"] != false || body["error"] != "Please provide a topic" {
		t.Fatalf("body: %v", body)
	}

	code, _ = render(t, func(c *gin.Context) { RespondAPIError(c, errors.New("boom")) })
	if code != http.StatusInternalServerError {
		t.Fatalf("plain error status: got=%d want=%d", code, http.StatusInternalServerError)
	}
}
