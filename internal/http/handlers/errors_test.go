package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/yungbote/reelcraft-backend/internal/data/examples"
	"github.com/yungbote/reelcraft-backend/internal/modules/content/composer"
	"github.com/yungbote/reelcraft-backend/internal/platform/apierr"
)

func TestAPIErrorMapping(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
		msg    string
	}{
		{"empty topic", fmt.Errorf("custom: %w", composer.ErrEmptyTopic), http.StatusBadRequest, "Please provide a topic"},
		{"content type", composer.ErrInvalidContentType, http.StatusBadRequest, "Invalid content type"},
		{"kind", fmt.Errorf("%w: %q", examples.ErrInvalidKind, "poem"), http.StatusBadRequest, "Invalid example kind"},
		{"other", errors.New("boom"), http.StatusInternalServerError, "boom"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := apiError(tc.err)
			if s := apierr.StatusOf(got); s != tc.status {
				t.Fatalf("status: got=%d want=%d", s, tc.status)
			}
			if got.Error() != tc.msg {
				t.Fatalf("message: got=%q want=%q", got.Error(), tc.msg)
			}
		})
	}
}
