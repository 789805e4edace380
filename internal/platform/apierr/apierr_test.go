package apierr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestStatusOf(t *testing.T) {
	wrapped := fmt.Errorf("compose: %w", BadRequest("empty_topic", errors.New("Please provide a topic")))
	if got := StatusOf(wrapped); got != http.StatusBadRequest {
		t.Fatalf("wrapped: got=%d want=%d", got, http.StatusBadRequest)
	}
	if got := StatusOf(errors.New("boom")); got != http.StatusInternalServerError {
		t.Fatalf("plain: got=%d want=%d", got, http.StatusInternalServerError)
	}
}

func TestInternalKeepsCarriedStatus(t *testing.T) {
	bad := BadRequest("invalid_kind", errors.New("Invalid example kind"))
	if got := Internal(bad); got != bad {
		t.Fatalf("Internal replaced an api error: got=%v", got)
	}
	ie := Internal(errors.New("disk full"))
	if ie.Status != http.StatusInternalServerError || ie.Code != "internal" {
		t.Fatalf("Internal: got=%d/%s", ie.Status, ie.Code)
	}
	if ie.Error() != "disk full" {
		t.Fatalf("message: got=%q", ie.Error())
	}
}
