package bus

import (
	"testing"

	"github.com/yungbote/reelcraft-backend/internal/platform/logger"
)

func TestNewRedisBusValidation(t *testing.T) {
	if _, err := NewRedisBus(nil, RedisConfig{Addr: "127.0.0.1:6379"}); err == nil {
		t.Fatalf("expected error without logger")
	}
	if _, err := NewRedisBus(logger.Nop(), RedisConfig{}); err == nil {
		t.Fatalf("expected error without addr")
	}
	if _, err := NewRedisBus(logger.Nop(), RedisConfig{Addr: "127.0.0.1:1"}); err == nil {
		t.Fatalf("expected ping failure")
	}
}

func TestDecodeEvent(t *testing.T) {
	ev, err := decodeEvent(`{"origin":"a1","backend":"redis","at":"2026-01-02T03:04:05Z"}`)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if ev.Origin != "a1" || ev.Backend != "redis" || ev.At.Year() != 2026 {
		t.Fatalf("event: %+v", ev)
	}
	for _, bad := range []string{`{`, `{"backend":"file"}`} {
		if _, err := decodeEvent(bad); err == nil {
			t.Fatalf("decodeEvent(%s): expected error", bad)
		}
	}
}
