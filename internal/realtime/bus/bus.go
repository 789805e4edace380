package bus

import (
	"context"
	"time"
)

// Event announces that an instance changed the shared example store.
type Event struct {
	Origin  string    `json:"origin"`
	Backend string    `json:"backend"`
	At      time.Time `json:"at"`
}

type Bus interface {
	Publish(ctx context.Context, ev Event) error
	StartForwarder(ctx context.Context, onEvent func(ev Event)) error
	Close() error
}
