package examples

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/yungbote/reelcraft-backend/internal/domain/content"
	"github.com/yungbote/reelcraft-backend/internal/platform/logger"
)

// Backend persists examples. Append receives the entry and the full
// collection with the entry already applied; a backend may persist either.
type Backend interface {
	Name() string
	Load(ctx context.Context) (Collection, error)
	Append(ctx context.Context, e Entry, all Collection) error
	Close() error
}

// Store caches the collection in memory and serialises writers. Loads and
// saves never return errors: failures are logged and reported as an empty
// collection or false.
type Store struct {
	log     *logger.Logger
	backend Backend
	now     func() time.Time
	onSave  func(backend string, ok bool)

	mu   sync.RWMutex
	coll Collection
}

func NewStore(log *logger.Logger, backend Backend) *Store {
	if log == nil {
		log = logger.Nop()
	}
	return &Store{
		log:     log.With("service", "ExampleStore", "backend", backend.Name()),
		backend: backend,
		now:     time.Now,
		coll:    NewCollection(),
	}
}

// OnSave registers a callback run after every save attempt.
func (s *Store) OnSave(fn func(backend string, ok bool)) { s.onSave = fn }

func (s *Store) Backend() string { return s.backend.Name() }

// LoadExamples reloads from the backend. A failed load leaves the store
// empty. Saves wait for the load so none is lost in the swap.
func (s *Store) LoadExamples(ctx context.Context) Collection {
	s.mu.Lock()
	coll, err := s.backend.Load(ctx)
	if err != nil {
		s.log.Warn("load examples failed; starting empty", "error", err)
		coll = NewCollection()
	}
	coll.normalize()
	s.coll = coll
	s.mu.Unlock()

	counts := coll.Counts()
	s.log.Info("examples loaded", "hooks", counts[KindHook], "tips", counts[KindTip], "full_scripts", counts[KindFullScript])
	return coll.Clone()
}

// Refresh reloads from the backend but keeps the cached collection when the
// load fails.
func (s *Store) Refresh(ctx context.Context) (Collection, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	coll, err := s.backend.Load(ctx)
	if err != nil {
		return s.coll.Clone(), fmt.Errorf("refresh examples: %w", err)
	}
	coll.normalize()
	s.coll = coll
	return coll.Clone(), nil
}

// Examples returns a copy of the cached collection.
func (s *Store) Examples() Collection {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.coll.Clone()
}

// SaveExample validates, appends and persists one example. On a backend
// failure the in-memory append is rolled back.
func (s *Store) SaveExample(ctx context.Context, kind Kind, topic string, c Content) bool {
	ok := s.save(ctx, kind, topic, c)
	if s.onSave != nil {
		s.onSave(s.backend.Name(), ok)
	}
	return ok
}

func (s *Store) save(ctx context.Context, kind Kind, topic string, c Content) bool {
	e, err := NewEntry(kind, topic, c, s.now())
	if err != nil {
		s.log.Warn("rejecting example", "kind", kind, "error", err)
		return false
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.coll.Clone()
	next.Add(e)
	if err := s.backend.Append(ctx, e, next); err != nil {
		s.log.Error("save example failed", "kind", kind, "topic", e.Topic, "error", err)
		return false
	}
	s.coll = next
	s.log.Debug("example saved", "id", e.ID, "kind", kind, "topic", e.Topic)
	return true
}

// HooksFor returns the stored hook strings for topic.
func (s *Store) HooksFor(topic string) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	entries := s.coll.Hooks[topic]
	out := make([]string, 0, len(entries))
	for _, h := range entries {
		if h.Hook != "" {
			out = append(out, h.Hook)
		}
	}
	return out
}

// TipsFor returns the stored tips for topic, each marked as a user example.
func (s *Store) TipsFor(topic string) []content.Tip {
	s.mu.RLock()
	defer s.mu.RUnlock()
	stored := s.coll.Tips[topic]
	out := make([]content.Tip, 0, len(stored))
	for _, t := range stored {
		t.UserExample = true
		out = append(out, t)
	}
	return out
}

func (s *Store) Close() error { return s.backend.Close() }
