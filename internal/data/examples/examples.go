// Package examples is the creator's own hooks, tips and scripts. Entries are
// append-only and take precedence over the built-in banks.
package examples

import (
	"crypto/rand"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/yungbote/reelcraft-backend/internal/domain/content"
)

type Kind string

const (
	KindHook       Kind = "hook"
	KindTip        Kind = "tip"
	KindFullScript Kind = "full_script"
)

var Kinds = []Kind{KindHook, KindTip, KindFullScript}

var (
	ErrInvalidKind  = errors.New("invalid example kind")
	ErrInvalidEntry = errors.New("invalid example")
)

func ParseKind(s string) (Kind, error) {
	k := Kind(strings.ToLower(strings.TrimSpace(s)))
	if slices.Contains(Kinds, k) {
		return k, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidKind, s)
}

// Content is the caller-supplied record. Which fields are required depends
// on the kind.
type Content struct {
	Hook        string `json:"hook,omitempty"`
	Title       string `json:"title,omitempty"`
	Explanation string `json:"explanation,omitempty"`
	BRoll       bool   `json:"b_roll,omitempty"`
	Script      string `json:"script,omitempty"`
}

// Entry is one stored example.
type Entry struct {
	ID        string    `json:"id"`
	Kind      Kind      `json:"kind"`
	Topic     string    `json:"topic"`
	Content   Content   `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

func newID(now time.Time) string {
	id, err := ulid.New(ulid.Timestamp(now), rand.Reader)
	if err != nil {
		return ulid.Make().String()
	}
	return id.String()
}

// NewEntry validates and normalises a save request.
func NewEntry(kind Kind, topic string, c Content, now time.Time) (Entry, error) {
	if !slices.Contains(Kinds, kind) {
		return Entry{}, fmt.Errorf("%w: %q", ErrInvalidKind, kind)
	}
	topic = strings.ToLower(strings.TrimSpace(topic))
	if topic == "" {
		return Entry{}, fmt.Errorf("%w: topic is required", ErrInvalidEntry)
	}
	c.Hook = strings.TrimSpace(c.Hook)
	c.Title = strings.TrimSpace(c.Title)
	c.Explanation = strings.TrimSpace(c.Explanation)
	c.Script = strings.TrimSpace(c.Script)
	switch kind {
	case KindHook:
		if c.Hook == "" {
			return Entry{}, fmt.Errorf("%w: hook is required", ErrInvalidEntry)
		}
	case KindTip:
		if c.Title == "" || c.Explanation == "" {
			return Entry{}, fmt.Errorf("%w: title and explanation are required", ErrInvalidEntry)
		}
		c.BRoll = content.HasBRollMarker(c.Explanation)
	case KindFullScript:
		if c.Script == "" {
			return Entry{}, fmt.Errorf("%w: script is required", ErrInvalidEntry)
		}
	}
	return Entry{ID: newID(now), Kind: kind, Topic: topic, Content: c, CreatedAt: now.UTC()}, nil
}

type HookEntry struct {
	Hook string `json:"hook"`
}

type FullScript struct {
	ID     string `json:"id,omitempty"`
	Topic  string `json:"topic"`
	Script string `json:"script"`
}

// Collection is the loaded example set, keyed by topic.
type Collection struct {
	Tips        map[string][]content.Tip `json:"tips"`
	Hooks       map[string][]HookEntry   `json:"hooks"`
	FullScripts []FullScript             `json:"full_scripts"`
}

func NewCollection() Collection {
	return Collection{
		Tips:        map[string][]content.Tip{},
		Hooks:       map[string][]HookEntry{},
		FullScripts: []FullScript{},
	}
}

func (c *Collection) normalize() {
	if c.Tips == nil {
		c.Tips = map[string][]content.Tip{}
	}
	if c.Hooks == nil {
		c.Hooks = map[string][]HookEntry{}
	}
	if c.FullScripts == nil {
		c.FullScripts = []FullScript{}
	}
}

// Add appends e to the matching section.
func (c *Collection) Add(e Entry) {
	c.normalize()
	switch e.Kind {
	case KindHook:
		c.Hooks[e.Topic] = append(c.Hooks[e.Topic], HookEntry{Hook: e.Content.Hook})
	case KindTip:
		c.Tips[e.Topic] = append(c.Tips[e.Topic], content.Tip{
			Title:       e.Content.Title,
			Explanation: e.Content.Explanation,
			BRoll:       e.Content.BRoll,
			UserExample: true,
		})
	case KindFullScript:
		c.FullScripts = append(c.FullScripts, FullScript{ID: e.ID, Topic: e.Topic, Script: e.Content.Script})
	}
}

func (c Collection) Clone() Collection {
	out := NewCollection()
	for k, v := range c.Tips {
		out.Tips[k] = slices.Clone(v)
	}
	for k, v := range c.Hooks {
		out.Hooks[k] = slices.Clone(v)
	}
	out.FullScripts = append(out.FullScripts, c.FullScripts...)
	return out
}

// Counts reports the number of stored examples per kind.
func (c Collection) Counts() map[Kind]int {
	counts := map[Kind]int{KindHook: 0, KindTip: 0, KindFullScript: len(c.FullScripts)}
	for _, v := range c.Hooks {
		counts[KindHook] += len(v)
	}
	for _, v := range c.Tips {
		counts[KindTip] += len(v)
	}
	return counts
}

func fromEntries(entries []Entry) Collection {
	c := NewCollection()
	for _, e := range entries {
		c.Add(e)
	}
	return c
}
