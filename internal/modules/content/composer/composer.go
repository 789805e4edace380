package composer

import (
	"errors"

	"github.com/yungbote/reelcraft-backend/internal/domain/content"
	"github.com/yungbote/reelcraft-backend/internal/modules/content/frameworks"
	"github.com/yungbote/reelcraft-backend/internal/modules/content/hooks"
	"github.com/yungbote/reelcraft-backend/internal/modules/content/style"
	"github.com/yungbote/reelcraft-backend/internal/modules/content/taxonomy"
	"github.com/yungbote/reelcraft-backend/internal/modules/content/tips"
	"github.com/yungbote/reelcraft-backend/internal/modules/content/videos"
	"github.com/yungbote/reelcraft-backend/internal/platform/logger"
	"github.com/yungbote/reelcraft-backend/internal/platform/randx"
)

var (
	ErrEmptyTopic         = errors.New("please provide a topic")
	ErrInvalidContentType = errors.New("invalid content type")
)

const (
	ContentTypeReel      = "reel"
	ContentTypeHooks     = "hooks"
	ContentTypeQuickIdea = "quick_idea"

	// MethodUserExample marks hooks taken from the example store.
	MethodUserExample hooks.Method = "user_example"

	reelContentType = "Instagram Reel"
	reelDuration    = "55-60 seconds"
	useCase         = "Instagram Reel, TikTok, YouTube Short"
	ideaFormat      = "60-second reel or short-form video"
	suggestedFrame  = "Problem-Solution Format"
)

var ContentTypes = []string{ContentTypeReel, ContentTypeHooks, ContentTypeQuickIdea}

// Policy holds the probabilities behind the randomized branches. Setting a
// value to 0 or 1 makes the branch deterministic.
type Policy struct {
	UserHookProbability     float64
	SignatureCTAProbability float64
}

func DefaultPolicy() Policy {
	return Policy{UserHookProbability: 0.30, SignatureCTAProbability: 0.85}
}

// ExampleSource is the read side of the user example store.
type ExampleSource interface {
	HooksFor(topic string) []string
	TipsFor(topic string) []content.Tip
}

// HookObserver is told how every hook was produced.
type HookObserver func(method hooks.Method, fallbackUsed bool)

type Options struct {
	Log      *logger.Logger
	Source   randx.Source
	Policy   Policy
	Examples ExampleSource
	Style    *style.Profile
	OnHook   HookObserver
}

// Composer assembles reels, hook lists and ideas from the read-only
// catalogs and the example store.
type Composer struct {
	log        *logger.Logger
	src        randx.Source
	policy     Policy
	examples   ExampleSource
	onHook     HookObserver
	taxonomy   *taxonomy.Taxonomy
	hooks      *hooks.Library
	tips       *tips.Bank
	frameworks *frameworks.Catalog
	videos     *videos.Library
	style      *style.Profile
}

func New(opts Options) *Composer {
	log := opts.Log
	if log == nil {
		log = logger.Nop()
	}
	var src randx.Source
	if opts.Source == nil {
		src = randx.NewLocked(0)
	} else {
		src = randx.Wrap(opts.Source)
	}
	profile := opts.Style
	if profile == nil {
		profile = style.Default()
	}
	return &Composer{
		log:        log.With("service", "Composer"),
		src:        src,
		policy:     opts.Policy,
		examples:   opts.Examples,
		onHook:     opts.OnHook,
		taxonomy:   taxonomy.Default(),
		hooks:      hooks.NewLibrary(),
		tips:       tips.DefaultBank(),
		frameworks: frameworks.Default(),
		videos:     videos.Default(),
		style:      profile.WithSignatureProbability(opts.Policy.SignatureCTAProbability),
	}
}

func (c *Composer) Policy() Policy { return c.policy }

func (c *Composer) Style() *style.Profile { return c.style }

func (c *Composer) Topics() map[string][]string { return c.taxonomy.All() }

func (c *Composer) Categories() []string { return c.taxonomy.Categories() }

// RandomTopic picks a topic from category. ok is false for unknown categories.
func (c *Composer) RandomTopic(category string) (string, bool) {
	topics, ok := c.taxonomy.Topics(category)
	if !ok || len(topics) == 0 {
		return "", false
	}
	return randx.Pick(c.src, topics), true
}

// ResolveTopic returns topic, or a random taxonomy topic when blank.
func (c *Composer) ResolveTopic(topic string) string {
	return c.taxonomy.Resolve(c.src, topic)
}

// Framework returns the named framework, or a random one for blank or
// unknown names.
func (c *Composer) Framework(name string) content.Framework {
	return c.frameworks.Get(c.src, name)
}

func (c *Composer) Frameworks() []content.Framework { return c.frameworks.All() }

func (c *Composer) VideoTypes() []content.VideoType { return c.videos.List() }

// Shots returns the suggested shots for a video type; unknown types yield an
// empty list.
func (c *Composer) Shots(videoType string) (content.VideoType, []content.Shot) {
	shots, _ := c.videos.Shots(videoType)
	vt, _ := c.videos.Get(videoType)
	return vt, shots
}
