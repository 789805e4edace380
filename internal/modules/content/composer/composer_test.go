package composer

import (
	"errors"
	"reflect"
	"slices"
	"strings"
	"testing"

	"github.com/yungbote/reelcraft-backend/internal/domain/content"
	"github.com/yungbote/reelcraft-backend/internal/modules/content/hooks"
	"github.com/yungbote/reelcraft-backend/internal/modules/content/style"
	"github.com/yungbote/reelcraft-backend/internal/modules/content/taxonomy"
	"github.com/yungbote/reelcraft-backend/internal/platform/randx"
)

type fakeExamples struct {
	hooks map[string][]string
	tips  map[string][]content.Tip
}

func (f fakeExamples) HooksFor(topic string) []string     { return f.hooks[topic] }
func (f fakeExamples) TipsFor(topic string) []content.Tip { return f.tips[topic] }

func newTestComposer(t *testing.T, seed int64, policy Policy, ex ExampleSource) *Composer {
	t.Helper()
	return New(Options{Source: randx.New(seed), Policy: policy, Examples: ex})
}

func userTips(n int) []content.Tip {
	out := make([]content.Tip, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, content.Tip{Title: "mine " + string(rune('a'+i)), Explanation: "my own words"})
	}
	return out
}

func TestComposeReelScenario(t *testing.T) {
	c := newTestComposer(t, 42, DefaultPolicy(), nil)
	reel := c.ComposeReel("building confidence", 3)

	if reel.Topic != "building confidence" {
		t.Fatalf("topic: got=%q", reel.Topic)
	}
	if reel.Duration != "55-60 seconds" || reel.ContentType != "Instagram Reel" {
		t.Fatalf("header: got=%q/%q", reel.ContentType, reel.Duration)
	}
	s := reel.Structure
	if len(s.Tips) != 3 {
		t.Fatalf("tips: got=%d want=3", len(s.Tips))
	}
	if s.Hook.Timestamp != "0-3 seconds" {
		t.Fatalf("hook window: got=%q", s.Hook.Timestamp)
	}
	if s.Intro.Timestamp != "3-8 seconds" {
		t.Fatalf("intro window: got=%q", s.Intro.Timestamp)
	}
	if s.Transition.Timestamp != "8-12 seconds" {
		t.Fatalf("transition window: got=%q", s.Transition.Timestamp)
	}
	if s.Tips[2].Timestamp != "38-51 seconds" {
		t.Fatalf("third tip window: got=%q", s.Tips[2].Timestamp)
	}
	if s.CTA.Timestamp != "55-60 seconds" {
		t.Fatalf("cta window: got=%q", s.CTA.Timestamp)
	}
	for i, tip := range s.Tips {
		if tip.Number != i+1 {
			t.Fatalf("tip number[%d]: got=%d", i, tip.Number)
		}
	}

	parts := []string{s.Hook.Script, s.Intro.Script, s.Transition.Script}
	for _, tip := range s.Tips {
		parts = append(parts, tip.Script)
	}
	parts = append(parts, s.CTA.Script)
	if want := strings.Join(parts, " "); reel.FullScript != want {
		t.Fatalf("full_script mismatch:\n got=%q\nwant=%q", reel.FullScript, want)
	}
	if CompileScript(reel) != reel.FullScript {
		t.Fatalf("CompileScript does not reproduce full_script")
	}
	pos := 0
	for _, p := range parts {
		idx := strings.Index(reel.FullScript[pos:], p)
		if idx < 0 {
			t.Fatalf("segment %q out of order", p)
		}
		pos += idx + len(p)
	}
	if !slices.Contains(style.ActionOptions("building confidence"), actionFrom(t, s.Transition.Script)) {
		t.Fatalf("transition action not curated: %q", s.Transition.Script)
	}
}

func actionFrom(t *testing.T, script string) string {
	t.Helper()
	for _, opt := range style.ActionOptions("building confidence") {
		if strings.HasSuffix(script, opt+".") {
			return opt
		}
	}
	return ""
}

func TestComposeReelDeterministicWithSeed(t *testing.T) {
	a := newTestComposer(t, 99, DefaultPolicy(), nil).ComposeReel("", 4)
	b := newTestComposer(t, 99, DefaultPolicy(), nil).ComposeReel("", 4)
	if !reflect.DeepEqual(a, b) {
		t.Fatalf("same seed produced different reels")
	}
	if _, ok := taxonomy.Default().CategoryOf(a.Topic); !ok {
		t.Fatalf("resolved topic %q not in taxonomy", a.Topic)
	}
}

func TestComposeReelNonPositiveTips(t *testing.T) {
	c := newTestComposer(t, 1, DefaultPolicy(), nil)
	for _, n := range []int{0, -3} {
		reel := c.ComposeReel("unknown topic", n)
		if reel.Structure.Tips == nil || len(reel.Structure.Tips) != 0 {
			t.Fatalf("n=%d: tips=%v want empty", n, reel.Structure.Tips)
		}
		if !slices.Contains(style.TransitionOptions(n, actionOf(reel.Structure.Transition.Script, n)), reel.Structure.Transition.Script) {
			t.Fatalf("n=%d: transition %q does not quote count", n, reel.Structure.Transition.Script)
		}
		if reel.FullScript != CompileScript(reel) {
			t.Fatalf("n=%d: full_script mismatch", n)
		}
	}
}

func actionOf(script string, n int) string {
	for _, opt := range style.ActionOptions("unknown topic") {
		for _, s := range style.TransitionOptions(n, opt) {
			if s == script {
				return opt
			}
		}
	}
	return ""
}

func TestCTAPolicy(t *testing.T) {
	c := newTestComposer(t, 3, Policy{SignatureCTAProbability: 1}, nil)
	for i := 0; i < 10; i++ {
		if got := c.ComposeReel("time management", 2).Structure.CTA.Script; got != c.Style().SignatureCTA {
			t.Fatalf("cta: got=%q want signature", got)
		}
	}
	r := newTestComposer(t, 3, Policy{SignatureCTAProbability: 0}, nil)
	table := r.Style().CTATable()
	for i := 0; i < 20; i++ {
		got := r.ComposeReel("time management", 2).Structure.CTA.Script
		found := false
		for _, v := range table {
			found = found || v == got
		}
		if !found {
			t.Fatalf("cta %q not in table", got)
		}
	}
}

func TestSelectHookUserOverride(t *testing.T) {
	ex := fakeExamples{hooks: map[string][]string{"setting boundaries": {"MY HOOK 1", "MY HOOK 2"}}}

	always := newTestComposer(t, 5, Policy{UserHookProbability: 1}, ex)
	for i := 0; i < 20; i++ {
		h := always.Hook("setting boundaries")
		if h.Method != MethodUserExample || !strings.HasPrefix(h.Text, "MY HOOK") {
			t.Fatalf("expected user hook, got %+v", h)
		}
	}

	never := newTestComposer(t, 5, Policy{UserHookProbability: 0}, ex)
	lib := hooks.NewLibrary()
	space := map[string]bool{}
	for _, m := range hooks.Methods {
		for k := range lib.Outputs("setting boundaries", m) {
			space[k] = true
		}
	}
	for i := 0; i < 50; i++ {
		got := never.SelectHook("setting boundaries")
		if !space[got] {
			t.Fatalf("hook %q not in generated output space", got)
		}
	}
}

func TestHookObserver(t *testing.T) {
	var seen []hooks.Method
	c := New(Options{
		Source: randx.New(8),
		Policy: DefaultPolicy(),
		OnHook: func(m hooks.Method, _ bool) { seen = append(seen, m) },
	})
	c.ComposeReel("public speaking", 1)
	if len(seen) != 1 {
		t.Fatalf("observer calls: got=%d want=1", len(seen))
	}
}

func TestSelectTips(t *testing.T) {
	t.Run("user only when enough", func(t *testing.T) {
		ex := fakeExamples{tips: map[string][]content.Tip{"time management": userTips(4)}}
		c := newTestComposer(t, 2, DefaultPolicy(), ex)
		for i := 0; i < 20; i++ {
			got := c.SelectTips("time management", 3)
			if len(got) != 3 {
				t.Fatalf("len: got=%d want=3", len(got))
			}
			for _, ft := range got {
				if !ft.UserExample {
					t.Fatalf("built-in tip %q leaked into user-only selection", ft.Title)
				}
			}
		}
	})

	t.Run("pooled when short", func(t *testing.T) {
		ex := fakeExamples{tips: map[string][]content.Tip{"time management": userTips(1)}}
		c := newTestComposer(t, 2, DefaultPolicy(), ex)
		got := c.SelectTips("time management", 4)
		if len(got) != 4 {
			t.Fatalf("len: got=%d want=4", len(got))
		}
		titles := map[string]bool{}
		for _, ft := range got {
			if titles[ft.Title] {
				t.Fatalf("duplicate tip %q", ft.Title)
			}
			titles[ft.Title] = true
		}
	})

	t.Run("pool caps count", func(t *testing.T) {
		c := newTestComposer(t, 2, DefaultPolicy(), nil)
		if got := c.SelectTips("dealing with negative people", 10); len(got) != 3 {
			t.Fatalf("bank topic: got=%d want=3", len(got))
		}
		if got := c.SelectTips("knitting", 20); len(got) != 8 {
			t.Fatalf("generic topic: got=%d want=8", len(got))
		}
	})

	t.Run("windows", func(t *testing.T) {
		c := newTestComposer(t, 2, DefaultPolicy(), nil)
		for _, topic := range []string{"building confidence", "knitting", "", "{{.x}}", "마음챙김"} {
			for count := 0; count <= 6; count++ {
				got := c.SelectTips(topic, count)
				if len(got) > count {
					t.Fatalf("topic %q count %d: got %d tips", topic, count, len(got))
				}
				for i, ft := range got {
					if ft.Number != i+1 {
						t.Fatalf("number: got=%d want=%d", ft.Number, i+1)
					}
				}
			}
		}
	})
}

func TestContentHooks(t *testing.T) {
	c := newTestComposer(t, 6, DefaultPolicy(), nil)
	mindset, _ := taxonomy.Default().Topics(taxonomy.Mindset)
	got := c.ContentHooks("mindset", 5)
	if len(got) != 5 {
		t.Fatalf("len: got=%d want=5", len(got))
	}
	for i, h := range got {
		if h.Category != "mindset" {
			t.Fatalf("category: got=%q", h.Category)
		}
		if !slices.Contains(mindset, h.Topic) {
			t.Fatalf("topic %q not in mindset", h.Topic)
		}
		if h.Number != i+1 || h.Hook == "" || h.UseCase == "" {
			t.Fatalf("record incomplete: %+v", h)
		}
	}

	for _, cat := range []string{"", "not-a-category"} {
		list := c.ContentHooks(cat, 3)
		if len(list) != 3 {
			t.Fatalf("category %q: len=%d", cat, len(list))
		}
		topics, ok := taxonomy.Default().Topics(list[0].Category)
		if !ok {
			t.Fatalf("category %q resolved to unknown %q", cat, list[0].Category)
		}
		for _, h := range list {
			if !slices.Contains(topics, h.Topic) {
				t.Fatalf("topic %q not in resolved category %q", h.Topic, h.Category)
			}
		}
	}
	if got := c.ContentHooks("mindset", 0); len(got) != 0 {
		t.Fatalf("count 0: got=%d", len(got))
	}
}

func TestQuickIdeas(t *testing.T) {
	c := newTestComposer(t, 4, DefaultPolicy(), nil)
	ideas := c.QuickIdeas(3)
	if len(ideas) != 3 {
		t.Fatalf("len: got=%d want=3", len(ideas))
	}
	seen := map[string]bool{}
	for _, idea := range ideas {
		if seen[idea.Topic] {
			t.Fatalf("duplicate topic %q", idea.Topic)
		}
		seen[idea.Topic] = true
		if idea.CTA != c.Style().SignatureCTA || idea.Format == "" {
			t.Fatalf("idea incomplete: %+v", idea)
		}
	}
	if got := c.QuickIdeas(100); len(got) != 8 {
		t.Fatalf("capped: got=%d want=8", len(got))
	}
}

func TestCustomContent(t *testing.T) {
	c := newTestComposer(t, 10, DefaultPolicy(), nil)

	for _, blank := range []string{"", "   ", "\t\n"} {
		if _, err := c.CustomContent(blank, "reel", 3); !errors.Is(err, ErrEmptyTopic) {
			t.Fatalf("blank %q: err=%v want ErrEmptyTopic", blank, err)
		}
	}
	if _, err := c.CustomContent("focus", "podcast", 3); !errors.Is(err, ErrInvalidContentType) {
		t.Fatalf("bad type: err=%v", err)
	}

	out, err := c.CustomContent("  Deep Work ", "", 2)
	if err != nil {
		t.Fatalf("reel: %v", err)
	}
	if out.Type != ContentTypeReel || out.Reel == nil {
		t.Fatalf("default type: got=%+v", out)
	}
	if out.Reel.Topic != "deep work" || out.Reel.OriginalInput != "  Deep Work " || !out.Reel.CustomTopic {
		t.Fatalf("reel fields: topic=%q input=%q", out.Reel.Topic, out.Reel.OriginalInput)
	}
	if len(out.Reel.Structure.Tips) != 2 {
		t.Fatalf("reel tips: got=%d", len(out.Reel.Structure.Tips))
	}

	out, err = c.CustomContent("Deep Work", "hooks", 4)
	if err != nil || out.Hooks == nil {
		t.Fatalf("hooks: out=%+v err=%v", out, err)
	}
	if len(out.Hooks.Hooks) != 4 || out.Hooks.Topic != "deep work" {
		t.Fatalf("hooks: %+v", out.Hooks)
	}

	out, err = c.CustomContent("Deep Work", "quick_idea", 3)
	if err != nil || out.QuickIdea == nil {
		t.Fatalf("quick idea: out=%+v err=%v", out, err)
	}
	q := out.QuickIdea
	if q.Format != "60-second reel or short-form video" || q.SuggestedFramework != "Problem-Solution Format" || q.CTA != c.Style().SignatureCTA {
		t.Fatalf("quick idea fields: %+v", q)
	}
	if out.Payload() != q {
		t.Fatalf("payload should be the quick idea")
	}
}

func TestFrameworkAndVideos(t *testing.T) {
	c := newTestComposer(t, 12, DefaultPolicy(), nil)
	if f := c.Framework("listicle"); f.Name != "Listicle Framework" {
		t.Fatalf("framework: got=%q", f.Name)
	}
	if f := c.Framework("no-such"); f.Name == "" || len(f.Structure) == 0 {
		t.Fatalf("fallback framework empty")
	}
	if len(c.Frameworks()) != 15 {
		t.Fatalf("frameworks: got=%d", len(c.Frameworks()))
	}
	if _, shots := c.Shots("hologram"); len(shots) != 0 {
		t.Fatalf("unknown video type shots: got=%d", len(shots))
	}
	if vt, shots := c.Shots("talking_head"); vt.Name == "" || len(shots) == 0 {
		t.Fatalf("talking_head: vt=%+v shots=%d", vt, len(shots))
	}
}

func TestRandomTopic(t *testing.T) {
	c := newTestComposer(t, 11, DefaultPolicy(), nil)
	mindset, _ := taxonomy.Default().Topics(taxonomy.Mindset)
	got, ok := c.RandomTopic(taxonomy.Mindset)
	if !ok || !slices.Contains(mindset, got) {
		t.Fatalf("RandomTopic(mindset): got=%q ok=%v", got, ok)
	}
	if _, ok := c.RandomTopic("astrology"); ok {
		t.Fatalf("unknown category reported ok")
	}
}

func TestUserTipVisualFollowsMarkers(t *testing.T) {
	ex := fakeExamples{tips: map[string][]content.Tip{"focus": {
		{Title: "plain", Explanation: "no overlay here", BRoll: true},
		{Title: "overlay", Explanation: "[start B-roll] desk shot [end B-roll]"},
	}}}
	c := newTestComposer(t, 3, DefaultPolicy(), ex)
	for _, ft := range c.SelectTips("focus", 2) {
		want := "Talking Head"
		if ft.Title == "overlay" {
			want = "Talking Head with B-roll overlay"
		}
		if ft.Visual != want {
			t.Fatalf("%s visual: got=%q want=%q", ft.Title, ft.Visual, want)
		}
	}
}
