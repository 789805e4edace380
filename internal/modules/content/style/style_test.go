package style

import (
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/yungbote/reelcraft-backend/internal/platform/randx"
)

const signature = "If you found this helpful, follow along and share this with someone who might need it today. Let's grow together."

func TestDefaultProfile(t *testing.T) {
	p := Default()
	if p.Name != "Dorian" {
		t.Fatalf("name: got=%q", p.Name)
	}
	if p.SignatureCTA != signature {
		t.Fatalf("signature: got=%q", p.SignatureCTA)
	}
	if p.CTAPolicy.SignatureProbability != 0.85 {
		t.Fatalf("signature probability: got=%v", p.CTAPolicy.SignatureProbability)
	}
	want := "Hi my name is Dorian. I'm a senior project manager for a major airline by day and by night I share content with thousands of people focused on personal growth and development."
	if p.CanonicalIntro() != want {
		t.Fatalf("canonical intro: got=%q", p.CanonicalIntro())
	}
	opts := p.IntroOptions()
	if len(opts) < 2 || opts[0] != want {
		t.Fatalf("intro options: got=%v", opts)
	}
	src := randx.New(3)
	for i := 0; i < 20; i++ {
		if got := p.Intro(src); !slices.Contains(opts, got) {
			t.Fatalf("intro %q not in options", got)
		}
	}
	kinds := p.CTAKinds()
	for _, k := range []string{KindStandard, "engagement", "save", "share", "follow", "comment"} {
		if !slices.Contains(kinds, k) {
			t.Fatalf("missing cta kind %q in %v", k, kinds)
		}
	}
}

func TestCTAPrecedence(t *testing.T) {
	p := Default()
	src := randx.New(5)

	always := p.WithSignatureProbability(1)
	if got := always.CTA(src, KindStandard); got != signature {
		t.Fatalf("standard: got=%q", got)
	}
	if got := always.CTA(src, "save"); got != p.CTAs["save"] {
		t.Fatalf("save: got=%q", got)
	}
	if got := always.CTA(src, "unknown"); got != signature {
		t.Fatalf("unknown kind: got=%q", got)
	}
	if got := always.CTA(src, ""); got != signature {
		t.Fatalf("blank kind: got=%q", got)
	}

	never := p.WithSignatureProbability(0)
	table := never.CTATable()
	seen := map[string]bool{}
	for i := 0; i < 400; i++ {
		got := never.CTA(src, "save")
		found := false
		for _, v := range table {
			if v == got {
				found = true
			}
		}
		if !found {
			t.Fatalf("random cta %q not in table", got)
		}
		seen[got] = true
	}
	if len(seen) < 2 {
		t.Fatalf("random branch never varied: %v", seen)
	}
	if p.CTAPolicy.SignatureProbability != 0.85 {
		t.Fatalf("WithSignatureProbability mutated receiver")
	}
}

func TestLoadOverlay(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "profile.yaml")
	body := "name: Sam\nctas:\n  podcast: \"Listen to the full episode.\"\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	p, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if p.Name != "Sam" {
		t.Fatalf("name: got=%q", p.Name)
	}
	if p.SignatureCTA != signature {
		t.Fatalf("signature should be inherited: got=%q", p.SignatureCTA)
	}
	if p.CTAs["podcast"] == "" || p.CTAs["save"] == "" {
		t.Fatalf("ctas not merged: %v", p.CTAs)
	}
	if !strings.Contains(p.IntroOptions()[0], "Sam") {
		t.Fatalf("intro not re-rendered: %q", p.IntroOptions()[0])
	}
	if _, ok := Default().CTAs["podcast"]; ok {
		t.Fatalf("Load leaked into default profile")
	}
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()
	cases := []struct {
		name string
		body string
	}{
		{"bad yaml", "name: [unclosed"},
		{"bad intro", "intros:\n  - \"Hi {{.nickname}}\"\n"},
		{"blank signature", "signature_cta: \"\"\n"},
		{"bad probability", "cta_policy:\n  signature_probability: 1.5\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(dir, strings.ReplaceAll(tc.name, " ", "_")+".yaml")
			if err := os.WriteFile(path, []byte(tc.body), 0o644); err != nil {
				t.Fatalf("write: %v", err)
			}
			if _, err := Load(path); err == nil {
				t.Fatalf("expected error")
			}
		})
	}
	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Fatalf("expected error for missing file")
	}
	if p, err := Load("  "); err != nil || p.Name != "Dorian" {
		t.Fatalf("blank path: p=%v err=%v", p, err)
	}
}

func TestAction(t *testing.T) {
	src := randx.New(9)
	curated := ActionOptions("building confidence")
	if !slices.Contains(curated, "boost your confidence") {
		t.Fatalf("curated options: %v", curated)
	}
	generic := ActionOptions("knot_tying")
	if len(generic) != 5 || generic[0] != "improve your knot tying" {
		t.Fatalf("generic options: %v", generic)
	}
	for _, topic := range []string{"building confidence", "knot_tying", "", "{x}"} {
		opts := ActionOptions(topic)
		for i := 0; i < 20; i++ {
			if got := Action(src, topic); !slices.Contains(opts, got) {
				t.Fatalf("action %q for %q not in %v", got, topic, opts)
			}
		}
	}
}

func TestTransition(t *testing.T) {
	src := randx.New(1)
	for _, n := range []int{3, 0, -2} {
		opts := TransitionOptions(n, "master focus")
		if len(opts) != 5 {
			t.Fatalf("options: got=%d want=5", len(opts))
		}
		tr := NewTransition(src, n, "master focus")
		if !slices.Contains(opts, tr.Script) {
			t.Fatalf("script %q not in options", tr.Script)
		}
		if !slices.Contains(TransitionVisuals(), tr.Visual) {
			t.Fatalf("visual %q unknown", tr.Visual)
		}
	}
	if got := TransitionOptions(3, "boost your confidence")[0]; got != "[start B-roll] Whether in your personal life or professional journey [end B-roll] here are 3 ways to boost your confidence." {
		t.Fatalf("canonical transition: got=%q", got)
	}
}
