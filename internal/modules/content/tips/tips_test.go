package tips

import (
	"fmt"
	"strings"
	"testing"

	"github.com/yungbote/reelcraft-backend/internal/domain/content"
	"github.com/yungbote/reelcraft-backend/internal/platform/randx"
)

func TestFormatWindowsAndNumbering(t *testing.T) {
	in := GenericAll("time_management")
	out := Format(in)
	if len(out) != len(in) {
		t.Fatalf("len: got=%d want=%d", len(out), len(in))
	}
	for i, ft := range out {
		if ft.Number != i+1 {
			t.Fatalf("number[%d]: got=%d want=%d", i, ft.Number, i+1)
		}
		want := fmt.Sprintf("%d-%d seconds", 12+13*i, 25+13*i)
		if ft.Timestamp != want {
			t.Fatalf("timestamp[%d]: got=%q want=%q", i, ft.Timestamp, want)
		}
		wantScript := fmt.Sprintf("%d, %s. %s", i+1, in[i].Title, in[i].Explanation)
		if ft.Script != wantScript {
			t.Fatalf("script[%d]: got=%q want=%q", i, ft.Script, wantScript)
		}
	}
	if Window(2) != "38-51 seconds" {
		t.Fatalf("third window: got=%q", Window(2))
	}
}

func TestFormatVisual(t *testing.T) {
	out := Format([]content.Tip{
		{Title: "a", Explanation: "plain"},
		{Title: "b", Explanation: "[start B-roll] x [end B-roll]", BRoll: true},
	})
	if out[0].Visual != VisualTalkingHead {
		t.Fatalf("visual[0]: got=%q", out[0].Visual)
	}
	if out[1].Visual != VisualTalkingHeadBRoll {
		t.Fatalf("visual[1]: got=%q", out[1].Visual)
	}
	if len(Format(nil)) != 0 {
		t.Fatalf("expected empty format for nil input")
	}
}

func TestBankBRollMatchesMarkers(t *testing.T) {
	b := DefaultBank()
	for _, topic := range b.Topics() {
		tips, ok := b.Lookup(topic)
		if !ok || len(tips) == 0 {
			t.Fatalf("topic %q: empty", topic)
		}
		for _, tp := range tips {
			if tp.BRoll != content.HasBRollMarker(tp.Explanation) {
				t.Fatalf("topic %q tip %q: b_roll mismatch", topic, tp.Title)
			}
			if tp.UserExample {
				t.Fatalf("built-in tip %q marked as user example", tp.Title)
			}
		}
	}
}

func TestExpertiseOverridesSample(t *testing.T) {
	b := DefaultBank()
	tips, ok := b.Lookup("building confidence")
	if !ok {
		t.Fatalf("building confidence missing")
	}
	if len(tips) != 5 {
		t.Fatalf("len: got=%d want=5", len(tips))
	}
	if tips[0].Title != "confidence comes from doing, not feeling" {
		t.Fatalf("first tip: got=%q", tips[0].Title)
	}
	neg, ok := b.Lookup("dealing with negative people")
	if !ok || len(neg) != 3 {
		t.Fatalf("sample topic: ok=%v len=%d", ok, len(neg))
	}
	if b.Has("underwater basket weaving") {
		t.Fatalf("unexpected topic in bank")
	}
}

func TestLookupReturnsCopy(t *testing.T) {
	b := DefaultBank()
	tips, _ := b.Lookup("time management")
	tips[0].Title = "changed"
	again, _ := b.Lookup("time management")
	if again[0].Title == "changed" {
		t.Fatalf("Lookup leaked internal slice")
	}
}

func TestGeneric(t *testing.T) {
	src := randx.New(7)
	cases := []struct {
		count int
		want  int
	}{
		{0, 0},
		{-1, 0},
		{3, 3},
		{8, 8},
		{50, GenericPoolSize()},
	}
	for _, tc := range cases {
		got := Generic(src, "public_speaking", tc.count)
		if len(got) != tc.want {
			t.Fatalf("count=%d: got=%d want=%d", tc.count, len(got), tc.want)
		}
		seen := map[string]bool{}
		for _, tp := range got {
			if seen[tp.Title] {
				t.Fatalf("duplicate generic tip %q", tp.Title)
			}
			seen[tp.Title] = true
			if strings.Contains(tp.Explanation, "public_speaking") {
				t.Fatalf("underscore topic not spaced: %q", tp.Explanation)
			}
		}
	}
	all := GenericAll("public_speaking")
	if !strings.Contains(all[0].Explanation, "public speaking") {
		t.Fatalf("awareness tip: got=%q", all[0].Explanation)
	}
	for _, odd := range []string{"", "{x}", "100%", "自信"} {
		if n := len(Generic(src, odd, 3)); n != 3 {
			t.Fatalf("topic %q: got=%d want=3", odd, n)
		}
	}
}
