package placeholder

import "testing"

func TestFill(t *testing.T) {
	tests := []struct {
		name         string
		raw          string
		ctx          Context
		topic        string
		want         string
		wantFallback bool
	}{
		{
			name:  "all keys present",
			raw:   "{{.problem}}. Everyone tells you to {{.common_solution}}.",
			ctx:   Context{"problem": "Low confidence", "common_solution": "fake it"},
			topic: "building confidence",
			want:  "Low confidence. Everyone tells you to fake it.",
		},
		{
			name:         "missing key",
			raw:          "{{.problem}} costs you {{.cost}}.",
			ctx:          Context{"problem": "Stress"},
			topic:        "managing stress",
			want:         "Here's what you need to know about managing stress",
			wantFallback: true,
		},
		{
			name:         "unparseable template",
			raw:          "{{.problem",
			ctx:          Context{"problem": "x"},
			topic:        "x",
			want:         "Here's what you need to know about x",
			wantFallback: true,
		},
		{
			name:  "braces in values are not re-expanded",
			raw:   "About {{.topic}}",
			ctx:   Context{"topic": "{{.evil}} {curly}"},
			topic: "{{.evil}} {curly}",
			want:  "About {{.evil}} {curly}",
		},
		{
			name:  "unicode",
			raw:   "{{.topic}} ✨",
			ctx:   Context{"topic": "자기 계발"},
			topic: "자기 계발",
			want:  "자기 계발 ✨",
		},
		{
			name:         "empty topic fallback",
			raw:          "{{.nothing}}",
			ctx:          Context{},
			topic:        "",
			want:         "Here's what you need to know about ",
			wantFallback: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := TryFill(tt.raw, tt.ctx, tt.topic)
			if got.Text != tt.want {
				t.Fatalf("Text: got=%q want=%q", got.Text, tt.want)
			}
			if got.FallbackUsed != tt.wantFallback {
				t.Fatalf("FallbackUsed: got=%v want=%v", got.FallbackUsed, tt.wantFallback)
			}
			if tt.wantFallback && got.Err == nil {
				t.Fatal("expected Err on fallback")
			}
		})
	}
}

func TestMergeOverrideWins(t *testing.T) {
	defaults := Context{"a": "1", "b": "2"}
	got := Merge(defaults, Context{"b": "3", "c": "4"})
	if got["a"] != "1" || got["b"] != "3" || got["c"] != "4" {
		t.Fatalf("Merge: got=%v", got)
	}
	if defaults["b"] != "2" {
		t.Fatal("Merge mutated defaults")
	}
}

func TestNilTemplateFallsBack(t *testing.T) {
	var tmpl *Template
	if r := tmpl.Fill(Context{}, "x"); !r.FallbackUsed {
		t.Fatal("nil template should fall back")
	}
}
