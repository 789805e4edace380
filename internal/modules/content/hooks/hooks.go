package hooks

import (
	"fmt"

	"github.com/yungbote/reelcraft-backend/internal/modules/content/placeholder"
	"github.com/yungbote/reelcraft-backend/internal/platform/randx"
)

type Method string

const (
	MethodBank      Method = "template_bank"
	MethodTechnique Method = "technique"
	MethodCustom    Method = "custom"
)

var Methods = []Method{MethodBank, MethodTechnique, MethodCustom}

// Hook is a generated hook plus how it was produced.
type Hook struct {
	Text         string
	Method       Method
	Technique    string
	FallbackUsed bool
}

type parsedTechnique struct {
	Technique
	templates []*placeholder.Template
}

// Library holds the parsed template bank, techniques and custom patterns.
type Library struct {
	bank       []*placeholder.Template
	techniques []parsedTechnique
	custom     []string
}

func NewLibrary() *Library {
	l := &Library{
		bank:   placeholder.MustParseAll(bankTemplates...),
		custom: append([]string(nil), customPatterns...),
	}
	for _, t := range techniqueCatalog {
		l.techniques = append(l.techniques, parsedTechnique{
			Technique: t,
			templates: placeholder.MustParseAll(t.Templates...),
		})
	}
	return l
}

func (l *Library) BankSize() int { return len(l.bank) }

func (l *Library) Techniques() []Technique {
	out := make([]Technique, 0, len(l.techniques))
	for _, t := range l.techniques {
		out = append(out, t.Technique)
	}
	return out
}

// Generate draws one hook with the given method.
func (l *Library) Generate(src randx.Source, topic string, method Method) Hook {
	switch method {
	case MethodBank:
		return l.FromBank(src, topic)
	case MethodTechnique:
		return l.FromTechnique(src, topic)
	default:
		return l.Custom(src, topic)
	}
}

func (l *Library) FromBank(src randx.Source, topic string) Hook {
	r := randx.Pick(src, l.bank).Fill(DefaultContext(topic), topic)
	return Hook{Text: r.Text, Method: MethodBank, FallbackUsed: r.FallbackUsed}
}

func (l *Library) FromTechnique(src randx.Source, topic string) Hook {
	t := randx.Pick(src, l.techniques)
	r := randx.Pick(src, t.templates).Fill(techniqueContext(t.Technique, topic), topic)
	return Hook{Text: r.Text, Method: MethodTechnique, Technique: t.Key, FallbackUsed: r.FallbackUsed}
}

func (l *Library) Custom(src randx.Source, topic string) Hook {
	return Hook{Text: fmt.Sprintf(randx.Pick(src, l.custom), topic), Method: MethodCustom}
}

func techniqueContext(t Technique, topic string) placeholder.Context {
	return placeholder.Merge(DefaultContext(topic), t.Defaults)
}

// Outputs enumerates every hook method can produce for topic.
func (l *Library) Outputs(topic string, method Method) map[string]bool {
	out := map[string]bool{}
	switch method {
	case MethodBank:
		ctx := DefaultContext(topic)
		for _, t := range l.bank {
			out[t.Fill(ctx, topic).Text] = true
		}
	case MethodTechnique:
		for _, t := range l.techniques {
			ctx := techniqueContext(t.Technique, topic)
			for _, tmpl := range t.templates {
				out[tmpl.Fill(ctx, topic).Text] = true
			}
		}
	default:
		for _, p := range l.custom {
			out[fmt.Sprintf(p, topic)] = true
		}
	}
	return out
}
