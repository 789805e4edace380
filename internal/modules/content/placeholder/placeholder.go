// Package placeholder fills hook templates from a typed context. Filling
// never fails: a missing key yields a generic line about the topic and the
// result is tagged so callers can see that the fallback was used.
package placeholder

import (
	"strings"
	"text/template"
)

// Context maps placeholder name -> fill value.
type Context map[string]string

// Merge returns defaults overlaid with overrides. Neither input is modified.
func Merge(defaults, overrides Context) Context {
	out := make(Context, len(defaults)+len(overrides))
	for k, v := range defaults {
		out[k] = v
	}
	for k, v := range overrides {
		out[k] = v
	}
	return out
}

type Result struct {
	Text         string
	FallbackUsed bool
	Err          error
}

func Fallback(topic string) string {
	return "Here's what you need to know about " + topic
}

// Template is a parsed hook template using {{.name}} placeholders.
type Template struct {
	raw  string
	tmpl *template.Template
	err  error
}

func Parse(raw string) *Template {
	t := &Template{raw: raw}
	t.tmpl, t.err = template.New("hook").Option("missingkey=error").Parse(raw)
	return t
}

func MustParseAll(raws ...string) []*Template {
	out := make([]*Template, 0, len(raws))
	for _, raw := range raws {
		t := Parse(raw)
		if t.err != nil {
			panic("placeholder: bad template " + raw + ": " + t.err.Error())
		}
		out = append(out, t)
	}
	return out
}

func (t *Template) Raw() string { return t.raw }

// Fill renders the template with ctx, falling back to a topic line on any
// parse or execution failure.
func (t *Template) Fill(ctx Context, topic string) Result {
	if t == nil {
		return Result{Text: Fallback(topic), FallbackUsed: true}
	}
	if t.err != nil {
		return Result{Text: Fallback(topic), FallbackUsed: true, Err: t.err}
	}
	var b strings.Builder
	if err := t.tmpl.Execute(&b, map[string]string(ctx)); err != nil {
		return Result{Text: Fallback(topic), FallbackUsed: true, Err: err}
	}
	return Result{Text: b.String()}
}

// TryFill parses and fills raw in one step.
func TryFill(raw string, ctx Context, topic string) Result {
	return Parse(raw).Fill(ctx, topic)
}
