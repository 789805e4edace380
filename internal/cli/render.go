package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/yungbote/reelcraft-backend/internal/data/examples"
	"github.com/yungbote/reelcraft-backend/internal/domain/content"
)

const ruleWidth = 70

var errorStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("#FF5555")).
	Bold(true)

var titleCaser = cases.Title(language.English)

// printer renders with a lipgloss renderer bound to its writer, so styles
// degrade to plain text when the writer is not a terminal.
type printer struct {
	w io.Writer

	header  lipgloss.Style
	section lipgloss.Style
	label   lipgloss.Style
	value   lipgloss.Style
	dim     lipgloss.Style
	number  lipgloss.Style
}

func newPrinter(w io.Writer) *printer {
	r := lipgloss.NewRenderer(w)
	return &printer{
		w:       w,
		header:  r.NewStyle().Bold(true).Foreground(lipgloss.Color("#7D56F4")),
		section: r.NewStyle().Bold(true).Foreground(lipgloss.Color("#04B575")),
		label:   r.NewStyle().Foreground(lipgloss.Color("#626262")),
		value:   r.NewStyle(),
		dim:     r.NewStyle().Foreground(lipgloss.Color("#555555")).Italic(true),
		number:  r.NewStyle().Bold(true),
	}
}

func (p *printer) line(format string, args ...any) {
	fmt.Fprintf(p.w, format+"\n", args...)
}

func (p *printer) rule(ch string) {
	p.line("%s", strings.Repeat(ch, ruleWidth))
}

func (p *printer) headerBar(text string) {
	p.line("")
	p.rule("=")
	p.line("  %s", p.header.Render(text))
	p.rule("=")
	p.line("")
}

func (p *printer) field(name, value string) {
	p.line("%s %s", p.label.Render(name+":"), p.value.Render(value))
}

func titleCase(s string) string {
	return titleCaser.String(strings.ReplaceAll(s, "_", " "))
}

func (p *printer) segment(icon, name string, s content.Segment) {
	p.line("")
	p.line("%s", p.section.Render(fmt.Sprintf("%s %s (%s)", icon, name, s.Timestamp)))
	p.field("Visual", s.Visual)
	p.field("Script", s.Script)
}

func (p *printer) reel(r content.Reel) {
	p.headerBar("Instagram Reel: " + titleCase(r.Topic))

	p.line("%s", p.section.Render("FULL SCRIPT:"))
	p.rule("-")
	p.line("%s", r.FullScript)
	p.line("")

	p.line("%s", p.section.Render("DETAILED BREAKDOWN:"))
	p.rule("-")
	s := r.Structure
	p.segment("🎣", "HOOK", s.Hook)
	p.segment("👋", "INTRO", s.Intro)
	p.segment("🔄", "TRANSITION", s.Transition)
	for _, tip := range s.Tips {
		p.line("")
		p.line("%s", p.section.Render(fmt.Sprintf("💡 TIP #%d (%s)", tip.Number, tip.Timestamp)))
		p.field("Visual", tip.Visual)
		p.field("Title", strings.ToUpper(tip.Title))
		p.field("Script", tip.Script)
		if tip.UserExample {
			p.line("%s", p.dim.Render("(from your examples)"))
		}
	}
	p.segment("📢", "CALL TO ACTION", s.CTA)
	p.line("")
	p.rule("=")
}

func (p *printer) hooks(list []content.HookIdea) {
	p.headerBar("Content Hook Ideas")
	for _, h := range list {
		p.line("")
		p.line("%s %s", p.number.Render(fmt.Sprintf("%d.", h.Number)), strings.ToUpper(h.Topic))
		p.line("   %s", p.label.Render("Category: ")+titleCase(h.Category))
		p.line("   %s", p.label.Render("Hook: ")+h.Hook)
		p.line("   %s", p.label.Render("Use for: ")+h.UseCase)
	}
	p.line("")
	p.rule("=")
}

func (p *printer) ideas(list []content.QuickIdea) {
	p.headerBar("Quick Content Ideas")
	for _, idea := range list {
		p.line("")
		p.line("%s TOPIC: %s", p.number.Render(fmt.Sprintf("%d.", idea.Number)), strings.ToUpper(idea.Topic))
		p.line("   %s", p.label.Render("Hook: ")+idea.Hook)
		p.line("   %s", p.label.Render("Format: ")+idea.Format)
		p.line("   %s", p.label.Render("CTA: ")+idea.CTA)
	}
	p.line("")
	p.rule("=")
}

func (p *printer) framework(f content.Framework) {
	p.headerBar(f.Name)
	p.line("%s", p.section.Render("📝 STRUCTURE:"))
	for i, step := range f.Structure {
		p.line("  %d. %s", i+1, step)
	}
	p.line("")
	p.line("✅ Best for: %s", f.BestFor)
	p.line("")
	p.rule("=")
}

func (p *printer) frameworkList(list []content.Framework) {
	p.headerBar("Content Frameworks")
	for _, f := range list {
		p.line("  %s  %s", p.number.Render(f.Key), p.dim.Render(f.Name))
	}
}

func (p *printer) topics(categories []string, all map[string][]string) {
	p.headerBar("Topics")
	for _, cat := range categories {
		p.line("%s", p.section.Render(titleCase(cat)))
		for _, t := range all[cat] {
			p.line("  - %s", t)
		}
		p.line("")
	}
}

func (p *printer) videoTypes(list []content.VideoType) {
	p.headerBar("Video Types")
	for _, v := range list {
		p.line("%s %s", p.number.Render(v.Key), p.dim.Render("("+v.Name+")"))
		p.line("   %s", v.Description)
		p.line("   %s", p.label.Render("Best for: ")+v.BestFor)
	}
}

func (p *printer) shots(v content.VideoType, shots []content.Shot) {
	if len(shots) == 0 {
		p.line("%s", p.dim.Render("No shots for this video type."))
		return
	}
	p.headerBar(v.Name + " Shot List")
	for i, s := range shots {
		p.line("%s %s %s", p.number.Render(fmt.Sprintf("%d.", i+1)), s.Name, p.dim.Render("("+s.Duration+")"))
		p.line("   %s", s.Description)
	}
}

func (p *printer) custom(c content.Custom) {
	switch {
	case c.Reel != nil:
		p.reel(c.Reel.Reel)
	case c.Hooks != nil:
		p.headerBar("Hooks: " + titleCase(c.Hooks.Topic))
		for i, h := range c.Hooks.Hooks {
			p.line("%s %s", p.number.Render(fmt.Sprintf("%d.", i+1)), h)
		}
		p.line("")
		p.field("Use for", c.Hooks.UseCase)
	case c.QuickIdea != nil:
		q := c.QuickIdea
		p.headerBar("Quick Idea: " + titleCase(q.Topic))
		p.field("Hook", q.Hook)
		p.field("Format", q.Format)
		p.field("CTA", q.CTA)
		p.field("Framework", q.SuggestedFramework)
	}
}

func (p *printer) examples(c examples.Collection) {
	counts := c.Counts()
	p.headerBar(fmt.Sprintf("Your Examples (%d hooks, %d tips, %d scripts)",
		counts[examples.KindHook], counts[examples.KindTip], counts[examples.KindFullScript]))
	for _, topic := range sortedKeys(c.Hooks) {
		p.line("%s", p.section.Render("Hooks: "+topic))
		for _, h := range c.Hooks[topic] {
			p.line("  - %s", h.Hook)
		}
	}
	for _, topic := range sortedKeys(c.Tips) {
		p.line("%s", p.section.Render("Tips: "+topic))
		for _, t := range c.Tips[topic] {
			p.line("  - %s: %s", t.Title, t.Explanation)
		}
	}
	for _, s := range c.FullScripts {
		p.line("%s", p.section.Render("Script: "+s.Topic))
		p.line("%s", s.Script)
	}
}
