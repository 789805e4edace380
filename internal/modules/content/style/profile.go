// Package style holds the creator persona: intro phrasings, call-to-action
// variants, topic-to-action phrasing and transitions.
package style

import (
	"embed"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/yungbote/reelcraft-backend/internal/modules/content/placeholder"
	"github.com/yungbote/reelcraft-backend/internal/platform/randx"
)

const KindStandard = "standard"

//go:embed profile.yaml
var profileFS embed.FS

// CTAPolicy controls how often the signature CTA (or the requested variant)
// is used instead of a random entry from the CTA table.
type CTAPolicy struct {
	SignatureProbability float64 `yaml:"signature_probability"`
}

type Profile struct {
	Name         string            `yaml:"name"`
	DayJob       string            `yaml:"day_job"`
	Mission      string            `yaml:"mission"`
	Tone         string            `yaml:"tone"`
	SignatureCTA string            `yaml:"signature_cta"`
	CTAPolicy    CTAPolicy         `yaml:"cta_policy"`
	Intros       []string          `yaml:"intros"`
	CTAs         map[string]string `yaml:"ctas"`

	intros   []*placeholder.Template
	ctaKinds []string
}

// fallback persona used when the embedded YAML is unreadable
func builtinProfile() Profile {
	return Profile{
		Name:         "Dorian",
		DayJob:       "senior project manager for a major airline",
		Mission:      "share content with thousands of people focused on personal growth and development",
		Tone:         "conversational, empowering, actionable",
		SignatureCTA: "If you found this helpful, follow along and share this with someone who might need it today. Let's grow together.",
		CTAPolicy:    CTAPolicy{SignatureProbability: 0.85},
	}
}

// Default returns the embedded persona.
func Default() *Profile {
	data, err := profileFS.ReadFile("profile.yaml")
	if err == nil {
		if p, perr := parse(data, builtinProfile()); perr == nil {
			return p
		}
	}
	p := builtinProfile()
	_ = p.prepare()
	return &p
}

// Load overlays the YAML at path on the embedded persona. A blank path
// returns Default().
func Load(path string) (*Profile, error) {
	base := Default()
	path = strings.TrimSpace(path)
	if path == "" {
		return base, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read style profile: %w", err)
	}
	return parse(data, base.clone())
}

func parse(data []byte, base Profile) (*Profile, error) {
	p := base
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parse style profile: %w", err)
	}
	if err := p.prepare(); err != nil {
		return nil, err
	}
	return &p, nil
}

func (p Profile) clone() Profile {
	out := p
	out.Intros = append([]string(nil), p.Intros...)
	out.CTAs = make(map[string]string, len(p.CTAs))
	for k, v := range p.CTAs {
		out.CTAs[k] = v
	}
	out.intros = nil
	out.ctaKinds = nil
	return out
}

func (p *Profile) context() placeholder.Context {
	return placeholder.Context{
		"name":    p.Name,
		"day_job": p.DayJob,
		"mission": p.Mission,
	}
}

func (p *Profile) prepare() error {
	if strings.TrimSpace(p.Name) == "" {
		return errors.New("style profile: name is required")
	}
	if strings.TrimSpace(p.SignatureCTA) == "" {
		return errors.New("style profile: signature_cta is required")
	}
	if pr := p.CTAPolicy.SignatureProbability; pr < 0 || pr > 1 {
		return fmt.Errorf("style profile: signature_probability %v out of range", pr)
	}

	p.intros = nil
	ctx := p.context()
	for i, raw := range p.Intros {
		r := placeholder.TryFill(raw, ctx, "")
		if r.FallbackUsed {
			return fmt.Errorf("style profile: intro %d: %w", i, r.Err)
		}
		p.intros = append(p.intros, placeholder.Parse(raw))
	}

	if p.CTAs == nil {
		p.CTAs = map[string]string{}
	}
	p.CTAs[KindStandard] = p.SignatureCTA
	p.ctaKinds = make([]string, 0, len(p.CTAs))
	for k := range p.CTAs {
		p.ctaKinds = append(p.ctaKinds, k)
	}
	sort.Strings(p.ctaKinds)
	return nil
}

// CanonicalIntro is the persona's fixed credibility line.
func (p *Profile) CanonicalIntro() string {
	return fmt.Sprintf("Hi my name is %s. I'm a %s by day and by night I %s.", p.Name, p.DayJob, p.Mission)
}

// Intro returns one of the intro phrasings, chosen uniformly.
func (p *Profile) Intro(src randx.Source) string {
	if len(p.intros) == 0 {
		return p.CanonicalIntro()
	}
	r := randx.Pick(src, p.intros).Fill(p.context(), "")
	if r.FallbackUsed {
		return p.CanonicalIntro()
	}
	return r.Text
}

// IntroOptions renders every intro phrasing in order.
func (p *Profile) IntroOptions() []string {
	if len(p.intros) == 0 {
		return []string{p.CanonicalIntro()}
	}
	out := make([]string, 0, len(p.intros))
	ctx := p.context()
	for _, t := range p.intros {
		out = append(out, t.Fill(ctx, "").Text)
	}
	return out
}
