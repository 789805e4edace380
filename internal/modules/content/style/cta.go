package style

import (
	"slices"

	"github.com/yungbote/reelcraft-backend/internal/platform/randx"
)

// CTA returns a call to action. The random branch is checked first: with
// probability 1-SignatureProbability a uniform entry of the whole CTA table
// (signature included) is returned. Otherwise the variant for kind is
// returned, falling back to the signature CTA for blank or unknown kinds.
func (p *Profile) CTA(src randx.Source, kind string) string {
	if len(p.ctaKinds) > 0 && randx.Chance(src, 1-p.CTAPolicy.SignatureProbability) {
		return p.CTAs[randx.Pick(src, p.ctaKinds)]
	}
	if text, ok := p.CTAs[kind]; ok {
		return text
	}
	return p.SignatureCTA
}

// CTAKinds lists the CTA table keys in sorted order.
func (p *Profile) CTAKinds() []string { return slices.Clone(p.ctaKinds) }

// CTATable returns a copy of kind -> text.
func (p *Profile) CTATable() map[string]string {
	out := make(map[string]string, len(p.CTAs))
	for k, v := range p.CTAs {
		out[k] = v
	}
	return out
}

// WithSignatureProbability returns a copy of p using the given policy value.
func (p *Profile) WithSignatureProbability(prob float64) *Profile {
	out := *p
	out.CTAPolicy.SignatureProbability = prob
	return &out
}
