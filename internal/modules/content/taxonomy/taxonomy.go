package taxonomy

import (
	"slices"

	"github.com/yungbote/reelcraft-backend/internal/platform/randx"
)

const (
	PersonalGrowth          = "personal_growth"
	ProfessionalDevelopment = "professional_development"
	Mindset                 = "mindset"
)

// Taxonomy maps category -> ordered topic list. It is read-only once built.
type Taxonomy struct {
	order  []string
	topics map[string][]string
}

func Default() *Taxonomy {
	t := &Taxonomy{topics: map[string][]string{}}
	t.add(PersonalGrowth,
		"dealing with negative people",
		"building confidence",
		"overcoming self-doubt",
		"setting boundaries",
		"managing stress",
		"finding work-life balance",
		"developing resilience",
		"embracing change",
	)
	t.add(ProfessionalDevelopment,
		"leadership skills",
		"effective communication",
		"time management",
		"networking strategies",
		"career advancement",
		"workplace relationships",
		"project management tips",
		"public speaking",
	)
	t.add(Mindset,
		"positive thinking",
		"growth mindset",
		"self-awareness",
		"emotional intelligence",
		"gratitude practice",
		"mental clarity",
		"self-discipline",
		"motivation strategies",
	)
	return t
}

func (t *Taxonomy) add(category string, topics ...string) {
	if _, ok := t.topics[category]; !ok {
		t.order = append(t.order, category)
	}
	for _, topic := range topics {
		if !slices.Contains(t.topics[category], topic) {
			t.topics[category] = append(t.topics[category], topic)
		}
	}
}

func (t *Taxonomy) Categories() []string {
	return slices.Clone(t.order)
}

// Topics returns a copy of the topic list for category and whether it exists.
func (t *Taxonomy) Topics(category string) ([]string, bool) {
	topics, ok := t.topics[category]
	return slices.Clone(topics), ok
}

// All returns a copy of the full mapping.
func (t *Taxonomy) All() map[string][]string {
	out := make(map[string][]string, len(t.topics))
	for k, v := range t.topics {
		out[k] = slices.Clone(v)
	}
	return out
}

// CategoryOf returns the category holding topic, by exact match.
func (t *Taxonomy) CategoryOf(topic string) (string, bool) {
	for _, c := range t.order {
		if slices.Contains(t.topics[c], topic) {
			return c, true
		}
	}
	return "", false
}

func (t *Taxonomy) RandomCategory(src randx.Source) string {
	return randx.Pick(src, t.order)
}

// Resolve returns topic unchanged when non-empty; otherwise it draws a
// category and then a topic from it.
func (t *Taxonomy) Resolve(src randx.Source, topic string) string {
	if topic != "" {
		return topic
	}
	return randx.Pick(src, t.topics[t.RandomCategory(src)])
}
