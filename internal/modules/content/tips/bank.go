package tips

import (
	"slices"
	"sort"

	"github.com/yungbote/reelcraft-backend/internal/domain/content"
)

// Bank is the built-in topic -> tips catalog. It is read-only once built.
type Bank struct {
	byTopic map[string][]content.Tip
}

func tip(title, explanation string) content.Tip {
	return content.Tip{
		Title:       title,
		Explanation: explanation,
		BRoll:       content.HasBRollMarker(explanation),
	}
}

// DefaultBank returns the sample bank overlaid with the expertise bank.
// Expertise entries replace sample entries for the same topic.
func DefaultBank() *Bank {
	b := &Bank{byTopic: map[string][]content.Tip{}}
	for topic, tips := range sampleTips {
		b.byTopic[topic] = tips
	}
	for topic, tips := range expertiseTips {
		b.byTopic[topic] = tips
	}
	return b
}

// Lookup returns a copy of the tips for topic by exact match.
func (b *Bank) Lookup(topic string) ([]content.Tip, bool) {
	tips, ok := b.byTopic[topic]
	return slices.Clone(tips), ok
}

func (b *Bank) Has(topic string) bool {
	_, ok := b.byTopic[topic]
	return ok
}

func (b *Bank) Topics() []string {
	out := make([]string, 0, len(b.byTopic))
	for t := range b.byTopic {
		out = append(out, t)
	}
	sort.Strings(out)
	return out
}

var sampleTips = map[string][]content.Tip{
	"dealing with negative people": {
		tip("limit your interaction",
			"Do what you have to do and get the job done, but you don't necessarily need to give them access to your energy."),
		tip("try empathizing",
			"[start B-roll] You don't have to like someone, but if you try to understand where they're coming [end B-roll] from you'd be surprised with a couple of questions coming from a genuine place how far that can take you in a relationship with someone."),
		tip("set clear boundaries",
			"[start B-roll] You have to let them know what's acceptable, what's not acceptable, [end B-roll] and then you have to personally respect your own boundaries. If they wanna live in negativity, that's cool, but you don't have to live there."),
	},
	"building confidence": {
		tip("celebrate small wins",
			"Start tracking your daily accomplishments, no matter how small. Confidence builds when you see evidence of your progress."),
		tip("practice self-compassion",
			"[start B-roll] Talk to yourself like you'd talk to a friend. [end B-roll] When you mess up, acknowledge it without the harsh criticism. That's how real confidence grows."),
		tip("take action before you feel ready",
			"[start B-roll] Confidence doesn't come before action, it comes from taking action. [end B-roll] Start small, but start now. Each step forward builds your belief in yourself."),
	},
}
