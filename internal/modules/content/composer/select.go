package composer

import (
	"github.com/yungbote/reelcraft-backend/internal/domain/content"
	"github.com/yungbote/reelcraft-backend/internal/modules/content/hooks"
	"github.com/yungbote/reelcraft-backend/internal/modules/content/tips"
	"github.com/yungbote/reelcraft-backend/internal/platform/randx"
)

// SelectHook returns one hook for topic.
func (c *Composer) SelectHook(topic string) string {
	return c.Hook(topic).Text
}

// Hook picks a stored user hook with probability UserHookProbability when
// any exist, otherwise generates one with a uniformly chosen method.
func (c *Composer) Hook(topic string) hooks.Hook {
	h := c.pickHook(topic)
	if h.FallbackUsed {
		c.log.Debug("hook template fell back", "topic", topic, "method", h.Method, "technique", h.Technique)
	}
	if c.onHook != nil {
		c.onHook(h.Method, h.FallbackUsed)
	}
	return h
}

func (c *Composer) pickHook(topic string) hooks.Hook {
	if c.examples != nil {
		if user := c.examples.HooksFor(topic); len(user) > 0 && randx.Chance(c.src, c.policy.UserHookProbability) {
			return hooks.Hook{Text: randx.Pick(c.src, user), Method: MethodUserExample}
		}
	}
	return c.hooks.Generate(c.src, topic, randx.Pick(c.src, hooks.Methods))
}

// SelectTips returns min(count, available) formatted tips. When the example
// store holds at least count tips for topic only those are used; otherwise
// user tips are pooled with the built-in bank (or generic tips for topics
// the bank lacks).
func (c *Composer) SelectTips(topic string, count int) []content.FormattedTip {
	if count <= 0 {
		return []content.FormattedTip{}
	}
	user := c.userTips(topic)
	if len(user) >= count {
		return tips.Format(randx.Sample(c.src, user, count))
	}
	pool := user
	if builtin, ok := c.tips.Lookup(topic); ok {
		pool = append(pool, builtin...)
	} else {
		pool = append(pool, tips.Generic(c.src, topic, count)...)
	}
	return tips.Format(randx.Sample(c.src, pool, count))
}

func (c *Composer) userTips(topic string) []content.Tip {
	if c.examples == nil {
		return nil
	}
	stored := c.examples.TipsFor(topic)
	out := make([]content.Tip, 0, len(stored))
	for _, t := range stored {
		t.UserExample = true
		t.BRoll = content.HasBRollMarker(t.Explanation)
		out = append(out, t)
	}
	return out
}
