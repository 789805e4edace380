package composer

import (
	"strings"

	"github.com/yungbote/reelcraft-backend/internal/domain/content"
	"github.com/yungbote/reelcraft-backend/internal/modules/content/style"
	"github.com/yungbote/reelcraft-backend/internal/modules/content/tips"
)

const (
	hookWindow       = "0-3 seconds"
	introWindow      = "3-8 seconds"
	transitionWindow = "8-12 seconds"
	// fixed label, not derived from the tip count
	ctaWindow = "55-60 seconds"
)

// ComposeReel builds a reel for topic (random when blank) with numTips tips.
// It never fails; numTips <= 0 gives an empty tip list and the transition
// still quotes the count.
func (c *Composer) ComposeReel(topic string, numTips int) content.Reel {
	topic = c.ResolveTopic(topic)

	hook := c.SelectHook(topic)
	tipList := c.SelectTips(topic, numTips)
	transition := style.NewTransition(c.src, numTips, style.Action(c.src, topic))
	cta := c.style.CTA(c.src, style.KindStandard)
	intro := c.style.Intro(c.src)

	reel := content.Reel{
		ContentType: reelContentType,
		Topic:       topic,
		Duration:    reelDuration,
		Structure: content.ReelStructure{
			Hook:       content.Segment{Timestamp: hookWindow, Visual: tips.VisualTalkingHead, Script: hook},
			Intro:      content.Segment{Timestamp: introWindow, Visual: tips.VisualTalkingHead, Script: intro},
			Transition: content.Segment{Timestamp: transitionWindow, Visual: transition.Visual, Script: transition.Script},
			Tips:       tipList,
			CTA:        content.Segment{Timestamp: ctaWindow, Visual: tips.VisualTalkingHead, Script: cta},
		},
	}
	reel.FullScript = CompileScript(reel)
	return reel
}

// CompileScript joins every segment script in reel order with single spaces.
func CompileScript(reel content.Reel) string {
	return strings.Join(reel.ScriptParts(), " ")
}
