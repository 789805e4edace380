package style

import (
	"fmt"

	"github.com/yungbote/reelcraft-backend/internal/platform/randx"
)

const (
	VisualTalkingHeadToBRoll = "Talking Head → B-roll"
	VisualBRollToTalkingHead = "B-roll → Talking Head"
)

var transitionVisuals = []string{VisualTalkingHeadToBRoll, VisualBRollToTalkingHead}

// Each template takes the tip count then the action phrase.
var transitionTemplates = []string{
	"[start B-roll] Whether in your personal life or professional journey [end B-roll] here are %d ways to %s.",
	"[start B-roll] If you've been feeling stuck lately, [end B-roll] here are %d ways to %s.",
	"So here are %d things that actually helped me %s.",
	"[start B-roll] At work, at home, or anywhere in between, [end B-roll] here are %d ways to %s.",
	"Let's get into it. Here are %d simple ways to %s.",
}

type Transition struct {
	Script string
	Visual string
}

// NewTransition picks a transition sentence and visual label. The count is
// quoted literally, even when zero or negative.
func NewTransition(src randx.Source, numTips int, action string) Transition {
	tmpl := randx.Pick(src, transitionTemplates)
	return Transition{
		Script: fmt.Sprintf(tmpl, numTips, action),
		Visual: randx.Pick(src, transitionVisuals),
	}
}

// TransitionOptions enumerates every script NewTransition can produce.
func TransitionOptions(numTips int, action string) []string {
	out := make([]string, 0, len(transitionTemplates))
	for _, tmpl := range transitionTemplates {
		out = append(out, fmt.Sprintf(tmpl, numTips, action))
	}
	return out
}

func TransitionVisuals() []string {
	return append([]string(nil), transitionVisuals...)
}
