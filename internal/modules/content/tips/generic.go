package tips

import (
	"fmt"
	"strings"

	"github.com/yungbote/reelcraft-backend/internal/domain/content"
	"github.com/yungbote/reelcraft-backend/internal/platform/randx"
)

// genericTemplate explanations take the spaced topic as their only verb
// argument (or none).
type genericTemplate struct {
	title       string
	explanation string
}

var genericTemplates = []genericTemplate{
	{"start with awareness", "You can't change what you don't acknowledge. Take time to recognize when %s shows up in your life."},
	{"take small consistent actions", "[start B-roll] Progress isn't about massive leaps. [end B-roll] It's about showing up every day and doing what you can with what you have."},
	{"learn from setbacks", "[start B-roll] Every challenge is feedback, not failure. [end B-roll] Use what doesn't work to inform what will. That's how you grow."},
	{"find someone a step ahead", "[start B-roll] Look for someone who's already where you want to be with %s. [end B-roll] Ask them one good question. Most people are happy to help."},
	{"define what better looks like", "You can't hit a target you haven't set. Decide what progress with %s looks like for you, then measure against that, not against anyone else."},
	{"build it into your routine", "[start B-roll] Motivation fades, routines don't. [end B-roll] Attach one small %s habit to something you already do every day."},
	{"protect your energy", "[start B-roll] You can't pour from an empty cup. [end B-roll] Notice what drains you and what fuels you, then plan your week around it."},
	{"give yourself a deadline", "Open-ended goals stay open forever. Pick a date, tell someone about it, and let a little pressure work for you."},
}

// GenericPoolSize is the number of distinct generic tips available.
func GenericPoolSize() int { return len(genericTemplates) }

// Generic draws min(count, GenericPoolSize()) topic-parameterised tips
// without replacement. Underscores in topic read as spaces.
func Generic(src randx.Source, topic string, count int) []content.Tip {
	return randx.Sample(src, GenericAll(topic), count)
}

// GenericAll renders every generic template for topic in catalog order.
func GenericAll(topic string) []content.Tip {
	clean := strings.ReplaceAll(topic, "_", " ")
	out := make([]content.Tip, 0, len(genericTemplates))
	for _, g := range genericTemplates {
		explanation := g.explanation
		if strings.Contains(explanation, "%s") {
			explanation = fmt.Sprintf(explanation, clean)
		}
		out = append(out, tip(g.title, explanation))
	}
	return out
}
