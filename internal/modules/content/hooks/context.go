package hooks

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/yungbote/reelcraft-backend/internal/modules/content/placeholder"
)

var titleCaser = cases.Title(language.English)

// Keys every default context provides.
var contextKeys = []string{
	"topic", "topic_title", "problem", "common_solution", "misconception",
	"pain_point", "result", "mistake", "truth", "timeframe", "number",
	"audience", "action",
}

type topicAngles struct {
	problem        string
	commonSolution string
	misconception  string
	painPoint      string
	result         string
	mistake        string
	truth          string
}

var curatedAngles = map[string]topicAngles{
	"dealing with negative people": {
		problem:        "Negative people",
		commonSolution: "get rid of negative people when you don't agree with them",
		misconception:  "Most people think avoiding negativity means cutting everyone out",
		painPoint:      "dreading every conversation with that one coworker",
		result:         "keep your peace without burning bridges",
		mistake:        "matching their energy",
		truth:          "you can't control them, but you can control your access",
	},
	"building confidence": {
		problem:        "Low confidence",
		commonSolution: "just fake it till you make it",
		misconception:  "People think confidence comes from never feeling doubt",
		painPoint:      "second-guessing every decision you make",
		result:         "walk into any room like you belong there",
		mistake:        "waiting until you feel ready",
		truth:          "confidence is built through evidence, not affirmations",
	},
	"setting boundaries": {
		problem:        "Saying yes to everything",
		commonSolution: "just say no more often",
		misconception:  "Most people think boundaries mean being selfish",
		painPoint:      "running on empty because everyone else comes first",
		result:         "protect your energy without feeling guilty",
		mistake:        "setting a boundary and then not keeping it yourself",
		truth:          "a boundary you don't enforce is just a suggestion",
	},
	"overcoming self-doubt": {
		problem:        "Self-doubt",
		commonSolution: "think positive",
		misconception:  "Most people think self-doubt goes away once you succeed",
		painPoint:      "talking yourself out of opportunities before anyone else can",
		result:         "act even when the doubt shows up",
		mistake:        "treating doubt like a stop sign",
		truth:          "doubt is a feeling, not a fact",
	},
	"managing stress": {
		problem:        "Constant stress",
		commonSolution: "take a vacation",
		misconception:  "Most people think stress means you're doing too much",
		painPoint:      "lying awake replaying tomorrow's to-do list",
		result:         "stay steady when everything's on fire",
		mistake:        "trying to control what you can't",
		truth:          "stress is information, not the enemy",
	},
	"finding work-life balance": {
		problem:        "Work following you home every night",
		commonSolution: "log off at five",
		misconception:  "People think balance means splitting your time fifty-fifty",
		painPoint:      "missing dinner again because of one more email",
		result:         "show up fully at work and at home",
		mistake:        "waiting for your job to give you permission to rest",
		truth:          "balance is a decision you make daily, not a schedule you find",
	},
	"leadership skills": {
		problem:        "Leading a team that doesn't trust you",
		commonSolution: "read another leadership book",
		misconception:  "Most people think leadership is about having all the answers",
		painPoint:      "watching your team wait for you to make every call",
		result:         "build a team that runs through walls for you",
		mistake:        "avoiding the hard conversation",
		truth:          "your energy sets the tone for everyone around you",
	},
	"effective communication": {
		problem:        "Being misunderstood in every meeting",
		commonSolution: "talk louder and repeat yourself",
		misconception:  "People think good communicators are just naturally talented",
		painPoint:      "leaving meetings where nobody knows what was decided",
		result:         "get your point across the first time",
		mistake:        "burying your point in the details",
		truth:          "communication is measured by what they heard, not what you said",
	},
	"time management": {
		problem:        "Never having enough time",
		commonSolution: "make a longer to-do list",
		misconception:  "Most people think time management is about doing more",
		painPoint:      "ending the day busy but with nothing important done",
		result:         "get your most important work done before lunch",
		mistake:        "giving your best hours to other people's priorities",
		truth:          "if it's not on your calendar, it's not real",
	},
	"public speaking": {
		problem:        "Freezing up in front of a room",
		commonSolution: "picture the audience in their underwear",
		misconception:  "People think great speakers don't get nervous",
		painPoint:      "your mind going blank the second everyone looks at you",
		result:         "own the room without memorizing a script",
		mistake:        "trying to be perfect instead of being clear",
		truth:          "nerves and excitement feel exactly the same in your body",
	},
	"growth mindset": {
		problem:        "Feeling stuck at your current level",
		commonSolution: "just work harder",
		misconception:  "Most people think a growth mindset means staying positive all the time",
		painPoint:      "avoiding anything you might fail at",
		result:         "turn every setback into a lesson",
		mistake:        "tying your worth to every outcome",
		truth:          "you're not bad at it, you're new at it",
	},
	"self-discipline": {
		problem:        "Starting strong and quitting by Wednesday",
		commonSolution: "find more motivation",
		misconception:  "People think disciplined people just have more willpower",
		painPoint:      "breaking the same promise to yourself over and over",
		result:         "follow through even on the days you don't feel like it",
		mistake:        "relying on motivation to show up",
		truth:          "discipline is designing your environment so the right choice is the easy one",
	},
	"career advancement": {
		problem:        "Getting passed over for promotion",
		commonSolution: "keep your head down and work hard",
		misconception:  "Most people think great work speaks for itself",
		painPoint:      "watching someone less qualified get the role you wanted",
		result:         "get seen for the work you're already doing",
		mistake:        "waiting for someone to tap you on the shoulder",
		truth:          "your next role is decided in rooms you're not in",
	},
	"emotional intelligence": {
		problem:        "Reacting before you think",
		commonSolution: "just calm down",
		misconception:  "People think emotional intelligence means hiding your emotions",
		painPoint:      "saying something in the moment you regret for a week",
		result:         "respond instead of react",
		mistake:        "ignoring what your emotions are telling you",
		truth:          "the pause between feeling and acting is where your power is",
	},
}

func spaced(topic string) string {
	return strings.ReplaceAll(topic, "_", " ")
}

// DefaultContext returns the deterministic placeholder defaults for topic.
func DefaultContext(topic string) placeholder.Context {
	clean := spaced(topic)
	title := titleCaser.String(clean)
	ctx := placeholder.Context{
		"topic":       clean,
		"topic_title": title,
		"timeframe":   "30 days",
		"number":      "3",
		"audience":    "high achievers",
		"action":      "get better at " + clean,
	}
	if a, ok := curatedAngles[topic]; ok {
		ctx["problem"] = a.problem
		ctx["common_solution"] = a.commonSolution
		ctx["misconception"] = a.misconception
		ctx["pain_point"] = a.painPoint
		ctx["result"] = a.result
		ctx["mistake"] = a.mistake
		ctx["truth"] = a.truth
		return ctx
	}
	ctx["problem"] = title
	ctx["common_solution"] = "ignore it"
	ctx["misconception"] = "Most people misunderstand " + clean
	ctx["pain_point"] = "feeling stuck with " + clean
	ctx["result"] = "finally make progress with " + clean
	ctx["mistake"] = "overthinking " + clean
	ctx["truth"] = clean + " is a skill you can build"
	return ctx
}

// ContextKeys lists the keys DefaultContext always sets.
func ContextKeys() []string {
	out := make([]string, len(contextKeys))
	copy(out, contextKeys)
	return out
}
