package hooks

import "github.com/yungbote/reelcraft-backend/internal/modules/content/placeholder"

// Technique is a named hook-point technique with its own templates and
// defaults. Defaults are merged over the topic context.
type Technique struct {
	Key         string
	Name        string
	Description string
	Templates   []string
	Defaults    placeholder.Context
}

var techniqueCatalog = []Technique{
	{
		Key:         "curiosity_gap",
		Name:        "Curiosity Gap",
		Description: "Open a loop the viewer needs closed.",
		Templates: []string{
			"There's {{.secret}} about {{.topic}} that nobody mentions.",
			"I found {{.secret}} about {{.topic}} and it changed everything.",
			"Wait until you hear {{.secret}} about {{.topic}}.",
		},
		Defaults: placeholder.Context{"secret": "one thing"},
	},
	{
		Key:         "pattern_interrupt",
		Name:        "Pattern Interrupt",
		Description: "Break the scroll with something unexpected.",
		Templates: []string{
			"{{.interrupt}} Now let's talk about {{.topic}}.",
			"{{.interrupt}} That's how most people approach {{.topic}}.",
			"{{.interrupt}} {{.problem}} works the same way.",
		},
		Defaults: placeholder.Context{"interrupt": "Stop. Don't scroll yet."},
	},
	{
		Key:         "contrarian",
		Name:        "Contrarian Take",
		Description: "Push back on the advice everyone repeats.",
		Templates: []string{
			"Everyone says {{.common_solution}}. {{.contrarian}}",
			"{{.contrarian}} Especially when it comes to {{.topic}}.",
			"I'm going to say something about {{.topic}} you won't like. {{.contrarian}}",
		},
		Defaults: placeholder.Context{"contrarian": "I think that's terrible advice."},
	},
	{
		Key:         "storytelling",
		Name:        "Story Open",
		Description: "Start in the middle of a moment.",
		Templates: []string{
			"{{.story_open}} That's when I realized {{.truth}}.",
			"{{.story_open}} It taught me everything about {{.topic}}.",
			"{{.story_open}} I was {{.mistake}}.",
		},
		Defaults: placeholder.Context{"story_open": "A few years ago, I was in a meeting that went completely sideways."},
	},
	{
		Key:         "direct_callout",
		Name:        "Direct Call-Out",
		Description: "Name the exact viewer this is for.",
		Templates: []string{
			"{{.callout}} and {{.pain_point}}, this is for you.",
			"{{.callout}}, you need to hear this about {{.topic}}.",
			"{{.callout}}? Here's how to {{.result}}.",
		},
		Defaults: placeholder.Context{"callout": "If you're the one everyone depends on"},
	},
	{
		Key:         "bold_promise",
		Name:        "Bold Promise",
		Description: "Promise a specific outcome up front.",
		Templates: []string{
			"By the end of this video you'll know how to {{.result}}. {{.promise}}",
			"{{.promise}} Here's how to {{.result}}.",
			"{{.number}} steps. {{.timeframe}}. {{.promise}}",
		},
		Defaults: placeholder.Context{"promise": "No fluff, just what works."},
	},
	{
		Key:         "question",
		Name:        "Loaded Question",
		Description: "Ask a question the viewer answers in their head.",
		Templates: []string{
			"{{.question}} Because {{.topic}} depends on it.",
			"{{.question}} Most people say no. Here's why that matters for {{.topic}}.",
			"{{.question}} If not, {{.truth}}.",
		},
		Defaults: placeholder.Context{"question": "When's the last time you actually felt in control?"},
	},
	{
		Key:         "mistake_warning",
		Name:        "Mistake Warning",
		Description: "Warn about a costly mistake.",
		Templates: []string{
			"{{.warning}} {{.mistake}} is costing you.",
			"{{.warning}} If you're {{.mistake}}, stop.",
			"{{.warning}} This {{.topic}} mistake is everywhere.",
		},
		Defaults: placeholder.Context{"warning": "Warning:"},
	},
	{
		Key:         "before_after",
		Name:        "Before / After",
		Description: "Contrast where you were with where you are.",
		Templates: []string{
			"{{.before}} Now? I {{.after}}.",
			"{{.before}} Here's what changed with {{.topic}}.",
			"From {{.pain_point}} to being able to {{.result}}. Here's how.",
		},
		Defaults: placeholder.Context{
			"before": "A year ago I couldn't get through a week without burning out.",
			"after":  "actually enjoy Mondays",
		},
	},
	{
		Key:         "myth_busting",
		Name:        "Myth Busting",
		Description: "Call out a myth and replace it.",
		Templates: []string{
			"Myth: {{.misconception}}. {{.myth_close}}",
			"Let's bust the biggest {{.topic}} myth. {{.myth_close}}",
			"{{.misconception}}? {{.myth_close}} {{.truth}}.",
		},
		Defaults: placeholder.Context{"myth_close": "Here's the truth."},
	},
}

// customPatterns only interpolate the topic.
var customPatterns = []string{
	"Let's talk about %s, because nobody else is being honest about it.",
	"Here's what nobody tells you about %s.",
	"I've been thinking a lot about %s lately, and here's where I landed.",
	"If %s has been on your mind, keep watching.",
	"This is your sign to take %s seriously.",
	"The %s advice I wish I'd heard sooner.",
	"Three things about %s that changed how I show up every day.",
	"Why %s matters more than you think.",
	"My honest take on %s after years of getting it wrong.",
	"You don't need to be perfect at %s. You just need to start.",
}
