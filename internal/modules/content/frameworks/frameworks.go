package frameworks

import (
	"slices"

	"github.com/yungbote/reelcraft-backend/internal/domain/content"
	"github.com/yungbote/reelcraft-backend/internal/platform/randx"
)

// Catalog is the ordered set of messaging frameworks.
type Catalog struct {
	keys  []string
	byKey map[string]content.Framework
}

func Default() *Catalog {
	c := &Catalog{byKey: map[string]content.Framework{}}
	for _, f := range catalog {
		c.keys = append(c.keys, f.Key)
		c.byKey[f.Key] = f
	}
	return c
}

func (c *Catalog) Keys() []string { return slices.Clone(c.keys) }

func (c *Catalog) Len() int { return len(c.keys) }

// All returns every framework in key order.
func (c *Catalog) All() []content.Framework {
	out := make([]content.Framework, 0, len(c.keys))
	for _, k := range c.keys {
		out = append(out, clone(c.byKey[k]))
	}
	return out
}

// Lookup returns the framework for key by exact match.
func (c *Catalog) Lookup(key string) (content.Framework, bool) {
	f, ok := c.byKey[key]
	if !ok {
		return content.Framework{}, false
	}
	return clone(f), true
}

// Get returns the framework for name, or a uniformly random one when name is
// blank or unknown.
func (c *Catalog) Get(src randx.Source, name string) content.Framework {
	if f, ok := c.Lookup(name); ok {
		return f
	}
	return clone(c.byKey[randx.Pick(src, c.keys)])
}

func clone(f content.Framework) content.Framework {
	f.Structure = slices.Clone(f.Structure)
	return f
}

var catalog = []content.Framework{
	{
		Key:  "problem-solution",
		Name: "Problem-Solution Framework",
		Structure: []string{
			"Hook: Present the problem",
			"Agitate: Why it matters",
			"Solution: Your approach",
			"Proof: Why it works",
			"Call to Action",
		},
		BestFor: "Educational content, how-to guides",
	},
	{
		Key:  "storytelling",
		Name: "Storytelling Framework",
		Structure: []string{
			"Hook: The moment everything changed",
			"Setup: Where you were before",
			"Conflict: What challenged you",
			"Resolution: How you overcame it",
			"Lesson: What others can learn",
			"Call to Action",
		},
		BestFor: "Personal brand building, connection",
	},
	{
		Key:  "listicle",
		Name: "Listicle Framework",
		Structure: []string{
			"Hook: Promise specific number of tips",
			"Credibility: Why you're qualified",
			"Tip 1: With explanation",
			"Tip 2: With explanation",
			"Tip 3: With explanation",
			"Summary: Key takeaway",
			"Call to Action",
		},
		BestFor: "Quick value, easy consumption",
	},
	{
		Key:  "before-after-bridge",
		Name: "Before-After-Bridge Framework",
		Structure: []string{
			"Hook: Paint the before",
			"After: What life looks like once it's solved",
			"Bridge: The steps that get you there",
			"Call to Action",
		},
		BestFor: "Transformation stories, coaching offers",
	},
	{
		Key:  "myth-busting",
		Name: "Myth-Busting Framework",
		Structure: []string{
			"Hook: State the myth",
			"Why people believe it",
			"The truth: What actually works",
			"Example: Proof from real life",
			"Call to Action",
		},
		BestFor: "Authority building, contrarian takes",
	},
	{
		Key:  "hot-take",
		Name: "Hot Take Framework",
		Structure: []string{
			"Hook: The unpopular opinion",
			"Context: Where it comes from",
			"Reasoning: Why you believe it",
			"Invite: Ask for their take",
			"Call to Action",
		},
		BestFor: "Comments and debate, reach",
	},
	{
		Key:  "lesson-learned",
		Name: "Lesson Learned Framework",
		Structure: []string{
			"Hook: The mistake you made",
			"What happened",
			"What it cost you",
			"What you do differently now",
			"Call to Action",
		},
		BestFor: "Vulnerability, relatability",
	},
	{
		Key:  "how-to",
		Name: "How-To Framework",
		Structure: []string{
			"Hook: The outcome they want",
			"Credibility: Why you're qualified",
			"Step 1",
			"Step 2",
			"Step 3",
			"Recap: The one thing to remember",
			"Call to Action",
		},
		BestFor: "Tutorials, saves and shares",
	},
	{
		Key:  "day-in-the-life",
		Name: "Day in the Life Framework",
		Structure: []string{
			"Hook: What a normal day looks like",
			"Morning: How you set up the day",
			"Work: The real moments, not the highlights",
			"Evening: How you reset",
			"Takeaway: The habit that holds it together",
			"Call to Action",
		},
		BestFor: "Behind the scenes, trust building",
	},
	{
		Key:  "question-answer",
		Name: "Question-Answer Framework",
		Structure: []string{
			"Hook: Read the question out loud",
			"Short answer",
			"Why it matters",
			"What to do next",
			"Call to Action",
		},
		BestFor: "Community questions, FAQ content",
	},
	{
		Key:  "mistakes-to-avoid",
		Name: "Mistakes to Avoid Framework",
		Structure: []string{
			"Hook: You're probably making these mistakes",
			"Mistake 1: And what to do instead",
			"Mistake 2: And what to do instead",
			"Mistake 3: And what to do instead",
			"Call to Action",
		},
		BestFor: "Quick wins, saves",
	},
	{
		Key:  "comparison",
		Name: "This vs That Framework",
		Structure: []string{
			"Hook: Two ways to handle the same situation",
			"Option A: The common approach",
			"Option B: The better approach",
			"Why B wins",
			"Call to Action",
		},
		BestFor: "Clear contrasts, visual content",
	},
	{
		Key:  "challenge",
		Name: "Challenge Framework",
		Structure: []string{
			"Hook: The challenge",
			"Rules: What to do and for how long",
			"Why it works",
			"What to expect",
			"Call to Action: Tag someone to do it with",
		},
		BestFor: "Engagement, community participation",
	},
	{
		Key:  "framework-reveal",
		Name: "Framework Reveal",
		Structure: []string{
			"Hook: The system you use",
			"Name it: Give the system a memorable name",
			"Walk through each part",
			"Show it in action",
			"Call to Action",
		},
		BestFor: "Thought leadership, signature ideas",
	},
	{
		Key:  "pep-talk",
		Name: "Pep Talk Framework",
		Structure: []string{
			"Hook: Speak directly to how they feel",
			"Validate: It makes sense you feel this way",
			"Reframe: Another way to see it",
			"Encourage: One small next step",
			"Call to Action",
		},
		BestFor: "Motivational content, emotional connection",
	},
}
