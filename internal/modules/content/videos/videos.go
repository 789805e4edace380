// Package videos is the catalog of short-form video types and the shots
// suggested for each.
package videos

import (
	"slices"

	"github.com/yungbote/reelcraft-backend/internal/domain/content"
)

type Library struct {
	keys  []string
	byKey map[string]content.VideoType
}

func Default() *Library {
	l := &Library{byKey: map[string]content.VideoType{}}
	for _, v := range catalog {
		l.keys = append(l.keys, v.Key)
		l.byKey[v.Key] = v
	}
	return l
}

func (l *Library) Keys() []string { return slices.Clone(l.keys) }

// List returns every video type in catalog order.
func (l *Library) List() []content.VideoType {
	out := make([]content.VideoType, 0, len(l.keys))
	for _, k := range l.keys {
		out = append(out, clone(l.byKey[k]))
	}
	return out
}

func (l *Library) Get(key string) (content.VideoType, bool) {
	v, ok := l.byKey[key]
	if !ok {
		return content.VideoType{}, false
	}
	return clone(v), true
}

// Shots returns the suggested shots for key. Unknown keys yield an empty,
// non-nil list.
func (l *Library) Shots(key string) ([]content.Shot, bool) {
	v, ok := l.byKey[key]
	if !ok {
		return []content.Shot{}, false
	}
	return slices.Clone(v.Shots), true
}

func clone(v content.VideoType) content.VideoType {
	v.Shots = slices.Clone(v.Shots)
	return v
}

var catalog = []content.VideoType{
	{
		Key:         "talking_head",
		Name:        "Talking Head",
		Description: "Straight to camera, one take or a few tight cuts.",
		BestFor:     "Tips, opinions, direct advice",
		Shots: []content.Shot{
			{Name: "Hook close-up", Description: "Tight framing, eye level, deliver the hook in one breath", Duration: "0-3 seconds"},
			{Name: "Medium shot", Description: "Chest up for the intro and main points", Duration: "3-50 seconds"},
			{Name: "Punch-in", Description: "Zoom cut on the key line for emphasis", Duration: "1-2 seconds"},
			{Name: "CTA close-up", Description: "Back to tight framing for the call to action", Duration: "50-60 seconds"},
		},
	},
	{
		Key:         "broll_montage",
		Name:        "B-roll Montage",
		Description: "Voiceover laid over everyday footage.",
		BestFor:     "Reflective content, quotes, mood pieces",
		Shots: []content.Shot{
			{Name: "Establishing shot", Description: "Wide shot of your environment: office, airport, commute", Duration: "2-3 seconds"},
			{Name: "Hands at work", Description: "Typing, writing in a notebook, pouring coffee", Duration: "2-3 seconds"},
			{Name: "Walking shot", Description: "Walking toward or away from camera", Duration: "3-4 seconds"},
			{Name: "Detail shot", Description: "Close-up of an object tied to the message", Duration: "1-2 seconds"},
			{Name: "Closing shot", Description: "Calm, wide frame to land the final line", Duration: "3-5 seconds"},
		},
	},
	{
		Key:         "tutorial",
		Name:        "Tutorial",
		Description: "Show the steps while explaining them.",
		BestFor:     "Tools, systems, how-to content",
		Shots: []content.Shot{
			{Name: "Outcome first", Description: "Show the finished result before the steps", Duration: "0-3 seconds"},
			{Name: "Screen or desk capture", Description: "Overhead or screen recording of each step", Duration: "5-10 seconds per step"},
			{Name: "Talking head check-in", Description: "Quick cut back to camera between steps", Duration: "2-3 seconds"},
			{Name: "Recap", Description: "All steps on screen as text", Duration: "3-5 seconds"},
		},
	},
	{
		Key:         "storytime",
		Name:        "Storytime",
		Description: "A personal story told to camera.",
		BestFor:     "Connection, lessons learned, personal brand",
		Shots: []content.Shot{
			{Name: "Cold open", Description: "Start mid-story with the most tense line", Duration: "0-3 seconds"},
			{Name: "Seated medium shot", Description: "Relaxed framing for the body of the story", Duration: "3-45 seconds"},
			{Name: "Cutaway", Description: "B-roll that matches the moment being described", Duration: "2-4 seconds"},
			{Name: "Lesson close-up", Description: "Tighter framing when you land the lesson", Duration: "45-60 seconds"},
		},
	},
	{
		Key:         "day_in_the_life",
		Name:        "Day in the Life",
		Description: "Quick clips across a full day with voiceover or captions.",
		BestFor:     "Behind the scenes, relatability",
		Shots: []content.Shot{
			{Name: "Morning routine", Description: "Alarm, coffee, getting ready", Duration: "2-3 seconds each"},
			{Name: "Commute", Description: "Car, train or walk into work", Duration: "2-3 seconds"},
			{Name: "Work moments", Description: "Meetings, desk, on the floor with the team", Duration: "2-3 seconds each"},
			{Name: "Evening reset", Description: "Workout, dinner, journaling, content creation", Duration: "2-3 seconds each"},
			{Name: "Reflection to camera", Description: "One honest takeaway from the day", Duration: "5-8 seconds"},
		},
	},
	{
		Key:         "green_screen",
		Name:        "Green Screen",
		Description: "You in front of a screenshot, article or post.",
		BestFor:     "Reacting to news, posts or comments",
		Shots: []content.Shot{
			{Name: "Point at the source", Description: "Gesture to the headline or comment behind you", Duration: "0-3 seconds"},
			{Name: "Highlight", Description: "Zoom into the key line of the source", Duration: "2-3 seconds"},
			{Name: "Response", Description: "Your take, medium shot in front of the source", Duration: "3-50 seconds"},
		},
	},
	{
		Key:         "pov",
		Name:        "POV",
		Description: "Acted scene from the viewer's point of view.",
		BestFor:     "Humor, relatable workplace moments",
		Shots: []content.Shot{
			{Name: "POV caption", Description: "Text overlay setting the scene", Duration: "0-2 seconds"},
			{Name: "Reaction shot", Description: "Facial reaction to the situation", Duration: "2-4 seconds"},
			{Name: "Punchline", Description: "The twist or lesson, delivered to camera", Duration: "3-5 seconds"},
		},
	},
	{
		Key:         "before_after",
		Name:        "Before / After",
		Description: "Two contrasting clips showing the change.",
		BestFor:     "Transformation, habits, mindset shifts",
		Shots: []content.Shot{
			{Name: "Before", Description: "The old way, slightly chaotic framing", Duration: "3-5 seconds"},
			{Name: "Transition", Description: "Snap, jump cut or wipe", Duration: "1 second"},
			{Name: "After", Description: "The new way, clean and steady framing", Duration: "3-5 seconds"},
			{Name: "Explain the shift", Description: "Talking head on what changed", Duration: "10-30 seconds"},
		},
	},
	{
		Key:         "listicle",
		Name:        "Listicle",
		Description: "Numbered points with on-screen text.",
		BestFor:     "Quick value, saves",
		Shots: []content.Shot{
			{Name: "Number hook", Description: "Say the number of tips on camera with text overlay", Duration: "0-3 seconds"},
			{Name: "Point shots", Description: "One framing change per point, number on screen", Duration: "10-13 seconds each"},
			{Name: "CTA", Description: "Back to camera, tell them to save it", Duration: "3-5 seconds"},
		},
	},
	{
		Key:         "qa",
		Name:        "Q&A",
		Description: "Answer a follower question on camera.",
		BestFor:     "Community, FAQ, replies to comments",
		Shots: []content.Shot{
			{Name: "Question card", Description: "Show the question as a comment sticker or text", Duration: "0-3 seconds"},
			{Name: "Answer", Description: "Medium shot, direct answer first", Duration: "3-40 seconds"},
			{Name: "Follow-up prompt", Description: "Ask viewers to drop their next question", Duration: "3-5 seconds"},
		},
	},
}
