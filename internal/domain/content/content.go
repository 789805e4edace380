package content

import "strings"

const (
	BRollStart = "[start B-roll]"
	BRollEnd   = "[end B-roll]"
)

// Tip is a single actionable point. Explanation may carry B-roll markers.
type Tip struct {
	Title       string `json:"title"`
	Explanation string `json:"explanation"`
	BRoll       bool   `json:"b_roll"`
	UserExample bool   `json:"user_example,omitempty"`
}

// HasBRollMarker reports whether text contains either overlay marker.
func HasBRollMarker(text string) bool {
	return strings.Contains(text, BRollStart) || strings.Contains(text, BRollEnd)
}

type FormattedTip struct {
	Number      int    `json:"number"`
	Timestamp   string `json:"timestamp"`
	Visual      string `json:"visual"`
	Title       string `json:"title"`
	Script      string `json:"script"`
	UserExample bool   `json:"user_example,omitempty"`
}

type Segment struct {
	Timestamp string `json:"timestamp"`
	Visual    string `json:"visual"`
	Script    string `json:"script"`
}

type ReelStructure struct {
	Hook       Segment        `json:"hook"`
	Intro      Segment        `json:"intro"`
	Transition Segment        `json:"transition"`
	Tips       []FormattedTip `json:"tips"`
	CTA        Segment        `json:"cta"`
}

type Reel struct {
	ContentType string        `json:"content_type"`
	Topic       string        `json:"topic"`
	Duration    string        `json:"duration"`
	Structure   ReelStructure `json:"structure"`
	FullScript  string        `json:"full_script"`
}

// ScriptParts returns every segment script in reel order.
func (r *Reel) ScriptParts() []string {
	parts := make([]string, 0, 4+len(r.Structure.Tips))
	parts = append(parts, r.Structure.Hook.Script, r.Structure.Intro.Script, r.Structure.Transition.Script)
	for _, tip := range r.Structure.Tips {
		parts = append(parts, tip.Script)
	}
	return append(parts, r.Structure.CTA.Script)
}

type Framework struct {
	Key       string   `json:"key"`
	Name      string   `json:"name"`
	Structure []string `json:"structure"`
	BestFor   string   `json:"best_for"`
}

type HookIdea struct {
	Number   int    `json:"number"`
	Category string `json:"category"`
	Topic    string `json:"topic"`
	Hook     string `json:"hook"`
	UseCase  string `json:"use_case"`
}

type QuickIdea struct {
	Number int    `json:"number"`
	Topic  string `json:"topic"`
	Hook   string `json:"hook"`
	Format string `json:"format"`
	CTA    string `json:"cta"`
}

type Shot struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Duration    string `json:"duration"`
}

type VideoType struct {
	Key         string `json:"key"`
	Name        string `json:"name"`
	Description string `json:"description"`
	BestFor     string `json:"best_for"`
	Shots       []Shot `json:"shots"`
}

// CustomReel is a reel generated for a caller-supplied topic.
type CustomReel struct {
	Reel
	CustomTopic   bool   `json:"custom_topic"`
	OriginalInput string `json:"original_input"`
}

type CustomHooks struct {
	CustomTopic   bool     `json:"custom_topic"`
	OriginalInput string   `json:"original_input"`
	Topic         string   `json:"topic"`
	Hooks         []string `json:"hooks"`
	UseCase       string   `json:"use_case"`
}

type CustomQuickIdea struct {
	CustomTopic        bool   `json:"custom_topic"`
	OriginalInput      string `json:"original_input"`
	Topic              string `json:"topic"`
	Hook               string `json:"hook"`
	Format             string `json:"format"`
	CTA                string `json:"cta"`
	SuggestedFramework string `json:"suggested_framework"`
}

// Custom holds exactly one of Reel, Hooks or QuickIdea, matching Type.
type Custom struct {
	Type      string
	Reel      *CustomReel
	Hooks     *CustomHooks
	QuickIdea *CustomQuickIdea
}

// Payload returns the populated variant for JSON rendering.
func (c Custom) Payload() any {
	switch {
	case c.Reel != nil:
		return c.Reel
	case c.Hooks != nil:
		return c.Hooks
	case c.QuickIdea != nil:
		return c.QuickIdea
	default:
		return nil
	}
}
