package style

import (
	"fmt"
	"strings"

	"github.com/yungbote/reelcraft-backend/internal/platform/randx"
)

var curatedActions = map[string][]string{
	"dealing with negative people": {"work with people you don't get along with", "protect your energy around negative people"},
	"building confidence":          {"boost your confidence", "build real confidence"},
	"overcoming self-doubt":        {"overcome self-doubt", "stop second-guessing yourself"},
	"setting boundaries":           {"set healthy boundaries", "protect your time and energy"},
	"managing stress":              {"manage stress effectively", "stay calm under pressure"},
	"finding work-life balance":    {"achieve work-life balance", "stop bringing work home"},
	"leadership skills":            {"become a better leader", "lead with confidence"},
	"effective communication":      {"communicate more effectively", "get your point across"},
	"time management":              {"manage your time better", "take back your calendar"},
	"delegation skills":            {"delegate like a leader", "hand off work without losing control"},
	"career transitions":           {"make your next career move", "pivot with confidence"},
}

var genericActions = []string{
	"improve your %s",
	"master %s",
	"get better at %s",
	"take control of %s",
	"level up your %s",
}

// Action turns topic into a verb phrase.
func Action(src randx.Source, topic string) string {
	if opts, ok := curatedActions[topic]; ok {
		return randx.Pick(src, opts)
	}
	return fmt.Sprintf(randx.Pick(src, genericActions), strings.ReplaceAll(topic, "_", " "))
}

// ActionOptions enumerates every phrase Action can return for topic.
func ActionOptions(topic string) []string {
	if opts, ok := curatedActions[topic]; ok {
		return append([]string(nil), opts...)
	}
	clean := strings.ReplaceAll(topic, "_", " ")
	out := make([]string, 0, len(genericActions))
	for _, pat := range genericActions {
		out = append(out, fmt.Sprintf(pat, clean))
	}
	return out
}
