package tips

import (
	"fmt"

	"github.com/yungbote/reelcraft-backend/internal/domain/content"
)

const (
	FirstTipSecond = 12
	TipSeconds     = 13

	VisualTalkingHead      = "Talking Head"
	VisualTalkingHeadBRoll = "Talking Head with B-roll overlay"
)

// Window returns the timestamp label for the i-th tip (0-indexed).
func Window(i int) string {
	start := FirstTipSecond + TipSeconds*i
	return fmt.Sprintf("%d-%d seconds", start, start+TipSeconds)
}

// Format numbers tips 1..k in order and assigns contiguous 13-second
// windows starting at second 12.
func Format(tips []content.Tip) []content.FormattedTip {
	out := make([]content.FormattedTip, 0, len(tips))
	for i, t := range tips {
		visual := VisualTalkingHead
		if t.BRoll {
			visual = VisualTalkingHeadBRoll
		}
		out = append(out, content.FormattedTip{
			Number:      i + 1,
			Timestamp:   Window(i),
			Visual:      visual,
			Title:       t.Title,
			Script:      fmt.Sprintf("%d, %s. %s", i+1, t.Title, t.Explanation),
			UserExample: t.UserExample,
		})
	}
	return out
}
