package composer

import (
	"fmt"
	"strings"

	"github.com/yungbote/reelcraft-backend/internal/domain/content"
	"github.com/yungbote/reelcraft-backend/internal/platform/randx"
)

// ContentHooks returns count hook ideas for category. A blank or unknown
// category resolves to a random known one, and every record reports the
// resolved category.
func (c *Composer) ContentHooks(category string, count int) []content.HookIdea {
	if count <= 0 {
		return []content.HookIdea{}
	}
	category = strings.TrimSpace(category)
	topics, ok := c.taxonomy.Topics(category)
	if !ok || len(topics) == 0 {
		category = c.taxonomy.RandomCategory(c.src)
		topics, _ = c.taxonomy.Topics(category)
	}
	out := make([]content.HookIdea, 0, count)
	for i := 0; i < count; i++ {
		topic := randx.Pick(c.src, topics)
		out = append(out, content.HookIdea{
			Number:   i + 1,
			Category: category,
			Topic:    topic,
			Hook:     c.SelectHook(topic),
			UseCase:  useCase,
		})
	}
	return out
}

// QuickIdeas samples min(count, n) distinct topics from one random category.
func (c *Composer) QuickIdeas(count int) []content.QuickIdea {
	if count <= 0 {
		return []content.QuickIdea{}
	}
	topics, _ := c.taxonomy.Topics(c.taxonomy.RandomCategory(c.src))
	picked := randx.Sample(c.src, topics, count)
	out := make([]content.QuickIdea, 0, len(picked))
	for i, topic := range picked {
		out = append(out, content.QuickIdea{
			Number: i + 1,
			Topic:  topic,
			Hook:   c.SelectHook(topic),
			Format: ideaFormat,
			CTA:    c.style.SignatureCTA,
		})
	}
	return out
}

// ValidateCustomTopic trims and lowercases input, rejecting blank topics.
func ValidateCustomTopic(input string) (string, error) {
	topic := strings.ToLower(strings.TrimSpace(input))
	if topic == "" {
		return "", ErrEmptyTopic
	}
	return topic, nil
}

func normalizeContentType(contentType string) (string, error) {
	ct := strings.ToLower(strings.TrimSpace(contentType))
	if ct == "" {
		return ContentTypeReel, nil
	}
	for _, known := range ContentTypes {
		if ct == known {
			return ct, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidContentType, contentType)
}

// CustomContent generates content for a caller-supplied topic. The topic is
// validated before anything is generated.
func (c *Composer) CustomContent(input, contentType string, numTips int) (content.Custom, error) {
	topic, err := ValidateCustomTopic(input)
	if err != nil {
		return content.Custom{}, err
	}
	ct, err := normalizeContentType(contentType)
	if err != nil {
		return content.Custom{}, err
	}

	switch ct {
	case ContentTypeHooks:
		list := make([]string, 0, max(numTips, 0))
		for i := 0; i < numTips; i++ {
			list = append(list, c.SelectHook(topic))
		}
		return content.Custom{Type: ct, Hooks: &content.CustomHooks{
			CustomTopic:   true,
			OriginalInput: input,
			Topic:         topic,
			Hooks:         list,
			UseCase:       useCase,
		}}, nil
	case ContentTypeQuickIdea:
		return content.Custom{Type: ct, QuickIdea: &content.CustomQuickIdea{
			CustomTopic:        true,
			OriginalInput:      input,
			Topic:              topic,
			Hook:               c.SelectHook(topic),
			Format:             ideaFormat,
			CTA:                c.style.SignatureCTA,
			SuggestedFramework: suggestedFrame,
		}}, nil
	default:
		return content.Custom{Type: ct, Reel: &content.CustomReel{
			Reel:          c.ComposeReel(topic, numTips),
			CustomTopic:   true,
			OriginalInput: input,
		}}, nil
	}
}
