package handlers

import (
	"errors"

	"github.com/yungbote/reelcraft-backend/internal/data/examples"
	"github.com/yungbote/reelcraft-backend/internal/modules/content/composer"
	"github.com/yungbote/reelcraft-backend/internal/platform/apierr"
)

var (
	errInvalidBody        = apierr.BadRequest("invalid_request", errors.New("Invalid JSON body"))
	errTopicRequired      = apierr.BadRequest("empty_topic", errors.New("Please provide a topic"))
	errInvalidContentType = apierr.BadRequest("invalid_content_type", errors.New("Invalid content type"))
	errInvalidKind        = apierr.BadRequest("invalid_kind", errors.New("Invalid example kind"))
)

// apiError maps domain sentinels onto their HTTP form.
func apiError(err error) error {
	switch {
	case errors.Is(err, composer.ErrEmptyTopic):
		return errTopicRequired
	case errors.Is(err, composer.ErrInvalidContentType):
		return errInvalidContentType
	case errors.Is(err, examples.ErrInvalidKind):
		return errInvalidKind
	default:
		return apierr.Internal(err)
	}
}
