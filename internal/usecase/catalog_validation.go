package usecase

import (
	"fmt"
	"strings"

	"movie-catalog/internal/dto/request"
	"movie-catalog/pkg/utils"

	"github.com/go-playground/validator/v10"
)

const (
	msgTitleRequired   = "Title is required."
	msgGenreRequired   = "Genre is required."
	msgYearRequired    = "Release date is required."
	msgYearFormat      = "Release date must be YYYY, YYYY-MM or YYYY-MM-DD."
	msgReviewRequired  = "Review is required."
	msgReviewTooLong   = "Review must be brief (max 50 characters)."
	msgGenreUnknownFmt = "Genre must be one of: %s."
	msgYearRangeFmt    = "Enter a valid year (%d-%d)."
)

// ValidationError carries every problem found in a draft, in field order.
type ValidationError struct {
	Messages []string
}

func (e *ValidationError) Error() string {
	return "validation failed: " + strings.Join(e.Messages, "; ")
}

func validateDraft(v *validator.Validate, draft request.MovieDraft, maxYear int) []string {
	err := v.Struct(draft.Trimmed())
	if err == nil {
		return nil
	}

	fieldErrors := utils.FieldErrors(err)
	if len(fieldErrors) == 0 {
		// only reachable on validator misuse
		return []string{err.Error()}
	}

	messages := make([]string, 0, len(fieldErrors))
	for _, fe := range fieldErrors {
		messages = append(messages, draftMessage(fe, maxYear))
	}
	return messages
}

func draftMessage(fe validator.FieldError, maxYear int) string {
	switch fe.Field() + "." + fe.Tag() {
	case "Title.required":
		return msgTitleRequired
	case "Genre.required":
		return msgGenreRequired
	case "Genre.genre":
		return fmt.Sprintf(msgGenreUnknownFmt, utils.GenreList())
	case "Year.required":
		return msgYearRequired
	case "Year.release_date":
		return msgYearFormat
	case "Year.release_year":
		return fmt.Sprintf(msgYearRangeFmt, utils.MinReleaseYear, maxYear)
	case "Review.required":
		return msgReviewRequired
	case "Review.max":
		return msgReviewTooLong
	default:
		return fe.Error()
	}
}
