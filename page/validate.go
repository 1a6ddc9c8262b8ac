package page

import (
	"errors"
	"unicode/utf8"

	"github.com/s0up4200/kinolist/catalog"
)

const (
	// MaxTitleLength is the longest accepted title, in characters
	MaxTitleLength = 30
	MinRating      = 1
	MaxRating      = 10
)

// Rule identifies the form check that failed
type Rule int

const (
	PresenceRule Rule = iota + 1
	TitleLengthRule
	RatingRangeRule
)

// String returns the rule name
func (r Rule) String() string {
	switch r {
	case PresenceRule:
		return "presence"
	case TitleLengthRule:
		return "title_length"
	case RatingRangeRule:
		return "rating_range"
	default:
		return "unknown"
	}
}

// ErrValidation matches every *ValidationError
var ErrValidation = errors.New("invalid form")

// ValidationError reports the first form check that failed. Message is meant
// to be shown to the user as is.
type ValidationError struct {
	Rule    Rule
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// Validate checks presence, then title length, then rating range, and stops
// at the first failure.
func Validate(f Form) *ValidationError {
	if f.Title == "" || f.Poster == "" || f.Rating == "" || f.Description == "" {
		return &ValidationError{
			Rule:    PresenceRule,
			Message: "Title, URL Poster, Rating, and Description are required.",
		}
	}

	if utf8.RuneCountInString(f.Title) > MaxTitleLength {
		return &ValidationError{
			Rule:    TitleLengthRule,
			Message: "Title should not exceed 30 characters",
		}
	}

	rating, ok := catalog.Rating(f.Rating).Float()
	if !ok || rating < MinRating || rating > MaxRating {
		return &ValidationError{
			Rule:    RatingRangeRule,
			Message: "Rating must be between 1 and 10",
		}
	}

	return nil
}
