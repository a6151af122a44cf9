// Package validate holds the pure checks that gate every mutation.
// Each function returns nil or an *apperr.Error of kind Validation or State;
// none of them touch storage.
package validate

import (
	"math"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/mmynk/tal3a/internal/apperr"
	"github.com/mmynk/tal3a/internal/models"
)

const (
	MaxTitleLength         = 200
	MaxDescriptionLength   = 2000
	MaxPlaceLength         = 500
	MaxNotesLength         = 500
	MaxReviewCommentLength = 1000
	MaxCommentLength       = 500
	MinCapacity            = 1
	MaxCapacity            = 1000
	MaxCostPerPerson       = 10000
	MaxImageBytes          = 5 << 20
	MinRating              = 1
	MaxRating              = 5
)

// Lengths are counted in characters, not bytes, so Arabic titles get the
// same allowance as Latin ones.
func length(s string) int {
	return utf8.RuneCountInString(s)
}

// Title requires a non-blank title of at most MaxTitleLength characters.
func Title(title string) error {
	if strings.TrimSpace(title) == "" {
		return apperr.New(apperr.CodeTitleEmpty, "title cannot be empty")
	}
	if length(title) > MaxTitleLength {
		return apperr.Newf(apperr.CodeTitleTooLong, "title cannot exceed %d characters", MaxTitleLength)
	}
	return nil
}

// Description allows an empty description up to MaxDescriptionLength characters.
func Description(description string) error {
	if length(description) > MaxDescriptionLength {
		return apperr.Newf(apperr.CodeDescriptionTooLong, "description cannot exceed %d characters", MaxDescriptionLength)
	}
	return nil
}

// Place requires a non-blank meeting point.
func Place(place string) error {
	if strings.TrimSpace(place) == "" {
		return apperr.New(apperr.CodePlaceEmpty, "place cannot be empty")
	}
	if length(place) > MaxPlaceLength {
		return apperr.Newf(apperr.CodePlaceTooLong, "place cannot exceed %d characters", MaxPlaceLength)
	}
	return nil
}

// Capacity bounds max_participants to [MinCapacity, MaxCapacity].
func Capacity(maxParticipants int) error {
	if maxParticipants < MinCapacity || maxParticipants > MaxCapacity {
		return apperr.Newf(apperr.CodeCapacityOutOfRange,
			"max participants must be between %d and %d", MinCapacity, MaxCapacity)
	}
	return nil
}

// CapacityForCount rejects shrinking capacity below the current head count.
func CapacityForCount(maxParticipants int, current uint16) error {
	if err := Capacity(maxParticipants); err != nil {
		return err
	}
	if maxParticipants < int(current) {
		return apperr.Newf(apperr.CodeCapacityBelowCount,
			"max participants cannot be lower than the %d current participants", current)
	}
	return nil
}

// Cost accepts nil (free) or a finite amount in [0, MaxCostPerPerson].
func Cost(cost *float64) error {
	if cost == nil {
		return nil
	}
	c := *cost
	if math.IsNaN(c) || math.IsInf(c, 0) || c < 0 {
		return apperr.New(apperr.CodeCostInvalid, "cost per person cannot be negative")
	}
	if c > MaxCostPerPerson {
		return apperr.Newf(apperr.CodeCostInvalid, "cost per person cannot exceed %d", MaxCostPerPerson)
	}
	return nil
}

// Schedule requires the event to start after now.
func Schedule(scheduled, now time.Time) error {
	if !scheduled.After(now) {
		return apperr.New(apperr.CodeScheduleInPast, "scheduled time must be in the future")
	}
	return nil
}

// Sport requires one of the supported sports.
func Sport(s models.Sport) error {
	if !s.Valid() {
		return apperr.Newf(apperr.CodeSportInvalid, "unknown sport %q", s)
	}
	return nil
}

// Image bounds the cover image size.
func Image(image []byte) error {
	if len(image) > MaxImageBytes {
		return apperr.Newf(apperr.CodeImageTooLarge, "image cannot exceed %d bytes", MaxImageBytes)
	}
	return nil
}

// Notes bounds the free-form note a participant attaches when joining.
func Notes(notes string) error {
	if length(notes) > MaxNotesLength {
		return apperr.Newf(apperr.CodeNotesTooLong, "notes cannot exceed %d characters", MaxNotesLength)
	}
	return nil
}

// ParticipantStatus requires Going, Maybe or CantGo.
func ParticipantStatus(s models.ParticipantStatus) error {
	if !s.Valid() {
		return apperr.Newf(apperr.CodeParticipantStatus, "unknown participant status %q", s)
	}
	return nil
}

// Rating requires an integer score from MinRating to MaxRating.
func Rating(rating int) error {
	if rating < MinRating || rating > MaxRating {
		return apperr.Newf(apperr.CodeRatingOutOfRange, "rating must be between %d and %d", MinRating, MaxRating)
	}
	return nil
}

// ReviewComment bounds the optional review text.
func ReviewComment(comment string) error {
	if length(comment) > MaxReviewCommentLength {
		return apperr.Newf(apperr.CodeReviewCommentTooLong, "review comment cannot exceed %d characters", MaxReviewCommentLength)
	}
	return nil
}

// CommentContent requires a non-blank comment of at most MaxCommentLength characters.
func CommentContent(content string) error {
	if strings.TrimSpace(content) == "" {
		return apperr.New(apperr.CodeCommentEmpty, "comment cannot be empty")
	}
	if length(content) > MaxCommentLength {
		return apperr.Newf(apperr.CodeCommentTooLong, "comment cannot exceed %d characters", MaxCommentLength)
	}
	return nil
}
