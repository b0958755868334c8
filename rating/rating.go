// Package rating holds the client-side review rules.
package rating

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"unicode/utf8"

	"github.com/minhle/roomstay/client"
)

// MinCommentLength is the minimum trimmed comment length the client
// accepts before letting a rating reach the network.
const MinCommentLength = 10

// ErrValidation marks a client-side validation failure.
var ErrValidation = errors.New("validation failed")

func validationErrorf(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrValidation}, args...)...)
}

// Validate checks a rating before submission: stars in 1..5 and a
// trimmed comment of at least MinCommentLength characters.
func Validate(stars int, comment string) error {
	if stars < 1 || stars > 5 {
		return validationErrorf("stars must be between 1 and 5, got %d", stars)
	}
	if utf8.RuneCountInString(strings.TrimSpace(comment)) < MinCommentLength {
		return validationErrorf("comment must be at least %d characters", MinCommentLength)
	}
	return nil
}

// Input builds the submission payload, trimming the comment the same
// way Validate measured it.
func Input(roomID int64, stars int, comment string) client.RatingInput {
	return client.RatingInput{
		RoomID:  roomID,
		Comment: strings.TrimSpace(comment),
		Stars:   stars,
	}
}

// Average returns the mean star value rounded to one decimal, and false
// when there are no ratings.
func Average(ratings []client.RatingWithUser) (float64, bool) {
	if len(ratings) == 0 {
		return 0, false
	}
	sum := 0
	for _, r := range ratings {
		sum += r.Stars
	}
	avg := float64(sum) / float64(len(ratings))
	return math.Round(avg*10) / 10, true
}
