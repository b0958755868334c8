package booking

import (
	"errors"
	"fmt"
)

// ErrValidation marks a client-side validation failure. Submissions
// failing with it never reach the network.
var ErrValidation = errors.New("validation failed")

func validationErrorf(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrValidation}, args...)...)
}
