package cli

import "errors"

// ErrValidation marks command failures caused by input that did not pass
// the form validation rules. The root command maps it to ExitValidation.
var ErrValidation = errors.New("validation failed")
