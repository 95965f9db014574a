package errs

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned by direct get-by-id lookups. List and discover
// operations return empty slices instead.
var ErrNotFound = errors.New("not found")

// Validation reports a missing or out-of-range field. Callers should not
// retry without changing the input.
type Validation struct {
	Msg string
}

func (v *Validation) Error() string { return v.Msg }

func Validationf(format string, args ...interface{}) error {
	return &Validation{Msg: fmt.Sprintf(format, args...)}
}

func IsValidation(err error) bool {
	var v *Validation
	return errors.As(err, &v)
}
