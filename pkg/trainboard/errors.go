package trainboard

import "fmt"

// FetchError reports a failure to read one worksheet. Any FetchError aborts
// the whole render.
type FetchError struct {
	Sheet string
	Err   error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetch sheet %q: %v", e.Sheet, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// NewFetchError creates a new FetchError.
func NewFetchError(sheet string, err error) *FetchError {
	return &FetchError{Sheet: sheet, Err: err}
}
