package card

import "fmt"

// EncodingError reports that the contact payload could not be encoded into a
// scannable code, typically because it exceeds the code's capacity at the
// required error-correction level. It fails the whole render; no partial
// image is produced. Logo decode failures are not errors: the renderer
// degrades to "no logo" instead.
type EncodingError struct {
	Err error
}

func (e *EncodingError) Error() string {
	return fmt.Sprintf("encode scannable code: %v", e.Err)
}

func (e *EncodingError) Unwrap() error { return e.Err }
