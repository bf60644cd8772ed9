package jobs

import "fmt"

// InsufficientContentError indicates the extraction stage produced too little
// text to generate anything useful from. It is a hard per-job failure; the
// generation stage is never reached.
type InsufficientContentError struct {
	Length int
}

func (e *InsufficientContentError) Error() string {
	return fmt.Sprintf("insufficient extractable content: %d characters after trimming, need at least %d", e.Length, MinContentLength)
}
