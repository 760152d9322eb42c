package unsplash

import (
	"fmt"
)

// UserMessage is the fixed text shown to users when a fetch fails.
const UserMessage = "Error fetching data. Please try again later."

// FetchError is the single error kind produced by the client. It covers
// transport failures, non-success statuses and undecodable bodies.
type FetchError struct {
	URL        string // redacted
	StatusCode int    // 0 when no response was received
	Err        error
}

func (e *FetchError) Error() string {
	switch {
	case e.StatusCode != 0 && e.Err != nil:
		return fmt.Sprintf("fetching %s: status %d: %v", e.URL, e.StatusCode, e.Err)
	case e.StatusCode != 0:
		return fmt.Sprintf("fetching %s: unexpected status %d", e.URL, e.StatusCode)
	default:
		return fmt.Sprintf("fetching %s: %v", e.URL, e.Err)
	}
}

func (e *FetchError) Unwrap() error {
	return e.Err
}
