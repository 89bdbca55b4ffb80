package unit

import "fmt"

// FetchError describes a failed refresh: the request could not be made, the
// source answered with an error status, or the body could not be decoded.
// It is recorded on the unit and never propagated past the host.
type FetchError struct {
	URL    string
	Status int
	Err    error
}

func (e *FetchError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("fetch %s: status %d: %v", e.URL, e.Status, e.Err)
	}
	return fmt.Sprintf("fetch %s: %v", e.URL, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}
