package registry

import "fmt"

// DuplicateGroupError is returned when a group label is registered twice.
type DuplicateGroupError struct {
	Label string
}

func (e *DuplicateGroupError) Error() string {
	return fmt.Sprintf("group %q already registered", e.Label)
}

// DuplicateExampleError is returned when a group lists the same example ID twice.
type DuplicateExampleError struct {
	Group string
	ID    string
}

func (e *DuplicateExampleError) Error() string {
	return fmt.Sprintf("group %q: example %q listed twice", e.Group, e.ID)
}
