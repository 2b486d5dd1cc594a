package store

import "fmt"

// UnknownSectionError indicates a section name that is not one of the six
// repeated record sections.
type UnknownSectionError struct {
	Section string
}

func (e *UnknownSectionError) Error() string {
	return fmt.Sprintf("unknown repeated section: %q", e.Section)
}

// RecordError indicates that record fields could not be decoded for a section.
type RecordError struct {
	Section string
	Cause   error
}

func (e *RecordError) Error() string {
	return fmt.Sprintf("invalid record for section %q: %v", e.Section, e.Cause)
}

func (e *RecordError) Unwrap() error {
	return e.Cause
}
