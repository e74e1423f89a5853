package pipeline

import (
	"errors"
	"fmt"
)

// ErrNoHeader signals that no recognizable header row was found in an
// input file. The run aborts rather than guessing at column positions.
var ErrNoHeader = errors.New("no header row found")

// MissingColumnError reports a required column absent from an input file.
// Partial processing of a malformed export is never attempted.
type MissingColumnError struct {
	File   string
	Column string
}

func (e *MissingColumnError) Error() string {
	return fmt.Sprintf("file %s is missing required column %q", e.File, e.Column)
}

// EmptyInputError reports an input file that produced no data rows.
type EmptyInputError struct {
	File string
}

func (e *EmptyInputError) Error() string {
	return fmt.Sprintf("file %s contains no data rows", e.File)
}
