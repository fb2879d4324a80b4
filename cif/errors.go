package cif

import "fmt"

// ErrorKind classifies a syntax error found while validating a CIF file.
// Every kind is also an error, so callers may test for one with errors.Is:
//
//	if errors.Is(err, cif.LoopArityMismatch) { ... }
type ErrorKind int

const (
	// EmptyInput means the file has no content besides white space.
	EmptyInput ErrorKind = iota

	// MissingDataName means a data value was found with no data name
	// before it on the same line.
	MissingDataName

	// MissingDataValue means a data name stands alone on its line and the
	// next line does not open a semicolon text field.
	MissingDataValue

	// LoopArityMismatch means a row of values in a loop does not have one
	// value per data name declared by the loop.
	LoopArityMismatch

	// UnclosedTextField means a semicolon text field has no closing ';'.
	UnclosedTextField
)

func (k ErrorKind) String() string {
	switch k {
	case EmptyInput:
		return "Empty file"
	case MissingDataName:
		return "Missing inline data name"
	case MissingDataValue:
		return "Invalid inline data value"
	case LoopArityMismatch:
		return "Unmatched data values to data names in loop"
	case UnclosedTextField:
		return "Unclosed semicolon text field"
	}
	panic(fmt.Sprintf("BUG: Unknown error kind '%d'.", int(k)))
}

func (k ErrorKind) Error() string {
	return k.String()
}

// ParseError reports the first syntax error in a CIF file.
type ParseError struct {
	Kind ErrorKind

	// Line is the 1-based number of the line the error is attributed to and
	// Text is that line's content.
	Line int
	Text string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s on line %d: \"%s\"", e.Kind, e.Line, e.Text)
}

func (e *ParseError) Unwrap() error {
	return e.Kind
}
