package cif

import "strings"

// stateFn is one context of the validator. It reads lines until the context
// changes and returns the next context, or nil once the input is exhausted.
// Syntax errors abort validation through errf.
type stateFn func(v *validator) stateFn

// textLine is a line of input along with its 1-based line number.
type textLine struct {
	num  int
	text string
}

type validator struct {
	lines []string
	pos   int // index of the current line

	// columns is the number of data names declared by the current loop.
	columns int

	// last is the most recent line read inside the open semicolon text field.
	// It starts as the opening ';' line. An unclosed field is reported
	// against it.
	last textLine
}

// validate checks the syntax of a whole CIF file and returns a *ParseError
// describing the first problem found, if any.
func validate(input string) (err error) {
	defer func() {
		if r := recover(); r != nil {
			if e, ok := r.(*ParseError); ok {
				err = e
				return
			}
			panic(r)
		}
	}()
	v := &validator{lines: splitLines(input)}
	if strings.TrimFunc(input, isWhiteSpace) == "" {
		v.errf(EmptyInput, v.line())
	}
	for state := stateFn(validateTop); state != nil; {
		state = state(v)
	}
	return nil
}

func (v *validator) done() bool {
	return v.pos >= len(v.lines)
}

func (v *validator) current() string {
	return v.lines[v.pos]
}

func (v *validator) line() textLine {
	return textLine{num: v.pos + 1, text: v.lines[v.pos]}
}

func (v *validator) next() {
	v.pos++
}

// errf stops validation with an error of the given kind attributed to ln.
func (v *validator) errf(kind ErrorKind, ln textLine) {
	panic(&ParseError{Kind: kind, Line: ln.num, Text: ln.text})
}

// validateTop reads lines outside of any loop or text field.
func validateTop(v *validator) stateFn {
	if v.done() {
		return nil
	}
	line := v.current()
	switch {
	case isCommentOrBlank(line) || isInlineItem(line) || isBlockHeading(line):
		v.next()
	case isLoopMarker(line):
		v.next()
		v.columns = 0
		return validateLoopNames
	case startsDataValue(line):
		v.errf(MissingDataName, v.line())
	case isDataName(line):
		return validateLoneDataName
	default:
		// Nothing can be made of a line such as an indented comment, so it
		// is passed over.
		v.next()
	}
	return validateTop
}

// validateLoopNames counts the data names that open a loop.
func validateLoopNames(v *validator) stateFn {
	for ; !v.done(); v.next() {
		line := v.current()
		switch {
		case isCommentOrBlank(line):
		case isDataName(line):
			v.columns++
		default:
			return validateLoopValues
		}
	}
	return nil
}

// validateLoopValues checks that every row in a loop has one value per
// declared data name. The first line that is not a row ends the loop and is
// read again at the top level.
func validateLoopValues(v *validator) stateFn {
	for ; !v.done(); v.next() {
		line := v.current()
		switch {
		case isCommentOrBlank(line):
		case isLoopRow(line):
			if len(dataValues(line)) != v.columns {
				v.errf(LoopArityMismatch, v.line())
			}
		default:
			return validateTop
		}
	}
	return nil
}

// validateLoneDataName handles a data name with no value on its line, which
// is only allowed when a semicolon text field follows immediately.
func validateLoneDataName(v *validator) stateFn {
	tag := v.line()
	v.next()
	if v.done() || !isTextFieldDelimiter(v.current()) {
		v.errf(MissingDataValue, tag)
	}
	v.last = v.line()
	v.next()
	return validateTextField
}

// validateTextField reads the body of a semicolon text field up to and
// including its closing ';' line.
func validateTextField(v *validator) stateFn {
	for ; !v.done(); v.next() {
		line := v.current()
		if !isCommentOrBlank(line) && !isTextFieldLine(line) {
			break
		}
		v.last = v.line()
	}
	if v.done() || !isTextFieldDelimiter(v.current()) {
		v.errf(UnclosedTextField, v.last)
	}
	v.next()
	return validateTop
}

// isLoopRow reports whether line holds data values for the current loop
// rather than starting something new.
func isLoopRow(line string) bool {
	return startsDataValue(line) && !isLoopMarker(line) && !isBlockHeading(line)
}
