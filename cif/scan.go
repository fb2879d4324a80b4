package cif

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

const (
	tagPrefix      = '_'
	commentStart   = '#'
	textFieldDelim = ';'

	blockPrefix  = "data_"
	loopMarker   = "loop_"
	versionMagic = "#\\#CIF_"
)

// splitLines breaks input into lines on '\n'. A '\r' ending a line is
// dropped, so CRLF input is read the same as LF input.
func splitLines(input string) []string {
	lines := strings.Split(input, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}

// isCommentOrBlank reports whether line is empty, all white space or a
// comment. A comment is a '#' preceded by nothing but word characters, so a
// line such as "_cell_length_a 4.99 # angstrom" is not a comment.
func isCommentOrBlank(line string) bool {
	if strings.HasPrefix(strings.TrimLeftFunc(line, isWordChar), "#") {
		return true
	}
	return strings.TrimFunc(line, isWhiteSpace) == ""
}

// blockHeading returns the name of the data block introduced by line, which
// is the run of non-blank characters after "data_" (in any case).
func blockHeading(line string) (string, bool) {
	if !hasPrefixFold(line, blockPrefix) {
		return "", false
	}
	name := line[len(blockPrefix):]
	if i := strings.IndexFunc(name, isWhiteSpace); i >= 0 {
		name = name[:i]
	}
	return name, name != ""
}

func isBlockHeading(line string) bool {
	_, ok := blockHeading(line)
	return ok
}

// isLoopMarker reports whether line is the "loop_" token on its own,
// optionally followed by white space.
func isLoopMarker(line string) bool {
	if !hasPrefixFold(line, loopMarker) {
		return false
	}
	return strings.TrimFunc(line[len(loopMarker):], isWhiteSpace) == ""
}

// dataName returns the data name starting line (without its underscore)
// along with whatever follows it on the line. Leading white space is
// allowed.
func dataName(line string) (name, rest string, ok bool) {
	s := strings.TrimLeftFunc(line, isWhiteSpace)
	if len(s) < 2 || s[0] != tagPrefix {
		return "", "", false
	}
	s = s[1:]
	end := strings.IndexFunc(s, isWhiteSpace)
	if end < 0 {
		end = len(s)
	}
	if end == 0 {
		return "", "", false
	}
	return s[:end], s[end:], true
}

func isDataName(line string) bool {
	_, _, ok := dataName(line)
	return ok
}

// inlineItem splits a line of the form "_name value" into its data name and
// raw (still quoted) value. Anything after the value is ignored.
func inlineItem(line string) (name, value string, ok bool) {
	name, rest, ok := dataName(line)
	if !ok || rest == "" {
		return "", "", false
	}
	value, _, ok = valueToken(strings.TrimLeftFunc(rest, isWhiteSpace))
	if !ok {
		return "", "", false
	}
	return name, value, true
}

func isInlineItem(line string) bool {
	_, _, ok := inlineItem(line)
	return ok
}

// valueToken returns the data value at the very start of s and its length
// in bytes. A value is either quoted ('...' or "..." with at least one
// character and no closing quote inside) or a bare run that does not start
// with white space, '_' or '#' and stops at white space or a quote. A quote
// without a matching partner is read as the start of a bare value.
func valueToken(s string) (string, int, bool) {
	if s == "" {
		return "", 0, false
	}
	r, w := utf8.DecodeRuneInString(s)
	if isWhiteSpace(r) || r == tagPrefix || r == commentStart {
		return "", 0, false
	}
	if isQuote(r) {
		if end := strings.IndexRune(s[w:], r); end > 0 {
			n := w + end + w
			return s[:n], n, true
		}
	}
	n := len(s)
	if end := strings.IndexFunc(s[w:], endsBareValue); end >= 0 {
		n = w + end
	}
	return s[:n], n, true
}

// startsDataValue reports whether the first non-blank text on line can begin
// a data value.
func startsDataValue(line string) bool {
	_, _, ok := valueToken(strings.TrimLeftFunc(line, isWhiteSpace))
	return ok
}

// dataValues returns every data value on line, left to right. Characters
// where no value can start (such as a stray '_' or '#') are skipped.
func dataValues(line string) []string {
	var vals []string
	for i := 0; i < len(line); {
		rest := strings.TrimLeftFunc(line[i:], isWhiteSpace)
		if rest == "" {
			break
		}
		i = len(line) - len(rest)
		if tok, n, ok := valueToken(rest); ok {
			vals = append(vals, tok)
			i += n
			continue
		}
		_, w := utf8.DecodeRuneInString(rest)
		i += w
	}
	return vals
}

// isTextFieldLine reports whether line may continue an open semicolon text
// field: it has at least two characters, does not start with '_' and does
// not have ';' as its second character. A lone ";" therefore never
// qualifies and ends the field.
func isTextFieldLine(line string) bool {
	r, w := utf8.DecodeRuneInString(line)
	if w == 0 || r == tagPrefix {
		return false
	}
	r, w = utf8.DecodeRuneInString(line[w:])
	return w > 0 && r != textFieldDelim
}

// isTextFieldDelimiter reports whether line opens or closes a semicolon text
// field.
func isTextFieldDelimiter(line string) bool {
	return strings.HasPrefix(line, string(textFieldDelim))
}

// stripQuotes removes one leading and one trailing quote from a data value,
// when present.
func stripQuotes(v string) string {
	if v != "" && isQuote(rune(v[0])) {
		v = v[1:]
	}
	if v != "" && isQuote(rune(v[len(v)-1])) {
		v = v[:len(v)-1]
	}
	return v
}

// versionComment extracts the version from the "#\#CIF_1.1" annotation
// recommended for the first line of a file.
func versionComment(line string) (string, bool) {
	if !strings.HasPrefix(line, versionMagic) {
		return "", false
	}
	v := line[len(versionMagic)-len("CIF_"):]
	if i := strings.IndexFunc(v, isWhiteSpace); i >= 0 {
		v = v[:i]
	}
	return v, true
}

func hasPrefixFold(s, prefix string) bool {
	return len(s) >= len(prefix) && strings.EqualFold(s[:len(prefix)], prefix)
}

func isWhiteSpace(r rune) bool {
	return unicode.IsSpace(r)
}

func isWordChar(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

func isQuote(r rune) bool {
	return r == '\'' || r == '"'
}

func endsBareValue(r rune) bool {
	return isWhiteSpace(r) || isQuote(r)
}
