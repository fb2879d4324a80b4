package cif

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// rawBlock is a data block whose items are being extracted. remaining holds
// the lines of the block that no pass has consumed yet.
type rawBlock struct {
	*DataBlock
	remaining []string
}

// loopColumn collects the values of one data name declared in a loop.
type loopColumn struct {
	name string
	strs []string
}

// extract splits input, which must already be valid, into data blocks and
// extracts the data items of each. Lines before the first data block heading
// are dropped.
func extract(input string) []*rawBlock {
	blocks := splitBlocks(stripCommentsAndBlanks(splitLines(input)))
	for _, b := range blocks {
		b.extract()
	}
	return blocks
}

func stripCommentsAndBlanks(lines []string) []string {
	kept := make([]string, 0, len(lines))
	for _, line := range lines {
		if !isCommentOrBlank(line) {
			kept = append(kept, line)
		}
	}
	return kept
}

// splitBlocks cuts lines at every data block heading. Text following the
// heading on the same line starts the new block.
func splitBlocks(lines []string) []*rawBlock {
	var (
		blocks []*rawBlock
		b      *rawBlock
	)
	for _, line := range lines {
		if header, ok := blockHeading(line); ok {
			b = &rawBlock{DataBlock: newDataBlock(header)}
			blocks = append(blocks, b)
			rest := strings.TrimLeftFunc(line[len(blockPrefix)+len(header):], isWhiteSpace)
			if rest != "" {
				b.remaining = append(b.remaining, rest)
			}
			continue
		}
		if b != nil {
			b.remaining = append(b.remaining, line)
		}
	}
	return blocks
}

// extract runs the extraction passes over the block. Each pass removes the
// lines it reads, so the order is fixed: the inline pass must not see the
// body of a text field, and the loop pass takes everything left from the
// first "loop_" on.
func (b *rawBlock) extract() {
	b.extractTextFields()
	b.extractInlineItems()
	b.extractLoops()
}

// extractTextFields reads every data name that is followed by a semicolon
// text field. The text after the opening ';', if any, is the first line of
// the value. Lines are kept verbatim, quotes included.
func (b *rawBlock) extractTextFields() {
	lines := b.remaining
	kept := make([]string, 0, len(lines))
	for i := 0; i < len(lines); i++ {
		line := lines[i]
		name, _, ok := dataName(line)
		if !ok || isInlineItem(line) || i+1 == len(lines) ||
			!isTextFieldDelimiter(lines[i+1]) {
			kept = append(kept, line)
			continue
		}
		end := i + 2
		for end < len(lines) && isTextFieldLine(lines[end]) {
			end++
		}
		if end == len(lines) || !isTextFieldDelimiter(lines[end]) {
			kept = append(kept, line)
			continue
		}

		var body []string
		if first := lines[i+1][1:]; strings.TrimFunc(first, isWhiteSpace) != "" {
			body = append(body, first)
		}
		body = append(body, lines[i+2:end]...)
		b.set(name, AsValue(strings.Join(body, "\n")))
		i = end
	}
	b.remaining = kept
}

// extractInlineItems reads every "_name value" line.
func (b *rawBlock) extractInlineItems() {
	kept := make([]string, 0, len(b.remaining))
	for _, line := range b.remaining {
		if name, value, ok := inlineItem(line); ok {
			b.set(name, AsValue(stripQuotes(value)))
			continue
		}
		kept = append(kept, line)
	}
	b.remaining = kept
}

// extractLoops reads every loop left in the block. Anything from the first
// "loop_" to the end of the block belongs to some loop.
func (b *rawBlock) extractLoops() {
	start := -1
	for i, line := range b.remaining {
		if isLoopMarker(line) {
			start = i
			break
		}
	}
	if start < 0 {
		return
	}

	var loop []string
	for _, line := range b.remaining[start+1:] {
		if isLoopMarker(line) {
			b.extractLoop(loop)
			loop = nil
			continue
		}
		loop = append(loop, line)
	}
	b.extractLoop(loop)
	b.remaining = b.remaining[:start]
}

// extractLoop reads a single loop. The data names leading the loop name its
// columns, and every later line that starts with a data value is a row of
// values assigned to the columns by position. Other lines, such as an
// indented comment, are passed over as the validator passes over them.
func (b *rawBlock) extractLoop(lines []string) {
	cols := make([]loopColumn, 0, 5)
	for _, line := range lines {
		name, _, ok := dataName(line)
		if !ok {
			break
		}
		cols = append(cols, loopColumn{
			name: name,
			strs: make([]string, 0, len(lines)),
		})
	}
	for _, line := range lines[len(cols):] {
		if !startsDataValue(line) {
			continue
		}
		for i, val := range dataValues(line) {
			if i == len(cols) {
				break
			}
			cols[i].strs = append(cols[i].strs, stripQuotes(val))
		}
	}
	for _, col := range cols {
		b.set(col.name, AsValue(col.strs))
	}
}

// String abbreviates the remaining text to keep the output readable.
func (b *rawBlock) String() string {
	raw := strings.Join(b.remaining, "\n")
	if utf8.RuneCountInString(raw) > 18 {
		raw = string([]rune(raw)[:15]) + "..."
	}
	return fmt.Sprintf("DataBlock(%q, %q, %v)", b.Header, raw, b.rawItems())
}
