package services

import (
	"strings"

	"github.com/custodia-labs/markdown-doc/internal/core/domain"
)

// sourceLine is one physical line with its byte offsets in the source.
// start is the offset of the first byte, end the offset one past the line
// terminator (or one past the last byte for an unterminated final line).
type sourceLine struct {
	text  string // line content without the trailing \n or \r\n
	start int
	end   int
}

// splitLines cuts content into physical lines while preserving exact byte
// offsets. It never allocates beyond the slice header per line.
func splitLines(content string) []sourceLine {
	var lines []sourceLine
	start := 0
	for start <= len(content) {
		if start == len(content) {
			if start == 0 {
				lines = append(lines, sourceLine{text: "", start: 0, end: 0})
			}
			break
		}
		idx := strings.IndexByte(content[start:], '\n')
		if idx < 0 {
			lines = append(lines, sourceLine{text: content[start:], start: start, end: len(content)})
			break
		}
		end := start + idx + 1
		text := content[start : end-1]
		text = strings.TrimSuffix(text, "\r")
		lines = append(lines, sourceLine{text: text, start: start, end: end})
		start = end
	}
	return lines
}

// fenceTracker recognises ``` and ~~~ fenced code blocks so heading-like
// lines inside them never open sections. A fence delimiter may be indented
// up to three spaces; the closing fence must use the same character and be
// at least as long as the opener.
type fenceTracker struct {
	open bool
	char byte
	size int
}

// observe consumes one line and reports whether it is inside a fenced
// block or is itself a fence delimiter.
func (f *fenceTracker) observe(line string) bool {
	char, size, ok := fenceDelimiter(line)
	if f.open {
		if ok && char == f.char && size >= f.size {
			f.open = false
		}
		return true
	}
	if ok {
		f.open = true
		f.char = char
		f.size = size
		return true
	}
	return false
}

// fenceDelimiter reports whether line opens or closes a fence, returning
// the fence character and run length.
func fenceDelimiter(line string) (byte, int, bool) {
	indent := 0
	for indent < len(line) && line[indent] == ' ' {
		indent++
	}
	if indent > 3 {
		return 0, 0, false
	}
	rest := line[indent:]
	if len(rest) < 3 {
		return 0, 0, false
	}
	char := rest[0]
	if char != '`' && char != '~' {
		return 0, 0, false
	}
	size := 0
	for size < len(rest) && rest[size] == char {
		size++
	}
	if size < 3 {
		return 0, 0, false
	}
	return char, size, true
}

// detectHeading reports whether line is an ATX heading at column 0:
// one to six '#' markers followed by a space or tab. Setext underlines
// and indented headings are intentionally not recognised.
func detectHeading(line string) (level int, text string, ok bool) {
	n := 0
	for n < len(line) && line[n] == '#' {
		n++
	}
	if n < 1 || n > 6 {
		return 0, "", false
	}
	if n >= len(line) || (line[n] != ' ' && line[n] != '\t') {
		return 0, "", false
	}
	return n, strings.TrimSpace(line[n:]), true
}

// frontMatterEnd returns the byte offset one past a leading YAML front
// matter block, or 0 when the document has none. The block must start on
// the very first line with "---" and close with "---" or "...".
func frontMatterEnd(lines []sourceLine) int {
	if len(lines) == 0 || strings.TrimRight(lines[0].text, " \t") != "---" {
		return 0
	}
	for _, ln := range lines[1:] {
		trimmed := strings.TrimRight(ln.text, " \t")
		if trimmed == "---" || trimmed == "..." {
			return ln.end
		}
	}
	return 0
}

// ParseDocument scans markdown source and derives its section sequence.
// Headings inside fenced code blocks and YAML front matter are skipped.
// Each heading yields one section spanning to the next heading of equal
// or shallower level, so nested sections overlap their parents.
func ParseDocument(content string) *domain.Document {
	lines := splitLines(content)
	skipUntil := frontMatterEnd(lines)

	type headingMark struct {
		level    int
		start    int
		bodyFrom int
		line     string
		text     string
	}
	var heads []headingMark
	var fences fenceTracker
	for _, ln := range lines {
		if ln.start < skipUntil {
			continue
		}
		if fences.observe(ln.text) {
			continue
		}
		level, text, ok := detectHeading(ln.text)
		if !ok {
			continue
		}
		heads = append(heads, headingMark{
			level:    level,
			start:    ln.start,
			bodyFrom: ln.end,
			line:     ln.text,
			text:     text,
		})
	}

	sections := make([]domain.Section, 0, len(heads))
	for i, h := range heads {
		end := len(content)
		for _, next := range heads[i+1:] {
			if next.level <= h.level {
				end = next.start
				break
			}
		}
		sections = append(sections, domain.Section{
			Level:       h.level,
			HeadingLine: h.line,
			HeadingText: h.text,
			Body:        content[h.bodyFrom:end],
			FullText:    content[h.start:end],
			Start:       h.start,
			End:         end,
		})
	}

	preamble := content
	if len(heads) > 0 {
		preamble = content[:heads[0].start]
	}
	return &domain.Document{
		Source:   content,
		Preamble: preamble,
		Sections: sections,
	}
}
