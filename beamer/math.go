package beamer

import "strings"

// mathSegment is one piece of a line split on inline math delimiters:
// either running text or the inner source of a $...$ pair.
type mathSegment struct {
	text   string
	isMath bool
}

// splitInlineMath splits a line on unescaped $...$ delimiter pairs. The
// returned bool reports whether at least one complete pair was found; when
// it is false the line should be treated as plain text. A trailing
// unmatched $ is kept as literal text, and an empty $$ pair contributes
// nothing.
func splitInlineMath(line string) ([]mathSegment, bool) {
	var segs []mathSegment
	found := false
	var text strings.Builder

	flushText := func() {
		if text.Len() > 0 {
			segs = append(segs, mathSegment{text: text.String()})
			text.Reset()
		}
	}

	for i := 0; i < len(line); i++ {
		c := line[i]
		if c == '\\' && i+1 < len(line) {
			// Escaped character, including \$.
			text.WriteByte(c)
			text.WriteByte(line[i+1])
			i++
			continue
		}
		if c != '$' {
			text.WriteByte(c)
			continue
		}

		close := findDollar(line, i+1)
		if close < 0 {
			// Unmatched delimiter stays literal.
			text.WriteByte(c)
			continue
		}

		inner := strings.TrimSpace(line[i+1 : close])
		if inner != "" {
			flushText()
			segs = append(segs, mathSegment{text: inner, isMath: true})
			found = true
		}
		i = close
	}

	flushText()
	return segs, found
}

// findDollar returns the index of the next unescaped $ at or after i, or -1.
func findDollar(line string, i int) int {
	for ; i < len(line); i++ {
		if line[i] == '\\' {
			i++
			continue
		}
		if line[i] == '$' {
			return i
		}
	}
	return -1
}
