package beamer

import (
	"regexp"
	"strings"
)

var (
	beginEndRe = regexp.MustCompile(`\\(?:begin|end)\{[a-zA-Z]+\*?\}`)
	argCmdRe   = regexp.MustCompile(`\\[a-zA-Z@]+\*?(?:\[[^\]]*\])?\{([^{}]*)\}`)
	bareCmdRe  = regexp.MustCompile(`\\[a-zA-Z@]+\*?`)
	spaceRe    = regexp.MustCompile(`\s+`)
)

// specialChars maps escaped LaTeX specials back to their literal form.
var specialChars = strings.NewReplacer(
	`\&`, "&",
	`\%`, "%",
	`\$`, "$",
	`\#`, "#",
	`\_`, "_",
)

// cleanText reduces a fragment of markup to its visible text: environment
// tokens are dropped, commands with a braced argument are replaced by the
// argument's inner text (one level only), bare commands are stripped,
// escaped specials are unescaped, and leftover braces and whitespace runs
// are collapsed. Inline math delimiters are left alone.
func cleanText(s string) string {
	s = beginEndRe.ReplaceAllString(s, "")
	s = argCmdRe.ReplaceAllString(s, "$1")
	s = bareCmdRe.ReplaceAllString(s, "")
	s = strings.ReplaceAll(s, `\\`, " ")
	s = specialChars.Replace(s)
	s = strings.ReplaceAll(s, "{", "")
	s = strings.ReplaceAll(s, "}", "")
	s = strings.ReplaceAll(s, "~", " ")
	s = spaceRe.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// stripComment cuts an unescaped % and everything after it. Escaped \% is
// kept for cleanText to unescape later.
func stripComment(line string) string {
	for i := 0; i < len(line); i++ {
		if line[i] == '%' {
			if i > 0 && line[i-1] == '\\' {
				continue
			}
			return line[:i]
		}
	}
	return line
}

// stripComments applies stripComment to every line of a source blob.
func stripComments(src string) string {
	lines := strings.Split(src, "\n")
	for i, line := range lines {
		lines[i] = stripComment(line)
	}
	return strings.Join(lines, "\n")
}

// bracedGroup reads a balanced {...} group starting at s[start] (which must
// be '{') and returns the inner text and the index just past the closing
// brace. An unbalanced group runs to the end of s.
func bracedGroup(s string, start int) (string, int) {
	depth := 0
	for i := start; i < len(s); i++ {
		switch s[i] {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return s[start+1 : i], i + 1
			}
		}
	}
	return s[start+1:], len(s)
}

// skipSpaces advances past spaces and tabs, staying on the current line.
func skipSpaces(s string, i int) int {
	for i < len(s) && (s[i] == ' ' || s[i] == '\t') {
		i++
	}
	return i
}
