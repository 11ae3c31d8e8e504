package beamer

import (
	"regexp"
	"strings"

	"github.com/tsawler/presenta/model"
)

var (
	frametitleRe    = regexp.MustCompile(`(?i)\\frametitle\{([^}]*)\}`)
	framesubtitleRe = regexp.MustCompile(`(?i)\\framesubtitle\{([^}]*)\}`)
	itemRe          = regexp.MustCompile(`(?i)^\\item\s+(.+)`)
	graphicsRe      = regexp.MustCompile(`(?i)\\includegraphics(?:\[[^\]]*\])?\{([^}]+)\}`)
	noteRe          = regexp.MustCompile(`\\note\{([^}]*)\}`)
	blockOpenRe     = regexp.MustCompile(`^\\begin\{(block|alertblock|exampleblock)\}(?:\{([^}]*)\})?`)
	blockCloseRe    = regexp.MustCompile(`^\\end\{(?:block|alertblock|exampleblock)\}`)

	// envTokenRe matches structural environment tokens so a line holding
	// several of them can be split into one token per line before scanning.
	// Block openers carry their title group along, other openers their
	// option group.
	envTokenRe  = regexp.MustCompile(`\\begin\{(?:block|alertblock|exampleblock)\}(?:\{[^}]*\})?|\\begin\{[a-zA-Z]+\*?\}(?:\[[^\]]*\])?|\\end\{[a-zA-Z]+\*?\}`)
	itemSplitRe = regexp.MustCompile(`\\item\b`)
)

// scanMode is the body scanner's current state. Each mode owns its own
// accumulator; switching modes always flushes the previous one, so content
// cannot leak between environments.
type scanMode int

const (
	modeFlow scanMode = iota
	modeList
	modeBlock
	modeEquation
)

// bodyParser walks one frame body line by line, accumulating elements onto
// the frame in source order.
type bodyParser struct {
	frame    *model.Frame
	sections []string

	mode scanMode
	text []string

	listOrdered bool
	listDepth   int
	listItems   []string

	blockKind  model.BlockKind
	blockTitle string
	blockBody  []string

	equation []string

	inColumns   bool
	columnCount int
}

// run scans the whole body and leaves the extracted elements on the frame.
func (p *bodyParser) run(body string) {
	for _, raw := range strings.Split(normalizeBody(body), "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		switch p.mode {
		case modeList:
			p.scanListLine(line)
		case modeBlock:
			p.scanBlockLine(line)
		case modeEquation:
			p.scanEquationLine(line)
		default:
			p.scanFlowLine(line)
		}
	}
	p.finish()
}

// normalizeBody puts every structural token on a line of its own, so that
// environments written inline (\begin{itemize}\item A\end{itemize}) scan
// the same as environments written one line at a time.
func normalizeBody(body string) string {
	body = envTokenRe.ReplaceAllString(body, "\n${0}\n")
	body = itemSplitRe.ReplaceAllString(body, "\n${0}")
	return body
}

// scanFlowLine handles a line outside any open environment.
func (p *bodyParser) scanFlowLine(line string) {
	// Frame title commands were consumed during frame setup and must not
	// reappear as body text.
	if frametitleRe.MatchString(line) || framesubtitleRe.MatchString(line) {
		return
	}

	switch {
	case strings.HasPrefix(line, `\begin{itemize}`):
		p.flushText()
		p.mode = modeList
		p.listOrdered = false
		p.listDepth = 1
		return
	case strings.HasPrefix(line, `\begin{enumerate}`):
		p.flushText()
		p.mode = modeList
		p.listOrdered = true
		p.listDepth = 1
		return
	case strings.HasPrefix(line, `\begin{equation}`):
		p.flushText()
		p.mode = modeEquation
		return
	case strings.HasPrefix(line, `\begin{columns}`):
		p.inColumns = true
		p.columnCount = 0
		return
	case strings.HasPrefix(line, `\end{columns}`):
		p.closeColumns()
		return
	case strings.HasPrefix(line, `\begin{column}`), strings.HasPrefix(line, `\column{`):
		if p.inColumns {
			p.columnCount++
		}
		return
	case strings.HasPrefix(line, `\end{column}`):
		return
	case strings.HasPrefix(line, `\tableofcontents`):
		p.flushText()
		if len(p.sections) > 0 {
			items := make([]string, len(p.sections))
			copy(items, p.sections)
			p.frame.AddElement(model.NewItemizeElement(items))
		}
		return
	}

	if m := blockOpenRe.FindStringSubmatch(line); m != nil {
		p.flushText()
		p.mode = modeBlock
		p.blockKind, _ = model.ParseBlockKind(m[1])
		p.blockTitle = cleanText(m[2])
		return
	}

	if strings.HasPrefix(line, `\note{`) {
		if m := noteRe.FindStringSubmatch(line); m != nil {
			p.frame.AddNote(cleanText(m[1]))
		}
		return
	}

	if ms := graphicsRe.FindAllStringSubmatch(line, -1); ms != nil {
		p.flushText()
		for _, m := range ms {
			p.frame.AddElement(model.NewImageElement(strings.TrimSpace(m[1])))
		}
		return
	}

	if strings.Contains(line, "$") {
		if segs, ok := splitInlineMath(line); ok {
			for _, seg := range segs {
				if seg.isMath {
					p.flushText()
					p.frame.AddElement(model.NewEquationElement(seg.text, model.EquationInline))
					continue
				}
				if t := cleanText(seg.text); t != "" {
					p.text = append(p.text, t)
				}
			}
			return
		}
	}

	if t := cleanText(line); t != "" {
		p.text = append(p.text, t)
	}
}

// scanListLine handles a line while an itemize or enumerate is open. Nested
// list environments stay in the enclosing list, their items indented two
// spaces per extra depth; only the close matching the outermost open flushes.
// Lines that are not item markers are structurally ignored.
func (p *bodyParser) scanListLine(line string) {
	if strings.HasPrefix(line, `\begin{itemize}`) || strings.HasPrefix(line, `\begin{enumerate}`) {
		p.listDepth++
		return
	}
	if strings.HasPrefix(line, `\end{itemize}`) || strings.HasPrefix(line, `\end{enumerate}`) {
		p.listDepth--
		if p.listDepth <= 0 {
			p.flushList()
		}
		return
	}
	if m := itemRe.FindStringSubmatch(line); m != nil {
		if item := cleanText(m[1]); item != "" {
			p.listItems = append(p.listItems, strings.Repeat("  ", p.listDepth-1)+item)
		}
	}
}

// scanBlockLine handles a line while a block callout is open.
func (p *bodyParser) scanBlockLine(line string) {
	if blockCloseRe.MatchString(line) {
		p.flushBlock()
		return
	}
	p.blockBody = append(p.blockBody, line)
}

// scanEquationLine handles a line while a display equation is open. The
// inner text is kept raw.
func (p *bodyParser) scanEquationLine(line string) {
	if idx := strings.Index(line, `\end{equation}`); idx >= 0 {
		if frag := strings.TrimSpace(line[:idx]); frag != "" {
			p.equation = append(p.equation, frag)
		}
		p.flushEquation()
		return
	}
	p.equation = append(p.equation, line)
}

// flushText turns the running text buffer into one Text element. On a title
// slide the first flushed text becomes the slide's Title element instead.
func (p *bodyParser) flushText() {
	if len(p.text) == 0 {
		return
	}
	text := strings.Join(p.text, " ")
	p.text = nil

	if p.frame.Layout == model.LayoutTitleSlide && len(p.frame.Elements) == 0 {
		p.frame.AddElement(model.NewTitleElement(text))
		return
	}
	p.frame.AddElement(model.NewTextElement(text))
}

// flushList closes the open list. Lists that collected no items produce no
// element.
func (p *bodyParser) flushList() {
	items := p.listItems
	p.listItems = nil
	p.listDepth = 0
	p.mode = modeFlow

	if len(items) == 0 {
		return
	}
	if p.listOrdered {
		p.frame.AddElement(model.NewEnumerateElement(items))
		return
	}
	p.frame.AddElement(model.NewItemizeElement(items))
}

// flushBlock closes the open block callout. A block with no body still
// yields an element with an empty body string.
func (p *bodyParser) flushBlock() {
	var lines []string
	for _, l := range p.blockBody {
		if t := cleanText(l); t != "" {
			lines = append(lines, t)
		}
	}
	body := strings.Join(lines, "\n")

	p.frame.AddElement(model.NewBlockElement(p.blockKind, p.blockTitle, body))
	p.blockBody = nil
	p.blockTitle = ""
	p.mode = modeFlow
}

// flushEquation closes the open display equation. An empty environment
// produces no element.
func (p *bodyParser) flushEquation() {
	src := strings.TrimSpace(strings.Join(p.equation, "\n"))
	p.equation = nil
	p.mode = modeFlow

	if src == "" {
		return
	}
	p.frame.AddElement(model.NewEquationElement(src, model.EquationDisplay))
}

// closeColumns records the column arrangement on the frame. Elements keep
// flowing in a single column; the layout kind is informational for the
// renderer.
func (p *bodyParser) closeColumns() {
	if p.frame.Layout == model.LayoutTitleAndContent {
		switch {
		case p.columnCount >= 3:
			p.frame.Layout = model.LayoutThreeColumn
		case p.columnCount == 2:
			p.frame.Layout = model.LayoutTwoColumn
		}
	}
	p.inColumns = false
	p.columnCount = 0
}

// finish flushes whatever environment is still open at the end of the body.
// Unterminated environments keep what they collected.
func (p *bodyParser) finish() {
	switch p.mode {
	case modeList:
		p.flushList()
	case modeBlock:
		p.flushBlock()
	case modeEquation:
		p.flushEquation()
	}
	p.flushText()
}
