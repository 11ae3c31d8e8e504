// Package htmldeck provides HTML slide deck parsing.
//
// Decks in the reveal.js convention keep one <section> per slide; decks
// without sections are split on their top-level headings instead. Speaker
// notes live in <aside class="notes"> elements.
package htmldeck

import (
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/net/html"

	"github.com/tsawler/presenta/model"
)

// Reader provides access to HTML slide deck content.
type Reader struct {
	doc      *html.Node
	title    string
	metadata map[string]string
	slides   []*slide
}

// slide is one parsed slide before model conversion.
type slide struct {
	title    string
	subtitle string
	elements []*model.Element
	notes    []string
}

// Open opens an HTML file for reading.
func Open(filename string) (*Reader, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("opening file: %w", err)
	}
	defer f.Close()

	return OpenReader(f)
}

// OpenReader parses an HTML deck from an io.Reader.
func OpenReader(r io.Reader) (*Reader, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}

	reader := &Reader{
		doc:      doc,
		metadata: make(map[string]string),
	}

	reader.extractHead(doc)
	reader.extractSlides(doc)

	if len(reader.slides) == 0 {
		return nil, fmt.Errorf("no slides found in document")
	}

	return reader, nil
}

// Close releases resources associated with the Reader.
func (r *Reader) Close() error {
	// Nothing to close for HTML (no file handles kept)
	return nil
}

// extractHead extracts title and meta tags from the head element.
func (r *Reader) extractHead(n *html.Node) {
	if n.Type == html.ElementNode && n.Data == "head" {
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if c.Type != html.ElementNode {
				continue
			}
			switch c.Data {
			case "title":
				r.title = getTextContent(c)
			case "meta":
				name, content := "", ""
				for _, attr := range c.Attr {
					switch attr.Key {
					case "name", "property":
						name = attr.Val
					case "content":
						content = attr.Val
					}
				}
				if name != "" && content != "" {
					r.metadata[name] = content
				}
			}
		}
		return
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		r.extractHead(c)
	}
}

// extractSlides splits the body into slides.
func (r *Reader) extractSlides(n *html.Node) {
	body := findElement(n, "body")
	if body == nil {
		body = n
	}

	sections := leafSections(body)
	if len(sections) > 0 {
		for _, sec := range sections {
			r.slides = append(r.slides, parseSlide(sec))
		}
		return
	}

	// No sections: treat each top-level heading as a slide boundary.
	r.splitOnHeadings(body)
}

// leafSections collects <section> elements that contain no nested sections.
// reveal.js nests vertical slide stacks one level deep; the leaves are the
// actual slides.
func leafSections(n *html.Node) []*html.Node {
	var out []*html.Node
	var walk func(*html.Node)
	walk = func(node *html.Node) {
		if node.Type == html.ElementNode && node.Data == "section" {
			if findChildSection(node) == nil {
				out = append(out, node)
				return
			}
		}
		for c := node.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return out
}

func findChildSection(n *html.Node) *html.Node {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && c.Data == "section" {
			return c
		}
		if found := findChildSection(c); found != nil {
			return found
		}
	}
	return nil
}

// splitOnHeadings builds slides from a sectionless body: every h1 or h2
// starts a new slide.
func (r *Reader) splitOnHeadings(body *html.Node) {
	current := &slide{}
	started := false

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch n.Data {
			case "h1", "h2":
				if started && (current.title != "" || len(current.elements) > 0) {
					r.slides = append(r.slides, current)
					current = &slide{}
				}
				started = true
				current.title = getTextContent(n)
				return
			case "script", "style", "noscript", "template":
				return
			}
		}
		if n.Type == html.ElementNode && isSlideContent(n.Data) {
			appendNodeElements(current, n)
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(body)

	if current.title != "" || len(current.elements) > 0 {
		r.slides = append(r.slides, current)
	}
}

// parseSlide converts one <section> into a slide.
func parseSlide(sec *html.Node) *slide {
	s := &slide{}
	for c := sec.FirstChild; c != nil; c = c.NextSibling {
		parseSlideNode(s, c)
	}
	return s
}

func parseSlideNode(s *slide, n *html.Node) {
	if n.Type != html.ElementNode {
		return
	}

	switch n.Data {
	case "h1":
		if s.title == "" {
			s.title = getTextContent(n)
		} else {
			s.elements = append(s.elements, model.NewTitleElement(getTextContent(n)))
		}
	case "h2":
		switch {
		case s.title == "":
			s.title = getTextContent(n)
		case s.subtitle == "":
			s.subtitle = getTextContent(n)
		default:
			s.elements = append(s.elements, model.NewSubtitleElement(getTextContent(n)))
		}
	case "h3", "h4", "h5", "h6":
		if s.subtitle == "" {
			s.subtitle = getTextContent(n)
		} else {
			s.elements = append(s.elements, model.NewSubtitleElement(getTextContent(n)))
		}
	case "aside":
		if hasClass(n, "notes") {
			for _, line := range strings.Split(getTextContent(n), "\n") {
				if line = strings.TrimSpace(line); line != "" {
					s.notes = append(s.notes, line)
				}
			}
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			parseSlideNode(s, c)
		}
	case "div", "article", "main", "header", "footer":
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			parseSlideNode(s, c)
		}
	default:
		appendNodeElements(s, n)
	}
}

// isSlideContent reports whether a tag maps directly to a slide element.
func isSlideContent(tag string) bool {
	switch tag {
	case "p", "ul", "ol", "img", "pre", "code", "blockquote", "table":
		return true
	}
	return false
}

// appendNodeElements converts one content node into model elements.
func appendNodeElements(s *slide, n *html.Node) {
	switch n.Data {
	case "p":
		if text := getTextContent(n); text != "" {
			s.elements = append(s.elements, model.NewTextElement(text))
		}
	case "ul", "ol":
		items := collectListItems(n, 0)
		if len(items) == 0 {
			return
		}
		if n.Data == "ol" {
			s.elements = append(s.elements, model.NewEnumerateElement(items))
		} else {
			s.elements = append(s.elements, model.NewItemizeElement(items))
		}
	case "img":
		src, alt := "", ""
		for _, attr := range n.Attr {
			switch attr.Key {
			case "src":
				src = attr.Val
			case "alt":
				alt = attr.Val
			}
		}
		if src != "" {
			el := model.NewImageElement(src)
			if alt != "" {
				el.Content = model.ImageContent{Path: src, Caption: alt}
			}
			s.elements = append(s.elements, el)
		}
	case "pre", "code":
		if text := getRawTextContent(n); text != "" {
			s.elements = append(s.elements, model.NewCodeElement(text))
		}
	case "blockquote":
		if text := getTextContent(n); text != "" {
			s.elements = append(s.elements, model.NewBlockElement(model.BlockPlain, "", text))
		}
	case "table":
		if el := tableElement(n); el != nil {
			s.elements = append(s.elements, el)
		}
	}
}

// collectListItems flattens a ul/ol, indenting nested levels.
func collectListItems(listNode *html.Node, level int) []string {
	var items []string
	for c := listNode.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != html.ElementNode || c.Data != "li" {
			continue
		}
		if text := getDirectTextContent(c); text != "" {
			items = append(items, strings.Repeat("  ", level)+text)
		}
		for g := c.FirstChild; g != nil; g = g.NextSibling {
			if g.Type == html.ElementNode && (g.Data == "ul" || g.Data == "ol") {
				items = append(items, collectListItems(g, level+1)...)
			}
		}
	}
	return items
}

// tableElement renders an HTML table into a tab-separated table element.
func tableElement(tableNode *html.Node) *model.Element {
	var rows []string
	var walkRows func(*html.Node)
	walkRows = func(n *html.Node) {
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if c.Type != html.ElementNode {
				continue
			}
			if c.Data == "tr" {
				var cells []string
				for td := c.FirstChild; td != nil; td = td.NextSibling {
					if td.Type == html.ElementNode && (td.Data == "td" || td.Data == "th") {
						cells = append(cells, getTextContent(td))
					}
				}
				if len(cells) > 0 {
					rows = append(rows, strings.Join(cells, "\t"))
				}
				continue
			}
			walkRows(c)
		}
	}
	walkRows(tableNode)

	if len(rows) == 0 {
		return nil
	}
	return &model.Element{
		Type:    model.ElementTable,
		Content: model.TextContent{Text: strings.Join(rows, "\n")},
	}
}

// hasClass reports whether a node's class attribute contains name.
func hasClass(n *html.Node, name string) bool {
	for _, attr := range n.Attr {
		if attr.Key == "class" {
			for _, c := range strings.Fields(attr.Val) {
				if c == name {
					return true
				}
			}
		}
	}
	return false
}

// findElement finds the first element with the given tag name.
func findElement(n *html.Node, tagName string) *html.Node {
	if n.Type == html.ElementNode && n.Data == tagName {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if result := findElement(c, tagName); result != nil {
			return result
		}
	}
	return nil
}

// getTextContent extracts normalized text from a node and its descendants.
func getTextContent(n *html.Node) string {
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(node *html.Node) {
		if node.Type == html.TextNode {
			sb.WriteString(node.Data)
		}
		if node.Type == html.ElementNode {
			switch node.Data {
			case "script", "style", "noscript", "template":
				return
			case "br":
				sb.WriteString("\n")
			}
		}
		for c := node.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return strings.Join(strings.Fields(sb.String()), " ")
}

// getRawTextContent extracts text preserving internal whitespace, for code
// listings.
func getRawTextContent(n *html.Node) string {
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(node *html.Node) {
		if node.Type == html.TextNode {
			sb.WriteString(node.Data)
		}
		for c := node.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return strings.Trim(sb.String(), "\n")
}

// getDirectTextContent gets text from a node excluding nested block elements.
func getDirectTextContent(n *html.Node) string {
	var sb strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.TextNode {
			sb.WriteString(c.Data)
			continue
		}
		if c.Type == html.ElementNode {
			switch c.Data {
			case "ul", "ol", "div", "p", "table", "blockquote":
				// Block elements are handled separately
			default:
				sb.WriteString(getTextContent(c))
			}
		}
	}
	return strings.Join(strings.Fields(sb.String()), " ")
}

// SlideCount returns the number of slides.
func (r *Reader) SlideCount() int {
	return len(r.slides)
}

// Metadata returns deck metadata from the document head.
func (r *Reader) Metadata() model.Metadata {
	meta := model.Metadata{Title: r.title}

	if author, ok := r.metadata["author"]; ok {
		meta.Author = author
	}
	if desc, ok := r.metadata["description"]; ok {
		meta.Subject = desc
	}
	if keywords, ok := r.metadata["keywords"]; ok {
		meta.Keywords = strings.Split(keywords, ",")
		for i, kw := range meta.Keywords {
			meta.Keywords[i] = strings.TrimSpace(kw)
		}
	}

	return meta
}

// Document returns a model.Document representation of the deck.
func (r *Reader) Document() (*model.Document, error) {
	doc := model.NewDocument()
	doc.SourceFormat = "html"
	doc.Metadata = r.Metadata()

	for i, s := range r.slides {
		frame := model.NewFrame(i + 1)
		frame.Title = s.title
		frame.Subtitle = s.subtitle
		frame.Elements = s.elements
		frame.Notes = s.notes

		// A leading slide with a subtitle and no body is a title page.
		if i == 0 && s.subtitle != "" && len(s.elements) == 0 {
			frame.Layout = model.LayoutTitleSlide
		}

		doc.AddFrame(frame)
	}

	return doc, nil
}
