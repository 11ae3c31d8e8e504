package model

import "testing"

// ============================================================================
// Enum Tests
// ============================================================================

func TestElementTypeString(t *testing.T) {
	tests := []struct {
		typ      ElementType
		expected string
	}{
		{ElementUnknown, "unknown"},
		{ElementText, "text"},
		{ElementTitle, "title"},
		{ElementSubtitle, "subtitle"},
		{ElementItemize, "itemize"},
		{ElementEnumerate, "enumerate"},
		{ElementBlock, "block"},
		{ElementImage, "image"},
		{ElementEquation, "equation"},
		{ElementTable, "table"},
		{ElementMath, "math"},
		{ElementCode, "code"},
		{ElementHyperlink, "hyperlink"},
		{ElementShape, "shape"},
		{ElementChart, "chart"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			if result := tt.typ.String(); result != tt.expected {
				t.Errorf("String() = %q, want %q", result, tt.expected)
			}
			parsed, ok := ParseElementType(tt.expected)
			if !ok {
				t.Fatalf("ParseElementType(%q) not recognized", tt.expected)
			}
			if parsed != tt.typ {
				t.Errorf("ParseElementType(%q) = %v, want %v", tt.expected, parsed, tt.typ)
			}
		})
	}

	if _, ok := ParseElementType("no-such-type"); ok {
		t.Error("ParseElementType accepted an unknown name")
	}
}

func TestLayoutKindString(t *testing.T) {
	tests := []struct {
		kind     LayoutKind
		expected string
	}{
		{LayoutTitleAndContent, "title_and_content"},
		{LayoutTitleSlide, "title_slide"},
		{LayoutSectionHeader, "section_header"},
		{LayoutTwoColumn, "two_column"},
		{LayoutThreeColumn, "three_column"},
		{LayoutBlank, "blank"},
		{LayoutContentOnly, "content_only"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			if result := tt.kind.String(); result != tt.expected {
				t.Errorf("String() = %q, want %q", result, tt.expected)
			}
			parsed, ok := ParseLayoutKind(tt.expected)
			if !ok {
				t.Fatalf("ParseLayoutKind(%q) not recognized", tt.expected)
			}
			if parsed != tt.kind {
				t.Errorf("ParseLayoutKind(%q) = %v, want %v", tt.expected, parsed, tt.kind)
			}
		})
	}

	var zero LayoutKind
	if zero != LayoutTitleAndContent {
		t.Error("zero LayoutKind should be LayoutTitleAndContent")
	}
}

func TestBlockKind(t *testing.T) {
	tests := []struct {
		name string
		kind BlockKind
	}{
		{"block", BlockPlain},
		{"alertblock", BlockAlert},
		{"exampleblock", BlockExample},
	}

	for _, tt := range tests {
		if result := tt.kind.String(); result != tt.name {
			t.Errorf("%v.String() = %q, want %q", tt.kind, result, tt.name)
		}
		parsed, ok := ParseBlockKind(tt.name)
		if !ok || parsed != tt.kind {
			t.Errorf("ParseBlockKind(%q) = %v, %v", tt.name, parsed, ok)
		}
	}
}

func TestEquationKind(t *testing.T) {
	if EquationInline.String() != "inline" || EquationDisplay.String() != "display" {
		t.Error("EquationKind String() names wrong")
	}
	if k, ok := ParseEquationKind("display"); !ok || k != EquationDisplay {
		t.Errorf("ParseEquationKind(display) = %v, %v", k, ok)
	}
	if _, ok := ParseEquationKind("sideways"); ok {
		t.Error("ParseEquationKind accepted an unknown name")
	}
}

// ============================================================================
// Document Tests
// ============================================================================

func TestNewDocumentMaps(t *testing.T) {
	doc := NewDocument()
	if doc.Metadata.Custom == nil {
		t.Fatal("Custom map should be initialized")
	}
	if doc.Settings == nil {
		t.Fatal("Settings map should be initialized")
	}
	doc.Metadata.Custom["documentclass"] = "beamer"
	if doc.Metadata.Custom["documentclass"] != "beamer" {
		t.Error("Custom map not writable")
	}
}

func TestDocumentAddFrameRenumbers(t *testing.T) {
	doc := NewDocument()

	// Deliberately wrong incoming numbers; AddFrame must assign its own.
	doc.AddFrame(&Frame{Number: 99})
	doc.AddFrame(&Frame{Number: 0})
	doc.AddFrame(&Frame{Number: -3})

	if doc.FrameCount() != 3 {
		t.Fatalf("FrameCount() = %d, want 3", doc.FrameCount())
	}
	for i, f := range doc.Frames {
		if f.Number != i+1 {
			t.Errorf("frame %d has Number %d, want %d", i, f.Number, i+1)
		}
	}
}

func TestDocumentGetFrame(t *testing.T) {
	doc := NewDocument()
	doc.AddFrame(NewFrame(0))
	doc.AddFrame(NewFrame(0))

	if f := doc.GetFrame(1); f == nil || f.Number != 1 {
		t.Errorf("GetFrame(1) = %+v", f)
	}
	if f := doc.GetFrame(2); f == nil || f.Number != 2 {
		t.Errorf("GetFrame(2) = %+v", f)
	}
	if f := doc.GetFrame(0); f != nil {
		t.Error("GetFrame(0) should be nil")
	}
	if f := doc.GetFrame(3); f != nil {
		t.Error("GetFrame(3) should be nil")
	}
}

func TestDocumentMergeRenumbers(t *testing.T) {
	a := NewDocument()
	a.AddFrame(NewFrame(0))
	a.AddFrame(NewFrame(0))

	b := NewDocument()
	b.AddFrame(NewFrame(0))

	c := NewDocument()
	c.AddFrame(NewFrame(0))
	c.AddFrame(NewFrame(0))

	a.Merge(b, nil, c)

	if a.FrameCount() != 5 {
		t.Fatalf("FrameCount() = %d, want 5", a.FrameCount())
	}
	for i, f := range a.Frames {
		if f.Number != i+1 {
			t.Errorf("frame %d has Number %d, want %d", i, f.Number, i+1)
		}
	}
}

func TestDocumentText(t *testing.T) {
	doc := NewDocument()

	f1 := NewFrame(0)
	f1.Title = "One"
	f1.AddElement(NewTextElement("alpha"))
	doc.AddFrame(f1)

	doc.AddFrame(NewFrame(0)) // empty frame contributes nothing

	f3 := NewFrame(0)
	f3.AddElement(NewTextElement("beta"))
	doc.AddFrame(f3)

	expected := "One\nalpha\n\nbeta"
	if result := doc.Text(); result != expected {
		t.Errorf("Text() = %q, want %q", result, expected)
	}
}

func TestDocumentMergeDoesNotMutateInputs(t *testing.T) {
	a := NewDocument()
	a.AddFrame(NewFrame(0))

	b := NewDocument()
	f1 := NewFrame(0)
	f1.Title = "One"
	b.AddFrame(f1)
	b.AddFrame(NewFrame(0))

	a.Merge(b)

	if b.Frames[0].Number != 1 || b.Frames[1].Number != 2 {
		t.Errorf("Merged-in document renumbered: %d, %d, want 1, 2",
			b.Frames[0].Number, b.Frames[1].Number)
	}

	// Frames must be copies, not shared pointers.
	a.Frames[1].Title = "changed"
	if b.Frames[0].Title != "One" {
		t.Errorf("Merged frame aliases its input: Title = %q", b.Frames[0].Title)
	}
}

func TestDocumentClone(t *testing.T) {
	doc := NewDocument()
	doc.Metadata.Title = "Original"
	doc.Settings["theme"] = "default"

	f := NewFrame(0)
	f.AddElement(NewTextElement("body"))
	f.AddNote("a note")
	doc.AddFrame(f)

	clone := doc.Clone()
	clone.Metadata.Title = "Copy"
	clone.Settings["theme"] = "minimal"
	clone.Frames[0].Notes[0] = "edited"
	clone.Frames[0].Elements[0].SetMeta("k", "v")

	if doc.Metadata.Title != "Original" {
		t.Errorf("Title = %q", doc.Metadata.Title)
	}
	if doc.Settings["theme"] != "default" {
		t.Errorf("Settings = %v", doc.Settings)
	}
	if doc.Frames[0].Notes[0] != "a note" {
		t.Errorf("Notes = %v", doc.Frames[0].Notes)
	}
	if doc.Frames[0].Elements[0].Meta != nil {
		t.Errorf("Meta = %v", doc.Frames[0].Elements[0].Meta)
	}
}

func TestDocumentTitleFrame(t *testing.T) {
	doc := NewDocument()
	doc.AddFrame(NewFrame(0))

	title := NewFrame(0)
	title.Layout = LayoutTitleSlide
	doc.AddFrame(title)

	if got := doc.TitleFrame(); got != title {
		t.Errorf("TitleFrame() = %v, want frame 2", got)
	}

	if got := NewDocument().TitleFrame(); got != nil {
		t.Errorf("TitleFrame() on empty document = %v, want nil", got)
	}
}

// ============================================================================
// Frame Tests
// ============================================================================

func TestFrameElementOrder(t *testing.T) {
	f := NewFrame(1)
	f.AddElement(NewTextElement("first"))
	f.AddElement(NewItemizeElement([]string{"a", "b"}))
	f.AddElement(NewTextElement("last"))
	f.AddElement(nil)

	if len(f.Elements) != 3 {
		t.Fatalf("got %d elements, want 3", len(f.Elements))
	}
	expected := []ElementType{ElementText, ElementItemize, ElementText}
	for i, e := range f.Elements {
		if e.Type != expected[i] {
			t.Errorf("element %d has type %v, want %v", i, e.Type, expected[i])
		}
	}
}

func TestFrameElementsByType(t *testing.T) {
	f := NewFrame(1)
	f.AddElement(NewTextElement("one"))
	f.AddElement(NewImageElement("fig.png"))
	f.AddElement(NewTextElement("two"))

	texts := f.ElementsByType(ElementText)
	if len(texts) != 2 {
		t.Fatalf("got %d text elements, want 2", len(texts))
	}
	if texts[0].Text() != "one" || texts[1].Text() != "two" {
		t.Errorf("text elements out of order: %q, %q", texts[0].Text(), texts[1].Text())
	}
	if imgs := f.ElementsByType(ElementImage); len(imgs) != 1 {
		t.Errorf("got %d image elements, want 1", len(imgs))
	}
	if texts := f.TextElements(); len(texts) != 2 {
		t.Errorf("got %d TextElements, want 2", len(texts))
	}
}

func TestFrameText(t *testing.T) {
	f := NewFrame(1)
	f.Title = "Intro"
	f.AddElement(NewTextElement("body"))
	f.AddElement(NewItemizeElement([]string{"x", "y"}))

	expected := "Intro\nbody\nx\ny"
	if result := f.Text(); result != expected {
		t.Errorf("Text() = %q, want %q", result, expected)
	}
}

func TestFrameNotes(t *testing.T) {
	f := NewFrame(1)
	f.AddNote("remember the demo")
	f.AddNote("")
	f.AddNote("thank the organizers")

	if len(f.Notes) != 2 {
		t.Fatalf("got %d notes, want 2", len(f.Notes))
	}
	if f.Notes[0] != "remember the demo" {
		t.Errorf("Notes[0] = %q", f.Notes[0])
	}
}

// ============================================================================
// Element Tests
// ============================================================================

func TestConstructorsTagPayloadAgreement(t *testing.T) {
	tests := []struct {
		name string
		elem *Element
		typ  ElementType
	}{
		{"text", NewTextElement("hi"), ElementText},
		{"title", NewTitleElement("t"), ElementTitle},
		{"subtitle", NewSubtitleElement("s"), ElementSubtitle},
		{"itemize", NewItemizeElement([]string{"a"}), ElementItemize},
		{"enumerate", NewEnumerateElement([]string{"a"}), ElementEnumerate},
		{"block", NewBlockElement(BlockAlert, "t", "b"), ElementBlock},
		{"image", NewImageElement("p.png"), ElementImage},
		{"equation", NewEquationElement("x^2", EquationInline), ElementEquation},
		{"code", NewCodeElement("x := 1"), ElementCode},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.elem.Type != tt.typ {
				t.Errorf("Type = %v, want %v", tt.elem.Type, tt.typ)
			}
			if tt.elem.Position != nil {
				t.Error("fresh element should have nil Position")
			}
		})
	}

	if c, ok := NewEnumerateElement([]string{"a"}).Content.(ListContent); !ok || !c.Ordered {
		t.Error("NewEnumerateElement should carry an ordered ListContent")
	}
	if c, ok := NewItemizeElement([]string{"a"}).Content.(ListContent); !ok || c.Ordered {
		t.Error("NewItemizeElement should carry an unordered ListContent")
	}
	if c, ok := NewCodeElement("x").Content.(TextContent); !ok || c.FontFamily != "monospace" {
		t.Error("NewCodeElement should carry monospace TextContent")
	}
}

func TestElementText(t *testing.T) {
	tests := []struct {
		name     string
		elem     *Element
		expected string
	}{
		{"text", NewTextElement("hello"), "hello"},
		{"itemize", NewItemizeElement([]string{"a", "b"}), "a\nb"},
		{"block", NewBlockElement(BlockPlain, "Title", "Body"), "Title\nBody"},
		{"block empty body", NewBlockElement(BlockAlert, "Warning", ""), "Warning"},
		{"image no caption", NewImageElement("fig.png"), ""},
		{"equation", NewEquationElement("E = mc^2", EquationDisplay), "E = mc^2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if result := tt.elem.Text(); result != tt.expected {
				t.Errorf("Text() = %q, want %q", result, tt.expected)
			}
		})
	}
}

func TestSetMeta(t *testing.T) {
	e := NewImageElement("fig.png")
	e.SetMeta("recovered_text", "axis labels")
	if e.Meta["recovered_text"] != "axis labels" {
		t.Errorf("Meta = %v", e.Meta)
	}

	f := NewFrame(1)
	f.SetMeta("columns", "2")
	if f.Meta["columns"] != "2" {
		t.Errorf("Meta = %v", f.Meta)
	}
}

// ============================================================================
// Geometry Tests
// ============================================================================

func TestPositionEdges(t *testing.T) {
	p := Position{X: 1.0, Y: 2.5, Width: 8.0, Height: 0.5}

	if result := p.Right(); result != 9.0 {
		t.Errorf("Right() = %v, want 9.0", result)
	}
	if result := p.Bottom(); result != 3.0 {
		t.Errorf("Bottom() = %v, want 3.0", result)
	}
}

func TestPositionOverlaps(t *testing.T) {
	a := Position{X: 1, Y: 1, Width: 2, Height: 2}

	tests := []struct {
		name     string
		other    Position
		expected bool
	}{
		{"identical", a, true},
		{"partial", Position{X: 2, Y: 2, Width: 2, Height: 2}, true},
		{"disjoint", Position{X: 5, Y: 5, Width: 1, Height: 1}, false},
		{"touching edge", Position{X: 3, Y: 1, Width: 1, Height: 1}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if result := a.Overlaps(tt.other); result != tt.expected {
				t.Errorf("Overlaps(%+v) = %v, want %v", tt.other, result, tt.expected)
			}
		})
	}
}
