package layout

import (
	"strings"
	"testing"

	"github.com/tsawler/presenta/model"
)

func TestForTargetPPTX(t *testing.T) {
	doc := buildFrame(model.NewTextElement("hello"))
	doc.SourceFormat = "latex"

	out, err := ForTarget(doc, "pptx")
	if err != nil {
		t.Fatalf("ForTarget(pptx) error = %v", err)
	}
	if out.Frames[0].Elements[0].Position == nil {
		t.Error("ForTarget(pptx) did not assign positions")
	}
}

func TestForTargetLaTeX(t *testing.T) {
	doc := buildFrame(model.NewTextElement("hello"))
	doc.SourceFormat = "pptx"

	_, err := ForTarget(doc, "latex")
	if err == nil {
		t.Fatal("ForTarget(latex) did not fail")
	}

	me, ok := err.(*MappingError)
	if !ok {
		t.Fatalf("error type = %T, want *MappingError", err)
	}
	if me.SourceFormat != "pptx" || me.TargetFormat != "latex" {
		t.Errorf("formats = %q -> %q, want pptx -> latex", me.SourceFormat, me.TargetFormat)
	}
	if !strings.Contains(me.Error(), "not yet implemented") {
		t.Errorf("Error() = %q, want mention of not yet implemented", me.Error())
	}
}

func TestForTargetUnknown(t *testing.T) {
	doc := buildFrame(model.NewTextElement("hello"))

	_, err := ForTarget(doc, "keynote")
	if err == nil {
		t.Fatal("ForTarget(keynote) did not fail")
	}
	if !strings.Contains(err.Error(), "unsupported") {
		t.Errorf("Error() = %q, want mention of unsupported", err.Error())
	}
}

func TestSupportedConversions(t *testing.T) {
	conversions := SupportedConversions()

	targets, ok := conversions["latex"]
	if !ok {
		t.Fatal("no conversions listed for latex sources")
	}
	found := false
	for _, tgt := range targets {
		if tgt == "pptx" {
			found = true
		}
	}
	if !found {
		t.Errorf("latex targets = %v, want pptx included", targets)
	}
}
