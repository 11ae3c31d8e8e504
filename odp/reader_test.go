package odp

import (
	"archive/zip"
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/tsawler/presenta/model"
)

const testContent = `<?xml version="1.0" encoding="UTF-8"?>
<office:document-content xmlns:office="urn:oasis:names:tc:opendocument:xmlns:office:1.0" xmlns:draw="urn:oasis:names:tc:opendocument:xmlns:drawing:1.0" xmlns:text="urn:oasis:names:tc:opendocument:xmlns:text:1.0" xmlns:presentation="urn:oasis:names:tc:opendocument:xmlns:presentation:1.0" xmlns:xlink="http://www.w3.org/1999/xlink" xmlns:table="urn:oasis:names:tc:opendocument:xmlns:table:1.0">
  <office:body>
    <office:presentation>
      <draw:page draw:name="page1">
        <draw:frame presentation:class="title">
          <draw:text-box><text:p>Release Planning</text:p></draw:text-box>
        </draw:frame>
        <draw:frame presentation:class="subtitle">
          <draw:text-box><text:p>Team Sync</text:p></draw:text-box>
        </draw:frame>
      </draw:page>
      <draw:page draw:name="page2">
        <draw:frame presentation:class="title">
          <draw:text-box><text:p>Open Items</text:p></draw:text-box>
        </draw:frame>
        <draw:frame presentation:class="outline">
          <draw:text-box>
            <text:list>
              <text:list-item><text:p>Finish the importer</text:p></text:list-item>
              <text:list-item>
                <text:p>Write docs</text:p>
                <text:list>
                  <text:list-item><text:p>API reference</text:p></text:list-item>
                </text:list>
              </text:list-item>
            </text:list>
          </draw:text-box>
        </draw:frame>
        <draw:frame draw:name="Diagram">
          <draw:image xlink:href="Pictures/diagram.png"/>
        </draw:frame>
        <presentation:notes>
          <draw:frame presentation:class="notes">
            <draw:text-box><text:p>Ask about the deadline.</text:p></draw:text-box>
          </draw:frame>
        </presentation:notes>
      </draw:page>
    </office:presentation>
  </office:body>
</office:document-content>`

const testMeta = `<?xml version="1.0" encoding="UTF-8"?>
<office:document-meta xmlns:office="urn:oasis:names:tc:opendocument:xmlns:office:1.0" xmlns:dc="http://purl.org/dc/elements/1.1/" xmlns:meta="urn:oasis:names:tc:opendocument:xmlns:meta:1.0">
  <office:meta>
    <dc:title>Release Planning</dc:title>
    <dc:creator>Sam Roe</dc:creator>
    <dc:subject>Planning</dc:subject>
    <meta:generator>LibreOffice/7.5</meta:generator>
    <meta:keyword>release</meta:keyword>
    <meta:keyword>planning</meta:keyword>
  </office:meta>
</office:document-meta>`

// createTestODP builds an ODP file on disk from entry contents.
func createTestODP(t *testing.T, files map[string]string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "test.odp")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("Failed to create file: %v", err)
	}
	defer f.Close()

	zw := zip.NewWriter(f)
	for name, content := range files {
		w, err := zw.Create(name)
		if err != nil {
			t.Fatalf("Failed to create %s in zip: %v", name, err)
		}
		if _, err := w.Write([]byte(content)); err != nil {
			t.Fatalf("Failed to write %s: %v", name, err)
		}
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("Failed to close zip: %v", err)
	}
	return path
}

func createFullODP(t *testing.T) string {
	t.Helper()
	return createTestODP(t, map[string]string{
		"mimetype":    "application/vnd.oasis.opendocument.presentation",
		"content.xml": testContent,
		"meta.xml":    testMeta,
	})
}

func TestOpenAndSlideCount(t *testing.T) {
	r, err := Open(createFullODP(t))
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer r.Close()

	if got := r.SlideCount(); got != 2 {
		t.Errorf("SlideCount() = %d, want 2", got)
	}
}

func TestOpenMissingContent(t *testing.T) {
	path := createTestODP(t, map[string]string{"mimetype": "application/vnd.oasis.opendocument.presentation"})
	if _, err := Open(path); err == nil {
		t.Fatal("Open() accepted archive without content.xml")
	}
}

func TestOpenNoSlides(t *testing.T) {
	empty := `<?xml version="1.0"?>
<office:document-content xmlns:office="urn:oasis:names:tc:opendocument:xmlns:office:1.0">
  <office:body><office:presentation/></office:body>
</office:document-content>`
	path := createTestODP(t, map[string]string{"content.xml": empty})
	if _, err := Open(path); err == nil {
		t.Fatal("Open() accepted presentation without slides")
	}
}

func TestMetadata(t *testing.T) {
	r, err := Open(createFullODP(t))
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer r.Close()

	meta := r.Metadata()
	if meta.Title != "Release Planning" {
		t.Errorf("title = %q, want %q", meta.Title, "Release Planning")
	}
	if meta.Author != "Sam Roe" {
		t.Errorf("author = %q, want %q", meta.Author, "Sam Roe")
	}
	if len(meta.Keywords) != 2 || meta.Keywords[1] != "planning" {
		t.Errorf("keywords = %v, want [release planning]", meta.Keywords)
	}
	if meta.Custom["generator"] != "LibreOffice/7.5" {
		t.Errorf("generator = %q", meta.Custom["generator"])
	}
}

func TestDocument(t *testing.T) {
	r, err := Open(createFullODP(t))
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer r.Close()

	doc, err := r.Document()
	if err != nil {
		t.Fatalf("Document() error = %v", err)
	}

	if doc.SourceFormat != "odp" {
		t.Errorf("SourceFormat = %q, want odp", doc.SourceFormat)
	}
	if doc.FrameCount() != 2 {
		t.Fatalf("FrameCount() = %d, want 2", doc.FrameCount())
	}

	first := doc.GetFrame(1)
	if first.Title != "Release Planning" || first.Subtitle != "Team Sync" {
		t.Errorf("frame 1 = %q / %q", first.Title, first.Subtitle)
	}
	if first.Layout != model.LayoutTitleSlide {
		t.Errorf("frame 1 layout = %s, want title_slide", first.Layout)
	}

	second := doc.GetFrame(2)
	if second.Title != "Open Items" {
		t.Errorf("frame 2 title = %q, want Open Items", second.Title)
	}

	lists := second.ElementsByType(model.ElementItemize)
	if len(lists) != 1 {
		t.Fatalf("frame 2 itemize elements = %d, want 1", len(lists))
	}
	items := lists[0].Content.(model.ListContent).Items
	if len(items) != 3 {
		t.Fatalf("list items = %v, want 3", items)
	}
	if items[0] != "Finish the importer" {
		t.Errorf("items[0] = %q", items[0])
	}
	if items[2] != "  API reference" {
		t.Errorf("nested item = %q, want indented API reference", items[2])
	}

	images := second.ElementsByType(model.ElementImage)
	if len(images) != 1 {
		t.Fatalf("image elements = %d, want 1", len(images))
	}
	if got := images[0].Content.(model.ImageContent).Path; got != "Pictures/diagram.png" {
		t.Errorf("image path = %q, want Pictures/diagram.png", got)
	}

	if len(second.Notes) != 1 || second.Notes[0] != "Ask about the deadline." {
		t.Errorf("frame 2 notes = %v", second.Notes)
	}
}

func TestNewReaderFromBytes(t *testing.T) {
	data, err := os.ReadFile(createFullODP(t))
	if err != nil {
		t.Fatal(err)
	}

	r, err := NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		t.Fatalf("NewReader() error = %v", err)
	}
	if r.SlideCount() != 2 {
		t.Errorf("SlideCount() = %d, want 2", r.SlideCount())
	}
}
