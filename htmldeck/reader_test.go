package htmldeck

import (
	"strings"
	"testing"

	"github.com/tsawler/presenta/model"
)

const testDeck = `<!DOCTYPE html>
<html>
<head>
  <title>Systems Talk</title>
  <meta name="author" content="Alex Kim">
  <meta name="description" content="An overview of the storage layer">
  <meta name="keywords" content="storage, systems">
</head>
<body>
  <div class="reveal"><div class="slides">
    <section>
      <h1>Storage Internals</h1>
      <h2>A Guided Tour</h2>
    </section>
    <section>
      <h2>Write Path</h2>
      <p>Every write lands in the log first.</p>
      <ul>
        <li>Append to WAL</li>
        <li>Update memtable
          <ul><li>Skiplist insert</li></ul>
        </li>
      </ul>
      <img src="img/writepath.png" alt="Write path diagram">
      <aside class="notes">Walk through the failure case.</aside>
    </section>
    <section>
      <h2>Read Path</h2>
      <pre>get(key) -> memtable -> sstables</pre>
      <blockquote>Reads are served from the newest layer that has the key.</blockquote>
    </section>
  </div></div>
</body>
</html>`

func TestOpenReaderSections(t *testing.T) {
	r, err := OpenReader(strings.NewReader(testDeck))
	if err != nil {
		t.Fatalf("OpenReader() error = %v", err)
	}
	defer r.Close()

	if got := r.SlideCount(); got != 3 {
		t.Errorf("SlideCount() = %d, want 3", got)
	}
}

func TestMetadata(t *testing.T) {
	r, err := OpenReader(strings.NewReader(testDeck))
	if err != nil {
		t.Fatalf("OpenReader() error = %v", err)
	}

	meta := r.Metadata()
	if meta.Title != "Systems Talk" {
		t.Errorf("title = %q, want %q", meta.Title, "Systems Talk")
	}
	if meta.Author != "Alex Kim" {
		t.Errorf("author = %q, want %q", meta.Author, "Alex Kim")
	}
	if meta.Subject != "An overview of the storage layer" {
		t.Errorf("subject = %q", meta.Subject)
	}
	if len(meta.Keywords) != 2 || meta.Keywords[0] != "storage" {
		t.Errorf("keywords = %v, want [storage systems]", meta.Keywords)
	}
}

func TestDocument(t *testing.T) {
	r, err := OpenReader(strings.NewReader(testDeck))
	if err != nil {
		t.Fatalf("OpenReader() error = %v", err)
	}

	doc, err := r.Document()
	if err != nil {
		t.Fatalf("Document() error = %v", err)
	}

	if doc.SourceFormat != "html" {
		t.Errorf("SourceFormat = %q, want html", doc.SourceFormat)
	}
	if doc.FrameCount() != 3 {
		t.Fatalf("FrameCount() = %d, want 3", doc.FrameCount())
	}

	first := doc.GetFrame(1)
	if first.Title != "Storage Internals" || first.Subtitle != "A Guided Tour" {
		t.Errorf("frame 1 = %q / %q", first.Title, first.Subtitle)
	}
	if first.Layout != model.LayoutTitleSlide {
		t.Errorf("frame 1 layout = %s, want title_slide", first.Layout)
	}

	second := doc.GetFrame(2)
	if second.Title != "Write Path" {
		t.Errorf("frame 2 title = %q", second.Title)
	}

	texts := second.ElementsByType(model.ElementText)
	if len(texts) != 1 || texts[0].Text() != "Every write lands in the log first." {
		t.Errorf("frame 2 text elements = %v", texts)
	}

	lists := second.ElementsByType(model.ElementItemize)
	if len(lists) != 1 {
		t.Fatalf("frame 2 itemize elements = %d, want 1", len(lists))
	}
	items := lists[0].Content.(model.ListContent).Items
	if len(items) != 3 {
		t.Fatalf("list items = %v, want 3", items)
	}
	if items[2] != "  Skiplist insert" {
		t.Errorf("nested item = %q, want indented Skiplist insert", items[2])
	}

	images := second.ElementsByType(model.ElementImage)
	if len(images) != 1 {
		t.Fatalf("frame 2 image elements = %d, want 1", len(images))
	}
	img := images[0].Content.(model.ImageContent)
	if img.Path != "img/writepath.png" || img.Caption != "Write path diagram" {
		t.Errorf("image = %+v", img)
	}

	if len(second.Notes) != 1 || second.Notes[0] != "Walk through the failure case." {
		t.Errorf("frame 2 notes = %v", second.Notes)
	}

	third := doc.GetFrame(3)
	codes := third.ElementsByType(model.ElementCode)
	if len(codes) != 1 || !strings.Contains(codes[0].Text(), "memtable") {
		t.Errorf("frame 3 code elements = %v", codes)
	}
	blocks := third.ElementsByType(model.ElementBlock)
	if len(blocks) != 1 {
		t.Errorf("frame 3 block elements = %d, want 1", len(blocks))
	}
}

func TestHeadingSplitFallback(t *testing.T) {
	page := `<html><head><title>Flat Deck</title></head><body>
	  <h1>First Topic</h1>
	  <p>Intro paragraph.</p>
	  <h1>Second Topic</h1>
	  <ul><li>one</li><li>two</li></ul>
	</body></html>`

	r, err := OpenReader(strings.NewReader(page))
	if err != nil {
		t.Fatalf("OpenReader() error = %v", err)
	}

	if got := r.SlideCount(); got != 2 {
		t.Fatalf("SlideCount() = %d, want 2", got)
	}

	doc, err := r.Document()
	if err != nil {
		t.Fatalf("Document() error = %v", err)
	}
	if doc.GetFrame(1).Title != "First Topic" {
		t.Errorf("frame 1 title = %q", doc.GetFrame(1).Title)
	}
	if doc.GetFrame(2).Title != "Second Topic" {
		t.Errorf("frame 2 title = %q", doc.GetFrame(2).Title)
	}
	if lists := doc.GetFrame(2).ElementsByType(model.ElementItemize); len(lists) != 1 {
		t.Errorf("frame 2 itemize elements = %d, want 1", len(lists))
	}
}

func TestNoSlides(t *testing.T) {
	if _, err := OpenReader(strings.NewReader("<html><body></body></html>")); err == nil {
		t.Fatal("OpenReader() accepted empty document")
	}
}
