package beamer

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/tsawler/presenta/model"
)

const testDeck = `\documentclass[aspectratio=169]{beamer}
\usetheme{Madrid}
\title[Short]{Distributed Snapshots}
\subtitle{Consistent Cuts in Practice}
\author[CL]{Chandy and Lamport}
\institute{Systems Group}
\date{March 1985}
\keywords{snapshots, consistency, channels}

\begin{document}

\begin{frame}
\titlepage
\end{frame}

\section{Background}

\begin{frame}{Outline}
\tableofcontents
\end{frame}

\begin{frame}{The Problem}
Processes exchange messages over FIFO channels. % channels are reliable
\begin{itemize}
\item No shared clock
\item No shared memory
\end{itemize}
\note{Emphasize the FIFO assumption.}
\end{frame}

\section{Algorithm}

\begin{frame}
\frametitle{Marker Rule}
\framesubtitle{Receiving side}
\begin{alertblock}{Caution}
Record the channel state before the marker.
\end{alertblock}
\end{frame}

\section{Evaluation}

\begin{frame}{Results}
Termination within one round trip per channel.
\end{frame}

\end{document}
`

func TestParseFrameCount(t *testing.T) {
	r, err := Parse(testDeck)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	defer r.Close()

	count, err := r.FrameCount()
	if err != nil {
		t.Fatalf("FrameCount failed: %v", err)
	}
	if count != 5 {
		t.Errorf("FrameCount = %d, want 5", count)
	}
}

func TestMetadata(t *testing.T) {
	r, err := Parse(testDeck)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	defer r.Close()

	meta := r.Metadata()
	if got, want := meta.Title, "Distributed Snapshots"; got != want {
		t.Errorf("Title = %q, want %q", got, want)
	}
	if got, want := meta.Author, "Chandy and Lamport"; got != want {
		t.Errorf("Author = %q, want %q", got, want)
	}
	if got, want := meta.Date, "March 1985"; got != want {
		t.Errorf("Date = %q, want %q", got, want)
	}
	if got, want := meta.Institute, "Systems Group"; got != want {
		t.Errorf("Institute = %q, want %q", got, want)
	}
	if got, want := meta.Custom["subtitle"], "Consistent Cuts in Practice"; got != want {
		t.Errorf("Custom[subtitle] = %q, want %q", got, want)
	}
	if got, want := meta.Custom["documentclass"], "beamer"; got != want {
		t.Errorf("Custom[documentclass] = %q, want %q", got, want)
	}
	if len(meta.Keywords) != 3 || meta.Keywords[1] != "consistency" {
		t.Errorf("Keywords = %v", meta.Keywords)
	}
}

func TestTitlePage(t *testing.T) {
	doc := parseDocument(t, testDeck)

	frame := doc.Frames[0]
	if frame.Layout != model.LayoutTitleSlide {
		t.Errorf("Layout = %v, want LayoutTitleSlide", frame.Layout)
	}
	if got, want := frame.Title, "Distributed Snapshots"; got != want {
		t.Errorf("Title = %q, want %q", got, want)
	}
}

func TestFrameTitles(t *testing.T) {
	doc := parseDocument(t, testDeck)

	tests := []struct {
		frame int
		title string
	}{
		{2, "Outline"},
		{3, "The Problem"},
		{4, "Marker Rule"},
	}
	for _, tt := range tests {
		if got := doc.GetFrame(tt.frame).Title; got != tt.title {
			t.Errorf("Frame %d title = %q, want %q", tt.frame, got, tt.title)
		}
	}

	if got, want := doc.GetFrame(4).Subtitle, "Receiving side"; got != want {
		t.Errorf("Frame 4 subtitle = %q, want %q", got, want)
	}
}

func TestInlineTitleWinsOverCommand(t *testing.T) {
	doc := parseDocument(t, `\begin{document}
\begin{frame}{Inline}
\frametitle{Command}
Body.
\end{frame}
\end{document}`)

	if got, want := doc.Frames[0].Title, "Inline"; got != want {
		t.Errorf("Title = %q, want %q", got, want)
	}
}

func TestSections(t *testing.T) {
	r, err := Parse(testDeck)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	defer r.Close()

	sections := r.Sections()
	want := []string{"Background", "Algorithm", "Evaluation"}
	if len(sections) != len(want) {
		t.Fatalf("Sections = %v, want %v", sections, want)
	}
	for i := range want {
		if sections[i] != want[i] {
			t.Errorf("Sections[%d] = %q, want %q", i, sections[i], want[i])
		}
	}
}

func TestTableOfContents(t *testing.T) {
	doc := parseDocument(t, testDeck)

	lists := doc.GetFrame(2).ElementsByType(model.ElementItemize)
	if len(lists) != 1 {
		t.Fatalf("Got %d itemize elements, want 1", len(lists))
	}
	lc := lists[0].Content.(model.ListContent)
	want := []string{"Background", "Algorithm", "Evaluation"}
	if len(lc.Items) != len(want) {
		t.Fatalf("Contents items = %v, want %v", lc.Items, want)
	}
	for i := range want {
		if lc.Items[i] != want[i] {
			t.Errorf("Contents[%d] = %q, want %q", i, lc.Items[i], want[i])
		}
	}
}

func TestNotes(t *testing.T) {
	doc := parseDocument(t, testDeck)

	notes := doc.GetFrame(3).Notes
	if len(notes) != 1 || notes[0] != "Emphasize the FIFO assumption." {
		t.Errorf("Notes = %v", notes)
	}
}

func TestCommentsStripped(t *testing.T) {
	doc := parseDocument(t, testDeck)

	text := doc.GetFrame(3).Text()
	if strings.Contains(text, "reliable") {
		t.Errorf("Comment text leaked into frame:\n%s", text)
	}
	if !strings.Contains(text, "FIFO channels.") {
		t.Errorf("Body text missing:\n%s", text)
	}
}

func TestEscapedPercentKept(t *testing.T) {
	doc := parseDocument(t, `\begin{document}
\begin{frame}{Load}
Utilization stays under 80\% at peak.
\end{frame}
\end{document}`)

	text := doc.Frames[0].Text()
	if !strings.Contains(text, "80% at peak") {
		t.Errorf("Escaped percent mangled:\n%s", text)
	}
}

func TestColumnsLayout(t *testing.T) {
	tests := []struct {
		name    string
		columns int
		want    model.LayoutKind
	}{
		{"two columns", 2, model.LayoutTwoColumn},
		{"three columns", 3, model.LayoutThreeColumn},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var b strings.Builder
			b.WriteString("\\begin{document}\n\\begin{frame}{Split}\n\\begin{columns}\n")
			for i := 0; i < tt.columns; i++ {
				b.WriteString("\\begin{column}{0.5\\textwidth}\nText.\n\\end{column}\n")
			}
			b.WriteString("\\end{columns}\n\\end{frame}\n\\end{document}")

			doc := parseDocument(t, b.String())
			if got := doc.Frames[0].Layout; got != tt.want {
				t.Errorf("Layout = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestOpen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "deck.tex")
	if err := os.WriteFile(path, []byte(testDeck), 0o644); err != nil {
		t.Fatal(err)
	}

	r, err := Open(path)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer r.Close()

	doc, err := r.Document()
	if err != nil {
		t.Fatalf("Document failed: %v", err)
	}
	if got, want := doc.SourcePath, path; got != want {
		t.Errorf("SourcePath = %q, want %q", got, want)
	}
	if got, want := doc.SourceFormat, "latex"; got != want {
		t.Errorf("SourceFormat = %q, want %q", got, want)
	}
}

func TestOpenMissingFile(t *testing.T) {
	_, err := Open("no-such-file.tex")
	if err == nil {
		t.Fatal("Expected error for missing file")
	}
	var pe *ParseError
	if !errors.As(err, &pe) {
		t.Errorf("Expected *ParseError, got %T", err)
	}
}

func TestOpenReader(t *testing.T) {
	r, err := OpenReader(strings.NewReader(testDeck))
	if err != nil {
		t.Fatalf("OpenReader failed: %v", err)
	}
	defer r.Close()

	count, _ := r.FrameCount()
	if count != 5 {
		t.Errorf("FrameCount = %d, want 5", count)
	}
}

func TestNoFrames(t *testing.T) {
	_, err := Parse(`\documentclass{article}\begin{document}Hello.\end{document}`)
	if err == nil {
		t.Fatal("Expected error for source without frames")
	}
	var pe *ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("Expected *ParseError, got %T", err)
	}
	if !strings.Contains(pe.Message, "no frames") {
		t.Errorf("Message = %q", pe.Message)
	}
}

func TestInvalidUTF8(t *testing.T) {
	_, err := OpenReader(strings.NewReader("\\begin{frame}\xff\xfe\xfd\\end{frame}"))
	if err == nil {
		t.Error("Expected error for invalid UTF-8 without BOM")
	}
}

func TestUTF8BOM(t *testing.T) {
	src := "\xef\xbb\xbf" + testDeck
	r, err := OpenReader(strings.NewReader(src))
	if err != nil {
		t.Fatalf("OpenReader failed on BOM input: %v", err)
	}
	defer r.Close()

	if got, want := r.Metadata().Title, "Distributed Snapshots"; got != want {
		t.Errorf("Title = %q, want %q", got, want)
	}
}

func TestText(t *testing.T) {
	r, err := Parse(testDeck)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	defer r.Close()

	text, err := r.Text()
	if err != nil {
		t.Fatalf("Text failed: %v", err)
	}
	for _, want := range []string{"The Problem", "No shared clock", "Record the channel state"} {
		if !strings.Contains(text, want) {
			t.Errorf("Text missing %q:\n%s", want, text)
		}
	}
}

func BenchmarkParse(b *testing.B) {
	for i := 0; i < b.N; i++ {
		if _, err := Parse(testDeck); err != nil {
			b.Fatal(err)
		}
	}
}

// parseDocument parses source and returns the document, failing the test on
// any error.
func parseDocument(t *testing.T, source string) *model.Document {
	t.Helper()
	r, err := Parse(source)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	defer r.Close()

	doc, err := r.Document()
	if err != nil {
		t.Fatalf("Document failed: %v", err)
	}
	return doc
}
