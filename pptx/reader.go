// Package pptx provides PPTX (Office Open XML Presentation) parsing.
package pptx

import (
	"archive/zip"
	"encoding/xml"
	"fmt"
	"io"
	"path"
	"sort"
	"strings"

	"github.com/tsawler/presenta/model"
)

// Reader provides access to PPTX presentation content.
type Reader struct {
	zipReader    *zip.Reader
	closer       io.Closer
	presentation *presentationXML
	slides       []*Slide
	slideRels    map[int]*relationshipsXML // Slide index -> relationships
	coreProps    *corePropertiesXML
	appProps     *appPropertiesXML
	presRels     *relationshipsXML
}

// Open opens a PPTX file for reading.
func Open(filename string) (*Reader, error) {
	zr, err := zip.OpenReader(filename)
	if err != nil {
		return nil, fmt.Errorf("opening ZIP archive: %w", err)
	}

	r, err := newReader(&zr.Reader)
	if err != nil {
		zr.Close()
		return nil, err
	}
	r.closer = zr
	return r, nil
}

// NewReader reads a PPTX presentation from in-memory or streamed content.
func NewReader(ra io.ReaderAt, size int64) (*Reader, error) {
	zr, err := zip.NewReader(ra, size)
	if err != nil {
		return nil, fmt.Errorf("opening ZIP archive: %w", err)
	}
	return newReader(zr)
}

func newReader(zr *zip.Reader) (*Reader, error) {
	r := &Reader{
		zipReader: zr,
		slideRels: make(map[int]*relationshipsXML),
	}

	// Validate required files exist
	if err := r.validate(); err != nil {
		return nil, err
	}

	// Parse presentation relationships first
	if err := r.parseRelationships(); err != nil {
		return nil, fmt.Errorf("parsing relationships: %w", err)
	}

	// Parse presentation to get slide order
	if err := r.parsePresentation(); err != nil {
		return nil, fmt.Errorf("parsing presentation: %w", err)
	}

	// Parse all slides
	if err := r.parseSlides(); err != nil {
		return nil, fmt.Errorf("parsing slides: %w", err)
	}

	// Parse metadata (optional)
	r.parseCoreProperties()
	r.parseAppProperties()

	return r, nil
}

// Close releases resources associated with the Reader.
func (r *Reader) Close() error {
	if r.closer != nil {
		err := r.closer.Close()
		r.closer = nil
		return err
	}
	return nil
}

// validate checks that required PPTX files exist.
func (r *Reader) validate() error {
	required := []string{
		"[Content_Types].xml",
		"ppt/presentation.xml",
	}

	fileMap := make(map[string]bool)
	for _, f := range r.zipReader.File {
		fileMap[f.Name] = true
	}

	for _, name := range required {
		if !fileMap[name] {
			return fmt.Errorf("missing required file: %s", name)
		}
	}

	// Check for at least one slide
	hasSlide := false
	for name := range fileMap {
		if strings.HasPrefix(name, "ppt/slides/slide") && strings.HasSuffix(name, ".xml") {
			hasSlide = true
			break
		}
	}
	if !hasSlide {
		return fmt.Errorf("no slides found in presentation")
	}

	return nil
}

// getFileContent reads the content of a file from the ZIP archive.
func (r *Reader) getFileContent(name string) ([]byte, error) {
	for _, f := range r.zipReader.File {
		if f.Name == name {
			rc, err := f.Open()
			if err != nil {
				return nil, err
			}
			defer rc.Close()
			return io.ReadAll(rc)
		}
	}
	return nil, fmt.Errorf("file not found: %s", name)
}

// parseRelationships parses the presentation relationships file.
func (r *Reader) parseRelationships() error {
	data, err := r.getFileContent("ppt/_rels/presentation.xml.rels")
	if err != nil {
		return nil // Relationships might be optional
	}

	r.presRels = &relationshipsXML{}
	return xml.Unmarshal(data, r.presRels)
}

// parsePresentation parses the main presentation file.
func (r *Reader) parsePresentation() error {
	data, err := r.getFileContent("ppt/presentation.xml")
	if err != nil {
		return err
	}

	r.presentation = &presentationXML{}
	return xml.Unmarshal(data, r.presentation)
}

// parseSlides parses all slide files.
func (r *Reader) parseSlides() error {
	// Find all slide files
	slideFiles := make([]string, 0)
	for _, f := range r.zipReader.File {
		if strings.HasPrefix(f.Name, "ppt/slides/slide") && strings.HasSuffix(f.Name, ".xml") {
			// Exclude relationship files
			if !strings.Contains(f.Name, "_rels") {
				slideFiles = append(slideFiles, f.Name)
			}
		}
	}

	// Sort slides by number
	sort.Slice(slideFiles, func(i, j int) bool {
		return extractSlideNumber(slideFiles[i]) < extractSlideNumber(slideFiles[j])
	})

	r.slides = make([]*Slide, 0, len(slideFiles))

	for i, slidePath := range slideFiles {
		// Parse slide relationships first; image targets resolve through them.
		r.parseSlideRelationships(slidePath, i)

		slide, err := r.parseSlide(slidePath, i)
		if err != nil {
			continue // Skip slides that fail to parse
		}

		// Parse speaker notes if available
		r.parseSlideNotes(i, slide)

		r.slides = append(r.slides, slide)
	}

	if len(r.slides) == 0 {
		return fmt.Errorf("no slides could be parsed")
	}

	return nil
}

// extractSlideNumber extracts the slide number from a path like "ppt/slides/slide1.xml"
func extractSlideNumber(path string) int {
	name := strings.TrimPrefix(path, "ppt/slides/slide")
	name = strings.TrimSuffix(name, ".xml")
	var num int
	fmt.Sscanf(name, "%d", &num)
	return num
}

// parseSlide parses a single slide file.
func (r *Reader) parseSlide(slidePath string, index int) (*Slide, error) {
	data, err := r.getFileContent(slidePath)
	if err != nil {
		return nil, err
	}

	var slideXML slideXML
	if err := xml.Unmarshal(data, &slideXML); err != nil {
		return nil, err
	}

	slide := &Slide{
		Index:   index,
		Content: make([]TextBlock, 0),
		Tables:  make([]Table, 0),
	}

	// Extract shapes from shape tree
	r.extractShapes(&slideXML.CSld.SpTree, slide, index)

	return slide, nil
}

// extractShapes extracts content from all shapes in the shape tree.
func (r *Reader) extractShapes(spTree *spTreeXML, slide *Slide, index int) {
	// Process regular shapes
	for _, sp := range spTree.Sp {
		block := r.extractTextBlock(&sp)
		if block == nil {
			continue
		}
		switch {
		case block.IsTitle && slide.Title == "":
			slide.Title = block.Text
		case block.IsSubtitle && slide.Subtitle == "":
			slide.Subtitle = block.Text
		}
		slide.Content = append(slide.Content, *block)
	}

	// Process pictures
	for _, pic := range spTree.Pic {
		if img := r.resolveImage(&pic, index); img != nil {
			slide.Images = append(slide.Images, *img)
		}
	}

	// Process graphic frames (tables)
	for _, gf := range spTree.GraphicFrame {
		if gf.Graphic.GraphicData.Tbl != nil {
			table := r.extractTable(gf.Graphic.GraphicData.Tbl)
			slide.Tables = append(slide.Tables, table)
		}
	}

	// Process grouped shapes (recursive)
	for _, grpSp := range spTree.GrpSp {
		r.extractGroupedShapes(&grpSp, slide, index)
	}
}

// extractGroupedShapes extracts shapes from a group.
func (r *Reader) extractGroupedShapes(grpSp *grpSpXML, slide *Slide, index int) {
	for _, sp := range grpSp.Sp {
		block := r.extractTextBlock(&sp)
		if block != nil {
			slide.Content = append(slide.Content, *block)
		}
	}

	for _, pic := range grpSp.Pic {
		if img := r.resolveImage(&pic, index); img != nil {
			slide.Images = append(slide.Images, *img)
		}
	}

	// Recursively process nested groups
	for _, nestedGrp := range grpSp.GrpSp {
		r.extractGroupedShapes(&nestedGrp, slide, index)
	}
}

// resolveImage maps a picture's r:embed relationship to its archive path.
func (r *Reader) resolveImage(pic *picXML, index int) *Image {
	rels := r.slideRels[index]
	if rels == nil || pic.BlipFill.Blip.Embed == "" {
		return nil
	}

	for _, rel := range rels.Relationship {
		if rel.ID != pic.BlipFill.Blip.Embed {
			continue
		}
		target := rel.Target
		if strings.HasPrefix(target, "../") {
			target = "ppt/" + strings.TrimPrefix(target, "../")
		} else if !strings.HasPrefix(target, "ppt/") {
			target = "ppt/slides/" + target
		}
		return &Image{Name: pic.NvPicPr.CNvPr.Name, Target: target}
	}
	return nil
}

// extractTextBlock extracts text from a shape.
func (r *Reader) extractTextBlock(sp *spXML) *TextBlock {
	if sp.TxBody == nil || len(sp.TxBody.P) == 0 {
		return nil
	}

	block := &TextBlock{
		Paragraphs: make([]Paragraph, 0),
	}

	// Check placeholder typing
	if sp.NvSpPr.NvPr.Ph != nil {
		phType := sp.NvSpPr.NvPr.Ph.Type
		block.Placeholder = phType
		block.IsTitle = phType == "title" || phType == "ctrTitle"
		block.IsSubtitle = phType == "subTitle"
	}

	// Get position if available
	if sp.SpPr.Xfrm != nil {
		block.X = sp.SpPr.Xfrm.Off.X
		block.Y = sp.SpPr.Xfrm.Off.Y
		block.Width = sp.SpPr.Xfrm.Ext.Cx
		block.Height = sp.SpPr.Xfrm.Ext.Cy
	}

	// Extract paragraphs
	var allText strings.Builder
	for _, p := range sp.TxBody.P {
		para := r.extractParagraph(&p)
		if para.Text != "" {
			block.Paragraphs = append(block.Paragraphs, para)
			if allText.Len() > 0 {
				allText.WriteString("\n")
			}
			allText.WriteString(para.Text)
		}
	}

	block.Text = allText.String()

	if block.Text == "" {
		return nil
	}

	return block
}

// extractParagraph extracts text and formatting from a paragraph.
func (r *Reader) extractParagraph(p *pXML) Paragraph {
	para := Paragraph{
		Runs: make([]Run, 0),
	}

	// Get paragraph properties
	if p.PPr != nil {
		para.Level = p.PPr.Lvl
		para.Alignment = p.PPr.Algn

		// Check for bullets
		if p.PPr.BuNone == nil {
			// Has some kind of bullet unless explicitly none
			if p.PPr.BuAutoNum != nil {
				para.IsNumbered = true
			} else if p.PPr.BuChar != nil {
				para.IsBullet = true
				para.BulletChar = p.PPr.BuChar.Char
			} else if para.Level > 0 {
				// Default to bullet for indented items
				para.IsBullet = true
			}
		}
	}

	// Extract text from runs
	var text strings.Builder
	for _, run := range p.R {
		text.WriteString(run.T)

		runObj := Run{
			Text: run.T,
		}
		if run.RPr != nil {
			if run.RPr.B != nil && *run.RPr.B == 1 {
				runObj.Bold = true
			}
			if run.RPr.I != nil && *run.RPr.I == 1 {
				runObj.Italic = true
			}
			runObj.FontSize = run.RPr.Sz
		}
		para.Runs = append(para.Runs, runObj)
	}

	// Include field values (like slide numbers)
	for _, fld := range p.Fld {
		text.WriteString(fld.T)
	}

	para.Text = strings.TrimSpace(text.String())
	return para
}

// extractTable extracts a table from a graphic frame.
func (r *Reader) extractTable(tbl *tblXML) Table {
	table := Table{
		Columns: len(tbl.TblGrid.GridCol),
		Rows:    make([][]TableCell, 0, len(tbl.Tr)),
	}

	for _, tr := range tbl.Tr {
		row := make([]TableCell, 0, len(tr.Tc))
		for _, tc := range tr.Tc {
			cell := TableCell{
				RowSpan: tc.RowSpan,
				ColSpan: tc.GridSpan,
			}
			if cell.RowSpan == 0 {
				cell.RowSpan = 1
			}
			if cell.ColSpan == 0 {
				cell.ColSpan = 1
			}

			// Check if this is a merged cell (not the origin)
			if tc.VMerge != nil || tc.HMerge != nil {
				cell.IsMerged = true
			}

			// Extract text from cell
			if tc.TxBody != nil {
				var text strings.Builder
				for _, p := range tc.TxBody.P {
					para := r.extractParagraph(&p)
					if para.Text != "" {
						if text.Len() > 0 {
							text.WriteString(" ")
						}
						text.WriteString(para.Text)
					}
				}
				cell.Text = text.String()
			}

			row = append(row, cell)
		}
		table.Rows = append(table.Rows, row)
	}

	return table
}

// parseSlideRelationships parses the relationships for a slide.
func (r *Reader) parseSlideRelationships(slidePath string, index int) {
	dir := path.Dir(slidePath)
	base := path.Base(slidePath)
	relsPath := path.Join(dir, "_rels", base+".rels")

	data, err := r.getFileContent(relsPath)
	if err != nil {
		return // Relationships are optional
	}

	rels := &relationshipsXML{}
	if err := xml.Unmarshal(data, rels); err != nil {
		return
	}

	r.slideRels[index] = rels
}

// parseSlideNotes parses speaker notes for a slide.
func (r *Reader) parseSlideNotes(index int, slide *Slide) {
	rels := r.slideRels[index]
	if rels == nil {
		return
	}

	// Find notes relationship
	var notesPath string
	for _, rel := range rels.Relationship {
		if strings.Contains(rel.Type, "notesSlide") {
			notesPath = rel.Target
			break
		}
	}

	if notesPath == "" {
		return
	}

	// Normalize path
	if strings.HasPrefix(notesPath, "../") {
		notesPath = "ppt/" + strings.TrimPrefix(notesPath, "../")
	} else if !strings.HasPrefix(notesPath, "ppt/") {
		notesPath = "ppt/slides/" + notesPath
	}

	data, err := r.getFileContent(notesPath)
	if err != nil {
		return
	}

	var notes notesSlideXML
	if err := xml.Unmarshal(data, &notes); err != nil {
		return
	}

	// Extract text from notes
	var text strings.Builder
	for _, sp := range notes.CSld.SpTree.Sp {
		// Skip the slide image placeholder
		if sp.NvSpPr.NvPr.Ph != nil && sp.NvSpPr.NvPr.Ph.Type == "sldImg" {
			continue
		}

		if sp.TxBody != nil {
			for _, p := range sp.TxBody.P {
				para := r.extractParagraph(&p)
				if para.Text != "" {
					if text.Len() > 0 {
						text.WriteString("\n")
					}
					text.WriteString(para.Text)
				}
			}
		}
	}

	slide.Notes = strings.TrimSpace(text.String())
}

// parseCoreProperties parses Dublin Core metadata.
func (r *Reader) parseCoreProperties() {
	data, err := r.getFileContent("docProps/core.xml")
	if err != nil {
		return
	}

	r.coreProps = &corePropertiesXML{}
	xml.Unmarshal(data, r.coreProps)
}

// parseAppProperties parses application metadata.
func (r *Reader) parseAppProperties() {
	data, err := r.getFileContent("docProps/app.xml")
	if err != nil {
		return
	}

	r.appProps = &appPropertiesXML{}
	xml.Unmarshal(data, r.appProps)
}

// SlideCount returns the number of slides.
func (r *Reader) SlideCount() int {
	return len(r.slides)
}

// Slide returns the slide at the given index (0-indexed).
func (r *Reader) Slide(index int) (*Slide, error) {
	if index < 0 || index >= len(r.slides) {
		return nil, fmt.Errorf("slide index %d out of range (0-%d)", index, len(r.slides)-1)
	}
	return r.slides[index], nil
}

// Metadata returns presentation metadata.
func (r *Reader) Metadata() model.Metadata {
	meta := model.Metadata{Custom: make(map[string]string)}
	if r.coreProps != nil {
		meta.Title = r.coreProps.Title
		meta.Author = r.coreProps.Creator
		meta.Subject = r.coreProps.Subject
		meta.Date = r.coreProps.Created
		if r.coreProps.Keywords != "" {
			meta.Keywords = strings.Split(r.coreProps.Keywords, ",")
			for i, kw := range meta.Keywords {
				meta.Keywords[i] = strings.TrimSpace(kw)
			}
		}
	}
	if r.appProps != nil {
		if r.appProps.Application != "" {
			meta.Custom["application"] = r.appProps.Application
		}
		if r.appProps.Company != "" {
			meta.Custom["company"] = r.appProps.Company
		}
	}
	return meta
}

// Document returns a model.Document representation of the presentation.
// Each slide becomes a frame; placeholder typing drives the frame title and
// subtitle, bullet paragraphs collapse into list elements, and embedded
// pictures become image elements referencing their archive path.
func (r *Reader) Document() (*model.Document, error) {
	doc := model.NewDocument()
	doc.SourceFormat = "pptx"
	doc.Metadata = r.Metadata()

	for _, slide := range r.slides {
		frame := model.NewFrame(slide.Index + 1)
		frame.Title = slide.Title
		frame.Subtitle = slide.Subtitle

		// A centered title on the first slide marks a title page.
		if slide.Index == 0 && hasCenteredTitle(slide) {
			frame.Layout = model.LayoutTitleSlide
		}

		for _, block := range slide.Content {
			appendBlockElements(frame, block)
		}

		for _, table := range slide.Tables {
			frame.AddElement(tableElement(table))
		}

		for _, img := range slide.Images {
			el := model.NewImageElement(img.Target)
			if img.Name != "" {
				el.SetMeta("name", img.Name)
			}
			frame.AddElement(el)
		}

		if slide.Notes != "" {
			for _, line := range strings.Split(slide.Notes, "\n") {
				frame.AddNote(strings.TrimSpace(line))
			}
		}

		doc.AddFrame(frame)
	}

	return doc, nil
}

// hasCenteredTitle reports whether the slide carries a ctrTitle placeholder.
func hasCenteredTitle(slide *Slide) bool {
	for _, block := range slide.Content {
		if block.Placeholder == "ctrTitle" {
			return true
		}
	}
	return false
}

// appendBlockElements converts one text block into model elements. Runs of
// consecutive bullet paragraphs collapse into a single list element so
// reading order survives mixed prose and bullets.
func appendBlockElements(frame *model.Frame, block TextBlock) {
	if block.IsTitle || block.IsSubtitle {
		return // Carried on the frame itself
	}
	if isFooterPlaceholder(block.Placeholder) || isHeaderPlaceholder(block.Placeholder) {
		return
	}

	var items []string
	ordered := false
	flushList := func() {
		if len(items) == 0 {
			return
		}
		if ordered {
			frame.AddElement(model.NewEnumerateElement(items))
		} else {
			frame.AddElement(model.NewItemizeElement(items))
		}
		items = nil
		ordered = false
	}

	for _, para := range block.Paragraphs {
		if para.Text == "" {
			continue
		}
		if para.IsBullet || para.IsNumbered {
			if para.IsNumbered {
				ordered = true
			}
			items = append(items, para.Text)
			continue
		}
		flushList()
		el := model.NewTextElement(para.Text)
		el.Level = para.Level
		frame.AddElement(el)
	}
	flushList()
}

// tableElement renders a slide table into a tab-separated table element.
func tableElement(table Table) *model.Element {
	var sb strings.Builder
	for i, row := range table.Rows {
		if i > 0 {
			sb.WriteString("\n")
		}
		for j, cell := range row {
			if j > 0 {
				sb.WriteString("\t")
			}
			sb.WriteString(cell.Text)
		}
	}
	return &model.Element{
		Type:    model.ElementTable,
		Content: model.TextContent{Text: sb.String()},
	}
}

// isFooterPlaceholder returns true if the placeholder type is a footer
// element: ftr (footer), dt (date/time), sldNum (slide number).
func isFooterPlaceholder(phType string) bool {
	switch phType {
	case "ftr", "dt", "sldNum":
		return true
	}
	return false
}

// isHeaderPlaceholder returns true if the placeholder type is a header element.
func isHeaderPlaceholder(phType string) bool {
	return phType == "hdr"
}
