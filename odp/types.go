package odp

import "encoding/xml"

// XML namespaces used in ODP files.
const (
	nsOffice       = "urn:oasis:names:tc:opendocument:xmlns:office:1.0"
	nsDraw         = "urn:oasis:names:tc:opendocument:xmlns:drawing:1.0"
	nsText         = "urn:oasis:names:tc:opendocument:xmlns:text:1.0"
	nsPresentation = "urn:oasis:names:tc:opendocument:xmlns:presentation:1.0"
)

// documentContentXML represents the content.xml file structure.
type documentContentXML struct {
	XMLName xml.Name `xml:"document-content"`
	Body    bodyXML  `xml:"body"`
}

type bodyXML struct {
	Presentation presentationBodyXML `xml:"presentation"`
}

type presentationBodyXML struct {
	Pages []pageXML `xml:"page"`
}

// pageXML represents one draw:page, i.e. one slide.
type pageXML struct {
	Name       string     `xml:"name,attr"`
	StyleName  string     `xml:"style-name,attr"`
	MasterName string     `xml:"master-page-name,attr"`
	Frames     []frameXML `xml:"frame"`
	Notes      *notesXML  `xml:"notes"`
}

// frameXML represents a draw:frame: a positioned box holding a text box,
// an image, or a table.
type frameXML struct {
	Class   string      `xml:"class,attr"` // presentation:class
	Name    string      `xml:"name,attr"`
	TextBox *textBoxXML `xml:"text-box"`
	Image   *imageXML   `xml:"image"`
	Table   *tableXML   `xml:"table"`
}

type textBoxXML struct {
	// Paragraphs and lists interleave; encoding/xml keeps slice order per
	// field, which is enough because outline boxes are all-list and body
	// boxes are mostly all-paragraph.
	P     []textPXML    `xml:"p"`
	Lists []textListXML `xml:"list"`
}

type textPXML struct {
	Text  string    `xml:",chardata"`
	Spans []spanXML `xml:"span"`
}

type spanXML struct {
	Text string `xml:",chardata"`
}

type textListXML struct {
	StyleName string        `xml:"style-name,attr"`
	Items     []listItemXML `xml:"list-item"`
}

type listItemXML struct {
	P     []textPXML    `xml:"p"`
	Lists []textListXML `xml:"list"` // Nested sublists
}

type imageXML struct {
	Href string `xml:"href,attr"` // xlink:href
}

type tableXML struct {
	Rows []tableRowXML `xml:"table-row"`
}

type tableRowXML struct {
	Cells []tableCellXML `xml:"table-cell"`
}

type tableCellXML struct {
	P []textPXML `xml:"p"`
}

// notesXML represents presentation:notes attached to a page.
type notesXML struct {
	Frames []frameXML `xml:"frame"`
}

// metaXML represents the meta.xml file structure.
type metaXML struct {
	XMLName xml.Name     `xml:"document-meta"`
	Meta    *metaBodyXML `xml:"meta"`
}

type metaBodyXML struct {
	Title     string   `xml:"title"`
	Creator   string   `xml:"creator"`
	Subject   string   `xml:"subject"`
	Date      string   `xml:"date"`
	Generator string   `xml:"generator"`
	Keywords  []string `xml:"keyword"`
}
