// Package htmldoc is the markup parse path for image elements. It parses an
// HTML document, collects the img elements and drives the image loader.
package htmldoc

import (
	"io"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/cascadia"
	"github.com/speedata/htmlimg/dom"
	"github.com/speedata/htmlimg/hbag"
)

var imgMatcher = cascadia.MustCompile("img")

// Document is a parsed HTML document together with the image elements found
// in it. The elements are created once at parse time, repeated calls to
// Images return the same objects.
type Document struct {
	// Base resolves relative image references: a directory for documents
	// read from disk, a URL for remote documents. Empty means no
	// resolution.
	Base string

	doc    *goquery.Document
	images []*dom.HTMLImageElement
}

// ParseReader reads an HTML document.
func ParseReader(r io.Reader) (*Document, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, err
	}
	return newDocument(doc, "")
}

// ParseFile reads an HTML document from disk. The file's directory becomes
// the base for relative image references.
func ParseFile(filename string) (*Document, error) {
	r, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer r.Close()
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, err
	}
	return newDocument(doc, filepath.Dir(filename))
}

// ParseFragment reads an HTML fragment from a string.
func ParseFragment(htmltext string) (*Document, error) {
	return ParseReader(strings.NewReader(htmltext))
}

func newDocument(doc *goquery.Document, base string) (*Document, error) {
	d := &Document{Base: base, doc: doc}
	var err error
	doc.FindMatcher(imgMatcher).Each(func(i int, sel *goquery.Selection) {
		img, errElt := dom.NewHTMLImageElement(sel.Get(0))
		if errElt != nil {
			err = errElt
			return
		}
		d.images = append(d.images, img)
	})
	if err != nil {
		return nil, err
	}
	hbag.LogWithFields(hbag.Fields{"component": "htmldoc"}).Debugf("parsed document with %d image elements", len(d.images))
	return d, nil
}

// Selection returns the root selection of the parsed document.
func (d *Document) Selection() *goquery.Selection {
	return d.doc.Selection
}

// Images returns the image elements in document order.
func (d *Document) Images() []*dom.HTMLImageElement {
	return d.images
}

// ResolveSrc resolves an image reference against the document base.
// Absolute URLs, data: URIs and absolute paths stay as they are.
func (d *Document) ResolveSrc(src string) string {
	if d.Base == "" || src == "" {
		return src
	}
	if u, err := url.Parse(src); err == nil && u.Scheme != "" {
		return src
	}
	if base, err := url.Parse(d.Base); err == nil && base.Scheme != "" {
		if ref, err := url.Parse(src); err == nil {
			return base.ResolveReference(ref).String()
		}
		return src
	}
	if filepath.IsAbs(src) {
		return src
	}
	return filepath.Join(d.Base, src)
}
