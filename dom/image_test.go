package dom

import (
	"errors"
	"testing"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

func TestImageConstructor(t *testing.T) {
	img := Image(100, 50)
	if got := img.Width(); got != 100 {
		t.Errorf("Width() = %d, want 100", got)
	}
	if got := img.Height(); got != 50 {
		t.Errorf("Height() = %d, want 50", got)
	}
	if got := img.Src(); got != "" {
		t.Errorf("Src() = %q, want \"\"", got)
	}
	if img.Complete() {
		t.Errorf("Complete() before load = true, want false")
	}
	if img.NaturalWidth() != 0 || img.NaturalHeight() != 0 {
		t.Errorf("natural dimensions before load = %d x %d, want 0 x 0", img.NaturalWidth(), img.NaturalHeight())
	}

	img.SetResource(Resource{Width: 100, Height: 50, Complete: true})
	if !img.Complete() {
		t.Errorf("Complete() after load = false, want true")
	}
	if img.NaturalWidth() != 100 || img.NaturalHeight() != 50 {
		t.Errorf("natural dimensions after load = %d x %d, want 100 x 50", img.NaturalWidth(), img.NaturalHeight())
	}
}

func TestImageConstructorArity(t *testing.T) {
	img := Image()
	if img.HasAttribute("width") || img.HasAttribute("height") {
		t.Errorf("Image() set dimension attributes, want none")
	}
	img = Image(30)
	if got := img.Width(); got != 30 {
		t.Errorf("Width() = %d, want 30", got)
	}
	if img.HasAttribute("height") {
		t.Errorf("Image(30) set a height attribute, want none")
	}
	img = Image(-7, 9)
	if got := img.Width(); got != 0 {
		t.Errorf("Width() = %d, want 0 (clamped)", got)
	}
	if got := img.Height(); got != 9 {
		t.Errorf("Height() = %d, want 9", got)
	}
}

func TestNewHTMLImageElement(t *testing.T) {
	n := &html.Node{
		Type:     html.ElementNode,
		DataAtom: atom.Img,
		Data:     "img",
		Attr: []html.Attribute{
			{Key: "src", Val: "photo.jpg"},
			{Key: "alt", Val: "a photo"},
			{Key: "ismap", Val: ""},
			{Key: "width", Val: "640"},
		},
	}
	img, err := NewHTMLImageElement(n)
	if err != nil {
		t.Fatalf("NewHTMLImageElement error %v, want nil", err)
	}
	if got := img.Src(); got != "photo.jpg" {
		t.Errorf("Src() = %q, want %q", got, "photo.jpg")
	}
	if got := img.Alt(); got != "a photo" {
		t.Errorf("Alt() = %q, want %q", got, "a photo")
	}
	if !img.IsMap() {
		t.Errorf("IsMap() = false, want true")
	}
	if got := img.Width(); got != 640 {
		t.Errorf("Width() = %d, want 640", got)
	}
}

func TestNewHTMLImageElementRejectsOthers(t *testing.T) {
	n := &html.Node{Type: html.ElementNode, DataAtom: atom.Div, Data: "div"}
	if _, err := NewHTMLImageElement(n); !errors.Is(err, ErrNode) {
		t.Errorf("NewHTMLImageElement(div) error %v, want ErrNode", err)
	}
	if _, err := NewHTMLImageElement(nil); !errors.Is(err, ErrNode) {
		t.Errorf("NewHTMLImageElement(nil) error %v, want ErrNode", err)
	}
}

func TestAdoptedMixedCaseAttributes(t *testing.T) {
	n := &html.Node{
		Type:     html.ElementNode,
		DataAtom: atom.Img,
		Data:     "img",
		Attr:     []html.Attribute{{Key: "WIDTH", Val: "5"}},
	}
	img, err := NewHTMLImageElement(n)
	if err != nil {
		t.Fatalf("NewHTMLImageElement error %v, want nil", err)
	}
	if err := img.Set("width", 100); err != nil {
		t.Fatalf("Set(width, 100) error %v, want nil", err)
	}
	got, err := img.Get("width")
	if err != nil {
		t.Fatalf("Get(width) error %v, want nil", err)
	}
	if got != 100 {
		t.Errorf("Get(width) after Set(width, 100) = %v, want 100 (attrs %v)", got, n.Attr)
	}
	if len(n.Attr) != 1 {
		t.Errorf("len(Attr) after write = %d, want 1 (attrs %v)", len(n.Attr), n.Attr)
	}
	img.RemoveAttribute("width")
	if img.HasAttribute("width") {
		t.Errorf("width attribute present after RemoveAttribute (attrs %v)", n.Attr)
	}
	if got := img.Width(); got != 0 {
		t.Errorf("Width() after RemoveAttribute = %d, want 0", got)
	}
}

func TestElementAttributes(t *testing.T) {
	img := Image()
	img.SetAttribute("SRC", "a.png")
	if got := img.GetAttribute("src"); got != "a.png" {
		t.Errorf("GetAttribute(src) = %q, want %q", got, "a.png")
	}
	if got := img.GetAttribute("Src"); got != "a.png" {
		t.Errorf("GetAttribute(Src) = %q, want %q", got, "a.png")
	}
	img.SetAttribute("src", "b.png")
	if got := len(img.AttributeNames()); got != 1 {
		t.Errorf("len(AttributeNames()) = %d, want 1", got)
	}
	img.RemoveAttribute("src")
	if img.HasAttribute("src") {
		t.Errorf("src attribute present after RemoveAttribute")
	}
	if got := img.TagName(); got != "img" {
		t.Errorf("TagName() = %q, want %q", got, "img")
	}
}
