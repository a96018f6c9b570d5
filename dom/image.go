package dom

import (
	"fmt"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Resource is the snapshot of the image resource backing an element. It is
// pushed by the fetch/decode collaborator and read through naturalWidth,
// naturalHeight and complete.
type Resource struct {
	Width    int
	Height   int
	Complete bool
}

// HTMLImageElement is an img element with reflected attributes and the
// derived state of its image resource.
type HTMLImageElement struct {
	*Element
	resource Resource
}

// Image creates a detached img element, the script construction path next to
// markup parsing. Up to two values are used: width, then height. The new
// element has no src, so complete is false and the natural dimensions are 0
// until a resource is attached.
func Image(dimensions ...int) *HTMLImageElement {
	n := &html.Node{
		Type:     html.ElementNode,
		DataAtom: atom.Img,
		Data:     "img",
	}
	elem, _ := NewElement(n)
	img := &HTMLImageElement{Element: elem}
	if len(dimensions) > 0 {
		img.SetWidth(dimensions[0])
	}
	if len(dimensions) > 1 {
		img.SetHeight(dimensions[1])
	}
	return img
}

// NewHTMLImageElement adopts a parsed img node.
func NewHTMLImageElement(n *html.Node) (*HTMLImageElement, error) {
	elem, err := NewElement(n)
	if err != nil {
		return nil, err
	}
	if n.DataAtom != atom.Img && !strings.EqualFold(n.Data, "img") {
		return nil, fmt.Errorf("%w not an img element: %s", ErrNode, n.Data)
	}
	return &HTMLImageElement{Element: elem}, nil
}

// SetResource pushes the decoded state of the image resource into the
// element. This is the collaborator's write path, the reflection surface
// cannot reach it.
func (img *HTMLImageElement) SetResource(r Resource) {
	img.resource = r
}

// ResetResource drops the resource snapshot, for example after the source
// changed.
func (img *HTMLImageElement) ResetResource() {
	img.resource = Resource{}
}

// Resource returns the current resource snapshot.
func (img *HTMLImageElement) Resource() Resource {
	return img.resource
}

func (img *HTMLImageElement) getString(property string) string {
	v, _ := img.Get(property)
	return v.(string)
}

func (img *HTMLImageElement) getUnsigned(property string) int {
	v, _ := img.Get(property)
	return v.(int)
}

// Alt returns the alt property.
func (img *HTMLImageElement) Alt() string { return img.getString("alt") }

// SetAlt sets the alt property.
func (img *HTMLImageElement) SetAlt(value string) { img.Set("alt", value) }

// Src returns the src property.
func (img *HTMLImageElement) Src() string { return img.getString("src") }

// SetSrc sets the src property and resets the resource snapshot.
func (img *HTMLImageElement) SetSrc(value string) { img.Set("src", value) }

// CrossOrigin returns the crossOrigin property.
func (img *HTMLImageElement) CrossOrigin() string { return img.getString("crossOrigin") }

// SetCrossOrigin sets the crossOrigin property. The accepted values are "",
// "anonymous" and "use-credentials"; anything else fails with
// ErrInvalidValue and leaves the previous value in place.
func (img *HTMLImageElement) SetCrossOrigin(value string) error {
	return img.Set("crossOrigin", value)
}

// UseMap returns the useMap property.
func (img *HTMLImageElement) UseMap() string { return img.getString("useMap") }

// SetUseMap sets the useMap property.
func (img *HTMLImageElement) SetUseMap(value string) { img.Set("useMap", value) }

// LongDesc returns the longDesc property.
func (img *HTMLImageElement) LongDesc() string { return img.getString("longDesc") }

// SetLongDesc sets the longDesc property.
func (img *HTMLImageElement) SetLongDesc(value string) { img.Set("longDesc", value) }

// Name returns the name property.
func (img *HTMLImageElement) Name() string { return img.getString("name") }

// SetName sets the name property.
func (img *HTMLImageElement) SetName(value string) { img.Set("name", value) }

// Align returns the align property.
func (img *HTMLImageElement) Align() string { return img.getString("align") }

// SetAlign sets the align property.
func (img *HTMLImageElement) SetAlign(value string) { img.Set("align", value) }

// Border returns the border property, the empty string when the attribute
// holds the null marker or is absent.
func (img *HTMLImageElement) Border() string { return img.getString("border") }

// SetBorder sets the border property.
func (img *HTMLImageElement) SetBorder(value string) { img.Set("border", value) }

// SetBorderNull writes the null marker to the border property, which reads
// back as the empty string.
func (img *HTMLImageElement) SetBorderNull() { img.Set("border", nil) }

// IsMap returns true if the ismap attribute is present.
func (img *HTMLImageElement) IsMap() bool {
	v, _ := img.Get("isMap")
	return v.(bool)
}

// SetIsMap sets or removes the ismap attribute.
func (img *HTMLImageElement) SetIsMap(value bool) { img.Set("isMap", value) }

// Width returns the width property, 0 when the attribute is absent or not a
// non-negative integer.
func (img *HTMLImageElement) Width() int { return img.getUnsigned("width") }

// SetWidth sets the width property, clamped into the unsigned range.
func (img *HTMLImageElement) SetWidth(value int) { img.Set("width", value) }

// Height returns the height property.
func (img *HTMLImageElement) Height() int { return img.getUnsigned("height") }

// SetHeight sets the height property.
func (img *HTMLImageElement) SetHeight(value int) { img.Set("height", value) }

// Hspace returns the hspace property.
func (img *HTMLImageElement) Hspace() int { return img.getUnsigned("hspace") }

// SetHspace sets the hspace property.
func (img *HTMLImageElement) SetHspace(value int) { img.Set("hspace", value) }

// Vspace returns the vspace property.
func (img *HTMLImageElement) Vspace() int { return img.getUnsigned("vspace") }

// SetVspace sets the vspace property.
func (img *HTMLImageElement) SetVspace(value int) { img.Set("vspace", value) }

// NaturalWidth returns the intrinsic width of the image resource, 0 until
// the resource is available.
func (img *HTMLImageElement) NaturalWidth() int { return img.resource.Width }

// NaturalHeight returns the intrinsic height of the image resource, 0 until
// the resource is available.
func (img *HTMLImageElement) NaturalHeight() int { return img.resource.Height }

// Complete reports whether the image resource has finished loading.
func (img *HTMLImageElement) Complete() bool { return img.resource.Complete }
