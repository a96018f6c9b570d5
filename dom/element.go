// Package dom implements a small DOM binding layer for HTML image elements.
// Attribute values live on the underlying golang.org/x/net/html node, so
// elements created from parsed markup and elements created from script share
// the same storage.
package dom

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/net/html"
)

var (
	// ErrNode signals that a markup node cannot back an element.
	ErrNode = errors.New("node error")
)

// Element wraps an element node of a parsed or constructed HTML tree and
// provides attribute access on it. An element is owned by a single control
// flow, there is no internal locking.
type Element struct {
	node *html.Node
}

// NewElement wraps the markup node. The node must be an element node.
func NewElement(n *html.Node) (*Element, error) {
	if n == nil || n.Type != html.ElementNode {
		return nil, fmt.Errorf("%w not an element node", ErrNode)
	}
	return &Element{node: n}, nil
}

// Node returns the underlying markup node.
func (e *Element) Node() *html.Node {
	return e.node
}

// TagName returns the lowercase tag name of the element.
func (e *Element) TagName() string {
	return strings.ToLower(e.node.Data)
}

// LookupAttribute returns the value of the attribute and true, or the empty
// string and false if the attribute does not exist. Attribute names match
// case-insensitively.
func (e *Element) LookupAttribute(name string) (string, bool) {
	for _, attr := range e.node.Attr {
		if attr.Namespace == "" && strings.EqualFold(attr.Key, name) {
			return attr.Val, true
		}
	}
	return "", false
}

// GetAttribute returns the value of the attribute or the empty string if the
// attribute does not exist.
func (e *Element) GetAttribute(name string) string {
	val, _ := e.LookupAttribute(name)
	return val
}

// HasAttribute returns true if the attribute exists on the element.
func (e *Element) HasAttribute(name string) bool {
	_, ok := e.LookupAttribute(name)
	return ok
}

// SetAttribute writes the attribute, replacing an existing value. Names
// match case-insensitively like the read path, so adopted nodes with
// non-lowercase keys never grow duplicates; new attributes are stored
// lowercase.
func (e *Element) SetAttribute(name, value string) {
	for i, attr := range e.node.Attr {
		if attr.Namespace == "" && strings.EqualFold(attr.Key, name) {
			e.node.Attr[i].Val = value
			return
		}
	}
	e.node.Attr = append(e.node.Attr, html.Attribute{Key: strings.ToLower(name), Val: value})
}

// RemoveAttribute deletes the attribute if it exists. Names match
// case-insensitively.
func (e *Element) RemoveAttribute(name string) {
	for i, attr := range e.node.Attr {
		if attr.Namespace == "" && strings.EqualFold(attr.Key, name) {
			e.node.Attr = append(e.node.Attr[:i], e.node.Attr[i+1:]...)
			return
		}
	}
}

// AttributeNames returns the attribute names in the order they appear on the
// element.
func (e *Element) AttributeNames() []string {
	names := make([]string, 0, len(e.node.Attr))
	for _, attr := range e.node.Attr {
		if attr.Namespace == "" {
			names = append(names, attr.Key)
		}
	}
	return names
}
