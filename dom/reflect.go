package dom

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/speedata/htmlimg/hbag"
)

var (
	// ErrInvalidValue signals a setter value outside the accepted domain.
	ErrInvalidValue = errors.New("invalid value")
	// ErrImmutable signals a write to a derived read-only property.
	ErrImmutable = errors.New("immutable property")
	// ErrUnknownProperty signals an access to a property not in the
	// reflection table.
	ErrUnknownProperty = errors.New("unknown property")
)

type propKind uint8

const (
	// plain string reflection, absent attribute reads as ""
	propString propKind = iota
	// string reflection where a nil value is stored as the empty string
	propNullableString
	// presence-based boolean reflection
	propBool
	// non-negative integer reflection, absent or unparsable reads as 0
	propUnsigned
	// derived from the image resource, not settable
	propDerivedUnsigned
	propDerivedBool
)

type propEntry struct {
	attr     string
	kind     propKind
	validate func(string) error
}

// imageProps is the reflection table for HTMLImageElement. Each entry maps a
// property name to its markup attribute, its storage kind and an optional
// value check run before the attribute is written.
var imageProps = map[string]propEntry{
	"alt":           {attr: "alt", kind: propString},
	"src":           {attr: "src", kind: propString},
	"crossOrigin":   {attr: "crossorigin", kind: propString, validate: validateCrossOrigin},
	"useMap":        {attr: "usemap", kind: propString},
	"longDesc":      {attr: "longdesc", kind: propString},
	"name":          {attr: "name", kind: propString},
	"align":         {attr: "align", kind: propString},
	"border":        {attr: "border", kind: propNullableString},
	"isMap":         {attr: "ismap", kind: propBool},
	"width":         {attr: "width", kind: propUnsigned},
	"height":        {attr: "height", kind: propUnsigned},
	"hspace":        {attr: "hspace", kind: propUnsigned},
	"vspace":        {attr: "vspace", kind: propUnsigned},
	"naturalWidth":  {kind: propDerivedUnsigned},
	"naturalHeight": {kind: propDerivedUnsigned},
	"complete":      {kind: propDerivedBool},
}

// crossOrigin accepts a closed set of values. The empty string is the
// missing-value default.
func validateCrossOrigin(value string) error {
	switch strings.ToLower(value) {
	case "", "anonymous", "use-credentials":
		return nil
	}
	return fmt.Errorf("%w crossOrigin %q not in {\"\", \"anonymous\", \"use-credentials\"}", ErrInvalidValue, value)
}

// Get returns the current value of the property. Strings read as the stored
// attribute value or "", booleans as attribute presence, unsigned integers as
// the parsed attribute value or 0, derived properties as the latest resource
// snapshot.
func (img *HTMLImageElement) Get(property string) (any, error) {
	entry, ok := imageProps[property]
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownProperty, property)
	}
	switch entry.kind {
	case propString, propNullableString:
		return img.GetAttribute(entry.attr), nil
	case propBool:
		return img.HasAttribute(entry.attr), nil
	case propUnsigned:
		val, ok := img.LookupAttribute(entry.attr)
		if !ok {
			return 0, nil
		}
		n, err := hbag.ParseUnsigned(val)
		if err != nil {
			// silent default, never an error on read
			return 0, nil
		}
		return n, nil
	case propDerivedUnsigned:
		if property == "naturalWidth" {
			return img.resource.Width, nil
		}
		return img.resource.Height, nil
	case propDerivedBool:
		return img.resource.Complete, nil
	}
	return nil, fmt.Errorf("%w %q", ErrUnknownProperty, property)
}

// Set writes the property. String properties expect a string (border also
// accepts nil, stored as the empty string), isMap expects a bool, unsigned
// integer properties expect an int which is clamped into the unsigned range.
// Writes to derived read-only properties fail with ErrImmutable. On failure
// the stored state is left unchanged.
func (img *HTMLImageElement) Set(property string, value any) error {
	entry, ok := imageProps[property]
	if !ok {
		return fmt.Errorf("%w %q", ErrUnknownProperty, property)
	}
	switch entry.kind {
	case propString:
		s, ok := value.(string)
		if !ok {
			return fmt.Errorf("%w %s expects a string, got %T", ErrInvalidValue, property, value)
		}
		if entry.validate != nil {
			if err := entry.validate(s); err != nil {
				return err
			}
		}
		img.SetAttribute(entry.attr, s)
		if property == "src" {
			// a new source implies a new fetch
			img.ResetResource()
		}
		return nil
	case propNullableString:
		if value == nil {
			img.SetAttribute(entry.attr, "")
			return nil
		}
		s, ok := value.(string)
		if !ok {
			return fmt.Errorf("%w %s expects a string or nil, got %T", ErrInvalidValue, property, value)
		}
		img.SetAttribute(entry.attr, s)
		return nil
	case propBool:
		b, ok := value.(bool)
		if !ok {
			return fmt.Errorf("%w %s expects a bool, got %T", ErrInvalidValue, property, value)
		}
		if b {
			img.SetAttribute(entry.attr, "")
		} else {
			img.RemoveAttribute(entry.attr)
		}
		return nil
	case propUnsigned:
		n, ok := value.(int)
		if !ok {
			return fmt.Errorf("%w %s expects an int, got %T", ErrInvalidValue, property, value)
		}
		img.SetAttribute(entry.attr, strconv.Itoa(hbag.ClampUnsigned(n)))
		return nil
	case propDerivedUnsigned, propDerivedBool:
		return fmt.Errorf("%w %s", ErrImmutable, property)
	}
	return fmt.Errorf("%w %q", ErrUnknownProperty, property)
}

// Properties returns the names of all reflected and derived properties.
func Properties() []string {
	names := make([]string, 0, len(imageProps))
	for name := range imageProps {
		names = append(names, name)
	}
	return names
}
