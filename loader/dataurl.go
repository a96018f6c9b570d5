package loader

import (
	"encoding/base64"
	"errors"
	"fmt"
	"net/url"
	"strings"
)

// ErrDataURI signals a malformed data: URI.
var ErrDataURI = errors.New("invalid data uri")

// decodeDataURI returns the payload of an RFC 2397 data: URI. The part
// before the first comma holds the media type; a ";base64" suffix on it
// selects base64 decoding, otherwise the payload is percent-decoded text.
func decodeDataURI(ref string) ([]byte, error) {
	rest, ok := strings.CutPrefix(ref, "data:")
	if !ok {
		return nil, fmt.Errorf("%w: missing data: prefix", ErrDataURI)
	}
	mediatype, payload, ok := strings.Cut(rest, ",")
	if !ok {
		return nil, fmt.Errorf("%w: missing comma", ErrDataURI)
	}
	if strings.HasSuffix(mediatype, ";base64") {
		data, err := base64.StdEncoding.DecodeString(payload)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrDataURI, err)
		}
		return data, nil
	}
	decoded, err := url.PathUnescape(payload)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDataURI, err)
	}
	return []byte(decoded), nil
}

// DataURIMediaType returns the media type of a data: URI without decoding
// the payload, the empty string when none is given.
func DataURIMediaType(ref string) string {
	rest, ok := strings.CutPrefix(ref, "data:")
	if !ok {
		return ""
	}
	mediatype, _, ok := strings.Cut(rest, ",")
	if !ok {
		return ""
	}
	return strings.TrimSuffix(mediatype, ";base64")
}
