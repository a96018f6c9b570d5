// Package loader fetches image resources and probes their intrinsic
// dimensions. It is the collaborator that fills naturalWidth, naturalHeight
// and complete on an image element; elements themselves never fetch.
package loader

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"io"
	"net/http"
	"net/url"
	"os"

	// The decoders are not used explicitly in the code below, but are
	// imported for their initialization side-effect, which allows
	// image.DecodeConfig to understand these image formats.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/google/uuid"
	"github.com/speedata/htmlimg/dom"
	"github.com/speedata/htmlimg/hbag"
)

var (
	// ErrNoSource signals an element without a usable src.
	ErrNoSource = errors.New("no source")
	// ErrScheme signals a reference with a scheme the loader does not accept.
	ErrScheme = errors.New("scheme not allowed")
	// ErrTooLarge signals a response body above the configured limit.
	ErrTooLarge = errors.New("resource too large")
)

// DefaultMaxBytes limits how much of a remote resource the loader reads.
const DefaultMaxBytes = 20 << 20

// DefaultUserAgent is sent with every HTTP request.
const DefaultUserAgent = "speedata-htmlimg/1"

// Loader fetches image references and decodes their headers. The zero value
// is not usable, call NewLoader.
type Loader struct {
	Client         *http.Client
	MaxBytes       int64
	UserAgent      string
	AllowedSchemes []string
}

// NewLoader returns a loader with the default HTTP client, size limit and
// the schemes file, http, https and data enabled.
func NewLoader() *Loader {
	return &Loader{
		Client:         http.DefaultClient,
		MaxBytes:       DefaultMaxBytes,
		UserAgent:      DefaultUserAgent,
		AllowedSchemes: []string{"file", "http", "https", "data"},
	}
}

// Result is delivered by LoadAsync.
type Result struct {
	Resource *dom.Resource
	Err      error
}

func (ld *Loader) schemeAllowed(scheme string) bool {
	for _, s := range ld.AllowedSchemes {
		if s == scheme {
			return true
		}
	}
	return false
}

// Load fetches the image reference ref and returns its decoded state. ref is
// a file path, a file:, http: or https: URL or a data: URI. Only the image
// header is decoded.
func (ld *Loader) Load(ctx context.Context, ref string) (*dom.Resource, error) {
	if ref == "" {
		return nil, ErrNoSource
	}
	requestID := uuid.NewString()
	entry := hbag.LogWithFields(hbag.Fields{"component": "loader", "request": requestID})
	entry.Debugf("load image %s", ref)

	scheme := refScheme(ref)
	if !ld.schemeAllowed(scheme) {
		return nil, fmt.Errorf("%w: %s", ErrScheme, scheme)
	}

	var r io.Reader
	switch scheme {
	case "data":
		data, err := decodeDataURI(ref)
		if err != nil {
			return nil, err
		}
		r = bytes.NewReader(data)
	case "http", "https":
		body, err := ld.fetchHTTP(ctx, ref)
		if err != nil {
			return nil, err
		}
		defer body.Close()
		r = body
	default:
		f, err := os.Open(filePath(ref))
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}

	cfg, format, err := image.DecodeConfig(r)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", ref, err)
	}
	entry.Debugf("decoded %s image, %d x %d", format, cfg.Width, cfg.Height)
	return &dom.Resource{Width: cfg.Width, Height: cfg.Height, Complete: true}, nil
}

// LoadAsync runs Load in its own goroutine and delivers the outcome on the
// returned channel. The channel is buffered, the result can be picked up at
// any time.
func (ld *Loader) LoadAsync(ctx context.Context, ref string) <-chan Result {
	ch := make(chan Result, 1)
	go func() {
		res, err := ld.Load(ctx, ref)
		ch <- Result{Resource: res, Err: err}
	}()
	return ch
}

// LoadInto fetches the element's src and pushes the decoded state into the
// element. On failure the element stays incomplete.
func (ld *Loader) LoadInto(ctx context.Context, img *dom.HTMLImageElement) error {
	src := img.Src()
	if src == "" {
		return ErrNoSource
	}
	res, err := ld.Load(ctx, src)
	if err != nil {
		return err
	}
	img.SetResource(*res)
	return nil
}

func (ld *Loader) fetchHTTP(ctx context.Context, ref string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, ref, nil)
	if err != nil {
		return nil, err
	}
	ua := ld.UserAgent
	if ua == "" {
		ua = DefaultUserAgent
	}
	req.Header.Set("User-Agent", ua)
	client := ld.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, fmt.Errorf("get %s: unexpected status %s", ref, resp.Status)
	}
	max := ld.MaxBytes
	if max <= 0 {
		max = DefaultMaxBytes
	}
	return &limitedBody{rc: resp.Body, remaining: max}, nil
}

// limitedBody fails with ErrTooLarge instead of reporting a silent EOF when
// the body exceeds the limit. A body of exactly the limit reads to a clean
// EOF.
type limitedBody struct {
	rc        io.ReadCloser
	remaining int64
}

func (l *limitedBody) Read(p []byte) (int, error) {
	if l.remaining < 0 {
		return 0, ErrTooLarge
	}
	// read one byte past the limit to tell "exactly the limit" apart from
	// "larger than the limit"
	if int64(len(p)) > l.remaining+1 {
		p = p[:l.remaining+1]
	}
	n, err := l.rc.Read(p)
	if int64(n) > l.remaining {
		n = int(l.remaining)
		l.remaining = -1
		return n, ErrTooLarge
	}
	l.remaining -= int64(n)
	return n, err
}

func (l *limitedBody) Close() error {
	return l.rc.Close()
}

// refScheme returns the URL scheme of ref or "file" when ref has none and is
// a plain path.
func refScheme(ref string) string {
	u, err := url.Parse(ref)
	if err != nil || u.Scheme == "" {
		return "file"
	}
	return u.Scheme
}

// filePath strips a file: prefix so that both URLs and plain paths open.
func filePath(ref string) string {
	u, err := url.Parse(ref)
	if err != nil || u.Scheme != "file" {
		return ref
	}
	if u.Path != "" {
		return u.Path
	}
	return u.Opaque
}
