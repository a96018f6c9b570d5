package loader

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"image"
	"image/png"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/speedata/htmlimg/dom"
)

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, w, h))); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func pngDataURI(t *testing.T, w, h int) string {
	t.Helper()
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(pngBytes(t, w, h))
}

func TestLoadDataURI(t *testing.T) {
	ld := NewLoader()
	res, err := ld.Load(context.Background(), pngDataURI(t, 100, 50))
	if err != nil {
		t.Fatalf("Load(data uri) error %v, want nil", err)
	}
	if res.Width != 100 || res.Height != 50 {
		t.Errorf("Load(data uri) = %d x %d, want 100 x 50", res.Width, res.Height)
	}
	if !res.Complete {
		t.Errorf("Complete = false, want true")
	}
}

func TestLoadDataURIInvalid(t *testing.T) {
	ld := NewLoader()
	for _, ref := range []string{"data:image/png", "data:image/png;base64,@@@"} {
		if _, err := ld.Load(context.Background(), ref); !errors.Is(err, ErrDataURI) {
			t.Errorf("Load(%q) error %v, want ErrDataURI", ref, err)
		}
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	filename := filepath.Join(dir, "img.png")
	if err := os.WriteFile(filename, pngBytes(t, 12, 34), 0644); err != nil {
		t.Fatal(err)
	}
	ld := NewLoader()
	for _, ref := range []string{filename, "file://" + filename} {
		res, err := ld.Load(context.Background(), ref)
		if err != nil {
			t.Fatalf("Load(%q) error %v, want nil", ref, err)
		}
		if res.Width != 12 || res.Height != 34 {
			t.Errorf("Load(%q) = %d x %d, want 12 x 34", ref, res.Width, res.Height)
		}
	}
}

func TestLoadHTTP(t *testing.T) {
	data := pngBytes(t, 64, 8)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/img.png" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "image/png")
		w.Write(data)
	}))
	defer srv.Close()

	ld := NewLoader()
	res, err := ld.Load(context.Background(), srv.URL+"/img.png")
	if err != nil {
		t.Fatalf("Load error %v, want nil", err)
	}
	if res.Width != 64 || res.Height != 8 {
		t.Errorf("Load = %d x %d, want 64 x 8", res.Width, res.Height)
	}

	if _, err = ld.Load(context.Background(), srv.URL+"/missing.png"); err == nil {
		t.Errorf("Load(missing) error nil, want status error")
	}
}

func TestLoadSchemeRejected(t *testing.T) {
	ld := NewLoader()
	ld.AllowedSchemes = []string{"data"}
	if _, err := ld.Load(context.Background(), "http://example.com/a.png"); !errors.Is(err, ErrScheme) {
		t.Errorf("Load(http) error %v, want ErrScheme", err)
	}
	if _, err := ld.Load(context.Background(), "a.png"); !errors.Is(err, ErrScheme) {
		t.Errorf("Load(plain path) error %v, want ErrScheme", err)
	}
}

func TestLoadMaxBytes(t *testing.T) {
	data := pngBytes(t, 200, 200)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write(data)
	}))
	defer srv.Close()

	ld := NewLoader()
	ld.MaxBytes = 8
	if _, err := ld.Load(context.Background(), srv.URL); err == nil {
		t.Errorf("Load with MaxBytes 8 error nil, want decode failure")
	}
}

func TestLoadMaxBytesExact(t *testing.T) {
	data := pngBytes(t, 16, 16)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write(data)
	}))
	defer srv.Close()

	ld := NewLoader()
	ld.MaxBytes = int64(len(data))
	res, err := ld.Load(context.Background(), srv.URL)
	if err != nil {
		t.Fatalf("Load with MaxBytes == body size error %v, want nil", err)
	}
	if res.Width != 16 || res.Height != 16 {
		t.Errorf("Load = %d x %d, want 16 x 16", res.Width, res.Height)
	}
}

func TestLimitedBodyBoundary(t *testing.T) {
	data := []byte("0123456789")
	body := &limitedBody{rc: io.NopCloser(bytes.NewReader(data)), remaining: int64(len(data))}
	got, err := io.ReadAll(body)
	if err != nil {
		t.Errorf("ReadAll with limit == size error %v, want nil", err)
	}
	if string(got) != string(data) {
		t.Errorf("ReadAll = %q, want %q", got, data)
	}

	body = &limitedBody{rc: io.NopCloser(bytes.NewReader(data)), remaining: int64(len(data)) - 1}
	if _, err := io.ReadAll(body); !errors.Is(err, ErrTooLarge) {
		t.Errorf("ReadAll with limit == size-1 error %v, want ErrTooLarge", err)
	}
}

func TestLoadInto(t *testing.T) {
	img := dom.Image()
	ld := NewLoader()
	if err := ld.LoadInto(context.Background(), img); !errors.Is(err, ErrNoSource) {
		t.Errorf("LoadInto without src error %v, want ErrNoSource", err)
	}
	img.SetSrc(pngDataURI(t, 100, 50))
	if err := ld.LoadInto(context.Background(), img); err != nil {
		t.Fatalf("LoadInto error %v, want nil", err)
	}
	if img.NaturalWidth() != 100 || img.NaturalHeight() != 50 || !img.Complete() {
		t.Errorf("element state = %d x %d complete %v, want 100 x 50 complete true", img.NaturalWidth(), img.NaturalHeight(), img.Complete())
	}
}

func TestLoadAsync(t *testing.T) {
	ld := NewLoader()
	result := <-ld.LoadAsync(context.Background(), pngDataURI(t, 5, 6))
	if result.Err != nil {
		t.Fatalf("LoadAsync error %v, want nil", result.Err)
	}
	if result.Resource.Width != 5 || result.Resource.Height != 6 {
		t.Errorf("LoadAsync = %d x %d, want 5 x 6", result.Resource.Width, result.Resource.Height)
	}
}

func TestLoadEmptyRef(t *testing.T) {
	ld := NewLoader()
	if _, err := ld.Load(context.Background(), ""); !errors.Is(err, ErrNoSource) {
		t.Errorf("Load(\"\") error %v, want ErrNoSource", err)
	}
}
