package htmldoc

import (
	"context"

	"github.com/speedata/htmlimg/hbag"
	"github.com/speedata/htmlimg/loader"
)

// LoadImages fetches every image with a non-empty src and pushes the decoded
// state into the elements. All images are attempted; the first failure is
// returned. Images that fail stay incomplete.
func (d *Document) LoadImages(ctx context.Context, ld *loader.Loader) error {
	var firstErr error
	for _, img := range d.images {
		src := img.Src()
		if src == "" {
			continue
		}
		res, err := ld.Load(ctx, d.ResolveSrc(src))
		if err != nil {
			hbag.LogWithFields(hbag.Fields{"component": "htmldoc"}).Warnf("load %s: %v", src, err)
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		img.SetResource(*res)
	}
	return firstErr
}
