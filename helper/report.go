package main

import (
	"context"
	"fmt"

	"github.com/speedata/htmlimg/htmldoc"
)

// report parses the HTML file, loads all images and prints one line per img
// element with the reflected and the intrinsic dimensions.
func report(filename, timeout string) error {
	doc, err := htmldoc.ParseFile(filename)
	if err != nil {
		return err
	}
	ld, err := newLoader(timeout)
	if err != nil {
		return err
	}
	loadErr := doc.LoadImages(context.Background(), ld)
	for _, img := range doc.Images() {
		state := "incomplete"
		if img.Complete() {
			state = "complete"
		}
		fmt.Printf("%s: width %d height %d natural %d x %d (%s)\n",
			img.Src(), img.Width(), img.Height(), img.NaturalWidth(), img.NaturalHeight(), state)
	}
	return loadErr
}
