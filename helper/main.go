package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/speedata/htmlimg/config"
	"github.com/speedata/htmlimg/hbag"
	"github.com/speedata/htmlimg/loader"
	"github.com/speedata/optionparser"
)

// newLoader builds a loader from the optional htmlimg.yaml. A non-empty
// timeout overrides the configured one.
func newLoader(timeout string) (*loader.Loader, error) {
	cfg, err := config.LoadOptional(".")
	if err != nil {
		return nil, err
	}
	if timeout != "" {
		if _, err := time.ParseDuration(timeout); err != nil {
			return nil, fmt.Errorf("--timeout: %w", err)
		}
		cfg.Timeout = timeout
	}
	return loader.FromConfig(cfg), nil
}

func dothings() error {
	verbose := false
	quiet := false
	timeout := ""
	op := optionparser.NewOptionParser()
	op.Command("report", "List the images of an HTML file")
	op.Command("probe", "Probe a single image reference")
	op.On("-v", "--verbose", "Show debug output", &verbose)
	op.On("-q", "--quiet", "Only show errors", &quiet)
	op.On("--timeout DUR", "HTTP fetch timeout, for example 10s", &timeout)
	err := op.Parse()
	if err != nil {
		return err
	}

	switch {
	case quiet:
		hbag.SetLogLevel(hbag.ErrorLevel)
	case verbose:
		hbag.SetLogLevel(hbag.DebugLevel)
	default:
		hbag.SetLogLevel(hbag.WarnLevel)
	}

	if len(op.Extra) != 2 {
		op.Help()
		return nil
	}
	switch op.Extra[0] {
	case "report":
		return report(op.Extra[1], timeout)
	case "probe":
		return probe(op.Extra[1], timeout)
	}
	op.Help()
	return nil
}

func probe(ref, timeout string) error {
	ld, err := newLoader(timeout)
	if err != nil {
		return err
	}
	res, err := ld.Load(context.Background(), ref)
	if err != nil {
		return err
	}
	fmt.Printf("%s: %d x %d\n", ref, res.Width, res.Height)
	return nil
}

func main() {
	if err := dothings(); err != nil {
		fmt.Println(err.Error())
		os.Exit(1)
	}
}
