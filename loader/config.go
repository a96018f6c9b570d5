package loader

import (
	"net/http"
	"time"

	"github.com/speedata/htmlimg/config"
)

// DefaultTimeout bounds a single HTTP fetch when the configuration does not
// say otherwise.
const DefaultTimeout = 30 * time.Second

// FromConfig returns a loader set up from the optional configuration. Unset
// fields keep the loader defaults.
func FromConfig(cfg *config.Config) *Loader {
	ld := NewLoader()
	ld.Client = &http.Client{Timeout: cfg.TimeoutOrDefault(DefaultTimeout)}
	if cfg == nil {
		return ld
	}
	if cfg.MaxBytes > 0 {
		ld.MaxBytes = cfg.MaxBytes
	}
	if cfg.UserAgent != "" {
		ld.UserAgent = cfg.UserAgent
	}
	if len(cfg.AllowedSchemes) > 0 {
		ld.AllowedSchemes = cfg.AllowedSchemes
	}
	return ld
}
