// Package fs provides filesystem adapters for the configuration pass.
package fs

import (
	"os"
	"path/filepath"

	"go.trai.ch/mason/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Verifier = (*Verifier)(nil)

// Verifier checks declared pipeline byproducts against the filesystem.
type Verifier struct{}

// NewVerifier creates a new Verifier.
func NewVerifier() *Verifier {
	return &Verifier{}
}

// VerifyByproducts checks which of the declared byproduct paths exist under
// the given root directory and returns the missing ones. A missing byproduct
// is reported, not failed on: the pipeline runner decides what to do with it.
func (v *Verifier) VerifyByproducts(root string, byproducts []string) ([]string, error) {
	var missing []string
	for _, bp := range byproducts {
		path := bp
		if !filepath.IsAbs(path) {
			path = filepath.Join(root, bp)
		}
		if _, err := os.Stat(path); err != nil {
			if os.IsNotExist(err) {
				missing = append(missing, bp)
				continue
			}
			return nil, zerr.With(zerr.Wrap(err, "failed to stat byproduct"), "path", path)
		}
	}
	return missing, nil
}
