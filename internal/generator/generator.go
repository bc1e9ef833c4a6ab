// Package generator runs the three-phase icon build: prepare the
// iconset directory, render one placeholder per size, compile the
// bundle.
package generator

import (
	"fmt"
	"path/filepath"

	"github.com/Mavwarf/mkicns/internal/iconset"
)

// Imager creates a single square PNG of the given pixel dimension.
type Imager interface {
	Create(path string, px int) error
}

// Bundler compiles an iconset directory into an .icns file.
type Bundler interface {
	Compile(sourceDir, icnsPath string) error
}

// Policy decides what a per-image failure does to the rest of a run.
type Policy int

const (
	// PolicyContinue records the failure and moves on to the next
	// size; bundling is still attempted.
	PolicyContinue Policy = iota
	// PolicyAbort stops at the first failure and skips bundling.
	PolicyAbort
)

// Options parameterizes a run. Dir and Name are required; Progress,
// if non-nil, is called before each size is rendered.
type Options struct {
	Dir      string
	Name     string
	Policy   Policy
	Progress func(name string, px int)
}

// Item is the outcome of one size entry.
type Item struct {
	Name string
	Px   int
	Err  error
}

// Report collects the outcome of a full run. Every attempted size
// appears in Items whether it succeeded or not.
type Report struct {
	Items      []Item
	BundlePath string // empty when bundling failed or was skipped
	BundleErr  error
	Aborted    bool
}

// Generated returns how many size entries succeeded.
func (r Report) Generated() int {
	n := 0
	for _, it := range r.Items {
		if it.Err == nil {
			n++
		}
	}
	return n
}

// Failed returns how many size entries errored.
func (r Report) Failed() int {
	return len(r.Items) - r.Generated()
}

// Summary returns a one-line result, e.g. "10 of 10 images generated".
func (r Report) Summary() string {
	return fmt.Sprintf("%d of %d images generated", r.Generated(), len(iconset.Sizes))
}

// Run builds the iconset for opts.Name under opts.Dir and compiles
// the bundle. The returned error covers only directory creation;
// per-size and bundling failures are reported through Report.
func Run(opts Options, imager Imager, bundler Bundler) (Report, error) {
	srcDir := iconset.SourceDir(opts.Dir, opts.Name)
	if err := iconset.EnsureDir(srcDir); err != nil {
		return Report{}, fmt.Errorf("creating %s: %w", srcDir, err)
	}

	var rep Report
	for _, e := range iconset.Sizes {
		if opts.Progress != nil {
			opts.Progress(e.Name, e.Px)
		}
		err := imager.Create(filepath.Join(srcDir, e.Name), e.Px)
		rep.Items = append(rep.Items, Item{Name: e.Name, Px: e.Px, Err: err})
		if err != nil && opts.Policy == PolicyAbort {
			rep.Aborted = true
			return rep, nil
		}
	}

	icnsPath := iconset.BundlePath(srcDir)
	if err := bundler.Compile(srcDir, icnsPath); err != nil {
		rep.BundleErr = err
		return rep, nil
	}
	rep.BundlePath = icnsPath
	return rep, nil
}
