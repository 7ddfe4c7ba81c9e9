// Package validator is the explicit registration point for validation
// rules: each rule calls Register at package init() time, declaring whether
// it needs a single file or the whole feed. This replaces the original
// tool's reflective scan for annotated validator classes with a plain
// package-level registry, per spec.md §9's "reflective validator discovery
// → explicit registry" redesign flag.
package validator

import (
	"sort"
	"sync"

	"github.com/transitdata/gtfs-validator/internal/feed"
	"github.com/transitdata/gtfs-validator/internal/notice"
)

// Kind distinguishes a validator that only needs one loaded table from one
// that needs the whole feed.
type Kind int

const (
	// SingleFile validators run after the whole feed has been loaded, one
	// worker per declared File, in parallel with every other file's
	// validators; they do not start while other files are still loading.
	SingleFile Kind = iota
	// CrossFile validators run once, after every file has loaded.
	CrossFile
)

// Func is the rule body: inspect f (for a SingleFile validator, only the
// declared File's table need be read, though the whole feed is passed for
// convenience) and append findings to notices.
type Func func(f *feed.Feed, notices *notice.Container)

// Descriptor is one registered validator: its declared inputs and its rule
// body.
type Descriptor struct {
	// Name identifies the validator in system-error notices when it panics.
	Name string
	Kind Kind
	// File is the one table a SingleFile validator depends on; ignored for
	// CrossFile validators.
	File string
	Run  Func
}

var (
	mu       sync.Mutex
	registry []Descriptor
)

// Register records d. Validators call this from an init() function so the
// registry is fully populated before any pipeline run starts.
func Register(d Descriptor) {
	mu.Lock()
	defer mu.Unlock()
	registry = append(registry, d)
}

// Reset clears the registry. Exists for tests that want a clean slate
// instead of whatever production validators happened to register via
// import side effects.
func Reset() {
	mu.Lock()
	defer mu.Unlock()
	registry = nil
}

// All returns every registered validator, ordered by name for determinism.
func All() []Descriptor {
	mu.Lock()
	defer mu.Unlock()
	out := append([]Descriptor(nil), registry...)
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// SingleFileValidators returns every SingleFile validator declared against
// file, ordered by name.
func SingleFileValidators(file string) []Descriptor {
	var out []Descriptor
	for _, d := range All() {
		if d.Kind == SingleFile && d.File == file {
			out = append(out, d)
		}
	}
	return out
}

// CrossFileValidators returns every CrossFile validator, ordered by name.
func CrossFileValidators() []Descriptor {
	var out []Descriptor
	for _, d := range All() {
		if d.Kind == CrossFile {
			out = append(out, d)
		}
	}
	return out
}

// Files returns the distinct set of files any SingleFile validator declares
// a dependency on.
func Files() []string {
	seen := make(map[string]bool)
	var out []string
	for _, d := range All() {
		if d.Kind == SingleFile && !seen[d.File] {
			seen[d.File] = true
			out = append(out, d.File)
		}
	}
	sort.Strings(out)
	return out
}
