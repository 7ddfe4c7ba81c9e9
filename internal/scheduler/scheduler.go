// Package scheduler runs the registered validators (internal/validator)
// over a loaded feed: single-file validators run file-parallel, cross-file
// validators run sequentially after that barrier, and any panic inside a
// validator is caught and converted to a system error rather than aborting
// the run. Grounded on the teacher's worker-pool pattern for per-file
// GTFS-RT fetches (gtfsrt/client.go), generalized from "fetch N URLs
// concurrently" to "validate N files concurrently, then run what's left".
package scheduler

import (
	"fmt"
	"sync"

	"github.com/transitdata/gtfs-validator/internal/feed"
	"github.com/transitdata/gtfs-validator/internal/notice"
	"github.com/transitdata/gtfs-validator/internal/validator"
)

// Run executes every registered validator against f. numThreads bounds how
// many files' single-file validators run concurrently; cross-file
// validators always run sequentially after every file's pass completes,
// since spec.md §4.7 expects few of them, each already internally
// parallel if it needs to be.
//
// The returned container's notice sequence is independent of the order
// workers happened to finish in: each worker merges into the shared
// container only once, and Export sorts deterministically regardless of
// merge order.
func Run(f *feed.Feed, numThreads int) *notice.Container {
	global := notice.NewContainer()
	if numThreads <= 0 {
		numThreads = 1
	}

	files := validator.Files()
	sem := make(chan struct{}, numThreads)
	var wg sync.WaitGroup
	var mu sync.Mutex

	for _, file := range files {
		descriptors := validator.SingleFileValidators(file)
		wg.Add(1)
		sem <- struct{}{}
		go func(descriptors []validator.Descriptor) {
			defer wg.Done()
			defer func() { <-sem }()

			local := notice.NewContainer()
			for _, d := range descriptors {
				runSafely(d, f, local)
			}
			mu.Lock()
			global.Merge(local)
			mu.Unlock()
		}(descriptors)
	}
	wg.Wait()

	for _, d := range validator.CrossFileValidators() {
		runSafely(d, f, global)
	}

	return global
}

// runSafely invokes d.Run, converting any panic into a system error named
// after the validator, per spec.md §4.7 item 4: one broken rule must not
// stop the pipeline.
func runSafely(d validator.Descriptor, f *feed.Feed, notices *notice.Container) {
	defer func() {
		if r := recover(); r != nil {
			notices.AddSystemError(d.Name, fmt.Errorf("%v", r))
		}
	}()
	d.Run(f, notices)
}
