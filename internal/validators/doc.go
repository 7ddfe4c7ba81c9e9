// Package validators holds the built-in, representative set of single-file
// and cross-file rules the scheduler (internal/scheduler) runs over a
// loaded feed. Each rule registers itself with internal/validator at
// init() time, per spec.md §9's explicit-registration redesign flag.
//
// Grounded on the original tool's notice catalog
// (_examples/original_source/core/.../notice/*.java) and the field
// semantics modeled in jamespfennell/gtfs's static.go/enums.go.
package validators
