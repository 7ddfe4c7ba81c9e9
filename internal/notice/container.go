package notice

import (
	"sort"
	"sync"

	"github.com/google/uuid"
)

// DefaultQuota is the per-code cap on stored notices. Overflow past the
// quota still increments the true count but the occurrence itself is
// dropped, per spec: never rebalance, never evict.
const DefaultQuota = 100000

type codeBucket struct {
	severity Severity
	stored   []Notice
	total    int64
}

// Container is the thread-safe aggregation point for validation notices and
// system errors produced anywhere in the pipeline. Workers typically own a
// local Container and Merge it into a shared one at job end, so the hot
// append path only takes the worker's own, uncontended mutex and the shared
// structure is not contended until the merge.
type Container struct {
	mu     sync.Mutex
	quota  int
	runID  string
	byCode map[string]*codeBucket
	errs   []SystemError
}

// NewContainer creates an empty Container with the default per-code quota.
func NewContainer() *Container {
	return NewContainerWithQuota(DefaultQuota)
}

// NewContainerWithQuota creates an empty Container with a custom per-code
// quota, mainly useful for tests that want to exercise overflow behavior
// without allocating 100,000 notices.
func NewContainerWithQuota(quota int) *Container {
	return &Container{
		quota:  quota,
		runID:  uuid.NewString(),
		byCode: make(map[string]*codeBucket),
	}
}

// AddValidationNotice records n, subject to the per-code quota.
func (c *Container) AddValidationNotice(n Notice) {
	c.mu.Lock()
	defer c.mu.Unlock()
	b := c.byCode[n.Code]
	if b == nil {
		b = &codeBucket{severity: n.Severity}
		c.byCode[n.Code] = b
	}
	b.total++
	if len(b.stored) < c.quota {
		b.stored = append(b.stored, n)
	}
}

// AddSystemError records a validator panic/exception as a structured error,
// tagged with this container's run identifier so separate reports for the
// same run can be correlated by operators.
func (c *Container) AddSystemError(validator string, err error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.errs = append(c.errs, SystemError{
		Validator: validator,
		Message:   err.Error(),
		RunID:     c.runID,
	})
}

// Merge folds other into c. Merge is associative and commutative up to the
// final sort performed at export time: the relative order of notices that
// originated in the same source container is preserved, but two containers
// merged in either order produce the same grouped, sorted report.
func (c *Container) Merge(other *Container) {
	if other == nil {
		return
	}
	other.mu.Lock()
	snapshotCodes := make(map[string]*codeBucket, len(other.byCode))
	for code, b := range other.byCode {
		cp := &codeBucket{severity: b.severity, total: b.total, stored: append([]Notice(nil), b.stored...)}
		snapshotCodes[code] = cp
	}
	snapshotErrs := append([]SystemError(nil), other.errs...)
	other.mu.Unlock()

	c.mu.Lock()
	defer c.mu.Unlock()
	for code, ob := range snapshotCodes {
		b := c.byCode[code]
		if b == nil {
			b = &codeBucket{severity: ob.severity}
			c.byCode[code] = b
		}
		b.total += ob.total
		for _, n := range ob.stored {
			if len(b.stored) >= c.quota {
				break
			}
			b.stored = append(b.stored, n)
		}
	}
	c.errs = append(c.errs, snapshotErrs...)
}

// CountBySeverity returns the number of distinct stored notices (not the
// true totals) broken down by severity.
func (c *Container) CountBySeverity() map[Severity]int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := map[Severity]int64{}
	for _, b := range c.byCode {
		out[b.severity] += int64(len(b.stored))
	}
	return out
}

// HasError reports whether any ERROR-severity notice was recorded, which is
// the exit-status trigger per spec.
func (c *Container) HasError() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, b := range c.byCode {
		if b.severity == SeverityError && b.total > 0 {
			return true
		}
	}
	return false
}

// Group is one code's worth of aggregated notices, as exported to the
// structured report.
type Group struct {
	Code          string   `json:"code"`
	Severity      Severity `json:"severity"`
	TotalNotices  int64    `json:"totalNotices"`
	SampleNotices []Notice `json:"sampleNotices"`
}

// Export returns a copy of the container's notices as a deterministically
// ordered slice of Groups; the container itself is left unchanged. The tie-break within and across groups is (code, file, row,
// field) per the container's documented ordering decision.
func (c *Container) Export() []Group {
	c.mu.Lock()
	defer c.mu.Unlock()
	groups := make([]Group, 0, len(c.byCode))
	for code, b := range c.byCode {
		samples := append([]Notice(nil), b.stored...)
		sort.SliceStable(samples, func(i, j int) bool {
			return lessNotice(samples[i], samples[j])
		})
		groups = append(groups, Group{
			Code:          code,
			Severity:      b.severity,
			TotalNotices:  b.total,
			SampleNotices: samples,
		})
	}
	sort.Slice(groups, func(i, j int) bool { return groups[i].Code < groups[j].Code })
	return groups
}

// SystemErrors returns a copy of the container's recorded system errors,
// sorted by validator name for determinism; the container is left unchanged.
func (c *Container) SystemErrors() []SystemError {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := append([]SystemError(nil), c.errs...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Validator < out[j].Validator })
	return out
}

func lessNotice(a, b Notice) bool {
	if a.Code != b.Code {
		return a.Code < b.Code
	}
	if a.File != b.File {
		return a.File < b.File
	}
	if a.Row != b.Row {
		return a.Row < b.Row
	}
	return a.Field < b.Field
}
