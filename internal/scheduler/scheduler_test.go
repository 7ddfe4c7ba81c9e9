package scheduler

import (
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/transitdata/gtfs-validator/internal/feed"
	"github.com/transitdata/gtfs-validator/internal/notice"
	"github.com/transitdata/gtfs-validator/internal/validator"
)

func newFeedWithFiles(names ...string) *feed.Feed {
	f := feed.New()
	for _, n := range names {
		f.Put(feed.NewTable(n))
	}
	return f
}

func TestRun_SingleFileValidatorsRunForTheirFile(t *testing.T) {
	validator.Reset()
	defer validator.Reset()

	var stopsHits, routesHits atomic.Int32
	validator.Register(validator.Descriptor{Name: "stops_check", Kind: validator.SingleFile, File: "stops.txt",
		Run: func(f *feed.Feed, n *notice.Container) { stopsHits.Add(1) }})
	validator.Register(validator.Descriptor{Name: "routes_check", Kind: validator.SingleFile, File: "routes.txt",
		Run: func(f *feed.Feed, n *notice.Container) { routesHits.Add(1) }})

	f := newFeedWithFiles("stops.txt", "routes.txt")
	Run(f, 4)

	assert.EqualValues(t, 1, stopsHits.Load())
	assert.EqualValues(t, 1, routesHits.Load())
}

func TestRun_CrossFileValidatorsRunAfterSingleFile(t *testing.T) {
	validator.Reset()
	defer validator.Reset()

	var order []string
	validator.Register(validator.Descriptor{Name: "single", Kind: validator.SingleFile, File: "stops.txt",
		Run: func(f *feed.Feed, n *notice.Container) { order = append(order, "single") }})
	validator.Register(validator.Descriptor{Name: "cross", Kind: validator.CrossFile,
		Run: func(f *feed.Feed, n *notice.Container) { order = append(order, "cross") }})

	Run(newFeedWithFiles("stops.txt"), 1)
	assert.Equal(t, []string{"single", "cross"}, order)
}

func TestRun_PanicBecomesSystemError(t *testing.T) {
	validator.Reset()
	defer validator.Reset()

	validator.Register(validator.Descriptor{Name: "broken", Kind: validator.CrossFile,
		Run: func(f *feed.Feed, n *notice.Container) { panic("boom") }})

	result := Run(newFeedWithFiles(), 1)
	errs := result.SystemErrors()
	assert.Len(t, errs, 1)
	assert.Equal(t, "broken", errs[0].Validator)
	assert.Contains(t, errs[0].Message, "boom")
}

func TestRun_OneBrokenValidatorDoesNotStopOthers(t *testing.T) {
	validator.Reset()
	defer validator.Reset()

	var ran atomic.Bool
	validator.Register(validator.Descriptor{Name: "broken", Kind: validator.CrossFile,
		Run: func(f *feed.Feed, n *notice.Container) { panic("boom") }})
	validator.Register(validator.Descriptor{Name: "healthy", Kind: validator.CrossFile,
		Run: func(f *feed.Feed, n *notice.Container) { ran.Store(true) }})

	Run(newFeedWithFiles(), 1)
	assert.True(t, ran.Load())
}
