package seeker

import (
	"context"
	"strings"
	"sync"

	"github.com/kbukum/obtkit/errors"
	"github.com/kbukum/obtkit/logger"
	"github.com/kbukum/obtkit/util"
)

// SeekFunc runs the real search for criterion.
type SeekFunc[T any] func(ctx context.Context, criterion string) ([]T, error)

// MatchFunc reports whether item matches criterion. It is used to filter
// cached results.
type MatchFunc[T any] func(item T, criterion string) bool

// Source tells where the items returned by Search came from.
type Source int

const (
	// SourceNone means nothing was searched: the criterion was blank, or it
	// narrows the last search and no local search was requested.
	SourceNone Source = iota
	// SourceSeeker means the SeekFunc ran.
	SourceSeeker
	// SourceCache means the last results were filtered locally.
	SourceCache
)

// String returns the source name.
func (s Source) String() string {
	switch s {
	case SourceSeeker:
		return "seeker"
	case SourceCache:
		return "cache"
	default:
		return "none"
	}
}

// Incremental caches the last criterion that reached its SeekFunc together
// with the results, and reuses them for narrower criteria.
// It is safe for concurrent use; searches are serialized.
type Incremental[T any] struct {
	mu    sync.Mutex
	seek  SeekFunc[T]
	match MatchFunc[T]
	log   *logger.Logger

	lastCriterion string
	lastResult    []T
}

// Option configures an Incremental.
type Option[T any] func(*Incremental[T])

// WithInitialCriterion sets the criterion treated as already searched.
// Its results start empty.
func WithInitialCriterion[T any](criterion string) Option[T] {
	return func(s *Incremental[T]) { s.lastCriterion = criterion }
}

// WithLogger sets the logger used for debug output.
func WithLogger[T any](l *logger.Logger) Option[T] {
	return func(s *Incremental[T]) { s.log = l }
}

// New creates an Incremental over seek. match filters cached results; when
// it is nil, local searches fall back to seek.
func New[T any](seek SeekFunc[T], match MatchFunc[T], opts ...Option[T]) *Incremental[T] {
	s := &Incremental[T]{seek: seek, match: match}
	for _, opt := range opts {
		opt(s)
	}
	if s.log == nil {
		s.log = logger.Get("seeker")
	}
	return s
}

// LastCriterion returns the criterion of the last search that reached the
// SeekFunc.
func (s *Incremental[T]) LastCriterion() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastCriterion
}

// Reset forgets the last criterion and results.
func (s *Incremental[T]) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastCriterion = ""
	s.lastResult = nil
}

// Search looks up criterion. A blank criterion searches nothing. The SeekFunc
// runs when there is no usable last criterion or criterion does not contain
// it. Otherwise the last results are filtered when local is true, and nothing
// is searched when it is false.
//
// A failed SeekFunc leaves the cache untouched.
func (s *Incremental[T]) Search(ctx context.Context, criterion string, local bool) ([]T, Source, error) {
	if util.IsBlank(criterion) {
		return nil, SourceNone, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if util.IsBlank(s.lastCriterion) || !strings.Contains(criterion, s.lastCriterion) {
		return s.useSeeker(ctx, criterion)
	}
	if !local {
		return nil, SourceNone, nil
	}
	if s.match == nil {
		return s.useSeeker(ctx, criterion)
	}

	filtered := make([]T, 0, len(s.lastResult))
	for _, item := range s.lastResult {
		if s.match(item, criterion) {
			filtered = append(filtered, item)
		}
	}
	s.log.Debug("served from cache", logger.Fields(
		logger.FieldOperation, "search",
		"criterion", criterion,
		"cached", len(s.lastResult),
		"matched", len(filtered),
	))
	return filtered, SourceCache, nil
}

func (s *Incremental[T]) useSeeker(ctx context.Context, criterion string) ([]T, Source, error) {
	items, err := s.seek(ctx, criterion)
	if err != nil {
		return nil, SourceSeeker, errors.Wrapf(err, "search %q failed", criterion)
	}
	s.lastCriterion = criterion
	s.lastResult = items
	return items, SourceSeeker, nil
}
