// Package sequence provides an append-only, step-tracked sequence of data
// points over a flat arena. It is the history-preserving counterpart to
// pool.DoubleBuffer: committed points are never overwritten, never reordered,
// and never shrink.
//
// Writes are staged by AddPoint/AddPoints and become visible to readers only
// at the next Update, which advances the committed prefix and the step
// counter. Memory is bounded and predictable: the sequence never grows its
// arena, and a full arena surfaces as a capacity error rather than a
// reallocation.
package sequence

import (
	"github.com/quiverlabs/quiver/pkg/errors"
	"github.com/quiverlabs/quiver/pkg/models"
	"github.com/quiverlabs/quiver/pkg/pool"
)

// Sequence accumulates data points in arrival order on top of a
// pool.FlatPool arena.
//
// The committed prefix [0, committed) is the externally visible history; the
// staged region [committed, committed+staged) holds writes since the last
// Update. Because the sequence never releases ranges, every acquisition is a
// bump allocation starting exactly at the end of the staged region, keeping
// staging and the arena watermark in lock-step. Not safe for concurrent use.
type Sequence struct {
	arena     *pool.FlatPool[models.DataPoint]
	committed int
	staged    int
	step      int
}

// New constructs a sequence over an arena of bufferSize points with a
// free-range list bounded by rangeCapacity.
func New(bufferSize, rangeCapacity int) *Sequence {
	return &Sequence{
		arena: pool.NewFlatPool[models.DataPoint](bufferSize, rangeCapacity),
	}
}

// AddPoint stages a single point. It is not visible via Current until the
// next Update. Returns a capacity error when the arena is full; the sequence
// is unchanged on failure.
func (s *Sequence) AddPoint(p models.DataPoint) error {
	r, err := s.arena.Acquire(1)
	if err != nil {
		return errors.Wrap(err, errors.ErrorTypeCapacity, "cannot stage point")
	}
	s.arena.Set(r.Begin, p)
	s.staged += r.Len()
	return nil
}

// AddPoints stages a batch of points in order. All points are staged or, on
// a capacity error, none are.
func (s *Sequence) AddPoints(points []models.DataPoint) error {
	if len(points) == 0 {
		return nil
	}
	r, err := s.arena.Acquire(len(points))
	if err != nil {
		return errors.Wrap(err, errors.ErrorTypeCapacity, "cannot stage points")
	}
	s.arena.SetRange(r.Begin, points)
	s.staged += r.Len()
	return nil
}

// Update commits all staged writes: the committed prefix extends over them
// contiguously and the step counter advances by one. An Update with nothing
// staged still counts as a step.
func (s *Sequence) Update() {
	s.committed += s.staged
	s.staged = 0
	s.step++
}

// Current returns the entire committed history in original append order. The
// view aliases arena storage and is invalidated by the next Clear; staged
// writes are never part of it.
func (s *Sequence) Current() []models.DataPoint {
	return s.arena.GetSlice(0, s.committed)
}

// Step returns the number of completed Update calls.
func (s *Sequence) Step() int {
	return s.step
}

// Len returns the committed history length.
func (s *Sequence) Len() int {
	return s.committed
}

// IsEmpty reports whether no points have been committed.
func (s *Sequence) IsEmpty() bool {
	return s.committed == 0
}

// PoolAvailable returns the number of free ranges in the backing arena.
// Under normal append-only use it stays at zero: nothing is ever released.
func (s *Sequence) PoolAvailable() int {
	return s.arena.AvailableCount()
}

// Watermark returns the arena's high-water mark. It always equals
// Len() plus the number of staged points.
func (s *Sequence) Watermark() int {
	return s.arena.Watermark()
}

// Clear resets the sequence to its freshly constructed state, including the
// arena. All previously returned views are invalidated.
func (s *Sequence) Clear() {
	s.arena.Reset()
	s.committed = 0
	s.staged = 0
	s.step = 0
}
