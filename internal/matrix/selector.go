package matrix

import (
	"fmt"
	"math"
)

// open marks an omitted Span bound. It sits far outside any usable axis
// extent, so it can never collide with a real coordinate.
const open = math.MinInt

// Selector is one axis's index expression: a scalar Index, an explicit Set
// of coordinates, or a Span over the axis. The interface is sealed; the
// three kinds below are the only implementations.
type Selector interface {
	selector()
}

// Index selects a single coordinate on an axis, collapsing that axis to
// extent 1.
type Index int

func (Index) selector() {}

// Set selects an explicit ordered list of coordinates. Elements must be
// integers (int, int32 or int64); anything else fails with
// ErrInvalidSetElement when the selection is resolved. Duplicates and
// arbitrary order are allowed.
type Set []any

func (Set) selector() {}

// Pick builds a Set from integer coordinates.
func Pick(ixs ...int) Set {
	s := make(Set, len(ixs))
	for k, ix := range ixs {
		s[k] = ix
	}
	return s
}

// Span selects a strided half-open coordinate range, with the clamping
// rules of a Python slice: negative bounds count from the end of the axis,
// out-of-range bounds are clamped, a negative step walks backwards, and
// omitted bounds default to the relevant end of the axis.
type Span struct {
	start, stop, step int
}

func (Span) selector() {}

// All spans the entire axis.
func All() Span {
	return Span{start: open, stop: open, step: open}
}

// Range spans [start, stop) with step 1.
func Range(start, stop int) Span {
	return Span{start: start, stop: stop, step: open}
}

// Stride spans [start, stop) with an explicit step.
func Stride(start, stop, step int) Span {
	return Span{start: start, stop: stop, step: step}
}

// To spans [0, stop).
func To(stop int) Span {
	return Span{start: open, stop: stop, step: open}
}

// From spans [start, end of axis).
func From(start int) Span {
	return Span{start: start, stop: open, step: open}
}

// By returns the span with an explicit step. All().By(-1) walks the whole
// axis backwards.
func (s Span) By(step int) Span {
	s.step = step
	return s
}

// resolve clamps the span against an axis extent and returns the first
// coordinate, the stride, and the number of coordinates selected. The
// length is always non-negative and every produced coordinate lies inside
// [0, extent).
func (s Span) resolve(extent int) (start, step, length int, err error) {
	step = s.step
	if step == open {
		step = 1
	}
	if step == 0 {
		return 0, 0, 0, fmt.Errorf("span step must not be zero: %w", ErrInvalidSelectorType)
	}

	lower, upper := 0, extent
	if step < 0 {
		lower, upper = -1, extent-1
	}

	start = s.start
	switch {
	case start == open:
		if step < 0 {
			start = upper
		} else {
			start = lower
		}
	case start < 0:
		start += extent
		if start < lower {
			start = lower
		}
	case start > upper:
		start = upper
	}

	stop := s.stop
	switch {
	case stop == open:
		if step < 0 {
			stop = lower
		} else {
			stop = upper
		}
	case stop < 0:
		stop += extent
		if stop < lower {
			stop = lower
		}
	case stop > upper:
		stop = upper
	}

	if step < 0 {
		if stop < start {
			length = (start-stop-1)/(-step) + 1
		}
	} else {
		if start < stop {
			length = (stop-start-1)/step + 1
		}
	}
	return start, step, length, nil
}

// String renders the span in slice notation, mostly for error messages.
func (s Span) String() string {
	part := func(v int) string {
		if v == open {
			return ""
		}
		return fmt.Sprintf("%d", v)
	}
	if s.step == open {
		return fmt.Sprintf("[%s:%s]", part(s.start), part(s.stop))
	}
	return fmt.Sprintf("[%s:%s:%s]", part(s.start), part(s.stop), part(s.step))
}

// Canonicalize completes a raw selector list to a full two-axis pair. A
// single selector addresses axis i and the j axis receives an implicit
// All(); two selectors are taken as given. Zero selectors fail with
// ErrInvalidSelectorLength, more than two with ErrTooManyAxes, and a nil
// selector with ErrInvalidSelectorType.
func Canonicalize(sel ...Selector) ([2]Selector, error) {
	var pair [2]Selector
	switch len(sel) {
	case 1:
		pair[0], pair[1] = sel[0], All()
	case 2:
		pair[0], pair[1] = sel[0], sel[1]
	case 0:
		return pair, fmt.Errorf("got no selectors: %w", ErrInvalidSelectorLength)
	default:
		return pair, fmt.Errorf("got %d selectors: %w", len(sel), ErrTooManyAxes)
	}
	for _, s := range pair {
		if s == nil {
			return pair, fmt.Errorf("nil selector: %w", ErrInvalidSelectorType)
		}
	}
	return pair, nil
}

// asIndex extracts an integer from a dynamically typed Set element.
func asIndex(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int32:
		return int(n), true
	case int64:
		return int(n), true
	}
	return 0, false
}
