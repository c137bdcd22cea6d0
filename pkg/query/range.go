// Package query implements pagination negotiation for list endpoints.
// Clients request a window of results either with 'limit' and 'offset'
// parameters or with a "Range: items=<start>-<end>" header; the parameters
// win whenever either of them is present. The resulting Range renders the
// returned span as a Content-Range value, e.g. "items 0-24/67".
package query

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument marks mutator failures on out-of-domain values.
// pkg/response maps it to HTTP 400 at the boundary.
var ErrInvalidArgument = errors.New("invalid argument")

// Range holds the offset and limit requested by a single client call.
// Both fields are optional and unset is distinct from zero, so they are
// kept as pointers rather than sentinel values. A Range is owned by the
// request flow that created it and is never shared across goroutines.
type Range struct {
	offset *int64
	limit  *int
}

// New returns an empty Range with neither offset nor limit set.
func New() *Range { return &Range{} }

// NewWith returns a Range with both offset and limit set, or an error if
// either value is negative.
func NewWith(offset int64, limit int) (*Range, error) {
	r := New()
	if err := r.SetOffset(offset); err != nil {
		return nil, err
	}
	if err := r.SetLimit(limit); err != nil {
		return nil, err
	}
	return r, nil
}

// SetOffset sets the zero-based index of the first requested item.
// Negative values are rejected immediately, not at validation time.
func (r *Range) SetOffset(v int64) error {
	if v < 0 {
		return fmt.Errorf("%w: offset must be >= 0, got %d", ErrInvalidArgument, v)
	}
	r.offset = &v
	return nil
}

// SetLimit sets the maximum number of requested items.
// Negative values are rejected immediately; zero is allowed.
func (r *Range) SetLimit(v int) error {
	if v < 0 {
		return fmt.Errorf("%w: limit must be >= 0, got %d", ErrInvalidArgument, v)
	}
	r.limit = &v
	return nil
}

// SetLimitViaEnd derives the limit from an inclusive end index as
// end - offset + 1. The offset must already be set; an end before the
// offset produces a negative limit, which SetLimit rejects.
func (r *Range) SetLimitViaEnd(end int64) error {
	if !r.HasOffset() {
		return fmt.Errorf("%w: setting 'end' requires 'offset' to be set first", ErrInvalidArgument)
	}
	return r.SetLimit(int(end - r.Offset() + 1))
}

// Offset returns the offset, or zero when none is set.
func (r *Range) Offset() int64 {
	if r.offset != nil {
		return *r.offset
	}
	return 0
}

// Limit returns the limit, or zero when none is set.
func (r *Range) Limit() int {
	if r.limit != nil {
		return *r.limit
	}
	return 0
}

// End returns the inclusive index of the last requested item,
// offset + limit - 1, or just the offset when no limit is set.
func (r *Range) End() int64 {
	if r.HasLimit() {
		return r.Offset() + int64(r.Limit()) - 1
	}
	return r.Offset()
}

// Start is a synonym for Offset.
func (r *Range) Start() int64 { return r.Offset() }

// SetStart is a synonym for SetOffset.
func (r *Range) SetStart(v int64) error { return r.SetOffset(v) }

// HasOffset reports whether an offset has been set.
func (r *Range) HasOffset() bool { return r.offset != nil }

// HasLimit reports whether a limit has been set.
func (r *Range) HasLimit() bool { return r.limit != nil }

// Initialized reports whether both offset and limit are set.
func (r *Range) Initialized() bool { return r.HasOffset() && r.HasLimit() }

// Valid reports whether the Range is initialized with non-negative values.
// The sign checks are redundant with the mutators but re-run here on purpose.
func (r *Range) Valid() bool {
	return r.Initialized() && r.Offset() >= 0 && r.Limit() >= 0
}

// String renders the requested span as "items <start>-<end>" without any
// clamping against an item count.
func (r *Range) String() string { return r.assemble(nil) }

// ContentRange renders "items <start>-<end>/<max>" with the end clamped to
// the last available index when it overshoots maxItems. A zero maxItems
// clamps the end to 0 rather than -1 so the degenerate empty result stays
// a sane span. No validation is performed; callers are expected to pass a
// valid Range and an accurate count.
func (r *Range) ContentRange(maxItems int64) string {
	return fmt.Sprintf("%s/%d", r.assemble(&maxItems), maxItems)
}

func (r *Range) assemble(max *int64) string {
	end := r.End()
	if max != nil && end > *max {
		if *max > 0 {
			end = *max - 1
		} else {
			end = *max
		}
	}
	return fmt.Sprintf("items %d-%d", r.Offset(), end)
}
