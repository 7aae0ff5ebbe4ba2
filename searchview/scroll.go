package searchview

// ScrollTracker remembers the last committed scroll position and filters
// out the spurious jump-to-top the host scroll widget emits while the
// content is being swapped under it: a large backwards leap landing near
// the very top is discarded, everything else commits.
type ScrollTracker struct {
	committed float64
}

const (
	spuriousJumpDelta = 200.0
	spuriousJumpLand  = 15.0
)

// Commit offers a new scroll position. It returns the position to apply,
// which is the previous one when v is classified as spurious.
func (t *ScrollTracker) Commit(v float64) float64 {
	if t.committed-v > spuriousJumpDelta && v < spuriousJumpLand {
		return t.committed
	}
	t.committed = v
	return v
}

// Value returns the last committed position.
func (t *ScrollTracker) Value() float64 { return t.committed }
