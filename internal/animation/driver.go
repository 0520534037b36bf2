package animation

// Conflict describes how a newly-requested animation relates to an
// existing one of the same concrete driver type.
type Conflict int

const (
	// NoConflict means both animations proceed independently.
	NoConflict Conflict = iota
	// Replace aborts the existing animation and lets the new one start.
	Replace
	// Ignore discards the new animation; the existing one keeps running.
	Ignore
)

// Driver is the capability every animation must implement. A capability
// abstraction is used rather than a closed tagged-variant enum because
// the driver set is explicitly open.
type Driver interface {
	// Step is called with percent clamped to [0,1] on every frame once
	// the delay has elapsed.
	Step(percent float64)
	// Started runs once, on the first frame past the delay.
	Started()
	// Aborted runs if the animation is replaced or the clock moves
	// backwards.
	Aborted()
	// Completed runs once percent reaches 1.0, after the final Step.
	Completed()
	// IsConflict classifies how this driver relates to an existing
	// driver of the same concrete type. Implementations that never
	// conflict (most drivers) can return NoConflict unconditionally.
	IsConflict(other Driver) Conflict
}
