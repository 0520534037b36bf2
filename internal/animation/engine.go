package animation

import (
	"reflect"
	"time"
)

type state int

const (
	waiting state = iota
	running
)

type entry struct {
	driver    Driver
	delay     time.Duration
	duration  time.Duration
	startTime time.Time
	started   bool
	state     state
}

// Engine maintains the set of active animations and drives them forward
// on each runtime frame tick. It is not safe for concurrent use — it is
// invoked from the compositor's main thread only.
type Engine struct {
	entries []*entry
}

// NewEngine returns an Engine with no active animations.
func NewEngine() *Engine {
	return &Engine{}
}

// Len reports the number of active animations, mostly useful for tests.
func (e *Engine) Len() int {
	return len(e.entries)
}

// Start begins driving a new animation. Existing animations whose driver
// has the same concrete type as driver are asked IsConflict; Replace
// aborts and removes the old one, Ignore drops the candidate entirely,
// NoConflict keeps both.
//
// duration == 0 means "snap, no animation": Started, Step(1.0) and
// Completed run immediately and nothing is added to the active set.
func (e *Engine) Start(driver Driver, delay, duration time.Duration) {
	ignore := false
	kept := e.entries[:0]
	concreteType := reflect.TypeOf(driver)

	for _, existing := range e.entries {
		if reflect.TypeOf(existing.driver) != concreteType {
			kept = append(kept, existing)
			continue
		}
		switch driver.IsConflict(existing.driver) {
		case Replace:
			existing.driver.Aborted()
		case Ignore:
			ignore = true
			kept = append(kept, existing)
		default: // NoConflict
			kept = append(kept, existing)
		}
	}
	e.entries = kept

	if ignore {
		return
	}

	if duration <= 0 {
		driver.Started()
		driver.Step(1.0)
		driver.Completed()
		return
	}

	e.entries = append(e.entries, &entry{
		driver:   driver,
		delay:    delay,
		duration: duration,
		state:    waiting,
	})
}

// Frame advances every active animation by one tick, given the current
// time. Completed or aborted animations are retired.
func (e *Engine) Frame(now time.Time) {
	kept := e.entries[:0]
	for _, en := range e.entries {
		if en.startTime.IsZero() {
			en.startTime = now
		}

		elapsed := now.Sub(en.startTime)
		if elapsed < 0 {
			en.driver.Aborted()
			continue
		}
		if elapsed <= en.delay {
			kept = append(kept, en)
			continue
		}

		if en.state == waiting {
			en.driver.Started()
			en.state = running
		}

		percent := float64(elapsed-en.delay) / float64(en.duration)
		if percent >= 1.0 {
			en.driver.Step(1.0)
			en.driver.Completed()
			continue
		}

		en.driver.Step(percent)
		kept = append(kept, en)
	}
	e.entries = kept
}
