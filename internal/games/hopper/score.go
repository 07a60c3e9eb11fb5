package hopper

import "sync"

// ScoreFunc receives score change notifications with the new current and
// high values. Callbacks run outside the engine lock, so they may query
// the engine freely; like RenderFunc they must not invoke lifecycle
// commands synchronously.
type ScoreFunc func(current, high int)

type subscriber struct {
	id int
	fn ScoreFunc
}

// ScoreTracker keeps the session score and the process-lifetime high score.
// Current is monotone non-decreasing within a session and only drops to
// zero on an explicit reset; high never decreases.
type ScoreTracker struct {
	mu      sync.Mutex
	current int
	high    int
	nextID  int
	subs    []subscriber
}

// NewScoreTracker creates an empty tracker.
func NewScoreTracker() *ScoreTracker {
	return &ScoreTracker{}
}

// Current returns the session score.
func (t *ScoreTracker) Current() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.current
}

// High returns the highest score seen this process.
func (t *ScoreTracker) High() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.high
}

// Values returns current and high together.
func (t *ScoreTracker) Values() (current, high int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.current, t.high
}

// Raise applies a candidate score. The score only moves if the candidate
// exceeds the current value; subscribers are notified only on change.
// Negative candidates are clamped to zero, never an error.
func (t *ScoreTracker) Raise(candidate int) {
	if fire := t.raise(candidate); fire != nil {
		fire()
	}
}

// raise applies the candidate and returns the pending notification, or nil
// when nothing changed. Callers holding an outer lock invoke the closure
// only after releasing it, so subscribers can call back into the owner.
func (t *ScoreTracker) raise(candidate int) func() {
	if candidate < 0 {
		candidate = 0
	}

	t.mu.Lock()
	if candidate <= t.current {
		t.mu.Unlock()
		return nil
	}
	t.current = candidate
	if t.current > t.high {
		t.high = t.current
	}
	cur, high := t.current, t.high
	subs := make([]subscriber, len(t.subs))
	copy(subs, t.subs)
	t.mu.Unlock()

	// Notify on a snapshot, in registration order, outside the tracker
	// lock so a subscriber cannot deadlock it.
	return func() {
		for _, s := range subs {
			s.fn(cur, high)
		}
	}
}

// Reset drops the session score to zero. The high score is kept.
func (t *ScoreTracker) Reset() {
	t.mu.Lock()
	t.current = 0
	t.mu.Unlock()
}

// SeedHigh raises the high score floor, used by hosts that persist scores
// across processes. It never lowers the high score.
func (t *ScoreTracker) SeedHigh(high int) {
	t.mu.Lock()
	if high > t.high {
		t.high = high
	}
	t.mu.Unlock()
}

// Subscribe registers a score change observer and returns its cancel
// function. Observers must not subscribe or unsubscribe from inside their
// own callback.
func (t *ScoreTracker) Subscribe(fn ScoreFunc) (cancel func()) {
	t.mu.Lock()
	id := t.nextID
	t.nextID++
	t.subs = append(t.subs, subscriber{id: id, fn: fn})
	t.mu.Unlock()

	return func() {
		t.mu.Lock()
		defer t.mu.Unlock()
		for i, s := range t.subs {
			if s.id == id {
				t.subs = append(t.subs[:i], t.subs[i+1:]...)
				return
			}
		}
	}
}
