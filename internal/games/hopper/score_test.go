package hopper

import "testing"

func TestScoreTrackerMonotone(t *testing.T) {
	tr := NewScoreTracker()

	tr.Raise(10)
	tr.Raise(5) // Lower candidate is ignored
	if got := tr.Current(); got != 10 {
		t.Errorf("current = %d, want 10", got)
	}

	tr.Raise(-3) // Negative clamps to zero, still below current
	if got := tr.Current(); got != 10 {
		t.Errorf("current after negative candidate = %d, want 10", got)
	}

	tr.Raise(25)
	cur, high := tr.Values()
	if cur != 25 || high != 25 {
		t.Errorf("values = (%d, %d), want (25, 25)", cur, high)
	}
}

func TestScoreTrackerResetKeepsHigh(t *testing.T) {
	tr := NewScoreTracker()
	tr.Raise(40)
	tr.Reset()

	cur, high := tr.Values()
	if cur != 0 {
		t.Errorf("current after reset = %d, want 0", cur)
	}
	if high != 40 {
		t.Errorf("high after reset = %d, want 40", high)
	}

	// A new session below the old high must not lower it.
	tr.Raise(12)
	if got := tr.High(); got != 40 {
		t.Errorf("high = %d, want 40", got)
	}
}

func TestScoreTrackerSeedHigh(t *testing.T) {
	tr := NewScoreTracker()
	tr.SeedHigh(100)
	if got := tr.High(); got != 100 {
		t.Errorf("high = %d, want 100", got)
	}
	tr.SeedHigh(50) // Never lowers
	if got := tr.High(); got != 100 {
		t.Errorf("high after lower seed = %d, want 100", got)
	}
}

func TestScoreTrackerNotifiesOnChangeOnly(t *testing.T) {
	tr := NewScoreTracker()

	var calls [][2]int
	cancel := tr.Subscribe(func(cur, high int) {
		calls = append(calls, [2]int{cur, high})
	})

	tr.Raise(5)
	tr.Raise(5) // No change, no notification
	tr.Raise(9)

	want := [][2]int{{5, 5}, {9, 9}}
	if len(calls) != len(want) {
		t.Fatalf("notifications = %v, want %v", calls, want)
	}
	for i := range want {
		if calls[i] != want[i] {
			t.Errorf("notification %d = %v, want %v", i, calls[i], want[i])
		}
	}

	cancel()
	tr.Raise(20)
	if len(calls) != len(want) {
		t.Error("cancelled subscriber still notified")
	}
}

func TestScoreTrackerNotifiesInRegistrationOrder(t *testing.T) {
	tr := NewScoreTracker()

	var order []int
	tr.Subscribe(func(int, int) { order = append(order, 1) })
	tr.Subscribe(func(int, int) { order = append(order, 2) })
	tr.Subscribe(func(int, int) { order = append(order, 3) })

	tr.Raise(1)
	if len(order) != 3 || order[0] != 1 || order[1] != 2 || order[2] != 3 {
		t.Errorf("notification order = %v, want [1 2 3]", order)
	}
}
