package pulse

import "testing"

func TestMergeNonCollision(t *testing.T) {
	g := New()
	left := NewInput(g, 1)
	right := NewInput(g, 2)
	merged := Merge(left.Stream(), right.Stream())

	if merged.Value() != 1 {
		t.Errorf("expected left's initial value 1, got %d", merged.Value())
	}

	var got []int
	merged.OnUpdate(func(v int) { got = append(got, v) })

	left.Emit(10)
	right.Emit(20)
	left.Emit(30)

	want := []int{10, 20, 30}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("update %d: expected %d, got %d", i, want[i], got[i])
		}
	}
}

func TestMergeCollisionDeliversBoth(t *testing.T) {
	g := New()
	in := NewInput(g, 0)
	a := Map(func(n int) int { return n + 1 }, in.Stream())
	b := Map(func(n int) int { return n * 10 }, in.Stream())
	merged := Merge(a, b)

	var got []int
	merged.OnUpdate(func(v int) { got = append(got, v) })

	in.Emit(3)

	// Both colliding updates are delivered, left first.
	if len(got) != 2 || got[0] != 4 || got[1] != 30 {
		t.Fatalf("expected deliveries [4 30], got %v", got)
	}
}

func TestMergeCollisionFromBatchedInputs(t *testing.T) {
	g := New()
	left := NewInput(g, 0)
	right := NewInput(g, 0)
	merged := Merge(left.Stream(), right.Stream())

	var got []int
	merged.OnUpdate(func(v int) { got = append(got, v) })

	g.Batch(func() {
		left.Emit(1)
		right.Emit(2)
	})

	if len(got) != 2 || got[0] != 1 || got[1] != 2 {
		t.Fatalf("expected deliveries [1 2], got %v", got)
	}
}

func TestFoldObservesBothCollisionDeliveries(t *testing.T) {
	g := New()
	in := NewInput(g, 0)
	a := Map(func(n int) int { return n + 1 }, in.Stream())
	b := Map(func(n int) int { return n * 10 }, in.Stream())
	total := Fold(func(v, acc int) int { return acc + v }, 0, Merge(a, b))

	in.Emit(3)
	if total.Value() != 34 {
		t.Errorf("expected folded value 34, got %d", total.Value())
	}
}

func TestCoincideReportsSimultaneity(t *testing.T) {
	g := New()
	in := NewInput(g, 0)
	a := Map(func(n int) int { return n + 1 }, in.Stream())
	b := Map(func(n int) int { return n * 10 }, in.Stream())
	both := Coincide(a, b)

	init := both.Value()
	if init.LeftUpdated || init.RightUpdated {
		t.Error("initial coincidence must not report updates")
	}
	if init.Left != 1 || init.Right != 0 {
		t.Errorf("expected initial values (1, 0), got (%d, %d)", init.Left, init.Right)
	}

	var got []Coincidence[int, int]
	both.OnUpdate(func(c Coincidence[int, int]) { got = append(got, c) })

	in.Emit(3)
	if len(got) != 1 {
		t.Fatalf("expected one event per collision, got %d", len(got))
	}
	if !got[0].LeftUpdated || !got[0].RightUpdated {
		t.Errorf("expected both sides updated, got %+v", got[0])
	}
	if got[0].Left != 4 || got[0].Right != 30 {
		t.Errorf("expected values (4, 30), got (%d, %d)", got[0].Left, got[0].Right)
	}
}

func TestCoincideSingleSide(t *testing.T) {
	g := New()
	left := NewInput(g, 0)
	right := NewInput(g, 0)
	both := Coincide(left.Stream(), right.Stream())

	var got []Coincidence[int, int]
	both.OnUpdate(func(c Coincidence[int, int]) { got = append(got, c) })

	right.Emit(5)
	if len(got) != 1 {
		t.Fatalf("expected one event, got %d", len(got))
	}
	if got[0].LeftUpdated || !got[0].RightUpdated {
		t.Errorf("expected only the right side updated, got %+v", got[0])
	}
}
