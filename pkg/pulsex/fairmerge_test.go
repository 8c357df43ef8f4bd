package pulsex

import (
	"testing"

	"github.com/vango-dev/pulse/pkg/pulse"
	"github.com/vango-dev/pulse/pkg/pulsetest"
)

func TestFairMergeCollision(t *testing.T) {
	g := pulse.New()
	in := pulse.NewInput(g, 0)
	a := pulse.Map(func(n int) int { return n + 1 }, in.Stream())
	b := pulse.Map(func(n int) int { return n * 10 }, in.Stream())

	merged := FairMerge(func(l, r int) int { return l*1000 + r }, a, b)
	rec := pulsetest.Record(merged)

	in.Emit(3)

	got := rec.Values()
	if len(got) != 1 {
		t.Fatalf("collision must emit exactly one event, got %v", got)
	}
	if got[0] != 4030 {
		t.Errorf("expected resolve(4, 30) = 4030, got %d", got[0])
	}
}

func TestFairMergeNonCollision(t *testing.T) {
	g := pulse.New()
	left := pulse.NewInput(g, 1)
	right := pulse.NewInput(g, 2)

	resolveCalls := 0
	merged := FairMerge(func(l, r int) int {
		resolveCalls++
		return l
	}, left.Stream(), right.Stream())
	rec := pulsetest.Record(merged)

	left.Emit(10)
	right.Emit(20)

	got := rec.Values()
	if len(got) != 2 || got[0] != 10 || got[1] != 20 {
		t.Errorf("expected raw values [10 20], got %v", got)
	}
	if resolveCalls != 0 {
		t.Errorf("resolve invoked %d times for non-colliding rounds", resolveCalls)
	}
}

func TestFairMergeInitialValue(t *testing.T) {
	g := pulse.New()
	left := pulse.NewInput(g, 7)
	right := pulse.NewInput(g, 9)

	merged := FairMerge(func(l, r int) int { return l }, left.Stream(), right.Stream())
	if merged.Value() != 7 {
		t.Errorf("expected left's initial value 7, got %d", merged.Value())
	}
}

func TestFairMergeIdentityMatchesPlainMerge(t *testing.T) {
	g := pulse.New()
	left := pulse.NewInput(g, 0)
	right := pulse.NewInput(g, 0)

	fair := FairMerge(func(l, r int) int { return l }, left.Stream(), right.Stream())
	plain := pulse.Merge(left.Stream(), right.Stream())

	fairRec := pulsetest.Record(fair)
	plainRec := pulsetest.Record(plain)

	left.Emit(1)
	right.Emit(2)
	left.Emit(3)
	right.Emit(4)

	fairGot, plainGot := fairRec.Values(), plainRec.Values()
	if len(fairGot) != len(plainGot) {
		t.Fatalf("expected same event count, got %v vs %v", fairGot, plainGot)
	}
	for i := range fairGot {
		if fairGot[i] != plainGot[i] {
			t.Errorf("event %d: expected %d, got %d", i, plainGot[i], fairGot[i])
		}
	}
}
