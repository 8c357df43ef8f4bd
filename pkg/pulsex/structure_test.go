package pulsex

import (
	"testing"

	"github.com/vango-dev/pulse/pkg/pulse"
	"github.com/vango-dev/pulse/pkg/pulsetest"
)

func TestZip2PairsLatestValues(t *testing.T) {
	g := pulse.New()
	a := pulse.NewInput(g, 1)
	b := pulse.NewInput(g, "x")

	zipped := Zip2(a.Stream(), b.Stream())
	if v := zipped.Value(); v.First != 1 || v.Second != "x" {
		t.Errorf("expected initial pair (1, x), got %+v", v)
	}

	a.Emit(2)
	if v := zipped.Value(); v.First != 2 || v.Second != "x" {
		t.Errorf("expected pair (2, x), got %+v", v)
	}
}

func TestUnzip2ProjectionsShareRounds(t *testing.T) {
	g := pulse.New()
	a := pulse.NewInput(g, 1)
	b := pulse.NewInput(g, 10)

	zipped := Zip2(a.Stream(), b.Stream())
	first, second := Unzip2(zipped)

	firstRec := pulsetest.Record(first)
	secondRec := pulsetest.Record(second)

	// A projection fires in every round the tuple fires, even when its own
	// component did not change.
	b.Emit(20)
	if firstRec.Len() != 1 || secondRec.Len() != 1 {
		t.Errorf("expected both projections to fire once, got %d and %d",
			firstRec.Len(), secondRec.Len())
	}
	if v, _ := firstRec.Last(); v != 1 {
		t.Errorf("expected unchanged component 1, got %d", v)
	}
	if v, _ := secondRec.Last(); v != 20 {
		t.Errorf("expected updated component 20, got %d", v)
	}
}

func TestZip3Unzip3(t *testing.T) {
	g := pulse.New()
	a := pulse.NewInput(g, 1)
	b := pulse.NewInput(g, 2)
	c := pulse.NewInput(g, 3)

	x, y, z := Unzip3(Zip3(a.Stream(), b.Stream(), c.Stream()))
	c.Emit(30)

	if x.Value() != 1 || y.Value() != 2 || z.Value() != 30 {
		t.Errorf("expected projections (1, 2, 30), got (%d, %d, %d)",
			x.Value(), y.Value(), z.Value())
	}
}

func TestZip4Unzip4(t *testing.T) {
	g := pulse.New()
	a := pulse.NewInput(g, 1)
	b := pulse.NewInput(g, 2)
	c := pulse.NewInput(g, 3)
	d := pulse.NewInput(g, 4)

	w, x, y, z := Unzip4(Zip4(a.Stream(), b.Stream(), c.Stream(), d.Stream()))
	b.Emit(20)
	d.Emit(40)

	if w.Value() != 1 || x.Value() != 20 || y.Value() != 3 || z.Value() != 40 {
		t.Errorf("expected projections (1, 20, 3, 40), got (%d, %d, %d, %d)",
			w.Value(), x.Value(), y.Value(), z.Value())
	}
}
