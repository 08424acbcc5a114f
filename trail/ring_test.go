package trail

import (
	"testing"

	"github.com/lixenwraith/yoke-trace/mechanism"
)

func pt(i int) mechanism.Point {
	return mechanism.Point{X: float64(i), Y: float64(-i)}
}

func TestRingFillBelowCapacity(t *testing.T) {
	r := NewRing(10)

	for i := 0; i < 6; i++ {
		r.Push(pt(i))
	}

	if r.Len() != 6 {
		t.Fatalf("Expected Len 6, got %d", r.Len())
	}
	if r.Cap() != 10 {
		t.Errorf("Expected Cap 10, got %d", r.Cap())
	}

	points := r.Points()
	for i, p := range points {
		if p != pt(i) {
			t.Errorf("Expected point %d to be %v, got %v", i, pt(i), p)
		}
	}
}

func TestRingEviction(t *testing.T) {
	r := NewRing(4)

	for i := 0; i < 11; i++ {
		r.Push(pt(i))
		if r.Len() > r.Cap() {
			t.Fatalf("Invariant violated after push %d: Len %d > Cap %d", i, r.Len(), r.Cap())
		}
	}

	if r.Len() != 4 {
		t.Fatalf("Expected Len 4, got %d", r.Len())
	}

	// Last 4 pushes in chronological order: 7, 8, 9, 10
	points := r.Points()
	for i, p := range points {
		if p != pt(7 + i) {
			t.Errorf("Expected point %d to be %v, got %v", i, pt(7+i), p)
		}
	}
}

func TestRingExactCapacity(t *testing.T) {
	r := NewRing(5)
	for i := 0; i < 5; i++ {
		r.Push(pt(i))
	}

	if r.Len() != 5 {
		t.Fatalf("Expected Len 5, got %d", r.Len())
	}
	points := r.Points()
	for i, p := range points {
		if p != pt(i) {
			t.Errorf("Expected point %d to be %v, got %v", i, pt(i), p)
		}
	}
}

func TestRingZeroCapacity(t *testing.T) {
	r := NewRing(0)
	for i := 0; i < 100; i++ {
		r.Push(pt(i))
		if r.Len() != 0 {
			t.Fatalf("Expected zero-capacity ring to stay empty, Len %d after push %d", r.Len(), i)
		}
	}
	if points := r.Points(); len(points) != 0 {
		t.Errorf("Expected empty Points, got %d entries", len(points))
	}
}

func TestRingNegativeCapacity(t *testing.T) {
	r := NewRing(-3)
	r.Push(pt(1))
	if r.Cap() != 0 || r.Len() != 0 {
		t.Errorf("Expected negative capacity clamped to 0, got Cap %d Len %d", r.Cap(), r.Len())
	}
}

func TestRingReset(t *testing.T) {
	r := NewRing(3)
	for i := 0; i < 5; i++ {
		r.Push(pt(i))
	}
	r.Reset()

	if r.Len() != 0 {
		t.Fatalf("Expected Len 0 after Reset, got %d", r.Len())
	}

	r.Push(pt(42))
	points := r.Points()
	if len(points) != 1 || points[0] != pt(42) {
		t.Errorf("Expected [%v] after Reset+Push, got %v", pt(42), points)
	}
}

func TestRingPointsIsCopy(t *testing.T) {
	r := NewRing(3)
	r.Push(pt(1))

	points := r.Points()
	points[0] = pt(99)

	if got := r.Points()[0]; got != pt(1) {
		t.Errorf("Points must return a copy; ring content changed to %v", got)
	}
}
