package game

import (
	"errors"
	"math/rand"
	"testing"
)

type constRand int

func (r constRand) Intn(n int) int {
	return int(r) % n
}

func TestPlaceExhaustsBudget(t *testing.T) {
	b := NewDefaultBoard()
	stats, err := NewPlacer(constRand(0)).Place(b)

	if !errors.Is(err, ErrPlacementExhausted) {
		t.Fatalf("expected ErrPlacementExhausted, got %v", err)
	}
	if stats.Attempts != MaxPlacementAttempts {
		t.Fatalf("expected %d attempts, got %d", MaxPlacementAttempts, stats.Attempts)
	}
	if stats.Conflicts != MaxPlacementAttempts-1 {
		t.Fatalf("expected %d conflicts, got %d", MaxPlacementAttempts-1, stats.Conflicts)
	}
	if len(b.Vessels()) != 1 {
		t.Fatalf("expected only the first vessel placed, got %d", len(b.Vessels()))
	}
}

func TestPlaceReportsRejectionTags(t *testing.T) {
	tests := []struct {
		name    string
		rng     constRand
		wantTag string
		placed  int
	}{
		// anchor (0, 0) horizontal: the first vessel fits, every later one collides with it
		{name: "conflict", rng: constRand(0), wantTag: TagCellConflict, placed: 1},
		// anchor (5, 5) vertical: the three-cell vessel never fits
		{name: "out of bounds", rng: constRand(5), wantTag: TagOutOfBounds, placed: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tags := make(map[string]int)
			p := NewPlacer(tt.rng)
			p.OnReject = func(anchor Coordinate, size int, err error) {
				if size != DefaultFleet[tt.placed] {
					t.Fatalf("expected rejected size %d, got %d", DefaultFleet[tt.placed], size)
				}
				tags[ErrorTag(err)]++
			}

			b := NewDefaultBoard()
			stats, err := p.Place(b)
			if !errors.Is(err, ErrPlacementExhausted) {
				t.Fatalf("expected ErrPlacementExhausted, got %v", err)
			}
			rejected := MaxPlacementAttempts - tt.placed
			if tags[tt.wantTag] != rejected || len(tags) != 1 {
				t.Fatalf("expected %d %s tags only, got %v", rejected, tt.wantTag, tags)
			}
			if stats.Conflicts+stats.OutOfBounds != rejected {
				t.Fatalf("expected stats to agree with %d rejections, got %+v", rejected, stats)
			}
			if len(b.Vessels()) != tt.placed {
				t.Fatalf("expected %d vessels placed, got %d", tt.placed, len(b.Vessels()))
			}
		})
	}
}

func TestPlaceWithinBudget(t *testing.T) {
	placed := 0
	for seed := int64(1); seed <= 40; seed++ {
		b := NewDefaultBoard()
		stats, err := NewPlacer(rand.New(rand.NewSource(seed))).Place(b)
		if stats.Attempts > MaxPlacementAttempts {
			t.Fatalf("seed %d: %d attempts exceed the budget", seed, stats.Attempts)
		}
		if err != nil {
			if !errors.Is(err, ErrPlacementExhausted) {
				t.Fatalf("seed %d: unexpected error %v", seed, err)
			}
			continue
		}
		placed++
		assertFleet(t, b)
	}
	if placed == 0 {
		t.Fatal("expected at least one seed to place the whole fleet")
	}
}

func TestRandomBoard(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		b := NewPlacer(rand.New(rand.NewSource(seed))).RandomBoard()
		assertFleet(t, b)
		if b.Phase() != PhaseInPlay {
			t.Fatalf("seed %d: expected IN_PLAY, got %s", seed, b.Phase())
		}
		for _, v := range b.Vessels() {
			for _, d := range v.Dots() {
				if b.IsBlocked(d) {
					t.Fatalf("seed %d: expected %s to be targetable", seed, d)
				}
			}
		}
	}
}

func assertFleet(t *testing.T, b *Board) {
	t.Helper()
	vessels := b.Vessels()
	if len(vessels) != DefaultFleet.Vessels() {
		t.Fatalf("expected %d vessels, got %d", DefaultFleet.Vessels(), len(vessels))
	}

	cells := 0
	for _, row := range b.Grid() {
		for _, c := range row {
			if c == CellShip {
				cells++
			}
		}
	}
	if cells != DefaultFleet.Cells() {
		t.Fatalf("expected %d ship cells, got %d", DefaultFleet.Cells(), cells)
	}

	for i, a := range vessels {
		for _, other := range vessels[i+1:] {
			for _, d := range a.Dots() {
				for _, e := range other.Dots() {
					if abs(d.Row-e.Row) <= 1 && abs(d.Col-e.Col) <= 1 {
						t.Fatalf("vessels touch at %s and %s", d, e)
					}
				}
			}
		}
	}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
