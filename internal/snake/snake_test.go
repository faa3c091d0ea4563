package snake

import (
	"slices"
	"testing"

	"github.com/vovakirdan/tui-snake/internal/core"
)

var board = Bounds{W: 80, H: 24}

func TestNewSnakeLayout(t *testing.T) {
	s := New()

	want := []core.Point{{X: 10, Y: 5}, {X: 9, Y: 5}, {X: 8, Y: 5}}
	if !slices.Equal(s.Body(), want) {
		t.Errorf("Body() = %v, expected %v", s.Body(), want)
	}
	if s.Direction() != DirRight {
		t.Errorf("Direction() = %v, expected right", s.Direction())
	}
}

func TestMoveOneStep(t *testing.T) {
	s := New()
	s.Move(board)

	want := []core.Point{{X: 11, Y: 5}, {X: 10, Y: 5}, {X: 9, Y: 5}}
	if !slices.Equal(s.Body(), want) {
		t.Errorf("Body() = %v, expected %v", s.Body(), want)
	}
}

func TestMovePreservesLength(t *testing.T) {
	s := New()
	turns := []Direction{DirDown, DirLeft, DirUp, DirRight}

	for i := 0; i < 200; i++ {
		if i%7 == 0 {
			d := turns[(i/7)%len(turns)]
			s.SetDirection(d.DX, d.DY)
		}
		before := s.Len()
		s.Move(board)
		if s.Len() != before {
			t.Fatalf("move %d changed length from %d to %d", i, before, s.Len())
		}
	}
}

func TestGrowThenMoveAddsOne(t *testing.T) {
	s := New()
	start := s.Len()

	s.Grow()
	s.Move(board)

	if s.Len() != start+1 {
		t.Fatalf("Len() = %d after grow+move, expected %d", s.Len(), start+1)
	}

	want := []core.Point{{X: 11, Y: 5}, {X: 10, Y: 5}, {X: 9, Y: 5}, {X: 8, Y: 5}}
	if !slices.Equal(s.Body(), want) {
		t.Errorf("Body() = %v, expected %v", s.Body(), want)
	}
	if s.Collided() {
		t.Error("grow followed by move must not count as a collision")
	}
}

func TestGrowStacksOnTail(t *testing.T) {
	s := New()
	s.Grow()

	body := s.Body()
	if len(body) != 4 || body[3] != body[2] {
		t.Errorf("Body() = %v, expected duplicated tail", body)
	}
	if s.Collided() {
		t.Error("stacked tail is not a head collision")
	}
}

func TestSetDirection(t *testing.T) {
	tests := []struct {
		name   string
		from   Direction
		dx, dy int
		want   Direction
	}{
		{"perpendicular up from right", DirRight, 0, -1, DirUp},
		{"perpendicular down from right", DirRight, 0, 1, DirDown},
		{"reverse from right", DirRight, -1, 0, DirRight},
		{"same heading", DirRight, 1, 0, DirRight},
		{"reverse from up", DirUp, 0, 1, DirUp},
		{"perpendicular left from up", DirUp, -1, 0, DirLeft},
		{"diagonal rejected", DirRight, 1, 1, DirRight},
		{"zero rejected", DirRight, 0, 0, DirRight},
		{"long step rejected", DirRight, 0, 2, DirRight},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := New()
			s.direction = tc.from
			s.SetDirection(tc.dx, tc.dy)
			if s.Direction() != tc.want {
				t.Errorf("SetDirection(%d, %d) from %v = %v, expected %v", tc.dx, tc.dy, tc.from, s.Direction(), tc.want)
			}
		})
	}
}

func TestDirectionNeverDiagonalOrReversed(t *testing.T) {
	src := NewCoordSource(7)
	s := New()

	for i := 0; i < 5000; i++ {
		prev := s.Direction()
		s.SetDirection(src.IntIn(-1, 1), src.IntIn(-1, 1))
		d := s.Direction()

		if d.DX != 0 && d.DY != 0 {
			t.Fatalf("step %d: diagonal direction %v", i, d)
		}
		if d.DX == -prev.DX && d.DY == -prev.DY {
			t.Fatalf("step %d: reversed from %v to %v", i, prev, d)
		}
	}
}

func TestWrapKeepsHeadInside(t *testing.T) {
	sizes := []Bounds{{W: 80, H: 24}, {W: 20, H: 10}, {W: 3, H: 3}, {W: 5, H: 40}}
	headings := []Direction{DirRight, DirLeft, DirUp, DirDown}

	for _, b := range sizes {
		for _, d := range headings {
			s := New()
			s.direction = d
			for i := 0; i < 3*(b.W+b.H); i++ {
				s.Move(b)
				h := s.Head()
				if h.X < 1 || h.X > b.W-1 || h.Y < 1 || h.Y > b.H-2 {
					t.Fatalf("%dx%d heading %v: head %v left the playfield", b.W, b.H, d, h)
				}
			}
		}
	}
}

func TestWrapEdges(t *testing.T) {
	b := Bounds{W: 20, H: 10}

	tests := []struct {
		name string
		in   core.Point
		want core.Point
	}{
		{"left border", core.Pt(0, 5), core.Pt(19, 5)},
		{"past right edge", core.Pt(20, 5), core.Pt(1, 5)},
		{"last column stays", core.Pt(19, 5), core.Pt(19, 5)},
		{"score row", core.Pt(5, 0), core.Pt(5, 8)},
		{"help row", core.Pt(5, 9), core.Pt(5, 1)},
		{"interior", core.Pt(5, 5), core.Pt(5, 5)},
		{"shrunk window", core.Pt(40, 30), core.Pt(1, 1)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := b.Wrap(tc.in); got != tc.want {
				t.Errorf("Wrap(%v) = %v, expected %v", tc.in, got, tc.want)
			}
		})
	}
}

func TestCollided(t *testing.T) {
	tests := []struct {
		name string
		body []core.Point
		want bool
	}{
		{"single segment", []core.Point{{X: 1, Y: 1}}, false},
		{"distinct", []core.Point{{X: 3, Y: 1}, {X: 2, Y: 1}, {X: 1, Y: 1}}, false},
		{"head on tail", []core.Point{{X: 5, Y: 5}, {X: 5, Y: 6}, {X: 6, Y: 6}, {X: 6, Y: 5}, {X: 5, Y: 5}}, true},
		{"head on neck", []core.Point{{X: 2, Y: 2}, {X: 2, Y: 2}, {X: 1, Y: 2}}, true},
		{"tail duplicates only", []core.Point{{X: 3, Y: 1}, {X: 2, Y: 1}, {X: 2, Y: 1}}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := &Snake{body: tc.body, direction: DirRight}
			if got := s.Collided(); got != tc.want {
				t.Errorf("Collided() = %v, expected %v", got, tc.want)
			}
		})
	}
}

func TestSelfCollisionByMoving(t *testing.T) {
	s := New()
	for i := 0; i < 3; i++ {
		s.Grow()
		s.Move(board)
	}
	// Length 6 heading right: down, left, up bites the body.
	s.SetDirection(0, 1)
	s.Move(board)
	s.SetDirection(-1, 0)
	s.Move(board)
	s.SetDirection(0, -1)
	s.Move(board)

	if !s.Collided() {
		t.Errorf("expected collision, body = %v", s.Body())
	}
}

func TestReset(t *testing.T) {
	s := New()
	for i := 0; i < 5; i++ {
		s.Grow()
		s.Move(board)
	}
	s.SetDirection(0, 1)
	s.Move(board)

	s.Reset()

	want := []core.Point{{X: 10, Y: 5}, {X: 9, Y: 5}, {X: 8, Y: 5}}
	if !slices.Equal(s.Body(), want) {
		t.Errorf("Body() after Reset = %v, expected %v", s.Body(), want)
	}
	if s.Direction() != DirRight {
		t.Errorf("Direction() after Reset = %v, expected right", s.Direction())
	}
}

func TestBodyIsCopy(t *testing.T) {
	s := New()
	b := s.Body()
	b[0] = core.Pt(99, 99)

	if s.Head() == core.Pt(99, 99) {
		t.Error("Body() should return a copy")
	}
}

func TestOccupies(t *testing.T) {
	s := New()
	if !s.Occupies(core.Pt(9, 5)) {
		t.Error("snake should occupy (9, 5)")
	}
	if s.Occupies(core.Pt(11, 5)) {
		t.Error("snake should not occupy (11, 5)")
	}
}

func TestBoundsValid(t *testing.T) {
	tests := []struct {
		b    Bounds
		want bool
	}{
		{Bounds{W: 80, H: 24}, true},
		{Bounds{W: 3, H: 3}, true},
		{Bounds{W: 2, H: 24}, false},
		{Bounds{W: 80, H: 2}, false},
		{Bounds{}, false},
	}

	for _, tc := range tests {
		if got := tc.b.Valid(); got != tc.want {
			t.Errorf("%+v.Valid() = %v, expected %v", tc.b, got, tc.want)
		}
	}
}

func TestDirectionString(t *testing.T) {
	if DirUp.String() != "up" || DirRight.String() != "right" || (Direction{}).String() != "still" {
		t.Error("unexpected direction names")
	}
}
