package aoc

import (
	"fmt"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Table maps direction labels to unit vectors. The zero Table is empty.
// Tables are read-only after construction and safe to share.
type Table[K comparable] struct {
	name string
	m    map[K]Vec
}

func newTable[K comparable](name string, m map[K]Vec) Table[K] {
	return Table[K]{name: name, m: m}
}

// Get returns the vector for k. Unknown keys return an error wrapping
// ErrNoDirection.
func (t Table[K]) Get(k K) (Vec, error) {
	v, ok := t.m[k]
	if !ok {
		return Vec{}, fmt.Errorf("%w: %q not in %s", ErrNoDirection, any(k), t.name)
	}
	return v, nil
}

// MustGet is like Get but panics on an unknown key.
func (t Table[K]) MustGet(k K) Vec {
	return MustGet(t.Get(k))
}

func (t Table[K]) Len() int { return len(t.m) }

// Keys returns the table's keys in no particular order.
func (t Table[K]) Keys() []K {
	return maps.Keys(t.m)
}

// Vecs returns the table's vectors sorted by Y then X.
func (t Table[K]) Vecs() []Vec {
	vs := maps.Values(t.m)
	slices.SortFunc(vs, func(a, b Vec) int {
		if a.Y != b.Y {
			return a.Y - b.Y
		}
		return a.X - b.X
	})
	return vs
}

// FlipY returns a copy of t with every vector's Y negated.
func (t Table[K]) FlipY() Table[K] {
	m := make(map[K]Vec, len(t.m))
	for k, v := range t.m {
		m[k] = v.FlipY()
	}
	return newTable(t.name+" (y down)", m)
}

// Compass maps N, NE, E, SE, S, SW, W and NW to vectors with North
// being +Y.
var Compass = newTable("compass", map[string]Vec{
	"N":  {0, 1},
	"NE": {1, 1},
	"E":  {1, 0},
	"SE": {1, -1},
	"S":  {0, -1},
	"SW": {-1, -1},
	"W":  {-1, 0},
	"NW": {-1, 1},
})

// Arrows maps '>', '<', '^' and 'v'.
var Arrows = newTable("arrows", map[rune]Vec{
	'>': {1, 0},
	'<': {-1, 0},
	'^': {0, 1},
	'v': {0, -1},
})

// Letters maps 'R', 'L', 'U' and 'D'.
var Letters = newTable("letters", map[rune]Vec{
	'R': {1, 0},
	'L': {-1, 0},
	'U': {0, 1},
	'D': {0, -1},
})

// NineBox maps the eight outer cells of a 3x3 box, named
// {t,m,b}{l,m,r} for top/middle/bottom and left/middle/right.
var NineBox = newTable("nine-box", map[string]Vec{
	"tl": {-1, 1},
	"tm": {0, 1},
	"tr": {1, 1},
	"ml": {-1, 0},
	"mr": {1, 0},
	"bl": {-1, -1},
	"bm": {0, -1},
	"br": {1, -1},
})

// Y-down variants, for grids indexed by row read top to bottom.
var (
	CompassDown = Compass.FlipY()
	ArrowsDown  = Arrows.FlipY()
	LettersDown = Letters.FlipY()
	NineBoxDown = NineBox.FlipY()
)

func sliceOf[T any](v ...T) []T { return v }

// Clockwise lists the step funcs starting North and turning right.
var Clockwise = sliceOf(
	Pt2[int].North,
	Pt2[int].East,
	Pt2[int].South,
	Pt2[int].West,
)

var CounterClockwise = sliceOf(
	Pt2[int].North,
	Pt2[int].West,
	Pt2[int].South,
	Pt2[int].East,
)
