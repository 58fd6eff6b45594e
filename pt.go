package aoc

import (
	"iter"

	"github.com/zyedidia/generic/mapset"
	"golang.org/x/exp/constraints"
)

// Pt2 is a 2D integer point. It's a plain value: == compares
// coordinates and it works as a map key.
//
// Coordinates are mathematical: X grows to the right and Y grows up.
// Grids read top-down from a file have Y growing down; use FlipY or the
// ...Down direction tables for those.
type Pt2[T constraints.Signed] struct {
	X, Y T
}

type Pt3[T constraints.Signed] struct {
	X, Y, Z T
}

type Pt = Pt2[int]

// Vec is a displacement. It's only a Pt by another name.
type Vec = Pt

type Pt3Int = Pt3[int]

func (p Pt2[T]) Add(q Pt2[T]) Pt2[T] { return Pt2[T]{p.X + q.X, p.Y + q.Y} }

// Sub returns the displacement from q to p.
func (p Pt2[T]) Sub(q Pt2[T]) Pt2[T] { return Pt2[T]{p.X - q.X, p.Y - q.Y} }

func (p Pt2[T]) Mul(k T) Pt2[T] { return Pt2[T]{p.X * k, p.Y * k} }

// Scale multiplies p by q component-wise.
func (p Pt2[T]) Scale(q Pt2[T]) Pt2[T] { return Pt2[T]{p.X * q.X, p.Y * q.Y} }

// FlipY negates Y, converting between screen and math coordinates.
func (p Pt2[T]) FlipY() Pt2[T] { return Pt2[T]{p.X, -p.Y} }

func AbsInt[T constraints.Signed](x, y T) T {
	v := x - y
	if v < 0 {
		v = -v
	}
	return v
}

// MLen returns the manhattan length of p, |X| + |Y|.
func (p Pt2[T]) MLen() T {
	return AbsInt[T](p.X, 0) + AbsInt[T](p.Y, 0)
}

// MDist returns the manhattan distance between a and b.
func (a Pt2[T]) MDist(b Pt2[T]) T {
	return a.Sub(b).MLen()
}

// Toward returns a point moving from p to b in max 1 step in the X
// and/or Y direction.
func (p Pt2[T]) Toward(b Pt2[T]) Pt2[T] {
	p1 := p
	if b.X < p.X {
		p1.X--
	} else if b.X > p.X {
		p1.X++
	}
	if b.Y < p.Y {
		p1.Y--
	} else if b.Y > p.Y {
		p1.Y++
	}
	return p1
}

func (p Pt2[T]) North() Pt2[T] { return Pt2[T]{p.X, p.Y + 1} }
func (p Pt2[T]) South() Pt2[T] { return Pt2[T]{p.X, p.Y - 1} }
func (p Pt2[T]) West() Pt2[T]  { return Pt2[T]{p.X - 1, p.Y} }
func (p Pt2[T]) East() Pt2[T]  { return Pt2[T]{p.X + 1, p.Y} }

// ForNeighbors calls f with each of the 8 points around p until f
// returns false.
func (p Pt2[T]) ForNeighbors(f func(Pt2[T]) (keepGoing bool)) {
	for n := range p.AllNeighbors(true, false) {
		if !f(n) {
			return
		}
	}
}

// AllNeighbors yields the points of the 3x3 block centered on p, row by
// row from the lowest Y. Diagonal points are skipped unless diag is
// set, and p itself unless self is set.
func (p Pt2[T]) AllNeighbors(diag, self bool) iter.Seq[Pt2[T]] {
	return func(yield func(Pt2[T]) bool) {
		for y := T(-1); y <= 1; y++ {
			for x := T(-1); x <= 1; x++ {
				switch {
				case x == 0 && y == 0:
					if !self {
						continue
					}
				case x != 0 && y != 0:
					if !diag {
						continue
					}
				}
				if !yield(Pt2[T]{p.X + x, p.Y + y}) {
					return
				}
			}
		}
	}
}

// Neighbors returns the set of points AllNeighbors would yield.
func (p Pt2[T]) Neighbors(diag, self bool) mapset.Set[Pt2[T]] {
	s := mapset.New[Pt2[T]]()
	for n := range p.AllNeighbors(diag, self) {
		s.Put(n)
	}
	return s
}

func (p Pt3[T]) Add(q Pt3[T]) Pt3[T] { return Pt3[T]{p.X + q.X, p.Y + q.Y, p.Z + q.Z} }
func (p Pt3[T]) Sub(q Pt3[T]) Pt3[T] { return Pt3[T]{p.X - q.X, p.Y - q.Y, p.Z - q.Z} }

// MDist returns the manhattan distance between a and b.
func (a Pt3[T]) MDist(b Pt3[T]) T {
	return AbsInt[T](a.X, b.X) + AbsInt[T](a.Y, b.Y) + AbsInt[T](a.Z, b.Z)
}
