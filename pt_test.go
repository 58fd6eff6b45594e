package aoc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zyedidia/generic/mapset"
)

func members[T comparable](s mapset.Set[T]) []T {
	var out []T
	s.Each(func(v T) { out = append(out, v) })
	return out
}

func TestPtEquality(t *testing.T) {
	assert.Equal(t, Pt{3, -4}, Pt{3, -4})
	assert.NotEqual(t, Pt{3, -4}, Pt{-4, 3})

	seen := map[Pt]int{}
	seen[Pt{1, 2}]++
	seen[Pt{1, 2}]++
	seen[Pt{2, 1}]++
	assert.Equal(t, 2, seen[Pt{1, 2}])
	assert.Len(t, seen, 2)
}

func TestPtArithmetic(t *testing.T) {
	assert.Equal(t, Pt{6, 7}, Pt{5, 5}.Add(Pt{1, 2}))
	assert.Equal(t, Pt{4, 3}, Pt{5, 5}.Sub(Pt{1, 2}))
	assert.Equal(t, Pt{3, 6}, Pt{1, 2}.Mul(3))
	assert.Equal(t, Pt{1, 2}.Mul(3), Pt{1, 2}.Scale(Pt{3, 3}))
	assert.Equal(t, Pt{2, -6}, Pt{1, 2}.Scale(Pt{2, -3}))
}

func TestPtLaws(t *testing.T) {
	pts := []Pt{{0, 0}, {1, 2}, {-3, 7}, {100, -100}, {-5, -5}}
	for _, p := range pts {
		assert.Equal(t, Pt{}, p.Sub(p))
		for _, q := range pts {
			assert.Equal(t, p.Add(q), q.Add(p))
			assert.Equal(t, q, p.Add(q.Sub(p)))
			for _, r := range pts {
				assert.Equal(t, p.Add(q).Add(r), p.Add(q.Add(r)))
			}
		}
	}
}

func TestManhattan(t *testing.T) {
	assert.Equal(t, 7, Pt{-3, 4}.MLen())
	assert.Equal(t, 0, Pt{}.MLen())
	assert.Equal(t, 10, Pt{1, 1}.MDist(Pt{-2, 8}))
	assert.Equal(t, Pt{1, 1}.Sub(Pt{-2, 8}).MLen(), Pt{-2, 8}.MDist(Pt{1, 1}))
	assert.Equal(t, 6, Pt3Int{1, 2, 3}.MDist(Pt3Int{0, 0, 0}))
	assert.Equal(t, Pt3Int{1, 1, 1}, Pt3Int{1, 2, 3}.Sub(Pt3Int{0, 1, 2}))
	assert.Equal(t, Pt3Int{1, 2, 3}, Pt3Int{0, 1, 2}.Add(Pt3Int{1, 1, 1}))
}

func TestSteps(t *testing.T) {
	p := Pt{5, 5}
	assert.Equal(t, Pt{5, 6}, p.North())
	assert.Equal(t, Pt{5, 4}, p.South())
	assert.Equal(t, Pt{6, 5}, p.East())
	assert.Equal(t, Pt{4, 5}, p.West())
	assert.Equal(t, Pt{5, -5}, p.FlipY())
	assert.Equal(t, Pt{6, 4}, p.Toward(Pt{9, 0}))
	assert.Equal(t, Pt{5, 5}, p.Toward(p))
}

func TestNeighbors(t *testing.T) {
	p := Pt{5, 5}
	tests := []struct {
		name       string
		diag, self bool
		want       []Pt
	}{
		{"default", true, false, []Pt{{4, 4}, {4, 5}, {4, 6}, {5, 4}, {5, 6}, {6, 4}, {6, 5}, {6, 6}}},
		{"orthogonal", false, false, []Pt{{4, 5}, {5, 4}, {5, 6}, {6, 5}}},
		{"with self", true, true, []Pt{{4, 4}, {4, 5}, {4, 6}, {5, 4}, {5, 5}, {5, 6}, {6, 4}, {6, 5}, {6, 6}}},
		{"orthogonal with self", false, true, []Pt{{4, 5}, {5, 4}, {5, 5}, {5, 6}, {6, 5}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := p.Neighbors(tt.diag, tt.self)
			assert.Equal(t, len(tt.want), s.Size())
			assert.ElementsMatch(t, tt.want, members(s))
			assert.Equal(t, tt.self, s.Has(p))

			var yielded []Pt
			for n := range p.AllNeighbors(tt.diag, tt.self) {
				yielded = append(yielded, n)
			}
			assert.ElementsMatch(t, tt.want, yielded)
		})
	}
}

func TestNeighborMembership(t *testing.T) {
	p := Pt{-2, 3}
	s := p.Neighbors(true, false)
	for x := -5; x <= 1; x++ {
		for y := 0; y <= 6; y++ {
			q := Pt{x, y}
			d := q.Sub(p)
			want := max(AbsInt(d.X, 0), AbsInt(d.Y, 0)) <= 1 && q != p
			assert.Equal(t, want, s.Has(q), "%v", q)
		}
	}
}

func TestAllNeighborsStopsEarly(t *testing.T) {
	n := 0
	for range (Pt{}).AllNeighbors(true, true) {
		n++
		if n == 3 {
			break
		}
	}
	assert.Equal(t, 3, n)

	n = 0
	Pt{}.ForNeighbors(func(Pt) bool {
		n++
		return n < 5
	})
	assert.Equal(t, 5, n)
}

func TestAllNeighborsStableOrder(t *testing.T) {
	collect := func() []Pt {
		var out []Pt
		for q := range (Pt{1, 1}).AllNeighbors(true, false) {
			out = append(out, q)
		}
		return out
	}
	first := collect()
	require.Len(t, first, 8)
	assert.Equal(t, first, collect())
}
