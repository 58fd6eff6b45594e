package aoc_test

import (
	"errors"
	"fmt"

	"github.com/tjmoss/aoc"
)

func Example_neighbors() {
	p := aoc.Pt{5, 5}
	fmt.Println(p.Neighbors(true, false).Size())
	fmt.Println(p.Neighbors(false, false).Size())
	fmt.Println(p.Neighbors(true, true).Has(p))
	// Output:
	// 8
	// 4
	// true
}

func Example_grid() {
	g, _ := aoc.DigitGrid([]string{
		"5483143223",
		"2745854711",
	})
	v, _ := g.At(aoc.Pt{1, 1})
	fmt.Println(g.Width(), g.Height(), v)

	_, err := g.At(aoc.Pt{11, 8})
	fmt.Println(errors.Is(err, aoc.ErrOutOfBounds))
	// Output:
	// 10 2 7
	// true
}

func Example_directions() {
	// Walk a rope head from the origin.
	head := aoc.Pt{}
	for _, c := range "RRUL" {
		head = head.Add(aoc.Letters.MustGet(c))
	}
	fmt.Println(head)

	_, err := aoc.Arrows.Get('x')
	fmt.Println(err)
	// Output:
	// {1 1}
	// aoc: no such direction: 'x' not in arrows
}

func ExampleBinarySearch() {
	sq := func(x int) int { return x * x }
	i, ok, _ := aoc.BinarySearch(225, 0, 20, sq, false)
	fmt.Println(i, ok)
	_, ok, _ = aoc.BinarySearch(225, 0, 20, sq, true)
	fmt.Println(ok)
	// Output:
	// 15 true
	// false
}

func ExampleMergeIntervals() {
	merged, _ := aoc.MergeIntervals([]aoc.Interval[int]{{1, 5}, {3, 7}, {8, 12}, {10, 15}, {18, 20}})
	fmt.Println(merged, aoc.TotalLen(merged))
	// Output:
	// [[1, 15] [18, 20]] 18
}
