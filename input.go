package aoc

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Input returns the current puzzle's input: the sample while a sample
// is being checked, else <year>/<day>.input, fetched and cached on
// first use.
func Input() []byte {
	if altInput != nil {
		return altInput
	}
	filename := filepath.Join(strconv.Itoa(flagYear), fmt.Sprintf("%d.input", curDay))
	if f, err := os.ReadFile(filename); err == nil {
		return f
	}
	f := fetchInput(flagYear, curDay)
	MustDo(os.MkdirAll(filepath.Dir(filename), 0700))
	MustDo(os.WriteFile(filename, f, 0644))
	return f
}

func fetchInput(year, day int) []byte {
	session := MustGet(os.ReadFile(filepath.Join(os.Getenv("HOME"), "keys", "aoc.session")))
	url := fmt.Sprintf("https://adventofcode.com/%d/day/%d/input", year, day)
	req := MustGet(http.NewRequest("GET", url, nil))
	req.AddCookie(&http.Cookie{Name: "session", Value: strings.TrimSpace(string(session))})
	res := MustGet(http.DefaultClient.Do(req))
	defer res.Body.Close()
	if res.StatusCode != 200 {
		log.Fatalf("bad status fetching %s: %v", url, res.Status)
	}
	return MustGet(io.ReadAll(res.Body))
}

func Scanner() *bufio.Scanner {
	return bufio.NewScanner(bytes.NewReader(Input()))
}

// ForLines calls onLine for each line of input.
func ForLines(onLine func(line string)) {
	ForLinesY(func(_ int, line string) { onLine(line) })
}

// ForLinesY calls onLine for each line of input.
// The y value is the row number, starting with 0.
func ForLinesY(onLine func(y int, line string)) {
	s := Scanner()
	y := -1
	for s.Scan() {
		y++
		onLine(y, s.Text())
	}
	if err := s.Err(); err != nil {
		log.Fatal(err)
	}
}

// Lines returns the input split into lines.
func Lines() []string {
	var lines []string
	ForLines(func(line string) { lines = append(lines, line) })
	return lines
}

// ReadGrid parses the input as a rune grid. Row 0 is the top line, so
// pair it with the ...Down direction tables or call FlipY.
func ReadGrid() *Grid[rune] {
	return MustGet(GridFromString(string(Input())))
}

// ReadDigitGrid parses the input as a grid of single digits.
func ReadDigitGrid() *Grid[int] {
	return MustGet(DigitGrid(Lines()))
}

func Int(s string) int {
	return MustGet(strconv.Atoi(strings.TrimSpace(s)))
}

func DigVal(b byte) int {
	if v, ok := digVal(b); ok {
		return v
	}
	panic(fmt.Sprintf("bogus digit %q", string(b)))
}

func digVal(b byte) (int, bool) {
	if b >= '0' && b <= '9' {
		return int(b - '0'), true
	}
	return 0, false
}
