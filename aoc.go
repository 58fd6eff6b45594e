// Package aoc holds the shared helpers for Advent of Code solutions:
// points and direction tables, bounded grids, binary search over
// monotonic functions, interval merging, and the bits of harness that
// register puzzle funcs, check them against samples and load input.
package aoc

import (
	"flag"
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"log"
	"os"
	"reflect"
	"regexp"
	"runtime"
	"strings"
	"unicode"
)

var flagYear = 2022 // set by -year in Main

var (
	puzzles      []string
	puzzleByName = map[string]func() any{} // func name -> func
	samples      = map[string]sample{}     // func name -> sample
)

type sample struct {
	input string
	want  string
}

var (
	curDay   int
	altInput []byte // non-nil to run a sample
)

// Main runs the puzzle func selected by -day, first against its sample
// (if it has one) and then against the real input.
func Main() {
	flagDay := flag.String("day", "", "func name to run; empty string means latest registered. If it starts with a digit, then \"day\" prefix is assumed.")
	flag.IntVar(&flagYear, "year", flagYear, "event year, used to locate and fetch input")
	flag.Parse()
	if len(puzzles) == 0 {
		log.Fatal("no puzzle funcs registered")
	}

	name := resolveName(*flagDay)
	f, ok := puzzleByName[name]
	if !ok {
		log.Fatalf("puzzle func %v not registered", name)
	}
	day, err := dayOf(name)
	if err != nil {
		log.Fatal(err)
	}
	curDay = day

	if s, ok := samples[name]; ok {
		altInput = []byte(s.input)
		got := fmt.Sprint(f())
		altInput = nil
		if got != s.want {
			fmt.Fprintf(os.Stderr, "❌ for %v sample, got=%v; want %v\n", name, got, s.want)
			os.Exit(1)
		}
		fmt.Fprintf(os.Stderr, "OK sample result.\n")
	} else {
		fmt.Fprintf(os.Stderr, "⚠️ no sample for %v\n", name)
	}
	fmt.Println(f())
}

func resolveName(arg string) string {
	if arg == "" {
		return puzzles[len(puzzles)-1]
	}
	if unicode.IsDigit(rune(arg[0])) {
		return "day" + arg
	}
	return arg
}

var dayRx = regexp.MustCompile(`\d+`)

func dayOf(funcName string) (int, error) {
	m := dayRx.FindString(funcName)
	if m == "" {
		return 0, fmt.Errorf("no digits in func name %q from which to extract day number", funcName)
	}
	return Int(m), nil
}

var wantRx = regexp.MustCompile(`(?sm)^\s*want=([^\n]*)(?:\s+(.+\n))?\s*`)

// ExtractSamples parses Go source and records, for each func whose doc
// comment has a "want=" line, the expected answer and the sample input
// following it. A func without its own input reuses the previous one.
func ExtractSamples(src []byte) {
	fs := token.NewFileSet()
	f, err := parser.ParseFile(fs, "aoc.go", src, parser.ParseComments)
	if err != nil {
		log.Fatalf("parsing source to extract samples: %v", err)
	}
	var lastInput string
	for _, d := range f.Decls {
		fd, ok := d.(*ast.FuncDecl)
		if !ok || fd.Doc == nil {
			continue
		}
		for _, c := range fd.Doc.List {
			text := strings.TrimPrefix(c.Text, "//")
			if v, ok := strings.CutPrefix(text, "/*"); ok {
				text = strings.TrimSuffix(v, "*/")
			}
			m := wantRx.FindStringSubmatch(text)
			if m == nil {
				continue
			}
			in := Or(m[2], lastInput)
			samples[fd.Name.Name] = sample{input: in, want: m[1]}
			lastInput = in
		}
	}
}

func funcName(f func() any) string {
	rf := runtime.FuncForPC(reflect.ValueOf(f).Pointer())
	if rf == nil {
		panic("no func found")
	}
	name := rf.Name()
	return name[strings.LastIndex(name, ".")+1:]
}

// Add registers puzzle funcs. The last one added is the default for Main.
func Add(puzFuncs ...func() any) {
	for _, f := range puzFuncs {
		name := funcName(f)
		puzzles = append(puzzles, name)
		puzzleByName[name] = f
	}
}

// MustDo panics if err is non-nil.
func MustDo(err error) {
	if err != nil {
		panic(err)
	}
}

// MustGet returns v as is. It panics if err is non-nil.
func MustGet[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

// Or returns the first non-zero element of list, or else returns the zero T.
func Or[T comparable](list ...T) T {
	var zero T
	for _, v := range list {
		if v != zero {
			return v
		}
	}
	return zero
}
