// Package codejam is a quick & dirty harness for solving Code Jam style
// problems: T test cases as whitespace separated tokens on the input, one
// "Case #k: answer" line per case on the output.
package codejam

import (
	"bufio"
	"bytes"
	"flag"
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"io"
	"log"
	"os"
	"reflect"
	"regexp"
	"slices"
	"strings"
	"sync"
	"time"

	"golang.org/x/exp/maps"
)

type sample struct {
	input string
	want  string
}

// parseSample parses a solve method's doc comment. Lines of the form
// "want=..." are the expected output, one per case. Everything else is
// the sample input.
func parseSample(comment string) (sample, bool) {
	text := strings.TrimPrefix(comment, "//")
	if v, ok := strings.CutPrefix(text, "/*"); ok {
		text = strings.TrimSuffix(v, "*/")
	}
	var in, want []string
	for _, line := range strings.Split(text, "\n") {
		if w, ok := strings.CutPrefix(strings.TrimSpace(line), "want="); ok {
			want = append(want, w)
			continue
		}
		if len(in) == 0 && strings.TrimSpace(line) == "" {
			continue
		}
		in = append(in, line)
	}
	if len(want) == 0 {
		var zero sample
		return zero, false
	}
	s := sample{want: strings.Join(want, "\n")}
	if input := strings.TrimRight(strings.Join(in, "\n"), " \t\n"); input != "" {
		s.input = input + "\n"
	}
	return s, true
}

func extractSamples(src []byte) map[string]sample {
	fs := token.NewFileSet()
	f, err := parser.ParseFile(fs, "main.go", src, parser.ParseComments)
	if err != nil {
		log.Fatalf("parsing source to extract samples: %v", err)
	}
	var lastInput string
	samples := make(map[string]sample)
	for _, d := range f.Decls {
		fd, ok := d.(*ast.FuncDecl)
		if !ok || fd.Doc == nil {
			continue
		}
		s, ok := parseSample(fd.Doc.Text())
		if !ok {
			continue
		}
		s.input = Or(s.input, lastInput)
		samples[fd.Name.Name] = s
		lastInput = s.input
	}
	return samples
}

// Puzzle is embedded by solvers. It reads the current case's tokens.
type Puzzle struct {
	SampleMode bool
	Case       int // 1-based number of the case being solved

	solver  variant
	samples map[string]sample
	in      *bufio.Scanner
}

func (p *Puzzle) token() string {
	if !p.in.Scan() {
		if err := p.in.Err(); err != nil {
			log.Fatal(err)
		}
		log.Fatalf("%s: case #%d: unexpected end of input", p.solver.Name, p.Case)
	}
	return p.in.Text()
}

// Int reads the next token as an int.
func (p *Puzzle) Int() int {
	return Int(p.token())
}

// Int2 reads the next two tokens as ints.
func (p *Puzzle) Int2() (int, int) {
	a := p.Int()
	return a, p.Int()
}

// Ints reads the next n tokens as ints.
func (p *Puzzle) Ints(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = p.Int()
	}
	return out
}

func (p *Puzzle) Debugf(format string, args ...any) {
	if flagDebug {
		fmt.Fprintf(os.Stderr, format+"\n", args...)
	}
}

// solveAll reads the case count from in and writes one line per case to out.
func (p *Puzzle) solveAll(solve func() any, in io.Reader, out io.Writer) {
	p.in = bufio.NewScanner(in)
	p.in.Split(bufio.ScanWords)
	p.Case = 0
	t := p.Int()

	bw := bufio.NewWriter(out)
	defer func() { MustDo(bw.Flush()) }()
	for p.Case = 1; p.Case <= t; p.Case++ {
		fmt.Fprintf(bw, "Case #%d: %v\n", p.Case, solve())
	}
}

// runSample runs solve against its embedded sample and reports the result
// to w. It reports whether the output matched.
func (p *Puzzle) runSample(solve func() any, w io.Writer) bool {
	name := p.solver.Name
	s, ok := p.samples[name]
	if !ok {
		fmt.Fprintf(w, "%s: no sample\n", name)
		return true
	}
	p.SampleMode = true
	defer func() { p.SampleMode = false }()

	var buf bytes.Buffer
	t0 := time.Now()
	p.solveAll(solve, strings.NewReader(s.input), &buf)
	got := strings.TrimRight(buf.String(), "\n")
	if got == s.want {
		fmt.Fprintf(w, "%s sample: ✅ (%v)\n", name, time.Since(t0).Round(time.Microsecond))
		return true
	}
	gl, wl := strings.Split(got, "\n"), strings.Split(s.want, "\n")
	for i := 0; i < max(len(gl), len(wl)); i++ {
		g, want := "", ""
		if i < len(gl) {
			g = gl[i]
		}
		if i < len(wl) {
			want = wl[i]
		}
		if g != want {
			fmt.Fprintf(w, "%s sample line %d: %q ❌; want %q\n", name, i+1, g, want)
			break
		}
	}
	return false
}

type variant struct {
	Name string
	ix   int // method index on the solver pointer
}

var variantRx = regexp.MustCompile(`^Solve\w*$`)

// extractMethods registers the methods of x named Solve or Solve<Variant>.
// Each must have the signature func() any and solve exactly one case.
func extractMethods(x any) map[string]variant {
	v := reflect.ValueOf(x)
	if v.Kind() != reflect.Pointer || v.Elem().Kind() != reflect.Struct {
		log.Fatalf("Run: got %T; want pointer to struct", x)
	}
	vt := v.Type()
	out := make(map[string]variant)
	for i := 0; i < vt.NumMethod(); i++ {
		mn := vt.Method(i).Name
		if !variantRx.MatchString(mn) {
			continue
		}
		if _, ok := v.Method(i).Interface().(func() any); !ok {
			log.Fatalf("%s: got %v; want func() any", mn, v.Method(i).Type())
		}
		out[mn] = variant{Name: mn, ix: i}
	}
	return out
}

var (
	flagVariant    string
	flagIn         string
	flagDebug      bool
	flagOnlySample bool
	flagSkipSample bool
	flagNoMemo     bool
)

func init() {
	flag.StringVar(&flagVariant, "variant", "", "solve method to run on the real input (default: first by name)")
	flag.StringVar(&flagIn, "in", "", "input file (default: stdin)")
	flag.BoolVar(&flagOnlySample, "sample", false, "only run samples")
	flag.BoolVar(&flagSkipSample, "skip-sample", false, "skip samples")
	flag.BoolVar(&flagDebug, "debug", false, "debug mode")
	flag.BoolVar(&flagNoMemo, "no-memo", false, "solve repeated cases again instead of reusing the answer")
}

var initFlags = sync.OnceFunc(flag.Parse)

// Run checks every Solve method of slvr against the samples embedded in its
// source src, then solves the real input with the selected one.
//
// slvr must be a pointer to a struct embedding *Puzzle.
func Run(src []byte, slvr any) {
	samples := extractSamples(src)
	variants := extractMethods(slvr)
	initFlags()

	names := maps.Keys(variants)
	slices.Sort(names)
	if flagVariant != "" {
		if _, ok := variants[flagVariant]; !ok {
			log.Fatalf("no variant %q", flagVariant)
		}
		names = []string{flagVariant}
	}
	if len(names) == 0 {
		log.Fatalf("Run: %T has no Solve methods", slvr)
	}

	p := attach(slvr, samples)
	sv := reflect.ValueOf(slvr)

	if !flagSkipSample {
		ok := true
		for _, name := range names {
			p.solver = variants[name]
			ok = p.runSample(solveFunc(sv, p.solver), os.Stderr) && ok
		}
		if !ok {
			os.Exit(1)
		}
	}
	if flagOnlySample {
		return
	}

	var in io.Reader = os.Stdin
	if flagIn != "" {
		f := MustGet(os.Open(flagIn))
		defer f.Close()
		in = f
	}
	p.solver = variants[names[0]]
	t0 := time.Now()
	p.solveAll(solveFunc(sv, p.solver), in, os.Stdout)
	p.Debugf("%s: took %v", p.solver.Name, time.Since(t0).Round(time.Microsecond))
}

// Solve solves every case in in with the Solve method of slvr named name
// and writes the answers to out. Unlike Run it ignores flags and samples.
func Solve(slvr any, name string, in io.Reader, out io.Writer) {
	vr, ok := extractMethods(slvr)[name]
	if !ok {
		log.Fatalf("no variant %q", name)
	}
	p := attach(slvr, nil)
	p.solver = vr
	p.solveAll(solveFunc(reflect.ValueOf(slvr), vr), in, out)
}

// attach sets the *Puzzle embedded in slvr to a new Puzzle.
func attach(slvr any, samples map[string]sample) *Puzzle {
	p := &Puzzle{samples: samples}
	reflect.ValueOf(slvr).Elem().FieldByName("Puzzle").Set(reflect.ValueOf(p))
	return p
}

func solveFunc(sv reflect.Value, vr variant) func() any {
	return sv.Method(vr.ix).Interface().(func() any)
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

func Or[T any](list ...T) T {
	for _, v := range list {
		if !reflect.ValueOf(v).IsZero() {
			return v
		}
	}
	var zero T
	return zero
}
