// Package aoc holds the shared toolkit for the Advent of Code 2023
// solutions: grids, graphs, containers, small math helpers and the runner
// used by the per-day binaries. (forked from bradfitz/aoc)
package aoc

import (
	"bytes"
	"errors"
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"io"
	"os"
	"reflect"
	"regexp"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/exp/maps"
)

type sample struct {
	input string
	want  string
}

var sampleRx = regexp.MustCompile(`(?sm)^\s*want=([^\n]*)(?:\s+(.+\n))?\s*`)

func parseSample(comment string) (sample, bool) {
	text := strings.TrimPrefix(comment, "//")
	if v, ok := strings.CutPrefix(text, "/*"); ok {
		text = strings.TrimSuffix(v, "*/")
	}
	if m := sampleRx.FindStringSubmatch(text); m != nil {
		s := sample{
			want:  m[1],
			input: m[2],
		}
		return s, true
	}
	var zero sample
	return zero, false
}

// extractSamples returns the samples found in the doc comments of the
// functions declared in src, keyed by function name. A sample with no
// input reuses the input of the previous sample.
func extractSamples(src []byte) (map[string]sample, error) {
	fs := token.NewFileSet()
	f, err := parser.ParseFile(fs, "main.go", src, parser.ParseComments)
	if err != nil {
		return nil, fmt.Errorf("parsing source to extract samples: %w", err)
	}
	var lastInput string
	samples := make(map[string]sample)
	for _, d := range f.Decls {
		fd, ok := d.(*ast.FuncDecl)
		if !ok || fd.Doc == nil {
			continue
		}
		funcName := fd.Name.Name
		for _, c := range fd.Doc.List {
			s, ok := parseSample(c.Text)
			if ok {
				s.input = Or(s.input, lastInput)
				samples[funcName] = s
				lastInput = s.input
				break
			}
		}
	}
	return samples, nil
}

// Puzzle is embedded by solvers. It gives part methods access to the
// puzzle input and parameters.
type Puzzle struct {
	SampleMode bool

	cfg     Config
	input   []byte
	solver  partSolver
	samples map[string]sample
}

// Input returns the puzzle input, or the sample input of the running part
// in sample mode.
func (p *Puzzle) Input() []byte {
	if p.SampleMode {
		return []byte(p.samples[p.solver.Name].input)
	}
	return p.input
}

// Reader returns a reader over Input.
func (p *Puzzle) Reader() io.Reader {
	return bytes.NewReader(p.Input())
}

// Param decodes the named parameter from the config file into v. In
// sample mode, and when the parameter is not configured, v is left as is.
func (p *Puzzle) Param(name string, v any) error {
	if p.SampleMode {
		return nil
	}
	return p.cfg.param(name, v)
}

type day struct {
	day   int
	parts []partSolver
}

type partSolver struct {
	fn   func() (any, error)
	Part string
	Name string
}

var methodRx = regexp.MustCompile(`^D(\d+)p(\d+.*)$`)

// extractMethods finds the methods of x named D{day}p{part}. The methods
// must have the signature func() (any, error).
func extractMethods(x any) (map[int]day, error) {
	v := reflect.ValueOf(x).Elem()
	vt := v.Type()
	byDays := map[int][]partSolver{}
	for i := 0; i < vt.NumMethod(); i++ {
		mn := vt.Method(i).Name
		matches := methodRx.FindStringSubmatch(mn)
		if len(matches) != 3 {
			continue
		}
		m, ok := v.Method(i).Interface().(func() (any, error))
		if !ok {
			return nil, fmt.Errorf("solver: %s has type %v; want func() (any, error)", mn, v.Method(i).Type())
		}
		d, err := strconv.Atoi(matches[1])
		if err != nil {
			return nil, err
		}
		byDays[d] = append(byDays[d], partSolver{
			fn:   m,
			Part: matches[2],
			Name: mn,
		})
	}
	days := make(map[int]day, len(byDays))
	for d, parts := range byDays {
		slices.SortFunc(parts, func(i, j partSolver) int {
			return strings.Compare(i.Part, j.Part)
		})
		days[d] = day{parts: parts, day: d}
	}
	return days, nil
}

// setup attaches a fresh Puzzle to slvr's embedded *Puzzle field and
// collects its parts and samples.
func setup(src []byte, slvr any) (*Puzzle, []day, error) {
	samples, err := extractSamples(src)
	if err != nil {
		return nil, nil, err
	}
	v := reflect.ValueOf(slvr)
	if v.Kind() != reflect.Pointer || v.Elem().Kind() != reflect.Struct {
		return nil, nil, fmt.Errorf("solver: got %T; want pointer to struct", slvr)
	}
	p := &Puzzle{samples: samples}
	f := v.Elem().FieldByName("Puzzle")
	if !f.IsValid() || f.Type() != reflect.TypeOf(p) {
		return nil, nil, fmt.Errorf("solver %T does not embed *aoc.Puzzle", slvr)
	}
	f.Set(reflect.ValueOf(p))
	byDay, err := extractMethods(slvr)
	if err != nil {
		return nil, nil, err
	}
	dayNums := maps.Keys(byDay)
	slices.Sort(dayNums)
	days := make([]day, 0, len(dayNums))
	for _, d := range dayNums {
		days = append(days, byDay[d])
	}
	return p, days, nil
}

// Run solves every part of slvr against the puzzle input and prints one
// answer per line. src is the source of the calling file, from which the
// part samples are read. Any failure is fatal.
func Run(src []byte, slvr any) {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
		With().
		Timestamp().
		Logger()

	cfg, err := LoadConfig(ConfigFile)
	if err != nil {
		logger.Fatal().Err(err).Msg("loading config")
	}
	lvl, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		logger.Warn().Str("log_level", cfg.LogLevel).Msg("unknown log level, using info")
		lvl = zerolog.InfoLevel
	}
	logger = logger.Level(lvl)

	p, days, err := setup(src, slvr)
	if err != nil {
		logger.Fatal().Err(err).Msg("registering solver")
	}
	p.cfg = cfg
	p.input, err = os.ReadFile(cfg.Input)
	if err != nil {
		logger.Fatal().Err(err).Str("file", cfg.Input).Msg("reading input")
	}

	for _, d := range days {
		for _, ps := range d.parts {
			p.solver = ps
			t0 := time.Now()
			got, err := ps.fn()
			if err != nil {
				logger.Fatal().Err(err).Int("day", d.day).Str("part", ps.Part).Msg("solving")
			}
			fmt.Println(got)
			logger.Debug().
				Int("day", d.day).
				Str("part", ps.Part).
				Dur("took", time.Since(t0).Round(time.Microsecond)).
				Msg("solved")
		}
	}
}

// CheckSamples runs every part of slvr that has a sample in src and
// reports the parts whose answer differs from the sample's want line.
func CheckSamples(src []byte, slvr any) error {
	p, days, err := setup(src, slvr)
	if err != nil {
		return err
	}
	p.SampleMode = true
	var errs []error
	checked := 0
	for _, d := range days {
		for _, ps := range d.parts {
			s, ok := p.samples[ps.Name]
			if !ok {
				continue
			}
			checked++
			p.solver = ps
			got, err := ps.fn()
			if err != nil {
				errs = append(errs, fmt.Errorf("%s: %w", ps.Name, err))
				continue
			}
			if fmt.Sprint(got) != s.want {
				errs = append(errs, fmt.Errorf("%s: got %v; want %v", ps.Name, got, s.want))
			}
		}
	}
	if checked == 0 {
		return errors.New("no samples found")
	}
	return errors.Join(errs...)
}

// Or returns the first non-zero value of list.
func Or[T any](list ...T) T {
	for _, v := range list {
		if !reflect.ValueOf(v).IsZero() {
			return v
		}
	}
	var zero T
	return zero
}
