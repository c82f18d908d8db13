// Package demo implements the list demonstration program, which walks through
// the operations of the list package and prints the results.
package demo

import (
	"encoding/json"
	"fmt"
	"io"
	"iter"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/kr/pretty"
	"gopkg.in/yaml.v3"

	"github.com/elves/linkedlist/pkg/list"
	"github.com/elves/linkedlist/pkg/logutil"
	"github.com/elves/linkedlist/pkg/prog"
	"github.com/elves/linkedlist/pkg/sys"
)

var logger = logutil.GetLogger("[demo] ")

// Overridden in tests.
var isATTY = sys.IsFileATTY

// Program is the demonstration program.
type Program struct{}

// Run runs the demonstration, writing to fds[1].
func (Program) Run(fds [3]*os.File, f *prog.Flags, args []string) error {
	if len(args) > 0 {
		return prog.BadUsage("arguments are not supported")
	}
	if f.Long < 0 {
		return prog.BadUsage("-long must not be negative")
	}
	bold, err := useColor(f.Color, fds[1])
	if err != nil {
		return err
	}
	p := &printer{out: fds[1], bold: bold}

	final := basics(p)
	if err := encodings(p, f, final); err != nil {
		return err
	}
	if f.Long > 0 {
		long(p, f.Long)
	}
	return nil
}

func useColor(mode string, out *os.File) (bool, error) {
	switch mode {
	case "auto", "":
		return isATTY(out), nil
	case "always":
		return true, nil
	case "never":
		return false, nil
	default:
		return false, prog.BadUsage("invalid -color value: " + mode)
	}
}

type printer struct {
	out  io.Writer
	bold bool
}

func (p *printer) heading(s string) {
	if p.bold {
		fmt.Fprintf(p.out, "\033[1m== %s\033[m\n", s)
	} else {
		fmt.Fprintf(p.out, "== %s\n", s)
	}
}

func (p *printer) printf(format string, args ...any) {
	fmt.Fprintf(p.out, format, args...)
}

// basics runs through construction, inspection and mutation, and returns the
// last list it built.
func basics(p *printer) *list.List[int] {
	p.heading("construction")
	l := list.Of(1, 2, 3)
	l.Prepend(0)
	p.printf("list(debug): %#v\n", l)
	p.printf("list length: %d\n", l.Len())
	p.printf("list(display): %v\n", l)

	v, _ := l.PopFront()
	p.printf("pop_front: %d, list: %v\n", v, l)

	p.heading("indexing")
	vec := []int{11, 12, 13, 14}
	p.printf("vec: %v\n", vec)
	fromVec := list.FromSlice(vec)
	logger.Println("built list of length", fromVec.Len(), "from slice")
	p.printf("list from vec: %v\n", fromVec)
	p.printf("list[2]: %d\n", fromVec.Index(2))

	fromVec.Set(3, 4)
	p.printf("list from vec: %v\n", fromVec)

	p.heading("splicing")
	p.printf("rest from 2: %v\n", fromVec.Rest(2))
	fromVec.SetRest(2, list.Of(300, 400, 500))
	p.printf("list from vec: %v\n", fromVec)

	_, afterFirst, _ := fromVec.Get(0)
	afterFirst.PushNext(list.Of(50, 60))
	p.printf("after push_next at index 1: %v\n", fromVec)

	for e := range fromVec.Ptrs() {
		*e++
	}
	p.printf("after incrementing: %v\n", fromVec)
	return fromVec
}

func encodings(p *printer, f *prog.Flags, l *list.List[int]) error {
	if f.JSON {
		p.heading("json")
		data, err := json.Marshal(l)
		if err != nil {
			return err
		}
		p.printf("%s\n", data)
	}
	if f.YAML {
		p.heading("yaml")
		data, err := yaml.Marshal(l)
		if err != nil {
			return err
		}
		p.printf("%s", data)
	}
	if f.Dump {
		p.heading("dump")
		p.printf("%s\n", pretty.Sprint(l.Slice()))
	}
	return nil
}

// long builds a list with n elements and drops it.
func long(p *printer, n int) {
	p.heading("long list")
	logger.Println("building list of", n, "elements")
	l := list.FromSeq(count(n))
	p.printf("built %s elements\n", humanize.Comma(int64(l.Len())))
	sum := 0
	for v := range l.Drain() {
		sum += v
	}
	p.printf("sum of elements: %s\n", humanize.Comma(int64(sum)))
	logger.Println("dropped list of", n, "elements")
}

func count(n int) iter.Seq[int] {
	return func(yield func(int) bool) {
		for i := 0; i < n; i++ {
			if !yield(i) {
				return
			}
		}
	}
}
