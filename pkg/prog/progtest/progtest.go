// Package progtest contains utilities for testing [prog.Program]
// implementations.
package progtest

import (
	"io"
	"os"
	"testing"

	"github.com/elves/linkedlist/pkg/prog"
)

// Result keeps the outcome of running a program.
type Result struct {
	Exit   int
	Stdout string
	Stderr string
}

// Run runs p through prog.Run, with args following the program name. Stdin is
// empty; stdout and stderr are captured.
func Run(t *testing.T, p prog.Program, args ...string) Result {
	t.Helper()
	r0, w0 := pipe(t)
	w0.Close()
	r1, w1 := pipe(t)
	r2, w2 := pipe(t)

	stdout := make(chan string, 1)
	stderr := make(chan string, 1)
	go func() { stdout <- readAll(r1) }()
	go func() { stderr <- readAll(r2) }()

	args = append([]string{"listdemo"}, args...)
	exit := prog.Run([3]*os.File{r0, w1, w2}, args, p)
	w1.Close()
	w2.Close()
	r0.Close()
	return Result{exit, <-stdout, <-stderr}
}

func pipe(t *testing.T) (*os.File, *os.File) {
	t.Helper()
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatal(err)
	}
	return r, w
}

func readAll(r *os.File) string {
	defer r.Close()
	b, _ := io.ReadAll(r)
	return string(b)
}
