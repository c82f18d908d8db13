// Package prog provides the entry point to the list demonstration program.
package prog

// This package parses the command-line flags, sets up logging and calls the
// Program.

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/elves/linkedlist/pkg/logutil"
)

// Flags keeps command-line flags.
type Flags struct {
	Log string

	Help bool

	JSON, YAML, Dump bool

	Long int

	Color string
}

func newFlagSet(f *Flags) *flag.FlagSet {
	fs := flag.NewFlagSet("listdemo", flag.ContinueOnError)
	// Error and usage will be printed explicitly.
	fs.SetOutput(io.Discard)

	fs.StringVar(&f.Log, "log", "", "a file to write debug log to")

	fs.BoolVar(&f.Help, "help", false, "show usage help and quit")

	fs.BoolVar(&f.JSON, "json", false, "also print the final list as JSON")
	fs.BoolVar(&f.YAML, "yaml", false, "also print the final list as YAML")
	fs.BoolVar(&f.Dump, "dump", false, "also print the elements of the final list as a Go value")

	fs.IntVar(&f.Long, "long", 0, "build and drop a list with this many elements")

	fs.StringVar(&f.Color, "color", "auto", "when to bold headings: auto, always or never")

	return fs
}

func usage(out io.Writer, fs *flag.FlagSet) {
	fmt.Fprintln(out, "Usage: listdemo [flags]")
	fmt.Fprintln(out, "Supported flags:")
	fs.SetOutput(out)
	fs.PrintDefaults()
}

// Run parses command-line flags and runs the program. It returns the exit
// status of the program.
func Run(fds [3]*os.File, args []string, p Program) int {
	f := &Flags{}
	fs := newFlagSet(f)
	err := fs.Parse(args[1:])
	if err != nil {
		if err == flag.ErrHelp {
			// -h is not defined, but (*flag.FlagSet).Parse returns ErrHelp
			// for it; report it like any other undefined flag.
			fmt.Fprintln(fds[2], "flag provided but not defined: -h")
		} else {
			fmt.Fprintln(fds[2], err)
		}
		usage(fds[2], fs)
		return 2
	}

	if f.Log != "" {
		err = logutil.SetOutputFile(f.Log)
		if err != nil {
			fmt.Fprintln(fds[2], err)
		}
	}

	if f.Help {
		usage(fds[1], fs)
		return 0
	}

	err = p.Run(fds, f, fs.Args())
	if err == nil {
		return 0
	}
	if msg := err.Error(); msg != "" {
		fmt.Fprintln(fds[2], msg)
	}
	switch err := err.(type) {
	case badUsageError:
		usage(fds[2], fs)
	case exitError:
		return err.exit
	}
	return 2
}

// BadUsage returns a special error that may be returned by Program.Run. It
// causes the main function to print out a message, the usage information and
// exit with 2.
func BadUsage(msg string) error { return badUsageError{msg} }

type badUsageError struct{ msg string }

func (e badUsageError) Error() string { return e.msg }

// Exit returns a special error that may be returned by Program.Run. It causes
// the main function to exit with the given code without printing any error
// messages. Exit(0) returns nil.
func Exit(exit int) error {
	if exit == 0 {
		return nil
	}
	return exitError{exit}
}

type exitError struct{ exit int }

func (e exitError) Error() string { return "" }

// Program represents a program run by Run.
type Program interface {
	// Run runs the program.
	Run(fds [3]*os.File, f *Flags, args []string) error
}
