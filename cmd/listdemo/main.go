// Listdemo walks through the operations of the linked list library and prints
// the results.
package main

import (
	"os"

	"github.com/elves/linkedlist/pkg/demo"
	"github.com/elves/linkedlist/pkg/prog"
)

func main() {
	os.Exit(prog.Run(
		[3]*os.File{os.Stdin, os.Stdout, os.Stderr}, os.Args, demo.Program{}))
}
