package main

import (
	"fmt"
	"io"
	"os"

	"github.com/marcodamonte/largest/largest"
)

// Demonstrates every way the largest package finds the maximum of a
// slice: fixed-type and generic, by value and by reference.
//
// Run:
//
//	go run .
func main() {
	run(os.Stdout)
}

// run prints one line per invocation, in the form "<label> is <value>".
func run(w io.Writer) {
	numbers := []int{34, 50, 25, 100, 65}
	chars := []rune{'y', 'm', 'a', 'q'}

	// Monomorphic variants.
	fmt.Fprintf(w, "largest.Int is %d\n", largest.Int(numbers))
	fmt.Fprintf(w, "largest.Rune is %c\n", largest.Rune(chars))
	fmt.Fprintf(w, "largest.RuneRef is %c\n", *largest.RuneRef(chars))

	// Generic, by reference. One function, both element types.
	fmt.Fprintf(w, "largest.Ref is %c\n", *largest.Ref(chars))
	fmt.Fprintf(w, "largest.Ref is %d\n", *largest.Ref(numbers))

	// Generic, by value.
	fmt.Fprintf(w, "largest.Of is %c\n", largest.Of(chars))
	fmt.Fprintf(w, "largest.Of is %d\n", largest.Of(numbers))
}
