package length_test

import (
	"fmt"

	"github.com/katalvlaran/lsys/grammar"
	"github.com/katalvlaran/lsys/length"
)

// ExampleLength computes the Koch island length after 100 generations,
// a number with far more digits than any fixed-width integer holds.
func ExampleLength() {
	g := grammar.New("F-F-F-F", map[rune]string{'F': "F-F+F+FF-F-F+F"})

	n1, _ := length.Length(g, 1)
	n100, err := length.Length(g, 100)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println("length(1) =", n1)
	fmt.Println("digits of length(100) =", len(n100.String()))
	// Output:
	// length(1) = 59
	// digits of length(100) = 92
}

// ExampleEngine_Lengths prints the Fibonacci growth sequence.
func ExampleEngine_Lengths() {
	e, err := length.New(grammar.New("A", map[rune]string{'A': "AB", 'B': "A"}))
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	seq, _ := e.Lengths(9)
	fmt.Println(seq)
	// Output:
	// [1 2 3 5 8 13 21 34 55 89]
}
