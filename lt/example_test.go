package lt_test

import (
	"context"
	"fmt"
	"math"

	"github.com/katalvlaran/kspace/interaction"
	"github.com/katalvlaran/kspace/kpath"
	"github.com/katalvlaran/kspace/lattice"
	"github.com/katalvlaran/kspace/lt"
)

// ExampleCompute evaluates the square-lattice Heisenberg band on Γ→X.
func ExampleCompute() {
	path, _ := kpath.New([]lattice.Vec{{0, 0}, {math.Pi, 0}}, []string{"Γ", "X"}, 2)
	bs, err := lt.Compute(context.Background(), lattice.Square(lattice.Label("J")), path,
		interaction.Heisenberg, lt.DefaultOptions())
	if err != nil {
		fmt.Println(err)
		return
	}
	for j, e := range bs.Bands[0][0] {
		fmt.Printf("sample %d: %.3f (constraint %.3f)\n", j, e, bs.Constraints[0][0][j])
	}
	// Output:
	// sample 0: 2.000 (constraint 0.000)
	// sample 1: 1.000 (constraint 0.000)
}
