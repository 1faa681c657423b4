package spectrum_test

import (
	"fmt"

	"github.com/cwbudde/algo-lieflow/dsp/spectrum"
	"github.com/cwbudde/algo-lieflow/internal/testutil"
)

func ExampleAnalyzer() {
	a, err := spectrum.NewAnalyzer(64)
	if err != nil {
		fmt.Println(err)
		return
	}

	mag, err := a.Magnitude(testutil.DeterministicSine32(8, 64, 1, 64))
	if err != nil {
		fmt.Println(err)
		return
	}

	bin := spectrum.DominantBin(mag)
	fmt.Println(bin, spectrum.BinPeriod(bin, a.Size()))

	// Output:
	// 8 8
}
