package cic_test

import (
	"fmt"

	"github.com/cwbudde/algo-cic/dsp/cic"
	"github.com/cwbudde/algo-cic/dsp/core"
)

func ExampleFilter_ProcessSample() {
	f := cic.MustNew(4, 2)

	for _, x := range []int32{0, 1, 2, 3, 2, -1, -2, 1} {
		if y, ok := f.ProcessSample(x); ok {
			fmt.Println(y)
		} else {
			fmt.Println("-")
		}
	}
	// Output:
	// -
	// -
	// -
	// 10
	// -
	// -
	// -
	// 16
}

func ExampleFilter_ProcessBlock() {
	f := cic.MustNew(4, 2)

	in := make([]int32, 16)
	for i := range in {
		in[i] = 1
	}

	out := f.ProcessBlock(in)
	fmt.Println(out, f.Normalize(out[len(out)-1]))
	// Output:
	// [10 16 16 16] 1
}

func ExampleNew() {
	_, err := cic.New(0, 3)
	fmt.Println(err)

	f, _ := cic.New(64, 5, core.WithSampleRate(3_072_000))
	fmt.Println(f, f.OutputRate())
	// Output:
	// cic: invalid decimation factor: 0
	// cic.Filter(M=64, N=5, growth=30 bits) 48000
}

func ExampleBitGrowth() {
	fmt.Println(cic.BitGrowth(64, 3), cic.BitGrowth(32, 5), cic.BitGrowth(8, 5))
	// Output:
	// 18 25 15
}

func ExampleKernel() {
	kernel, _ := cic.Kernel(4, 2)
	fmt.Println(kernel)
	// Output:
	// [1 2 3 4 3 2 1]
}

func ExampleFilter_MagnitudeDB() {
	f := cic.MustNew(64, 5, core.WithSampleRate(3_072_000))
	fmt.Printf("droop at %.0f Hz: %.2f dB\n", f.OutputRate()/2, f.MagnitudeDB(f.OutputRate()/2))
	// Output:
	// droop at 24000 Hz: -19.61 dB
}
