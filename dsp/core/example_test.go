package core_test

import (
	"fmt"

	"github.com/cwbudde/algo-cic/dsp/core"
)

func ExampleApplyProcessorOptions() {
	cfg := core.ApplyProcessorOptions(
		core.WithSampleRate(2_822_400),
	)

	fmt.Printf("sampleRate=%.0f\n", cfg.SampleRate)

	// Output:
	// sampleRate=2822400
}

func ExampleFloorLog2() {
	fmt.Println(core.FloorLog2(64), core.FloorLog2(100))

	// Output:
	// 6 6
}
