package cic

import (
	"fmt"
	"testing"

	"github.com/cwbudde/algo-cic/internal/testutil"
)

func BenchmarkProcessSample(b *testing.B) {
	f := MustNew(64, 5)

	var y int32
	for b.Loop() {
		if v, ok := f.ProcessSample(1); ok {
			y = v
		}
		if v, ok := f.ProcessSample(-1); ok {
			y = v
		}
	}

	_ = y
}

func BenchmarkProcessBlockTo(b *testing.B) {
	for _, cfg := range []struct{ m, n int }{{16, 3}, {64, 5}} {
		b.Run(fmt.Sprintf("M=%d/N=%d", cfg.m, cfg.n), func(b *testing.B) {
			f := MustNew(cfg.m, cfg.n)

			src := testutil.PDM(0.3, 4096)
			dst := make([]int32, len(src)/cfg.m+1)

			b.SetBytes(int64(len(src) * 4))
			b.ResetTimer()

			for range b.N {
				f.ProcessBlockTo(dst, src)
			}
		})
	}
}
