package fourier

import (
	"strconv"
	"testing"

	"github.com/cwbudde/algo-denoise/internal/testutil"
)

func BenchmarkForward(b *testing.B) {
	for _, n := range []int{1024, 4096, 16384} {
		x := testutil.DeterministicComplex(1, 1, n)
		for name, e := range engines() {
			b.Run(name+"/"+strconv.Itoa(n), func(b *testing.B) {
				b.ReportAllocs()
				for i := 0; i < b.N; i++ {
					_, _ = e.Forward(x)
				}
			})
		}
	}
}
