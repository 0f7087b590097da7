package rfft

import (
	"fmt"
	"testing"

	"github.com/cwbudde/algo-gpfft/internal/testutil"
)

func BenchmarkForward(b *testing.B) {
	for _, n := range []int{64, 1000, 1024, 4096} {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			y := testutil.DeterministicNoise(1, 1, n)
			b.SetBytes(int64(n * 8))
			b.ResetTimer()
			for range b.N {
				_, _ = Forward(y)
			}
		})
	}
}

func BenchmarkInverse(b *testing.B) {
	for _, n := range []int{64, 1000, 1024, 4096} {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			half, err := Forward(testutil.DeterministicNoise(1, 1, n))
			if err != nil {
				b.Fatal(err)
			}
			b.SetBytes(int64(n * 8))
			b.ResetTimer()
			for range b.N {
				_, _ = Inverse(half, n)
			}
		})
	}
}

func BenchmarkInverse2(b *testing.B) {
	for _, s := range [][2]int{{32, 32}, {64, 100}, {128, 128}} {
		b.Run(fmt.Sprintf("%dx%d", s[0], s[1]), func(b *testing.B) {
			half, err := Forward2(testutil.NoiseMatrix(1, 1, s[0], s[1]))
			if err != nil {
				b.Fatal(err)
			}
			b.ResetTimer()
			for range b.N {
				_, _ = Inverse2(half, s[1])
			}
		})
	}
}
