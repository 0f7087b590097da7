package spectrum

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/cwbudde/algo-gpfft/internal/testutil"
)

func TestGoertzelMatchesDirectDFT(t *testing.T) {
	for _, n := range []int{1, 2, 3, 8, 13, 64} {
		sig := testutil.DeterministicNoise(int64(n), 1, n)
		want := testutil.DirectDFT(sig)
		for k := 0; k < n; k++ {
			got, err := Coefficient(sig, k)
			if err != nil {
				t.Fatalf("n=%d k=%d: %v", n, k, err)
			}
			if cmplx.Abs(got-want[k]) > 1e-9 {
				t.Fatalf("n=%d k=%d: got %v want %v", n, k, got, want[k])
			}
		}
	}
}

func TestGoertzelPower(t *testing.T) {
	sig := testutil.DeterministicSine(4, 1, 32)
	g, err := NewGoertzel(32, 4)
	if err != nil {
		t.Fatalf("NewGoertzel: %v", err)
	}
	g.ProcessBlock(sig)

	c := g.Coefficient()
	wantP := real(c)*real(c) + imag(c)*imag(c)
	if math.Abs(g.Power()-wantP) > 1e-9*wantP {
		t.Fatalf("Power=%v want=%v", g.Power(), wantP)
	}
	// A whole-cycle sine of amplitude 1 puts n/2 into its bin.
	if math.Abs(cmplx.Abs(c)-16) > 1e-9 {
		t.Fatalf("|X[4]|=%v want=16", cmplx.Abs(c))
	}
}

func TestGoertzelSampleAndBlockAgree(t *testing.T) {
	sig := testutil.DeterministicNoise(3, 1, 20)
	a, _ := NewGoertzel(20, 3)
	b, _ := NewGoertzel(20, 3)
	a.ProcessBlock(sig)
	for _, x := range sig {
		b.ProcessSample(x)
	}
	if cmplx.Abs(a.Coefficient()-b.Coefficient()) > 1e-12 {
		t.Fatalf("block=%v sample=%v", a.Coefficient(), b.Coefficient())
	}

	a.Reset()
	if a.Coefficient() != 0 {
		t.Fatalf("Coefficient after Reset=%v want=0", a.Coefficient())
	}
	if n, k := a.Bin(); n != 20 || k != 3 {
		t.Fatalf("Bin()=(%d,%d) want=(20,3)", n, k)
	}
}

func TestNewGoertzelValidation(t *testing.T) {
	if _, err := NewGoertzel(0, 0); err == nil {
		t.Fatal("expected error for zero length")
	}
	if _, err := NewGoertzel(8, 8); err == nil {
		t.Fatal("expected error for bin out of range")
	}
	if _, err := NewGoertzel(8, -1); err == nil {
		t.Fatal("expected error for negative bin")
	}
}
