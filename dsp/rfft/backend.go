package rfft

import (
	"fmt"
	"sync"

	algofft "github.com/MeKo-Christian/algo-fft"
	"gonum.org/v1/gonum/dsp/fourier"
)

// transformer performs complex DFTs of a single length. Forward is
// unnormalized and Inverse scales by 1/n, matching algo-fft plans.
type transformer struct {
	n       int
	plan    *algofft.Plan[complex128]
	fftpack *fourier.CmplxFFT
	buf     []complex128
}

func newTransformer(n int) *transformer {
	t := &transformer{n: n, buf: make([]complex128, n)}
	if n == 1 {
		return t
	}

	if isPowerOf2(n) {
		plan, err := algofft.NewPlan64(n)
		if err == nil {
			t.plan = plan
			return t
		}
	}

	// Mixed-radix lengths go to FFTPACK, which handles any n.
	t.fftpack = fourier.NewCmplxFFT(n)
	return t
}

func isPowerOf2(n int) bool {
	return n > 0 && n&(n-1) == 0
}

// Forward writes the DFT of src into dst. dst and src must have length n
// and must not overlap.
func (t *transformer) Forward(dst, src []complex128) error {
	switch {
	case t.plan != nil:
		if err := t.plan.Forward(dst, src); err != nil {
			return fmt.Errorf("rfft: forward FFT failed: %w", err)
		}
	case t.fftpack != nil:
		t.fftpack.Coefficients(dst, src)
	default:
		copy(dst, src)
	}
	return nil
}

// Inverse writes the normalized inverse DFT of src into dst.
func (t *transformer) Inverse(dst, src []complex128) error {
	switch {
	case t.plan != nil:
		if err := t.plan.Inverse(dst, src); err != nil {
			return fmt.Errorf("rfft: inverse FFT failed: %w", err)
		}
	case t.fftpack != nil:
		t.fftpack.Sequence(dst, src)
		scale := complex(1/float64(t.n), 0)
		for i := range dst {
			dst[i] *= scale
		}
	default:
		copy(dst, src)
	}
	return nil
}

// InPlace transforms data in place using the transformer's scratch buffer.
func (t *transformer) InPlace(data []complex128, inverse bool) error {
	var err error
	if inverse {
		err = t.Inverse(t.buf, data)
	} else {
		err = t.Forward(t.buf, data)
	}
	if err != nil {
		return err
	}
	copy(data, t.buf)
	return nil
}

// Backend reports which implementation serves transforms of length n:
// "algo-fft" for powers of two, "fftpack" for other lengths and "identity"
// for n == 1.
func Backend(n int) string {
	t := acquire(n)
	defer release(t)
	switch {
	case t.plan != nil:
		return "algo-fft"
	case t.fftpack != nil:
		return "fftpack"
	default:
		return "identity"
	}
}

// pools maps a transform length to a *sync.Pool of transformers. Plans carry
// scratch state, so each goroutine works on its own transformer.
var pools sync.Map

func poolFor(n int) *sync.Pool {
	if p, ok := pools.Load(n); ok {
		return p.(*sync.Pool)
	}
	p, _ := pools.LoadOrStore(n, &sync.Pool{
		New: func() any { return newTransformer(n) },
	})
	return p.(*sync.Pool)
}

func acquire(n int) *transformer {
	return poolFor(n).Get().(*transformer)
}

func release(t *transformer) {
	poolFor(t.n).Put(t)
}

// fft1 returns the DFT (or normalized inverse DFT) of src in a new slice.
func fft1(src []complex128, inverse bool) ([]complex128, error) {
	t := acquire(len(src))
	defer release(t)

	dst := make([]complex128, len(src))
	var err error
	if inverse {
		err = t.Inverse(dst, src)
	} else {
		err = t.Forward(dst, src)
	}
	if err != nil {
		return nil, err
	}
	return dst, nil
}

// fft2 transforms a rectangular matrix in place: every row, then every column.
func fft2(data [][]complex128, inverse bool) error {
	rows, cols := len(data), len(data[0])

	rt := acquire(cols)
	defer release(rt)
	for _, row := range data {
		if err := rt.InPlace(row, inverse); err != nil {
			return err
		}
	}

	ct := acquire(rows)
	defer release(ct)
	col := make([]complex128, rows)
	for j := 0; j < cols; j++ {
		for i := range data {
			col[i] = data[i][j]
		}
		if err := ct.InPlace(col, inverse); err != nil {
			return err
		}
		for i := range data {
			data[i][j] = col[i]
		}
	}
	return nil
}
