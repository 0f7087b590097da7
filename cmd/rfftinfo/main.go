// Command rfftinfo prints the half spectrum of a real signal, optionally its
// Hermitian expansion, and the error of the forward/inverse round trip.
//
// Usage:
//
//	rfftinfo [flags] [value ...]
//
// Without values it transforms a deterministic test signal of -size samples.
//
// Examples:
//
//	rfftinfo 1 2 3 4
//	rfftinfo -full -size 9
//	rfftinfo -cols 4 1 2 3 4 5 6 7 8
//	rfftinfo -ls 2 -size 32
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"math"
	"math/cmplx"
	"os"
	"strconv"
	"text/tabwriter"

	"gonum.org/v1/gonum/floats"

	"github.com/cwbudde/algo-gpfft/dsp/core"
	"github.com/cwbudde/algo-gpfft/dsp/rfft"
	"github.com/cwbudde/algo-gpfft/stats/gp"
)

type config struct {
	size        int
	cols        int
	full        bool
	lengthScale float64
	sigma       float64
}

func main() {
	var cfg config
	flag.IntVar(&cfg.size, "size", 16, "length of the generated test signal when no values are given")
	flag.IntVar(&cfg.cols, "cols", 0, "reshape the input to rows x cols and use the 2-D transform")
	flag.BoolVar(&cfg.full, "full", false, "also print the Hermitian-expanded full spectrum")
	flag.Float64Var(&cfg.lengthScale, "ls", 0, "heat-kernel length scale in samples; > 0 prints the GP log density")
	flag.Float64Var(&cfg.sigma, "sigma", 1, "heat-kernel marginal standard deviation")
	verbose := flag.Bool("v", false, "verbose diagnostics on stderr")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: rfftinfo [flags] [value ...]\n\n")
		fmt.Fprintf(os.Stderr, "Prints the half spectrum of a real signal and the round-trip error.\n")
		fmt.Fprintf(os.Stderr, "Without values, transforms a deterministic test signal of -size samples.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  rfftinfo 1 2 3 4\n")
		fmt.Fprintf(os.Stderr, "  rfftinfo -full -size 9\n")
		fmt.Fprintf(os.Stderr, "  rfftinfo -cols 4 1 2 3 4 5 6 7 8\n")
	}
	flag.Parse()

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	signal, err := parseSignal(flag.Args(), cfg.size)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(2)
	}
	logger.Debug("input", "n", len(signal), "from_args", flag.NArg() > 0)

	if cfg.cols > 0 {
		err = run2(os.Stdout, logger, signal, cfg)
	} else {
		err = run1(os.Stdout, logger, signal, cfg)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func parseSignal(args []string, size int) ([]float64, error) {
	if len(args) == 0 {
		if size < 1 {
			return nil, fmt.Errorf("size must be >= 1, got %d", size)
		}
		return testSignal(size), nil
	}
	out := make([]float64, len(args))
	for i, a := range args {
		v, err := strconv.ParseFloat(a, 64)
		if err != nil {
			return nil, fmt.Errorf("value %d: %w", i, err)
		}
		out[i] = v
	}
	return out, nil
}

// testSignal is a DC offset plus two harmonics and a ramp.
func testSignal(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		x := float64(i) / float64(n)
		out[i] = 0.5 + math.Sin(2*math.Pi*x) + 0.25*math.Cos(6*math.Pi*x) + x
	}
	return out
}

func run1(w io.Writer, logger *slog.Logger, signal []float64, cfg config) error {
	n := len(signal)
	logger.Debug("forward", "n", n, "backend", rfft.Backend(n))

	half, err := rfft.Forward(signal)
	if err != nil {
		return err
	}
	if err := printCoefficients(w, "half spectrum", half); err != nil {
		return err
	}
	if cfg.full {
		full, err := rfft.Expand(half, n)
		if err != nil {
			return err
		}
		if err := printCoefficients(w, "full spectrum", full); err != nil {
			return err
		}
	}

	back, err := rfft.Inverse(half, n)
	if err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "\nn=%d backend=%s round-trip max error=%.3g\n",
		n, rfft.Backend(n), floats.Distance(back, signal, math.Inf(1))); err != nil {
		return err
	}

	if cfg.lengthScale > 0 {
		return printLogProb(w, logger, signal, cfg)
	}
	return nil
}

func printLogProb(w io.Writer, logger *slog.Logger, signal []float64, cfg config) error {
	n := len(signal)
	cov, err := gp.HeatCovariance(n, cfg.sigma, cfg.lengthScale, float64(n))
	if err != nil {
		return err
	}
	scale, err := gp.RfftScale(cov)
	if err != nil {
		return err
	}
	logger.Debug("gp scale", "min", floats.Min(scale), "max", floats.Max(scale))

	loc := make([]float64, n)
	lp, err := gp.LogProbRfft(signal, loc, scale)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "heat-kernel GP log density (sigma=%g, length scale=%g): %.6f\n",
		cfg.sigma, cfg.lengthScale, lp)
	return err
}

func printCoefficients(w io.Writer, title string, coeffs []complex128) error {
	if _, err := fmt.Fprintf(w, "%s (%d coefficients)\n", title, len(coeffs)); err != nil {
		return err
	}
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	if _, err := fmt.Fprintf(tw, "k\tre\tim\t|X|\t\n"); err != nil {
		return err
	}
	for k, c := range coeffs {
		if _, err := fmt.Fprintf(tw, "%d\t%.6f\t%.6f\t%.6f\t\n", k, real(c), imag(c), cmplx.Abs(c)); err != nil {
			return err
		}
	}
	return tw.Flush()
}

func run2(w io.Writer, logger *slog.Logger, signal []float64, cfg config) error {
	if cfg.lengthScale > 0 {
		return errors.New("-ls is only supported for one-dimensional input")
	}
	if len(signal)%cfg.cols != 0 {
		return fmt.Errorf("%d values do not fill rows of %d columns", len(signal), cfg.cols)
	}
	rows := len(signal) / cfg.cols
	grid, err := core.Reshape(signal, rows, cfg.cols)
	if err != nil {
		return err
	}
	logger.Debug("forward2", "rows", rows, "cols", cfg.cols)

	half, err := rfft.Forward2(grid)
	if err != nil {
		return err
	}
	if err := printMatrix(w, "half spectrum", half); err != nil {
		return err
	}
	if cfg.full {
		full, err := rfft.Expand2(half, cfg.cols)
		if err != nil {
			return err
		}
		if err := printMatrix(w, "full spectrum", full); err != nil {
			return err
		}
	}

	back, err := rfft.Inverse2(half, cfg.cols)
	if err != nil {
		return err
	}
	flat, err := core.Ravel(back)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "\nshape=%dx%d round-trip max error=%.3g\n",
		rows, cfg.cols, floats.Distance(flat, signal, math.Inf(1)))
	return err
}

func printMatrix(w io.Writer, title string, m [][]complex128) error {
	s, err := core.FormatComplexMatrix(m)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "%s (%dx%d)\n%s\n", title, len(m), len(m[0]), s)
	return err
}
