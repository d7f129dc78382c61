package lowess

import (
	"errors"
	"testing"

	"github.com/uyouii/lowess-smoothing/common"
)

func TestFitWindowDegreeZeroIsWeightedMean(t *testing.T) {
	xs := []float64{0, 1, 2, 3, 4}
	ys := []float64{5, 1, 4, 2, 8}
	center := 2

	got, err := fitWindow(xs, ys, 0, 4, center, 0)
	if err != nil {
		t.Fatalf("fitWindow: %v", err)
	}

	weights := tricubeWeights(xs, 0, 4, center)
	var num, den float64
	for j := range ys {
		num += weights[j] * ys[j]
		den += weights[j]
	}
	if !almostEqual(got, num/den, 1e-12) {
		t.Errorf("degree 0 fit: got %v, want weighted mean %v", got, num/den)
	}
}

func TestFitWindowReproducesLine(t *testing.T) {
	xs := []float64{1, 2, 3, 4, 5}
	ys := make([]float64, len(xs))
	for i, x := range xs {
		ys[i] = 2*x + 1
	}

	for center := 0; center < len(xs); center++ {
		got, err := fitWindow(xs, ys, 0, len(xs)-1, center, 1)
		if err != nil {
			t.Fatalf("center %d: %v", center, err)
		}
		if !almostEqual(got, ys[center], 1e-9) {
			t.Errorf("center %d: got %v, want %v", center, got, ys[center])
		}
	}
}

func TestFitWindowReproducesParabola(t *testing.T) {
	xs := []float64{-2, -1, 0, 1, 2}
	ys := make([]float64, len(xs))
	for i, x := range xs {
		ys[i] = x * x
	}

	for center := 0; center < len(xs); center++ {
		got, err := fitWindow(xs, ys, 0, len(xs)-1, center, 2)
		if err != nil {
			t.Fatalf("center %d: %v", center, err)
		}
		if !almostEqual(got, ys[center], 1e-9) {
			t.Errorf("center %d: got %v, want %v", center, got, ys[center])
		}
	}
}

func TestFitWindowSinglePointDegenerates(t *testing.T) {
	xs := []float64{1, 2, 3, 4}
	ys := []float64{7, 9, 11, 13}

	for _, degree := range []int{0, 1, 2, 5} {
		got, err := fitWindow(xs, ys, 2, 2, 2, degree)
		if err != nil {
			t.Fatalf("degree %d: %v", degree, err)
		}
		if got != ys[2] {
			t.Errorf("degree %d: got %v, want input value %v", degree, got, ys[2])
		}
	}
}

func TestFitWindowUnderdetermined(t *testing.T) {
	cases := []struct {
		name   string
		xs, ys []float64
		degree int
	}{
		{"two distinct x for quadratic", []float64{1, 1, 2}, []float64{1, 2, 3}, 2},
		{"one distinct x for linear", []float64{2, 2, 2}, []float64{1, 2, 3}, 1},
		{"two points for quadratic", []float64{1, 2}, []float64{1, 2}, 2},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			center := len(c.xs) - 1
			_, err := fitWindow(c.xs, c.ys, 0, len(c.xs)-1, center, c.degree)
			if !errors.Is(err, common.ErrorUnderdeterminedWindow) {
				t.Fatalf("got %v, want ErrorUnderdeterminedWindow", err)
			}
			var tagged *common.Error
			if !errors.As(err, &tagged) || tagged.Index != center {
				t.Errorf("error does not carry offending index %d: %v", center, err)
			}
		})
	}
}

func TestFitWindowRepeatedXDegreeZero(t *testing.T) {
	// all window points share one x: degree 0 still yields the plain mean
	xs := []float64{5, 5, 5}
	ys := []float64{1, 2, 6}
	got, err := fitWindow(xs, ys, 0, 2, 1, 0)
	if err != nil {
		t.Fatalf("fitWindow: %v", err)
	}
	if !almostEqual(got, 3, 1e-12) {
		t.Errorf("got %v, want 3", got)
	}
}

func TestCountDistinctSorted(t *testing.T) {
	cases := []struct {
		name   string
		sorted []float64
		want   int
	}{
		{"empty", nil, 0},
		{"single", []float64{1}, 1},
		{"all equal", []float64{2, 2, 2}, 1},
		{"mixed", []float64{1, 1, 2, 3, 3, 3, 4}, 4},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := countDistinctSorted(c.sorted); got != c.want {
				t.Errorf("got %d, want %d", got, c.want)
			}
		})
	}
}
