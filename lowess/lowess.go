package lowess

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/uyouii/lowess-smoothing/common"
	"github.com/uyouii/lowess-smoothing/model"
	"golang.org/x/sync/errgroup"
)

// Smoother computes a locally weighted scatterplot smoothing (lowess)
// curve over keyed samples, as per STATA
// https://www.stata.com/manuals13/rlowess.pdf
// using tricube weighting. Each point's smoothed value comes from a
// weighted polynomial regression over its bandwidth neighborhood in
// x-sorted order.
type Smoother struct {
	bandwidth        float64
	polynomialDegree int
	workers          int
}

func NewSmoother(bandwidth float64, polynomialDegree int) (*Smoother, error) {
	if math.IsNaN(bandwidth) || bandwidth <= 0 || bandwidth > 1 {
		return nil, common.NewError(common.ErrorInvalidBandwidth, fmt.Sprintf("got %v", bandwidth))
	}
	if polynomialDegree < 0 {
		return nil, common.NewError(common.ErrorInvalidDegree, fmt.Sprintf("got %d", polynomialDegree))
	}
	return &Smoother{
		bandwidth:        bandwidth,
		polynomialDegree: polynomialDegree,
		workers:          1,
	}, nil
}

// SetWorkers lets up to n per-point fits run concurrently. Values below
// 2 keep the computation sequential. Sequential and concurrent runs
// produce identical results and identical errors.
func (s *Smoother) SetWorkers(n int) {
	s.workers = n
}

// Smooth returns the smoothed y values keyed identically to, and in the
// same key order as, the y input. x and y must carry exactly the same
// key set, in any order. On failure no partial result is returned.
func (s *Smoother) Smooth(ctx context.Context, x, y *model.Series) (*model.Series, error) {
	sample, err := align(x, y, s.polynomialDegree)
	if err != nil {
		return nil, err
	}

	n := len(sample.xs)
	k := halfWindow(n, s.bandwidth)

	fitted := make([]float64, n)
	if s.workers > 1 {
		err = s.fitAllParallel(ctx, sample, k, fitted)
	} else {
		err = s.fitAll(sample, k, fitted)
	}
	if err != nil {
		return nil, err
	}

	// Reassemble in the y input's key order.
	res := model.NewSeries()
	for _, ySample := range y.Samples {
		res.Append(ySample.Key, fitted[sample.posByKey[ySample.Key]])
	}
	return res, nil
}

func (s *Smoother) fitAll(sample *sortedSample, k int, fitted []float64) error {
	n := len(fitted)
	for i := 0; i < n; i++ {
		lo, hi := windowBounds(i, k, n)
		value, err := fitWindow(sample.xs, sample.ys, lo, hi, i, s.polynomialDegree)
		if err != nil {
			return tagKey(err, sample.keys[i])
		}
		fitted[i] = value
	}
	return nil
}

func (s *Smoother) fitAllParallel(ctx context.Context, sample *sortedSample, k int, fitted []float64) error {
	n := len(fitted)
	errs := make([]error, n)

	group, _ := errgroup.WithContext(ctx)
	group.SetLimit(s.workers)
	for i := 0; i < n; i++ {
		i := i
		group.Go(func() error {
			lo, hi := windowBounds(i, k, n)
			value, err := fitWindow(sample.xs, sample.ys, lo, hi, i, s.polynomialDegree)
			if err != nil {
				errs[i] = tagKey(err, sample.keys[i])
				return nil
			}
			fitted[i] = value
			return nil
		})
	}
	_ = group.Wait()

	// Report the lowest sorted index failure so the outcome does not
	// depend on scheduling.
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}

// tagKey attaches the key owning a sorted position to an index-tagged
// fit error.
func tagKey(err error, key string) error {
	var tagged *common.Error
	if errors.As(err, &tagged) {
		tagged.Key = key
	}
	return err
}

// Smooth runs one smoothing pass with the given parameters. See
// Smoother.Smooth.
func Smooth(ctx context.Context, x, y *model.Series, bandwidth float64, polynomialDegree int) (*model.Series, error) {
	smoother, err := NewSmoother(bandwidth, polynomialDegree)
	if err != nil {
		return nil, err
	}
	return smoother.Smooth(ctx, x, y)
}
