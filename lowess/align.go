package lowess

import (
	"fmt"
	"math"
	"sort"

	"github.com/uyouii/lowess-smoothing/common"
	"github.com/uyouii/lowess-smoothing/model"
)

// sortedSample holds one smoothing run's observations reordered so x is
// non-decreasing, plus the key owning each sorted position. Built once
// per run, read-only afterwards.
type sortedSample struct {
	xs   []float64
	ys   []float64
	keys []string

	// posByKey maps each key to its position in x-sorted order.
	posByKey map[string]int
}

type observation struct {
	key string
	x   float64
	y   float64
}

// align joins the x and y inputs on their keys and sorts the joined
// pairs by x ascending. Ties in x keep the x input's enumeration order,
// so repeated runs on identical input stay reproducible.
func align(x, y *model.Series, degree int) (*sortedSample, error) {
	n := x.Len()
	minCount := degree + 1
	if n < minCount {
		return nil, common.NewError(common.ErrorInsufficientData,
			fmt.Sprintf("got %d points, need at least %d for degree %d", n, minCount, degree))
	}
	if y.Len() != n {
		return nil, common.NewError(common.ErrorKeyMismatch,
			fmt.Sprintf("x has %d keys, y has %d", n, y.Len()))
	}

	yByKey := make(map[string]float64, n)
	for _, sample := range y.Samples {
		if _, ok := yByKey[sample.Key]; ok {
			return nil, common.NewKeyError(common.ErrorDuplicateKey, sample.Key, "repeated in y")
		}
		if !isFinite(sample.Value) {
			return nil, common.NewKeyError(common.ErrorInvalidValue, sample.Key,
				fmt.Sprintf("y is %v", sample.Value))
		}
		yByKey[sample.Key] = sample.Value
	}

	observations := make([]observation, 0, n)
	seen := make(map[string]struct{}, n)
	for _, sample := range x.Samples {
		if _, ok := seen[sample.Key]; ok {
			return nil, common.NewKeyError(common.ErrorDuplicateKey, sample.Key, "repeated in x")
		}
		seen[sample.Key] = struct{}{}

		yValue, ok := yByKey[sample.Key]
		if !ok {
			return nil, common.NewKeyError(common.ErrorKeyMismatch, sample.Key, "missing from y")
		}
		if !isFinite(sample.Value) {
			return nil, common.NewKeyError(common.ErrorInvalidValue, sample.Key,
				fmt.Sprintf("x is %v", sample.Value))
		}
		observations = append(observations, observation{key: sample.Key, x: sample.Value, y: yValue})
	}

	sort.SliceStable(observations, func(i, j int) bool {
		return observations[i].x < observations[j].x
	})

	sample := &sortedSample{
		xs:       make([]float64, n),
		ys:       make([]float64, n),
		keys:     make([]string, n),
		posByKey: make(map[string]int, n),
	}
	for i, obs := range observations {
		sample.xs[i] = obs.x
		sample.ys[i] = obs.y
		sample.keys[i] = obs.key
		sample.posByKey[obs.key] = i
	}
	return sample, nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
