package model

import "fmt"

// Sample pairs one real value with the key identifying it.
type Sample struct {
	Key   string
	Value float64
}

// Series is an ordered collection of keyed samples. The key pairs an x
// value with its y value independently of storage order, so the x and y
// inputs of a smoothing run may list the same keys in different orders.
type Series struct {
	Samples []Sample
}

func NewSeries(samples ...Sample) *Series {
	return &Series{Samples: samples}
}

func (s *Series) Append(key string, value float64) {
	s.Samples = append(s.Samples, Sample{Key: key, Value: value})
}

func (s *Series) Len() int {
	if s == nil {
		return 0
	}
	return len(s.Samples)
}

func (s *Series) IsEmpty() bool {
	return s.Len() == 0
}

func (s *Series) Keys() []string {
	keys := make([]string, 0, s.Len())
	for _, sample := range s.Samples {
		keys = append(keys, sample.Key)
	}
	return keys
}

func (s *Series) Values() []float64 {
	values := make([]float64, 0, s.Len())
	for _, sample := range s.Samples {
		values = append(values, sample.Value)
	}
	return values
}

// Get returns the value stored under key. It scans linearly; the
// smoothing pipeline builds its own lookup maps and never calls this on
// a hot path.
func (s *Series) Get(key string) (float64, bool) {
	if s == nil {
		return 0, false
	}
	for _, sample := range s.Samples {
		if sample.Key == key {
			return sample.Value, true
		}
	}
	return 0, false
}

func (s *Series) DebugString() string {
	return fmt.Sprintf("sampleCount: %v", s.Len())
}
