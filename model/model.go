package model

import (
	"fmt"
	"time"
)

type TimeValue struct {
	Time  time.Time
	Value float64
}

func (v *TimeValue) Less(timeValue TimeValue) bool {
	return v.Value < timeValue.Value
}

func (v *TimeValue) Before(timeValue TimeValue) bool {
	return v.Time.Before(timeValue.Time)
}

type TimeSeries struct {
	// Labels contains label key -> label value, like "instance": "localhost:9091"
	Labels map[string]string
	Values []TimeValue
}

func (s *TimeSeries) DebugString() string {
	res := fmt.Sprintf("labels: %+v, valueCount: %+v", s.Labels, len(s.Values))
	return res
}

func (s *TimeSeries) IsEmpty() bool {
	if s == nil {
		return true
	}
	return len(s.Values) == 0
}

type RecordValue struct {
	Timestamp int64   `json:"t,omitempty"`
	Value     float64 `json:"v,omitempty"`
}
