package common

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

type Summary struct {
	Count  int     `json:"count"`
	Mean   float64 `json:"mean"`
	StdDev float64 `json:"stddev"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
}

//sample statistics, zero valued for an empty input and a zero stddev for a single sample
func Summarize(samples []float64) Summary {
	n := len(samples)
	if n == 0 {
		return Summary{}
	}
	s := Summary{
		Count: n,
		Mean:  stat.Mean(samples, nil),
		Min:   floats.Min(samples),
		Max:   floats.Max(samples),
	}
	if n > 1 {
		s.StdDev = stat.StdDev(samples, nil)
	}
	return s
}
