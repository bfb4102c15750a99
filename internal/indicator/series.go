package indicator

import (
	"errors"
	"math"
)

// SMA computes the simple moving average of the trailing `period` values.
func SMA(values []float64, period int) (float64, error) {
	if period <= 0 {
		return 0, errors.New("period must be positive")
	}
	if len(values) < period {
		return 0, errors.New("not enough data for SMA calculation")
	}
	sum := 0.0
	for i := len(values) - period; i < len(values); i++ {
		sum += values[i]
	}
	return sum / float64(period), nil
}

func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// stddev returns the sample standard deviation (ddof=1).
func stddev(values []float64) float64 {
	if len(values) < 2 {
		return 0
	}
	m := mean(values)
	sum := 0.0
	for _, v := range values {
		d := v - m
		sum += d * d
	}
	return math.Sqrt(sum / float64(len(values)-1))
}

// trailingMax returns the maximum of values[end-window:end].
func trailingMax(values []float64, end, window int) float64 {
	start := end - window
	if start < 0 {
		start = 0
	}
	max := math.Inf(-1)
	for i := start; i < end; i++ {
		if values[i] > max {
			max = values[i]
		}
	}
	return max
}
