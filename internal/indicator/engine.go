package indicator

import (
	"errors"
	"math"

	"github.com/toyoo1004/stock-scanner/internal/model"
)

// Window lengths for the readiness computation.
const (
	ShortSMAPeriod = 20
	LongSMAPeriod  = 200
	WVFLookback    = 22
	WVFEnvelope    = 50
	OBVMeanPeriod  = 20
	VolMeanPeriod  = 20

	// DefaultMinBars is the minimum series length before indicators are
	// considered valid.
	DefaultMinBars = 200
)

// ErrInsufficientBars marks a series too short to evaluate. Callers treat
// this as "no data", not as a failure.
var ErrInsufficientBars = errors.New("insufficient bars for evaluation")

// Evaluate computes the full indicator snapshot from a daily series.
// Deterministic: identical input always produces identical output. All
// division-by-zero and non-finite cases map to defined fallbacks.
func Evaluate(bars []model.OHLCV, minBars int) (*model.Snapshot, error) {
	if minBars <= 0 {
		minBars = DefaultMinBars
	}
	if len(bars) < minBars {
		return nil, ErrInsufficientBars
	}

	n := len(bars)
	closes := make([]float64, n)
	lows := make([]float64, n)
	volumes := make([]float64, n)
	for i, b := range bars {
		closes[i] = b.Close
		lows[i] = b.Low
		volumes[i] = b.Volume
	}

	snap := &model.Snapshot{Price: closes[n-1]}

	sma20, err := SMA(closes, ShortSMAPeriod)
	if err != nil {
		return nil, ErrInsufficientBars
	}
	snap.SMA20 = sma20

	// Proximity: last low within 4% above (or anywhere below) the short MA.
	if lows[n-1] <= sma20*1.04 {
		snap.ProximityScore = 30
	}

	// Trend: last close above the long MA. A series shorter than the long
	// window gets no trend credit, same as the unfilled rolling window.
	if sma200, err := SMA(closes, LongSMAPeriod); err == nil {
		snap.SMA200 = sma200
		if closes[n-1] > sma200 {
			snap.TrendScore = 30
		}
	}

	snap.VolatilityScore, snap.WVF, snap.WVFLimit = volatilityScore(closes, lows)

	obv := OBV(bars)
	snap.OBVLast = obv[n-1]
	if obvMean, err := SMA(obv, OBVMeanPeriod); err == nil && obv[n-1] > obvMean {
		snap.OBVScore = 15
	}

	snap.Readiness = snap.ProximityScore + snap.TrendScore + snap.VolatilityScore + snap.OBVScore

	if volMean, err := SMA(volumes, VolMeanPeriod); err == nil && volMean != 0 {
		ratio := volumes[n-1] / volMean
		if !math.IsNaN(ratio) && !math.IsInf(ratio, 0) {
			snap.VolumeRatio = ratio
		}
	}

	return snap, nil
}

// volatilityScore computes the WVF-style breakout sub-score (0 ~ 25).
// wvf measures how far the day's low sits below the trailing 22-bar close
// high; the limit is a 50-bar mean + 2.1 sigma envelope over wvf itself.
func volatilityScore(closes, lows []float64) (score, wvfLast, limit float64) {
	n := len(closes)
	if n < WVFLookback+WVFEnvelope-1 {
		return 0, 0, 0
	}

	wvf := make([]float64, 0, WVFEnvelope)
	for i := n - WVFEnvelope; i < n; i++ {
		highest := trailingMax(closes, i+1, WVFLookback)
		if highest == 0 {
			wvf = append(wvf, 0)
			continue
		}
		wvf = append(wvf, (highest-lows[i])/highest*100)
	}

	wvfLast = wvf[len(wvf)-1]
	limit = mean(wvf) + 2.1*stddev(wvf)
	if limit == 0 || math.IsNaN(limit) || math.IsInf(limit, 0) {
		return 0, wvfLast, limit
	}

	score = wvfLast / limit * 25
	if math.IsNaN(score) || score < 0 {
		return 0, wvfLast, limit
	}
	if score > 25 {
		score = 25
	}
	return score, wvfLast, limit
}
