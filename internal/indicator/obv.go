package indicator

import "github.com/toyoo1004/stock-scanner/internal/model"

// OBV computes the on-balance volume series, same length as the input.
// The running sum starts at 0 and moves by each bar's volume according to
// the sign of the day-over-day close change; equal closes carry forward.
func OBV(bars []model.OHLCV) []float64 {
	obv := make([]float64, len(bars))
	for i := 1; i < len(bars); i++ {
		switch {
		case bars[i].Close > bars[i-1].Close:
			obv[i] = obv[i-1] + bars[i].Volume
		case bars[i].Close < bars[i-1].Close:
			obv[i] = obv[i-1] - bars[i].Volume
		default:
			obv[i] = obv[i-1]
		}
	}
	return obv
}
