package model

// ScanStatus classifies the per-ticker outcome of one scan pass.
type ScanStatus string

const (
	StatusSignal   ScanStatus = "SIGNAL"    // thresholds met, result delivered
	StatusNoSignal ScanStatus = "NO_SIGNAL" // computed but below thresholds
	StatusSkipped  ScanStatus = "SKIPPED"   // no data, short series, fetch failed
	StatusFailed   ScanStatus = "FAILED"    // unexpected fault in the pipeline
)

// ScoreResult is the immutable per-ticker result of a qualifying scan.
type ScoreResult struct {
	Ticker      string
	Readiness   float64
	Price       float64
	VolumeRatio float64
	OBVStatus   string
	Narrative   string
}

// Outcome is the per-ticker scan result. Exactly one of the statuses is set;
// Result is non-nil only for StatusSignal.
type Outcome struct {
	Ticker string
	Status ScanStatus
	Reason string
	Result *ScoreResult
}
