package model

// OBV direction labels used in reports and narrative prompts.
const (
	OBVDirectionUp   = "UP"
	OBVDirectionFlat = "FLAT/DN"
)

// Snapshot holds all indicator values computed from one price series.
type Snapshot struct {
	Price       float64 // latest close
	Readiness   float64 // 0 ~ 100
	VolumeRatio float64 // latest volume vs 20-day mean

	// Sub-scores making up the readiness value.
	ProximityScore  float64 // 0 or 30
	TrendScore      float64 // 0 or 30
	VolatilityScore float64 // 0 ~ 25
	OBVScore        float64 // 0 or 15

	SMA20    float64
	SMA200   float64
	WVF      float64
	WVFLimit float64
	OBVLast  float64
}

// OBVDirection returns the qualitative OBV label for the snapshot.
func (s *Snapshot) OBVDirection() string {
	if s.OBVScore > 0 {
		return OBVDirectionUp
	}
	return OBVDirectionFlat
}
