package report

import (
	"strings"
	"testing"
	"time"

	"github.com/toyoo1004/stock-scanner/internal/model"
	"github.com/toyoo1004/stock-scanner/internal/scanner"
)

func sampleReport() *scanner.ScanReport {
	return &scanner.ScanReport{
		StartedAt: time.Date(2025, 3, 14, 22, 30, 0, 0, time.UTC),
		Source:    "yahoo",
		Scanned:   480,
		Skipped:   12,
		Signals: []model.ScoreResult{
			{Ticker: "NVDA", Readiness: 97.5, Price: 131.20, VolumeRatio: 1.8, OBVStatus: model.OBVDirectionUp, Narrative: "Strong accumulation near the 20-day average."},
			{Ticker: "CCJ", Readiness: 91.0, Price: 52.40, VolumeRatio: 1.3, OBVStatus: model.OBVDirectionFlat, Narrative: "Volume surge against a flat OBV."},
		},
	}
}

func TestFormat(t *testing.T) {
	text := Format(sampleReport())

	for _, want := range []string{
		"2025-03-14 22:30:00",
		"scanned 480 tickers",
		"signals: 2",
		"[NVDA] Readiness: 97.5%",
		"Price: $131.20",
		"Volume: 1.8x",
		"[CCJ]",
		"Strong accumulation near the 20-day average.",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("report missing %q:\n%s", want, text)
		}
	}
}

func TestFormat_NoSignals(t *testing.T) {
	rep := sampleReport()
	rep.Signals = nil
	text := Format(rep)
	if !strings.Contains(text, "No BUY signals detected today.") {
		t.Errorf("expected empty-scan message, got:\n%s", text)
	}
}

func TestSubject(t *testing.T) {
	if got := Subject(sampleReport()); !strings.Contains(got, "2 BUY signal(s)") {
		t.Errorf("unexpected subject: %q", got)
	}
	rep := sampleReport()
	rep.Signals = nil
	if got := Subject(rep); !strings.Contains(got, "no signals") {
		t.Errorf("unexpected empty subject: %q", got)
	}
}
