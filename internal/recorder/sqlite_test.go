package recorder

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/toyoo1004/stock-scanner/internal/model"
	"github.com/toyoo1004/stock-scanner/internal/scanner"
)

func TestSQLiteRecorder_RecordScan(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "scan.db")
	r, err := NewSQLiteRecorder(dbPath)
	if err != nil {
		t.Fatalf("open recorder: %v", err)
	}
	defer r.Close()

	rep := &scanner.ScanReport{
		StartedAt:  time.Now().Add(-time.Minute),
		FinishedAt: time.Now(),
		Source:     "mock",
		Scanned:    10,
		NoSignal:   7,
		Skipped:    1,
		Signals: []model.ScoreResult{
			{Ticker: "AAA", Readiness: 95, Price: 100, VolumeRatio: 1.4, OBVStatus: model.OBVDirectionUp, Narrative: "n1"},
			{Ticker: "BBB", Readiness: 91, Price: 50, VolumeRatio: 1.3, OBVStatus: model.OBVDirectionFlat, Narrative: "n2"},
		},
	}
	if err := r.RecordScan(rep); err != nil {
		t.Fatalf("record scan: %v", err)
	}

	var runs, signals int
	if err := r.db.QueryRow("SELECT COUNT(*) FROM scan_runs").Scan(&runs); err != nil {
		t.Fatalf("count runs: %v", err)
	}
	if err := r.db.QueryRow("SELECT COUNT(*) FROM scan_signals").Scan(&signals); err != nil {
		t.Fatalf("count signals: %v", err)
	}
	if runs != 1 || signals != 2 {
		t.Errorf("expected 1 run and 2 signals, got %d and %d", runs, signals)
	}

	var ticker string
	var readiness float64
	if err := r.db.QueryRow("SELECT ticker, readiness FROM scan_signals ORDER BY readiness DESC LIMIT 1").Scan(&ticker, &readiness); err != nil {
		t.Fatalf("query top signal: %v", err)
	}
	if ticker != "AAA" || readiness != 95 {
		t.Errorf("expected AAA/95, got %s/%.1f", ticker, readiness)
	}
}
