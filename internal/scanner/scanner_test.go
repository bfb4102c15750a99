package scanner

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/toyoo1004/stock-scanner/internal/analyst"
	"github.com/toyoo1004/stock-scanner/internal/collector"
	"github.com/toyoo1004/stock-scanner/internal/model"
)

// signalBars yields readiness ~100 and a volume ratio of 1500/1025 ~ 1.46:
// rising closes with lows 2% under, constant volume with a final surge.
func signalBars(n int) []model.OHLCV {
	bars := make([]model.OHLCV, n)
	start := time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)
	for i := 0; i < n; i++ {
		c := 100.0 + float64(i)
		vol := 1000.0
		if i == n-1 {
			vol = 1500
		}
		bars[i] = model.OHLCV{Time: start.AddDate(0, 0, i), Open: c, High: c * 1.01, Low: c * 0.98, Close: c, Volume: vol}
	}
	return bars
}

// quietBars yields readiness 30 and volume ratio 1.0: never qualifies.
func quietBars(n int) []model.OHLCV {
	bars := make([]model.OHLCV, n)
	start := time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)
	for i := 0; i < n; i++ {
		bars[i] = model.OHLCV{Time: start.AddDate(0, 0, i), Open: 150, High: 150, Low: 150, Close: 150, Volume: 1000}
	}
	return bars
}

type fakeAnalyst struct {
	text  string
	err   error
	calls int
}

func (f *fakeAnalyst) Name() string { return "fake" }

func (f *fakeAnalyst) Commentary(_ context.Context, _ *model.ScoreResult) (string, error) {
	f.calls++
	if f.err != nil {
		return "", f.err
	}
	return f.text, nil
}

func testOptions(workers int) Options {
	return Options{
		MinBars:              200,
		ReadinessThreshold:   90,
		VolumeRatioThreshold: 1.2,
		Workers:              workers,
		FetchTimeout:         time.Second,
		NarrativeRetries:     3,
		NarrativeRetryDelay:  time.Millisecond,
	}
}

func fiveTickerFetcher() *collector.MockFetcher {
	return &collector.MockFetcher{
		Bars: map[string][]model.OHLCV{
			"AAA": signalBars(250),
			"BBB": quietBars(250),
			"CCC": signalBars(250),
			"DDD": quietBars(50), // too short: skipped
		},
		Errors: map[string]error{
			"EEE": errors.New("connection refused"),
		},
	}
}

func TestRun_QualifyingSet(t *testing.T) {
	// The qualifying set must be identical for 1 worker and 10 workers.
	for _, workers := range []int{1, 10} {
		s := New(fiveTickerFetcher(), &fakeAnalyst{text: "looks strong"}, testOptions(workers))
		report, err := s.Run(context.Background(), []string{"AAA", "BBB", "CCC", "DDD", "EEE"})
		if err != nil {
			t.Fatalf("workers=%d: unexpected error: %v", workers, err)
		}

		if len(report.Signals) != 2 {
			t.Fatalf("workers=%d: expected 2 signals, got %d", workers, len(report.Signals))
		}
		got := map[string]bool{}
		for _, sig := range report.Signals {
			got[sig.Ticker] = true
		}
		if !got["AAA"] || !got["CCC"] {
			t.Errorf("workers=%d: expected signals AAA and CCC, got %v", workers, got)
		}
		if report.NoSignal != 1 {
			t.Errorf("workers=%d: expected 1 no-signal, got %d", workers, report.NoSignal)
		}
		if report.Skipped != 2 {
			t.Errorf("workers=%d: expected 2 skipped (short series + fetch error), got %d", workers, report.Skipped)
		}
		if report.Failed != 0 {
			t.Errorf("workers=%d: expected 0 failed, got %d", workers, report.Failed)
		}
		for _, sig := range report.Signals {
			if sig.Narrative != "looks strong" {
				t.Errorf("workers=%d: %s: expected narrative, got %q", workers, sig.Ticker, sig.Narrative)
			}
		}
	}
}

func TestRun_DeduplicatesTickers(t *testing.T) {
	s := New(fiveTickerFetcher(), nil, testOptions(4))
	report, err := s.Run(context.Background(), []string{"AAA", "AAA", "BBB", "AAA"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if report.Scanned != 2 {
		t.Errorf("expected 2 scanned after dedup, got %d", report.Scanned)
	}
	if len(report.Signals) != 1 {
		t.Errorf("expected 1 signal, got %d", len(report.Signals))
	}
}

func TestRun_NarrativeFailureKeepsResult(t *testing.T) {
	fa := &fakeAnalyst{err: errors.New("quota exhausted")}
	s := New(fiveTickerFetcher(), fa, testOptions(2))
	report, err := s.Run(context.Background(), []string{"AAA"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(report.Signals) != 1 {
		t.Fatalf("expected the numeric result to survive narrative failure, got %d signals", len(report.Signals))
	}
	sig := report.Signals[0]
	if sig.Narrative != analyst.PlaceholderNarrative {
		t.Errorf("expected placeholder narrative, got %q", sig.Narrative)
	}
	if fa.calls != 3 {
		t.Errorf("expected 3 commentary attempts, got %d", fa.calls)
	}
	if sig.Readiness < 90 {
		t.Errorf("numeric score missing: readiness %.1f", sig.Readiness)
	}
}

func TestRun_NilAnalyst(t *testing.T) {
	s := New(fiveTickerFetcher(), nil, testOptions(2))
	report, err := s.Run(context.Background(), []string{"AAA"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(report.Signals) != 1 || report.Signals[0].Narrative != analyst.PlaceholderNarrative {
		t.Errorf("expected placeholder narrative without analyst, got %+v", report.Signals)
	}
}

// panicFetcher blows up on one symbol to exercise task-boundary isolation.
type panicFetcher struct {
	inner collector.Fetcher
}

func (p *panicFetcher) Name() string { return "panic" }

func (p *panicFetcher) FetchDailyBars(ctx context.Context, symbol string, days int) ([]model.OHLCV, error) {
	if symbol == "BOOM" {
		panic("exploded mid-fetch")
	}
	return p.inner.FetchDailyBars(ctx, symbol, days)
}

func TestRun_PanicDoesNotAbortBatch(t *testing.T) {
	s := New(&panicFetcher{inner: fiveTickerFetcher()}, nil, testOptions(3))
	report, err := s.Run(context.Background(), []string{"AAA", "BOOM", "BBB"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if report.Failed != 1 {
		t.Errorf("expected 1 failed outcome for the panicking ticker, got %d", report.Failed)
	}
	if len(report.Signals) != 1 || report.Signals[0].Ticker != "AAA" {
		t.Errorf("expected AAA to survive the batch, got %+v", report.Signals)
	}
}

func TestRun_SignalsSortedByReadiness(t *testing.T) {
	s := New(fiveTickerFetcher(), nil, testOptions(4))
	report, err := s.Run(context.Background(), []string{"AAA", "CCC"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i := 1; i < len(report.Signals); i++ {
		if report.Signals[i].Readiness > report.Signals[i-1].Readiness {
			t.Errorf("signals not in descending readiness order: %+v", report.Signals)
		}
	}
}

func TestRun_EmptyTickerSet(t *testing.T) {
	s := New(fiveTickerFetcher(), nil, testOptions(1))
	if _, err := s.Run(context.Background(), nil); err == nil {
		t.Error("expected error for empty ticker set")
	}
}
