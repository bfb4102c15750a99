// Package scanner fans the indicator engine out over the ticker universe
// with a bounded worker pool and collects qualifying signals.
package scanner

import (
	"context"
	"fmt"
	"log"
	"sort"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/toyoo1004/stock-scanner/internal/analyst"
	"github.com/toyoo1004/stock-scanner/internal/collector"
	"github.com/toyoo1004/stock-scanner/internal/indicator"
	"github.com/toyoo1004/stock-scanner/internal/model"
	"github.com/toyoo1004/stock-scanner/internal/universe"
)

// Options controls one scan pass. Zero values fall back to defaults.
type Options struct {
	LookbackDays         int           // history window requested per ticker
	MinBars              int           // minimum bars before indicators are valid
	ReadinessThreshold   float64       // signal gate, 0 ~ 100
	VolumeRatioThreshold float64       // volume surge gate
	Workers              int           // bounded pool size
	FetchTimeout         time.Duration // per-ticker fetch budget
	FetchRatePerSec      float64       // outbound fetch rate cap, 0 = uncapped
	NarrativeRetries     int           // attempts per qualifying ticker
	NarrativeRetryDelay  time.Duration // fixed delay between attempts
}

func (o *Options) applyDefaults() {
	if o.LookbackDays <= 0 {
		o.LookbackDays = 365
	}
	if o.MinBars <= 0 {
		o.MinBars = indicator.DefaultMinBars
	}
	if o.ReadinessThreshold <= 0 {
		o.ReadinessThreshold = 90
	}
	if o.VolumeRatioThreshold <= 0 {
		o.VolumeRatioThreshold = 1.2
	}
	if o.Workers <= 0 {
		o.Workers = 8
	}
	if o.FetchTimeout <= 0 {
		o.FetchTimeout = 15 * time.Second
	}
	if o.NarrativeRetries <= 0 {
		o.NarrativeRetries = 3
	}
	if o.NarrativeRetryDelay <= 0 {
		o.NarrativeRetryDelay = 2 * time.Second
	}
}

// ScanReport is the aggregate outcome of one scan pass.
type ScanReport struct {
	StartedAt  time.Time
	FinishedAt time.Time
	Source     string
	Scanned    int
	NoSignal   int
	Skipped    int
	Failed     int
	Signals    []model.ScoreResult // sorted by descending readiness
}

// Scanner maps the indicator engine over a ticker set.
type Scanner struct {
	fetcher collector.Fetcher
	analyst analyst.Analyst // nil disables commentary
	opts    Options
	limiter *rate.Limiter
}

// New creates a Scanner. A nil analyst delivers numeric results with the
// placeholder narrative.
func New(fetcher collector.Fetcher, an analyst.Analyst, opts Options) *Scanner {
	opts.applyDefaults()
	s := &Scanner{fetcher: fetcher, analyst: an, opts: opts}
	if opts.FetchRatePerSec > 0 {
		s.limiter = rate.NewLimiter(rate.Limit(opts.FetchRatePerSec), 1)
	}
	return s
}

// Run scans the deduplicated ticker set and returns the aggregate report.
// Per-ticker failures are contained at the task boundary; only a cancelled
// context aborts the pass.
func (s *Scanner) Run(ctx context.Context, tickers []string) (*ScanReport, error) {
	unique := universe.Dedupe(tickers)
	if len(unique) == 0 {
		return nil, fmt.Errorf("scan: empty ticker set")
	}

	report := &ScanReport{
		StartedAt: time.Now(),
		Source:    s.fetcher.Name(),
		Scanned:   len(unique),
	}
	log.Printf("[INFO] scan started: %d tickers, %d workers, source=%s",
		len(unique), s.opts.Workers, s.fetcher.Name())

	tickerCh := make(chan string, len(unique))
	outcomeCh := make(chan model.Outcome, len(unique))

	var wg sync.WaitGroup
	for i := 0; i < s.opts.Workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for ticker := range tickerCh {
				select {
				case <-ctx.Done():
					outcomeCh <- model.Outcome{Ticker: ticker, Status: model.StatusFailed, Reason: ctx.Err().Error()}
					continue
				default:
				}
				outcomeCh <- s.scanOne(ctx, ticker)
			}
		}()
	}

	for _, t := range unique {
		tickerCh <- t
	}
	close(tickerCh)

	go func() {
		wg.Wait()
		close(outcomeCh)
	}()

	for out := range outcomeCh {
		switch out.Status {
		case model.StatusSignal:
			report.Signals = append(report.Signals, *out.Result)
		case model.StatusNoSignal:
			report.NoSignal++
		case model.StatusSkipped:
			report.Skipped++
		case model.StatusFailed:
			report.Failed++
			log.Printf("[WARN] %s: scan task failed: %s", out.Ticker, out.Reason)
		}
	}

	// Descending readiness; ticker breaks ties so output is reproducible.
	sort.Slice(report.Signals, func(i, j int) bool {
		if report.Signals[i].Readiness != report.Signals[j].Readiness {
			return report.Signals[i].Readiness > report.Signals[j].Readiness
		}
		return report.Signals[i].Ticker < report.Signals[j].Ticker
	})

	report.FinishedAt = time.Now()
	log.Printf("[INFO] scan finished: %d signals, %d no-signal, %d skipped, %d failed (%.1fs)",
		len(report.Signals), report.NoSignal, report.Skipped, report.Failed,
		report.FinishedAt.Sub(report.StartedAt).Seconds())

	if ctx.Err() != nil {
		return report, ctx.Err()
	}
	return report, nil
}

// scanOne runs the fetch -> evaluate -> qualify -> narrate pipeline for one
// ticker. Any fault, including a panic, becomes an Outcome.
func (s *Scanner) scanOne(ctx context.Context, ticker string) (out model.Outcome) {
	out = model.Outcome{Ticker: ticker}
	defer func() {
		if r := recover(); r != nil {
			out.Status = model.StatusFailed
			out.Reason = fmt.Sprintf("panic: %v", r)
			out.Result = nil
		}
	}()

	if s.limiter != nil {
		if err := s.limiter.Wait(ctx); err != nil {
			out.Status = model.StatusFailed
			out.Reason = err.Error()
			return out
		}
	}

	fetchCtx, cancel := context.WithTimeout(ctx, s.opts.FetchTimeout)
	bars, err := s.fetcher.FetchDailyBars(fetchCtx, ticker, s.opts.LookbackDays)
	cancel()
	if err != nil {
		// Transport failures and missing history are routine: no data today.
		out.Status = model.StatusSkipped
		out.Reason = err.Error()
		return out
	}

	snap, err := indicator.Evaluate(bars, s.opts.MinBars)
	if err != nil {
		out.Status = model.StatusSkipped
		out.Reason = err.Error()
		return out
	}

	if snap.Readiness < s.opts.ReadinessThreshold || snap.VolumeRatio <= s.opts.VolumeRatioThreshold {
		out.Status = model.StatusNoSignal
		return out
	}

	result := &model.ScoreResult{
		Ticker:      ticker,
		Readiness:   snap.Readiness,
		Price:       snap.Price,
		VolumeRatio: snap.VolumeRatio,
		OBVStatus:   snap.OBVDirection(),
	}
	result.Narrative = s.narrate(ctx, result)

	out.Status = model.StatusSignal
	out.Result = result
	log.Printf("[INFO] %s: SIGNAL readiness=%.1f volume=%.2fx price=%.2f",
		ticker, result.Readiness, result.VolumeRatio, result.Price)
	return out
}

// narrate requests commentary with bounded retries and a fixed delay. On
// exhaustion it degrades to the placeholder; the numeric result still ships.
func (s *Scanner) narrate(ctx context.Context, res *model.ScoreResult) string {
	if s.analyst == nil {
		return analyst.PlaceholderNarrative
	}
	var lastErr error
	for attempt := 1; attempt <= s.opts.NarrativeRetries; attempt++ {
		text, err := s.analyst.Commentary(ctx, res)
		if err == nil {
			return text
		}
		lastErr = err
		log.Printf("[WARN] %s: commentary attempt %d/%d failed: %v",
			res.Ticker, attempt, s.opts.NarrativeRetries, err)
		if attempt == s.opts.NarrativeRetries {
			break
		}
		select {
		case <-ctx.Done():
			return analyst.PlaceholderNarrative
		case <-time.After(s.opts.NarrativeRetryDelay):
		}
	}
	log.Printf("[WARN] %s: commentary unavailable after %d attempts: %v",
		res.Ticker, s.opts.NarrativeRetries, lastErr)
	return analyst.PlaceholderNarrative
}
