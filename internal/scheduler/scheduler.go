package scheduler

import (
	"context"
	"fmt"
	"log"

	"github.com/robfig/cron/v3"

	"github.com/toyoo1004/stock-scanner/internal/recorder"
	"github.com/toyoo1004/stock-scanner/internal/scanner"
	"github.com/toyoo1004/stock-scanner/internal/sink"
)

// Scheduler runs the scan on a cron schedule and routes the report to the
// configured sinks and the recorder.
type Scheduler struct {
	Cron     *cron.Cron
	Scanner  *scanner.Scanner
	Tickers  []string
	Sinks    []sink.Sink
	Recorder recorder.Recorder
	Ctx      context.Context
}

// NewScheduler creates a new Scheduler.
func NewScheduler(ctx context.Context, sc *scanner.Scanner, tickers []string, sinks []sink.Sink, rec recorder.Recorder) *Scheduler {
	return &Scheduler{
		Cron:     cron.New(cron.WithSeconds()),
		Scanner:  sc,
		Tickers:  tickers,
		Sinks:    sinks,
		Recorder: rec,
		Ctx:      ctx,
	}
}

// Register registers the scan cron task.
func (s *Scheduler) Register(scanCron string) error {
	if _, err := s.Cron.AddFunc(scanCron, s.runScan); err != nil {
		return fmt.Errorf("register scan task: %w", err)
	}
	return nil
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.Cron.Start()
	log.Println("[INFO] scheduler started")
}

// Stop stops the cron scheduler gracefully.
func (s *Scheduler) Stop() {
	s.Cron.Stop()
	log.Println("[INFO] scheduler stopped")
}

// RunNow executes the scan immediately (for -once / RUN_ON_START).
func (s *Scheduler) RunNow() {
	s.runScan()
}

func (s *Scheduler) runScan() {
	rep, err := s.Scanner.Run(s.Ctx, s.Tickers)
	if err != nil {
		log.Printf("[ERROR] scan run: %v", err)
		if rep == nil {
			return
		}
		// A cancelled pass still delivers whatever it collected.
	}

	delivered := sink.Dispatch(s.Ctx, s.Sinks, rep)
	log.Printf("[INFO] report delivered to %d/%d sinks", delivered, len(s.Sinks))

	if err := s.Recorder.RecordScan(rep); err != nil {
		log.Printf("[ERROR] record scan: %v", err)
	}
}
