package sink

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/toyoo1004/stock-scanner/internal/report"
	"github.com/toyoo1004/stock-scanner/internal/scanner"
)

// FileSink writes the text report to a timestamped file under Dir.
type FileSink struct {
	Dir string
}

func NewFileSink(dir string) *FileSink { return &FileSink{Dir: dir} }

func (f *FileSink) Name() string { return "file" }

func (f *FileSink) Deliver(_ context.Context, rep *scanner.ScanReport) error {
	if err := os.MkdirAll(f.Dir, 0o755); err != nil {
		return fmt.Errorf("create report dir: %w", err)
	}
	path := filepath.Join(f.Dir, fmt.Sprintf("scan_%s.txt", rep.StartedAt.Format("20060102_150405")))
	if err := os.WriteFile(path, []byte(report.Format(rep)), 0o644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}
