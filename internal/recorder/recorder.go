package recorder

import "github.com/toyoo1004/stock-scanner/internal/scanner"

// Recorder persists scan history for later inspection. The scan itself is
// stateless; the recorder is the only thing that remembers past runs.
type Recorder interface {
	RecordScan(rep *scanner.ScanReport) error
	Close() error
}
