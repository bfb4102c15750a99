package recorder

import "github.com/toyoo1004/stock-scanner/internal/scanner"

// NoopRecorder is a no-op implementation used when SQLite is not configured.
type NoopRecorder struct{}

func NewNoopRecorder() *NoopRecorder { return &NoopRecorder{} }

func (n *NoopRecorder) RecordScan(_ *scanner.ScanReport) error { return nil }
func (n *NoopRecorder) Close() error                           { return nil }
