// Package sink delivers finished scan reports. Sinks are optional and
// independent: a sink with missing credentials is never constructed, and a
// failing sink only loses its own copy of the report.
package sink

import (
	"context"
	"log"

	"github.com/toyoo1004/stock-scanner/internal/scanner"
)

// Sink delivers one scan report to a single destination.
type Sink interface {
	Deliver(ctx context.Context, rep *scanner.ScanReport) error
	Name() string
}

// Dispatch hands the report to every sink. Failures are logged and
// contained; the returned count is the number of successful deliveries.
func Dispatch(ctx context.Context, sinks []Sink, rep *scanner.ScanReport) int {
	delivered := 0
	for _, s := range sinks {
		if err := s.Deliver(ctx, rep); err != nil {
			log.Printf("[ERROR] sink %s: deliver: %v", s.Name(), err)
			continue
		}
		log.Printf("[INFO] sink %s: report delivered", s.Name())
		delivered++
	}
	return delivered
}
