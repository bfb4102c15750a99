// Package report renders scan results into the UTF-8 text report delivered
// by the sinks.
package report

import (
	"fmt"
	"strings"

	"github.com/toyoo1004/stock-scanner/internal/scanner"
)

// Format renders the full scan report: a header with the run timestamp and
// qualifying count, then one block per signal.
func Format(rep *scanner.ScanReport) string {
	var b strings.Builder

	b.WriteString(strings.Repeat("=", 70) + "\n")
	b.WriteString(fmt.Sprintf("SIGNAL SCAN | %s\n", rep.StartedAt.Format("2006-01-02 15:04:05")))
	b.WriteString(fmt.Sprintf("scanned %d tickers via %s | signals: %d | skipped: %d | failed: %d\n",
		rep.Scanned, rep.Source, len(rep.Signals), rep.Skipped, rep.Failed))
	b.WriteString(strings.Repeat("=", 70) + "\n")

	if len(rep.Signals) == 0 {
		b.WriteString("\nNo BUY signals detected today.\n")
		return b.String()
	}

	for _, sig := range rep.Signals {
		b.WriteString(fmt.Sprintf("\n[%s] Readiness: %.1f%% | Price: $%.2f | Volume: %.1fx | OBV: %s\n",
			sig.Ticker, sig.Readiness, sig.Price, sig.VolumeRatio, sig.OBVStatus))
		b.WriteString(fmt.Sprintf("  %s\n", sig.Narrative))
		b.WriteString(strings.Repeat("-", 70) + "\n")
	}
	return b.String()
}

// Subject builds the one-line summary used for email subjects and log lines.
func Subject(rep *scanner.ScanReport) string {
	if len(rep.Signals) == 0 {
		return fmt.Sprintf("Signal scan %s: no signals", rep.StartedAt.Format("2006-01-02"))
	}
	return fmt.Sprintf("Signal scan %s: %d BUY signal(s)", rep.StartedAt.Format("2006-01-02"), len(rep.Signals))
}
