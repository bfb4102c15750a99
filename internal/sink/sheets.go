package sink

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/toyoo1004/stock-scanner/internal/scanner"
)

const defaultSheetsBaseURL = "https://sheets.googleapis.com"

// SheetsSink appends one row per qualifying ticker to a spreadsheet via the
// values:append endpoint, acting as an append-only signal log.
type SheetsSink struct {
	BaseURL       string
	SpreadsheetID string
	Range         string
	Token         string // OAuth bearer token
	Client        *http.Client
}

func NewSheetsSink(spreadsheetID, sheetRange, token string) *SheetsSink {
	if sheetRange == "" {
		sheetRange = "Signals!A:F"
	}
	return &SheetsSink{
		BaseURL:       defaultSheetsBaseURL,
		SpreadsheetID: spreadsheetID,
		Range:         sheetRange,
		Token:         token,
		Client:        &http.Client{Timeout: 30 * time.Second},
	}
}

func (s *SheetsSink) Name() string { return "sheets" }

func (s *SheetsSink) Deliver(ctx context.Context, rep *scanner.ScanReport) error {
	if len(rep.Signals) == 0 {
		return nil // nothing to append
	}

	rows := make([][]interface{}, 0, len(rep.Signals))
	ts := rep.StartedAt.Format("2006-01-02 15:04:05")
	for _, sig := range rep.Signals {
		rows = append(rows, []interface{}{
			ts,
			sig.Ticker,
			fmt.Sprintf("%.1f%%", sig.Readiness),
			fmt.Sprintf("%.2f", sig.Price),
			fmt.Sprintf("%.2fx", sig.VolumeRatio),
			sig.Narrative,
		})
	}

	payload, err := json.Marshal(map[string]interface{}{"values": rows})
	if err != nil {
		return fmt.Errorf("marshal rows: %w", err)
	}

	endpoint := fmt.Sprintf("%s/v4/spreadsheets/%s/values/%s:append?valueInputOption=USER_ENTERED",
		s.BaseURL, url.PathEscape(s.SpreadsheetID), url.PathEscape(s.Range))
	req, err := http.NewRequestWithContext(ctx, "POST", endpoint, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+s.Token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.Client.Do(req)
	if err != nil {
		return fmt.Errorf("append rows: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("sheets API error: status %d, body: %s", resp.StatusCode, string(body))
	}
	return nil
}
