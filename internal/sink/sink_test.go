package sink

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/toyoo1004/stock-scanner/internal/model"
	"github.com/toyoo1004/stock-scanner/internal/scanner"
)

func sampleReport() *scanner.ScanReport {
	return &scanner.ScanReport{
		StartedAt: time.Date(2025, 3, 14, 22, 30, 0, 0, time.UTC),
		Source:    "mock",
		Scanned:   5,
		Signals: []model.ScoreResult{
			{Ticker: "AAA", Readiness: 95.5, Price: 120.5, VolumeRatio: 1.5, OBVStatus: model.OBVDirectionUp, Narrative: "surge confirmed"},
		},
	}
}

type stubSink struct {
	name      string
	err       error
	delivered int
}

func (s *stubSink) Name() string { return s.name }

func (s *stubSink) Deliver(_ context.Context, _ *scanner.ScanReport) error {
	if s.err != nil {
		return s.err
	}
	s.delivered++
	return nil
}

func TestDispatch_FailingSinkDoesNotBlockOthers(t *testing.T) {
	bad := &stubSink{name: "bad", err: errors.New("credentials rejected")}
	good1 := &stubSink{name: "good1"}
	good2 := &stubSink{name: "good2"}

	n := Dispatch(context.Background(), []Sink{bad, good1, good2}, sampleReport())
	if n != 2 {
		t.Errorf("expected 2 successful deliveries, got %d", n)
	}
	if good1.delivered != 1 || good2.delivered != 1 {
		t.Errorf("expected both healthy sinks delivered, got %d and %d", good1.delivered, good2.delivered)
	}
}

func TestFileSink(t *testing.T) {
	dir := t.TempDir()
	fs := NewFileSink(filepath.Join(dir, "reports"))

	if err := fs.Deliver(context.Background(), sampleReport()); err != nil {
		t.Fatalf("deliver: %v", err)
	}

	entries, err := os.ReadDir(filepath.Join(dir, "reports"))
	if err != nil {
		t.Fatalf("read dir: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected 1 report file, got %d", len(entries))
	}
	data, err := os.ReadFile(filepath.Join(dir, "reports", entries[0].Name()))
	if err != nil {
		t.Fatalf("read report: %v", err)
	}
	if !strings.Contains(string(data), "[AAA]") {
		t.Errorf("report file missing ticker block:\n%s", data)
	}
}

func TestSheetsSink(t *testing.T) {
	var gotPath, gotAuth string
	var gotBody struct {
		Values [][]interface{} `json:"values"`
	}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Errorf("decode body: %v", err)
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	s := NewSheetsSink("sheet-id", "Signals!A:F", "tok123")
	s.BaseURL = srv.URL

	if err := s.Deliver(context.Background(), sampleReport()); err != nil {
		t.Fatalf("deliver: %v", err)
	}
	if !strings.Contains(gotPath, "/v4/spreadsheets/sheet-id/values/") {
		t.Errorf("unexpected path: %s", gotPath)
	}
	if gotAuth != "Bearer tok123" {
		t.Errorf("unexpected auth header: %s", gotAuth)
	}
	if len(gotBody.Values) != 1 {
		t.Fatalf("expected 1 appended row, got %d", len(gotBody.Values))
	}
	row := gotBody.Values[0]
	if row[1] != "AAA" || row[2] != "95.5%" {
		t.Errorf("unexpected row contents: %v", row)
	}
}

func TestSheetsSink_NoSignalsNoRequest(t *testing.T) {
	called := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer srv.Close()

	s := NewSheetsSink("sheet-id", "", "tok")
	s.BaseURL = srv.URL

	rep := sampleReport()
	rep.Signals = nil
	if err := s.Deliver(context.Background(), rep); err != nil {
		t.Fatalf("deliver: %v", err)
	}
	if called {
		t.Error("expected no append call for an empty signal set")
	}
}

func TestEmailSink_MissingCredentials(t *testing.T) {
	e := NewEmailSink("", 0, "", "", "", nil, true)
	if err := e.Deliver(context.Background(), sampleReport()); err == nil {
		t.Error("expected error for missing credentials")
	}
}

func TestEmailSink_BuildMessage(t *testing.T) {
	e := NewEmailSink("smtp.example.com", 587, "u", "p", "scanner@example.com", []string{"desk@example.com"}, true)
	msg := e.buildMessage("subject line", "body text", "scan.txt", []byte("attached"))

	for _, want := range []string{
		"From: scanner@example.com",
		"To: desk@example.com",
		"Subject: subject line",
		"multipart/mixed",
		`Content-Disposition: attachment; filename="scan.txt"`,
		"Content-Transfer-Encoding: base64",
	} {
		if !strings.Contains(msg, want) {
			t.Errorf("message missing %q", want)
		}
	}
	if strings.Contains(msg, "body text") {
		t.Error("body should be base64 encoded, found plaintext")
	}
}
