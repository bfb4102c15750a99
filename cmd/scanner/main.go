package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/toyoo1004/stock-scanner/internal/analyst"
	"github.com/toyoo1004/stock-scanner/internal/collector"
	"github.com/toyoo1004/stock-scanner/internal/config"
	"github.com/toyoo1004/stock-scanner/internal/recorder"
	"github.com/toyoo1004/stock-scanner/internal/scanner"
	"github.com/toyoo1004/stock-scanner/internal/scheduler"
	"github.com/toyoo1004/stock-scanner/internal/sink"
	"github.com/toyoo1004/stock-scanner/internal/universe"
)

func main() {
	once := flag.Bool("once", false, "run a single scan and exit")
	flag.Parse()

	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Println("[INFO] stock-scanner starting...")

	// Load config
	cfgPath := "configs/config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		cfgPath = v
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("[FATAL] load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("[FATAL] config validation: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Init fetcher
	fetchTimeout := time.Duration(cfg.Scan.FetchTimeoutSec) * time.Second
	var fetcher collector.Fetcher
	if cfg.DataSource.BaseURL != "" {
		fetcher = collector.NewRESTFetcher(cfg.DataSource.BaseURL, cfg.DataSource.APIKey, fetchTimeout, cfg.Proxy)
	} else {
		fetcher = collector.NewYahooFetcher(fetchTimeout, cfg.Proxy)
	}
	log.Printf("[INFO] data source: %s", fetcher.Name())

	// Init Gemini analyst
	an, err := analyst.NewGeminiAnalyst(ctx, cfg.Gemini.APIKey, cfg.Gemini.Model,
		float32(cfg.Gemini.Temperature), int32(cfg.Gemini.MaxOutputTokens))
	if err != nil {
		log.Fatalf("[FATAL] init gemini analyst: %v", err)
	}
	log.Printf("[INFO] analyst: %s", an.Name())

	// Init sinks
	var sinks []sink.Sink
	if cfg.Sinks.ReportDir != "" {
		sinks = append(sinks, sink.NewFileSink(cfg.Sinks.ReportDir))
	}
	if cfg.Sinks.Sheets.SpreadsheetID != "" && cfg.Sinks.Sheets.Token != "" {
		ss := sink.NewSheetsSink(cfg.Sinks.Sheets.SpreadsheetID, cfg.Sinks.Sheets.Range, cfg.Sinks.Sheets.Token)
		sinks = append(sinks, ss)
	}
	if cfg.Sinks.Email.Host != "" && cfg.Sinks.Email.Username != "" && cfg.Sinks.Email.Password != "" {
		es := sink.NewEmailSink(cfg.Sinks.Email.Host, cfg.Sinks.Email.Port,
			cfg.Sinks.Email.Username, cfg.Sinks.Email.Password,
			cfg.Sinks.Email.From, cfg.Sinks.Email.To, cfg.Sinks.Email.StartTLS)
		sinks = append(sinks, es)
	}
	if len(sinks) == 0 {
		log.Println("[WARN] no sinks configured, falling back to ./reports")
		sinks = append(sinks, sink.NewFileSink("reports"))
	}
	for _, s := range sinks {
		log.Printf("[INFO] sink enabled: %s", s.Name())
	}

	// Init recorder
	var rec recorder.Recorder
	if cfg.Database.SQLitePath != "" {
		sr, err := recorder.NewSQLiteRecorder(cfg.Database.SQLitePath)
		if err != nil {
			log.Printf("[WARN] init sqlite recorder failed, using noop: %v", err)
			rec = recorder.NewNoopRecorder()
		} else {
			rec = sr
			defer sr.Close()
		}
	} else {
		rec = recorder.NewNoopRecorder()
	}

	// Init scanner
	sc := scanner.New(fetcher, an, scanner.Options{
		LookbackDays:         cfg.Scan.LookbackDays,
		MinBars:              cfg.Scan.MinBars,
		ReadinessThreshold:   cfg.Scan.ReadinessThreshold,
		VolumeRatioThreshold: cfg.Scan.VolumeRatioThreshold,
		Workers:              cfg.Scan.Workers,
		FetchTimeout:         fetchTimeout,
		FetchRatePerSec:      cfg.Scan.FetchRatePerSec,
		NarrativeRetries:     cfg.Gemini.Retries,
		NarrativeRetryDelay:  time.Duration(cfg.Gemini.RetryDelaySec) * time.Second,
	})

	// Ticker universe: config override, else the built-in sector watchlists.
	tickers := cfg.Scan.Tickers
	if len(tickers) == 0 {
		tickers = universe.Tickers()
	}
	log.Printf("[INFO] universe size: %d tickers", len(tickers))

	// Init scheduler
	sched := scheduler.NewScheduler(ctx, sc, tickers, sinks, rec)

	if *once {
		log.Println("[INFO] -once set, running a single scan")
		sched.RunNow()
		log.Println("[INFO] stock-scanner finished")
		return
	}

	if err := sched.Register(cfg.Schedule.ScanCron); err != nil {
		log.Fatalf("[FATAL] register cron task: %v", err)
	}
	sched.Start()
	defer sched.Stop()

	if os.Getenv("RUN_ON_START") == "true" {
		log.Println("[INFO] RUN_ON_START enabled, executing scan now")
		go sched.RunNow()
	}

	log.Println("[INFO] stock-scanner is running. Press Ctrl+C to stop.")

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	log.Println("[INFO] shutdown signal received, stopping...")
	cancel()
	log.Println("[INFO] stock-scanner stopped")
}
