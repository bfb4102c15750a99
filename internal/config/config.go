package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds all application configuration.
type Config struct {
	Scan struct {
		ReadinessThreshold   float64  `yaml:"readiness_threshold"`
		VolumeRatioThreshold float64  `yaml:"volume_ratio_threshold"`
		LookbackDays         int      `yaml:"lookback_days"`
		MinBars              int      `yaml:"min_bars"`
		Workers              int      `yaml:"workers"`
		FetchTimeoutSec      int      `yaml:"fetch_timeout_sec"`
		FetchRatePerSec      float64  `yaml:"fetch_rate_per_sec"`
		Tickers              []string `yaml:"tickers"` // overrides the built-in universe when set
	} `yaml:"scan"`
	Gemini struct {
		APIKey          string  `yaml:"api_key"`
		Model           string  `yaml:"model"`
		Temperature     float64 `yaml:"temperature"`
		MaxOutputTokens int     `yaml:"max_output_tokens"`
		Retries         int     `yaml:"retries"`
		RetryDelaySec   int     `yaml:"retry_delay_sec"`
	} `yaml:"gemini"`
	DataSource struct {
		BaseURL string `yaml:"base_url"` // empty selects Yahoo
		APIKey  string `yaml:"api_key"`
	} `yaml:"data_source"`
	Sinks struct {
		ReportDir string `yaml:"report_dir"`
		Sheets    struct {
			SpreadsheetID string `yaml:"spreadsheet_id"`
			Range         string `yaml:"range"`
			Token         string `yaml:"token"`
		} `yaml:"sheets"`
		Email struct {
			Host     string   `yaml:"host"`
			Port     int      `yaml:"port"`
			Username string   `yaml:"username"`
			Password string   `yaml:"password"`
			From     string   `yaml:"from"`
			To       []string `yaml:"to"`
			StartTLS bool     `yaml:"starttls"`
		} `yaml:"email"`
	} `yaml:"sinks"`
	Database struct {
		SQLitePath string `yaml:"sqlite_path"`
	} `yaml:"database"`
	Schedule struct {
		ScanCron string `yaml:"scan_cron"`
	} `yaml:"schedule"`
	Proxy string `yaml:"proxy"`
}

// Load reads config from a YAML file, then applies environment variable
// overrides. A missing file is fine; a present but broken one is not.
func Load(path string) (*Config, error) {
	// .env beside the binary, if any. os.Getenv below picks the values up.
	_ = godotenv.Load()

	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// Environment variable overrides
	if v := os.Getenv("GEMINI_API_KEY"); v != "" {
		cfg.Gemini.APIKey = v
	}
	if v := os.Getenv("GEMINI_MODEL"); v != "" {
		cfg.Gemini.Model = v
	}
	if v := os.Getenv("DATASOURCE_BASE_URL"); v != "" {
		cfg.DataSource.BaseURL = v
	}
	if v := os.Getenv("DATASOURCE_API_KEY"); v != "" {
		cfg.DataSource.APIKey = v
	}
	if v := os.Getenv("SHEETS_SPREADSHEET_ID"); v != "" {
		cfg.Sinks.Sheets.SpreadsheetID = v
	}
	if v := os.Getenv("SHEETS_TOKEN"); v != "" {
		cfg.Sinks.Sheets.Token = v
	}
	if v := os.Getenv("SMTP_PASSWORD"); v != "" {
		cfg.Sinks.Email.Password = v
	}
	if v := os.Getenv("SCAN_TICKERS"); v != "" {
		cfg.Scan.Tickers = splitList(v)
	}
	if v := os.Getenv("SCAN_WORKERS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Scan.Workers = n
		}
	}
	if v := os.Getenv("SCAN_CRON"); v != "" {
		cfg.Schedule.ScanCron = v
	}
	if v := os.Getenv("SQLITE_PATH"); v != "" {
		cfg.Database.SQLitePath = v
	}
	if v := os.Getenv("HTTPS_PROXY"); v != "" {
		cfg.Proxy = v
	}

	// Defaults
	if cfg.Scan.ReadinessThreshold == 0 {
		cfg.Scan.ReadinessThreshold = 90
	}
	if cfg.Scan.VolumeRatioThreshold == 0 {
		cfg.Scan.VolumeRatioThreshold = 1.2
	}
	if cfg.Scan.LookbackDays == 0 {
		cfg.Scan.LookbackDays = 365
	}
	if cfg.Scan.MinBars == 0 {
		cfg.Scan.MinBars = 200
	}
	if cfg.Scan.Workers == 0 {
		cfg.Scan.Workers = 8
	}
	if cfg.Scan.FetchTimeoutSec == 0 {
		cfg.Scan.FetchTimeoutSec = 15
	}
	if cfg.Scan.FetchRatePerSec == 0 {
		cfg.Scan.FetchRatePerSec = 5
	}
	if cfg.Gemini.Model == "" {
		cfg.Gemini.Model = "gemini-1.5-flash"
	}
	if cfg.Gemini.Temperature == 0 {
		cfg.Gemini.Temperature = 0.7
	}
	if cfg.Gemini.MaxOutputTokens == 0 {
		cfg.Gemini.MaxOutputTokens = 512
	}
	if cfg.Gemini.Retries == 0 {
		cfg.Gemini.Retries = 3
	}
	if cfg.Gemini.RetryDelaySec == 0 {
		cfg.Gemini.RetryDelaySec = 2
	}
	if cfg.Sinks.Sheets.Range == "" {
		cfg.Sinks.Sheets.Range = "Signals!A:F"
	}
	if cfg.Sinks.Email.Port == 0 {
		cfg.Sinks.Email.Port = 587
		cfg.Sinks.Email.StartTLS = true
	}
	if cfg.Schedule.ScanCron == "" {
		// Weekdays 22:30 UTC, after the US close
		cfg.Schedule.ScanCron = "0 30 22 * * 1-5"
	}

	return cfg, nil
}

// Validate checks that all required fields are set. Only mandatory
// configuration aborts the run; absent sink credentials merely disable
// their sinks.
func (c *Config) Validate() error {
	if c.Gemini.APIKey == "" {
		return fmt.Errorf("gemini.api_key is required (or set GEMINI_API_KEY)")
	}
	if c.Scan.ReadinessThreshold < 0 || c.Scan.ReadinessThreshold > 100 {
		return fmt.Errorf("scan.readiness_threshold must be within [0,100]")
	}
	if c.Scan.VolumeRatioThreshold < 0 {
		return fmt.Errorf("scan.volume_ratio_threshold must be non-negative")
	}
	if c.Scan.Workers < 1 {
		return fmt.Errorf("scan.workers must be at least 1")
	}
	return nil
}

func splitList(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			out = append(out, t)
		}
	}
	return out
}
