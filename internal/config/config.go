package config

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"
)

// Config holds application level configuration loaded from environment and flags.
type Config struct {
	RunAddress            string
	DatabaseURI           string
	PaymentGatewayAddress string
	PaymentAPIKey         string
	CheckoutSuccessURL    string
	CheckoutCancelURL     string
	AuthSecret            string
	ShutdownTimeout       time.Duration
	OrphanReportInterval  time.Duration
	OrphanReportBatch     int
}

const (
	defaultRunAddress           = ":8080"
	defaultAuthSecret           = "change-me-in-production"
	defaultShutdownTimeout      = 10 * time.Second
	defaultOrphanReportInterval = time.Minute
	defaultOrphanReportBatch    = 50
)

// Load parses configuration from flags and environment variables.
func Load() (*Config, error) {
	return load(os.Args[1:], os.LookupEnv)
}

type envLookup func(string) (string, bool)

func load(args []string, lookup envLookup) (*Config, error) {
	cfg := &Config{
		RunAddress:            getString(lookup, "RUN_ADDRESS", defaultRunAddress),
		DatabaseURI:           getString(lookup, "DATABASE_URI", ""),
		PaymentGatewayAddress: getString(lookup, "PAYMENT_GATEWAY_ADDRESS", ""),
		PaymentAPIKey:         getString(lookup, "PAYMENT_API_KEY", ""),
		CheckoutSuccessURL:    getString(lookup, "CHECKOUT_SUCCESS_URL", ""),
		CheckoutCancelURL:     getString(lookup, "CHECKOUT_CANCEL_URL", ""),
		AuthSecret:            getString(lookup, "AUTH_SECRET", defaultAuthSecret),
		ShutdownTimeout:       getDuration(lookup, "SHUTDOWN_TIMEOUT", defaultShutdownTimeout),
		OrphanReportInterval:  getDuration(lookup, "ORPHAN_REPORT_INTERVAL", defaultOrphanReportInterval),
		OrphanReportBatch:     getInt(lookup, "ORPHAN_REPORT_BATCH", defaultOrphanReportBatch),
	}

	fs := flag.NewFlagSet("printery", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var (
		shutdownTimeoutStr = cfg.ShutdownTimeout.String()
		orphanIntervalStr  = cfg.OrphanReportInterval.String()
	)

	fs.StringVar(&cfg.RunAddress, "a", cfg.RunAddress, "HTTP server listen address")
	fs.StringVar(&cfg.DatabaseURI, "d", cfg.DatabaseURI, "PostgreSQL DSN")
	fs.StringVar(&cfg.PaymentGatewayAddress, "p", cfg.PaymentGatewayAddress, "Payment gateway base URL")
	fs.StringVar(&cfg.PaymentAPIKey, "payment-api-key", cfg.PaymentAPIKey, "Payment gateway API key")
	fs.StringVar(&cfg.CheckoutSuccessURL, "success-url", cfg.CheckoutSuccessURL, "Redirect target after completed checkout")
	fs.StringVar(&cfg.CheckoutCancelURL, "cancel-url", cfg.CheckoutCancelURL, "Redirect target after cancelled checkout")
	fs.StringVar(&cfg.AuthSecret, "auth-secret", cfg.AuthSecret, "Secret for signing auth tokens")
	fs.StringVar(&shutdownTimeoutStr, "shutdown-timeout", shutdownTimeoutStr, "Graceful shutdown timeout")
	fs.StringVar(&orphanIntervalStr, "orphan-report-interval", orphanIntervalStr, "Interval between orphaned session reports")
	fs.IntVar(&cfg.OrphanReportBatch, "orphan-report-batch", cfg.OrphanReportBatch, "Maximum orphaned sessions per report")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}

	var err error

	if cfg.ShutdownTimeout, err = time.ParseDuration(shutdownTimeoutStr); err != nil {
		return nil, fmt.Errorf("invalid shutdown timeout: %w", err)
	}

	if cfg.OrphanReportInterval, err = time.ParseDuration(orphanIntervalStr); err != nil {
		return nil, fmt.Errorf("invalid orphan report interval: %w", err)
	}

	if secretFile, ok := lookup("AUTH_SECRET_FILE"); ok && secretFile != "" {
		content, err := os.ReadFile(secretFile)
		if err != nil {
			return nil, fmt.Errorf("read auth secret file: %w", err)
		}
		cfg.AuthSecret = string(content)
	}

	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = defaultShutdownTimeout
	}

	if cfg.OrphanReportInterval <= 0 {
		cfg.OrphanReportInterval = defaultOrphanReportInterval
	}

	if cfg.OrphanReportBatch <= 0 {
		cfg.OrphanReportBatch = defaultOrphanReportBatch
	}

	if cfg.DatabaseURI == "" {
		return nil, fmt.Errorf("database URI must be provided")
	}

	if cfg.PaymentGatewayAddress == "" {
		return nil, fmt.Errorf("payment gateway address must be provided")
	}

	if cfg.CheckoutSuccessURL == "" || cfg.CheckoutCancelURL == "" {
		return nil, fmt.Errorf("checkout redirect URLs must be provided")
	}

	return cfg, nil
}

func getString(lookup envLookup, key, def string) string {
	if v, ok := lookup(key); ok && v != "" {
		return v
	}
	return def
}

func getInt(lookup envLookup, key string, def int) int {
	if v, ok := lookup(key); ok && v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getDuration(lookup envLookup, key string, def time.Duration) time.Duration {
	if v, ok := lookup(key); ok && v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}
