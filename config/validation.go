package config

import (
	"errors"
	"fmt"
	"strings"
)

const maxChunkSize = 1 << 30

// validateConfig performs validation of the configuration
func validateConfig(cfg *Config) error {
	if err := validateRandomSource(cfg); err != nil {
		return err
	}

	if cfg.ChunkSize <= 0 {
		return errors.New("chunk_size must be positive")
	}
	if cfg.ChunkSize > maxChunkSize {
		return fmt.Errorf("chunk_size must not exceed %d bytes", maxChunkSize)
	}

	if err := validateLogConfig(&cfg.Log); err != nil {
		return err
	}

	return validateReportConfig(&cfg.Report)
}

func validateRandomSource(cfg *Config) error {
	cfg.RandomSource = strings.ToLower(strings.TrimSpace(cfg.RandomSource))
	switch cfg.RandomSource {
	case "":
		cfg.RandomSource = RandomSourceCrypto
	case RandomSourceCrypto, RandomSourceClock:
	default:
		return fmt.Errorf("unknown random_source %q (want %s or %s)", cfg.RandomSource, RandomSourceCrypto, RandomSourceClock)
	}
	return nil
}

func validateLogConfig(log *LogConfig) error {
	switch strings.ToLower(log.Level) {
	case "":
		log.Level = "info"
	case "debug", "info", "warn", "error":
		log.Level = strings.ToLower(log.Level)
	default:
		return fmt.Errorf("unknown log.level %q", log.Level)
	}

	switch log.Format {
	case "":
		log.Format = "console"
	case "console", "json":
	default:
		return fmt.Errorf("unknown log.format %q", log.Format)
	}
	return nil
}

func validateReportConfig(report *ReportConfig) error {
	report.S3.Prefix = strings.Trim(report.S3.Prefix, "/")
	if report.S3.Bucket == "" && (report.S3.Prefix != "" || report.S3.Region != "") {
		return errors.New("report.s3.bucket is required when report.s3 is configured")
	}
	return nil
}
