package command

import (
	"context"

	"go.uber.org/zap"

	"gutwipe/config"
	"gutwipe/utils/file"
	"gutwipe/utils/gutmann"
	"gutwipe/utils/report"
)

type Utils interface {
	GetConfig() *config.Config
	GetFileUtils() file.Utils
	GetLogger() *zap.Logger
	// NewSource builds a fresh random source for one run.
	NewSource() (gutmann.Source, error)
	// GetReportManager returns nil when no report destination is configured.
	GetReportManager(ctx context.Context) (report.Manager, error)
}
