package command

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"gutwipe/config"
	"gutwipe/utils/aws"
	"gutwipe/utils/file"
	"gutwipe/utils/gutmann"
	"gutwipe/utils/report"
)

type commandUtils struct {
	cfg       *config.Config
	fileUtils file.Utils
	logger    *zap.Logger

	newAWSClient func(ctx context.Context, region string) (aws.Client, error)

	once    sync.Once
	reports report.Manager
	err     error
}

// NewUtils creates a new command utilities instance
func NewUtils(cfg *config.Config, logger *zap.Logger) Utils {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &commandUtils{
		cfg:          cfg,
		fileUtils:    file.NewUtils(),
		logger:       logger,
		newAWSClient: aws.NewClient,
	}
}

func (c *commandUtils) GetConfig() *config.Config {
	return c.cfg
}

func (c *commandUtils) GetFileUtils() file.Utils {
	return c.fileUtils
}

func (c *commandUtils) GetLogger() *zap.Logger {
	return c.logger
}

func (c *commandUtils) NewSource() (gutmann.Source, error) {
	switch c.cfg.RandomSource {
	case config.RandomSourceClock:
		return gutmann.NewClockSource(), nil
	case config.RandomSourceCrypto, "":
		return gutmann.NewCryptoSource()
	default:
		return nil, fmt.Errorf("unknown random source %q", c.cfg.RandomSource)
	}
}

func (c *commandUtils) GetReportManager(ctx context.Context) (report.Manager, error) {
	c.once.Do(func() {
		c.reports, c.err = c.buildReportManager(ctx)
	})
	return c.reports, c.err
}

func (c *commandUtils) buildReportManager(ctx context.Context) (report.Manager, error) {
	rc := c.cfg.Report
	if !rc.Enabled() {
		return nil, nil
	}

	var (
		stores   []report.Store
		identity report.IdentityProvider
	)
	if rc.Dir != "" {
		stores = append(stores, report.NewLocalStore(rc.Dir, c.fileUtils))
	}
	if rc.S3.Bucket != "" {
		client, err := c.newAWSClient(ctx, rc.S3.Region)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize AWS client: %w", err)
		}
		stores = append(stores, report.NewS3Store(client, rc.S3.Bucket, rc.S3.Prefix))
		identity = client
	}

	return report.NewManager(c.logger, identity, stores...), nil
}
