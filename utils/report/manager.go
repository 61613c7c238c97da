package report

import (
	"context"
	"errors"
	"fmt"
	"path"
	"path/filepath"

	"go.uber.org/zap"

	"gutwipe/utils/aws"
	"gutwipe/utils/file"
)

// Store persists a marshalled report and returns where it went.
type Store interface {
	Save(ctx context.Context, r *Report, data []byte) (string, error)
}

// IdentityProvider resolves who ran the wipe.
type IdentityProvider interface {
	GetAccountID(ctx context.Context) (string, error)
}

type Manager interface {
	Publish(ctx context.Context, r *Report) ([]string, error)
}

type manager struct {
	stores   []Store
	identity IdentityProvider
	logger   *zap.Logger
}

// NewManager returns a Manager writing to every store. identity may be nil.
func NewManager(logger *zap.Logger, identity IdentityProvider, stores ...Store) Manager {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &manager{stores: stores, identity: identity, logger: logger}
}

// Publish stamps the operator identity, then saves r to every store. A
// failing store does not stop the others.
func (m *manager) Publish(ctx context.Context, r *Report) ([]string, error) {
	if m.identity != nil && r.Operator == "" {
		if id, err := m.identity.GetAccountID(ctx); err != nil {
			m.logger.Warn("could not resolve operator identity", zap.Error(err))
		} else {
			r.Operator = id
		}
	}

	data, err := r.Marshal()
	if err != nil {
		return nil, err
	}

	var (
		locations []string
		errs      []error
	)
	for _, s := range m.stores {
		loc, err := s.Save(ctx, r, data)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		m.logger.Info("report saved", zap.String("id", r.ID), zap.String("location", loc))
		locations = append(locations, loc)
	}
	return locations, errors.Join(errs...)
}

type localStore struct {
	dir   string
	files file.Utils
}

// NewLocalStore writes reports into dir.
func NewLocalStore(dir string, files file.Utils) Store {
	return &localStore{dir: dir, files: files}
}

func (s *localStore) Save(_ context.Context, r *Report, data []byte) (string, error) {
	if err := s.files.EnsureDirectory(s.dir); err != nil {
		return "", err
	}
	p := filepath.Join(s.dir, r.FileName())
	if err := s.files.WriteFile(p, data, &file.Options{CreateDirs: true, Mode: 0600}); err != nil {
		return "", fmt.Errorf("failed to write report: %w", err)
	}
	return p, nil
}

type s3Store struct {
	client aws.Client
	bucket string
	prefix string
}

// NewS3Store uploads reports to s3://bucket/prefix/<id>.yaml.
func NewS3Store(client aws.Client, bucket, prefix string) Store {
	return &s3Store{client: client, bucket: bucket, prefix: prefix}
}

func (s *s3Store) Save(ctx context.Context, r *Report, data []byte) (string, error) {
	key := path.Join(s.prefix, r.FileName())
	_, err := s.client.UploadFile(ctx, &aws.UploadInput{
		Bucket:      s.bucket,
		Key:         key,
		Content:     data,
		ContentType: "application/yaml",
		Metadata: map[string]string{
			"report-id": r.ID,
			"status":    r.Status,
		},
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload report: %w", err)
	}
	return fmt.Sprintf("s3://%s/%s", s.bucket, key), nil
}
