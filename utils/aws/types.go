package aws

import (
	"context"
)

// Client defines the interface for AWS operations
type Client interface {
	GetAccountID(ctx context.Context) (string, error)
	UploadFile(ctx context.Context, input *UploadInput) (*UploadOutput, error)
}

// UploadInput represents input parameters for file upload
type UploadInput struct {
	Bucket      string
	Key         string
	Content     []byte
	ContentType string
	Metadata    map[string]string
}

// UploadOutput represents the result of a file upload
type UploadOutput struct {
	VersionID string
	ETag      string
}
