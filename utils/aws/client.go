package aws

import (
	"bytes"
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/sts"
)

type client struct {
	cfg       aws.Config
	s3Client  *s3.Client
	stsClient *sts.Client
}

// NewClient creates a new AWS client using the default credential chain.
func NewClient(ctx context.Context, region string) (Client, error) {
	var opts []func(*config.LoadOptions) error
	if region != "" {
		opts = append(opts, config.WithRegion(region))
	}

	cfg, err := config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("unable to load AWS config: %w", err)
	}

	return &client{
		cfg:       cfg,
		s3Client:  s3.NewFromConfig(cfg),
		stsClient: sts.NewFromConfig(cfg),
	}, nil
}

func (c *client) GetAccountID(ctx context.Context) (string, error) {
	output, err := c.stsClient.GetCallerIdentity(ctx, &sts.GetCallerIdentityInput{})
	if err != nil {
		return "", fmt.Errorf("failed to get caller identity: %w", err)
	}
	return aws.ToString(output.Account), nil
}

func (c *client) UploadFile(ctx context.Context, input *UploadInput) (*UploadOutput, error) {
	contentType := input.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	result, err := c.s3Client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(input.Bucket),
		Key:         aws.String(input.Key),
		Body:        bytes.NewReader(input.Content),
		ContentType: aws.String(contentType),
		Metadata:    input.Metadata,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to upload file: %w", err)
	}

	return &UploadOutput{
		VersionID: aws.ToString(result.VersionId),
		ETag:      aws.ToString(result.ETag),
	}, nil
}
