package integrity

import (
	"context"

	"bucket-browser/core/storage"
	"bucket-browser/feature/integrity/checks"

	"go.uber.org/zap"
)

// Report is the outcome of a bucket scan.
type Report struct {
	Bucket  string         `json:"bucket"`
	Prefix  string         `json:"prefix"`
	Scanned int            `json:"scanned"`
	Issues  []checks.Issue `json:"issues"`
}

// Healthy reports whether every scanned object can be served.
func (r *Report) Healthy() bool {
	return len(r.Issues) == 0
}

// Service handles integrity checks.
type Service struct {
	client storage.Client
	bucket string
	logger *zap.Logger
}

// NewService creates a new integrity service.
func NewService(client storage.Client, bucket string, logger *zap.Logger) *Service {
	return &Service{
		client: client,
		bucket: bucket,
		logger: logger,
	}
}

// Run checks the bucket and scans every object under prefix.
func (s *Service) Run(ctx context.Context, prefix string) (*Report, error) {
	if err := checks.CheckBucket(ctx, s.client, s.bucket); err != nil {
		return nil, err
	}

	issues, scanned, err := checks.ScanObjects(ctx, s.client, s.bucket, prefix)
	if err != nil {
		return nil, err
	}

	for _, issue := range issues {
		s.logger.Warn("Unservable object",
			zap.String("key", issue.Key),
			zap.String("problem", string(issue.Problem)),
		)
	}

	return &Report{
		Bucket:  s.bucket,
		Prefix:  prefix,
		Scanned: scanned,
		Issues:  issues,
	}, nil
}
